package cli

import (
	"fmt"

	"github.com/hbjs97/pyactivate/internal/envtype"
	"github.com/hbjs97/pyactivate/internal/linkfile"
	"github.com/spf13/cobra"
)

func (a *App) newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "현재 디렉토리에서 찾은 환경을 표시한다",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runStatus(cmd)
		},
	}
}

func (a *App) runStatus(cmd *cobra.Command) error {
	cfg, err := a.loadConfig(cmd)
	if err != nil {
		return err
	}
	cwd, err := getwd("status")
	if err != nil {
		return err
	}

	res, err := newResolver(cfg).Resolve(withComponent(cmd.Context(), "resolver"), cwd)
	if err != nil {
		return fmt.Errorf("cli.status: %w", err)
	}

	out := cmd.OutOrStdout()
	if res == nil {
		fmt.Fprintln(out, "활성화할 환경을 찾지 못했습니다.")
		fmt.Fprintf(out, "  priority: %v\n", cfg.PriorityKinds().Strings())
		return nil
	}

	fmt.Fprintf(out, "kind:    %s\n", res.Kind)
	fmt.Fprintf(out, "locator: %s\n", res.Locator)
	fmt.Fprintf(out, "dir:     %s\n", res.Dir())

	if res.Kind == envtype.Linked {
		rec, err := linkfile.Read(res.Locator)
		if err != nil {
			return fmt.Errorf("cli.status: %w", err)
		}
		fmt.Fprintf(out, "link:    %s -> %s\n", rec.Kind, rec.Locator)
	}
	return nil
}
