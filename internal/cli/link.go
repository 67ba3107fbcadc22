package cli

import (
	"fmt"

	"github.com/hbjs97/pyactivate/internal/envtype"
	"github.com/hbjs97/pyactivate/internal/linkfile"
	"github.com/spf13/cobra"
)

func (a *App) newLinkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "link <venv|conda> <name_or_path>",
		Short: "현재 디렉토리를 기존 환경에 연결한다",
		Long: `현재 디렉토리에 .linked_env 파일을 만들어 환경을 연결한다.
venv는 환경 디렉토리 경로, conda는 환경 이름을 받는다.`,
		Args: exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := envtype.ParseKind(args[0])
			if err != nil {
				return fmt.Errorf("cli.link: %w", err)
			}
			cwd, err := getwd("link")
			if err != nil {
				return err
			}
			if err := linkfile.Write(cwd, kind, args[1]); err != nil {
				return fmt.Errorf("cli.link: %w", err)
			}
			a.Reporter().Success("Directory linked!")
			return nil
		},
	}
}

func (a *App) newUnlinkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unlink",
		Short: "현재 디렉토리의 환경 연결을 제거한다",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := getwd("unlink")
			if err != nil {
				return err
			}
			removed, err := linkfile.Remove(cwd)
			if err != nil {
				return fmt.Errorf("cli.unlink: %w", err)
			}
			if !removed {
				a.Reporter().Info("No file found that explicitly links this directory, looked for: %s", linkfile.FileName)
			}
			a.Reporter().Success("Directory unlinked!")
			return nil
		},
	}
}
