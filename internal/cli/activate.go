package cli

import (
	"fmt"

	"github.com/hbjs97/pyactivate/internal/activate"
	"github.com/hbjs97/pyactivate/internal/config"
	"github.com/hbjs97/pyactivate/internal/shell"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func (a *App) newActivateCmd() *cobra.Command {
	var shellType string
	var hookOnly bool

	cmd := &cobra.Command{
		Use:   "activate",
		Short: "현재 디렉토리에 맞는 환경의 활성화 명령을 출력한다",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig(cmd)
			if err != nil {
				return err
			}
			sh, err := shellFlag(cmd, shellType, cfg)
			if err != nil {
				return fmt.Errorf("cli.activate: %w", err)
			}
			if hookOnly {
				fmt.Fprint(cmd.OutOrStdout(), shell.HookSnippet(sh))
				return nil
			}
			return a.runActivate(cmd, cfg, sh)
		},
	}
	cmd.Flags().StringVar(&shellType, "shell", shell.Zsh, "셸 유형 (bash, zsh, fish)")
	cmd.Flags().BoolVar(&hookOnly, "hook", false, "hook 스니펫만 출력")
	return cmd
}

func (a *App) runActivate(cmd *cobra.Command, cfg *config.Config, shellType string) error {
	ctx := cmd.Context()
	cwd, err := getwd("activate")
	if err != nil {
		return err
	}

	res, err := newResolver(cfg).Resolve(withComponent(ctx, "resolver"), cwd)
	if err != nil {
		return fmt.Errorf("cli.activate: %w", err)
	}
	if res == nil {
		zerolog.Ctx(ctx).Debug().Str("dir", cwd).Msg("활성화할 환경 없음")
		return nil
	}

	out, err := a.dispatcher(cfg, shellType).Dispatch(withComponent(ctx, "activate"), res.Kind, res.Locator)
	if err != nil {
		return fmt.Errorf("cli.activate: %w", err)
	}
	if out != "" {
		fmt.Fprintln(cmd.OutOrStdout(), out)
	}
	return nil
}

func (a *App) dispatcher(cfg *config.Config, shellType string) *activate.Dispatcher {
	d := activate.New(a.Commander, a.Reporter(), shellType)
	d.DeactivateCondaBase = cfg.DeactivateCondaBase
	return d
}
