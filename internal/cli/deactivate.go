package cli

import (
	"fmt"
	"os"

	"github.com/hbjs97/pyactivate/internal/shell"
	"github.com/spf13/cobra"
)

func (a *App) newDeactivateCmd() *cobra.Command {
	var shellType string

	cmd := &cobra.Command{
		Use:   "deactivate",
		Short: "활성화된 환경의 비활성화 명령을 출력한다",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig(cmd)
			if err != nil {
				return err
			}
			sh, err := shellFlag(cmd, shellType, cfg)
			if err != nil {
				return fmt.Errorf("cli.deactivate: %w", err)
			}
			if out := a.dispatcher(cfg, sh).Deactivate(os.Getenv); out != "" {
				fmt.Fprintln(cmd.OutOrStdout(), out)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&shellType, "shell", shell.Zsh, "셸 유형 (bash, zsh, fish)")
	return cmd
}
