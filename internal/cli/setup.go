package cli

import (
	"fmt"

	"github.com/hbjs97/pyactivate/internal/setup"
	"github.com/spf13/cobra"
)

func (a *App) newSetupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "setup",
		Short: "셸 hook 설치와 초기 설정을 진행한다",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !setup.Interactive() {
				return fmt.Errorf("cli.setup: %w", setup.ErrNotInteractive)
			}
			runner := &setup.Runner{
				CfgPath:    a.CfgPath,
				Commander:  a.Commander,
				FormRunner: &setup.HuhFormRunner{},
				Out:        cmd.OutOrStdout(),
			}
			return runner.Run(cmd.Context())
		},
	}
}
