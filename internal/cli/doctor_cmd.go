package cli

import (
	"fmt"
	"os"

	"github.com/hbjs97/pyactivate/internal/config"
	"github.com/hbjs97/pyactivate/internal/doctor"
	"github.com/hbjs97/pyactivate/internal/setup"
	"github.com/hbjs97/pyactivate/internal/shell"
	"github.com/spf13/cobra"
)

func (a *App) newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "환경 설정을 진단한다",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDoctor(cmd)
		},
	}
}

func (a *App) runDoctor(cmd *cobra.Command) error {
	// 설정이 깨져 있어도 나머지 진단은 기본값으로 진행한다. 설정 오류는 config 항목에 표시된다.
	cfg, err := config.Load(a.CfgPath)
	if err != nil {
		cfg = config.Default()
	}

	shellType := setup.DetectShell()
	if !shell.IsSupported(shellType) {
		shellType = cfg.Shell
	}

	cwd, _ := os.Getwd() // 실패하면 resolution 진단을 건너뛴다

	results := doctor.RunAll(cmd.Context(), a.Commander, doctor.Options{
		CfgPath:  a.CfgPath,
		Dir:      cwd,
		RCPath:   setup.ShellRCPath(shellType),
		Lookup:   os.Getenv,
		Resolver: newResolver(cfg),
	})

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "pyactivate doctor (%s)\n", shellType)
	doctor.Print(out, results)
	if doctor.Failed(results) {
		return fmt.Errorf("cli.doctor: %w", doctor.ErrCheckFailed)
	}
	return nil
}
