package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/hbjs97/pyactivate/internal/cmdexec"
	"github.com/hbjs97/pyactivate/internal/config"
	"github.com/hbjs97/pyactivate/internal/logging"
	"github.com/hbjs97/pyactivate/internal/report"
	"github.com/hbjs97/pyactivate/internal/resolver"
	"github.com/hbjs97/pyactivate/internal/shell"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// App은 CLI 실행에 필요한 의존성을 묶는다.
type App struct {
	Commander cmdexec.Commander
	CfgPath   string

	verbose  bool
	reporter *report.Reporter
}

// NewApp은 실제 외부 명령을 쓰는 App을 생성한다.
func NewApp() *App {
	return &App{Commander: &cmdexec.RealCommander{}}
}

// NewRootCmd는 pyactivate CLI의 루트 명령을 생성한다.
func (a *App) NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "pyactivate",
		Short:         "디렉토리에 맞는 파이썬 환경을 자동으로 활성화한다",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("%w: 알 수 없는 명령 %q", ErrUsage, args[0])
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.New(cmd.ErrOrStderr(), a.verbose)
			cmd.SetContext(logger.WithContext(cmd.Context()))
			a.reporter = report.New(cmd.ErrOrStderr(), report.DefaultBanner)
			return nil
		},
	}

	defaultCfg := a.CfgPath
	if defaultCfg == "" {
		defaultCfg = config.DefaultPath()
	}
	cmd.PersistentFlags().StringVar(&a.CfgPath, "config", defaultCfg, "설정 파일 경로")
	cmd.PersistentFlags().BoolVar(&a.verbose, "verbose", false, "상세 출력")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	})

	cmd.AddCommand(
		a.newActivateCmd(),
		a.newDeactivateCmd(),
		a.newLinkCmd(),
		a.newUnlinkCmd(),
		a.newStatusCmd(),
		a.newDoctorCmd(),
		a.newSetupCmd(),
	)
	return cmd
}

// Reporter는 현재 실행의 Reporter를 반환한다.
// 명령 실행 전에 실패했으면 stderr에 쓰는 Reporter를 새로 만든다.
func (a *App) Reporter() *report.Reporter {
	if a.reporter == nil {
		a.reporter = report.New(os.Stderr, report.DefaultBanner)
	}
	return a.reporter
}

// loadConfig는 설정을 읽고 banner 설정을 Reporter에 반영한다.
func (a *App) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(a.CfgPath)
	if err != nil {
		return nil, err
	}
	if !cfg.IsBanner() && !a.Reporter().BannerPrinted() {
		a.reporter = report.New(cmd.ErrOrStderr(), "")
	}
	return cfg, nil
}

// withComponent는 ctx의 logger에 component 필드를 붙인다.
func withComponent(ctx context.Context, name string) context.Context {
	return logging.Component(*zerolog.Ctx(ctx), name).WithContext(ctx)
}

func newResolver(cfg *config.Config) *resolver.Resolver {
	return &resolver.Resolver{
		Priority: cfg.PriorityKinds(),
		Markers:  cfg.MarkerSet(),
	}
}

// shellFlag는 --shell 값이 없으면 설정의 셸을 쓴다.
func shellFlag(cmd *cobra.Command, value string, cfg *config.Config) (string, error) {
	if !cmd.Flags().Changed("shell") {
		value = cfg.Shell
	}
	if !shell.IsSupported(value) {
		return "", fmt.Errorf("지원하지 않는 셸 %q: %w", value, ErrUsage)
	}
	return value, nil
}

func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return fmt.Errorf("%w: %v", ErrUsage, err)
		}
		return nil
	}
}

func getwd(op string) (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("cli.%s: %w", op, err)
	}
	return cwd, nil
}
