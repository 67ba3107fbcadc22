package setup

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hbjs97/pyactivate/internal/cmdexec"
	"github.com/hbjs97/pyactivate/internal/config"
	"github.com/hbjs97/pyactivate/internal/doctor"
	"github.com/hbjs97/pyactivate/internal/resolver"
)

// ErrNotInteractive는 터미널이 아닌 곳에서 setup을 실행했을 때의 sentinel error다.
var ErrNotInteractive = errors.New("setup은 터미널에서 실행해야 합니다")

// Runner는 interactive setup의 진입점이다.
type Runner struct {
	CfgPath    string
	Commander  cmdexec.Commander
	FormRunner FormRunner
	Out        io.Writer
	RCPath     string // 테스트용. 비어있으면 셸 기본 RC 파일.
	Dir        string // 진단 대상 디렉토리. 비어있으면 현재 디렉토리.
}

// Run은 setup 플로우를 실행한다.
func (r *Runner) Run(ctx context.Context) error {
	cfg, err := config.Load(r.CfgPath)
	if err != nil {
		return fmt.Errorf("setup.Run: %w", err)
	}
	_, statErr := os.Stat(r.CfgPath)
	firstTime := os.IsNotExist(statErr)
	if firstTime {
		fmt.Fprintln(r.out(), "pyactivate 초기 설정을 시작합니다.")
	}

	detected := DetectShell()
	if !firstTime || detected == "" {
		detected = cfg.Shell
	}
	shellType, err := r.FormRunner.RunShellSelect(detected)
	if err != nil {
		return err
	}

	keepBase, err := r.FormRunner.RunConfirm("디렉토리를 벗어날 때 conda base 환경은 유지할까요?")
	if err != nil {
		return err
	}

	if firstTime || cfg.Shell != shellType || cfg.DeactivateCondaBase == keepBase {
		cfg.Shell = shellType
		cfg.DeactivateCondaBase = !keepBase
		if err := config.Save(r.CfgPath, cfg); err != nil {
			return fmt.Errorf("setup.Run: %w", err)
		}
		fmt.Fprintf(r.out(), "설정 파일이 저장되었습니다: %s\n", r.CfgPath)
	}

	rcPath := r.rcPath(shellType)
	install, err := r.FormRunner.RunConfirm(fmt.Sprintf("%s에 셸 hook을 설치할까요?", rcPath))
	if err != nil {
		return err
	}
	if install {
		if err := InstallShellHook(shellType, rcPath); err != nil {
			fmt.Fprintf(r.out(), "경고: 셸 hook 설치 실패: %v\n", err)
		} else {
			fmt.Fprintf(r.out(), "셸 hook이 설치되었습니다: %s\n", rcPath)
			fmt.Fprintln(r.out(), "새 셸을 열거나 RC 파일을 다시 읽으면 적용됩니다.")
		}
	}

	r.runDoctor(ctx, cfg, rcPath)
	return nil
}

func (r *Runner) out() io.Writer {
	if r.Out != nil {
		return r.Out
	}
	return os.Stdout
}

func (r *Runner) rcPath(shellType string) string {
	if r.RCPath != "" {
		return r.RCPath
	}
	return ShellRCPath(shellType)
}

// runDoctor는 설정 완료 후 환경 진단을 실행한다.
func (r *Runner) runDoctor(ctx context.Context, cfg *config.Config, rcPath string) {
	dir := r.Dir
	if dir == "" {
		dir, _ = os.Getwd() // 실패하면 resolution 진단을 건너뛴다
	}

	fmt.Fprintln(r.out(), "\n환경 진단 실행 중...")
	results := doctor.RunAll(ctx, r.Commander, doctor.Options{
		CfgPath:  r.CfgPath,
		Dir:      dir,
		RCPath:   rcPath,
		Lookup:   os.Getenv,
		Resolver: &resolver.Resolver{Priority: cfg.PriorityKinds(), Markers: cfg.MarkerSet()},
	})
	doctor.Print(r.out(), results)
}
