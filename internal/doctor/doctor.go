package doctor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/hbjs97/pyactivate/internal/activate"
	"github.com/hbjs97/pyactivate/internal/cmdexec"
	"github.com/hbjs97/pyactivate/internal/config"
	"github.com/hbjs97/pyactivate/internal/envtype"
	"github.com/hbjs97/pyactivate/internal/linkfile"
	"github.com/hbjs97/pyactivate/internal/resolver"
)

// Status는 진단 결과 상태다.
type Status string

const (
	// StatusOK는 정상 상태다.
	StatusOK Status = "OK"
	// StatusWarn는 경고 상태다.
	StatusWarn Status = "WARN"
	// StatusFail는 실패 상태다.
	StatusFail Status = "FAIL"
)

// DiagResult는 하나의 진단 결과다.
type DiagResult struct {
	Name    string
	Status  Status
	Message string
	Fix     string
}

// HookMarker는 RC 파일에 설치된 hook을 식별하는 문자열이다.
const HookMarker = "pyactivate shell integration"

// CheckBinaries는 python3, conda, poetry 존재 여부를 확인한다.
// conda와 poetry가 없으면 해당 환경만 건너뛰므로 경고로 취급한다.
func CheckBinaries(ctx context.Context, cmd cmdexec.Commander) []DiagResult {
	binaries := []struct {
		name    string
		missing Status
		install string
	}{
		{"python3", StatusFail, "https://www.python.org/downloads/"},
		{"conda", StatusWarn, "https://docs.conda.io/en/latest/miniconda.html"},
		{"poetry", StatusWarn, "https://python-poetry.org/docs/#installation"},
	}

	var results []DiagResult
	for _, b := range binaries {
		path, err := cmd.LookPath(b.name)
		if err != nil {
			results = append(results, DiagResult{
				Name:    b.name,
				Status:  b.missing,
				Message: fmt.Sprintf("%s 없음", b.name),
				Fix:     fmt.Sprintf("설치: %s", b.install),
			})
			continue
		}
		msg := path
		if out, err := cmd.Run(ctx, b.name, "--version"); err == nil {
			msg = fmt.Sprintf("%s (%s)", strings.TrimSpace(string(out)), path)
		}
		results = append(results, DiagResult{
			Name:    b.name,
			Status:  StatusOK,
			Message: msg,
		})
	}
	return results
}

// CheckConfig는 설정 파일을 읽을 수 있는지 확인한다.
func CheckConfig(path string) DiagResult {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return DiagResult{
			Name:    "config",
			Status:  StatusOK,
			Message: fmt.Sprintf("%s 없음, 기본 설정 사용", path),
		}
	}
	if _, err := config.Load(path); err != nil {
		return DiagResult{
			Name:    "config",
			Status:  StatusFail,
			Message: err.Error(),
			Fix:     fmt.Sprintf("%s 확인", path),
		}
	}
	return DiagResult{
		Name:    "config",
		Status:  StatusOK,
		Message: path,
	}
}

// CheckActiveEnv는 셸에서 현재 활성화된 환경을 보고한다.
func CheckActiveEnv(lookup func(string) string) DiagResult {
	if venv := lookup(activate.EnvVirtualEnv); venv != "" {
		return DiagResult{
			Name:    "active_env",
			Status:  StatusOK,
			Message: fmt.Sprintf("virtualenv 활성화됨: %s", venv),
		}
	}
	if conda := lookup(activate.EnvCondaDefaultEnv); conda != "" {
		return DiagResult{
			Name:    "active_env",
			Status:  StatusOK,
			Message: fmt.Sprintf("conda 환경 활성화됨: %s", conda),
		}
	}
	return DiagResult{
		Name:    "active_env",
		Status:  StatusOK,
		Message: "활성화된 환경 없음",
	}
}

// CheckResolution은 dir에서 어떤 환경이 판정되는지 확인한다.
// 링크된 디렉토리라면 링크 파일도 검증한다.
func CheckResolution(ctx context.Context, dir string, r *resolver.Resolver) DiagResult {
	res, err := r.Resolve(ctx, dir)
	if err != nil {
		return DiagResult{
			Name:    "resolution",
			Status:  StatusFail,
			Message: err.Error(),
		}
	}
	if res == nil {
		return DiagResult{
			Name:    "resolution",
			Status:  StatusWarn,
			Message: "환경 파일을 찾지 못함",
			Fix:     "pyactivate link <venv|conda> <name_or_path> 로 직접 지정",
		}
	}
	if res.Kind == envtype.Linked {
		rec, err := linkfile.Read(res.Locator)
		if err != nil {
			return DiagResult{
				Name:    "resolution",
				Status:  StatusFail,
				Message: err.Error(),
				Fix:     fmt.Sprintf("cd %s && pyactivate unlink", res.Dir()),
			}
		}
		return DiagResult{
			Name:    "resolution",
			Status:  StatusOK,
			Message: fmt.Sprintf("linked -> %s (%s)", rec.Kind, rec.Locator),
		}
	}
	return DiagResult{
		Name:    "resolution",
		Status:  StatusOK,
		Message: fmt.Sprintf("%s (%s)", res.Kind, res.Locator),
	}
}

// CheckShellHook은 RC 파일에 hook이 설치되어 있는지 확인한다.
func CheckShellHook(rcPath string) DiagResult {
	data, err := os.ReadFile(rcPath)
	if err != nil || !strings.Contains(string(data), HookMarker) {
		return DiagResult{
			Name:    "shell_hook",
			Status:  StatusWarn,
			Message: fmt.Sprintf("%s 에 hook 없음", rcPath),
			Fix:     "pyactivate setup 실행",
		}
	}
	return DiagResult{
		Name:    "shell_hook",
		Status:  StatusOK,
		Message: rcPath,
	}
}

// Options는 RunAll 입력값이다.
type Options struct {
	CfgPath  string
	Dir      string
	RCPath   string
	Lookup   func(string) string
	Resolver *resolver.Resolver
}

// RunAll은 모든 진단을 실행한다.
func RunAll(ctx context.Context, cmd cmdexec.Commander, opts Options) []DiagResult {
	var results []DiagResult
	results = append(results, CheckBinaries(ctx, cmd)...)
	results = append(results, CheckConfig(opts.CfgPath))
	if opts.RCPath != "" {
		results = append(results, CheckShellHook(opts.RCPath))
	}
	if opts.Lookup != nil {
		results = append(results, CheckActiveEnv(opts.Lookup))
	}
	if opts.Dir != "" && opts.Resolver != nil {
		results = append(results, CheckResolution(ctx, opts.Dir, opts.Resolver))
	}
	return results
}
