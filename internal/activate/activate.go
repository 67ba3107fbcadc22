// Package activate turns a resolved environment into the shell command that
// activates it, following .linked_env redirections, and decides which
// deactivation command applies to the current shell environment.
package activate

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/hbjs97/pyactivate/internal/cmdexec"
	"github.com/hbjs97/pyactivate/internal/condaenv"
	"github.com/hbjs97/pyactivate/internal/envtype"
	"github.com/hbjs97/pyactivate/internal/linkfile"
	"github.com/hbjs97/pyactivate/internal/report"
	"github.com/hbjs97/pyactivate/internal/shell"
	"github.com/rs/zerolog"
)

var (
	// ErrUnknownKind는 알 수 없는 환경 종류가 dispatch에 도달했을 때 반환된다.
	ErrUnknownKind = errors.New("알 수 없는 환경 종류")
	// ErrDependencyMissing는 필요한 외부 도구가 PATH에 없을 때의 sentinel error다.
	// Dispatch는 이 에러를 반환하지 않고 안내 메시지로 대신한다.
	ErrDependencyMissing = errors.New("필수 도구 없음")
)

// missingToolError는 어떤 도구가 없는지 담은 ErrDependencyMissing이다.
type missingToolError struct {
	tool string
}

func (e *missingToolError) Error() string {
	return fmt.Sprintf("%s: %v", e.tool, ErrDependencyMissing)
}

func (e *missingToolError) Unwrap() error {
	return ErrDependencyMissing
}

// 셸이 현재 활성 환경을 알리는 환경변수.
const (
	EnvVirtualEnv      = "VIRTUAL_ENV"
	EnvCondaDefaultEnv = "CONDA_DEFAULT_ENV"
)

// CondaBaseEnv는 비활성화하지 않는 conda 기본 환경 이름이다.
const CondaBaseEnv = "base"

// Dispatcher는 (종류, locator)를 활성화 명령으로 바꾼다.
type Dispatcher struct {
	Commander cmdexec.Commander
	Extractor condaenv.Extractor
	Reporter  *report.Reporter
	Shell     string

	// DeactivateCondaBase가 true이면 base 환경도 비활성화한다.
	DeactivateCondaBase bool
}

// New는 기본 Extractor를 쓰는 Dispatcher를 생성한다.
func New(cmd cmdexec.Commander, r *report.Reporter, shellType string) *Dispatcher {
	return &Dispatcher{
		Commander: cmd,
		Extractor: condaenv.Default(),
		Reporter:  r,
		Shell:     shellType,
	}
}

// Dispatch는 활성화 명령을 반환한다.
// 필요한 도구가 없으면 안내 메시지를 출력하고 빈 문자열을 반환한다.
func (d *Dispatcher) Dispatch(ctx context.Context, kind envtype.Kind, locator string) (string, error) {
	out, err := d.dispatch(ctx, kind, locator, false)
	var missing *missingToolError
	if errors.As(err, &missing) {
		zerolog.Ctx(ctx).Debug().Err(err).Msg("skip")
		d.Reporter.Info("Necessary dependency '%s' not installed, omitting this!", missing.tool)
		return "", nil
	}
	return out, err
}

func (d *Dispatcher) dispatch(ctx context.Context, kind envtype.Kind, locator string, redirected bool) (string, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("kind", kind.String()).Str("locator", locator).Msg("dispatch")

	switch kind {
	case envtype.Linked:
		// 링크는 한 번만 따라간다. linked를 가리키는 기록은 codec이 거부하지만
		// 우회해서 들어와도 무한 재귀하지 않는다.
		if redirected {
			return "", fmt.Errorf("activate.Dispatch: %s: 링크가 다시 링크를 가리킴: %w", locator, linkfile.ErrMalformed)
		}
		rec, err := linkfile.Read(locator)
		if err != nil {
			return "", fmt.Errorf("activate.Dispatch: %w", err)
		}
		return d.dispatch(ctx, rec.Kind, rec.Locator, true)

	case envtype.Poetry:
		if err := d.requireTool("poetry"); err != nil {
			return "", err
		}
		d.announce(kind)
		return shell.Poetry(d.Shell), nil

	case envtype.Venv:
		d.announce(kind)
		return shell.Venv(locator, d.Shell), nil

	case envtype.Conda:
		if err := d.requireTool("conda"); err != nil {
			return "", err
		}
		name := locator
		if isRegularFile(locator) {
			extracted, err := d.extractor().ExtractName(locator)
			if err != nil {
				return "", fmt.Errorf("activate.Dispatch: %w", err)
			}
			name = extracted
		}
		d.announce(kind)
		return shell.Conda(name, d.Shell), nil

	default:
		return "", fmt.Errorf("activate.Dispatch: %s: %w", kind, ErrUnknownKind)
	}
}

// Deactivate는 lookup으로 읽은 환경변수에 따라 비활성화 명령을 반환한다.
// VIRTUAL_ENV가 있으면 conda 검사는 하지 않는다.
func (d *Dispatcher) Deactivate(lookup func(string) string) string {
	if lookup(EnvVirtualEnv) != "" {
		return shell.Deactivate()
	}
	condaEnv := lookup(EnvCondaDefaultEnv)
	if condaEnv == "" {
		return ""
	}
	if condaEnv == CondaBaseEnv && !d.DeactivateCondaBase {
		return ""
	}
	return shell.CondaDeactivate()
}

// requireTool은 name이 PATH에 없으면 ErrDependencyMissing을 반환한다.
func (d *Dispatcher) requireTool(name string) error {
	if !cmdexec.Available(d.Commander, name) {
		return &missingToolError{tool: name}
	}
	return nil
}

func (d *Dispatcher) announce(kind envtype.Kind) {
	d.Reporter.Info("Try to activate '%s' environment ...", kind)
}

func (d *Dispatcher) extractor() condaenv.Extractor {
	if d.Extractor == nil {
		return condaenv.Default()
	}
	return d.Extractor
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
