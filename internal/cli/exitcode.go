package cli

import (
	"errors"
)

// ExitCode는 pyactivate의 종료 코드다. POSIX errno 값을 따른다.
type ExitCode int

const (
	// ExitSuccess는 정상 종료다.
	ExitSuccess ExitCode = 0
	// ExitGeneral는 일반 에러다 (EPERM).
	ExitGeneral ExitCode = 1
	// ExitNotFound는 링크 파일이 없을 때다 (ENOENT).
	ExitNotFound ExitCode = 2
	// ExitAlreadyExists는 이미 링크된 디렉토리다 (EEXIST).
	ExitAlreadyExists ExitCode = 17
	// ExitInvalidArgument는 잘못된 인자나 설정이다 (EINVAL).
	ExitInvalidArgument ExitCode = 22
	// ExitNotSupported는 활성화할 수 없는 종류다 (EOPNOTSUPP).
	ExitNotSupported ExitCode = 95
)

// MapExitCode는 sentinel error를 기반으로 적절한 종료 코드를 반환한다.
func MapExitCode(err error) ExitCode {
	if err == nil {
		return ExitSuccess
	}
	switch {
	case errors.Is(err, ErrNotFound):
		return ExitNotFound
	case errors.Is(err, ErrAlreadyExists):
		return ExitAlreadyExists
	case errors.Is(err, ErrUnknownKind):
		return ExitNotSupported
	case errors.Is(err, ErrInvalidArgument),
		errors.Is(err, ErrInvalidKind),
		errors.Is(err, ErrInvalidLocator),
		errors.Is(err, ErrUnsupportedKind),
		errors.Is(err, ErrConfig),
		errors.Is(err, ErrUsage):
		return ExitInvalidArgument
	default:
		return ExitGeneral
	}
}
