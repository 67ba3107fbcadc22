package cli

import (
	"errors"

	"github.com/hbjs97/pyactivate/internal/activate"
	"github.com/hbjs97/pyactivate/internal/condaenv"
	"github.com/hbjs97/pyactivate/internal/config"
	"github.com/hbjs97/pyactivate/internal/envtype"
	"github.com/hbjs97/pyactivate/internal/linkfile"
	"github.com/hbjs97/pyactivate/internal/resolver"
)

// ErrUsage는 잘못된 인자나 플래그로 명령을 호출했을 때의 sentinel error다.
var ErrUsage = errors.New("잘못된 사용법")

// 각 도메인 패키지의 sentinel error를 CLI 레이어에서 편의상 re-export한다.
var (
	// ErrInvalidArgument는 잘못된 priority나 시작 디렉토리를 나타낸다.
	ErrInvalidArgument = resolver.ErrInvalidArgument
	// ErrInvalidKind는 알 수 없는 환경 종류 이름이다.
	ErrInvalidKind = envtype.ErrInvalidKind
	// ErrAlreadyExists는 이미 링크 파일이 있는 디렉토리에 다시 링크할 때의 sentinel error다.
	ErrAlreadyExists = linkfile.ErrAlreadyExists
	// ErrNotFound는 링크 파일이 없을 때의 sentinel error다.
	ErrNotFound = linkfile.ErrNotFound
	// ErrMalformed는 링크 파일 형식 오류다.
	ErrMalformed = linkfile.ErrMalformed
	// ErrInvalidLocator는 링크 대상이 비어있거나 구분자를 포함할 때의 sentinel error다.
	ErrInvalidLocator = linkfile.ErrInvalidLocator
	// ErrUnsupportedKind는 venv, conda 외의 종류로 링크하려 할 때의 sentinel error다.
	ErrUnsupportedKind = linkfile.ErrUnsupportedKind
	// ErrCondaEnvMalformed는 conda 환경 파일에서 이름을 찾지 못했을 때의 sentinel error다.
	ErrCondaEnvMalformed = condaenv.ErrMalformed
	// ErrConfig는 설정 파일 오류를 나타내는 sentinel error다.
	ErrConfig = config.ErrConfig
	// ErrUnknownKind는 활성화할 수 없는 종류가 전달되었을 때의 sentinel error다.
	ErrUnknownKind = activate.ErrUnknownKind
)
