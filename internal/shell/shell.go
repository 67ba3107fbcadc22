package shell

import (
	"fmt"
	"strings"

	"github.com/alessio/shellescape"
)

// 지원하는 셸 유형.
const (
	Zsh  = "zsh"
	Bash = "bash"
	Fish = "fish"
)

// Supported는 셸 유형 목록을 반환한다.
func Supported() []string {
	return []string{Zsh, Bash, Fish}
}

// IsSupported는 shellType이 지원하는 셸인지 반환한다.
func IsSupported(shellType string) bool {
	switch shellType {
	case Zsh, Bash, Fish:
		return true
	default:
		return false
	}
}

// Quote는 s를 shellType의 eval에서 한 단어로 읽히도록 인용한다.
// 특수문자가 없으면 그대로 반환한다.
func Quote(s, shellType string) string {
	quoted := shellescape.Quote(s)
	if shellType != Fish || quoted == s {
		return quoted
	}
	// fish는 작은따옴표 안에서도 \\와 \'를 해석한다.
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`)
	return "'" + r.Replace(s) + "'"
}

// Venv는 virtualenv 활성화 스크립트를 source하는 명령을 생성한다.
func Venv(locator, shellType string) string {
	locator = Quote(strings.TrimRight(locator, "/"), shellType)
	if shellType == Fish {
		return fmt.Sprintf("source %s/bin/activate.fish", locator)
	}
	return fmt.Sprintf("source %s/bin/activate", locator)
}

// Poetry는 poetry가 관리하는 가상환경을 활성화하는 명령을 생성한다.
// 가상환경 경로는 셸이 eval할 때 poetry에게 묻는다.
func Poetry(shellType string) string {
	if shellType == Fish {
		return "source (poetry env info --path)/bin/activate.fish"
	}
	return "source $(poetry env info --path)/bin/activate"
}

// Conda는 이름으로 conda 환경을 활성화하는 명령을 생성한다.
func Conda(name, shellType string) string {
	return fmt.Sprintf("conda activate %s", Quote(name, shellType))
}

// Deactivate는 virtualenv/poetry 비활성화 명령이다.
func Deactivate() string {
	return "deactivate"
}

// CondaDeactivate는 conda 환경 비활성화 명령이다.
func CondaDeactivate() string {
	return "conda deactivate"
}

// HookSnippet는 셸 디렉토리 변경 hook 스니펫을 반환한다.
func HookSnippet(shellType string) string {
	switch shellType {
	case Zsh:
		return `# pyactivate shell integration (zsh)
_pyactivate_chpwd() {
  eval "$(pyactivate deactivate --shell zsh)"
  eval "$(pyactivate activate --shell zsh)"
}
chpwd_functions+=(_pyactivate_chpwd)
_pyactivate_chpwd
`
	case Bash:
		return `# pyactivate shell integration (bash)
_pyactivate_prompt_command() {
  if [ "$PWD" != "$_PYACTIVATE_LAST_PWD" ]; then
    _PYACTIVATE_LAST_PWD="$PWD"
    eval "$(pyactivate deactivate --shell bash)"
    eval "$(pyactivate activate --shell bash)"
  fi
}
PROMPT_COMMAND="_pyactivate_prompt_command;${PROMPT_COMMAND}"
`
	case Fish:
		return `# pyactivate shell integration (fish)
function _pyactivate_chpwd --on-variable PWD
  eval (pyactivate deactivate --shell fish)
  eval (pyactivate activate --shell fish)
end
`
	default:
		return ""
	}
}
