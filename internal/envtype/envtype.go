package envtype

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidKind는 지원하지 않는 환경 종류가 주어졌을 때 반환된다.
var ErrInvalidKind = errors.New("지원하지 않는 환경 종류")

// Kind는 파이썬 환경 관리자의 종류다.
type Kind int

const (
	// Unknown은 파싱으로는 만들어지지 않는 zero value다.
	Unknown Kind = iota
	// Conda는 conda 환경이다.
	Conda
	// Venv는 virtualenv/venv 디렉토리다.
	Venv
	// Poetry는 poetry가 관리하는 가상환경이다.
	Poetry
	// Linked는 .linked_env로 고정된 환경이다. 최종 활성화 대상이 아니다.
	Linked
)

var kindNames = map[Kind]string{
	Conda:  "conda",
	Venv:   "venv",
	Poetry: "poetry",
	Linked: "linked",
}

// String은 링크 파일과 설정 파일에 쓰이는 소문자 이름을 반환한다.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("unknown(%d)", int(k))
}

// Activatable은 k가 직접 활성화 가능한 종류인지 반환한다.
func (k Kind) Activatable() bool {
	return k == Conda || k == Venv || k == Poetry
}

// Known은 k가 정의된 종류인지 반환한다.
func (k Kind) Known() bool {
	_, ok := kindNames[k]
	return ok
}

// ParseKind는 이름을 Kind로 변환한다. 대소문자와 앞뒤 공백은 무시한다.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return Unknown, fmt.Errorf("envtype.ParseKind: %q: %w", s, ErrInvalidKind)
}

// Kinds는 지원하는 모든 종류를 기본 우선순위 순으로 반환한다.
func Kinds() []Kind {
	return []Kind{Conda, Linked, Poetry, Venv}
}

// Names는 kinds의 이름 목록을 반환한다.
func Names(kinds []Kind) []string {
	names := make([]string, 0, len(kinds))
	for _, k := range kinds {
		names = append(names, k.String())
	}
	return names
}
