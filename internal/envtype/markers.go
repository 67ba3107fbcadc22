package envtype

import (
	"fmt"
	"slices"
)

// Markers는 종류별로 디렉토리에 존재하면 해당 환경을 뜻하는 파일 이름 목록이다.
// 목록 내 순서가 탐색 순서다.
type Markers map[Kind][]string

// DefaultMarkers는 기본 marker 파일 구성을 반환한다.
func DefaultMarkers() Markers {
	return Markers{
		Conda:  {"environment.yaml", "environment.yml"},
		Linked: {".linked_env"},
		Poetry: {"poetry.lock", "pyproject.toml"},
		Venv:   {"venv", ".venv"},
	}
}

// Clone은 m의 깊은 복사본을 반환한다.
func (m Markers) Clone() Markers {
	out := make(Markers, len(m))
	for k, files := range m {
		out[k] = slices.Clone(files)
	}
	return out
}

// Priority는 같은 디렉토리 레벨에서 종류를 검사하는 순서다.
type Priority []Kind

// DefaultPriority는 conda, linked, poetry, venv 순서의 기본 우선순위다.
func DefaultPriority() Priority {
	return Priority{Conda, Linked, Poetry, Venv}
}

// ParsePriority는 이름 목록으로 Priority를 만들고 검증한다.
func ParsePriority(names []string) (Priority, error) {
	p := make(Priority, 0, len(names))
	for _, name := range names {
		k, err := ParseKind(name)
		if err != nil {
			return nil, fmt.Errorf("envtype.ParsePriority: %w", err)
		}
		p = append(p, k)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate는 모든 원소가 지원하는 종류이고 중복이 없는지 확인한다.
func (p Priority) Validate() error {
	seen := make(map[Kind]bool, len(p))
	for _, k := range p {
		if !k.Known() {
			return fmt.Errorf("envtype.Priority: %s (지원: %v): %w", k, Names(Kinds()), ErrInvalidKind)
		}
		if seen[k] {
			return fmt.Errorf("envtype.Priority: %s 중복: %w", k, ErrInvalidKind)
		}
		seen[k] = true
	}
	return nil
}

// Strings는 설정 파일에 저장할 이름 목록을 반환한다.
func (p Priority) Strings() []string {
	return Names(p)
}
