package linkfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hbjs97/pyactivate/internal/envtype"
)

// FileName은 디렉토리를 환경에 고정하는 링크 파일 이름이다.
const FileName = ".linked_env"

var (
	// ErrAlreadyExists는 이미 링크된 디렉토리에 다시 링크하려 할 때 반환된다.
	ErrAlreadyExists = errors.New("이미 링크된 디렉토리")
	// ErrNotFound는 링크 파일이 없을 때 반환된다.
	ErrNotFound = errors.New("링크 파일 없음")
	// ErrMalformed는 링크 파일 내용을 해석할 수 없을 때 반환된다.
	ErrMalformed = errors.New("링크 파일 형식 오류")
	// ErrInvalidLocator는 저장할 수 없는 locator가 주어졌을 때 반환된다.
	ErrInvalidLocator = errors.New("잘못된 환경 이름 또는 경로")
	// ErrUnsupportedKind는 링크할 수 없는 환경 종류가 주어졌을 때 반환된다.
	ErrUnsupportedKind = errors.New("링크할 수 없는 환경 종류")
)

// Record는 링크 파일 한 줄에 저장되는 (종류, locator) 쌍이다.
type Record struct {
	Kind    envtype.Kind
	Locator string
}

// String은 파일에 기록되는 "<kind>;<locator>" 형식을 반환한다.
func (r Record) String() string {
	return r.Kind.String() + ";" + r.Locator
}

// Path는 dir 안의 링크 파일 경로를 반환한다.
func Path(dir string) string {
	return filepath.Join(dir, FileName)
}

// Write는 dir에 링크 파일을 생성한다.
// venv locator는 절대 경로로 바꿔 저장하고, conda locator는 그대로 저장한다.
func Write(dir string, kind envtype.Kind, locator string) error {
	if kind != envtype.Venv && kind != envtype.Conda {
		return fmt.Errorf("linkfile.Write: %s: %w", kind, ErrUnsupportedKind)
	}
	if strings.TrimSpace(locator) == "" || strings.ContainsAny(locator, ";\n\r") {
		return fmt.Errorf("linkfile.Write: %q: %w", locator, ErrInvalidLocator)
	}

	path := Path(dir)
	if _, err := os.Lstat(path); err == nil {
		return fmt.Errorf("linkfile.Write: %s: %w", path, ErrAlreadyExists)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("linkfile.Write: %w", err)
	}

	if kind == envtype.Venv {
		abs, err := filepath.Abs(locator)
		if err != nil {
			return fmt.Errorf("linkfile.Write: %w", err)
		}
		locator = abs
	}

	// O_EXCL로 확인과 생성 사이에 생긴 파일을 덮어쓰지 않는다.
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if os.IsExist(err) {
			return fmt.Errorf("linkfile.Write: %s: %w", path, ErrAlreadyExists)
		}
		return fmt.Errorf("linkfile.Write: %w", err)
	}
	defer f.Close()

	rec := Record{Kind: kind, Locator: locator}
	if _, err := f.WriteString(rec.String()); err != nil {
		return fmt.Errorf("linkfile.Write: %w", err)
	}
	return nil
}

// recordKinds는 링크 파일 첫 필드로 허용하는 이름이다. 소문자만 허용한다.
var recordKinds = map[string]envtype.Kind{
	envtype.Conda.String():  envtype.Conda,
	envtype.Venv.String():   envtype.Venv,
	envtype.Poetry.String(): envtype.Poetry,
}

// Read는 링크 파일을 파싱한다.
func Read(path string) (*Record, error) {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return nil, fmt.Errorf("linkfile.Read: %s: %w", path, ErrNotFound)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("linkfile.Read: %w", err)
	}

	fields := strings.Split(string(data), ";")
	if len(fields) != 2 {
		return nil, fmt.Errorf("linkfile.Read: %s: %w", path, ErrMalformed)
	}

	kind, ok := recordKinds[strings.TrimSpace(fields[0])]
	if !ok {
		return nil, fmt.Errorf("linkfile.Read: %s: 종류 %q: %w", path, strings.TrimSpace(fields[0]), ErrMalformed)
	}

	locator := strings.TrimSpace(fields[1])
	if locator == "" {
		return nil, fmt.Errorf("linkfile.Read: %s: locator 없음: %w", path, ErrMalformed)
	}

	return &Record{Kind: kind, Locator: locator}, nil
}

// Remove는 dir의 링크 파일을 삭제한다.
// 링크 파일이 없으면 false를 반환하며 에러로 취급하지 않는다.
func Remove(dir string) (bool, error) {
	path := Path(dir)
	info, err := os.Lstat(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("linkfile.Remove: %w", err)
	}
	if info.IsDir() {
		return false, nil
	}
	if err := os.Remove(path); err != nil {
		return false, fmt.Errorf("linkfile.Remove: %w", err)
	}
	return true, nil
}
