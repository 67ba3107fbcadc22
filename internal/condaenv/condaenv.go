// Package condaenv extracts the environment name from a conda environment
// definition file (environment.yml). Two strategies are provided: a YAML
// decoder and a line scanner. Which one Default returns is decided at build
// time with the noyaml build tag.
package condaenv

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"regexp"
)

// ErrMalformed는 환경 파일에서 이름을 찾을 수 없을 때 반환된다.
var ErrMalformed = errors.New("conda 환경 파일 형식 오류")

// Extractor는 conda 환경 파일에서 환경 이름을 추출한다.
type Extractor interface {
	ExtractName(path string) (string, error)
}

// conda 환경 이름에는 "/", 공백, ":", "#"를 쓸 수 없다.
var nameLinePattern = regexp.MustCompile(`^\s*name:\s*([^/\s:#]*)`)

// LineExtractor는 정규식으로 첫 번째 name: 줄을 찾는다.
type LineExtractor struct{}

var _ Extractor = LineExtractor{}

// ExtractName은 name: 패턴과 일치하는 첫 줄의 캡처 값을 반환한다.
func (LineExtractor) ExtractName(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("condaenv.ExtractName: %s: %v: %w", path, err, ErrMalformed)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		m := nameLinePattern.FindStringSubmatch(scanner.Text())
		if m == nil {
			continue
		}
		if m[1] == "" {
			break
		}
		return m[1], nil
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("condaenv.ExtractName: %s: %v: %w", path, err, ErrMalformed)
	}
	return "", fmt.Errorf("condaenv.ExtractName: %s: name 없음: %w", path, ErrMalformed)
}
