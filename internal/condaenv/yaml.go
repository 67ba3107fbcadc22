//go:build !noyaml

package condaenv

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// YAMLExtractor는 파일을 YAML 문서로 파싱해 최상위 name 필드를 읽는다.
type YAMLExtractor struct{}

var _ Extractor = YAMLExtractor{}

type envFile struct {
	Name string `yaml:"name"`
}

// ExtractName은 최상위 name 값을 반환한다.
func (YAMLExtractor) ExtractName(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("condaenv.ExtractName: %s: %v: %w", path, err, ErrMalformed)
	}

	var env envFile
	if err := yaml.Unmarshal(data, &env); err != nil {
		return "", fmt.Errorf("condaenv.ExtractName: %s: %v: %w", path, err, ErrMalformed)
	}

	name := strings.TrimSpace(env.Name)
	if name == "" {
		return "", fmt.Errorf("condaenv.ExtractName: %s: name 없음: %w", path, ErrMalformed)
	}
	return name, nil
}
