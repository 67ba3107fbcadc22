//go:build !noyaml

package condaenv

// Default는 빌드에 포함된 기본 Extractor를 반환한다.
func Default() Extractor {
	return YAMLExtractor{}
}
