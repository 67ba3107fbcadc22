package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
	"github.com/hbjs97/pyactivate/internal/envtype"
	"github.com/hbjs97/pyactivate/internal/shell"
)

// ErrConfig는 설정 파일 오류를 나타내는 sentinel error다.
var ErrConfig = errors.New("설정 파일 오류")

// Config는 pyactivate 설정 파일의 최상위 구조체다.
type Config struct {
	Version             int                 `toml:"version"`
	Priority            []string            `toml:"priority"`
	Shell               string              `toml:"shell"`
	DeactivateCondaBase bool                `toml:"deactivate_conda_base"`
	Banner              *bool               `toml:"banner"`
	Markers             map[string][]string `toml:"markers,omitempty"`
}

// Default는 설정 파일이 없을 때 쓰는 기본 설정을 반환한다.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// DefaultPath는 XDG 설정 디렉토리 아래의 config.toml 경로를 반환한다.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "pyactivate", "config.toml")
}

// Load는 config.toml을 파싱하여 Config를 반환한다.
// 파일이 없으면 기본 설정을 반환한다.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("config.Load: %v: %w", err, ErrConfig)
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save는 설정을 TOML 파일로 저장한다 (0600 권한).
func Save(path string, cfg *Config) error {
	if err := cfg.validate(); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("config.Save: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("config.Save: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0600); err != nil {
		return fmt.Errorf("config.Save: %w", err)
	}
	return nil
}

// PriorityKinds는 검증된 우선순위를 반환한다.
func (c *Config) PriorityKinds() envtype.Priority {
	p, err := envtype.ParsePriority(c.Priority)
	if err != nil {
		return envtype.DefaultPriority()
	}
	return p
}

// MarkerSet은 기본 marker 구성에 설정의 [markers] 값을 덮어쓴 결과를 반환한다.
func (c *Config) MarkerSet() envtype.Markers {
	m := envtype.DefaultMarkers()
	for name, files := range c.Markers {
		k, err := envtype.ParseKind(name)
		if err != nil {
			continue
		}
		m[k] = append([]string(nil), files...)
	}
	return m
}

// IsBanner는 banner 설정값을 반환한다.
func (c *Config) IsBanner() bool {
	if c.Banner == nil {
		return true
	}
	return *c.Banner
}

func (c *Config) applyDefaults() {
	if c.Version == 0 {
		c.Version = 1
	}
	// 빈 목록은 그대로 둔다. 아무 환경도 활성화하지 않는다는 뜻이다.
	if c.Priority == nil {
		c.Priority = envtype.DefaultPriority().Strings()
	}
	if c.Shell == "" {
		c.Shell = shell.Zsh
	}
	if c.Banner == nil {
		t := true
		c.Banner = &t
	}
}

func (c *Config) validate() error {
	if _, err := envtype.ParsePriority(c.Priority); err != nil {
		return fmt.Errorf("config.Load: priority: %v: %w", err, ErrConfig)
	}
	if !shell.IsSupported(c.Shell) {
		return fmt.Errorf("config.Load: shell %q 지원하지 않음 (%v): %w", c.Shell, shell.Supported(), ErrConfig)
	}
	for name, files := range c.Markers {
		k, err := envtype.ParseKind(name)
		if err != nil {
			return fmt.Errorf("config.Load: markers.%s: %v: %w", name, err, ErrConfig)
		}
		// 링크 파일 이름은 link/unlink와 맞아야 하므로 바꿀 수 없다.
		if !k.Activatable() {
			return fmt.Errorf("config.Load: markers.%s 변경 불가: %w", name, ErrConfig)
		}
		if len(files) == 0 {
			return fmt.Errorf("config.Load: markers.%s 비어 있음: %w", name, ErrConfig)
		}
		for _, f := range files {
			if f == "" || filepath.Base(f) != f {
				return fmt.Errorf("config.Load: markers.%s: 파일 이름 %q 잘못됨: %w", name, f, ErrConfig)
			}
		}
	}
	return nil
}
