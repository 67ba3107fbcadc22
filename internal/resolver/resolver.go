package resolver

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hbjs97/pyactivate/internal/envtype"
	"github.com/rs/zerolog"
)

// ErrInvalidArgument는 잘못된 우선순위나 디렉토리가 주어졌을 때 반환된다.
var ErrInvalidArgument = errors.New("잘못된 인자")

// Result는 Resolver의 판정 결과다.
type Result struct {
	Kind envtype.Kind
	// Locator는 일치한 marker 파일의 절대 경로다.
	Locator string
}

// Dir은 marker가 발견된 디렉토리를 반환한다.
func (r *Result) Dir() string {
	return filepath.Dir(r.Locator)
}

// Resolver는 시작 디렉토리에서 루트까지 올라가며 환경 marker를 찾는다.
type Resolver struct {
	Priority envtype.Priority
	Markers  envtype.Markers
}

// New는 기본 marker 구성으로 Resolver를 생성한다.
func New(priority envtype.Priority) *Resolver {
	return &Resolver{Priority: priority, Markers: envtype.DefaultMarkers()}
}

// Resolve는 startDir부터 상위 디렉토리 순으로 marker를 검사한다.
// 각 레벨에서는 우선순위 순, 종류 내에서는 marker 순서대로 확인하고
// 처음 일치한 결과를 반환한다. 루트까지 없으면 nil, nil을 반환한다.
func (r *Resolver) Resolve(ctx context.Context, startDir string) (*Result, error) {
	if err := r.Priority.Validate(); err != nil {
		return nil, fmt.Errorf("resolver.Resolve: %v: %w", err, ErrInvalidArgument)
	}

	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, fmt.Errorf("resolver.Resolve: %v: %w", err, ErrInvalidArgument)
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("resolver.Resolve: %s 디렉토리가 아님: %w", startDir, ErrInvalidArgument)
	}

	logger := zerolog.Ctx(ctx)
	for {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("resolver.Resolve: %w", err)
		}
		names := make(map[string]bool, len(entries))
		for _, e := range entries {
			names[e.Name()] = true
		}

		if res := r.match(dir, names); res != nil {
			logger.Debug().Str("kind", res.Kind.String()).Str("locator", res.Locator).Msg("marker found")
			return res, nil
		}
		logger.Debug().Str("dir", dir).Msg("no marker")

		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, nil
		}
		dir = parent
	}
}

func (r *Resolver) match(dir string, names map[string]bool) *Result {
	for _, kind := range r.Priority {
		for _, marker := range r.Markers[kind] {
			if names[marker] {
				return &Result{Kind: kind, Locator: filepath.Join(dir, marker)}
			}
		}
	}
	return nil
}

// Resolve는 기본 marker 구성으로 startDir을 판정한다.
func Resolve(ctx context.Context, startDir string, priority envtype.Priority) (*Result, error) {
	return New(priority).Resolve(ctx, startDir)
}
