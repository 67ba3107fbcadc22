package resolver_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/hbjs97/pyactivate/internal/envtype"
	"github.com/hbjs97/pyactivate/internal/resolver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// touch creates a file (or a directory when the name has a trailing slash)
// under dir.
func touch(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		path := filepath.Join(dir, name)
		if name[len(name)-1] == '/' {
			require.NoError(t, os.MkdirAll(path, 0755))
			continue
		}
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, nil, 0644))
	}
}

// uniqueMarkers avoids matches from whatever lives above t.TempDir().
func uniqueMarkers() envtype.Markers {
	return envtype.Markers{
		envtype.Conda:  {"pyact-env.yaml", "pyact-env.yml"},
		envtype.Linked: {"pyact-linked"},
		envtype.Poetry: {"pyact-poetry.lock"},
		envtype.Venv:   {"pyact-venv", ".pyact-venv"},
	}
}

func TestResolve_VenvInStartDir(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "venv/")

	res, err := resolver.Resolve(context.Background(), root, envtype.DefaultPriority())
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, envtype.Venv, res.Kind)
	assert.Equal(t, filepath.Join(root, "venv"), res.Locator)
	assert.Equal(t, root, res.Dir())
}

func TestResolve_WalksUpToAncestor(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "environment.yml", "src/pkg/deep/")

	res, err := resolver.Resolve(context.Background(), filepath.Join(root, "src", "pkg", "deep"), envtype.DefaultPriority())
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, envtype.Conda, res.Kind)
	assert.Equal(t, filepath.Join(root, "environment.yml"), res.Locator)
}

func TestResolve_PriorityWinsWithinLevel(t *testing.T) {
	root := t.TempDir()
	touch(t, root, ".venv/", "poetry.lock", "environment.yaml")

	res, err := resolver.Resolve(context.Background(), root, envtype.DefaultPriority())
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, envtype.Conda, res.Kind)

	res, err = resolver.Resolve(context.Background(), root, envtype.Priority{envtype.Venv, envtype.Conda})
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, envtype.Venv, res.Kind)
	assert.Equal(t, filepath.Join(root, ".venv"), res.Locator)
}

func TestResolve_MarkerOrderWithinKind(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "environment.yml", "environment.yaml")

	res, err := resolver.Resolve(context.Background(), root, envtype.DefaultPriority())
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, filepath.Join(root, "environment.yaml"), res.Locator)
}

func TestResolve_NearestLevelBeatsHigherPriorityAncestor(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "environment.yml", "project/venv/")

	res, err := resolver.Resolve(context.Background(), filepath.Join(root, "project"), envtype.DefaultPriority())
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, envtype.Venv, res.Kind)
	assert.Equal(t, filepath.Join(root, "project", "venv"), res.Locator)
}

func TestResolve_EarlierKindBeatsLaterKindEvenWithAncestorMatch(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "poetry.lock", "app/poetry.lock", "app/.linked_env")

	res, err := resolver.Resolve(context.Background(), filepath.Join(root, "app"), envtype.DefaultPriority())
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, envtype.Linked, res.Kind)
	assert.Equal(t, filepath.Join(root, "app", ".linked_env"), res.Locator)
}

func TestResolve_KindMissingFromPriorityIsIgnored(t *testing.T) {
	root := t.TempDir()
	r := &resolver.Resolver{Priority: envtype.Priority{envtype.Conda}, Markers: uniqueMarkers()}
	touch(t, root, "pyact-venv/")

	res, err := r.Resolve(context.Background(), root)
	require.NoError(t, err)
	assert.Nil(t, res)
}

func TestResolve_NoMarkersReturnsNil(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "a/b/c/", "a/README.md")
	r := &resolver.Resolver{Priority: envtype.DefaultPriority(), Markers: uniqueMarkers()}

	res, err := r.Resolve(context.Background(), filepath.Join(root, "a", "b", "c"))
	require.NoError(t, err)
	assert.Nil(t, res)
}

func TestResolve_Deterministic(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "pyact-venv/", "pyact-poetry.lock", "x/y/")
	r := &resolver.Resolver{Priority: envtype.DefaultPriority(), Markers: uniqueMarkers()}

	first, err := r.Resolve(context.Background(), filepath.Join(root, "x", "y"))
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := r.Resolve(context.Background(), filepath.Join(root, "x", "y"))
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
	assert.Equal(t, envtype.Poetry, first.Kind)
}

func TestResolve_RelativeStartDir(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "sub/pyact-venv/")
	chdir(t, root)
	r := &resolver.Resolver{Priority: envtype.DefaultPriority(), Markers: uniqueMarkers()}

	res, err := r.Resolve(context.Background(), "sub")
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.True(t, filepath.IsAbs(res.Locator))
	assert.Equal(t, "pyact-venv", filepath.Base(res.Locator))
}

func TestResolve_InvalidPriority(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "venv/")

	_, err := resolver.Resolve(context.Background(), root, envtype.Priority{envtype.Venv, envtype.Kind(99)})
	assert.ErrorIs(t, err, resolver.ErrInvalidArgument)

	_, err = resolver.Resolve(context.Background(), root, envtype.Priority{envtype.Venv, envtype.Venv})
	assert.ErrorIs(t, err, resolver.ErrInvalidArgument)
}

func TestResolve_StartDirMustExist(t *testing.T) {
	_, err := resolver.Resolve(context.Background(), filepath.Join(t.TempDir(), "missing"), envtype.DefaultPriority())
	assert.ErrorIs(t, err, resolver.ErrInvalidArgument)
}

func TestResolve_StartDirIsFile(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "file.txt")

	_, err := resolver.Resolve(context.Background(), filepath.Join(root, "file.txt"), envtype.DefaultPriority())
	assert.ErrorIs(t, err, resolver.ErrInvalidArgument)
}

// chdir changes the working directory for the duration of the test,
// mirroring testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	orig, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PWD", abs)
	t.Cleanup(func() {
		if err := os.Chdir(orig); err != nil {
			t.Fatal(err)
		}
	})
}
