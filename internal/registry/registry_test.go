package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/worldreg/internal/testutil"
	"github.com/vk/worldreg/internal/world"
)

func TestLoad_WorldForMap(t *testing.T) {
	ctx, _ := testutil.Context(t)
	root := t.TempDir()
	first := testutil.WriteFile(t, filepath.Join(root, "a", "b", "first.world"),
		`{"maps": [{"fileName": "../maps/m1.tmx"}, {"fileName": "m2.tmx", "x": 1}]}`)
	second := testutil.WriteFile(t, filepath.Join(root, "second.world"),
		`{"maps": [{"fileName": "other/m3.tmx"}]}`)

	reg := New()
	require.NoError(t, reg.Load(ctx, first))
	require.NoError(t, reg.Load(ctx, second))
	assert.Equal(t, 2, reg.Len())

	w := reg.WorldForMap(filepath.Join(root, "a", "maps", "m1.tmx"))
	require.NotNil(t, w)
	assert.Equal(t, first, w.FileName)

	w = reg.WorldForMap(filepath.Join(root, "a", "b", "m2.tmx"))
	require.NotNil(t, w)
	assert.Equal(t, first, w.FileName)

	w = reg.WorldForMap(filepath.Join(root, "other", "m3.tmx"))
	require.NotNil(t, w)
	assert.Equal(t, second, w.FileName)

	assert.Nil(t, reg.WorldForMap(filepath.Join(root, "nowhere.tmx")))
}

func TestWorldForMap_FirstLoadedWins(t *testing.T) {
	ctx, _ := testutil.Context(t)
	root := t.TempDir()
	shared := `{"maps": [{"fileName": "shared.tmx"}]}`
	a := testutil.WriteFile(t, filepath.Join(root, "a.world"), shared)
	b := testutil.WriteFile(t, filepath.Join(root, "b.world"), shared)

	reg := New()
	require.NoError(t, reg.Load(ctx, b))
	require.NoError(t, reg.Load(ctx, a))

	w := reg.WorldForMap(filepath.Join(root, "shared.tmx"))
	require.NotNil(t, w)
	assert.Equal(t, b, w.FileName)

	// Reloading b moves it behind a.
	require.NoError(t, reg.Load(ctx, b))
	assert.Equal(t, []string{a, b}, reg.FileNames())
	assert.Equal(t, a, reg.WorldForMap(filepath.Join(root, "shared.tmx")).FileName)
}

func TestWorldForMap_IgnoresPatterns(t *testing.T) {
	ctx, _ := testutil.Context(t)
	root := t.TempDir()
	path := testutil.WriteFile(t, filepath.Join(root, "w.world"),
		`{"patterns": [{"regexp": "map_(\\d+)_(\\d+)\\.tmx"}]}`)

	reg := New()
	require.NoError(t, reg.Load(ctx, path))
	require.Len(t, reg.World(path).Patterns, 1)

	assert.Nil(t, reg.WorldForMap(filepath.Join(root, "map_1_2.tmx")))
}

func TestLoad_ReplacesExistingWorld(t *testing.T) {
	ctx, _ := testutil.Context(t)
	root := t.TempDir()
	path := testutil.WriteFile(t, filepath.Join(root, "w.world"), `{"maps": [{"fileName": "old.tmx"}]}`)

	reg := New()
	require.NoError(t, reg.Load(ctx, path))
	require.NotNil(t, reg.WorldForMap(filepath.Join(root, "old.tmx")))

	testutil.WriteFile(t, path, `{"maps": [{"fileName": "new.tmx"}]}`)
	require.NoError(t, reg.Load(ctx, path))

	assert.Equal(t, 1, reg.Len())
	assert.Nil(t, reg.WorldForMap(filepath.Join(root, "old.tmx")))
	assert.NotNil(t, reg.WorldForMap(filepath.Join(root, "new.tmx")))
}

func TestLoad_FailureInvalidatesPreviousWorld(t *testing.T) {
	ctx, _ := testutil.Context(t)
	root := t.TempDir()
	path := testutil.WriteFile(t, filepath.Join(root, "w.world"), `{"maps": [{"fileName": "m.tmx"}]}`)
	other := testutil.WriteFile(t, filepath.Join(root, "other.world"), `{"maps": [{"fileName": "o.tmx"}]}`)

	reg := New()
	require.NoError(t, reg.Load(ctx, path))
	require.NoError(t, reg.Load(ctx, other))

	testutil.WriteFile(t, path, `{"maps": [`)
	err := reg.Load(ctx, path)
	require.Error(t, err)
	assert.ErrorIs(t, err, world.ErrMalformed)

	assert.Nil(t, reg.World(path))
	assert.Nil(t, reg.WorldForMap(filepath.Join(root, "m.tmx")))
	assert.Equal(t, []string{other}, reg.FileNames())
	assert.NotNil(t, reg.WorldForMap(filepath.Join(root, "o.tmx")))

	require.NoError(t, os.Remove(path))
	err = reg.Load(ctx, path)
	assert.ErrorIs(t, err, world.ErrUnreadable)
	assert.Equal(t, 1, reg.Len())
}

func TestLoad_KeyIsCleaned(t *testing.T) {
	ctx, _ := testutil.Context(t)
	root := t.TempDir()
	path := testutil.WriteFile(t, filepath.Join(root, "w.world"), `{}`)

	reg := New()
	require.NoError(t, reg.Load(ctx, filepath.Join(root, ".", "sub", "..", "w.world")))
	require.NoError(t, reg.Load(ctx, path))

	assert.Equal(t, []string{path}, reg.FileNames())
	assert.NotNil(t, reg.World(root+"/./w.world"))
}

func TestUnload(t *testing.T) {
	ctx, _ := testutil.Context(t)
	root := t.TempDir()
	path := testutil.WriteFile(t, filepath.Join(root, "w.world"), `{"maps": [{"fileName": "m.tmx"}]}`)

	reg := New()
	require.NoError(t, reg.Load(ctx, path))

	reg.Unload(path)
	assert.Zero(t, reg.Len())
	assert.Nil(t, reg.WorldForMap(filepath.Join(root, "m.tmx")))
	assert.Empty(t, reg.FileNames())

	assert.NotPanics(t, func() {
		reg.Unload(path)
		reg.Unload(filepath.Join(root, "never-loaded.world"))
	})
}

func TestClose(t *testing.T) {
	ctx, _ := testutil.Context(t)
	root := t.TempDir()
	path := testutil.WriteFile(t, filepath.Join(root, "w.world"), `{"maps": [{"fileName": "m.tmx"}]}`)

	reg := New()
	require.NoError(t, reg.Load(ctx, path))
	reg.Close()

	assert.Zero(t, reg.Len())
	assert.Empty(t, reg.Worlds())
	assert.Nil(t, reg.WorldForMap(filepath.Join(root, "m.tmx")))

	// Still usable after Close.
	require.NoError(t, reg.Load(ctx, path))
	assert.Equal(t, 1, reg.Len())
}

func TestLoadAll(t *testing.T) {
	ctx, logs := testutil.Context(t)
	root := t.TempDir()
	a := testutil.WriteFile(t, filepath.Join(root, "worlds", "a.world"), `{"maps": [{"fileName": "a.tmx"}]}`)
	b := testutil.WriteFile(t, filepath.Join(root, "worlds", "nested", "b.world"), `{"maps": [{"fileName": "b.tmx"}]}`)
	bad := testutil.WriteFile(t, filepath.Join(root, "worlds", "bad.world"), `not json`)
	testutil.WriteFile(t, filepath.Join(root, "worlds", "a.tmx"), `<map/>`)
	explicit := testutil.WriteFile(t, filepath.Join(root, "explicit.json"), `{}`)
	missing := filepath.Join(root, "missing.world")

	reg := New()
	err := reg.LoadAll(ctx, filepath.Join(root, "worlds"), explicit, missing)
	require.Error(t, err)
	assert.ErrorIs(t, err, world.ErrMalformed)
	assert.ErrorIs(t, err, world.ErrUnreadable)
	assert.Contains(t, err.Error(), "failed to load 2 of 5 worlds")

	var batch *BatchError
	require.ErrorAs(t, err, &batch)
	require.Len(t, batch.Failures, 2)
	assert.Equal(t, bad, batch.Failures[0].Path)
	assert.Equal(t, missing, batch.Failures[1].Path)

	assert.ElementsMatch(t, []string{a, b, explicit}, reg.FileNames())
	assert.Nil(t, reg.World(bad))
	assert.NotNil(t, reg.WorldForMap(filepath.Join(root, "worlds", "nested", "b.tmx")))
	assert.Contains(t, logs.String(), "Failed to load world.")
}

func TestLoadAll_NothingFound(t *testing.T) {
	ctx, logs := testutil.Context(t)

	reg := New()
	require.NoError(t, reg.LoadAll(ctx, t.TempDir()))
	assert.Zero(t, reg.Len())
	assert.Contains(t, logs.String(), "No world descriptors found.")
}
