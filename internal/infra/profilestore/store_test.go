package profilestore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/netshare/internal/domain"
)

func TestNewStore_EmptyDir(t *testing.T) {
	_, err := NewStore("")
	assert.ErrorIs(t, err, ErrNoHomeDir)
}

func TestNewStore_RelativePath(t *testing.T) {
	_, err := NewStore("relative/path")
	assert.ErrorIs(t, err, ErrNoHomeDir)
}

func TestStore_LoadEmpty(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	file, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, 1, file.Version)
	assert.Empty(t, file.Profiles)
}

func TestStore_SaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)

	file := &domain.ProfileFile{
		Version: 1,
		Profiles: []domain.Profile{
			{Name: "zeta", UNC: `\\nas\zeta`, Letter: "Z", Username: "alice"},
			{Name: "alpha", UNC: `\\nas\alpha`, Letter: "A"},
		},
	}
	require.NoError(t, store.Save(file))

	// Verify file was created with correct permissions
	info, err := os.Stat(domain.ProfilesFilePath(dir))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	loaded, err := store.Load()
	require.NoError(t, err)
	require.Len(t, loaded.Profiles, 2)
	// Sorted by name on save
	assert.Equal(t, "alpha", loaded.Profiles[0].Name)
	assert.Equal(t, `\\nas\zeta`, loaded.Profiles[1].UNC)
	assert.Equal(t, "alice", loaded.Profiles[1].Username)
}

func TestStore_Add(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	p := domain.Profile{Name: "media", UNC: `\\nas\media`, Letter: "M"}
	require.NoError(t, store.Add(p, false))

	got, err := store.Get("media")
	require.NoError(t, err)
	assert.Equal(t, p, got)

	// Adding same name again should fail
	err = store.Add(p, false)
	assert.ErrorIs(t, err, domain.ErrProfileExists)

	// Replacing is allowed
	p.Letter = "N"
	require.NoError(t, store.Add(p, true))
	got, err = store.Get("media")
	require.NoError(t, err)
	assert.Equal(t, "N", got.Letter)

	file, err := store.Load()
	require.NoError(t, err)
	assert.Len(t, file.Profiles, 1)
}

func TestStore_AddInvalid(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	err = store.Add(domain.Profile{Name: "bad", UNC: "server/share", Letter: "Z"}, false)
	assert.ErrorIs(t, err, domain.ErrInvalidUNC)

	_, statErr := os.Stat(store.Path())
	assert.True(t, os.IsNotExist(statErr), "invalid profile must not create the file")
}

func TestStore_AddCorruptedFile(t *testing.T) {
	dir := t.TempDir()

	filePath := domain.ProfilesFilePath(dir)
	require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0755))
	require.NoError(t, os.WriteFile(filePath, []byte("this is not valid toml [[["), 0600))

	store, err := NewStore(dir)
	require.NoError(t, err)

	err = store.Add(domain.Profile{Name: "p", UNC: `\\s\x`, Letter: "Z"}, false)
	assert.ErrorIs(t, err, domain.ErrProfileFileBroken)

	// Verify file was not overwritten
	content, _ := os.ReadFile(filePath)
	assert.Contains(t, string(content), "this is not valid toml")
}

func TestStore_Remove(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Save(&domain.ProfileFile{
		Version: 1,
		Profiles: []domain.Profile{
			{Name: "a", UNC: `\\s\a`, Letter: "A"},
			{Name: "b", UNC: `\\s\b`, Letter: "B"},
			{Name: "c", UNC: `\\s\c`, Letter: "C"},
		},
	}))

	require.NoError(t, store.Remove("b"))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.Len(t, loaded.Profiles, 2)
	assert.Equal(t, "a", loaded.Profiles[0].Name)
	assert.Equal(t, "c", loaded.Profiles[1].Name)

	err = store.Remove("nonexistent")
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
}

func TestStore_GetNotFound(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Get("missing")
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
}

func TestStore_LoadDeduplicates(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)

	content := `version = 1

[[profiles]]
name = "dup"
unc = '\\first\share'
letter = "X"

[[profiles]]
name = "dup"
unc = '\\second\share'
letter = "Y"
`
	require.NoError(t, os.WriteFile(store.Path(), []byte(content), 0600))

	file, err := store.Load()
	require.NoError(t, err)
	require.Len(t, file.Profiles, 1)
	assert.Equal(t, `\\first\share`, file.Profiles[0].UNC)
}
