package usecase

import (
	"context"
	"testing"

	"github.com/runoshun/netshare/internal/domain"
	"github.com/runoshun/netshare/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddProfile_Execute(t *testing.T) {
	repo := testutil.NewMockProfileRepository()
	uc := NewAddProfile(repo)

	p := domain.Profile{Name: "media", UNC: `\\nas\media`, Letter: "M"}
	require.NoError(t, uc.Execute(context.Background(), AddProfileInput{Profile: p}))
	assert.Equal(t, p, repo.Profiles["media"])

	err := uc.Execute(context.Background(), AddProfileInput{Profile: p})
	assert.ErrorIs(t, err, domain.ErrProfileExists)
	assert.Contains(t, err.Error(), `add profile "media"`)
}

func TestListProfiles_Execute(t *testing.T) {
	repo := testutil.NewMockProfileRepository()
	repo.Profiles["a"] = domain.Profile{Name: "a"}

	profiles, err := NewListProfiles(repo).Execute(context.Background())
	require.NoError(t, err)
	assert.Len(t, profiles, 1)

	repo.LoadErr = assert.AnError
	_, err = NewListProfiles(repo).Execute(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
}

func TestRemoveProfile_Execute(t *testing.T) {
	repo := testutil.NewMockProfileRepository()
	repo.Profiles["a"] = domain.Profile{Name: "a"}
	uc := NewRemoveProfile(repo)

	require.NoError(t, uc.Execute(context.Background(), "a"))
	assert.Empty(t, repo.Profiles)

	err := uc.Execute(context.Background(), "a")
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
}

func TestImportProfiles_Execute(t *testing.T) {
	repo := testutil.NewMockProfileRepository()
	repo.Profiles["old"] = domain.Profile{Name: "old", UNC: `\\s\old`, Letter: "O"}
	uc := NewImportProfiles(repo)

	in := ImportProfilesInput{Profiles: []domain.Profile{
		{Name: "new", UNC: `\\s\new`, Letter: "N"},
		{Name: "old", UNC: `\\s\changed`, Letter: "O"},
	}}

	out, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, []string{"new"}, out.Imported)
	assert.Equal(t, []string{"old"}, out.Skipped)
	assert.Equal(t, `\\s\old`, repo.Profiles["old"].UNC)

	in.Replace = true
	out, err = uc.Execute(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, []string{"new", "old"}, out.Imported)
	assert.Empty(t, out.Skipped)
	assert.Equal(t, `\\s\changed`, repo.Profiles["old"].UNC)
}

func TestImportProfiles_Execute_StopsOnError(t *testing.T) {
	repo := testutil.NewMockProfileRepository()
	repo.AddErr = assert.AnError

	_, err := NewImportProfiles(repo).Execute(context.Background(), ImportProfilesInput{
		Profiles: []domain.Profile{{Name: "x"}},
	})
	assert.ErrorIs(t, err, assert.AnError)
}
