package store_test

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gosuda/algofr/store"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	tick := 0
	clock := func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Minute)
	}
	return store.Open(filepath.Join(t.TempDir(), "nested", "algorithms.yaml"), store.WithClock(clock))
}

func TestCreateGetList(t *testing.T) {
	s := newTestStore(t)

	first, err := s.Create("Salutation", "Début\nFin")
	require.NoError(t, err)
	require.Equal(t, int64(1), first.ID)

	second, err := s.Create("  Factorielle ", "Début\nÉcrire 1\nFin")
	require.NoError(t, err)
	require.Equal(t, int64(2), second.ID)
	require.Equal(t, "Factorielle", second.Name)

	got, err := s.Get(first.ID)
	require.NoError(t, err)
	require.Equal(t, "Début\nFin", got.Code)

	list, err := s.List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, second.ID, list[0].ID, "newest first")

	byName, err := s.FindByName("Factorielle")
	require.NoError(t, err)
	require.Equal(t, second.ID, byName.ID)
}

func TestUpdatePartialAndDelete(t *testing.T) {
	s := newTestStore(t)
	a, err := s.Create("Somme", "Début\nFin")
	require.NoError(t, err)

	code := "Début\nÉcrire 2\nFin"
	updated, err := s.Update(a.ID, store.Patch{Code: &code})
	require.NoError(t, err)
	require.Equal(t, "Somme", updated.Name)
	require.Equal(t, code, updated.Code)
	require.True(t, updated.UpdatedAt.After(a.UpdatedAt))

	require.NoError(t, s.Delete(a.ID))
	_, err = s.Get(a.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
	require.ErrorIs(t, s.Delete(a.ID), store.ErrNotFound)

	// ids are not reused after a delete
	b, err := s.Create("Autre", "Début\nFin")
	require.NoError(t, err)
	require.Equal(t, int64(2), b.ID)
}

func TestValidation(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Create("", "Début\nFin")
	require.ErrorIs(t, err, store.ErrInvalid)

	_, err = s.Create("ok", "   ")
	require.ErrorIs(t, err, store.ErrInvalid)

	_, err = s.Create(strings.Repeat("é", store.MaxNameLength+1), "Début\nFin")
	require.ErrorIs(t, err, store.ErrInvalid)

	a, err := s.Create("ok", "Début\nFin")
	require.NoError(t, err)
	empty := ""
	_, err = s.Update(a.ID, store.Patch{Name: &empty})
	require.ErrorIs(t, err, store.ErrInvalid)

	_, err = s.Update(99, store.Patch{})
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestReopenReadsSameFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "algorithms.yaml")
	a, err := store.Open(path).Create("Max", "Début\nFin")
	require.NoError(t, err)

	got, err := store.Open(path).Get(a.ID)
	require.NoError(t, err)
	require.Equal(t, "Max", got.Name)
	require.True(t, got.CreatedAt.Equal(a.CreatedAt))
}
