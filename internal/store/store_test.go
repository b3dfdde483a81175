package store

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ocluk/caolan/internal/models"
)

func newOpenStore(t *testing.T) *RecordStore {
	t.Helper()
	s := New(filepath.Join(t.TempDir(), "details.db"))
	require.NoError(t, s.Open(context.Background()))
	t.Cleanup(func() {
		_ = s.Close()
	})
	return s
}

func TestOpenFreshStoreIsEmpty(t *testing.T) {
	s := newOpenStore(t)

	details, err := s.FetchAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, details)
	assert.True(t, s.IsOpen())
}

func TestOpenTwiceIsNoOp(t *testing.T) {
	s := newOpenStore(t)
	ctx := context.Background()

	id, err := s.Create(ctx, "Tony", "51 Papworth", "02-Jan-1962", "077xx123456")
	require.NoError(t, err)

	require.NoError(t, s.Open(ctx))

	got, err := s.FetchOne(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Tony", got.Name)
}

func TestOpenWithoutPathFails(t *testing.T) {
	s := New("")
	err := s.Open(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStorageUnavailable)
	assert.False(t, s.IsOpen())

	_, err = s.Create(context.Background(), "Tony", "", "", "")
	assert.ErrorIs(t, err, ErrStoreClosed)
}

func TestLifecycleLogsStayBelowInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	s := New(filepath.Join(t.TempDir(), "details.db"), WithLogger(logger))
	require.NoError(t, s.Open(context.Background()))
	require.NoError(t, s.Close())

	assert.Empty(t, buf.String(), "open and close should only log at debug level")
}

func TestOpenUnavailableStorage(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	s := New(filepath.Join(blocker, "details.db"))
	err := s.Open(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStorageUnavailable)
	assert.False(t, s.IsOpen())
}

func TestCloseIsIdempotent(t *testing.T) {
	never := New(filepath.Join(t.TempDir(), "never.db"))
	assert.NoError(t, never.Close(), "close on a never-opened store")

	s := New(filepath.Join(t.TempDir(), "details.db"))
	require.NoError(t, s.Open(context.Background()))
	assert.NoError(t, s.Close())
	assert.NoError(t, s.Close(), "second close")
	assert.False(t, s.IsOpen())
}

func TestOperationsOnClosedStore(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "details.db"))
	ctx := context.Background()

	id, err := s.Create(ctx, "a", "b", "c", "d")
	assert.ErrorIs(t, err, ErrStoreClosed)
	assert.Equal(t, InvalidID, id)

	_, err = s.FetchAll(ctx)
	assert.ErrorIs(t, err, ErrStoreClosed)

	_, err = s.FetchOne(ctx, 1)
	assert.ErrorIs(t, err, ErrStoreClosed)

	ok, err := s.Update(ctx, 1, "a", "b", "c", "d")
	assert.ErrorIs(t, err, ErrStoreClosed)
	assert.False(t, ok)

	ok, err = s.Delete(ctx, 1)
	assert.ErrorIs(t, err, ErrStoreClosed)
	assert.False(t, ok)
}

func TestCreateThenFetchOne(t *testing.T) {
	s := newOpenStore(t)
	ctx := context.Background()

	id, err := s.Create(ctx, "Tony", "51 Papworth", "02-Jan-1962", "077xx123456")
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	got, err := s.FetchOne(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, &models.Detail{
		ID:          1,
		Name:        "Tony",
		Address:     "51 Papworth",
		DateOfBirth: "02-Jan-1962",
		Telephone:   "077xx123456",
	}, got)
}

func TestCreateRoundTripsFieldTuples(t *testing.T) {
	tests := []struct {
		name      string
		fName     string
		address   string
		dob       string
		telephone string
	}{
		{"plain", "Caolan", "12 Street", "02-Feb-1962", "077xx123456"},
		{"empty strings", "", "", "", ""},
		{"unicode and quotes", "Seán O'Brien", "1 Rue de l'Église", "1962-04-02", "+353 (0) 1 234"},
		{"free-form date", "Another", "45 Road", "sometime in spring", "n/a"},
	}

	s := newOpenStore(t)
	ctx := context.Background()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := s.Create(ctx, tt.fName, tt.address, tt.dob, tt.telephone)
			require.NoError(t, err)
			require.NotEqual(t, InvalidID, id)

			got, err := s.FetchOne(ctx, id)
			require.NoError(t, err)
			assert.Equal(t, id, got.ID)
			assert.Equal(t, tt.fName, got.Name)
			assert.Equal(t, tt.address, got.Address)
			assert.Equal(t, tt.dob, got.DateOfBirth)
			assert.Equal(t, tt.telephone, got.Telephone)
		})
	}
}

func TestFetchAllReturnsEveryCreatedRecord(t *testing.T) {
	s := newOpenStore(t)
	ctx := context.Background()

	const n = 5
	created := make(map[int64]bool, n)
	for i := 0; i < n; i++ {
		id, err := s.Create(ctx, "name", "address", "dob", "tel")
		require.NoError(t, err)
		created[id] = true
	}

	details, err := s.FetchAll(ctx)
	require.NoError(t, err)
	require.Len(t, details, n)

	seen := make(map[int64]bool, n)
	for _, d := range details {
		assert.True(t, created[d.ID], "unexpected id %d", d.ID)
		assert.False(t, seen[d.ID], "duplicate id %d", d.ID)
		seen[d.ID] = true
	}
}

func TestUpdateReflectsNewValues(t *testing.T) {
	s := newOpenStore(t)
	ctx := context.Background()

	id, err := s.Create(ctx, "Tony", "51 Papworth", "02-Jan-1962", "077xx123456")
	require.NoError(t, err)

	ok, err := s.Update(ctx, id, "Anthony", "52 Papworth", "03-Jan-1962", "077xx000000")
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := s.FetchOne(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, &models.Detail{
		ID:          id,
		Name:        "Anthony",
		Address:     "52 Papworth",
		DateOfBirth: "03-Jan-1962",
		Telephone:   "077xx000000",
	}, got)
}

func TestDeleteThenFetchOneNotFound(t *testing.T) {
	s := newOpenStore(t)
	ctx := context.Background()

	id, err := s.Create(ctx, "Tony", "51 Papworth", "02-Jan-1962", "077xx123456")
	require.NoError(t, err)

	ok, err := s.Delete(ctx, id)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = s.FetchOne(ctx, id)
	assert.True(t, errors.Is(err, models.ErrNotFound), "got %v", err)
}

func TestDeleteFirstOfTwo(t *testing.T) {
	s := newOpenStore(t)
	ctx := context.Background()

	first, err := s.Create(ctx, "Tony", "51 Papworth", "02-Jan-1962", "077xx123456")
	require.NoError(t, err)
	second, err := s.Create(ctx, "Caolan", "12 Street", "02-Feb-1962", "077xx123456")
	require.NoError(t, err)

	ok, err := s.Delete(ctx, first)
	require.NoError(t, err)
	require.True(t, ok)

	details, err := s.FetchAll(ctx)
	require.NoError(t, err)
	require.Len(t, details, 1)
	assert.Equal(t, second, details[0].ID)
	assert.Equal(t, "Caolan", details[0].Name)
}

func TestMissingIDLeavesRecordsUntouched(t *testing.T) {
	s := newOpenStore(t)
	ctx := context.Background()

	id, err := s.Create(ctx, "Tony", "51 Papworth", "02-Jan-1962", "077xx123456")
	require.NoError(t, err)
	before, err := s.FetchAll(ctx)
	require.NoError(t, err)

	ok, err := s.Update(ctx, id+1, "x", "x", "x", "x")
	require.NoError(t, err, "no row matched is not a storage failure")
	assert.False(t, ok)

	ok, err = s.Delete(ctx, id+1)
	require.NoError(t, err, "no row matched is not a storage failure")
	assert.False(t, ok)

	after, err := s.FetchAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestRecordsSurviveReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "details.db")
	ctx := context.Background()

	s := New(path)
	require.NoError(t, s.Open(ctx))
	id, err := s.Create(ctx, "Tony", "51 Papworth", "02-Jan-1962", "077xx123456")
	require.NoError(t, err)
	require.NoError(t, s.Close())

	reopened := New(path)
	require.NoError(t, reopened.Open(ctx))
	defer reopened.Close()

	got, err := reopened.FetchOne(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Tony", got.Name)
	assert.Equal(t, path, reopened.Path())
}
