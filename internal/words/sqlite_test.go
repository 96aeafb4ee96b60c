package words

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *SQLiteSource {
	t.Helper()
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "data", "words.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSQLiteImportAndQuery(t *testing.T) {
	ctx := context.Background()
	s := openTestDB(t)

	added, err := s.Import(ctx, []string{"crane", "Slate", "cat", "bad word", "crane"})
	require.NoError(t, err)
	assert.Equal(t, 3, added)

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	five, err := s.WordsOfLength(5)
	require.NoError(t, err)
	assert.Equal(t, []string{"crane", "slate"}, five)

	assert.True(t, s.IsValid("SLATE"))
	assert.False(t, s.IsValid("pilot"))
	assert.False(t, s.IsValid("x"))
}

func TestSQLiteImportInvalidatesCache(t *testing.T) {
	ctx := context.Background()
	s := openTestDB(t)

	_, err := s.Import(ctx, []string{"crane"})
	require.NoError(t, err)
	first, err := s.WordsOfLength(5)
	require.NoError(t, err)
	require.Equal(t, []string{"crane"}, first)

	added, err := s.Import(ctx, []string{"crane", "pilot"})
	require.NoError(t, err)
	assert.Equal(t, 1, added)

	second, err := s.WordsOfLength(5)
	require.NoError(t, err)
	assert.Equal(t, []string{"crane", "pilot"}, second)
}

func TestSQLiteMigrationsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.db")
	s, err := OpenSQLite(path)
	require.NoError(t, err)
	_, err = s.Import(context.Background(), []string{"crane"})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	reopened, err := OpenSQLite(path)
	require.NoError(t, err)
	defer reopened.Close()
	assert.True(t, reopened.IsValid("crane"))

	var applied int
	require.NoError(t, reopened.db.QueryRow(`SELECT COUNT(1) FROM _migrations`).Scan(&applied))
	assert.Equal(t, 1, applied)
}

func TestSQLiteRandom(t *testing.T) {
	s := openTestDB(t)
	_, err := Random(s, 5)
	require.ErrorIs(t, err, ErrWordListUnavailable)

	_, err = s.Import(context.Background(), []string{"crane"})
	require.NoError(t, err)
	w, err := Random(s, 5)
	require.NoError(t, err)
	assert.Equal(t, "crane", w)
}
