package daily

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahnaf-chowdhury/wordmaster/internal/words"
)

func TestDateKeyUsesUTC(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	ts := time.Date(2024, 3, 2, 5, 0, 0, 0, loc)
	assert.Equal(t, "2024-03-01", DateKey(ts))
}

func TestWordIndexDeterministic(t *testing.T) {
	day := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	later := time.Date(2024, 3, 1, 23, 59, 0, 0, time.UTC)

	a := WordIndex(day, 5, "salt", 1000)
	assert.Equal(t, a, WordIndex(later, 5, "salt", 1000), "same day, same index")
	assert.GreaterOrEqual(t, a, 0)
	assert.Less(t, a, 1000)

	assert.Equal(t, 0, WordIndex(day, 5, "salt", 0))
}

func TestWordIndexVaries(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	seen := map[int]bool{}
	for d := 0; d < 30; d++ {
		seen[WordIndex(start.AddDate(0, 0, d), 5, "salt", 1000)] = true
	}
	assert.Greater(t, len(seen), 1)
}

func TestPick(t *testing.T) {
	c := words.NewCatalog([]string{"crane", "slate", "pilot", "mound", "brick"})
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	w1, err := Pick(c, 5, day, "")
	require.NoError(t, err)
	w2, err := Pick(c, 5, day, DefaultSalt)
	require.NoError(t, err)
	assert.Equal(t, w1, w2)
	assert.True(t, c.IsValid(w1))

	_, err = Pick(c, 6, day, "")
	require.ErrorIs(t, err, words.ErrWordListUnavailable)
}
