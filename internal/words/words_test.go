package words

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalogNormalizes(t *testing.T) {
	c := NewCatalog([]string{" Crane ", "slate", "crane", "ab", "toolongword", "caf3", "it's", "", "cat"})

	assert.Equal(t, 3, c.Size())
	assert.Equal(t, []int{3, 5}, c.Lengths())

	five, err := c.WordsOfLength(5)
	require.NoError(t, err)
	assert.Equal(t, []string{"crane", "slate"}, five)

	_, err = c.WordsOfLength(4)
	require.ErrorIs(t, err, ErrWordListUnavailable)

	assert.Equal(t, []string{"cat", "crane", "slate"}, c.All())
}

func TestCatalogIsValid(t *testing.T) {
	c := NewCatalog([]string{"crane", "about"})
	tests := []struct {
		word string
		want bool
	}{
		{"crane", true},
		{"ABOUT", true},
		{" about ", true},
		{"hello", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, c.IsValid(tt.word), "IsValid(%q)", tt.word)
	}
	assert.True(t, AllowAll{}.IsValid("zzzzz"))
}

func TestWordsOfLengthReturnsCopy(t *testing.T) {
	c := NewCatalog([]string{"crane", "slate"})
	list, err := c.WordsOfLength(5)
	require.NoError(t, err)
	list[0] = "xxxxx"
	again, _ := c.WordsOfLength(5)
	assert.Equal(t, "crane", again[0])
}

func TestRandom(t *testing.T) {
	c := NewCatalog([]string{"crane", "slate", "pilot", "cat"})
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		w, err := Random(c, 5)
		require.NoError(t, err)
		require.Len(t, w, 5)
		require.True(t, c.IsValid(w))
		seen[w] = true
	}
	assert.NotContains(t, seen, "cat")

	_, err := Random(c, 7)
	require.ErrorIs(t, err, ErrWordListUnavailable)
}

func TestParseJSON(t *testing.T) {
	c, err := Parse([]byte(`{"3": ["cat", "DOG"], "5": ["crane"], "9": ["wonderful"]}`))
	require.NoError(t, err)
	three, err := c.WordsOfLength(3)
	require.NoError(t, err)
	assert.Equal(t, []string{"cat", "dog"}, three)
	assert.Equal(t, 3, c.Size())
}

func TestParseLines(t *testing.T) {
	c, err := Parse([]byte("# comment\ncrane\n\nSlate\n  pilot  \n"))
	require.NoError(t, err)
	five, err := c.WordsOfLength(5)
	require.NoError(t, err)
	assert.Equal(t, []string{"crane", "slate", "pilot"}, five)
}

func TestParseFailures(t *testing.T) {
	_, err := Parse([]byte(`{"5": [`))
	require.ErrorIs(t, err, ErrWordListUnavailable)

	_, err = Parse([]byte("# nothing\n\n12345\n"))
	require.ErrorIs(t, err, ErrWordListUnavailable)
}

func TestEmbedded(t *testing.T) {
	c, err := Embedded()
	require.NoError(t, err)
	for n := MinLength; n <= MaxLength; n++ {
		list, err := c.WordsOfLength(n)
		require.NoError(t, err, "length %d", n)
		assert.NotEmpty(t, list)
	}
	assert.True(t, c.IsValid("crane"))
	assert.True(t, c.IsValid("alloy"))
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("crane\nslate\n"), 0o644))

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Size())

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.txt"))
	require.ErrorIs(t, err, ErrWordListUnavailable)
}

func TestDownload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/words.json":
			_, _ = w.Write([]byte(`{"5": ["crane", "slate"]}`))
		case "/words.txt":
			_, _ = w.Write([]byte("pilot\n"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	ctx := context.Background()
	c, err := Download(ctx, srv.URL+"/words.json", time.Second)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Size())

	c, err = Download(ctx, srv.URL+"/words.txt", time.Second)
	require.NoError(t, err)
	assert.True(t, c.IsValid("pilot"))

	_, err = Download(ctx, srv.URL+"/missing", time.Second)
	require.ErrorIs(t, err, ErrWordListUnavailable)
}

func TestOpenDispatch(t *testing.T) {
	ctx := context.Background()

	d, closeFn, err := Open(ctx, "", time.Second)
	require.NoError(t, err)
	assert.True(t, d.IsValid("crane"))
	require.NoError(t, closeFn())

	path := filepath.Join(t.TempDir(), "list.txt")
	require.NoError(t, os.WriteFile(path, []byte("crane\n"), 0o644))
	d, closeFn, err = Open(ctx, path, time.Second)
	require.NoError(t, err)
	assert.True(t, d.IsValid("crane"))
	require.NoError(t, closeFn())

	dbPath := filepath.Join(t.TempDir(), "words.db")
	d, closeFn, err = Open(ctx, "sqlite:"+dbPath, time.Second)
	require.NoError(t, err)
	_, err = d.WordsOfLength(5)
	require.ErrorIs(t, err, ErrWordListUnavailable, "fresh database is empty")
	require.NoError(t, closeFn())
}

func TestValidLength(t *testing.T) {
	assert.False(t, ValidLength(2))
	assert.True(t, ValidLength(3))
	assert.True(t, ValidLength(8))
	assert.False(t, ValidLength(9))
}

func TestCheck(t *testing.T) {
	c := NewCatalog([]string{"crane"})
	require.NoError(t, Check(c, "crane"))
	require.ErrorIs(t, Check(c, "zzzzz"), ErrNotInWordList)
	require.NoError(t, Check(AllowAll{}, "zzzzz"))
}
