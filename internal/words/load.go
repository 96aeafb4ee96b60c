// internal/words/load.go
//
// Loaders that turn raw word lists into a Catalog.
//
// Open dispatches on the configured location:
//   ""                    → embedded assets/words.json
//   "sqlite:<path>"       → SQLite word database (sqlite.go)
//   "http://", "https://" → download (JSON or plain text body)
//   anything else         → local file (JSON or plain text)
//
// Every failure is wrapped with ErrWordListUnavailable so callers can stop
// before any round starts.

package words

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ahnaf-chowdhury/wordmaster/assets"
)

// maxDownloadBytes bounds an HTTP word list.
const maxDownloadBytes = 8 << 20

// Open loads a Dictionary from location. The returned close function must be
// called when the dictionary is no longer needed.
func Open(ctx context.Context, location string, timeout time.Duration) (Dictionary, func() error, error) {
	noop := func() error { return nil }
	switch {
	case location == "":
		c, err := Embedded()
		return c, noop, err
	case IsSQLiteLocation(location):
		s, err := OpenSQLite(strings.TrimPrefix(location, "sqlite:"))
		if err != nil {
			return nil, noop, err
		}
		return s, s.Close, nil
	case strings.HasPrefix(location, "http://"), strings.HasPrefix(location, "https://"):
		c, err := Download(ctx, location, timeout)
		return c, noop, err
	default:
		c, err := LoadFile(location)
		return c, noop, err
	}
}

// Embedded loads the dictionary compiled into the binary.
func Embedded() (*Catalog, error) {
	data, err := assets.DictionaryJSON()
	if err != nil {
		return nil, fmt.Errorf("%w: embedded: %v", ErrWordListUnavailable, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("embedded: %w", err)
	}
	log.Debug().Str("source", "embedded").Int("words", c.Size()).Msg("word list loaded")
	return c, nil
}

// LoadFile reads a JSON or plain-text word list from path.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWordListUnavailable, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Debug().Str("source", path).Int("words", c.Size()).Msg("word list loaded")
	return c, nil
}

// Download fetches a JSON or plain-text word list over HTTP.
// A non-positive timeout means 10 seconds.
func Download(ctx context.Context, url string, timeout time.Duration) (*Catalog, error) {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWordListUnavailable, err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: download: %v", ErrWordListUnavailable, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: download: unexpected status %s", ErrWordListUnavailable, resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDownloadBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrWordListUnavailable, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", url, err)
	}
	log.Info().Str("source", url).Int("words", c.Size()).Msg("word list downloaded")
	return c, nil
}

// Parse builds a Catalog from data. A body starting with "{" is decoded as
// a JSON object of word arrays (keys only fix the order; lengths are
// recomputed from the words), anything else as one word per line.
func Parse(data []byte) (*Catalog, error) {
	var list []string
	trimmed := bytes.TrimSpace(data)
	if bytes.HasPrefix(trimmed, []byte("{")) {
		var byKey map[string][]string
		if err := json.Unmarshal(trimmed, &byKey); err != nil {
			return nil, fmt.Errorf("%w: decode json: %v", ErrWordListUnavailable, err)
		}
		keys := make([]string, 0, len(byKey))
		for k := range byKey {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			list = append(list, byKey[k]...)
		}
	} else {
		var err error
		if list, err = readLines(bytes.NewReader(data)); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrWordListUnavailable, err)
		}
	}

	c := NewCatalog(list)
	if c.Size() == 0 {
		return nil, fmt.Errorf("%w: no playable words", ErrWordListUnavailable)
	}
	return c, nil
}

// readLines returns the non-blank, non-comment lines of r.
func readLines(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, s)
	}
	return out, sc.Err()
}
