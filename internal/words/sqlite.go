// internal/words/sqlite.go
//
// SQLite-backed word database.
// Responsibilities:
//   - Opening the database with safe defaults (WAL, busy timeout).
//   - Applying embedded migrations (idempotent, recorded in _migrations).
//   - Serving words by length, cached per length in an LRU.
//   - Importing word lists (see the "import" command in main.go).

package words

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// SQLiteSource is a Dictionary stored in a SQLite database.
type SQLiteSource struct {
	db    *sql.DB
	cache *lru.Cache[int, []string]
}

// OpenSQLite opens (and creates if missing) the word database at path and
// applies migrations.
func OpenSQLite(path string) (*SQLiteSource, error) {
	db, err := openDB(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrWordListUnavailable, path, err)
	}
	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: migrate %s: %v", ErrWordListUnavailable, path, err)
	}
	cache, err := lru.New[int, []string](MaxLength - MinLength + 1)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLiteSource{db: db, cache: cache}, nil
}

// openDB opens a SQLite database file, creating its parent directory.
func openDB(dsn string) (*sql.DB, error) {
	dir := filepath.Dir(dsn)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// migrate applies the embedded migrations in lexical order, skipping any
// already recorded in _migrations.
func migrate(db *sql.DB) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}

	files, err := fs.Glob(migrationsFS, "migrations/*.sql")
	if err != nil {
		return fmt.Errorf("list migrations: %w", err)
	}
	sort.Strings(files)

	for _, f := range files {
		var done int
		err := db.QueryRow(`SELECT 1 FROM _migrations WHERE name=?`, f).Scan(&done)
		if err == nil {
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("query _migrations: %w", err)
		}

		sqlBytes, err := migrationsFS.ReadFile(f)
		if err != nil {
			return fmt.Errorf("read %s: %w", f, err)
		}

		tx, err := db.Begin()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(string(sqlBytes)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply %s: %w", f, err)
		}
		if _, err := tx.Exec(`INSERT INTO _migrations(name) VALUES (?)`, f); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record %s: %w", f, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit %s: %w", f, err)
		}
		log.Debug().Str("migration", f).Msg("applied")
	}
	return nil
}

// WordsOfLength returns the words of length n in insertion order.
func (s *SQLiteSource) WordsOfLength(n int) ([]string, error) {
	if list, ok := s.cache.Get(n); ok {
		return append([]string(nil), list...), nil
	}

	rows, err := s.db.Query(`SELECT word FROM words WHERE length=? ORDER BY rowid`, n)
	if err != nil {
		return nil, fmt.Errorf("%w: query: %v", ErrWordListUnavailable, err)
	}
	defer rows.Close()

	var list []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, fmt.Errorf("%w: scan: %v", ErrWordListUnavailable, err)
		}
		list = append(list, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWordListUnavailable, err)
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("%w: no %d-letter words", ErrWordListUnavailable, n)
	}

	s.cache.Add(n, list)
	return append([]string(nil), list...), nil
}

// IsValid reports whether w is stored in the database.
func (s *SQLiteSource) IsValid(w string) bool {
	w, ok := Normalize(w)
	if !ok {
		return false
	}
	var one int
	err := s.db.QueryRow(`SELECT 1 FROM words WHERE word=?`, w).Scan(&one)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		log.Warn().Err(err).Msg("word lookup")
	}
	return err == nil
}

// Import normalizes list and inserts every playable word, ignoring ones
// already present. It returns the number of new words.
func (s *SQLiteSource) Import(ctx context.Context, list []string) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `INSERT OR IGNORE INTO words (word, length) VALUES (?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	added := 0
	for _, raw := range list {
		w, ok := Normalize(raw)
		if !ok {
			continue
		}
		res, err := stmt.ExecContext(ctx, w, len(w))
		if err != nil {
			return 0, fmt.Errorf("insert %q: %w", w, err)
		}
		if n, _ := res.RowsAffected(); n > 0 {
			added++
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit import: %w", err)
	}
	s.cache.Purge()
	return added, nil
}

// Count returns the number of stored words.
func (s *SQLiteSource) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM words`).Scan(&n)
	return n, err
}

// Close releases the database handle.
func (s *SQLiteSource) Close() error { return s.db.Close() }

// IsSQLiteLocation reports whether location names a SQLite word database.
func IsSQLiteLocation(location string) bool {
	return strings.HasPrefix(location, "sqlite:")
}
