// Package sqlite stores the game title catalog in a SQLite database.
//
// The catalog is the persistent alternative to the plain-text lexicon file:
// titles are imported once (from a file or another tool's export) and loaded
// at the start of every organize pass.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/desksort/pkg/types"
)

// CatalogFile is the database file name inside the data directory.
const CatalogFile = "desksort.db"

// ErrCatalogClosed is returned by operations on a closed catalog.
var ErrCatalogClosed = errors.New("catalog is closed")

// Catalog is a SQLite-backed set of game titles. It implements
// types.LexiconLoader.
type Catalog struct {
	mu   sync.RWMutex
	db   *sql.DB
	path string
}

// OpenCatalog opens (creating if needed) the catalog in dataDir.
func OpenCatalog(dataDir string) (*Catalog, error) {
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	path := filepath.Join(dataDir, CatalogFile)
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)

	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return nil, fmt.Errorf("creating schema: %w", err)
		}
	}
	return &Catalog{db: db, path: path}, nil
}

// Path returns the database file path.
func (c *Catalog) Path() string { return c.path }

// Close releases the database. Close is idempotent.
func (c *Catalog) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.db == nil {
		return nil
	}
	err := c.db.Close()
	c.db = nil
	return err
}

// ImportTitles adds titles to the catalog, folded. Blank titles and titles
// already present are skipped. It returns the number of titles added.
func (c *Catalog) ImportTitles(ctx context.Context, source string, titles []string) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.db == nil {
		return 0, ErrCatalogClosed
	}

	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning import transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT OR IGNORE INTO game_titles (title, source, added_at) VALUES (?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC().Format(time.RFC3339)
	added := 0
	for _, t := range titles {
		title := types.Fold(t)
		if title == "" {
			continue
		}
		res, err := stmt.ExecContext(ctx, title, source, now)
		if err != nil {
			return 0, fmt.Errorf("inserting %q: %w", title, err)
		}
		if n, err := res.RowsAffected(); err == nil {
			added += int(n)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing import: %w", err)
	}
	return added, nil
}

// RemoveTitles deletes titles from the catalog and returns how many were
// present.
func (c *Catalog) RemoveTitles(ctx context.Context, titles []string) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.db == nil {
		return 0, ErrCatalogClosed
	}

	removed := 0
	for _, t := range titles {
		res, err := c.db.ExecContext(ctx, `DELETE FROM game_titles WHERE title = ?`, types.Fold(t))
		if err != nil {
			return removed, fmt.Errorf("deleting %q: %w", t, err)
		}
		if n, err := res.RowsAffected(); err == nil {
			removed += int(n)
		}
	}
	return removed, nil
}

// Titles returns every title in the catalog in sorted order.
func (c *Catalog) Titles(ctx context.Context) ([]string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.db == nil {
		return nil, ErrCatalogClosed
	}

	rows, err := c.db.QueryContext(ctx, `SELECT title FROM game_titles ORDER BY title`)
	if err != nil {
		return nil, fmt.Errorf("querying titles: %w", err)
	}
	defer rows.Close()

	var titles []string
	for rows.Next() {
		var title string
		if err := rows.Scan(&title); err != nil {
			return nil, fmt.Errorf("scanning title: %w", err)
		}
		titles = append(titles, title)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating titles: %w", err)
	}
	return titles, nil
}

// LoadGameTitles returns the catalog as a lexicon.
func (c *Catalog) LoadGameTitles(ctx context.Context) (types.Lexicon, error) {
	titles, err := c.Titles(ctx)
	if err != nil {
		return types.Lexicon{}, err
	}
	return types.NewLexicon(titles), nil
}
