// Package lexicon loads the game title lexicon from the configured backend:
// a plain-text file with one title per line, or the SQLite catalog.
package lexicon

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/desksort/internal/sqlite"
	"github.com/mesh-intelligence/desksort/pkg/types"
)

// DefaultFile is the lexicon file name used when no path is configured.
const DefaultFile = "game_titles.txt"

// Store is a game title lexicon that can be listed and edited. Both the
// text file and the SQLite catalog implement it.
type Store interface {
	types.LexiconLoader
	io.Closer
	Titles(ctx context.Context) ([]string, error)
	ImportTitles(ctx context.Context, source string, titles []string) (int, error)
	RemoveTitles(ctx context.Context, titles []string) (int, error)
}

var (
	_ Store = (*TextFile)(nil)
	_ Store = (*sqlite.Catalog)(nil)
)

// ReadTitles reads one title per line from r. Lines are trimmed; blank lines
// are ignored. Titles are returned folded.
func ReadTitles(r io.Reader) ([]string, error) {
	var titles []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if title := types.Fold(scanner.Text()); title != "" {
			titles = append(titles, title)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading titles: %w", err)
	}
	return titles, nil
}

// ReadFile reads titles from the file at path.
func ReadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	return ReadTitles(f)
}

// TextFile loads the lexicon from a text file on every call. A missing file
// yields an empty lexicon and a warning.
type TextFile struct {
	Path   string
	Logger *zap.Logger
}

// LoadGameTitles implements types.LexiconLoader.
func (t *TextFile) LoadGameTitles(_ context.Context) (types.Lexicon, error) {
	titles, err := ReadFile(t.Path)
	if errors.Is(err, fs.ErrNotExist) {
		if t.Logger != nil {
			t.Logger.Warn("game title file not found, using an empty lexicon", zap.String("path", t.Path))
		}
		return types.Lexicon{}, nil
	}
	if err != nil {
		return types.Lexicon{}, err
	}
	return types.NewLexicon(titles), nil
}

// Close implements io.Closer.
func (t *TextFile) Close() error { return nil }

// Titles returns the titles in the file, folded, deduplicated and sorted. A
// missing file has no titles.
func (t *TextFile) Titles(ctx context.Context) ([]string, error) {
	lex, err := t.LoadGameTitles(ctx)
	if err != nil {
		return nil, err
	}
	return lex.Titles(), nil
}

// ImportTitles merges titles into the file and returns how many were new.
// The file is rewritten sorted, one title per line.
func (t *TextFile) ImportTitles(ctx context.Context, _ string, titles []string) (int, error) {
	existing, err := t.Titles(ctx)
	if err != nil {
		return 0, err
	}
	before := len(existing)
	merged := types.NewLexicon(append(existing, titles...)).Titles()
	if err := t.write(merged); err != nil {
		return 0, err
	}
	return len(merged) - before, nil
}

// RemoveTitles drops titles from the file and returns how many were present.
func (t *TextFile) RemoveTitles(ctx context.Context, titles []string) (int, error) {
	existing, err := t.Titles(ctx)
	if err != nil {
		return 0, err
	}
	drop := types.NewLexicon(titles)
	kept := existing[:0]
	for _, title := range existing {
		if !drop.Has(title) {
			kept = append(kept, title)
		}
	}
	removed := len(existing) - len(kept)
	if removed == 0 {
		return 0, nil
	}
	return removed, t.write(kept)
}

func (t *TextFile) write(titles []string) error {
	if err := os.MkdirAll(filepath.Dir(t.Path), 0o755); err != nil {
		return fmt.Errorf("creating lexicon directory: %w", err)
	}
	var b strings.Builder
	for _, title := range titles {
		b.WriteString(title)
		b.WriteByte('\n')
	}
	if err := os.WriteFile(t.Path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", t.Path, err)
	}
	return nil
}

// Path returns the lexicon file configured in cfg, or DefaultFile inside
// dataDir.
func Path(cfg types.Config, dataDir string) string {
	if cfg.LexiconPath != "" {
		return cfg.LexiconPath
	}
	return filepath.Join(dataDir, DefaultFile)
}

// Open returns the store for the backend named in cfg.
func Open(cfg types.Config, dataDir string, log *zap.Logger) (Store, error) {
	switch cfg.LexiconBackend {
	case types.LexiconBackendText, "":
		return &TextFile{Path: Path(cfg, dataDir), Logger: log}, nil
	case types.LexiconBackendSQLite:
		c, err := sqlite.OpenCatalog(dataDir)
		if err != nil {
			return nil, fmt.Errorf("opening game title catalog: %w", err)
		}
		return c, nil
	default:
		return nil, fmt.Errorf("%w: %s", types.ErrLexiconBackendUnknown, cfg.LexiconBackend)
	}
}
