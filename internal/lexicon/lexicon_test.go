package lexicon

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/mesh-intelligence/desksort/internal/sqlite"
	"github.com/mesh-intelligence/desksort/pkg/types"
)

func TestReadTitles(t *testing.T) {
	input := "Hades\n\n   \n  Stardew Valley  \r\nВЕДЬМАК 3\n"

	titles, err := ReadTitles(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []string{"hades", "stardew valley", "ведьмак 3"}, titles)
}

func TestTextFileLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "titles.txt")
	require.NoError(t, os.WriteFile(path, []byte("Hollow Knight\nCeleste\n"), 0o644))

	lex, err := (&TextFile{Path: path}).LoadGameTitles(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, lex.Len())
	assert.True(t, lex.Has("hollow knight"))
}

func TestTextFileMissing(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	loader := &TextFile{Path: filepath.Join(t.TempDir(), "absent.txt"), Logger: zap.New(core)}

	lex, err := loader.LoadGameTitles(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, lex.Len())
	assert.Equal(t, 1, logs.FilterMessageSnippet("not found").Len())
}

func TestTextFileUnreadable(t *testing.T) {
	dir := t.TempDir()

	// A directory cannot be read as a title file.
	_, err := (&TextFile{Path: dir}).LoadGameTitles(context.Background())
	assert.Error(t, err)
}

func TestPath(t *testing.T) {
	assert.Equal(t, filepath.Join("/data", DefaultFile), Path(types.Config{}, "/data"))
	assert.Equal(t, "/etc/games.txt", Path(types.Config{LexiconPath: "/etc/games.txt"}, "/data"))
}

func TestOpenBackends(t *testing.T) {
	dir := t.TempDir()

	loader, err := Open(types.Config{LexiconBackend: types.LexiconBackendText}, dir, nil)
	require.NoError(t, err)
	assert.IsType(t, &TextFile{}, loader)
	require.NoError(t, loader.Close())

	loader, err = Open(types.Config{LexiconBackend: types.LexiconBackendSQLite}, dir, nil)
	require.NoError(t, err)
	assert.IsType(t, &sqlite.Catalog{}, loader)
	lex, err := loader.LoadGameTitles(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, lex.Len())
	require.NoError(t, loader.Close())

	_, err = Open(types.Config{LexiconBackend: "redis"}, dir, nil)
	assert.ErrorIs(t, err, types.ErrLexiconBackendUnknown)
}

func TestTextFileEdit(t *testing.T) {
	ctx := context.Background()
	store := &TextFile{Path: filepath.Join(t.TempDir(), "sub", "titles.txt")}

	added, err := store.ImportTitles(ctx, "import.txt", []string{"Hades", "Celeste", "hades"})
	require.NoError(t, err)
	assert.Equal(t, 2, added)

	added, err = store.ImportTitles(ctx, "import.txt", []string{"Celeste", "Outer Wilds"})
	require.NoError(t, err)
	assert.Equal(t, 1, added)

	data, err := os.ReadFile(store.Path)
	require.NoError(t, err)
	assert.Equal(t, "celeste\nhades\nouter wilds\n", string(data))

	removed, err := store.RemoveTitles(ctx, []string{"HADES", "Tetris"})
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	titles, err := store.Titles(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"celeste", "outer wilds"}, titles)
}
