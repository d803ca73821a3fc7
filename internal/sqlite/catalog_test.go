package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestCatalog(t *testing.T) (*Catalog, string) {
	t.Helper()
	dir := t.TempDir()
	c, err := OpenCatalog(dir)
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c, dir
}

func TestOpenCatalogCreatesDatabase(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")

	c, err := OpenCatalog(dir)
	require.NoError(t, err)
	defer c.Close()

	_, err = os.Stat(filepath.Join(dir, CatalogFile))
	assert.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, CatalogFile), c.Path())
}

func TestImportTitles(t *testing.T) {
	ctx := context.Background()
	c, _ := openTestCatalog(t)

	added, err := c.ImportTitles(ctx, "titles.txt", []string{"Hades", "  Stardew Valley ", "", "HADES"})
	require.NoError(t, err)
	assert.Equal(t, 2, added)

	added, err = c.ImportTitles(ctx, "more.txt", []string{"hades", "Celeste"})
	require.NoError(t, err)
	assert.Equal(t, 1, added)

	titles, err := c.Titles(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"celeste", "hades", "stardew valley"}, titles)
}

func TestRemoveTitles(t *testing.T) {
	ctx := context.Background()
	c, _ := openTestCatalog(t)
	_, err := c.ImportTitles(ctx, "test", []string{"Hades", "Celeste"})
	require.NoError(t, err)

	removed, err := c.RemoveTitles(ctx, []string{"HADES", "Outer Wilds"})
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	titles, err := c.Titles(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"celeste"}, titles)
}

func TestCatalogPersistsAcrossOpens(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	c, err := OpenCatalog(dir)
	require.NoError(t, err)
	_, err = c.ImportTitles(ctx, "test", []string{"Hollow Knight"})
	require.NoError(t, err)
	require.NoError(t, c.Close())

	c, err = OpenCatalog(dir)
	require.NoError(t, err)
	defer c.Close()

	lex, err := c.LoadGameTitles(ctx)
	require.NoError(t, err)
	assert.True(t, lex.Has("Hollow Knight"))
	assert.Equal(t, 1, lex.Len())
}

func TestEmptyCatalogIsValid(t *testing.T) {
	c, _ := openTestCatalog(t)

	lex, err := c.LoadGameTitles(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, lex.Len())
}

func TestClosedCatalog(t *testing.T) {
	ctx := context.Background()
	c, _ := openTestCatalog(t)
	require.NoError(t, c.Close())
	require.NoError(t, c.Close())

	_, err := c.Titles(ctx)
	assert.ErrorIs(t, err, ErrCatalogClosed)
	_, err = c.ImportTitles(ctx, "test", []string{"x"})
	assert.ErrorIs(t, err, ErrCatalogClosed)
	_, err = c.RemoveTitles(ctx, []string{"x"})
	assert.ErrorIs(t, err, ErrCatalogClosed)
}
