package sqlite

// Schema DDL for the game title catalog.
const (
	createGameTitles = `CREATE TABLE IF NOT EXISTS game_titles (
    title TEXT PRIMARY KEY,
    source TEXT NOT NULL,
    added_at TEXT NOT NULL
);`

	idxGameTitlesSource = `CREATE INDEX IF NOT EXISTS idx_game_titles_source ON game_titles(source);`
)

// schemaDDL lists all statements run when a catalog is opened.
var schemaDDL = []string{
	createGameTitles,
	idxGameTitlesSource,
}
