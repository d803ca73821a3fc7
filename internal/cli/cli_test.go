package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/desksort/internal/organize"
	"github.com/mesh-intelligence/desksort/internal/snapshot"
	"github.com/mesh-intelligence/desksort/internal/sqlite"
	"github.com/mesh-intelligence/desksort/pkg/types"
)

type env struct {
	configDir string
	dataDir   string
}

// newEnv isolates a test from the caller's configuration.
func newEnv(t *testing.T) env {
	t.Helper()
	root := t.TempDir()
	for _, key := range []string{
		"DESKSORT_CONFIG_DIR", "DESKSORT_DATA_DIR", "DESKSORT_ICON_SIZE", "DESKSORT_PADDING",
		"DESKSORT_SCREEN_WIDTH", "DESKSORT_SCREEN_HEIGHT", "DESKSORT_LEXICON_BACKEND",
		"DESKSORT_LEXICON_PATH", "DESKSORT_LOG_LEVEL", "DESKSORT_LOG_FORMAT",
	} {
		t.Setenv(key, "")
	}
	t.Setenv("DESKSORT_LOG_LEVEL", "error")
	return env{
		configDir: filepath.Join(root, "config"),
		dataDir:   filepath.Join(root, "data"),
	}
}

func (e env) run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	full := append([]string{"--config-dir", e.configDir, "--data-dir", e.dataDir}, args...)
	code := run(context.Background(), NewRootCmd(), full, &out, &errOut)
	return code, out.String(), errOut.String()
}

func writeSnapshot(t *testing.T, records []types.IconRecord) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "desktop.jsonl")
	require.NoError(t, snapshot.Encode(path, records))
	return path
}

func sampleDesktop() []types.IconRecord {
	return []types.IconRecord{
		{SlotIndex: 0, DisplayName: "Projects", Kind: types.KindFolder, OriginalKind: types.KindFolder, ModTime: 50},
		{SlotIndex: 1, DisplayName: "Hollow Knight", Kind: types.KindInternetShortcut, OriginalKind: types.KindInternetShortcut, TargetPath: "steam://rungameid/367520", ModTime: 40},
		{SlotIndex: 2, DisplayName: "notes.txt", Kind: types.KindText, OriginalKind: types.KindText, TargetPath: `C:\Users\me\Desktop\notes.txt`, ModTime: 30},
		{SlotIndex: 3, DisplayName: "setup.exe", Kind: types.KindExecutable, OriginalKind: types.KindExecutable, TargetPath: `C:\Users\me\Desktop\setup.exe`, ModTime: 10},
	}
}

func TestVersion(t *testing.T) {
	e := newEnv(t)
	code, out, _ := e.run(t, "version")
	assert.Equal(t, exitSuccess, code)
	assert.Contains(t, out, "desksort v"+Version)
	assert.Contains(t, out, modulePath)
}

func TestInit(t *testing.T) {
	e := newEnv(t)

	code, out, _ := e.run(t, "init")
	require.Equal(t, exitSuccess, code)
	assert.Contains(t, out, "Wrote")
	assert.Contains(t, out, "initialized successfully")

	data, err := os.ReadFile(filepath.Join(e.configDir, "config.yaml"))
	require.NoError(t, err)
	var cfg configFile
	require.NoError(t, yaml.Unmarshal(data, &cfg))
	assert.Equal(t, types.DefaultIconSize, cfg.IconSize)
	assert.Equal(t, types.DefaultPadding, cfg.Padding)
	assert.True(t, cfg.SkipSystemItems)
	assert.Equal(t, 1920, cfg.Screen.Width)
	assert.Equal(t, types.LexiconBackendText, cfg.Lexicon.Backend)
	assert.Equal(t, e.dataDir, cfg.DataDir)

	_, err = os.Stat(filepath.Join(e.dataDir, "game_titles.txt"))
	assert.NoError(t, err)

	code, out, _ = e.run(t, "init")
	require.Equal(t, exitSuccess, code)
	assert.Contains(t, out, "Kept existing")
}

func TestInitSQLiteBackend(t *testing.T) {
	e := newEnv(t)
	t.Setenv("DESKSORT_LEXICON_BACKEND", "sqlite")

	code, _, _ := e.run(t, "init")
	require.Equal(t, exitSuccess, code)

	_, err := os.Stat(filepath.Join(e.dataDir, sqlite.CatalogFile))
	assert.NoError(t, err)
}

func TestOrganizeWritesPlan(t *testing.T) {
	e := newEnv(t)
	snap := writeSnapshot(t, sampleDesktop())
	planPath := filepath.Join(t.TempDir(), "plan.jsonl")

	code, out, _ := e.run(t, "organize", "--snapshot", snap, "--plan-out", planPath)
	require.Equal(t, exitSuccess, code)
	assert.Contains(t, out, "4 placed")
	assert.Contains(t, out, "Plan written to "+planPath)

	moves, err := snapshot.ReadPlan(planPath)
	require.NoError(t, err)
	assert.Equal(t, []snapshot.Move{
		{SlotIndex: 0, X: 1835, Y: 995},
		{SlotIndex: 1, X: 1835, Y: 10},
		{SlotIndex: 2, X: 1835, Y: 910},
		{SlotIndex: 3, X: 10, Y: 10},
	}, moves)
}

func TestOrganizeDefaultPlanPath(t *testing.T) {
	e := newEnv(t)
	snap := writeSnapshot(t, sampleDesktop())

	code, _, _ := e.run(t, "organize", "--snapshot", snap)
	require.Equal(t, exitSuccess, code)

	_, err := os.Stat(filepath.Join(e.dataDir, defaultPlanFile))
	assert.NoError(t, err)
}

func TestOrganizeDryRun(t *testing.T) {
	e := newEnv(t)
	snap := writeSnapshot(t, sampleDesktop())

	code, out, _ := e.run(t, "organize", "--snapshot", snap, "--dry-run")
	require.Equal(t, exitSuccess, code)
	assert.Contains(t, out, "SLOT")
	assert.Contains(t, out, "Hollow Knight")
	assert.NotContains(t, out, "Plan written")

	_, err := os.Stat(filepath.Join(e.dataDir, defaultPlanFile))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestOrganizeJSONReport(t *testing.T) {
	e := newEnv(t)
	snap := writeSnapshot(t, sampleDesktop())

	code, out, _ := e.run(t, "organize", "--snapshot", snap, "--dry-run", "--json")
	require.Equal(t, exitSuccess, code)

	var report organize.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.NotEmpty(t, report.PassID)
	assert.Len(t, report.Placements, 4)
	assert.Equal(t, types.BucketGames, report.Placements[1].Bucket)
	assert.Equal(t, 1, report.Zones[types.BucketFolders].Count)
}

func TestOrganizeFlagsOverrideConfig(t *testing.T) {
	e := newEnv(t)
	var records []types.IconRecord
	for i := range 50 {
		records = append(records, types.IconRecord{
			SlotIndex:    i,
			DisplayName:  fmt.Sprintf("doc-%d.txt", i),
			Kind:         types.KindText,
			OriginalKind: types.KindText,
		})
	}
	snap := writeSnapshot(t, records)

	code, out, _ := e.run(t, "organize", "--snapshot", snap, "--dry-run", "--json", "--width", "400", "--height", "300")
	require.Equal(t, exitSuccess, code)

	var report organize.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, types.ScreenGeometry{Width: 400, Height: 300, ScalePercent: 100}, report.Screen)
	assert.Len(t, report.Placements, 12)
	assert.Equal(t, 38, report.Unplaced[types.BucketContent])
}

func TestOrganizeEnvOverridesConfig(t *testing.T) {
	e := newEnv(t)
	code, _, _ := e.run(t, "init")
	require.Equal(t, exitSuccess, code)
	t.Setenv("DESKSORT_SCREEN_WIDTH", "1280")
	snap := writeSnapshot(t, sampleDesktop())

	code, out, _ := e.run(t, "organize", "--snapshot", snap, "--dry-run", "--json")
	require.Equal(t, exitSuccess, code)

	var report organize.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, 1280, report.Screen.Width)
	assert.Equal(t, 1280-85, report.Placements[0].X)
}

func TestOrganizeMetricsFile(t *testing.T) {
	e := newEnv(t)
	snap := writeSnapshot(t, sampleDesktop())
	metricsPath := filepath.Join(t.TempDir(), "desksort.prom")

	code, _, _ := e.run(t, "organize", "--snapshot", snap, "--metrics-file", metricsPath)
	require.Equal(t, exitSuccess, code)

	data, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `desksort_placements_total{bucket="games",status="applied"} 1`)
	assert.Contains(t, string(data), `desksort_icons_classified_total{category="Folders"} 1`)
}

func TestOrganizeUsesLexicon(t *testing.T) {
	for _, backend := range []string{types.LexiconBackendText, types.LexiconBackendSQLite} {
		t.Run(backend, func(t *testing.T) {
			e := newEnv(t)
			t.Setenv("DESKSORT_LEXICON_BACKEND", backend)
			titles := filepath.Join(t.TempDir(), "titles.txt")
			require.NoError(t, os.WriteFile(titles, []byte("Hades\n"), 0o644))

			code, _, _ := e.run(t, "lexicon", "import", titles)
			require.Equal(t, exitSuccess, code)

			snap := writeSnapshot(t, []types.IconRecord{
				{SlotIndex: 0, DisplayName: "Hades", Kind: types.KindShortcut, OriginalKind: types.KindShortcut},
			})
			code, out, _ := e.run(t, "organize", "--snapshot", snap, "--dry-run", "--json")
			require.Equal(t, exitSuccess, code)

			var report organize.Report
			require.NoError(t, json.Unmarshal([]byte(out), &report))
			require.Len(t, report.Placements, 1)
			assert.Equal(t, types.BucketGames, report.Placements[0].Bucket)
		})
	}
}

func TestOrganizeErrors(t *testing.T) {
	e := newEnv(t)

	code, _, _ := e.run(t, "organize")
	assert.Equal(t, exitUserError, code, "missing --snapshot")

	code, _, _ = e.run(t, "organize", "--snapshot", filepath.Join(t.TempDir(), "absent.jsonl"))
	assert.Equal(t, exitUserError, code, "missing snapshot file")

	snap := writeSnapshot(t, sampleDesktop())
	code, _, _ = e.run(t, "organize", "--snapshot", snap, "--icon-size", "0")
	assert.Equal(t, exitUserError, code, "invalid configuration")

	code, _, _ = e.run(t, "organize", "--snapshot", snap, "--lexicon-backend", "redis")
	assert.Equal(t, exitUserError, code, "unknown lexicon backend")
}

func TestClassify(t *testing.T) {
	e := newEnv(t)
	snap := writeSnapshot(t, sampleDesktop())

	code, out, _ := e.run(t, "classify", "--snapshot", snap, "--explain")
	require.Equal(t, exitSuccess, code)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.Contains(t, lines[0], "RULE")
	assert.Contains(t, lines[2], "game-uri")
	assert.Contains(t, lines[2], "Games")

	code, out, _ = e.run(t, "classify", "--snapshot", snap, "--json")
	require.Equal(t, exitSuccess, code)
	var rows []classifyRow
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 4)
	assert.Equal(t, classifyRow{SlotIndex: 2, Name: "notes.txt", Category: "Documents", Bucket: "content"}, rows[2])
}

func TestLexiconCommands(t *testing.T) {
	for _, backend := range []string{types.LexiconBackendText, types.LexiconBackendSQLite} {
		t.Run(backend, func(t *testing.T) {
			e := newEnv(t)
			t.Setenv("DESKSORT_LEXICON_BACKEND", backend)
			titles := filepath.Join(t.TempDir(), "titles.txt")
			require.NoError(t, os.WriteFile(titles, []byte("Hades\nCeleste\n\nhades\n"), 0o644))

			code, out, _ := e.run(t, "lexicon", "import", titles)
			require.Equal(t, exitSuccess, code)
			assert.Contains(t, out, "3 titles read, 2 added")

			code, out, _ = e.run(t, "lexicon", "list")
			require.Equal(t, exitSuccess, code)
			assert.Equal(t, "celeste\nhades\n", out)

			code, out, _ = e.run(t, "lexicon", "remove", "Celeste")
			require.Equal(t, exitSuccess, code)
			assert.Contains(t, out, "1 titles removed")

			code, out, _ = e.run(t, "lexicon", "list")
			require.Equal(t, exitSuccess, code)
			assert.Equal(t, "hades\n", out)
		})
	}
}

func TestLexiconImportMissingFile(t *testing.T) {
	e := newEnv(t)
	code, _, _ := e.run(t, "lexicon", "import", filepath.Join(t.TempDir(), "absent.txt"))
	assert.Equal(t, exitUserError, code)
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, exitSuccess, exitCode(nil))
	assert.Equal(t, exitUserError, exitCode(errors.New("bad flag")))
	assert.Equal(t, exitSysError, exitCode(systemErr("disk: %w", os.ErrPermission)))
	assert.Equal(t, exitSysError, exitCode(fmt.Errorf("wrapped: %w", systemErr("io"))))
	assert.True(t, errors.Is(systemErr("x: %w", os.ErrPermission), os.ErrPermission))
}
