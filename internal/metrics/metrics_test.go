package metrics

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/desksort/pkg/types"
)

func TestRecordCounters(t *testing.T) {
	c := New()

	c.RecordClassification(types.CategoryGames)
	c.RecordClassification(types.CategoryGames)
	c.RecordClassification(types.CategoryDocuments)
	c.RecordPlacement(types.BucketGames, StatusApplied)
	c.RecordPlacement(types.BucketGames, StatusFailed)
	c.RecordUnplaced(types.BucketContent, 38)
	c.RecordUnplaced(types.BucketContent, 0)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.IconsClassified.WithLabelValues("Games")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.IconsClassified.WithLabelValues("Documents")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.Placements.WithLabelValues("games", StatusApplied)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.Placements.WithLabelValues("games", StatusFailed)))
	assert.Equal(t, 38.0, testutil.ToFloat64(c.Unplaced.WithLabelValues("content")))
}

func TestRecordPass(t *testing.T) {
	c := New()
	c.RecordPass("run", 20*time.Millisecond)

	assert.Equal(t, 1, testutil.CollectAndCount(c.PassDuration, "desksort_pass_duration_seconds"))
}

func TestNilCollectors(t *testing.T) {
	var c *Collectors
	assert.NotPanics(t, func() {
		c.RecordClassification(types.CategoryGames)
		c.RecordPlacement(types.BucketFolders, StatusApplied)
		c.RecordUnplaced(types.BucketFolders, 3)
		c.RecordPass("plan", time.Second)
	})
	assert.NoError(t, c.WriteTextfile(filepath.Join(t.TempDir(), "x.prom")))
	assert.Nil(t, c.Registry())
}

func TestWriteTextfile(t *testing.T) {
	c := New()
	c.RecordPlacement(types.BucketFolders, StatusApplied)
	path := filepath.Join(t.TempDir(), "desksort.prom")

	require.NoError(t, c.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `desksort_placements_total{bucket="folders",status="applied"} 1`)
}

func TestWriteTextfileBadDirectory(t *testing.T) {
	c := New()
	err := c.WriteTextfile(filepath.Join(t.TempDir(), "missing", "desksort.prom"))
	assert.Error(t, err)
}
