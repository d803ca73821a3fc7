// Package snapshot provides file-backed collaborators for an organize pass:
// an enumerator that reads a desktop snapshot, a repositioner that writes a
// placement plan, and a screen provider fed from configuration.
//
// A snapshot is JSONL, one icon record per line:
//
//	{"display_name":"notes.txt","kind":"text","original_kind":"text","target_path":"C:\\Users\\me\\Desktop\\notes.txt","mod_time":1718000000,"slot_index":4}
package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/desksort/pkg/types"
)

// Stdin is the path that selects standard input.
const Stdin = "-"

// snapshotLine is the wire form of one record. A missing slot_index falls
// back to the line's position among the records.
type snapshotLine struct {
	types.IconRecord
	SlotIndex *int `json:"slot_index"`
}

// Decode reads snapshot records from r in file order. It returns the number
// of lines skipped because they were not valid records.
func Decode(r io.Reader) ([]types.IconRecord, int, error) {
	lines, skipped, err := readLines(r)
	if err != nil {
		return nil, skipped, err
	}

	records := make([]types.IconRecord, 0, len(lines))
	for _, raw := range lines {
		var line snapshotLine
		if err := json.Unmarshal(raw, &line); err != nil {
			skipped++
			continue
		}
		rec := line.IconRecord
		// Kind.UnmarshalJSON only runs for keys that are present.
		rec.Kind = types.ParseKind(string(rec.Kind))
		rec.OriginalKind = types.ParseKind(string(rec.OriginalKind))
		rec.SlotIndex = len(records)
		if line.SlotIndex != nil {
			rec.SlotIndex = *line.SlotIndex
		}
		records = append(records, rec)
	}
	return records, skipped, nil
}

// Encode writes records to path as a snapshot, atomically.
func Encode(path string, records []types.IconRecord) error {
	return writeLines(path, records)
}

// FileEnumerator reads icons from a snapshot file, or from stdin when Path
// is Stdin.
type FileEnumerator struct {
	Path   string
	Stdin  io.Reader
	Logger *zap.Logger
}

// EnumerateIcons implements types.Enumerator.
func (e *FileEnumerator) EnumerateIcons(_ context.Context) ([]types.IconRecord, error) {
	var r io.Reader
	if e.Path == Stdin {
		r = e.Stdin
		if r == nil {
			r = os.Stdin
		}
	} else {
		f, err := os.Open(e.Path)
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", types.ErrSnapshotNotFound, e.Path)
		}
		if err != nil {
			return nil, fmt.Errorf("opening snapshot: %w", err)
		}
		defer f.Close()
		r = f
	}

	records, skipped, err := Decode(r)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot %s: %w", e.Path, err)
	}
	if skipped > 0 && e.Logger != nil {
		e.Logger.Warn("skipped malformed snapshot lines",
			zap.String("path", e.Path),
			zap.Int("skipped", skipped),
		)
	}
	return records, nil
}
