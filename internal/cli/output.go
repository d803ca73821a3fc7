package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/mesh-intelligence/desksort/internal/organize"
	"github.com/mesh-intelligence/desksort/pkg/types"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

// printPlacements lists every placement with the icon's name.
func printPlacements(w io.Writer, r *organize.Report) {
	names := make(map[int]string, len(r.Classified))
	for _, c := range r.Classified {
		names[c.Record.SlotIndex] = c.Record.DisplayName
	}

	tw := newTable(w)
	fmt.Fprintln(tw, "SLOT\tX\tY\tBUCKET\tNAME")
	for _, p := range r.Placements {
		fmt.Fprintf(tw, "%d\t%d\t%d\t%s\t%s\n", p.SlotIndex, p.X, p.Y, p.Bucket, names[p.SlotIndex])
	}
	tw.Flush()
}

// printSummary prints per-bucket counts and where the plan went.
func printSummary(w io.Writer, r *organize.Report, planPath string) {
	fmt.Fprintf(w, "Pass %s: %d icons on %dx%d, %d placed, %d skipped, %d unplaced\n",
		r.PassID, len(r.Classified), r.Screen.Width, r.Screen.Height,
		len(r.Placements), len(r.Skipped), r.UnplacedTotal())

	tw := newTable(w)
	fmt.Fprintln(tw, "BUCKET\tPLACED\tUNPLACED")
	for _, b := range types.AllBuckets {
		fmt.Fprintf(tw, "%s\t%d\t%d\n", b, r.Zones[b].Count, r.Unplaced[b])
	}
	tw.Flush()

	if len(r.Failed) > 0 {
		fmt.Fprintf(w, "%d placements failed\n", len(r.Failed))
	}
	if r.Interrupted {
		fmt.Fprintf(w, "Interrupted after %d placements\n", r.Applied)
	}
	if planPath != "" {
		fmt.Fprintf(w, "Plan written to %s (%d moves)\n", planPath, r.Applied)
	}
}
