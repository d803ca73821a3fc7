// Package layout computes icon positions for the four placement buckets.
//
// Each bucket fills a zone anchored at a screen corner. Zones are laid out in
// a fixed order (folders, games, content, programs and other) and every zone
// records the rectangle its placements cover so later zones can avoid it.
// Icons that do not fit are counted as unplaced; they are never stacked or
// pushed off screen.
package layout

import (
	"github.com/mesh-intelligence/desksort/internal/classify"
	"github.com/mesh-intelligence/desksort/pkg/types"
)

// Zone is the bounding rectangle of one bucket's placements. MaxX and MaxY
// are exclusive. A zone with Count 0 covers nothing.
type Zone struct {
	Bucket types.Bucket `json:"bucket"`
	MinX   int          `json:"min_x"`
	MinY   int          `json:"min_y"`
	MaxX   int          `json:"max_x"`
	MaxY   int          `json:"max_y"`
	Count  int          `json:"count"`
}

// Empty reports whether no icon was placed in z.
func (z Zone) Empty() bool { return z.Count == 0 }

func (z *Zone) add(x, y, w, h int) {
	if z.Count == 0 {
		z.MinX, z.MinY, z.MaxX, z.MaxY = x, y, x+w, y+h
	} else {
		z.MinX = min(z.MinX, x)
		z.MinY = min(z.MinY, y)
		z.MaxX = max(z.MaxX, x+w)
		z.MaxY = max(z.MaxY, y+h)
	}
	z.Count++
}

// Intersects reports whether the w×h cell at (x, y) overlaps z. Touching
// edges do not overlap.
func (z Zone) Intersects(x, y, w, h int) bool {
	if z.Empty() {
		return false
	}
	return x < z.MaxX && z.MinX < x+w && y < z.MaxY && z.MinY < y+h
}

// Result is the outcome of one layout pass.
type Result struct {
	// Placements in the order they should be applied.
	Placements []types.Placement
	Zones      map[types.Bucket]Zone
	// Unplaced counts icons per bucket that found no room.
	Unplaced map[types.Bucket]int
}

// UnplacedTotal sums Unplaced over all buckets.
func (r Result) UnplacedTotal() int {
	n := 0
	for _, c := range r.Unplaced {
		n += c
	}
	return n
}

// ItemsPerRow returns how many cells of size cell, separated by padding, fit
// into available pixels. Degenerate input yields 0.
func ItemsPerRow(available, cell, padding int) int {
	if cell <= 0 || cell+padding <= 0 {
		return 0
	}
	n := (available + padding) / (cell + padding)
	if n < 0 {
		return 0
	}
	return n
}

// engine carries the per-pass state shared by the zone fillers.
type engine struct {
	width, height  int
	cw, ch, pad    int
	perRow, perCol int
	res            Result
}

// Layout places every icon in b on a screen of the given size. It is pure:
// the same input always yields the same result.
func Layout(screen types.ScreenGeometry, geo types.Geometry, b classify.Buckets) Result {
	e := &engine{
		width:  screen.Width,
		height: screen.Height,
		cw:     geo.CellWidth,
		ch:     geo.CellHeight,
		pad:    geo.Padding,
		res: Result{
			Zones:    make(map[types.Bucket]Zone, len(types.AllBuckets)),
			Unplaced: make(map[types.Bucket]int, len(types.AllBuckets)),
		},
	}
	for _, bucket := range types.AllBuckets {
		e.res.Zones[bucket] = Zone{Bucket: bucket}
	}
	e.perRow = ItemsPerRow(e.width-2*e.pad, e.cw, e.pad)
	e.perCol = ItemsPerRow(e.height-2*e.pad, e.ch, e.pad)

	if e.perRow == 0 || e.perCol == 0 {
		for _, bucket := range types.AllBuckets {
			e.res.Unplaced[bucket] = len(b.Get(bucket))
		}
		return e.res
	}

	e.folders(b.Folders)
	e.games(b.Games)
	e.content(b.Content)
	e.programs(b.ProgramsAndOther)
	return e.res
}

func (e *engine) place(bucket types.Bucket, it classify.Classified, x, y int) {
	e.res.Placements = append(e.res.Placements, types.Placement{
		SlotIndex: it.Record.SlotIndex,
		X:         x,
		Y:         y,
		Bucket:    bucket,
	})
	z := e.res.Zones[bucket]
	z.add(x, y, e.cw, e.ch)
	e.res.Zones[bucket] = z
}

// blocked reports whether a cell at (x, y) overlaps any of the given zones.
func (e *engine) blocked(x, y int, buckets ...types.Bucket) bool {
	for _, b := range buckets {
		if e.res.Zones[b].Intersects(x, y, e.cw, e.ch) {
			return true
		}
	}
	return false
}

// fillRows places items right to left starting at (W-cw-p, startY), moving
// to a new row by dy after every full row. stop ends the bucket before the
// cell it rejects.
func (e *engine) fillRows(bucket types.Bucket, items []classify.Classified, startY, dy int, stop func(x, y int) bool) {
	x0 := e.width - e.cw - e.pad
	y := startY
	for i, it := range items {
		col := i % e.perRow
		if col == 0 && i > 0 {
			y += dy
		}
		x := x0 - col*(e.cw+e.pad)
		if stop(x, y) {
			e.res.Unplaced[bucket] += len(items) - i
			return
		}
		e.place(bucket, it, x, y)
	}
}

func (e *engine) folders(items []classify.Classified) {
	e.fillRows(types.BucketFolders, items, e.height-e.ch-e.pad, -(e.ch + e.pad), func(_, y int) bool {
		return y < e.pad
	})
}

func (e *engine) games(items []classify.Classified) {
	e.fillRows(types.BucketGames, items, e.pad, e.ch+e.pad, func(x, y int) bool {
		return y+e.ch > e.height-e.pad || e.blocked(x, y, types.BucketFolders)
	})
}

// content sits directly above the folders zone, or takes the folders anchor
// when there are no folders.
func (e *engine) content(items []classify.Classified) {
	startY := e.height - e.ch - e.pad
	if f := e.res.Zones[types.BucketFolders]; !f.Empty() {
		startY = f.MinY - e.pad - e.ch
	}
	e.fillRows(types.BucketContent, items, startY, -(e.ch + e.pad), func(x, y int) bool {
		return y < e.pad || e.blocked(x, y, types.BucketGames, types.BucketFolders)
	})
}

// programs fills columns top to bottom starting at the left edge. When the
// games zone reaches the first column, the columns start below it.
func (e *engine) programs(items []classify.Classified) {
	bucket := types.BucketProgramsAndOther
	startY := e.pad
	if g := e.res.Zones[types.BucketGames]; !g.Empty() && g.MinX < e.pad+e.cw {
		startY = g.MaxY + e.pad
		if startY+e.ch > e.height-e.pad {
			e.res.Unplaced[bucket] += len(items)
			return
		}
	}

	x, y := e.pad, startY
	for i, it := range items {
		for {
			if x+e.cw > e.width-e.pad {
				e.res.Unplaced[bucket] += len(items) - i
				return
			}
			if y+e.ch > e.height-e.pad || e.blocked(x, y, types.BucketFolders, types.BucketGames, types.BucketContent) {
				x += e.cw + e.pad
				y = startY
				continue
			}
			break
		}
		e.place(bucket, it, x, y)
		y += e.ch + e.pad
	}
}
