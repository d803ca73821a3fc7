package types

// ScreenGeometry describes the desktop surface in pixels. ScalePercent is
// the OS display scaling (100 for none).
type ScreenGeometry struct {
	Width        int `json:"width"`
	Height       int `json:"height"`
	ScalePercent int `json:"scale_percent"`
}

// Geometry is the footprint of one icon cell. Padding separates adjacent
// cells and the outermost cells from the screen edge.
type Geometry struct {
	CellWidth  int `json:"cell_width"`
	CellHeight int `json:"cell_height"`
	Padding    int `json:"padding"`
}

// Scaled returns g multiplied by percent/100. A non-positive percent leaves
// g unchanged.
func (g Geometry) Scaled(percent int) Geometry {
	if percent <= 0 || percent == 100 {
		return g
	}
	return Geometry{
		CellWidth:  g.CellWidth * percent / 100,
		CellHeight: g.CellHeight * percent / 100,
		Padding:    g.Padding * percent / 100,
	}
}

// Placement is one computed position for the icon at SlotIndex.
type Placement struct {
	SlotIndex int    `json:"slot_index"`
	X         int    `json:"x"`
	Y         int    `json:"y"`
	Bucket    Bucket `json:"bucket"`
}
