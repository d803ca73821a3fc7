package snapshot

import (
	"context"
	"fmt"

	"github.com/mesh-intelligence/desksort/pkg/types"
)

// StaticScreen reports a fixed screen geometry.
type StaticScreen struct {
	Geometry types.ScreenGeometry
}

// ScreenGeometry implements types.ScreenInfo. A zero scale means 100%.
func (s StaticScreen) ScreenGeometry(_ context.Context) (types.ScreenGeometry, error) {
	g := s.Geometry
	if g.Width <= 0 || g.Height <= 0 {
		return types.ScreenGeometry{}, fmt.Errorf("%w: %dx%d", types.ErrScreenSizeInvalid, g.Width, g.Height)
	}
	if g.ScalePercent == 0 {
		g.ScalePercent = types.DefaultScalePercent
	}
	return g, nil
}
