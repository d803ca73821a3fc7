// Package organize runs a desktop organizing pass: enumerate icons, classify
// them, order them newest first, partition them into buckets, lay the
// buckets out and hand every placement to the repositioner.
package organize

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/desksort/internal/classify"
	"github.com/mesh-intelligence/desksort/internal/layout"
	"github.com/mesh-intelligence/desksort/internal/metrics"
	"github.com/mesh-intelligence/desksort/pkg/types"
)

// Errors returned by the organizer.
var (
	ErrEnumeratorMissing   = errors.New("organize: enumerator is required")
	ErrScreenInfoMissing   = errors.New("organize: screen info is required")
	ErrRepositionerMissing = errors.New("organize: repositioner is required to apply a pass")
)

// Deps are the collaborators of an Organizer. Lexicon, Logger and Metrics
// are optional.
type Deps struct {
	Enumerator   types.Enumerator
	Screen       types.ScreenInfo
	Repositioner types.Repositioner
	Lexicon      types.LexiconLoader
	Logger       *zap.Logger
	Metrics      *metrics.Collectors
}

// Options tune a pass.
type Options struct {
	// Geometry is the unscaled icon cell.
	Geometry types.Geometry
	// ApplyScaling multiplies Geometry by the screen's scale percent.
	ApplyScaling bool
	// SkipSystemItems leaves shell items such as the Recycle Bin in place.
	SkipSystemItems bool
}

// FailedPlacement is a placement the repositioner rejected.
type FailedPlacement struct {
	types.Placement
	Error string `json:"error"`
}

// Report describes one pass.
type Report struct {
	PassID   string               `json:"pass_id"`
	Screen   types.ScreenGeometry `json:"screen"`
	Geometry types.Geometry       `json:"geometry"`

	// Classified holds every enumerated icon, newest first.
	Classified []classify.Classified `json:"classified"`

	// Skipped holds icons excluded from layout.
	Skipped []classify.Classified `json:"skipped,omitempty"`

	Placements []types.Placement            `json:"placements"`
	Zones      map[types.Bucket]layout.Zone `json:"zones"`
	Unplaced   map[types.Bucket]int         `json:"unplaced"`
	Applied    int                          `json:"applied"`
	Failed     []FailedPlacement            `json:"failed,omitempty"`

	// Interrupted is set when the context ended before every placement was
	// applied.
	Interrupted bool `json:"interrupted,omitempty"`
}

// UnplacedTotal sums Unplaced over all buckets.
func (r *Report) UnplacedTotal() int {
	n := 0
	for _, c := range r.Unplaced {
		n += c
	}
	return n
}

// Organizer runs organizing passes. It keeps no state between passes.
type Organizer struct {
	deps Deps
	opts Options
	log  *zap.Logger
}

// New returns an Organizer. Enumerator and Screen are required.
func New(deps Deps, opts Options) (*Organizer, error) {
	if deps.Enumerator == nil {
		return nil, ErrEnumeratorMissing
	}
	if deps.Screen == nil {
		return nil, ErrScreenInfoMissing
	}
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Organizer{deps: deps, opts: opts, log: log}, nil
}

// Plan computes placements without moving anything.
func (o *Organizer) Plan(ctx context.Context) (*Report, error) {
	timer := metrics.NewTimer()
	report, _, err := o.plan(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range report.Placements {
		o.deps.Metrics.RecordPlacement(p.Bucket, metrics.StatusPlanned)
	}
	o.deps.Metrics.RecordPass("plan", timer.Duration())
	return report, nil
}

// Run computes placements and applies them in layout order. A placement the
// repositioner rejects is logged and recorded in the report; the pass
// continues. When ctx ends between placements Run returns the partial
// report together with the context error.
func (o *Organizer) Run(ctx context.Context) (*Report, error) {
	if o.deps.Repositioner == nil {
		return nil, ErrRepositionerMissing
	}
	timer := metrics.NewTimer()
	report, log, err := o.plan(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { o.deps.Metrics.RecordPass("run", timer.Duration()) }()

	for i, p := range report.Placements {
		if err := ctx.Err(); err != nil {
			report.Interrupted = true
			log.Warn("pass interrupted",
				zap.Int("applied", report.Applied),
				zap.Int("remaining", len(report.Placements)-i),
			)
			return report, fmt.Errorf("applying placements: %w", err)
		}
		if err := o.deps.Repositioner.SetPosition(ctx, p.SlotIndex, p.X, p.Y); err != nil {
			log.Warn("set position failed",
				zap.Int("slot", p.SlotIndex),
				zap.Int("x", p.X),
				zap.Int("y", p.Y),
				zap.Stringer("bucket", p.Bucket),
				zap.Error(err),
			)
			report.Failed = append(report.Failed, FailedPlacement{Placement: p, Error: err.Error()})
			o.deps.Metrics.RecordPlacement(p.Bucket, metrics.StatusFailed)
			continue
		}
		report.Applied++
		o.deps.Metrics.RecordPlacement(p.Bucket, metrics.StatusApplied)
	}

	log.Info("pass applied",
		zap.Int("applied", report.Applied),
		zap.Int("failed", len(report.Failed)),
		zap.Int("unplaced", report.UnplacedTotal()),
	)
	return report, nil
}

func (o *Organizer) plan(ctx context.Context) (*Report, *zap.Logger, error) {
	report := &Report{
		PassID:   uuid.NewString(),
		Zones:    map[types.Bucket]layout.Zone{},
		Unplaced: map[types.Bucket]int{},
	}
	log := o.log.With(zap.String("pass_id", report.PassID))

	screen, err := o.deps.Screen.ScreenGeometry(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("reading screen geometry: %w", err)
	}
	report.Screen = screen

	report.Geometry = o.opts.Geometry
	if o.opts.ApplyScaling {
		report.Geometry = o.opts.Geometry.Scaled(screen.ScalePercent)
	}

	lex := o.loadLexicon(ctx, log)

	records, err := o.deps.Enumerator.EnumerateIcons(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("enumerating icons: %w", err)
	}
	if len(records) == 0 {
		log.Info("desktop has no icons")
		return report, log, nil
	}

	report.Classified = classify.ClassifyAll(classify.SortByRecency(records), lex)
	kept := make([]classify.Classified, 0, len(report.Classified))
	for _, c := range report.Classified {
		o.deps.Metrics.RecordClassification(c.Category)
		if o.opts.SkipSystemItems && c.Category == types.CategorySystemItems {
			report.Skipped = append(report.Skipped, c)
			continue
		}
		kept = append(kept, c)
	}

	res := layout.Layout(screen, report.Geometry, classify.Partition(kept))
	report.Placements = res.Placements
	report.Zones = res.Zones
	report.Unplaced = res.Unplaced
	for bucket, n := range res.Unplaced {
		if n == 0 {
			continue
		}
		o.deps.Metrics.RecordUnplaced(bucket, n)
		log.Warn("icons left in place, no room on screen",
			zap.Stringer("bucket", bucket),
			zap.Int("count", n),
		)
	}

	log.Debug("pass planned",
		zap.Int("icons", len(records)),
		zap.Int("skipped", len(report.Skipped)),
		zap.Int("placements", len(report.Placements)),
		zap.Int("screen_width", screen.Width),
		zap.Int("screen_height", screen.Height),
	)
	return report, log, nil
}

// loadLexicon returns the game title lexicon, or an empty one when no loader
// is configured or loading fails.
func (o *Organizer) loadLexicon(ctx context.Context, log *zap.Logger) types.Lexicon {
	if o.deps.Lexicon == nil {
		return types.Lexicon{}
	}
	lex, err := o.deps.Lexicon.LoadGameTitles(ctx)
	if err != nil {
		log.Warn("game title lexicon unavailable, continuing without it", zap.Error(err))
		return types.Lexicon{}
	}
	return lex
}
