package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/desksort/internal/lexicon"
	"github.com/mesh-intelligence/desksort/internal/metrics"
	"github.com/mesh-intelligence/desksort/internal/organize"
	"github.com/mesh-intelligence/desksort/internal/snapshot"
	"github.com/mesh-intelligence/desksort/pkg/types"
)

// defaultPlanFile is the plan written to the data directory when --plan-out
// is not given.
const defaultPlanFile = "plan.jsonl"

type organizeFlags struct {
	snapshot    string
	planOut     string
	dryRun      bool
	metricsFile string
	jsonOut     bool
}

func newOrganizeCmd(a *app) *cobra.Command {
	var f organizeFlags
	cmd := &cobra.Command{
		Use:   "organize",
		Short: "Lay out the icons of a desktop snapshot",
		Long: "Classify every icon in a desktop snapshot, lay the four buckets out on the\n" +
			"screen and write the resulting moves as a JSONL placement plan.\n\n" +
			"Folders fill the bottom-right corner, games the top-right, documents and\n" +
			"media sit above the folders, and programs and everything else fill\n" +
			"columns from the top-left. Newest icons come first in every zone.",
		Example: "  desksort organize --snapshot desktop.jsonl --plan-out plan.jsonl\n" +
			"  desksort organize --snapshot - --dry-run --width 2560 --height 1440 < desktop.jsonl",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runOrganize(cmd.Context(), cmd, f)
		},
	}

	cmd.Flags().StringVar(&f.snapshot, "snapshot", "", `desktop snapshot (JSONL), "-" for stdin`)
	cmd.Flags().StringVar(&f.planOut, "plan-out", "", "placement plan output (default: <data-dir>/"+defaultPlanFile+")")
	cmd.Flags().BoolVar(&f.dryRun, "dry-run", false, "print the placements without writing a plan")
	cmd.Flags().StringVar(&f.metricsFile, "metrics-file", "", "write Prometheus metrics for the pass to this file")
	cmd.Flags().BoolVar(&f.jsonOut, "json", false, "print the pass report as JSON")
	_ = cmd.MarkFlagRequired("snapshot")
	addLayoutFlags(cmd)
	addLexiconFlags(cmd)

	return cmd
}

// addLayoutFlags defines the flags that override layout configuration.
func addLayoutFlags(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.Int("icon-size", 0, "icon cell size in pixels (config: icon_size)")
	fs.Int("padding", 0, "padding between cells in pixels (config: padding)")
	fs.Bool("apply-scaling", false, "scale cells by the screen scale percent (config: apply_scaling)")
	fs.Bool("skip-system-items", true, "leave shell items such as the Recycle Bin in place (config: skip_system_items)")
	fs.Int("width", 0, "screen width in pixels (config: screen.width)")
	fs.Int("height", 0, "screen height in pixels (config: screen.height)")
	fs.Int("scale", 0, "screen scale percent (config: screen.scale_percent)")
}

// addLexiconFlags defines the flags that override the game title lexicon.
func addLexiconFlags(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.String("lexicon", "", "game title file for the text backend (config: lexicon.path)")
	fs.String("lexicon-backend", "", "game title lexicon backend: text or sqlite (config: lexicon.backend)")
}

func (a *app) screen() snapshot.StaticScreen {
	return snapshot.StaticScreen{Geometry: types.ScreenGeometry{
		Width:        a.cfg.ScreenWidth,
		Height:       a.cfg.ScreenHeight,
		ScalePercent: a.cfg.ScalePercent,
	}}
}

func (a *app) runOrganize(ctx context.Context, cmd *cobra.Command, f organizeFlags) error {
	store, err := lexicon.Open(a.cfg, a.dataDir, a.log)
	if err != nil {
		return systemErr("%w", err)
	}
	defer store.Close()

	plan := &snapshot.PlanWriter{}
	collectors := metrics.New()
	org, err := organize.New(organize.Deps{
		Enumerator:   &snapshot.FileEnumerator{Path: f.snapshot, Stdin: cmd.InOrStdin(), Logger: a.log},
		Screen:       a.screen(),
		Repositioner: plan,
		Lexicon:      store,
		Logger:       a.log,
		Metrics:      collectors,
	}, organize.Options{
		Geometry:        a.cfg.Geometry(),
		ApplyScaling:    a.cfg.ApplyScaling,
		SkipSystemItems: a.cfg.SkipSystemItems,
	})
	if err != nil {
		return systemErr("%w", err)
	}

	var report *organize.Report
	var passErr error
	if f.dryRun {
		report, passErr = org.Plan(ctx)
	} else {
		report, passErr = org.Run(ctx)
	}
	if report == nil {
		return passError(passErr)
	}

	var planPath string
	if !f.dryRun {
		planPath = f.planOut
		if planPath == "" {
			planPath = filepath.Join(a.dataDir, defaultPlanFile)
		}
		if err := os.MkdirAll(filepath.Dir(planPath), 0o755); err != nil {
			return systemErr("create plan directory: %w", err)
		}
		if err := plan.Flush(planPath); err != nil {
			return systemErr("write plan: %w", err)
		}
	}

	if f.metricsFile != "" {
		if err := collectors.WriteTextfile(f.metricsFile); err != nil {
			return systemErr("%w", err)
		}
	}

	out := cmd.OutOrStdout()
	if f.jsonOut {
		if err := writeJSON(out, report); err != nil {
			return systemErr("encode report: %w", err)
		}
	} else {
		if f.dryRun {
			printPlacements(out, report)
		}
		printSummary(out, report, planPath)
	}

	if passErr != nil {
		return passError(passErr)
	}
	return nil
}

// passError classifies an organize failure: bad input is the user's to fix,
// anything else is a system error.
func passError(err error) error {
	switch {
	case errors.Is(err, types.ErrSnapshotNotFound),
		errors.Is(err, types.ErrScreenSizeInvalid):
		return err
	case errors.Is(err, context.Canceled):
		return fmt.Errorf("interrupted: %w", err)
	default:
		return systemErr("%w", err)
	}
}
