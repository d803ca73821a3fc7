package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/desksort/internal/lexicon"
	"github.com/mesh-intelligence/desksort/internal/paths"
	"github.com/mesh-intelligence/desksort/pkg/types"
)

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the configuration and data directories",
		Long: "Create the configuration directory with a default config.yaml, the data\n" +
			"directory, and an empty game title lexicon for the configured backend.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runInit(cmd.Context(), cmd)
		},
	}
}

func (a *app) runInit(ctx context.Context, cmd *cobra.Command) error {
	if err := os.MkdirAll(a.configDir, 0o755); err != nil {
		return systemErr("create config directory: %w", err)
	}
	if err := os.MkdirAll(a.dataDir, 0o755); err != nil {
		return systemErr("create data directory: %w", err)
	}

	var dataDirSetting string
	if a.dataDirFlag != "" {
		dataDirSetting = a.dataDir
	}
	wrote, err := writeConfigIfMissing(a.configDir, dataDirSetting)
	if err != nil {
		return systemErr("%w", err)
	}

	if err := a.initLexicon(ctx); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	configPath := filepath.Join(a.configDir, paths.ConfigFile)
	if wrote {
		fmt.Fprintf(out, "Wrote %s\n", configPath)
	} else {
		fmt.Fprintf(out, "Kept existing %s\n", configPath)
	}
	fmt.Fprintf(out, "Data directory: %s\n", a.dataDir)
	fmt.Fprintln(out, "desksort initialized successfully")
	return nil
}

// initLexicon creates an empty lexicon for the configured backend.
func (a *app) initLexicon(ctx context.Context) error {
	if a.cfg.LexiconBackend == types.LexiconBackendText {
		path := lexicon.Path(a.cfg, a.dataDir)
		if _, err := os.Stat(path); err == nil {
			return nil
		}
		if err := os.WriteFile(path, nil, 0o644); err != nil {
			return systemErr("create lexicon file: %w", err)
		}
		return nil
	}

	store, err := lexicon.Open(a.cfg, a.dataDir, a.log)
	if err != nil {
		return systemErr("initialize lexicon: %w", err)
	}
	defer store.Close()
	if _, err := store.Titles(ctx); err != nil {
		return systemErr("initialize lexicon: %w", err)
	}
	return nil
}
