package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/desksort/internal/lexicon"
)

func newLexiconCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lexicon",
		Short: "Manage the game title lexicon",
		Long: "The game title lexicon lists titles that mark an icon as a game. It lives\n" +
			"in a text file (one title per line) or in the SQLite catalog, selected by\n" +
			"lexicon.backend.",
	}
	cmd.AddCommand(newLexiconImportCmd(a), newLexiconListCmd(a), newLexiconRemoveCmd(a))
	return cmd
}

func newLexiconImportCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import FILE...",
		Short: "Add the titles listed in text files to the lexicon",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := lexicon.Open(a.cfg, a.dataDir, a.log)
			if err != nil {
				return systemErr("%w", err)
			}
			defer store.Close()

			for _, path := range args {
				titles, err := lexicon.ReadFile(path)
				if err != nil {
					return err
				}
				added, err := store.ImportTitles(cmd.Context(), filepath.Base(path), titles)
				if err != nil {
					return systemErr("import %s: %w", path, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d titles read, %d added\n", path, len(titles), added)
			}
			return nil
		},
	}
	addLexiconFlags(cmd)
	return cmd
}

func newLexiconListCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print every title in the lexicon",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := lexicon.Open(a.cfg, a.dataDir, a.log)
			if err != nil {
				return systemErr("%w", err)
			}
			defer store.Close()

			titles, err := store.Titles(cmd.Context())
			if err != nil {
				return systemErr("list titles: %w", err)
			}
			for _, t := range titles {
				fmt.Fprintln(cmd.OutOrStdout(), t)
			}
			return nil
		},
	}
	addLexiconFlags(cmd)
	return cmd
}

func newLexiconRemoveCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove TITLE...",
		Short: "Remove titles from the lexicon",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := lexicon.Open(a.cfg, a.dataDir, a.log)
			if err != nil {
				return systemErr("%w", err)
			}
			defer store.Close()

			removed, err := store.RemoveTitles(cmd.Context(), args)
			if err != nil {
				return systemErr("remove titles: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d titles removed\n", removed)
			return nil
		},
	}
	addLexiconFlags(cmd)
	return cmd
}
