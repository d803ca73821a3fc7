package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/desksort/internal/classify"
	"github.com/mesh-intelligence/desksort/internal/lexicon"
	"github.com/mesh-intelligence/desksort/internal/snapshot"
)

type classifyFlags struct {
	snapshot string
	explain  bool
	jsonOut  bool
}

// classifyRow is the JSON form of one classified icon.
type classifyRow struct {
	SlotIndex int    `json:"slot_index"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Bucket    string `json:"bucket"`
	Rule      string `json:"rule,omitempty"`
}

func newClassifyCmd(a *app) *cobra.Command {
	var f classifyFlags
	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Print the category of every icon in a desktop snapshot",
		Long: "Classify every icon in a desktop snapshot without laying anything out.\n" +
			"With --explain the rule that decided each category is shown.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			enum := &snapshot.FileEnumerator{Path: f.snapshot, Stdin: cmd.InOrStdin(), Logger: a.log}
			records, err := enum.EnumerateIcons(cmd.Context())
			if err != nil {
				return passError(err)
			}

			store, err := lexicon.Open(a.cfg, a.dataDir, a.log)
			if err != nil {
				return systemErr("%w", err)
			}
			defer store.Close()
			lex, err := store.LoadGameTitles(cmd.Context())
			if err != nil {
				return systemErr("load game titles: %w", err)
			}

			rows := make([]classifyRow, 0, len(records))
			for _, c := range classify.ClassifyAll(records, lex) {
				row := classifyRow{
					SlotIndex: c.Record.SlotIndex,
					Name:      c.Record.DisplayName,
					Category:  string(c.Category),
					Bucket:    classify.BucketOf(c.Category).String(),
				}
				if f.explain {
					row.Rule = c.Rule
				}
				rows = append(rows, row)
			}

			out := cmd.OutOrStdout()
			if f.jsonOut {
				if err := writeJSON(out, rows); err != nil {
					return systemErr("encode result: %w", err)
				}
				return nil
			}

			tw := newTable(out)
			if f.explain {
				fmt.Fprintln(tw, "SLOT\tCATEGORY\tBUCKET\tRULE\tNAME")
			} else {
				fmt.Fprintln(tw, "SLOT\tCATEGORY\tBUCKET\tNAME")
			}
			for _, r := range rows {
				if f.explain {
					fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", r.SlotIndex, r.Category, r.Bucket, r.Rule, r.Name)
				} else {
					fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", r.SlotIndex, r.Category, r.Bucket, r.Name)
				}
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&f.snapshot, "snapshot", "", `desktop snapshot (JSONL), "-" for stdin`)
	cmd.Flags().BoolVar(&f.explain, "explain", false, "show the rule that chose each category")
	cmd.Flags().BoolVar(&f.jsonOut, "json", false, "print the result as JSON")
	_ = cmd.MarkFlagRequired("snapshot")
	addLexiconFlags(cmd)

	return cmd
}
