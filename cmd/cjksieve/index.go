package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"cjksieve/internal/indexing"
)

func newIndexCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "index [FILE]",
		Short: "Index JSON-lines documents into per-field postings and print field stats",
		Long: `Read one JSON object per line (from FILE or stdin), run every configured
field through its analyzer and report per-field statistics. Fields fed by a
sieve analyzer show how many values were suppressed.

Examples:
  cjksieve index docs.jsonl
  cjksieve index -c cjksieve.toml --json < docs.jsonl`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var r io.Reader = cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open documents: %w", err)
				}
				defer f.Close()
				r = f
			}

			reg, err := a.cfg.Registry()
			if err != nil {
				return err
			}
			w, err := indexing.NewWriter(a.cfg.Fields, reg, indexing.Options{
				Logger: a.logger.With("component", "indexing"),
			})
			if err != nil {
				return err
			}
			defer w.Release()

			lines, err := readLines(r)
			if err != nil {
				return err
			}
			for i, line := range lines {
				if strings.TrimSpace(line) == "" {
					continue
				}
				doc, err := indexing.ParseDocument([]byte(line))
				if err != nil {
					return fmt.Errorf("line %d: %w", i+1, err)
				}
				if err := w.AddDocument(doc); err != nil {
					return fmt.Errorf("line %d: %w", i+1, err)
				}
			}
			a.logger.Info("indexed documents",
				"docs", w.DocCount(),
				"terms", w.Buffer().TermCount,
				"bytes", w.Buffer().MemoryUsed(),
			)

			stats := w.Stats()
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), stats)
			}
			p := newPrinter(cmd.OutOrStdout())
			rows := make([][]string, len(stats))
			for i, s := range stats {
				rows[i] = []string{
					s.Field,
					strconv.Itoa(s.Docs),
					strconv.Itoa(s.Suppressed),
					strconv.Itoa(s.Tokens),
					strconv.Itoa(s.Terms),
				}
			}
			p.table([]string{"FIELD", "DOCS", "SUPPRESSED", "TOKENS", "TERMS"}, rows)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")
	return cmd
}
