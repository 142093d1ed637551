package main

import (
	"strings"

	"github.com/spf13/cobra"

	"cjksieve/internal/analysis"
)

type scriptsResult struct {
	Input   string          `json:"input"`
	Scripts string          `json:"scripts"`
	Emit    map[string]bool `json:"emit"`
}

func newScriptsCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "scripts [TEXT...]",
		Short: "Show detected scripts and the decision of every emit mode",
		Long: `Tokenize each input with the standard tokenizer, collect the CJK scripts
its tokens contain and show whether each emit mode would pass it through.

Examples:
  cjksieve scripts "日本マンガを知るためのブック・ガイド"
  cjksieve scripts --json < titles.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			texts, err := inputTexts(cmd, args)
			if err != nil {
				return err
			}

			tok := analysis.NewStandardTokenizer()
			results := make([]scriptsResult, 0, len(texts))
			for _, text := range texts {
				tok.SetReader(strings.NewReader(text))
				if err := tok.Reset(); err != nil {
					return err
				}
				tokens, _, err := analysis.Drain(tok)
				if err != nil {
					return err
				}
				var seen analysis.ScriptSet
				for _, t := range tokens {
					seen |= analysis.ClassifyToken(t)
				}

				res := scriptsResult{Input: text, Scripts: seen.String(), Emit: map[string]bool{}}
				for _, mode := range analysis.EmitModes() {
					res.Emit[mode.String()] = mode.Allows(seen)
				}
				results = append(results, res)
			}
			a.logger.Debug("scripts classified", "inputs", len(results))

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), results)
			}
			p := newPrinter(cmd.OutOrStdout())
			for _, res := range results {
				p.line("%s %s", res.Input, p.muted("["+res.Scripts+"]"))
				rows := make([][]string, 0, len(res.Emit))
				for _, mode := range analysis.EmitModes() {
					rows = append(rows, []string{mode.String(), p.verdict(res.Emit[mode.String()])})
				}
				p.table([]string{"MODE", "DECISION"}, rows)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")
	return cmd
}
