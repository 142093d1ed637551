package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"cjksieve/internal/config"
)

// app holds state shared by all subcommands, set up in PersistentPreRunE.
type app struct {
	configPath string
	logLevel   string

	cfg    config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "cjksieve",
		Short: "Route text by CJK script through sieve token filters",
		Long: `cjksieve runs analyzer chains built from script-aware tokenizers and
CJK sieve filters. A sieve passes all tokens of an input through, or none,
depending on which of Han, Hiragana, Katakana and Hangul occur in it.

Analyzers and indexed fields come from a TOML file (--config). Without one,
an analyzer "sieve_<mode>" exists for every emit mode.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "path to TOML config file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error (overrides config and "+config.EnvLogLevel+")")

	root.AddCommand(
		newAnalyzeCmd(a),
		newScriptsCmd(a),
		newIndexCmd(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	var level slog.Level
	if a.logLevel != "" {
		level, err = config.ParseLogLevel(a.logLevel)
	} else {
		level, err = cfg.EffectiveLogLevel()
	}
	if err != nil {
		return err
	}

	a.logger = slog.New(slog.NewJSONHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	a.logger.Debug("config loaded",
		"version", Version,
		"config", a.configPath,
		"analyzers", len(cfg.Analyzers),
		"fields", len(cfg.Fields),
	)
	return nil
}

// inputTexts returns the arguments joined as one input, or one input per
// line of stdin when there are no arguments.
func inputTexts(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) > 0 {
		return []string{strings.Join(args, " ")}, nil
	}
	return readLines(cmd.InOrStdin())
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return lines, nil
}
