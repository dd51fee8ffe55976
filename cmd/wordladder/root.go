package main

import (
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordladder/config"
	"github.com/katalvlaran/wordladder/dictionary"
	"github.com/katalvlaran/wordladder/hint"
	"github.com/katalvlaran/wordladder/neighbor"
	"github.com/katalvlaran/wordladder/search"
)

// app is the state shared by all subcommands of one invocation.
type app struct {
	configPath string
	dictPath   string
	logLevel   string
	logFormat  string
	strategy   string

	cfg      config.Config
	logger   *slog.Logger
	registry *prometheus.Registry
	metrics  *search.Metrics
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "wordladder",
		Short: "Word ladder solver",
		Long: `wordladder finds shortest ladders between equal-length words,
changing one letter per step and visiting only dictionary words.

Examples:
  wordladder solve cat dog --dict words.txt
  wordladder solve cold warm --strategy all
  wordladder hint cot dog
  wordladder play cat dog
  wordladder graph --length 4`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: a.dumpMetrics,
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "", "Path to a YAML config file")
	pf.StringVarP(&a.dictPath, "dict", "d", "", "Word list, one word per line (overrides dictionary.path)")
	pf.StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	pf.StringVar(&a.logFormat, "log-format", "", "Log format: text or json")

	root.AddCommand(
		a.solveCmd(),
		a.hintCmd(),
		a.compareCmd(),
		a.checkCmd(),
		a.graphCmd(),
		a.playCmd(),
	)
	return root
}

// setup loads the config, applies flag overrides and builds the logger and
// metrics.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg := config.Default()
	if a.configPath != "" {
		loaded, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if a.dictPath != "" {
		cfg.Dictionary.Path = a.dictPath
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.logFormat != "" {
		cfg.Log.Format = a.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	lvl, _ := cfg.Log.SlogLevel()
	a.logger = newLogger(cmd.ErrOrStderr(), cfg.Log.Format, lvl)

	if cfg.Metrics.Enabled {
		a.registry = prometheus.NewRegistry()
		m, err := search.NewMetrics(a.registry)
		if err != nil {
			return err
		}
		a.metrics = m
	}
	return nil
}

func newLogger(w io.Writer, format string, lvl slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: lvl}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// loadDictionary reads the configured word list and keeps the words of n letters.
func (a *app) loadDictionary(n int) (*dictionary.Set, error) {
	set, err := dictionary.LoadFile(a.cfg.Dictionary.Path, a.cfg.Dictionary.LoadOptions()...)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("dictionary loaded",
		slog.String("path", a.cfg.Dictionary.Path),
		slog.Int("words", set.Len()))
	if n <= 0 {
		return set, nil
	}
	return set.WordsOfLength(n), nil
}

// strategies resolves the --strategy flag; "all" selects every strategy.
func (a *app) strategies() ([]search.Strategy, error) {
	label := a.strategy
	if label == "" {
		label = a.cfg.Search.Strategy
	}
	if strings.EqualFold(label, "all") {
		return search.Strategies(), nil
	}
	s, err := search.ParseStrategy(label)
	if err != nil {
		return nil, err
	}
	return []search.Strategy{s}, nil
}

// advisor builds a hint.Advisor over a cache sized from the config.
func (a *app) advisor(s search.Strategy) (*hint.Advisor, error) {
	cache, err := neighbor.NewCache(neighbor.WithCapacity(a.cfg.Cache.Capacity))
	if err != nil {
		return nil, err
	}
	opts := a.cfg.Search.Options()
	if a.metrics != nil {
		opts = append(opts, search.WithMetrics(a.metrics))
	}
	return hint.NewAdvisor(s,
		hint.WithCache(cache),
		hint.WithSearchOptions(opts...),
		hint.WithLogger(a.logger))
}

// pair lowercases and length-checks a start/target argument pair.
func pair(args []string) (string, string, error) {
	start, target := strings.ToLower(args[0]), strings.ToLower(args[1])
	if len(start) != len(target) {
		return "", "", fmt.Errorf("%q and %q differ in length", start, target)
	}
	return start, target, nil
}

// dumpMetrics writes collected samples to stderr when metrics are enabled.
func (a *app) dumpMetrics(cmd *cobra.Command, _ []string) {
	if a.registry == nil {
		return
	}
	families, err := a.registry.Gather()
	if err != nil {
		a.logger.Warn("gather metrics", slog.Any("error", err))
		return
	}
	w := cmd.ErrOrStderr()
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			pairs := make([]string, 0, len(m.GetLabel()))
			for _, lp := range m.GetLabel() {
				pairs = append(pairs, fmt.Sprintf("%s=%q", lp.GetName(), lp.GetValue()))
			}
			sort.Strings(pairs)
			labels := "{" + strings.Join(pairs, ",") + "}"
			switch {
			case m.GetCounter() != nil:
				fmt.Fprintf(w, "%s%s %g\n", mf.GetName(), labels, m.GetCounter().GetValue())
			case m.GetHistogram() != nil:
				h := m.GetHistogram()
				fmt.Fprintf(w, "%s_count%s %d\n", mf.GetName(), labels, h.GetSampleCount())
				fmt.Fprintf(w, "%s_sum%s %g\n", mf.GetName(), labels, h.GetSampleSum())
			}
		}
	}
}
