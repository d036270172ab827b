// wildbench times the wildkmp engines on synthetic corpora and writes one
// ';'-delimited report per corpus and wildcard count.
//
// Usage:
//
//	wildbench --out csv --reps 10 --max-wildcards 4
//	wildbench match --algorithm refined_kmp abcabcabc a?c
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/coregx/wildkmp"
	"github.com/coregx/wildkmp/internal/bench"
)

// options holds the flag values of one command tree.
type options struct {
	sizes        map[string]int
	letters      []int
	minLen       int
	maxLen       int
	step         int
	maxWildcards int
	reps         int
	seed         uint64
	outDir       string
	logLevel     string
	wildcard     string
	separator    string
	algorithm    string
}

// newRootCmd builds the command tree with its own flag state.
func newRootCmd() *cobra.Command {
	o := &options{}

	rootCmd := &cobra.Command{
		Use:          "wildbench",
		Short:        "Benchmark wildcard substring search engines",
		Long:         "Generates random corpora, times every engine on patterns sliced from them and writes the averages as CSV reports.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         o.runBench,
	}

	matchCmd := &cobra.Command{
		Use:   "match TEXT PATTERN",
		Short: "Print the last occurrence of PATTERN in TEXT",
		Args:  cobra.ExactArgs(2),
		RunE:  o.runMatch,
	}

	defaults := bench.DefaultConfig()

	f := rootCmd.Flags()
	f.StringToIntVar(&o.sizes, "sizes", map[string]int{"small": 10_000, "big": 100_000}, "corpus size classes as label=size")
	f.IntSliceVar(&o.letters, "letters", []int{2, 4}, "alphabet sizes")
	f.IntVar(&o.minLen, "min-len", defaults.MinLen, "shortest pattern")
	f.IntVar(&o.maxLen, "max-len", defaults.MaxLen, "longest pattern")
	f.IntVar(&o.step, "step", defaults.Step, "pattern length step")
	f.IntVar(&o.maxWildcards, "max-wildcards", defaults.MaxWildcards, "largest wildcard count per pattern")
	f.IntVar(&o.reps, "reps", defaults.Reps, "timed calls averaged per measurement")
	f.Uint64Var(&o.seed, "seed", defaults.Seed, "random seed")
	f.StringVar(&o.outDir, "out", defaults.OutDir, "report directory")
	f.StringVar(&o.logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	rootCmd.PersistentFlags().StringVar(&o.wildcard, "wildcard", "?", "wildcard symbol")
	rootCmd.PersistentFlags().StringVar(&o.separator, "separator", "#", "separator symbol")

	matchCmd.Flags().StringVar(&o.algorithm, "algorithm", "optimized", "engine: naive|concat|optimized|hash (or stupid|kmp|refined_kmp)")

	rootCmd.AddCommand(matchCmd)
	return rootCmd
}

func (o *options) engineConfig() (wildkmp.Config, error) {
	if len(o.wildcard) != 1 || len(o.separator) != 1 {
		return wildkmp.Config{}, fmt.Errorf("wildcard and separator must be single bytes")
	}
	config := wildkmp.DefaultConfig()
	config.Wildcard = o.wildcard[0]
	config.Separator = o.separator[0]
	return config, config.Validate()
}

// corpusSpecs expands size classes and alphabet sizes, smallest size first.
func (o *options) corpusSpecs() []bench.CorpusSpec {
	labels := make([]string, 0, len(o.sizes))
	for label := range o.sizes {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		if o.sizes[labels[i]] != o.sizes[labels[j]] {
			return o.sizes[labels[i]] < o.sizes[labels[j]]
		}
		return labels[i] < labels[j]
	})

	var specs []bench.CorpusSpec
	for _, label := range labels {
		for _, n := range o.letters {
			specs = append(specs, bench.CorpusSpec{Label: label, Size: o.sizes[label], Letters: n})
		}
	}
	return specs
}

func (o *options) runBench(cmd *cobra.Command, args []string) error {
	log, err := bench.NewLogger(cmd.ErrOrStderr(), o.logLevel)
	if err != nil {
		return err
	}
	engine, err := o.engineConfig()
	if err != nil {
		return err
	}

	cfg := bench.Config{
		Corpora:      o.corpusSpecs(),
		MinLen:       o.minLen,
		MaxLen:       o.maxLen,
		Step:         o.step,
		MaxWildcards: o.maxWildcards,
		Reps:         o.reps,
		Seed:         o.seed,
		OutDir:       o.outDir,
		Engine:       engine,
	}
	r, err := bench.NewRunner(cfg, log)
	if err != nil {
		return err
	}

	sum, err := r.Run(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d reports, %d rows, %d divergent positions\n",
		len(sum.Files), sum.Rows, sum.Divergences)
	return nil
}

func (o *options) runMatch(cmd *cobra.Command, args []string) error {
	alg, err := wildkmp.ParseAlgorithm(o.algorithm)
	if err != nil {
		return err
	}
	config, err := o.engineConfig()
	if err != nil {
		return err
	}
	m, err := wildkmp.New(alg, config)
	if err != nil {
		return err
	}
	pos, err := m.Last([]byte(args[0]), []byte(args[1]))
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), strconv.Itoa(pos))
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
