package bench

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/coregx/wildkmp"
)

// Config controls a benchmark run.
type Config struct {
	// Corpora lists the texts to generate.
	Corpora []CorpusSpec

	// MinLen, MaxLen and Step define the pattern lengths.
	MinLen, MaxLen, Step int

	// MaxWildcards is the largest wildcard count; every count from 0 to
	// MaxWildcards gets its own set of reports.
	MaxWildcards int

	// Reps is the number of timed calls averaged per measurement.
	Reps int

	// Seed makes corpora and patterns reproducible.
	Seed uint64

	// OutDir receives the report files.
	OutDir string

	// Engine configures the engines under test.
	Engine wildkmp.Config
}

// DefaultConfig returns the configuration of the reference tables: 10 000
// and 100 000 symbols over 2 and 4 letters, patterns of 100 to 3000
// symbols, 0 to 4 wildcards, 10 repetitions.
func DefaultConfig() Config {
	return Config{
		Corpora: []CorpusSpec{
			{Label: "small", Size: 10_000, Letters: 2},
			{Label: "small", Size: 10_000, Letters: 4},
			{Label: "big", Size: 100_000, Letters: 2},
			{Label: "big", Size: 100_000, Letters: 4},
		},
		MinLen:       100,
		MaxLen:       3000,
		Step:         100,
		MaxWildcards: 4,
		Reps:         10,
		Seed:         1,
		OutDir:       "csv",
		Engine:       wildkmp.DefaultConfig(),
	}
}

// ErrInvalidConfig indicates an unusable benchmark configuration.
var ErrInvalidConfig = errors.New("invalid benchmark config")

// Validate checks that every corpus is longer than the longest pattern and
// that all counts are positive.
func (c Config) Validate() error {
	if len(c.Corpora) == 0 {
		return fmt.Errorf("%w: no corpora", ErrInvalidConfig)
	}
	if c.MinLen < 1 || c.Step < 1 || c.MaxLen < c.MinLen {
		return fmt.Errorf("%w: pattern lengths %d..%d step %d", ErrInvalidConfig, c.MinLen, c.MaxLen, c.Step)
	}
	if c.MaxWildcards < 0 || c.Reps < 1 {
		return fmt.Errorf("%w: wildcards %d, reps %d", ErrInvalidConfig, c.MaxWildcards, c.Reps)
	}
	for _, s := range c.Corpora {
		if s.Letters < 1 || s.Letters > 26 {
			return fmt.Errorf("%w: corpus %s: letters must be between 1 and 26", ErrInvalidConfig, s.Name())
		}
		if s.Size <= c.MaxLen {
			return fmt.Errorf("%w: corpus %s: size %d must exceed max pattern length %d",
				ErrInvalidConfig, s.Name(), s.Size, c.MaxLen)
		}
	}
	return c.Engine.Validate()
}

// Summary describes a finished run.
type Summary struct {
	Files []string
	Rows  int

	// Divergences counts measurements where a wildcard-aware engine
	// reported a different last position than the naive one.
	Divergences int
}

// Runner generates corpora and times every engine on them.
type Runner struct {
	cfg      Config
	log      *slog.Logger
	matchers map[wildkmp.Algorithm]wildkmp.Matcher
}

// NewRunner validates cfg and builds the engines.
func NewRunner(cfg Config, log *slog.Logger) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	r := &Runner{
		cfg:      cfg,
		log:      log,
		matchers: make(map[wildkmp.Algorithm]wildkmp.Matcher),
	}
	for _, alg := range wildkmp.Algorithms() {
		m, err := wildkmp.New(alg, cfg.Engine)
		if err != nil {
			return nil, err
		}
		r.matchers[alg] = m
	}
	return r, nil
}

// Run writes one report per (corpus, wildcard count) to cfg.OutDir. The
// context is checked between patterns.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	var sum Summary
	if err := os.MkdirAll(r.cfg.OutDir, 0o755); err != nil {
		return sum, fmt.Errorf("create report dir: %w", err)
	}

	rng := rand.New(rand.NewPCG(r.cfg.Seed, r.cfg.Seed^0x9e3779b97f4a7c15))
	corpora := make([]Corpus, len(r.cfg.Corpora))
	for i, spec := range r.cfg.Corpora {
		corpora[i] = Generate(rng, spec)
		r.log.Debug("corpus generated", "corpus", spec.Name(), "size", spec.Size)
	}

	for k := 0; k <= r.cfg.MaxWildcards; k++ {
		for _, c := range corpora {
			patterns := Patterns(rng, c, PatternSpec{
				MinLen:    r.cfg.MinLen,
				MaxLen:    r.cfg.MaxLen,
				Step:      r.cfg.Step,
				Wildcards: k,
				Wildcard:  r.cfg.Engine.Wildcard,
			})
			path := filepath.Join(r.cfg.OutDir, FileName(c.Spec.Name(), k))
			rows, div, err := r.runReport(ctx, path, c, patterns, k)
			if err != nil {
				return sum, err
			}
			sum.Files = append(sum.Files, path)
			sum.Rows += rows
			sum.Divergences += div
			r.log.Info("report written", "file", path, "rows", rows, "divergences", div)
		}
	}
	return sum, nil
}

func (r *Runner) runReport(ctx context.Context, path string, c Corpus, patterns [][]byte, wildcards int) (rows, divergences int, err error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, 0, fmt.Errorf("create report: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close report: %w", cerr)
		}
	}()

	w, err := NewReportWriter(f)
	if err != nil {
		return 0, 0, fmt.Errorf("write report header: %w", err)
	}

	for _, p := range patterns {
		if err := ctx.Err(); err != nil {
			return rows, divergences, err
		}
		naivePos := wildkmp.NoMatch
		for _, alg := range wildkmp.Algorithms() {
			// Hash does not interpret the wildcard; its timings are only
			// comparable on exact patterns.
			if alg == wildkmp.Hash && wildcards > 0 {
				continue
			}
			res, err := Measure(r.matchers[alg], c.Text, p, r.cfg.Reps)
			if err != nil {
				return rows, divergences, fmt.Errorf("%s on %s (len %d): %w", alg, c.Spec.Name(), len(p), err)
			}
			if alg == wildkmp.Naive {
				naivePos = res.Pos
			} else if r.matchers[alg].SupportsWildcard() && res.Pos != naivePos {
				divergences++
				r.log.Warn("position differs from naive",
					"algorithm", alg.String(), "corpus", c.Spec.Name(),
					"pattern_len", len(p), "got", res.Pos, "naive", naivePos)
			}
			if err := w.Write(Row{Algorithm: alg, PatternLen: len(p), Nanos: res.Mean.Nanoseconds()}); err != nil {
				return rows, divergences, fmt.Errorf("write report row: %w", err)
			}
			rows++
		}
	}
	if err := w.Flush(); err != nil {
		return rows, divergences, fmt.Errorf("flush report: %w", err)
	}
	return rows, divergences, nil
}
