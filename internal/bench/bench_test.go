package bench

import (
	"bytes"
	"context"
	"errors"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coregx/wildkmp"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewPCG(7, 11))
}

func TestGenerate(t *testing.T) {
	spec := CorpusSpec{Label: "small", Size: 500, Letters: 2}
	c := Generate(testRNG(), spec)

	assert.Equal(t, "small2", spec.Name())
	require.Len(t, c.Text, 500)
	for _, b := range c.Text {
		assert.Contains(t, []byte("ab"), b)
	}

	again := Generate(testRNG(), spec)
	assert.Equal(t, c.Text, again.Text, "same seed must give same corpus")
}

func TestPatterns(t *testing.T) {
	rng := testRNG()
	c := Generate(rng, CorpusSpec{Label: "t", Size: 400, Letters: 4})

	exact := Patterns(rng, c, PatternSpec{MinLen: 10, MaxLen: 50, Step: 10, Wildcard: '?'})
	require.Len(t, exact, 5)
	for i, p := range exact {
		assert.Len(t, p, 10+10*i)
		assert.True(t, bytes.Contains(c.Text, p), "pattern %q not sliced from corpus", p)
	}

	wild := Patterns(rng, c, PatternSpec{MinLen: 20, MaxLen: 20, Step: 1, Wildcards: 3, Wildcard: '?'})
	require.Len(t, wild, 1)
	n := bytes.Count(wild[0], []byte("?"))
	assert.GreaterOrEqual(t, n, 1)
	assert.LessOrEqual(t, n, 3)
}

func TestMeasure(t *testing.T) {
	m := wildkmp.MustNew(wildkmp.Optimized, wildkmp.DefaultConfig())
	res, err := Measure(m, []byte("abcabcabc"), []byte("abc"), 5)
	require.NoError(t, err)
	assert.Equal(t, 6, res.Pos)
	assert.GreaterOrEqual(t, res.Mean.Nanoseconds(), int64(0))

	_, err = Measure(m, []byte("ab"), []byte("abc"), 3)
	assert.ErrorIs(t, err, wildkmp.ErrInvalidInput)
}

func TestReportWriter(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewReportWriter(&buf)
	require.NoError(t, err)
	require.NoError(t, w.Write(Row{Algorithm: wildkmp.Naive, PatternLen: 100, Nanos: 1234}))
	require.NoError(t, w.Write(Row{Algorithm: wildkmp.Optimized, PatternLen: 200, Nanos: 56}))
	require.NoError(t, w.Flush())

	want := "algo_name;pattern_len;time\nstupid;100;1234\nrefined_kmp;200;56\n"
	assert.Equal(t, want, buf.String())
}

func TestNames(t *testing.T) {
	assert.Equal(t, "big4_count_q_is_2.csv", FileName("big4", 2))
	assert.Equal(t, "kmp", ReportName(wildkmp.Concat))
	assert.Equal(t, "hash", ReportName(wildkmp.Hash))
	assert.Equal(t, "Algorithm(9)", ReportName(wildkmp.Algorithm(9)))
}

func TestConfigValidate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"no_corpora", func(c *Config) { c.Corpora = nil }},
		{"zero_step", func(c *Config) { c.Step = 0 }},
		{"inverted_lengths", func(c *Config) { c.MaxLen = c.MinLen - 1 }},
		{"no_reps", func(c *Config) { c.Reps = 0 }},
		{"corpus_too_small", func(c *Config) { c.Corpora[0].Size = c.MaxLen }},
		{"too_many_letters", func(c *Config) { c.Corpora[0].Letters = 27 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}

	cfg := DefaultConfig()
	cfg.Engine.Separator = cfg.Engine.Wildcard
	var ce *wildkmp.ConfigError
	assert.True(t, errors.As(cfg.Validate(), &ce))
}

func smallConfig(dir string) Config {
	cfg := DefaultConfig()
	cfg.Corpora = []CorpusSpec{
		{Label: "small", Size: 300, Letters: 2},
		{Label: "small", Size: 300, Letters: 4},
	}
	cfg.MinLen, cfg.MaxLen, cfg.Step = 10, 30, 10
	cfg.MaxWildcards = 1
	cfg.Reps = 2
	cfg.OutDir = dir
	return cfg
}

func TestRunnerRun(t *testing.T) {
	dir := t.TempDir()
	var logs bytes.Buffer
	log, err := NewLogger(&logs, "info")
	require.NoError(t, err)

	r, err := NewRunner(smallConfig(dir), log)
	require.NoError(t, err)
	sum, err := r.Run(context.Background())
	require.NoError(t, err)

	// 2 corpora x 2 wildcard counts; 3 patterns each; 4 rows without
	// wildcards, 3 with.
	require.Len(t, sum.Files, 4)
	assert.Equal(t, 2*3*4+2*3*3, sum.Rows)

	data, err := os.ReadFile(filepath.Join(dir, "small2_count_q_is_0.csv"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1+3*4)
	assert.Equal(t, "algo_name;pattern_len;time", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "stupid;10;"))
	assert.True(t, strings.HasPrefix(lines[4], "hash;10;"))

	data, err = os.ReadFile(filepath.Join(dir, "small4_count_q_is_1.csv"))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hash;")

	assert.Contains(t, logs.String(), "report written")
}

func TestRunnerCancelled(t *testing.T) {
	r, err := NewRunner(smallConfig(t.TempDir()), nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = r.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewLogger(t *testing.T) {
	_, err := NewLogger(&bytes.Buffer{}, "loud")
	assert.Error(t, err)

	var buf bytes.Buffer
	log, err := NewLogger(&buf, "warn")
	require.NoError(t, err)
	log.Info("hidden")
	log.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
