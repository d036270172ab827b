package wildkmp

import (
	"errors"
	"slices"
	"testing"
)

type matchFunc func(text, pattern string) (int, error)

var helpers = map[string]matchFunc{
	"naive":     NaiveMatch,
	"concat":    ConcatMatch,
	"optimized": OptimizedMatch,
	"hash":      HashMatch,
}

func TestMatchHelpers(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		pattern string
		want    int
		hash    int
	}{
		{"periodic", "abcabcabc", "abc", 6, 6},
		{"wildcard", "aaaa", "a?", 2, NoMatch},
		{"equal_length", "abab", "abab", 0, 0},
		{"absent", "abab", "bb", NoMatch, NoMatch},
		{"hash_divergence", "xaycaz", "a?", 4, NoMatch},
	}
	for _, tt := range tests {
		for name, fn := range helpers {
			t.Run(tt.name+"/"+name, func(t *testing.T) {
				got, err := fn(tt.text, tt.pattern)
				if err != nil {
					t.Fatal(err)
				}
				want := tt.want
				if name == "hash" {
					want = tt.hash
				}
				if got != want {
					t.Errorf("%s(%q, %q) = %d, want %d", name, tt.text, tt.pattern, got, want)
				}
			})
		}
	}
}

func TestMatchHelpersInvalidInput(t *testing.T) {
	for name, fn := range helpers {
		t.Run(name, func(t *testing.T) {
			if _, err := fn("ab", "abc"); !errors.Is(err, ErrInvalidInput) {
				t.Errorf("pattern longer than text: error = %v", err)
			}
			if _, err := fn("ab", ""); !errors.Is(err, ErrInvalidInput) {
				t.Errorf("empty pattern: error = %v", err)
			}
		})
	}
}

func TestConcatMatchSeparator(t *testing.T) {
	if _, err := ConcatMatch("ab#ab", "ab"); !errors.Is(err, ErrAlphabetViolation) {
		t.Fatalf("error = %v, want ErrAlphabetViolation", err)
	}
}

func TestAlgorithmNames(t *testing.T) {
	aliases := map[string]Algorithm{
		"naive":       Naive,
		"stupid":      Naive,
		"concat":      Concat,
		"kmp":         Concat,
		"optimized":   Optimized,
		"refined_kmp": Optimized,
		"HASH":        Hash,
	}
	for s, want := range aliases {
		got, err := ParseAlgorithm(s)
		if err != nil || got != want {
			t.Errorf("ParseAlgorithm(%q) = %v, %v; want %v", s, got, err, want)
		}
	}
	if _, err := ParseAlgorithm("boyer-moore"); err == nil {
		t.Error("ParseAlgorithm accepted an unknown name")
	}
	for _, alg := range Algorithms() {
		got, err := ParseAlgorithm(alg.String())
		if err != nil || got != alg {
			t.Errorf("round trip of %v = %v, %v", alg, got, err)
		}
	}
	if s := Algorithm(42).String(); s != "Algorithm(42)" {
		t.Errorf("String() = %q", s)
	}
}

func TestNew(t *testing.T) {
	for _, alg := range Algorithms() {
		m, err := New(alg, DefaultConfig())
		if err != nil {
			t.Fatalf("New(%v): %v", alg, err)
		}
		if m.Name() != alg.String() {
			t.Errorf("Name() = %q, want %q", m.Name(), alg.String())
		}
		if m.SupportsWildcard() == (alg == Hash) {
			t.Errorf("%v: SupportsWildcard() = %v", alg, m.SupportsWildcard())
		}
	}
	if _, err := New(Algorithm(9), DefaultConfig()); err == nil {
		t.Error("New accepted an unknown algorithm")
	}
}

func TestNewConfigErrors(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		field  string
	}{
		{"same_symbols", func(c *Config) { c.Separator = c.Wildcard }, "Separator"},
		{"negative_capacity", func(c *Config) { c.HashCapacity = -1 }, "HashCapacity"},
		{"huge_capacity", func(c *Config) { c.HashCapacity = MaxHashCapacity + 1 }, "HashCapacity"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.modify(&config)
			_, err := New(Naive, config)
			var ce *ConfigError
			if !errors.As(err, &ce) {
				t.Fatalf("error = %v, want *ConfigError", err)
			}
			if ce.Field != tt.field {
				t.Errorf("Field = %q, want %q", ce.Field, tt.field)
			}
		})
	}
}

func TestMustNewPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustNew did not panic")
		}
	}()
	config := DefaultConfig()
	config.Separator = config.Wildcard
	MustNew(Concat, config)
}

func TestHashCapacityConfig(t *testing.T) {
	config := DefaultConfig()
	config.HashCapacity = 3
	m := MustNew(Hash, config)
	if _, err := m.Last([]byte("aaaaaa"), []byte("aaaa")); !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("error = %v, want ErrCapacityExceeded", err)
	}
	if pos, err := m.Last([]byte("aaaaaa"), []byte("aaa")); err != nil || pos != 3 {
		t.Fatalf("Last = %d, %v; want 3, nil", pos, err)
	}
}

func TestStrictHashConfig(t *testing.T) {
	config := DefaultConfig()
	config.StrictHash = true
	m := MustNew(Hash, config)
	if _, err := m.Last([]byte("abc"), []byte("a?")); !errors.Is(err, ErrAlphabetViolation) {
		t.Fatalf("error = %v, want ErrAlphabetViolation", err)
	}
}

func TestPrefixFunctions(t *testing.T) {
	pr := BuildPrefixFunction("aabaab")
	if !slices.Equal(pr, []int{0, 1, 0, 1, 2, 3}) {
		t.Errorf("BuildPrefixFunction = %v", pr)
	}
	prs := BuildRefinedPrefixFunction("aabaab")
	if !slices.Equal(prs, []int{0, 1, 0, 0, 1, 3}) {
		t.Errorf("BuildRefinedPrefixFunction = %v", prs)
	}
	for _, p := range []string{"a", "?", "ab?ab", "aaaa"} {
		pr := BuildPrefixFunction(p)
		if len(pr) != len(p) || pr[0] != 0 {
			t.Errorf("BuildPrefixFunction(%q) = %v", p, pr)
		}
	}
}

func TestRollingHashHelpers(t *testing.T) {
	h := BuildRollingHash("abcabc")
	if len(h) != 7 {
		t.Fatalf("len = %d, want 7", len(h))
	}
	x, err := QueryHash(h, 0, 3)
	if err != nil {
		t.Fatal(err)
	}
	y, err := QueryHash(h, 3, 6)
	if err != nil {
		t.Fatal(err)
	}
	if x != y {
		t.Errorf("QueryHash(0, 3) = %d, QueryHash(3, 6) = %d", x, y)
	}
	if _, err := QueryHash(h, 2, 9); !errors.Is(err, ErrCapacityExceeded) {
		t.Errorf("out of range: error = %v", err)
	}
}
