package phondist

import (
	"math"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/atlasling/phondist/distance"
	"github.com/atlasling/phondist/segment"
)

func TestFormSimilarityIdentity(t *testing.T) {
	for _, s := range []string{"", "pan", "gàtto", "r̥a"} {
		if got := FormSimilarity(s, s); got != 1 {
			t.Errorf("FormSimilarity(%q, %q) = %v, want 1", s, s, got)
		}
	}
}

func TestGattoRegression(t *testing.T) {
	// One diacritic difference on one of five tokens: d = 0.1, normalized
	// against 5 × 1.1. Quoted in the docs as 0.98.
	got := FormSimilarity("gatto", "gàtto")
	want := 1 - 0.1/5.5
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("FormSimilarity(gatto, gàtto) = %v, want %v", got, want)
	}
	if math.Abs(got-0.98) > 0.005 {
		t.Errorf("FormSimilarity(gatto, gàtto) = %v, want 0.98 at two decimals", got)
	}
}

func TestFormSimilarityEmpty(t *testing.T) {
	if got := FormSimilarity("", ""); got != 1 {
		t.Errorf("FormSimilarity(empty, empty) = %v, want 1", got)
	}
	got := FormSimilarity("", "a")
	if got >= 1 || got < 0 || math.IsNaN(got) {
		t.Errorf("FormSimilarity(empty, a) = %v, want a value in [0, 1)", got)
	}
}

func TestDiacriticWeightMonotonic(t *testing.T) {
	prev := math.Inf(1)
	for _, dw := range []float64{0, 0.1, 0.3, 0.8} {
		w := distance.Default()
		w.Diacritic = dw
		c, err := New(WithWeights(w))
		if err != nil {
			t.Fatal(err)
		}
		got := c.FormSimilarity("gatto", "gàtto")
		if got > prev {
			t.Errorf("similarity rose from %v to %v as diacritic weight grew to %v", prev, got, dw)
		}
		prev = got
	}
}

func TestSplitVariants(t *testing.T) {
	tests := []struct {
		name string
		cell string
		want []string
	}{
		{"single", "pane", []string{"pane"}},
		{"two", "pane/pàn", []string{"pane", "pàn"}},
		{"padded", " pane / pan ", []string{"pane", "pan"}},
		{"empty_variants_dropped", "/pane//", []string{"pane"}},
		{"fullwidth_slash", "pane／pan", []string{"pane", "pan"}},
		{"empty_cell", "", []string{""}},
		{"delimiters_only", "/", []string{"/"}},
		{"whitespace_only", "   ", []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SplitVariants(tt.cell); !slices.Equal(got, tt.want) {
				t.Errorf("SplitVariants(%q) = %q, want %q", tt.cell, got, tt.want)
			}
		})
	}
}

func TestCellSimilarity(t *testing.T) {
	// An exact-match variant pair wins the cross product.
	if got := CellSimilarity("pane/pan", "pan"); got != 1 {
		t.Errorf("CellSimilarity(pane/pan, pan) = %v, want 1", got)
	}

	// The best pair decides, so the cell can never score below its best
	// single variant.
	cell := CellSimilarity("pane/pàn", "pan")
	best := FormSimilarity("pàn", "pan")
	if math.Abs(cell-best) > 1e-12 {
		t.Errorf("CellSimilarity = %v, want best variant pair %v", cell, best)
	}
	if worse := FormSimilarity("pane", "pan"); cell <= worse {
		t.Errorf("CellSimilarity = %v, not above the worse pair %v", cell, worse)
	}

	// Degenerate cells stay well-defined.
	if got := CellSimilarity("", ""); got != 1 {
		t.Errorf("CellSimilarity(empty, empty) = %v, want 1", got)
	}
	if got := CellSimilarity("/", "/"); got != 1 {
		t.Errorf("CellSimilarity(/, /) = %v, want 1", got)
	}
	if got := CellSimilarity(" ", "a"); got < 0 || got > 1 {
		t.Errorf("CellSimilarity(blank, a) = %v out of range", got)
	}
}

func TestCellSimilarityRange(t *testing.T) {
	cells := []string{"", "/", "pane/pàn/pan", "kàmpana", "a b c", "x／y"}
	for _, a := range cells {
		for _, b := range cells {
			if got := CellSimilarity(a, b); got < 0 || got > 1 {
				t.Errorf("CellSimilarity(%q, %q) = %v out of range", a, b, got)
			}
		}
	}
}

func TestNewRejectsNegativeWeights(t *testing.T) {
	w := distance.Default()
	w.CrossCategory = -1
	if _, err := New(WithWeights(w)); err == nil {
		t.Error("New should reject negative weights")
	}
}

func TestComparerWithCache(t *testing.T) {
	plain, err := New()
	if err != nil {
		t.Fatal(err)
	}
	cached, err := New(WithCache(segment.NewCache()))
	if err != nil {
		t.Fatal(err)
	}

	pairs := [][2]string{
		{"pane/pàn", "pan"},
		{"gatto", "gàtto"},
		{"gatto", "gàtto"}, // repeat hits the cache
	}
	for _, p := range pairs {
		if a, b := plain.CellSimilarity(p[0], p[1]), cached.CellSimilarity(p[0], p[1]); a != b {
			t.Errorf("cache changed CellSimilarity(%q, %q): %v vs %v", p[0], p[1], a, b)
		}
	}
}

func TestComparerBoundaries(t *testing.T) {
	c, err := New(WithBoundaries(true))
	if err != nil {
		t.Fatal(err)
	}
	seq := c.Tokenize("pan")
	if len(seq) != 5 || !seq[0].IsBoundary() || !seq[4].IsBoundary() {
		t.Errorf("boundary tokenization = %v, want sentinels around 3 tokens", seq)
	}
	if got := c.FormSimilarity("pan", "pan"); got != 1 {
		t.Errorf("identity with boundaries = %v, want 1", got)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weights.toml")
	body := "diacriticWeight = 0.25\nmannerDiffCost = 0.9\nkeepBoundaries = true\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DiacriticWeight != 0.25 || cfg.MannerDiffCost != 0.9 || !cfg.KeepBoundaries {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	// Untouched options keep their defaults.
	if cfg.VowelIndelCost != 1.0 || cfg.CrossCategoryCost != 1.3 {
		t.Errorf("defaults lost: %+v", cfg)
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("missing file should error")
	}

	bad := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(bad, []byte("diacriticWeight = -1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(bad); err == nil {
		t.Error("negative weight in file should error")
	}
}

func BenchmarkCellSimilarity(b *testing.B) {
	c, err := New(WithCache(segment.NewCache()))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.CellSimilarity("pane/pàn/pan", "pàne/pan")
	}
}
