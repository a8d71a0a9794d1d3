package phondist

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/atlasling/phondist/distance"
)

// Config is the user-facing weight configuration. Field names follow the
// option names accepted in weight files.
type Config struct {
	DiacriticWeight         float64 `toml:"diacriticWeight"`
	VowelIndelCost          float64 `toml:"vowelIndelCost"`
	ConsonantIndelCost      float64 `toml:"consonantIndelCost"`
	BoundaryIndelCost       float64 `toml:"boundaryIndelCost"`
	CrossCategoryCost       float64 `toml:"crossCategoryCost"`
	UnknownSameCategoryCost float64 `toml:"unknownSameCategoryCost"`
	BoundaryOtherCost       float64 `toml:"boundaryOtherCost"`
	HeightDiffCost          float64 `toml:"heightDiffCost"`
	BacknessDiffCost        float64 `toml:"backnessDiffCost"`
	RoundDiffCost           float64 `toml:"roundDiffCost"`
	VoiceDiffCost           float64 `toml:"voiceDiffCost"`
	PlaceDiffCost           float64 `toml:"placeDiffCost"`
	MannerDiffCost          float64 `toml:"mannerDiffCost"`
	KeepBoundaries          bool    `toml:"keepBoundaries"`
}

// DefaultConfig returns the documented default for every option.
func DefaultConfig() Config {
	w := distance.Default()
	return Config{
		DiacriticWeight:         w.Diacritic,
		VowelIndelCost:          w.VowelIndel,
		ConsonantIndelCost:      w.ConsonantIndel,
		BoundaryIndelCost:       w.BoundaryIndel,
		CrossCategoryCost:       w.CrossCategory,
		UnknownSameCategoryCost: w.UnknownSameCategory,
		BoundaryOtherCost:       w.BoundaryOther,
		HeightDiffCost:          w.HeightDiff,
		BacknessDiffCost:        w.BacknessDiff,
		RoundDiffCost:           w.RoundDiff,
		VoiceDiffCost:           w.VoiceDiff,
		PlaceDiffCost:           w.PlaceDiff,
		MannerDiffCost:          w.MannerDiff,
		KeepBoundaries:          false,
	}
}

// Weights converts the configuration into the distance package's weight
// set.
func (c Config) Weights() distance.Weights {
	return distance.Weights{
		Diacritic:           c.DiacriticWeight,
		VowelIndel:          c.VowelIndelCost,
		ConsonantIndel:      c.ConsonantIndelCost,
		BoundaryIndel:       c.BoundaryIndelCost,
		CrossCategory:       c.CrossCategoryCost,
		UnknownSameCategory: c.UnknownSameCategoryCost,
		BoundaryOther:       c.BoundaryOtherCost,
		HeightDiff:          c.HeightDiffCost,
		BacknessDiff:        c.BacknessDiffCost,
		RoundDiff:           c.RoundDiffCost,
		VoiceDiff:           c.VoiceDiffCost,
		PlaceDiff:           c.PlaceDiffCost,
		MannerDiff:          c.MannerDiffCost,
	}
}

// LoadConfig reads a TOML weight file on top of the defaults, so a file
// only needs to name the options it changes. The weights are validated.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("decode config %s: %w", path, err)
	}
	if err := cfg.Weights().Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}
