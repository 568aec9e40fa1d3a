package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// DefaultPath is where noisectl looks for its config when --config is unset.
const DefaultPath = "noisectl.toml"

var ErrInvalid = errors.New("config: invalid noisectl config")

// NoisectlConfig holds the defaults noisectl applies when flags are unset.
type NoisectlConfig struct {
	Seed    uint32    `toml:"seed"`
	Step    float64   `toml:"step"`
	Format  string    `toml:"format"`
	Workers int       `toml:"workers"`
	Origin  []float64 `toml:"origin"`
}

func DefaultNoisectlConfig() NoisectlConfig {
	return NoisectlConfig{
		Seed:    42,
		Step:    0.05,
		Format:  "text",
		Workers: 4,
	}
}

// LoadNoisectlConfig reads path over the defaults. Keys absent from the
// file keep their default value.
func LoadNoisectlConfig(path string) (NoisectlConfig, error) {
	cfg := DefaultNoisectlConfig()
	if err := loadToml(path, &cfg); err != nil {
		return NoisectlConfig{}, err
	}
	cfg.Format = strings.ToLower(strings.TrimSpace(cfg.Format))
	if err := ValidateNoisectlConfig(cfg); err != nil {
		return NoisectlConfig{}, err
	}
	return cfg, nil
}

func loadToml(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if err := toml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	return nil
}

func ValidateNoisectlConfig(cfg NoisectlConfig) error {
	if !(cfg.Step > 0) {
		return fmt.Errorf("%w: step must be positive, got %v", ErrInvalid, cfg.Step)
	}
	if cfg.Workers < 1 {
		return fmt.Errorf("%w: workers must be at least 1, got %d", ErrInvalid, cfg.Workers)
	}
	if err := ValidateFormat(cfg.Format); err != nil {
		return err
	}
	if len(cfg.Origin) > 4 {
		return fmt.Errorf("%w: origin has %d coordinates, at most 4 allowed", ErrInvalid, len(cfg.Origin))
	}
	return nil
}

func ValidateFormat(format string) error {
	switch format {
	case "text", "yaml", "json":
		return nil
	default:
		return fmt.Errorf("%w: unknown format %q (want text|yaml|json)", ErrInvalid, format)
	}
}

// OriginFor returns the grid origin padded with zeros to dims coordinates.
func (c NoisectlConfig) OriginFor(dims int) []float64 {
	out := make([]float64, dims)
	copy(out, c.Origin)
	return out
}
