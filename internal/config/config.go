// Package config holds generation settings read from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/samdwyer/roomchain/internal/world"
)

const envPrefix = "ROOMCHAIN_"

// Config holds generation configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible dungeon generation.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	GridSize       int
	PathLength     int
	NumOffshoots   int
	OffshootDepth  int
	DifficultyStep int

	// Attempt bounds for the randomized searches.
	PathAttempts     int
	OffshootAttempts int
	PlacementTries   int

	CatalogPath string // empty means the embedded catalog
	StoreDir    string // empty disables storing
	Preview     bool   // open the terminal viewer after generating
	Verbosity   int
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		GridSize:         100,
		PathLength:       12,
		NumOffshoots:     2,
		OffshootDepth:    3,
		DifficultyStep:   world.DefaultDifficultyStep,
		PathAttempts:     world.DefaultPathAttempts,
		OffshootAttempts: world.DefaultOffshootAttempts,
		PlacementTries:   world.DefaultPlacementTries,
	}
}

// Load reads the given .env files (missing files are skipped) and overlays
// the process environment, which wins on conflicts.
func Load(envFiles ...string) (Config, error) {
	vars := make(map[string]string)
	for _, f := range envFiles {
		fileVars, err := godotenv.Read(f)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return Config{}, fmt.Errorf("failed to read %s: %w", f, err)
		}
		for k, v := range fileVars {
			vars[k] = v
		}
	}
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok && strings.HasPrefix(k, envPrefix) {
			vars[k] = v
		}
	}
	return FromMap(vars)
}

// FromMap applies ROOMCHAIN_* variables over the defaults.
func FromMap(vars map[string]string) (Config, error) {
	cfg := Default()

	ints := []struct {
		key string
		dst *int
	}{
		{"GRID_SIZE", &cfg.GridSize},
		{"PATH_LENGTH", &cfg.PathLength},
		{"OFFSHOOTS", &cfg.NumOffshoots},
		{"OFFSHOOT_DEPTH", &cfg.OffshootDepth},
		{"DIFFICULTY_STEP", &cfg.DifficultyStep},
		{"PATH_ATTEMPTS", &cfg.PathAttempts},
		{"OFFSHOOT_ATTEMPTS", &cfg.OffshootAttempts},
		{"PLACEMENT_TRIES", &cfg.PlacementTries},
		{"VERBOSITY", &cfg.Verbosity},
	}
	for _, f := range ints {
		v, ok := vars[envPrefix+f.key]
		if !ok || v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s%s: %w", envPrefix, f.key, err)
		}
		*f.dst = n
	}

	if v := vars[envPrefix+"SEED"]; v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("%sSEED: %w", envPrefix, err)
		}
		cfg.Seed = seed
	}
	if v := vars[envPrefix+"PREVIEW"]; v != "" {
		preview, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("%sPREVIEW: %w", envPrefix, err)
		}
		cfg.Preview = preview
	}
	cfg.CatalogPath = vars[envPrefix+"CATALOG"]
	cfg.StoreDir = vars[envPrefix+"STORE_DIR"]

	return cfg, cfg.Validate()
}

// Validate rejects settings the generator cannot work with.
func (c Config) Validate() error {
	var errs []error
	if c.GridSize <= 0 {
		errs = append(errs, fmt.Errorf("grid size must be positive, got %d", c.GridSize))
	}
	if c.PathLength < 0 {
		errs = append(errs, fmt.Errorf("path length must not be negative, got %d", c.PathLength))
	}
	if c.NumOffshoots < 0 || c.OffshootDepth < 0 {
		errs = append(errs, fmt.Errorf("offshoot count and depth must not be negative, got %d and %d", c.NumOffshoots, c.OffshootDepth))
	}
	if c.PathAttempts <= 0 || c.OffshootAttempts <= 0 || c.PlacementTries <= 0 {
		errs = append(errs, errors.New("attempt bounds must be positive"))
	}
	return errors.Join(errs...)
}

// GeneratorOptions converts the config into world.Options.
func (c Config) GeneratorOptions() world.Options {
	return world.Options{
		PathAttempts:     c.PathAttempts,
		OffshootAttempts: c.OffshootAttempts,
		PlacementTries:   c.PlacementTries,
		DifficultyStep:   c.DifficultyStep,
	}
}
