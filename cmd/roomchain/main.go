// Package main is the entry point for roomchain.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/samdwyer/roomchain/internal/catalog"
	"github.com/samdwyer/roomchain/internal/config"
	"github.com/samdwyer/roomchain/internal/export"
	"github.com/samdwyer/roomchain/internal/preview"
	"github.com/samdwyer/roomchain/internal/store"
	"github.com/samdwyer/roomchain/internal/telemetry"
	"github.com/samdwyer/roomchain/internal/ui"
	"github.com/samdwyer/roomchain/internal/world"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	setupOTelEnv()

	ctx := context.Background()

	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") != "" {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			log.Printf("Warning: telemetry setup failed: %v", err)
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					log.Printf("Error shutting down telemetry: %v", err)
				}
			}()
		}
	}

	if err := run(ctx); err != nil {
		log.Printf("roomchain: %v", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	stdr.SetVerbosity(cfg.Verbosity)
	logger := stdr.New(log.New(os.Stderr, "", log.LstdFlags))

	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info("generating dungeon", "seed", seed, "gridSize", cfg.GridSize, "pathLength", cfg.PathLength)

	result, err := generate(ctx, cfg, cat, seed, logger)
	if err != nil {
		return err
	}

	doc := export.NewDocument(uuid.New(), cfg.GridSize, seed, result.Rooms)
	data, err := export.Encode(doc)
	if err != nil {
		return err
	}
	if _, err := os.Stdout.Write(append(data, '\n')); err != nil {
		return err
	}

	if cfg.StoreDir != "" {
		s, err := store.New(cfg.StoreDir)
		if err != nil {
			return err
		}
		if err := s.Put(ctx, doc); err != nil {
			return err
		}
		logger.Info("expedition stored", "id", doc.ExpeditionID, "fingerprint", doc.Fingerprint)
	}

	if cfg.Preview {
		return runPreview(ctx, cfg, cat, result, logger)
	}
	return nil
}

func loadCatalog(cfg config.Config) (*catalog.Catalog, error) {
	if cfg.CatalogPath == "" {
		return catalog.LoadDefault()
	}
	return catalog.LoadFile(cfg.CatalogPath)
}

// generate runs one full generation and validates the result.
func generate(ctx context.Context, cfg config.Config, cat *catalog.Catalog, seed int64, logger logr.Logger) (world.Result, error) {
	opts := cfg.GeneratorOptions()
	opts.Logger = logger

	gen := world.NewGenerator(cfg.GridSize, world.NewRand(seed), opts)
	result, err := gen.Generate(ctx, cat.Plan(cfg.PathLength, cfg.NumOffshoots, cfg.OffshootDepth))
	if err != nil {
		return world.Result{}, fmt.Errorf("generation failed: %w", err)
	}
	if !result.Offshoots.Complete {
		logger.Info("offshoot shortfall", "requested", result.Offshoots.Requested, "built", result.Offshoots.Built)
	}
	if err := world.Validate(result.Rooms); err != nil {
		return world.Result{}, fmt.Errorf("generated dungeon is invalid: %w", err)
	}
	return result, nil
}

func runPreview(ctx context.Context, cfg config.Config, cat *catalog.Catalog, result world.Result, logger logr.Logger) error {
	screen, err := ui.NewScreen()
	if err != nil {
		return err
	}
	renderer := ui.NewRenderer(screen, ui.MustDifficultyRamp("#4CAF50", "#F44336", cfg.PathLength/max(1, cfg.DifficultyStep)+1))

	seeds := world.NewRand(0)
	v := preview.New(screen, renderer, cfg.GridSize, result, func(ctx context.Context) (world.Result, error) {
		return generate(ctx, cfg, cat, seeds.Int63(), logger)
	})
	return v.Run(ctx)
}

// setupOTelEnv points the OTLP exporter at Honeycomb when an API key is
// configured and no explicit endpoint is set.
func setupOTelEnv() {
	apiKey := os.Getenv("HONEYCOMB_ROOMCHAIN_API_KEY")
	if apiKey == "" || os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") != "" {
		return
	}
	dataset := os.Getenv("HONEYCOMB_ROOMCHAIN_DATASET")
	if dataset == "" {
		dataset = "roomchain"
	}
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
}
