package config

import (
	"context"
	"fmt"
	"os"

	"github.com/hackshell/hackshell/internal/logger"
	"github.com/hackshell/hackshell/internal/telemetry"
	"github.com/hackshell/hackshell/pkg/world"
)

// InitializeWorld builds the world a session plays in.
//
// Sources, in order:
//  1. World.File exists: the file is loaded
//  2. World.File is set but missing: a world is generated and saved there
//  3. Otherwise: a world is generated in memory
func InitializeWorld(ctx context.Context, cfg WorldConfig) (*world.World, error) {
	if cfg.File != "" {
		if _, err := os.Stat(cfg.File); err == nil {
			return loadWorld(ctx, cfg.File)
		}
	}

	ctx, span := telemetry.StartWorldSpan(ctx, telemetry.SpanWorldGenerate, telemetry.Seed(cfg.Seed))
	defer span.End()

	w := world.Generate(world.GenerateOptions{Servers: cfg.Servers, Seed: cfg.Seed})
	telemetry.SetAttributes(ctx, telemetry.Servers(w.Registry.Len()))
	logger.Info("World generated",
		logger.KeyServers, w.Registry.Len(),
		logger.KeySeed, cfg.Seed)

	if cfg.File != "" {
		if err := world.Save(cfg.File, w.ToFile()); err != nil {
			telemetry.RecordError(ctx, err)
			return nil, fmt.Errorf("failed to save generated world: %w", err)
		}
		telemetry.SetAttributes(ctx, telemetry.Source(cfg.File))
		logger.Info("World saved", logger.KeyPath, cfg.File)
	}
	return w, nil
}

func loadWorld(ctx context.Context, path string) (*world.World, error) {
	ctx, span := telemetry.StartWorldSpan(ctx, telemetry.SpanWorldLoad, telemetry.Source(path))
	defer span.End()

	w, err := world.Load(path)
	if err != nil {
		telemetry.RecordError(ctx, err)
		return nil, fmt.Errorf("failed to load world: %w", err)
	}

	telemetry.SetAttributes(ctx, telemetry.Servers(w.Registry.Len()))
	logger.Info("World loaded",
		logger.KeyPath, path,
		logger.KeyServers, w.Registry.Len())
	return w, nil
}
