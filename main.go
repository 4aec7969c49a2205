package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-sparse-gol/model"
	"github.com/sheikhrachel/go-sparse-gol/utils"
)

const configFile = "config.json"

func main() {
	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(configFile)
	if err != nil {
		fmt.Println("Using default configuration (config.json not found)")
		config = utils.DefaultConfig()
	}
	if err = config.Validate(model.KnownPattern); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	level, _ := utils.ParseLogLevel(config.LogLevel)
	logger := utils.NewLogger(os.Stdout, level)

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return run(ctx, config, logger)
	})

	if err = eg.Wait(); err != nil {
		logger.Error("simulation failed", slog.Any("error", err))
		os.Exit(1)
	}
}

// run seeds the grid and drives it for the configured number of generations
func run(ctx context.Context, config utils.Config, logger *slog.Logger) error {
	var (
		rng   = rand.New(rand.NewSource(config.RandomSeed))
		grid  = model.NewSparseGrid(model.WithLogger(logger))
		stats = utils.NewStats()
	)

	history, err := utils.NewHistory(config.HistorySize)
	if err != nil {
		return err
	}

	if err = seedGrid(grid, config, rng); err != nil {
		return err
	}
	displayGameInfo(logger, config, grid)

	game := &gameState{
		config:  config,
		grid:    grid,
		history: history,
		stats:   stats,
		rng:     rng,
		logger:  logger,
	}
	return game.loop(ctx)
}
