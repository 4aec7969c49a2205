package main

import (
	"context"
	"log/slog"
	"math/rand"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-sparse-gol/model"
	"github.com/sheikhrachel/go-sparse-gol/utils"
)

// gameState is the driver's view of one running simulation
type gameState struct {
	config  utils.Config
	grid    *model.SparseGrid
	history *utils.History
	stats   *utils.Stats
	rng     *rand.Rand
	logger  *slog.Logger

	stagnantCount  int
	lastRestartGen int
}

// seedArea returns the rectangle patterns are seeded into
func seedArea(config utils.Config) model.SeedArea {
	return model.SeedArea{
		Origin: model.NewCoordinate(config.OriginX, config.OriginY),
		Width:  config.SeedWidth,
		Height: config.SeedHeight,
	}
}

// seedGrid places the configured starting pattern
func seedGrid(grid *model.SparseGrid, config utils.Config, rng *rand.Rand) error {
	if err := grid.SeedPattern(config.Pattern, rng, seedArea(config), config.RandomDensity); err != nil {
		return errors.Wrap(err, "[seedGrid] failed to seed grid")
	}
	return nil
}

// displayGameInfo shows the initial game information
func displayGameInfo(logger *slog.Logger, config utils.Config, grid *model.SparseGrid) {
	logger.Info("simulation starting",
		slog.String("pattern", config.Pattern),
		slog.Int("generations", config.Generations),
		slog.Int("initial_cells", grid.Len()),
		slog.Bool("auto_restart", config.AutoRestart),
	)
}

// loop evaluates generations until the limit is reached or ctx is cancelled
func (s *gameState) loop(ctx context.Context) error {
	lastFrameTime := time.Now()

	for s.grid.Generation() < s.config.Generations {
		if err := ctx.Err(); err != nil {
			s.displayFinalStats("interrupted")
			return nil
		}

		frameStart := time.Now()
		s.grid.EvaluateGeneration()
		s.updateGameState(time.Since(lastFrameTime))
		lastFrameTime = frameStart

		if err := s.handleStagnation(); err != nil {
			return err
		}
		if s.grid.Len() == 0 {
			s.displayFinalStats("extinction")
			return nil
		}

		if s.config.FrameRate > 0 {
			select {
			case <-ctx.Done():
			case <-time.After(s.config.FrameRate):
			}
		}
	}

	s.displayFinalStats("generation limit reached")
	return nil
}

// updateGameState refreshes stats and the stagnation counter after a generation
func (s *gameState) updateGameState(frameDuration time.Duration) {
	generation := s.grid.Generation()
	s.stats.Update(generation, s.grid.Len(), s.grid.BoundingBoxSize(), frameDuration)

	period, repeated := s.history.Observe(s.grid.Hash(), generation)
	if repeated {
		s.stagnantCount++
	} else {
		s.stagnantCount = 0
	}

	status := "Active"
	switch {
	case s.grid.Len() == 0:
		status = "Extinct"
	case repeated:
		status = "Stagnant"
	}

	s.logger.Info(s.stats.Summary(),
		slog.String("status", status),
		slog.Int("period", period),
		slog.Int("since_restart", generation-s.lastRestartGen),
	)
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(livingCells, stagnantCount int, config utils.Config) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if config.StagnationThreshold > 0 && stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	return false, ""
}

// handleStagnation restarts or perturbs the grid when it dies out or stops changing
func (s *gameState) handleStagnation() error {
	shouldRestart, reason := checkRestartConditions(s.grid.Len(), s.stagnantCount, s.config)

	switch {
	case shouldRestart && s.config.AutoRestart:
		return s.restartGame(reason)
	case s.stagnantCount >= 2 && s.stagnantCount < s.config.StagnationThreshold && s.config.InjectionCount > 0:
		// Inject some life to try to break the stagnation
		s.grid.InjectRandomLife(s.rng, seedArea(s.config), s.config.InjectionCount)
		s.logger.Debug("injected random life", slog.Int("count", s.config.InjectionCount))
	}
	return nil
}

// restartGame re-seeds the grid, keeping the generation count running
func (s *gameState) restartGame(reason string) error {
	s.logger.Info("restarting", slog.String("reason", reason))

	s.grid.Clear()
	if err := seedGrid(s.grid, s.config, s.rng); err != nil {
		return err
	}
	s.history.Reset()
	s.stagnantCount = 0
	s.lastRestartGen = s.grid.Generation()

	s.logger.Info("new patterns loaded", slog.Int("living_cells", s.grid.Len()))
	return nil
}

// displayFinalStats shows a summary when the loop exits
func (s *gameState) displayFinalStats(reason string) {
	s.logger.Info("simulation finished",
		slog.String("reason", reason),
		slog.Int("generations", s.grid.Generation()),
		slog.Float64("runtime_seconds", time.Since(s.stats.StartTime).Seconds()),
		slog.Float64("avg_population", s.stats.AveragePopulation),
	)
}
