package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/Matthew1231A/conways-game-of-life/model"
	"github.com/Matthew1231A/conways-game-of-life/utils"
)

// initializeGame sets up the initial game state
func initializeGame(config utils.Config) (*model.Board, model.Stepper, *rand.Rand) {
	var pool *model.BoardPool
	if config.UseMemoryPool {
		pool = model.NewBoardPool()
	}
	stepper := model.Stepper{Parallel: config.UseParallel, Pool: pool}

	seed := config.RandomSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	board := model.NewBoard(config.Size)
	model.ResetWithInterestingPatterns(board, rng, config.RandomDensity)

	return board, stepper, rng
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, board *model.Board) {
	fmt.Printf("Features: Memory Pool: %v, Parallel: %v\n",
		config.UseMemoryPool, config.UseParallel)
	fmt.Printf("Board: %dx%d | Initial living cells: %d\n",
		board.Size(), board.Size(), board.CountLivingCells())
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
}

// updateGameState updates the game state and returns status information
func updateGameState(
	board *model.Board,
	history *model.History,
	generation int,
	lastFrameTime time.Time,
	stats *utils.Stats,
) (int, float64, string, bool) {
	livingCells := board.CountLivingCells()
	density := float64(livingCells) / float64(board.Size()*board.Size()) * 100

	// Update performance stats
	frameDuration := time.Since(lastFrameTime)
	stats.Update(generation, livingCells, frameDuration)

	// Check against earlier states before recording this one
	isStagnant := history.IsStagnant(board)
	history.Update(board)

	status := "Active"
	if isStagnant {
		status = "Stagnant"
	}
	if livingCells == 0 {
		status = "Extinct"
	}

	return livingCells, density, status, isStagnant
}

// displayGameStatus shows the current game status
func displayGameStatus(
	generation, livingCells int,
	density float64,
	status string,
	stats *utils.Stats,
	lastRestartGen int,
) {
	fmt.Printf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n",
		generation, livingCells, density, status)
	fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, stats.Runtime().Seconds())

	// Show time since last restart
	if generation > lastRestartGen {
		fmt.Printf("Generations since restart: %d\n", generation-lastRestartGen)
	}
	fmt.Println()
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(
	livingCells, stagnantCount, generation int,
	config utils.Config,
) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	if generation > 0 && generation%200 == 0 {
		return true, "periodic refresh"
	}
	return false, ""
}

// restartGame builds a fresh board with new patterns
func restartGame(config utils.Config, rng *rand.Rand) *model.Board {
	board := model.NewBoard(config.Size)
	model.ResetWithInterestingPatterns(board, rng, config.RandomDensity)

	fmt.Printf("✨ New patterns loaded! Living cells: %d\n", board.CountLivingCells())
	return board
}

// injectRandomLife brings a few random cells to life to break stagnation
func injectRandomLife(board *model.Board, rng *rand.Rand, count int) {
	for range count {
		model.Seed(board, model.Coord{Row: rng.Intn(board.Size()), Col: rng.Intn(board.Size())})
	}
}
