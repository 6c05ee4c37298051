package main

import (
	"context"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/Matthew1231A/conways-game-of-life/model"
	"github.com/Matthew1231A/conways-game-of-life/ui"
	"github.com/Matthew1231A/conways-game-of-life/utils"
)

func main() {
	var (
		configPath  = flag.String("config", "config.json", "path to a JSON configuration file")
		interactive = flag.Bool("interactive", false, "open the interactive terminal board")
		size        = flag.Int("size", 0, "board dimension, overrides the configuration")
		parallel    = flag.Bool("parallel", true, "compute generations on all CPUs")
	)
	flag.Parse()

	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(*configPath)
	if errors.Is(err, fs.ErrNotExist) {
		fmt.Printf("Using default configuration (%s not found)\n", *configPath)
		config = utils.DefaultConfig()
	} else if err != nil {
		log.Fatalf("loading configuration: %+v", err)
	}

	config = applyFlags(config, *interactive, *size, *parallel)
	if err = config.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if config.Interactive {
		if err = runInteractive(ctx, config); err != nil {
			log.Fatalf("interactive session: %+v", err)
		}
		return
	}
	runHeadless(ctx, config)
}

// applyFlags lets explicitly set command line flags win over the file
func applyFlags(config utils.Config, interactive bool, size int, parallel bool) utils.Config {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "interactive":
			config.Interactive = interactive
		case "size":
			config.Size = size
		case "parallel":
			config.UseParallel = parallel
		}
	})
	return config
}

func runInteractive(ctx context.Context, config utils.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "[runInteractive] failed to create screen")
	}

	board, _, _ := initializeGame(config)
	return ui.NewGame(screen, board, config).Run(ctx)
}

func runHeadless(ctx context.Context, config utils.Config) {
	board, stepper, rng := initializeGame(config)

	var (
		renderer = &model.TerminalRenderer{}
		stats    = utils.NewStats()
		history  model.History
	)
	displayGameInfo(config, board)

	ticker := time.NewTicker(config.FrameRate)
	defer ticker.Stop()

	// Main game loop
	var (
		generation     = 0
		stagnantCount  = 0
		lastRestartGen = 0
		lastFrameTime  = time.Now()
	)

	for {
		frameStart := time.Now()
		renderer.Clear()

		// Update game state
		livingCells, density, status, isStagnant := updateGameState(board, &history, generation, lastFrameTime, stats)
		lastFrameTime = frameStart

		// Update stagnation counter
		if isStagnant {
			stagnantCount++
		} else {
			stagnantCount = 0
		}

		// Display current status
		displayGameStatus(generation, livingCells, density, status, stats, lastRestartGen)
		renderer.Display(board)

		// Check for max generations limit
		if config.MaxGenerations > 0 && generation >= config.MaxGenerations {
			fmt.Printf("\n🏁 Reached maximum generations limit (%d)\n", config.MaxGenerations)
			return
		}

		// Check restart conditions
		shouldRestart, restartReason := checkRestartConditions(livingCells, stagnantCount, generation, config)

		if shouldRestart && config.AutoRestart {
			fmt.Printf("🔄 Restarting due to %s...\n", restartReason)

			fresh := restartGame(config, rng)
			stepper.Release(board, fresh)
			board = fresh
			history.Reset()
			lastRestartGen = generation
			stagnantCount = 0
		} else if stagnantCount >= 2 && stagnantCount < config.StagnationThreshold {
			// Inject some life to try to break the stagnation
			injectRandomLife(board, rng, config.InjectionCount)
		}

		// Calculate next generation
		next := stepper.Next(board, true)
		stepper.Release(board, next)
		board = next
		generation++

		// Wait before next frame
		select {
		case <-ctx.Done():
			fmt.Println("\n🛑 Shutting down gracefully...")
			fmt.Printf("Final stats: %d generations in %.1f seconds\n",
				generation, stats.Runtime().Seconds())
			fmt.Printf("Average: %.1f gen/sec, %.1f avg population\n",
				stats.GenerationsPerSecond, stats.AveragePopulation)
			return
		case <-ticker.C:
		}
	}
}
