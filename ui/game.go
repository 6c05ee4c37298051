// Package ui is the interactive terminal front end: it draws the board with
// tcell, turns mouse clicks into cell toggles and drives one step per frame.
package ui

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/Matthew1231A/conways-game-of-life/layout"
	"github.com/Matthew1231A/conways-game-of-life/model"
	"github.com/Matthew1231A/conways-game-of-life/utils"
)

const helpLine = "space play/pause  n step  c clear  r random  click toggle  q quit"

// Game owns the board while the interactive session runs. All state changes
// happen on the Run goroutine: input, step and draw never interleave.
type Game struct {
	screen  tcell.Screen
	board   *model.Board
	stepper model.Stepper
	layout  layout.Layout
	palette layout.Palette
	rng     *rand.Rand

	frameRate  time.Duration
	density    float64
	playing    bool
	mouseDown  bool
	generation int
}

// NewGame prepares a session on screen for board. The screen is initialised by Run.
func NewGame(screen tcell.Screen, board *model.Board, config utils.Config) *Game {
	var pool *model.BoardPool
	if config.UseMemoryPool {
		pool = model.NewBoardPool()
	}

	seed := config.RandomSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Game{
		screen:    screen,
		board:     board,
		stepper:   model.Stepper{Parallel: config.UseParallel, Pool: pool},
		layout:    layout.Terminal(board.Size()),
		palette:   layout.DefaultPalette(config.AgeSpan),
		rng:       rand.New(rand.NewSource(seed)),
		frameRate: config.FrameRate,
		density:   config.RandomDensity,
		playing:   !config.StartPaused,
	}
}

// Board returns the current generation
func (g *Game) Board() *model.Board {
	return g.board
}

// Generation returns how many steps have been taken
func (g *Game) Generation() int {
	return g.generation
}

// Playing reports whether the simulation advances on each frame
func (g *Game) Playing() bool {
	return g.playing
}

// Run initialises the screen and loops until the user quits or ctx is done
func (g *Game) Run(ctx context.Context) error {
	if err := g.screen.Init(); err != nil {
		return errors.Wrap(err, "[Run] failed to initialise screen")
	}
	defer g.screen.Fini()

	g.screen.EnableMouse()
	g.screen.HideCursor()
	g.screen.Clear()

	var (
		events = make(chan tcell.Event, 16)
		done   = make(chan struct{})
		ticker = time.NewTicker(g.frameRate)
	)
	defer ticker.Stop()
	defer close(done)

	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	g.draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if g.handle(ev) {
				return nil
			}
		case <-ticker.C:
			g.tick(g.playing)
		}
		g.draw()
	}
}

// handle applies one input event and reports whether the user asked to quit
func (g *Game) handle(ev tcell.Event) (quit bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return true
			case ' ':
				g.playing = !g.playing
			case 'n':
				if !g.playing {
					g.tick(true)
				}
			case 'c':
				g.replace(model.NewBoard(g.board.Size()))
			case 'r':
				b := model.NewBoard(g.board.Size())
				model.ResetWithInterestingPatterns(b, g.rng, g.density)
				g.replace(b)
			}
		}
	case *tcell.EventMouse:
		pressed := ev.Buttons()&tcell.Button1 != 0
		if pressed && !g.mouseDown {
			x, y := ev.Position()
			if row, col, ok := g.layout.Locate(float64(x), float64(y)); ok {
				g.board.Toggle(row, col)
			}
		}
		g.mouseDown = pressed
	case *tcell.EventResize:
		g.screen.Sync()
	}
	return false
}

// tick advances one generation when advance is set
func (g *Game) tick(advance bool) {
	next := g.stepper.Next(g.board, advance)
	if next == g.board {
		return
	}
	g.replace(next)
	g.generation++
}

func (g *Game) replace(b *model.Board) {
	g.stepper.Release(g.board, b)
	g.board = b
}

func (g *Game) draw() {
	g.screen.Clear()

	n := g.board.Size()
	for row := range n {
		for col := range n {
			x, y, w, _ := g.layout.CellRect(row, col)
			style := tcell.StyleDefault.Background(toTCell(g.palette.ColorFor(g.board.CellAt(row, col))))
			for dx := range int(w) {
				g.screen.SetContent(int(x)+dx, int(y), ' ', nil, style)
			}
		}
	}

	state := "playing"
	if !g.playing {
		state = "paused"
	}
	_, h := g.layout.Extent()
	status := fmt.Sprintf("gen %d | alive %d | %s | %s",
		g.generation, g.board.CountLivingCells(), state, helpLine)
	drawText(g.screen, 0, int(h), status)

	g.screen.Show()
}
