package model

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Step computes the next generation of b. When advance is false b is returned
// unchanged; otherwise a fresh board is built from b, which is only read.
func Step(b *Board, advance bool) *Board {
	if !advance {
		return b
	}
	next := &Board{size: b.size, cells: make([][]Cell, b.size)}
	for row := range b.size {
		next.cells[row] = make([]Cell, b.size)
	}
	stepRows(b, next, 0, b.size)
	return next
}

// stepRows writes rows [startRow, endRow) of next from the previous generation prev
func stepRows(prev, next *Board, startRow, endRow int) {
	for row := startRow; row < endRow; row++ {
		for col := range prev.size {
			next.cells[row][col] = prev.cells[row][col].Next(prev.CountNeighbors(row, col))
		}
	}
}

// Stepper drives generations with optional row-parallelism and buffer recycling.
// The zero value behaves exactly like Step.
type Stepper struct {
	Parallel bool
	Pool     *BoardPool
}

// Next computes the next generation of b with the same semantics as Step
func (s Stepper) Next(b *Board, advance bool) *Board {
	if !advance {
		return b
	}
	if !s.Parallel && s.Pool == nil {
		return Step(b, true)
	}

	var next *Board
	if s.Pool != nil {
		next = s.Pool.Get(b.size)
	} else {
		next = NewBoard(b.size)
	}

	if !s.Parallel {
		stepRows(b, next, 0, b.size)
		return next
	}

	var (
		eg            errgroup.Group
		numWorkers    = runtime.NumCPU()
		rowsPerWorker = (b.size + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := range numWorkers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, b.size)
		)
		if startRow >= b.size {
			break
		}

		eg.Go(func() error {
			stepRows(b, next, startRow, endRow)
			return nil
		})
	}

	// workers never fail
	_ = eg.Wait()

	return next
}

// Release hands a retired generation back to the pool unless it is still current,
// which happens when a paused step returned its input.
func (s Stepper) Release(retired, current *Board) {
	if s.Pool == nil || retired == nil || retired == current {
		return
	}
	s.Pool.Put(retired)
}
