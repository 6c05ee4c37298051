package model

import "sync"

// BoardPool recycles board buffers between generations
type BoardPool struct {
	pool sync.Pool
}

func NewBoardPool() *BoardPool {
	return &BoardPool{
		pool: sync.Pool{
			New: func() interface{} {
				return &Board{}
			},
		},
	}
}

// Get retrieves a board from the pool, reset to the given size
func (p *BoardPool) Get(size int) *Board {
	b := p.pool.Get().(*Board)
	b.Reset(size)
	return b
}

// Put returns a board to the pool, clearing its state.
// The caller must not touch the board afterwards.
func (p *BoardPool) Put(b *Board) {
	if b == nil {
		return
	}
	b.Clear()
	p.pool.Put(b)
}
