package model

// historyLen is how many recent board hashes are kept
const historyLen = 5

// History tracks recent board hashes to spot still lifes and short cycles
type History struct {
	hashes []string
}

// Update records the board's current state
func (h *History) Update(b *Board) {
	h.hashes = append(h.hashes, b.Hash())

	// Keep only the last few states to detect cycles
	if len(h.hashes) > historyLen {
		h.hashes = h.hashes[1:]
	}
}

// Reset forgets every recorded state
func (h *History) Reset() {
	h.hashes = nil
}

// IsStagnant reports whether b repeats one of the last three recorded states
func (h *History) IsStagnant(b *Board) bool {
	if len(h.hashes) < 3 {
		return false
	}

	current := b.Hash()
	for i := 1; i <= 3; i++ {
		if h.hashes[len(h.hashes)-i] == current {
			return true
		}
	}
	return false
}
