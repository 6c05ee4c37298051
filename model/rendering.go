package model

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

const (
	gridPosBlock = "██"
	gridPosTrail = "░░"
	gridPosEmpty = "  "

	// trailAge is how many generations a dead cell stays visible as a trail
	trailAge = 3

	clearCmd = "clear"
)

// TerminalRenderer implements basic terminal rendering
type TerminalRenderer struct {
	Out io.Writer
}

func (r *TerminalRenderer) out() io.Writer {
	if r.Out == nil {
		return os.Stdout
	}
	return r.Out
}

// Display renders the board to the terminal, one line per row
func (r *TerminalRenderer) Display(b *Board) {
	var sb strings.Builder
	for row := range b.size {
		for col := range b.size {
			sb.WriteString(glyph(b.cells[row][col]))
		}
		sb.WriteByte('\n')
	}
	fmt.Fprint(r.out(), sb.String())
}

func glyph(c Cell) string {
	switch {
	case c.alive:
		return gridPosBlock
	case c.age < trailAge:
		return gridPosTrail
	default:
		return gridPosEmpty
	}
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	cmd := exec.Command(clearCmd)
	cmd.Stdout = r.out()
	if err := cmd.Run(); err != nil {
		fmt.Println("Error clearing terminal:", err)
	}
}
