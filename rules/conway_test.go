package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyConwayRules(t *testing.T) {
	for neighbors := 0; neighbors <= 8; neighbors++ {
		assert.Equal(t, neighbors == 3, Born(neighbors), "born with %d", neighbors)
		assert.Equal(t, neighbors == 2 || neighbors == 3, Survives(neighbors), "survives with %d", neighbors)
	}
}
