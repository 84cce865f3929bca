package ui

import (
	"testing"

	"github.com/automoto/trapdoor/components"
	"github.com/stretchr/testify/assert"
)

func TestHeadline(t *testing.T) {
	assert.Equal(t, "You fell", Headline(components.DeathFell))
	assert.Equal(t, "You were shot", Headline(components.DeathShot))
	assert.Equal(t, "You were caught", Headline(components.DeathCaught))
}

func TestStatLinesFitThePanel(t *testing.T) {
	lines := StatLines(components.RunStats{Deaths: 3, Restarts: 2, KeysFound: 1, ArrowsFired: 14})
	assert.Len(t, lines, statLines)
	assert.Equal(t, "deaths   3", lines[0])
	assert.Equal(t, "arrows   14", lines[4])
}
