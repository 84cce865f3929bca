package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedLevelsLoad(t *testing.T) {
	levels, names, err := LoadLevels()
	require.NoError(t, err)
	require.Contains(t, names, DefaultLevel)

	level := levels[DefaultLevel]
	assert.Equal(t, 20, level.Width)
	assert.Equal(t, 12, level.Height)
	assert.NotEmpty(t, level.Switches)
	assert.ElementsMatch(t, []string{"pit_hall", "arrows_east", "arrows_down"}, level.TrapNames())
}

func TestLoadLevelUnknown(t *testing.T) {
	_, err := LoadLevel("nope")
	assert.Error(t, err)
	assert.Panics(t, func() { MustLoadLevel("nope") })
}
