package systems

import (
	"testing"

	"github.com/automoto/trapdoor/components"
	"github.com/stretchr/testify/assert"
)

func TestStatsWithoutPersistence(t *testing.T) {
	saved := gdataManager
	gdataManager = nil
	defer func() { gdataManager = saved }()

	assert.NoError(t, SaveStats(components.RunStats{Deaths: 2}))
	assert.Equal(t, components.RunStats{}, LoadStats())
}

func TestCurrentStatsReadsTheLevel(t *testing.T) {
	e := newTestECS(room...)
	withStats(e.World, func(s *components.RunStats) { s.Deaths = 3 })
	assert.Equal(t, 3, CurrentStats(e.World).Deaths)
}
