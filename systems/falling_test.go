package systems

import (
	"testing"

	"github.com/automoto/trapdoor/components"
	cfg "github.com/automoto/trapdoor/config"
	"github.com/automoto/trapdoor/systems/factory"
	"github.com/stretchr/testify/assert"
)

func TestFallingShrinksToNothing(t *testing.T) {
	e := newTestECS(room...)
	player := factory.CreatePlayer(e, at(40, 40))

	StartFalling(player)
	StartFalling(player)

	ticks := int(cfg.Fall.Duration/cfg.C.Tick()) + 2
	UpdateFalling(e)
	assert.Less(t, components.Sprite.Get(player).Scale, 1.0)
	for i := 0; i < ticks; i++ {
		UpdateFalling(e)
	}

	assert.Zero(t, components.Sprite.Get(player).Scale)
	assert.False(t, player.HasComponent(components.Falling))
}
