package factory

import (
	"math"
	"testing"
	"time"

	"github.com/automoto/trapdoor/components"
	cfg "github.com/automoto/trapdoor/config"
	"github.com/automoto/trapdoor/shared/leveldata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newECS(withSpace bool) *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())
	if withSpace {
		CreateSpace(e, 128, 96, 16, 16)
	}
	return e
}

func TestBodiesGetLinkedProxies(t *testing.T) {
	e := newECS(true)
	player := CreatePlayer(e, leveldata.Spawn{X: 32, Y: 32, W: 16, H: 16})

	pos := components.Position.Get(player)
	assert.Equal(t, 40.0, pos.X)
	assert.Equal(t, 40.0, pos.Y)

	col := components.Collider.Get(player)
	require.NotNil(t, col.Proxy)
	assert.Equal(t, player.Entity(), col.Proxy.Data.(*donburi.Entry).Entity())
	assert.True(t, col.Enabled)
	assert.False(t, col.Trigger)

	w, h := col.Shape.Size()
	assert.Equal(t, cfg.Player.Width, w)
	assert.Equal(t, cfg.Player.Height, h)
}

func TestBodiesWithoutSpaceHaveNoProxy(t *testing.T) {
	e := newECS(false)
	key := CreateKey(e, leveldata.Spawn{X: 0, Y: 0, W: 16, H: 16})
	assert.Nil(t, components.Collider.Get(key).Proxy)
}

func TestPointObjectsGetTileSizedBodies(t *testing.T) {
	e := newECS(true)
	pit := CreatePit(e, leveldata.Spawn{Name: "p", X: 40, Y: 40})

	w, h := components.Collider.Get(pit).Shape.Size()
	assert.Equal(t, float64(cfg.C.TileSize), w)
	assert.Equal(t, float64(cfg.C.TileSize), h)
}

func TestArrowSpawnerConvertsDegrees(t *testing.T) {
	e := newECS(true)
	spawner := CreateArrowSpawner(e, leveldata.SpawnerSpawn{
		Spawn:  leveldata.Spawn{Name: "a", X: 0, Y: 0, W: 16, H: 16},
		Angle:  90,
		Period: 750 * time.Millisecond,
		Active: true,
	})

	sp := components.ArrowSpawner.Get(spawner)
	assert.InDelta(t, math.Pi/2, sp.Angle, 1e-12)
	assert.Equal(t, 750*time.Millisecond, sp.Period)
	assert.True(t, sp.ActiveOnStart)
	assert.False(t, spawner.HasComponent(components.Collider))
}

func TestArrowIsRotatedTrigger(t *testing.T) {
	e := newECS(true)
	arrow := CreateArrow(e, 10, 10, math.Pi/2)

	assert.Equal(t, math.Pi/2, components.Position.Get(arrow).Rotation)
	assert.InDelta(t, 0, components.Arrow.Get(arrow).Velocity.X, 1e-9)
	assert.InDelta(t, cfg.Arrow.Speed, components.Arrow.Get(arrow).Velocity.Y, 1e-9)
	assert.True(t, components.Collider.Get(arrow).Trigger)

	// The proxy covers the rotated shape, which is taller than wide.
	proxy := components.Collider.Get(arrow).Proxy
	assert.Greater(t, proxy.H, proxy.W)
}

func TestTileMapFromLevel(t *testing.T) {
	e := newECS(false)
	level := &leveldata.Level{
		Width: 2, Height: 1, TileWidth: 16, TileHeight: 16,
		Solid: []bool{true, false},
	}
	tm := components.TileMap.Get(CreateTileMap(e, level))
	assert.True(t, tm.Solid(0, 0))
	assert.False(t, tm.Solid(1, 0))
}
