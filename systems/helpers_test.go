package systems

import (
	"time"

	"github.com/automoto/trapdoor/collision"
	"github.com/automoto/trapdoor/components"
	cfg "github.com/automoto/trapdoor/config"
	"github.com/automoto/trapdoor/shared/leveldata"
	"github.com/automoto/trapdoor/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// room is an 8x6 walled room with open floor from (16,16) to (112,80).
var room = []string{
	"########",
	"#......#",
	"#......#",
	"#......#",
	"#......#",
	"########",
}

// testLevel parses rows of '#' (solid) and '.' (open) into a level with 16px tiles.
func testLevel(rows ...string) *leveldata.Level {
	l := &leveldata.Level{
		Name:       "test",
		Width:      len(rows[0]),
		Height:     len(rows),
		TileWidth:  16,
		TileHeight: 16,
	}
	for _, row := range rows {
		for _, c := range row {
			l.Solid = append(l.Solid, c == '#')
		}
	}
	return l
}

// newTestECS builds the singletons a world needs before bodies are added.
func newTestECS(rows ...string) *ecs.ECS {
	return buildTestECS(true, rows...)
}

// newTestECSWithoutSpace leaves out the resolv space, so colliders get no proxies.
func newTestECSWithoutSpace(rows ...string) *ecs.ECS {
	return buildTestECS(false, rows...)
}

func buildTestECS(withSpace bool, rows ...string) *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())
	level := testLevel(rows...)
	factory.CreateScheduler(e)
	if withSpace {
		w, h := level.PixelSize()
		factory.CreateSpace(e, w, h, level.TileWidth, level.TileHeight)
	}
	factory.CreateTileMap(e, level)
	factory.CreateLevel(e, level, components.RunStats{})
	factory.CreateInput(e)
	return e
}

// at returns a tile-sized spawn centred on (x, y).
func at(x, y float64) leveldata.Spawn {
	return leveldata.Spawn{X: x - 8, Y: y - 8, W: 16, H: 16}
}

func named(name string, x, y float64) leveldata.Spawn {
	s := at(x, y)
	s.Name = name
	return s
}

// advance runs the scheduler tick by tick for at least d.
func advance(e *ecs.ECS, d time.Duration) {
	tick := cfg.C.Tick()
	for elapsed := time.Duration(0); elapsed < d; elapsed += tick {
		Scheduler(e.World).Update(tick)
	}
}

func place(e *donburi.Entry, x, y float64) {
	pos := components.Position.Get(e)
	pos.X, pos.Y = x, y
	SyncCollider(e)
}

func posOf(e *donburi.Entry) collision.Position {
	return *components.Position.Get(e)
}

type eacher interface {
	Each(w donburi.World, fn func(*donburi.Entry))
}

func count(w donburi.World, c eacher) int {
	n := 0
	c.Each(w, func(*donburi.Entry) { n++ })
	return n
}
