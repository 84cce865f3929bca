package systems

import (
	"testing"

	"github.com/automoto/trapdoor/components"
	"github.com/automoto/trapdoor/shared/leveldata"
	"github.com/automoto/trapdoor/systems/factory"
	"github.com/automoto/trapdoor/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

func entities(contacts []CollisionInfo) []donburi.Entity {
	ids := make([]donburi.Entity, 0, len(contacts))
	for _, c := range contacts {
		ids = append(ids, c.Object.Entity())
	}
	return ids
}

func TestMoveIntoOpenSpace(t *testing.T) {
	e := newTestECS(room...)
	player := factory.CreatePlayer(e, at(40, 40))

	contacts := MoveAndCollide(e.World, player, math.NewVec2(3, -2))

	assert.Empty(t, contacts)
	assert.Equal(t, 43.0, posOf(player).X)
	assert.Equal(t, 38.0, posOf(player).Y)
}

func TestSolidOverlapRevertsAndReportsEveryPeer(t *testing.T) {
	e := newTestECS(room...)
	player := factory.CreatePlayer(e, at(40, 40))
	key := factory.CreateKey(e, at(64, 40))
	sw := factory.CreateSwitch(e, leveldata.SwitchSpawn{Spawn: at(50, 40), TrapName: "x"})

	contacts := MoveAndCollide(e.World, player, math.NewVec2(10, 0))

	assert.Equal(t, 40.0, posOf(player).X, "blocked move is reverted completely")
	assert.Equal(t, 40.0, posOf(player).Y)
	assert.ElementsMatch(t, []donburi.Entity{key.Entity(), sw.Entity()}, entities(contacts))

	for _, c := range contacts {
		assert.Equal(t, c.Object.HasComponent(tags.Switch), c.IsTrigger)
		assert.Greater(t, c.Response.Overlap, 0.0)
	}
}

func TestWallContactReportsTheTileMap(t *testing.T) {
	e := newTestECS(room...)
	player := factory.CreatePlayer(e, at(40, 40))
	tm, ok := tags.TileMap.First(e.World)
	require.True(t, ok)

	contacts := MoveAndCollide(e.World, player, math.NewVec2(0, -30))

	require.Len(t, contacts, 1)
	assert.Equal(t, tm.Entity(), contacts[0].Object.Entity())
	assert.False(t, contacts[0].IsTrigger)
	assert.Equal(t, 40.0, posOf(player).Y)
}

func TestTriggersDoNotBlock(t *testing.T) {
	e := newTestECS(room...)
	player := factory.CreatePlayer(e, at(40, 40))
	factory.CreateSwitch(e, leveldata.SwitchSpawn{Spawn: at(50, 40), TrapName: "x"})

	contacts := MoveAndCollide(e.World, player, math.NewVec2(4, 0))

	require.Len(t, contacts, 1)
	assert.True(t, contacts[0].IsTrigger)
	assert.Equal(t, 44.0, posOf(player).X)
}

func TestSlideAlongOneAxisMatchesSingleMove(t *testing.T) {
	for _, d := range []math.Vec2{
		math.NewVec2(10, 0),
		math.NewVec2(0, -30),
		math.NewVec2(-5, 0),
	} {
		slideWorld := newTestECS(room...)
		slider := factory.CreatePlayer(slideWorld, at(40, 40))
		factory.CreateKey(slideWorld, at(64, 40))

		moveWorld := newTestECS(room...)
		mover := factory.CreatePlayer(moveWorld, at(40, 40))
		factory.CreateKey(moveWorld, at(64, 40))

		slid := MoveAndSlide(slideWorld.World, slider, d)
		moved := MoveAndCollide(moveWorld.World, mover, d)

		assert.Equal(t, posOf(mover), posOf(slider), "d=%v", d)
		require.Len(t, slid, len(moved), "d=%v", d)
		for i := range moved {
			assert.Equal(t, moved[i].Response, slid[i].Response)
			assert.Equal(t, moved[i].IsTrigger, slid[i].IsTrigger)
		}
	}
}

func TestSlideKeepsTheFreeAxis(t *testing.T) {
	e := newTestECS(room...)
	player := factory.CreatePlayer(e, at(40, 40))
	key := factory.CreateKey(e, at(64, 40))

	contacts := MoveAndSlide(e.World, player, math.NewVec2(10, 5))

	assert.Equal(t, 40.0, posOf(player).X)
	assert.Equal(t, 45.0, posOf(player).Y)
	assert.Equal(t, []donburi.Entity{key.Entity()}, entities(contacts))
}

func TestPeerTouchedOnBothAxesIsReportedOnce(t *testing.T) {
	e := newTestECS(room...)
	player := factory.CreatePlayer(e, at(40, 40))
	sw := factory.CreateSwitch(e, leveldata.SwitchSpawn{Spawn: at(50, 50), TrapName: "x"})

	contacts := MoveAndSlide(e.World, player, math.NewVec2(8, 8))

	assert.Equal(t, []donburi.Entity{sw.Entity()}, entities(contacts))
	assert.Equal(t, 48.0, posOf(player).X)
	assert.Equal(t, 48.0, posOf(player).Y)
}

func TestDisabledCollidersAreIgnored(t *testing.T) {
	e := newTestECS(room...)
	player := factory.CreatePlayer(e, at(40, 40))
	factory.CreatePit(e, named("pit", 48, 40))

	contacts := MoveAndSlide(e.World, player, math.NewVec2(6, 0))

	assert.Empty(t, contacts)
	assert.Equal(t, 46.0, posOf(player).X)
}

func TestPeersWithoutSpaceScanEveryCollider(t *testing.T) {
	e := newTestECSWithoutSpace(room...)
	player := factory.CreatePlayer(e, at(40, 40))
	key := factory.CreateKey(e, at(64, 40))
	require.Nil(t, components.Collider.Get(player).Proxy)

	contacts := MoveAndCollide(e.World, player, math.NewVec2(10, 0))

	assert.Equal(t, []donburi.Entity{key.Entity()}, entities(contacts))
	assert.Equal(t, 40.0, posOf(player).X)
}

func TestPeersStartWithTheTileMap(t *testing.T) {
	e := newTestECS(room...)
	player := factory.CreatePlayer(e, at(40, 40))
	factory.CreateKey(e, at(56, 40))

	peers := Peers(e.World, player)

	require.NotEmpty(t, peers)
	assert.Equal(t, PeerTiles, peers[0].Kind)
	for _, p := range peers[1:] {
		assert.Equal(t, PeerDynamic, p.Kind)
		assert.NotEqual(t, player.Entity(), p.Entry.Entity(), "a body is never its own peer")
	}
}

func TestProxyFollowsTheBody(t *testing.T) {
	e := newTestECS(room...)
	player := factory.CreatePlayer(e, at(40, 40))

	MoveAndCollide(e.World, player, math.NewVec2(5, 0))

	proxy := components.Collider.Get(player).Proxy
	require.NotNil(t, proxy)
	assert.InDelta(t, 45-7.5-components.ProxyPadding, proxy.X, 1e-9)
	assert.InDelta(t, 15+2*components.ProxyPadding, proxy.W, 1e-9)
}

func TestDestroyRemovesTheProxy(t *testing.T) {
	e := newTestECS(room...)
	key := factory.CreateKey(e, at(64, 40))
	sp := space(e.World)
	require.Len(t, sp.Objects(), 1)

	Destroy(e.World, key)
	Destroy(e.World, key)

	assert.False(t, key.Valid())
	assert.Empty(t, sp.Objects())
}
