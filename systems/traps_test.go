package systems

import (
	"testing"
	"time"

	"github.com/automoto/trapdoor/components"
	cfg "github.com/automoto/trapdoor/config"
	"github.com/automoto/trapdoor/shared/leveldata"
	"github.com/automoto/trapdoor/systems/factory"
	"github.com/automoto/trapdoor/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func assertPitOpen(t *testing.T, pit *donburi.Entry) {
	t.Helper()
	col := components.Collider.Get(pit)
	assert.True(t, col.Enabled, "enabled")
	assert.True(t, col.Trigger, "trigger")
	assert.True(t, components.Sprite.Get(pit).Visible, "visible")
}

func TestNewPitIsClosed(t *testing.T) {
	e := newTestECS(room...)
	pit := factory.CreatePit(e, named("pit", 64, 40))

	col := components.Collider.Get(pit)
	assert.False(t, col.Enabled)
	assert.False(t, components.Sprite.Get(pit).Visible)
	assert.Equal(t, components.TrapData{Name: "pit", Kind: components.TrapPit}, *components.Trap.Get(pit))
}

func TestPitClosesAfterDelay(t *testing.T) {
	e := newTestECS(room...)
	pit := factory.CreatePit(e, named("pit", 64, 40))

	ActivateTrap(e, pit)
	assertPitOpen(t, pit)

	DeactivateTrap(e, pit)
	col := components.Collider.Get(pit)
	assert.False(t, col.Trigger, "a closing pit is solid straight away")
	assert.True(t, col.Enabled)
	assert.True(t, components.Sprite.Get(pit).Visible)

	advance(e, cfg.Traps.PitCloseDelay-100*time.Millisecond)
	assert.True(t, components.Collider.Get(pit).Enabled)

	advance(e, 200*time.Millisecond)
	assert.False(t, components.Collider.Get(pit).Enabled)
	assert.False(t, components.Sprite.Get(pit).Visible)
}

func TestPitReopenedBeforeCloseStaysOpen(t *testing.T) {
	e := newTestECS(room...)
	pit := factory.CreatePit(e, named("pit", 64, 40))

	ActivateTrap(e, pit)
	DeactivateTrap(e, pit)
	advance(e, 500*time.Millisecond)
	ActivateTrap(e, pit)
	assertPitOpen(t, pit)

	advance(e, 1500*time.Millisecond)
	assertPitOpen(t, pit)
	assert.Zero(t, Scheduler(e.World).Len(), "the pending close was cancelled")
}

func newSpawner(e *ecs.ECS, period time.Duration) *donburi.Entry {
	return factory.CreateArrowSpawner(e, leveldata.SpawnerSpawn{
		Spawn:  named("arrows", 88, 40),
		Period: period,
	})
}

func TestSpawnerFiresOnActivateAndEveryPeriod(t *testing.T) {
	e := newTestECS(room...)
	spawner := newSpawner(e, time.Second)

	ActivateTrap(e, spawner)
	assert.Equal(t, 1, count(e.World, tags.Arrow), "first arrow leaves at once")

	advance(e, 900*time.Millisecond)
	assert.Equal(t, 1, count(e.World, tags.Arrow))

	advance(e, 200*time.Millisecond)
	assert.Equal(t, 2, count(e.World, tags.Arrow))
	assert.Equal(t, 2, CurrentStats(e.World).ArrowsFired)
}

func TestSpawnerDefaultsItsPeriod(t *testing.T) {
	e := newTestECS(room...)
	spawner := newSpawner(e, 0)
	assert.Equal(t, cfg.Traps.SpawnerPeriod, components.ArrowSpawner.Get(spawner).Period)
}

func TestSpawnerActivatedTwiceRunsOneLoop(t *testing.T) {
	e := newTestECS(room...)
	spawner := newSpawner(e, time.Second)

	ActivateTrap(e, spawner)
	ActivateTrap(e, spawner)

	assert.Equal(t, 1, count(e.World, tags.Arrow))
	assert.Equal(t, 1, Scheduler(e.World).Len())
}

func TestSpawnerStopsOnDeactivate(t *testing.T) {
	e := newTestECS(room...)
	spawner := newSpawner(e, time.Second)

	ActivateTrap(e, spawner)
	DeactivateTrap(e, spawner)
	advance(e, 3*time.Second)

	assert.Equal(t, 1, count(e.World, tags.Arrow))
	assert.Zero(t, Scheduler(e.World).Len())
}

func TestSpawnerRestartedAfterAFullPeriodCanStillBeStopped(t *testing.T) {
	e := newTestECS(room...)
	spawner := newSpawner(e, time.Second)

	ActivateTrap(e, spawner)
	DeactivateTrap(e, spawner)
	advance(e, 2*time.Second)
	ActivateTrap(e, spawner)
	require.Equal(t, 2, count(e.World, tags.Arrow), "no cooldown left, fires at once")
	assert.True(t, Scheduler(e.World).Pending(components.ArrowSpawner.Get(spawner).Task))

	ActivateTrap(e, spawner)
	assert.Equal(t, 1, Scheduler(e.World).Len(), "one loop only")

	DeactivateTrap(e, spawner)
	advance(e, 3*time.Second)
	assert.Equal(t, 2, count(e.World, tags.Arrow))
	assert.Zero(t, Scheduler(e.World).Len())
}

func TestSpawnerStoppedDuringTheCooldownWaitNeverFires(t *testing.T) {
	e := newTestECS(room...)
	spawner := newSpawner(e, time.Second)

	ActivateTrap(e, spawner)
	DeactivateTrap(e, spawner)
	advance(e, 500*time.Millisecond)
	ActivateTrap(e, spawner)
	DeactivateTrap(e, spawner)
	advance(e, 2*time.Second)

	assert.Equal(t, 1, count(e.World, tags.Arrow))
	assert.Zero(t, Scheduler(e.World).Len())
}

func TestSpawnerRestartWaitsOutTheCooldown(t *testing.T) {
	e := newTestECS(room...)
	spawner := newSpawner(e, time.Second)

	ActivateTrap(e, spawner)
	advance(e, 300*time.Millisecond)
	DeactivateTrap(e, spawner)
	advance(e, 200*time.Millisecond)
	ActivateTrap(e, spawner)

	assert.Equal(t, 1, count(e.World, tags.Arrow), "re-press inside the period does not fire")

	advance(e, 400*time.Millisecond)
	assert.Equal(t, 1, count(e.World, tags.Arrow))

	advance(e, 200*time.Millisecond)
	assert.Equal(t, 2, count(e.World, tags.Arrow), "fires once the remaining cooldown is over")
}

func TestSpawnerNeverFiresFasterThanItsPeriod(t *testing.T) {
	e := newTestECS(room...)
	spawner := newSpawner(e, time.Second)
	sched := Scheduler(e.World)
	tick := cfg.C.Tick()

	var fires []time.Duration
	fired := 0
	on := false
	for i := 0; i < 600; i++ {
		if i%17 == 0 {
			if on {
				DeactivateTrap(e, spawner)
			} else {
				ActivateTrap(e, spawner)
			}
			on = !on
		}
		if n := CurrentStats(e.World).ArrowsFired; n > fired {
			fired = n
			fires = append(fires, components.ArrowSpawner.Get(spawner).LastFire)
		}
		sched.Update(tick)
	}

	require.Greater(t, len(fires), 2)
	for i := 1; i < len(fires); i++ {
		assert.GreaterOrEqual(t, fires[i]-fires[i-1], time.Second-tick)
	}
}

func TestArrowFliesAlongItsAngle(t *testing.T) {
	e := newTestECS(room...)
	arrow := factory.CreateArrow(e, 40, 40, 0)

	assert.InDelta(t, cfg.Arrow.Speed, components.Arrow.Get(arrow).Velocity.X, 1e-9)
	assert.InDelta(t, 0, components.Arrow.Get(arrow).Velocity.Y, 1e-9)
	assert.True(t, components.Collider.Get(arrow).Trigger)

	UpdateArrows(e)
	assert.InDelta(t, 40+cfg.Arrow.Speed*cfg.C.Tick().Seconds(), posOf(arrow).X, 1e-9)
}

func TestArrowBreaksOnWalls(t *testing.T) {
	e := newTestECS(room...)
	arrow := factory.CreateArrow(e, 108, 40, 0)

	for i := 0; i < 30 && arrow.Valid(); i++ {
		UpdateArrows(e)
	}
	assert.False(t, arrow.Valid())
}

func TestArrowKillsThePlayer(t *testing.T) {
	e := newTestECS(room...)
	player := factory.CreatePlayer(e, at(64, 40))
	arrow := factory.CreateArrow(e, 52, 40, 0)

	for i := 0; i < 30 && arrow.Valid(); i++ {
		UpdateArrows(e)
	}

	death, dead := PlayerDeath(e.World)
	require.True(t, dead)
	assert.Equal(t, components.DeathShot, death.Cause)
	assert.False(t, arrow.Valid(), "the player is solid, so the arrow breaks")
	assert.True(t, player.Valid())
}

func TestArrowKillsEnemies(t *testing.T) {
	e := newTestECS(room...)
	enemy := factory.CreateEnemy(e, at(64, 40))
	factory.CreateArrow(e, 52, 40, 0)

	for i := 0; i < 30 && enemy.Valid(); i++ {
		UpdateArrows(e)
	}
	assert.False(t, enemy.Valid())
}
