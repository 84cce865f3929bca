package systems

import (
	"time"

	"github.com/automoto/trapdoor/components"
	cfg "github.com/automoto/trapdoor/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// StartFalling shrinks e's sprite to nothing over the configured fall time.
func StartFalling(e *donburi.Entry) {
	if e.HasComponent(components.Falling) {
		return
	}
	ms := float32(cfg.Fall.Duration) / float32(time.Millisecond)
	e.AddComponent(components.Falling)
	components.Falling.SetValue(e, components.FallingData{
		Tween: gween.New(1, 0, ms, ease.Linear),
	})
}

func UpdateFalling(ecs *ecs.ECS) {
	var done []*donburi.Entry
	ms := float32(cfg.C.Tick()) / float32(time.Millisecond)

	components.Falling.Each(ecs.World, func(e *donburi.Entry) {
		falling := components.Falling.Get(e)
		scale, finished := falling.Tween.Update(ms)
		components.Sprite.Get(e).Scale = float64(scale)
		if finished {
			done = append(done, e)
		}
	})

	for _, e := range done {
		if e.Valid() {
			e.RemoveComponent(components.Falling)
		}
	}
}
