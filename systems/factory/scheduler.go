package factory

import (
	"github.com/automoto/trapdoor/archetypes"
	"github.com/automoto/trapdoor/components"
	"github.com/automoto/trapdoor/tasks"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateScheduler(ecs *ecs.ECS) *donburi.Entry {
	e := archetypes.Scheduler.Spawn(ecs)
	components.Scheduler.Set(e, tasks.NewScheduler())
	return e
}
