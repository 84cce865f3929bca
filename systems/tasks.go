package systems

import (
	cfg "github.com/automoto/trapdoor/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTasks advances game time by one tick and resumes due tasks. It runs
// first so every delayed effect lands before the frame's movement.
func UpdateTasks(ecs *ecs.ECS) {
	Scheduler(ecs.World).Update(cfg.C.Tick())
}
