package components

import (
	"github.com/automoto/trapdoor/tasks"
	"github.com/yohamta/donburi"
)

var Scheduler = donburi.NewComponentType[tasks.Scheduler]()
