package components

import (
	"github.com/automoto/trapdoor/tasks"
	"github.com/yohamta/donburi"
)

type SignData struct {
	Text     string
	Showing  bool
	HideTask tasks.Handle
}

var Sign = donburi.NewComponentType[SignData]()
