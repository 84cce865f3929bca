package components

import (
	"github.com/automoto/trapdoor/tasks"
	"github.com/yohamta/donburi"
)

// SwitchData is a pressure plate. Trap and Player are resolved once during bind.
type SwitchData struct {
	TrapName    string
	Trap        *donburi.Entry
	Player      *donburi.Entry
	Pressed     bool
	ReleaseTask tasks.Handle // Pending sprite revert after release
}

var Switch = donburi.NewComponentType[SwitchData]()
