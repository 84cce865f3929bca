package systems

import (
	"github.com/automoto/trapdoor/components"
	"github.com/yohamta/donburi"
)

func collectKey(w donburi.World, player, key *donburi.Entry) {
	Destroy(w, key)
	components.Player.Get(player).Keys++
	withStats(w, func(s *components.RunStats) { s.KeysFound++ })
}

// openDoor spends one key on the door. Without a key the door just blocks.
func openDoor(w donburi.World, player, door *donburi.Entry) {
	data := components.Player.Get(player)
	if data.Keys == 0 {
		return
	}
	Destroy(w, door)
	data.Keys--
	withStats(w, func(s *components.RunStats) { s.DoorsOpened++ })
}
