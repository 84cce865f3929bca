package tags

import "github.com/yohamta/donburi"

var (
	Player       = donburi.NewTag().SetName("Player")
	Enemy        = donburi.NewTag().SetName("Enemy")
	TileMap      = donburi.NewTag().SetName("TileMap")
	Pit          = donburi.NewTag().SetName("Pit")
	ArrowSpawner = donburi.NewTag().SetName("ArrowSpawner")
	Switch       = donburi.NewTag().SetName("Switch")
	Arrow        = donburi.NewTag().SetName("Arrow")
	Key          = donburi.NewTag().SetName("Key")
	Door         = donburi.NewTag().SetName("Door")
	Sign         = donburi.NewTag().SetName("Sign")
)

// Resolv tags for the dynamic collider broadphase
const (
	ResolvCollider = "collider"
	ResolvPlayer   = "Player"
	ResolvEnemy    = "Enemy"
	ResolvPit      = "pit"
	ResolvSwitch   = "switch"
	ResolvArrow    = "arrow"
	ResolvSpawner  = "spawner"
	ResolvKey      = "key"
	ResolvDoor     = "door"
	ResolvSign     = "sign"
)
