package systems

import (
	"fmt"

	"github.com/automoto/trapdoor/components"
	cfg "github.com/automoto/trapdoor/config"
	"github.com/automoto/trapdoor/fonts"
	"github.com/automoto/trapdoor/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudMargin  = 4
	keyIconW   = 4
	keyIconH   = 6
	keyIconGap = 2
)

// DrawHUD prints the death counter in the top-left corner with one gold pip per
// carried key underneath.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	face := fonts.HUD.Get()
	stats := CurrentStats(ecs.World)

	text.Draw(screen, fmt.Sprintf("deaths %d", stats.Deaths), face, hudMargin, hudMargin+6, cfg.White)

	if e, ok := tags.Player.First(ecs.World); ok {
		keys := components.Player.Get(e).Keys
		for i := 0; i < keys; i++ {
			x := float32(hudMargin + i*(keyIconW+keyIconGap))
			vector.FillRect(screen, x, hudMargin+10, keyIconW, keyIconH, cfg.Gold, false)
		}
	}

	if cfg.Debug.Overlay {
		sched := Scheduler(ecs.World)
		line := fmt.Sprintf("t=%.2fs tasks=%d", sched.Now().Seconds(), sched.Len())
		text.Draw(screen, line, face, hudMargin, cfg.C.Height-hudMargin, cfg.Yellow)
	}
}
