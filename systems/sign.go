package systems

import (
	"math"
	"time"

	"github.com/automoto/trapdoor/components"
	cfg "github.com/automoto/trapdoor/config"
	"github.com/automoto/trapdoor/tasks"
	"github.com/yohamta/donburi"
)

// ShowSign reveals a sign's text. Touching it again keeps the text up for the
// full display time from now.
func ShowSign(w donburi.World, e *donburi.Entry) {
	sched := Scheduler(w)
	sign := components.Sign.Get(e)
	sign.Showing = true

	sched.Cancel(sign.HideTask)
	sign.HideTask = sched.Run(
		tasks.Wait(cfg.Sign.ShowDuration),
		tasks.Do(func() {
			if !e.Valid() {
				return
			}
			s := components.Sign.Get(e)
			s.Showing = false
			s.HideTask = 0
		}),
	)
}

// SignWobble returns the text tilt in radians at game time now. The text swings
// from -WobbleDegree to +WobbleDegree and back, one leg per WobblePeriod.
func SignWobble(now time.Duration) float64 {
	period := cfg.Sign.WobblePeriod
	if period <= 0 {
		return 0
	}
	f := float64(now%period) / float64(period)
	deg := cfg.Sign.WobbleDegree
	from, to := -deg, deg
	if now%(2*period) >= period {
		from, to = deg, -deg
	}
	return (from + (to-from)*f) * math.Pi / 180
}
