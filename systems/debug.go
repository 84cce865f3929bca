package systems

import (
	"image/color"

	"github.com/automoto/trapdoor/components"
	cfg "github.com/automoto/trapdoor/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines colliders, broadphase proxies and exposed tile edges. F1 toggles it.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Overlay {
		return
	}
	off, ok := view(ecs, screen)
	if !ok {
		return
	}

	// Exposed wall edges
	if tm, ok := components.TileMap.First(ecs.World); ok {
		tiles := components.TileMap.Get(tm)
		tw, th := tiles.TileSize()
		for _, cell := range tiles.Cells() {
			x := float32(cell.Position.X - tw/2 + off.X)
			y := float32(cell.Position.Y - th/2 + off.Y)
			w, h := float32(tw), float32(th)
			edges := cell.ActiveEdges
			if edges.Top {
				vector.FillRect(screen, x, y, w, 1, cfg.Magenta, false)
			}
			if edges.Bottom {
				vector.FillRect(screen, x, y+h-1, w, 1, cfg.Magenta, false)
			}
			if edges.Left {
				vector.FillRect(screen, x, y, 1, h, cfg.Magenta, false)
			}
			if edges.Right {
				vector.FillRect(screen, x+w-1, y, 1, h, cfg.Magenta, false)
			}
		}
	}

	// Broadphase proxies
	if sp := space(ecs.World); sp != nil {
		for _, obj := range sp.Objects() {
			x := float32(obj.X + off.X)
			y := float32(obj.Y + off.Y)
			vector.StrokeRect(screen, x, y, float32(obj.W), float32(obj.H), 1, color.RGBA{0, 255, 255, 80}, false)
		}
	}

	// Collision shapes
	components.Collider.Each(ecs.World, func(e *donburi.Entry) {
		col := components.Collider.Get(e)
		c := cfg.Red // Solid
		switch {
		case !col.Enabled:
			c = cfg.DarkGray
		case col.Trigger:
			c = cfg.Green
		}
		strokePolygon(screen, col.Shape.World(*components.Position.Get(e)), off, 1, c)
	})
}
