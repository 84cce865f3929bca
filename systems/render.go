package systems

import (
	"image/color"

	"github.com/automoto/trapdoor/collision"
	"github.com/automoto/trapdoor/components"
	cfg "github.com/automoto/trapdoor/config"
	"github.com/automoto/trapdoor/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

var spriteColors = map[components.SpriteKind]color.RGBA{
	components.SpritePlayer:     cfg.LightBlue,
	components.SpriteEnemy:      cfg.Red,
	components.SpritePit:        cfg.Black,
	components.SpriteSwitchUp:   cfg.DarkGray,
	components.SpriteSwitchDown: cfg.Stone,
	components.SpriteSpawner:    cfg.Brown,
	components.SpriteArrow:      cfg.Red,
	components.SpriteKey:        cfg.Gold,
	components.SpriteDoor:       cfg.Brown,
	components.SpriteSign:       cfg.Yellow,
}

// drawOrder keeps floor decals under bodies.
var drawOrder = []components.SpriteKind{
	components.SpritePit,
	components.SpriteSwitchUp,
	components.SpriteSwitchDown,
	components.SpriteSpawner,
	components.SpriteDoor,
	components.SpriteKey,
	components.SpriteSign,
	components.SpriteEnemy,
	components.SpritePlayer,
	components.SpriteArrow,
}

// view returns the offset that turns world coordinates into screen coordinates.
func view(ecs *ecs.ECS, screen *ebiten.Image) (dmath.Vec2, bool) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return dmath.Vec2{}, false // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	return dmath.NewVec2(
		float64(width)/2-camera.Position.X,
		float64(height)/2-camera.Position.Y,
	), true
}

// DrawLevel fills the floor and the wall tiles.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Floor)

	off, ok := view(ecs, screen)
	if !ok {
		return
	}
	tm, ok := components.TileMap.First(ecs.World)
	if !ok {
		return
	}
	tiles := components.TileMap.Get(tm)
	tw, th := tiles.TileSize()

	for _, cell := range tiles.Cells() {
		x := cell.Position.X - tw/2 + off.X
		y := cell.Position.Y - th/2 + off.Y
		vector.FillRect(screen, float32(x), float32(y), float32(tw), float32(th), cfg.Stone, false)
	}
}

// DrawSprites draws every visible entity as a coloured box the size of its collider.
func DrawSprites(ecs *ecs.ECS, screen *ebiten.Image) {
	off, ok := view(ecs, screen)
	if !ok {
		return
	}

	byKind := make(map[components.SpriteKind][]*donburi.Entry)
	components.Sprite.Each(ecs.World, func(e *donburi.Entry) {
		sprite := components.Sprite.Get(e)
		if sprite.Visible && sprite.Scale > 0 {
			byKind[sprite.Kind] = append(byKind[sprite.Kind], e)
		}
	})

	for _, kind := range drawOrder {
		for _, e := range byKind[kind] {
			drawSprite(screen, e, off)
		}
	}
}

func drawSprite(screen *ebiten.Image, e *donburi.Entry, off dmath.Vec2) {
	sprite := components.Sprite.Get(e)
	pos := *components.Position.Get(e)
	c := spriteColors[sprite.Kind]

	w, h := float64(cfg.C.TileSize), float64(cfg.C.TileSize)
	if e.HasComponent(components.Collider) {
		w, h = components.Collider.Get(e).Shape.Size()
	}
	w *= sprite.Scale
	h *= sprite.Scale

	rotation := pos.Rotation + sprite.Rotation
	if rotation == 0 {
		x := pos.X - w/2 + off.X
		y := pos.Y - h/2 + off.Y
		vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), c, false)
		return
	}

	box := collision.NewBox(w, h)
	strokePolygon(screen, box.World(collision.Position{X: pos.X, Y: pos.Y, Rotation: rotation}), off, 1, c)
}

func strokePolygon(screen *ebiten.Image, points []dmath.Vec2, off dmath.Vec2, width float32, c color.Color) {
	for i, p := range points {
		q := points[(i+1)%len(points)]
		vector.StrokeLine(screen,
			float32(p.X+off.X), float32(p.Y+off.Y),
			float32(q.X+off.X), float32(q.Y+off.Y),
			width, c, false)
	}
}

// DrawSigns draws the text of every sign that is currently showing, tilted
// back and forth above the sign.
func DrawSigns(ecs *ecs.ECS, screen *ebiten.Image) {
	off, ok := view(ecs, screen)
	if !ok {
		return
	}
	face := fonts.Sign.Get()
	angle := SignWobble(Scheduler(ecs.World).Now())

	components.Sign.Each(ecs.World, func(e *donburi.Entry) {
		sign := components.Sign.Get(e)
		if !sign.Showing {
			return
		}
		pos := components.Position.Get(e)
		bounds := text.BoundString(face, sign.Text)

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Translate(-float64(bounds.Dx())/2, 0)
		drawOp.GeoM.Rotate(angle)
		drawOp.GeoM.Translate(pos.X+off.X, pos.Y+off.Y-2)
		drawOp.ColorScale.ScaleWithColor(cfg.Sign.TextColor)
		text.DrawWithOptions(screen, sign.Text, face, drawOp)
	})
}
