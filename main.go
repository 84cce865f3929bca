package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/trapdoor/assets"
	"github.com/automoto/trapdoor/config"
	"github.com/automoto/trapdoor/fonts"
	"github.com/automoto/trapdoor/scenes"
	"github.com/automoto/trapdoor/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(levelName string) *Game {
	fonts.LoadDefaults()

	level, err := assets.LoadLevel(levelName)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}

	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewDungeonScene(g, level)

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	levelName := flag.String("level", assets.DefaultLevel, "Level to play")
	flag.Parse()

	ebiten.SetWindowSize(config.C.Width*config.C.Scale, config.C.Height*config.C.Scale)
	ebiten.SetWindowTitle("Trapdoor")
	ebiten.SetTPS(config.C.TickRate)

	if err := systems.InitPersistence("trapdoor"); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}

	if err := ebiten.RunGame(NewGame(*levelName)); err != nil {
		log.Fatal(err)
	}
}
