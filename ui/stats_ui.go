package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/automoto/trapdoor/components"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// StatsUI is the panel shown between a death and the restart.
type StatsUI struct {
	UI *ebitenui.UI

	titleLabel *widget.Label
	lines      []*widget.Label

	titleFace  text.Face
	normalFace text.Face
}

// statLines is how many counters the panel shows.
const statLines = 5

func NewStatsUI() *StatsUI {
	sui := &StatsUI{}
	sui.loadFonts()
	sui.buildUI()
	return sui
}

func (sui *StatsUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}
	sui.titleFace = &text.GoTextFace{Source: fontSource, Size: 12}
	sui.normalFace = &text.GoTextFace{Source: fontSource, Size: 8}
}

func (sui *StatsUI) buildUI() {
	// Transparent root so the level stays visible around the panel
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 200})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
			widget.RowLayoutOpts.Spacing(2),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	sui.titleLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &sui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 80, 80, 255},
		}),
	)
	panel.AddChild(sui.titleLabel)

	for i := 0; i < statLines; i++ {
		label := widget.NewLabel(
			widget.LabelOpts.Text("", &sui.normalFace, &widget.LabelColor{
				Idle: color.RGBA{220, 220, 220, 255},
			}),
		)
		sui.lines = append(sui.lines, label)
		panel.AddChild(label)
	}

	rootContainer.AddChild(panel)

	sui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

// SetStats refreshes the panel for a death by cause with the run's counters.
func (sui *StatsUI) SetStats(cause components.DeathCause, stats components.RunStats) {
	sui.titleLabel.Label = Headline(cause)
	for i, line := range StatLines(stats) {
		sui.lines[i].Label = line
	}
}

func (sui *StatsUI) Update() {
	sui.UI.Update()
}

func (sui *StatsUI) Draw(screen *ebiten.Image) {
	sui.UI.Draw(screen)
}

// Headline is the panel title for a death.
func Headline(cause components.DeathCause) string {
	switch cause {
	case components.DeathFell:
		return "You fell"
	case components.DeathShot:
		return "You were shot"
	case components.DeathCaught:
		return "You were caught"
	}
	return "You died"
}

// StatLines formats the run counters, one per panel row.
func StatLines(stats components.RunStats) []string {
	return []string{
		fmt.Sprintf("deaths   %d", stats.Deaths),
		fmt.Sprintf("restarts %d", stats.Restarts),
		fmt.Sprintf("keys     %d", stats.KeysFound),
		fmt.Sprintf("doors    %d", stats.DoorsOpened),
		fmt.Sprintf("arrows   %d", stats.ArrowsFired),
	}
}
