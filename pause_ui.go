package main

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/cosmicheat/common"
	"github.com/milk9111/cosmicheat/ecs/component"
	"github.com/milk9111/cosmicheat/prefabs"
	"github.com/milk9111/cosmicheat/sim"
)

// Overlay is the pause menu and the game over summary. Button clicks are
// turned into actions and merged into the next frame's input.
type Overlay struct {
	pause    *ebitenui.UI
	gameOver *ebitenui.UI

	finalScore *widget.Text
	hiScore    *widget.Text

	requested component.ActionSet
}

func NewOverlay(face ebtext.Face, hud prefabs.HUDPalette) *Overlay {
	o := &Overlay{}
	white := hud.Text.Or(color.White)

	var box *widget.Container
	o.pause, box = newPanel()
	box.AddChild(label(face, "PAUSE", white))
	box.AddChild(o.button(face, "Resume", component.ActionPause))
	box.AddChild(o.button(face, "Quit", component.ActionQuit))

	o.finalScore = label(face, "", white)
	o.hiScore = label(face, "", white)
	o.gameOver, box = newPanel()
	box.AddChild(label(face, "GAME OVER", hud.GameOver.Or(color.NRGBA{R: 0x8b, A: 0xff})))
	box.AddChild(o.finalScore)
	box.AddChild(o.hiScore)
	box.AddChild(o.button(face, "Quit", component.ActionQuit))

	return o
}

func label(face ebtext.Face, s string, c color.Color) *widget.Text {
	return widget.NewText(
		widget.TextOpts.Text(s, &face, c),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)
}

func (o *Overlay) button(face ebtext.Face, text string, action component.Action) *widget.Button {
	img := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff})
	hover := imageui.NewNineSliceColor(color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xff})
	return widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: img, Hover: hover, Pressed: hover}),
		widget.ButtonOpts.Text(text, &face, &widget.ButtonTextColor{Idle: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}}),
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(140, 30),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}),
		),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			o.requested = o.requested.With(action)
		}),
	)
}

// newPanel returns a UI holding one translucent box centered on the arena.
func newPanel() (*ebitenui.UI, *widget.Container) {
	box := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(color.NRGBA{A: 200})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(12),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 24, Bottom: 24, Left: 40, Right: 40}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.ArenaWidth/3, common.ArenaHeight/4),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(box)
	return &ebitenui.UI{Container: root}, box
}

// Requested returns the actions clicked since the last call.
func (o *Overlay) Requested() component.ActionSet {
	r := o.requested
	o.requested = 0
	return r
}

func (o *Overlay) Update(state sim.State, final component.Resources) {
	switch state {
	case sim.Paused:
		o.pause.Update()
	case sim.GameOver:
		o.finalScore.Label = fmt.Sprintf("Final Score: %d", final.Score)
		o.hiScore.Label = fmt.Sprintf("HI-SCORE: %d", final.HiScore)
		o.gameOver.Update()
	}
}

func (o *Overlay) Draw(screen *ebiten.Image, state sim.State) {
	switch state {
	case sim.Paused:
		o.pause.Draw(screen)
	case sim.GameOver:
		o.gameOver.Draw(screen)
	}
}
