package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/cosmicheat/common"
	"github.com/milk9111/cosmicheat/ecs/component"
	"github.com/milk9111/cosmicheat/prefabs"
	"golang.org/x/image/font/basicfont"
)

var (
	colorRed   = color.RGBA{R: 0xff, G: 0x17, B: 0x17, A: 0xff}
	colorGreen = color.RGBA{R: 0x98, G: 0xfb, B: 0x98, A: 0xff}
	colorGold  = color.RGBA{R: 0xee, G: 0xe8, B: 0xaa, A: 0xff}
)

const (
	hudMargin    = 10
	hudIcon      = 25
	hudBarWidth  = 165
	hudBarHeight = 25
	hudRowGap    = 10

	// Pools below this draw in the low color.
	lowPool = 50
)

// HUD draws the life and ammo bars, the score and the hi-score.
type HUD struct {
	images Images
	colors prefabs.HUDPalette
	face   text.Face
}

func NewHUD(images Images, palette *prefabs.Palette) *HUD {
	h := &HUD{
		images: images,
		face:   text.NewGoXFace(basicfont.Face7x13),
	}
	if palette != nil {
		h.colors = palette.HUD
	}
	return h
}

// Face is the font the HUD writes with; overlays reuse it.
func (h *HUD) Face() text.Face { return h.face }

func (h *HUD) Draw(screen *ebiten.Image, res component.Resources) {
	if screen == nil {
		return
	}

	y := float64(hudMargin)
	h.drawPool(screen, "health_refill", y, res.Life, h.colors.Life.Or(colorGreen))
	y += hudBarHeight + hudRowGap
	h.drawPool(screen, "bullet_refill", y, res.Ammo, h.colors.Ammo.Or(colorRed))

	score := fmt.Sprintf("%d", res.Score)
	sw, _ := text.Measure(score, h.face, 0)
	x := common.ArenaWidth - hudMargin - sw
	h.write(screen, score, x, hudMargin+6, h.colors.Score.Or(colorGold))
	h.icon(screen, "extra_score", x-hudIcon-6, hudMargin)

	hi := fmt.Sprintf("HI-SCORE: %d", res.HiScore)
	hw, _ := text.Measure(hi, h.face, 0)
	h.write(screen, hi, common.ArenaWidth-hudMargin-hw, hudMargin+hudIcon+hudRowGap, h.colors.Text.Or(color.White))
}

func (h *HUD) drawPool(screen *ebiten.Image, icon string, y float64, value int, fill color.Color) {
	h.icon(screen, icon, hudMargin, y)

	x := float32(hudMargin + hudIcon + hudRowGap)
	if value <= lowPool {
		fill = h.colors.Low.Or(color.Black)
	}
	vector.FillRect(screen, x, float32(y), float32(poolBarWidth(value, common.MaxPool, hudBarWidth)), hudBarHeight, fill, false)
	vector.StrokeRect(screen, x, float32(y), hudBarWidth, hudBarHeight, 1, h.colors.Frame.Or(color.White), false)
}

func (h *HUD) icon(screen *ebiten.Image, key string, x, y float64) {
	if h.images == nil {
		return
	}
	img := h.images.Image(key, 0)
	if img == nil {
		return
	}
	iw, ih := img.Bounds().Dx(), img.Bounds().Dy()
	if iw <= 0 || ih <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(hudIcon/float64(iw), hudIcon/float64(ih))
	op.GeoM.Translate(x, y)
	screen.DrawImage(img, op)
}

func (h *HUD) write(screen *ebiten.Image, s string, x, y float64, c color.Color) {
	WriteText(screen, h.face, s, x, y, c)
}

// WriteText draws s with its top-left corner at (x, y).
func WriteText(screen *ebiten.Image, face text.Face, s string, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, op)
}

// WriteCentered draws s centered horizontally on the arena, dy from the
// vertical middle.
func WriteCentered(screen *ebiten.Image, face text.Face, s string, dy float64, c color.Color) {
	w, th := text.Measure(s, face, 0)
	WriteText(screen, face, s, (common.ArenaWidth-w)/2, common.ArenaHeight/2+dy-th/2, c)
}

// poolBarWidth scales value out of limit onto a bar of width pixels.
func poolBarWidth(value, limit int, width float64) float64 {
	if limit <= 0 || value <= 0 {
		return 0
	}
	return common.Clamp(float64(value), 0, float64(limit)) / float64(limit) * width
}
