// Package render draws a world snapshot with ebiten. It never mutates the
// world; sim.Engine owns every change.
package render

import (
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/cosmicheat/common"
	"github.com/milk9111/cosmicheat/ecs"
	"github.com/milk9111/cosmicheat/ecs/component"
	"github.com/milk9111/cosmicheat/prefabs"
)

// Images resolves sprite keys to frames. assets.Provider implements it.
type Images interface {
	Image(key string, frame int) *ebiten.Image
	Frames(key string) int
}

// BackgroundKey is the image key whose frames are the backdrop tiers.
const BackgroundKey = "background"

// Renderer draws the backdrop, every sprite by layer and the boss health
// bars.
type Renderer struct {
	images  Images
	palette *prefabs.Palette
}

func NewRenderer(images Images, palette *prefabs.Palette) *Renderer {
	return &Renderer{images: images, palette: palette}
}

func (r *Renderer) Draw(w *ecs.World, screen *ebiten.Image) {
	if w == nil || screen == nil || r.images == nil {
		return
	}
	r.drawBackdrop(w, screen)
	for _, e := range drawOrder(w) {
		r.drawSprite(w, screen, e)
	}
	r.drawBossBars(w, screen)
}

// The backdrop is one arena-sized image drawn at Y and again one arena
// below, so the scroll wraps without a seam.
func (r *Renderer) drawBackdrop(w *ecs.World, screen *ebiten.Image) {
	ent, ok := ecs.First(w, component.BackdropComponent.Kind())
	if !ok {
		return
	}
	bg, _ := ecs.Get(w, ent, component.BackdropComponent.Kind())
	img := r.images.Image(BackgroundKey, bg.Tier)
	if img == nil {
		return
	}
	iw, ih := img.Bounds().Dx(), img.Bounds().Dy()
	if iw <= 0 || ih <= 0 {
		return
	}

	for _, y := range []float64{bg.Y, bg.Y + common.ArenaHeight} {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(common.ArenaWidth/float64(iw), common.ArenaHeight/float64(ih))
		op.GeoM.Translate(0, math.Round(y))
		screen.DrawImage(img, op)
	}
}

func (r *Renderer) drawSprite(w *ecs.World, screen *ebiten.Image, e ecs.Entity) {
	tx, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return
	}
	spr, ok := ecs.Get(w, e, component.SpriteComponent.Kind())
	if !ok {
		return
	}

	key := spr.Key
	if p, ok := ecs.Get(w, e, component.PlayerComponent.Kind()); ok {
		key = playerKey(key, p.Facing)
	}
	img := r.images.Image(key, spr.Variant)
	if img == nil {
		return
	}
	iw, ih := img.Bounds().Dx(), img.Bounds().Dy()
	if iw <= 0 || ih <= 0 || tx.Width <= 0 || tx.Height <= 0 {
		return
	}

	angle := tx.Angle
	if b, ok := ecs.Get(w, e, component.BulletComponent.Kind()); ok && b.Homing {
		// Bullet images point down; Angle is the flight heading.
		angle -= 90
	}

	c := tx.Center()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(iw)/2, -float64(ih)/2)
	op.GeoM.Scale(tx.Width/float64(iw), tx.Height/float64(ih))
	if angle != 0 {
		op.GeoM.Rotate(angle * math.Pi / 180)
	}
	op.GeoM.Translate(math.Round(c.X), math.Round(c.Y))
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(img, op)
}

func (r *Renderer) drawBossBars(w *ecs.World, screen *ebiten.Image) {
	regEnt, ok := ecs.First(w, component.BossRegistryComponent.Kind())
	if !ok {
		return
	}
	reg, _ := ecs.Get(w, regEnt, component.BossRegistryComponent.Kind())

	var hud prefabs.HUDPalette
	if r.palette != nil {
		hud = r.palette.HUD
	}
	back := hud.BossBar.Or(colorRed)
	fill := hud.BossFill.Or(colorGreen)

	ecs.ForEach2(w, component.BossComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, b *component.Boss, tx *component.Transform) {
		bar := reg.BarRect(b.Slot, tx.Rect())
		if bar.Width <= 0 {
			return
		}
		vector.FillRect(screen, float32(bar.X), float32(bar.Y), float32(bar.Width), float32(bar.Height), back, false)
		vector.FillRect(screen, float32(bar.X), float32(bar.Y), float32(reg.BarFill(b.Slot)), float32(bar.Height), fill, false)
	})
}

// drawOrder lists drawable entities bottom layer first. Entities on the
// same layer keep creation order, so newer ones draw on top.
func drawOrder(w *ecs.World) []ecs.Entity {
	type item struct {
		e     ecs.Entity
		layer int
	}

	var items []item
	ecs.ForEach2(w, component.SpriteComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, s *component.Sprite, _ *component.Transform) {
		items = append(items, item{e: e, layer: s.Layer})
	})
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].layer < items[j].layer
	})

	out := make([]ecs.Entity, len(items))
	for i, it := range items {
		out[i] = it.e
	}
	return out
}

func playerKey(key string, f component.Facing) string {
	switch f {
	case component.FacingLeft:
		return key + "_left"
	case component.FacingRight:
		return key + "_right"
	}
	return key
}
