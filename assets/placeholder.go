package assets

import (
	"image/color"
	"math/rand"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/cosmicheat/common"
)

const placeholderSize = 64

// placeholder draws a stand-in for a missing image. The renderer stretches
// it over the entity box, so only the shape and color matter.
func (p *Provider) placeholder(key string, frame, frames int) *ebiten.Image {
	if key == BackgroundKey {
		return p.starfield(frame)
	}

	img := ebiten.NewImage(placeholderSize, placeholderSize)
	c := p.palette.Sprite(key)
	const s = placeholderSize

	switch {
	case strings.HasPrefix(key, "explosion"):
		// Rings grow and fade over the animation.
		t := float32(frame+1) / float32(max(frames, 1))
		inset := s / 2 * (1 - t)
		faded := fade(c, 1-t*0.8)
		vector.FillRect(img, inset, inset, s-2*inset, s-2*inset, faded, false)
	case strings.HasSuffix(key, "bullet"):
		vector.FillRect(img, s/4, 0, s/2, s, c, false)
	case strings.HasPrefix(key, "player"):
		vector.FillRect(img, s/4, s/4, s/2, s*3/4, c, false)
		vector.FillRect(img, 0, s/2, s, s/4, c, false)
		tilt := float32(0)
		switch key {
		case "player_left":
			tilt = -s / 8
		case "player_right":
			tilt = s / 8
		}
		vector.StrokeLine(img, s/2, 0, s/2+tilt, s/4, 3, c, false)
	case key == "black_hole":
		for i := float32(0); i < 4; i++ {
			inset := i * s / 8
			vector.StrokeRect(img, inset, inset, s-2*inset, s-2*inset, 2, c, false)
		}
	default:
		vector.FillRect(img, 2, 2, s-4, s-4, c, false)
		// Variants get a different number of stripes.
		for i := 0; i <= frame; i++ {
			y := float32(8 + i*10)
			vector.StrokeLine(img, 8, y, s-8, y, 2, color.Black, false)
		}
	}
	vector.StrokeRect(img, 0, 0, s, s, 1, fade(c, 0.6), false)
	return img
}

func (p *Provider) starfield(tier int) *ebiten.Image {
	img := ebiten.NewImage(common.ArenaWidth, common.ArenaHeight)
	img.Fill(p.palette.Background(tier))

	rng := rand.New(rand.NewSource(int64(tier) + 1))
	for i := 0; i < 160; i++ {
		x := float32(rng.Intn(common.ArenaWidth))
		y := float32(rng.Intn(common.ArenaHeight))
		size := float32(1 + rng.Intn(2))
		vector.FillRect(img, x, y, size, size, color.White, false)
	}
	return img
}

func fade(c color.Color, alpha float32) color.Color {
	r, g, b, a := c.RGBA()
	k := alpha
	return color.RGBA64{
		R: uint16(float32(r) * k),
		G: uint16(float32(g) * k),
		B: uint16(float32(b) * k),
		A: uint16(float32(a) * k),
	}
}
