package main

import (
	"fmt"
	"image/color"
	"sort"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/cosmicheat/common"
	"github.com/milk9111/cosmicheat/ecs"
	"github.com/milk9111/cosmicheat/ecs/component"
	"github.com/milk9111/cosmicheat/prefabs"
	"github.com/milk9111/cosmicheat/sim"
)

// hudRows is how many terminal rows sit above the arena.
const hudRows = 1

type cellRect struct {
	col, row, cols, rows int
}

// view draws a world onto a terminal by squeezing the arena into the
// available cells.
type view struct {
	screen  tcell.Screen
	palette *prefabs.Palette
}

// toCells maps an arena rect onto a grid of cols x rows cells. Anything
// visible covers at least one cell.
func toCells(r common.Rect, cols, rows int) (cellRect, bool) {
	if cols <= 0 || rows <= 0 {
		return cellRect{}, false
	}
	sx := float64(cols) / common.ArenaWidth
	sy := float64(rows) / common.ArenaHeight

	x0 := int(common.Clamp(r.X*sx, 0, float64(cols)))
	y0 := int(common.Clamp(r.Y*sy, 0, float64(rows)))
	x1 := int(common.Clamp(r.Right()*sx, 0, float64(cols)))
	y1 := int(common.Clamp(r.Bottom()*sy, 0, float64(rows)))
	if r.Right() <= 0 || r.Bottom() <= 0 || r.X >= common.ArenaWidth || r.Y >= common.ArenaHeight {
		return cellRect{}, false
	}
	if x1 <= x0 {
		x1 = min(x0+1, cols)
	}
	if y1 <= y0 {
		y1 = min(y0+1, rows)
	}
	if x1 <= x0 || y1 <= y0 {
		return cellRect{}, false
	}
	return cellRect{col: x0, row: y0, cols: x1 - x0, rows: y1 - y0}, true
}

func glyph(key string) rune {
	switch {
	case key == "player":
		return 'A'
	case strings.HasSuffix(key, "bullet"):
		return '|'
	case strings.HasPrefix(key, "boss"):
		return '#'
	case strings.HasPrefix(key, "enemy"):
		return 'V'
	case strings.HasPrefix(key, "meteor"):
		return 'o'
	case key == "black_hole":
		return '@'
	case strings.HasPrefix(key, "explosion"):
		return '*'
	case strings.HasSuffix(key, "refill"):
		return '+'
	case key == "extra_score":
		return '$'
	}
	return '?'
}

func tcellColor(c color.Color) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}

func (v *view) draw(e *sim.Engine) {
	v.screen.Clear()
	cols, rows := v.screen.Size()
	arenaRows := rows - hudRows

	state := e.State()
	if state != sim.GameOver {
		v.drawWorld(e.World(), cols, arenaRows)
		v.drawHUD(e.Resources(), cols)
	}

	switch state {
	case sim.Paused:
		v.centered(rows/2, "PAUSE", tcell.ColorWhite)
	case sim.GameOver:
		final := e.FinalResources()
		v.centered(rows/2-2, "GAME OVER", tcellColor(v.hudColors().GameOver.Or(color.RGBA{R: 0x8b, A: 0xff})))
		v.centered(rows/2, fmt.Sprintf("Final Score: %d", final.Score), tcell.ColorWhite)
		v.centered(rows/2+1, fmt.Sprintf("HI-SCORE: %d", final.HiScore), tcell.ColorWhite)
	}
	v.screen.Show()
}

func (v *view) hudColors() prefabs.HUDPalette {
	if v.palette == nil {
		return prefabs.HUDPalette{}
	}
	return v.palette.HUD
}

func (v *view) drawWorld(w *ecs.World, cols, rows int) {
	type item struct {
		layer int
		key   string
		box   common.Rect
	}
	var items []item
	ecs.ForEach2(w, component.SpriteComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, s *component.Sprite, t *component.Transform) {
		items = append(items, item{layer: s.Layer, key: s.Key, box: t.Rect()})
	})
	sort.SliceStable(items, func(i, j int) bool { return items[i].layer < items[j].layer })

	for _, it := range items {
		cells, ok := toCells(it.box, cols, rows)
		if !ok {
			continue
		}
		style := tcell.StyleDefault.Foreground(tcellColor(v.palette.Sprite(it.key)))
		ch := glyph(it.key)
		for y := cells.row; y < cells.row+cells.rows; y++ {
			for x := cells.col; x < cells.col+cells.cols; x++ {
				v.screen.SetContent(x, y+hudRows, ch, nil, style)
			}
		}
	}
}

func (v *view) drawHUD(res component.Resources, cols int) {
	hud := v.hudColors()
	x := v.text(0, 0, "LIFE ", tcell.ColorWhite)
	x = v.text(x, 0, meter(res.Life, 10), tcellColor(poolColor(res.Life, hud.Life, hud)))
	x = v.text(x+1, 0, "AMMO ", tcell.ColorWhite)
	v.text(x, 0, meter(res.Ammo, 10), tcellColor(poolColor(res.Ammo, hud.Ammo, hud)))

	score := fmt.Sprintf("SCORE %d  HI %d", res.Score, res.HiScore)
	v.text(cols-len(score), 0, score, tcellColor(hud.Score.Or(color.White)))
}

func poolColor(value int, c prefabs.YAMLColor, hud prefabs.HUDPalette) color.Color {
	if value <= 50 {
		return hud.Low.Or(color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff})
	}
	return c.Or(color.White)
}

// meter renders value out of the pool maximum as a bar of width cells.
func meter(value, width int) string {
	filled := common.ClampInt(value*width/common.MaxPool, 0, width)
	return strings.Repeat("█", filled) + strings.Repeat("·", width-filled)
}

func (v *view) text(x, y int, s string, c tcell.Color) int {
	style := tcell.StyleDefault.Foreground(c)
	for _, r := range s {
		v.screen.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}

func (v *view) centered(y int, s string, c tcell.Color) {
	cols, _ := v.screen.Size()
	v.text((cols-len([]rune(s)))/2, y, s, c)
}
