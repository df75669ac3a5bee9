package prefabs

import (
	"fmt"
	"image/color"
)

const PaletteFile = "palette.yaml"

// Palette holds placeholder sprite colors, one backdrop color per score tier
// and the HUD colors.
type Palette struct {
	Sprites     map[string]YAMLColor `yaml:"sprites"`
	Backgrounds []YAMLColor          `yaml:"backgrounds"`
	HUD         HUDPalette           `yaml:"hud"`
}

type HUDPalette struct {
	Life     YAMLColor `yaml:"life"`
	Ammo     YAMLColor `yaml:"ammo"`
	Low      YAMLColor `yaml:"low"`
	Frame    YAMLColor `yaml:"frame"`
	Score    YAMLColor `yaml:"score"`
	Text     YAMLColor `yaml:"text"`
	BossBar  YAMLColor `yaml:"boss_bar"`
	BossFill YAMLColor `yaml:"boss_fill"`
	GameOver YAMLColor `yaml:"game_over"`
}

func LoadPalette() (*Palette, error) {
	p, err := LoadSpec[Palette](PaletteFile)
	if err != nil {
		return nil, err
	}
	if len(p.Backgrounds) == 0 {
		return nil, fmt.Errorf("prefabs: %s: no background colors", PaletteFile)
	}
	return &p, nil
}

// Sprite returns the placeholder color for key, or white.
func (p *Palette) Sprite(key string) color.Color {
	if p != nil {
		if c, ok := p.Sprites[key]; ok && c.Color != nil {
			return c.Color
		}
	}
	return color.White
}

// Background returns the color of a backdrop tier, clamped to the last one.
func (p *Palette) Background(tier int) color.Color {
	if p == nil || len(p.Backgrounds) == 0 {
		return color.Black
	}
	tier = max(0, min(tier, len(p.Backgrounds)-1))
	if c := p.Backgrounds[tier].Color; c != nil {
		return c
	}
	return color.Black
}

// Or returns c's color, or fallback when c was never set.
func (c YAMLColor) Or(fallback color.Color) color.Color {
	if c.Color == nil {
		return fallback
	}
	return c.Color
}
