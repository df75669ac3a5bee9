package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/cosmicheat/ecs/entity"
	"github.com/milk9111/cosmicheat/prefabs"
)

// BackgroundKey is the sprite key of the scrolling backdrop; its frames are
// the score tiers.
const BackgroundKey = "background"

var variantCounts = map[string]int{
	"enemy1":      entity.BouncerVariants,
	"enemy2":      entity.ChargerVariants,
	"meteor1":     entity.MeteorVariants,
	"meteor2":     entity.MeteorVariants,
	"black_hole":  entity.BlackHoleVariants,
	BackgroundKey: 4,
}

// Provider resolves sprite keys to images. A key with several frames or
// variants is looked up as images/<key>_<n>.png, counting from 1; a single
// frame key as images/<key>.png. Missing files are replaced by generated
// placeholders so the game always has something to draw.
type Provider struct {
	fsys    fs.FS
	palette *prefabs.Palette
	frames  map[string]int
	images  map[string][]*ebiten.Image
	logger  *log.Logger
}

// NewProvider reads images from fsys, which defaults to the embedded
// assets. Explosion frame counts come from t.
func NewProvider(fsys fs.FS, t *prefabs.Tuning, palette *prefabs.Palette) *Provider {
	if fsys == nil {
		fsys = assetsFS
	}
	p := &Provider{
		fsys:    fsys,
		palette: palette,
		frames:  make(map[string]int, len(variantCounts)),
		images:  make(map[string][]*ebiten.Image),
		logger:  log.Default(),
	}
	for key, n := range variantCounts {
		p.frames[key] = n
	}
	if t != nil {
		for key, spec := range t.Explosions {
			p.frames[key] = spec.Frames
		}
	}
	return p
}

func (p *Provider) SetLogger(l *log.Logger) {
	if l != nil {
		p.logger = l
	}
}

// Frames is the number of frames or variants stored under key.
func (p *Provider) Frames(key string) int {
	if n, ok := p.frames[key]; ok && n > 0 {
		return n
	}
	return 1
}

// Image returns frame of key, wrapping out of range frames.
func (p *Provider) Image(key string, frame int) *ebiten.Image {
	imgs, ok := p.images[key]
	if !ok {
		imgs = p.load(key)
		p.images[key] = imgs
	}
	n := len(imgs)
	return imgs[((frame%n)+n)%n]
}

func (p *Provider) load(key string) []*ebiten.Image {
	n := p.Frames(key)
	imgs := make([]*ebiten.Image, n)
	missing := 0
	for i := range imgs {
		img, err := LoadImage(p.fsys, imagePath(key, i, n))
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				p.logger.Printf("assets: %v", err)
			}
			img = p.placeholder(key, i, n)
			missing++
		}
		imgs[i] = img
	}
	if missing > 0 {
		p.logger.Printf("assets: %s: %d of %d frames use placeholders", key, missing, n)
	}
	return imgs
}

func imagePath(key string, frame, frames int) string {
	if frames <= 1 {
		return fmt.Sprintf("images/%s.png", key)
	}
	return fmt.Sprintf("images/%s_%d.png", key, frame+1)
}
