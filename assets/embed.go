package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// Drop PNGs under assets/images/ to replace the placeholders.
//
//go:embed images
var assetsFS embed.FS

// FS exposes the embedded assets.
func FS() fs.FS {
	return assetsFS
}

// LoadImage decodes an image by assets-relative path from fsys.
func LoadImage(fsys fs.FS, path string) (*ebiten.Image, error) {
	b, err := LoadFile(fsys, path)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", path, err)
	}
	return ebiten.NewImageFromImage(img), nil
}

// LoadFile reads an asset by assets-relative path from fsys.
func LoadFile(fsys fs.FS, path string) ([]byte, error) {
	if fsys == nil {
		fsys = assetsFS
	}
	return fs.ReadFile(fsys, cleanAssetPath(path))
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if filepath.IsAbs(path) {
		if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
			return s[idx+len("/assets/"):]
		}
		return filepath.Base(path)
	}
	return strings.TrimPrefix(s, "assets/")
}
