package assets

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
)

// File names of the classic sprite set.
const (
	FileBirdDown   = "yellowbird-downflap.png"
	FileBirdMid    = "yellowbird-midflap.png"
	FileBirdUp     = "yellowbird-upflap.png"
	FilePipe       = "pipe-green.png"
	FileGround     = "base.png"
	FileBackground = "background-day.png"
)

// Load reads the sprite set from dir. Each file is looked up in dir and then
// in dir/"Game Objects", the layout the sprite pack ships with.
func Load(dir string) (*Registry, error) {
	var src Source
	var err error

	for i, name := range []string{FileBirdDown, FileBirdMid, FileBirdUp} {
		if src.BirdFrames[i], err = loadPNG(dir, name); err != nil {
			return nil, err
		}
	}
	if src.Pipe, err = loadPNG(dir, FilePipe); err != nil {
		return nil, err
	}
	if src.Ground, err = loadPNG(dir, FileGround); err != nil {
		return nil, err
	}
	if src.Background, err = loadPNG(dir, FileBackground); err != nil {
		return nil, err
	}
	return Build(src)
}

// LoadOrDefault loads from dir when it is set, otherwise returns the built-in
// sprites.
func LoadOrDefault(dir string) (*Registry, error) {
	if dir == "" {
		return Default(), nil
	}
	return Load(dir)
}

func loadPNG(dir, name string) (image.Image, error) {
	candidates := []string{
		filepath.Join(dir, name),
		filepath.Join(dir, "Game Objects", name),
	}
	for _, path := range candidates {
		f, err := os.Open(path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("assets: open %s: %w", path, err)
		}
		img, err := png.Decode(f)
		_ = f.Close()
		if err != nil {
			return nil, fmt.Errorf("assets: decode %s: %w", path, err)
		}
		return img, nil
	}
	return nil, fmt.Errorf("assets: %s not found in %s", name, dir)
}
