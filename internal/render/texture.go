package render

import (
	"fmt"
	"image"
	_ "image/jpeg" // decoders for DecodeConfig
	_ "image/png"
	"os"
)

type fileTexture struct {
	path string
	w, h int
}

func (t fileTexture) Path() string     { return t.path }
func (t fileTexture) Size() (int, int) { return t.w, t.h }

// FileTextures is the TextureLoader for backends that cannot show images.
// It only checks that the file exists and decodes as an image.
type FileTextures struct{}

func (FileTextures) LoadTexture(path string) (Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrResourceLoad, err)
	}
	defer f.Close()
	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrResourceLoad, path, err)
	}
	return fileTexture{path: path, w: cfg.Width, h: cfg.Height}, nil
}

func (FileTextures) UnloadTexture(Texture) {}
