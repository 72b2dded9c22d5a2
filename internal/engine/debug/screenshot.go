// Package debug holds tooling that only matters while poking at the
// viewer, such as frame captures.
package debug

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"
)

// Screenshots numbers and writes captured frames as PNG files.
type Screenshots struct {
	dir    string
	prefix string
	seq    int
}

// NewScreenshots writes captures under dir (empty means the working
// directory) with the given filename prefix.
func NewScreenshots(dir, prefix string) *Screenshots {
	return &Screenshots{dir: dir, prefix: prefix}
}

// Save encodes one frame and returns the path written. pixels is raw
// RGBA, width*height*4 bytes, bottom-up as glReadPixels delivers it.
// A sequence number keeps captures from the same second apart.
func (s *Screenshots) Save(pixels []byte, width, height int) (string, error) {
	img, err := frameImage(pixels, width, height)
	if err != nil {
		return "", err
	}

	if s.dir != "" {
		if err := os.MkdirAll(s.dir, 0o755); err != nil {
			return "", fmt.Errorf("screenshot dir: %w", err)
		}
	}
	s.seq++
	name := fmt.Sprintf("%s_%s_%03d.png", s.prefix, time.Now().Format("20060102-150405"), s.seq)
	path := filepath.Join(s.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return "", fmt.Errorf("encode %s: %w", path, err)
	}
	return path, nil
}

// frameImage turns a bottom-up RGBA readback into a top-down image,
// flipping rows during the copy.
func frameImage(pixels []byte, width, height int) (*image.RGBA, error) {
	if len(pixels) != width*height*4 {
		return nil, fmt.Errorf("frame is %d bytes, want %d for %dx%d",
			len(pixels), width*height*4, width, height)
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	row := width * 4
	for y := 0; y < height; y++ {
		src := (height - 1 - y) * row
		dst := y * img.Stride
		copy(img.Pix[dst:dst+row], pixels[src:src+row])
	}
	return img, nil
}
