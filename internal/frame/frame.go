// Package frame decodes the camera frames the runtime delivers as
// BMP-encoded buffers and re-encodes them for saving.
package frame

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"

	"golang.org/x/image/bmp"

	"github.com/fovesdk/fove-go/capi"
)

// Decode parses the BMP buffer of a camera frame.
func Decode(img capi.BitmapImage) (image.Image, error) {
	if len(img.Data) == 0 {
		return nil, fmt.Errorf("empty frame buffer")
	}
	decoded, err := bmp.Decode(bytes.NewReader(img.Data))
	if err != nil {
		return nil, fmt.Errorf("decode bmp: %w", err)
	}
	return decoded, nil
}

// SavePNG writes a decoded frame to path as PNG.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode png: %w", err)
	}
	return f.Close()
}
