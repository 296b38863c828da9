package frame

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"

	"github.com/fovesdk/fove-go/capi"
)

func testBitmap(t *testing.T, w, h int) capi.BitmapImage {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.Gray{Y: uint8(x * y)})
		}
	}
	var buf bytes.Buffer
	if err := bmp.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return capi.BitmapImage{Timestamp: 1, Data: buf.Bytes()}
}

func TestDecode(t *testing.T) {
	decoded, err := Decode(testBitmap(t, 16, 8))
	if err != nil {
		t.Fatal(err)
	}
	b := decoded.Bounds()
	if b.Dx() != 16 || b.Dy() != 8 {
		t.Errorf("bounds = %v, want 16x8", b)
	}
}

func TestDecode_Errors(t *testing.T) {
	if _, err := Decode(capi.BitmapImage{}); err == nil {
		t.Error("empty buffer should error")
	}
	if _, err := Decode(capi.BitmapImage{Data: []byte("not a bmp")}); err == nil {
		t.Error("garbage buffer should error")
	}
}

func TestSavePNG(t *testing.T) {
	decoded, err := Decode(testBitmap(t, 4, 4))
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "frame.png")
	if err := SavePNG(path, decoded); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	reread, err := png.Decode(f)
	if err != nil {
		t.Fatalf("saved file is not valid PNG: %v", err)
	}
	if reread.Bounds().Dx() != 4 {
		t.Errorf("bounds = %v", reread.Bounds())
	}
}
