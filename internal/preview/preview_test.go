package preview

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

// pngImage encodes a solid-color PNG of the given size.
func pngImage(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 80, B: 40, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestRender(t *testing.T) {
	t.Run("wide image is scaled to max width", func(t *testing.T) {
		r := NewRenderer()
		src := pngImage(t, 800, 600)

		out, err := r.Render(src)
		if err != nil {
			t.Fatalf("Render: %v", err)
		}

		cfg, format, err := image.DecodeConfig(bytes.NewReader(out))
		if err != nil {
			t.Fatalf("decode preview: %v", err)
		}
		if format != "jpeg" {
			t.Errorf("format: got %q, want jpeg", format)
		}
		if cfg.Width != DefaultMaxWidth {
			t.Errorf("width: got %d, want %d", cfg.Width, DefaultMaxWidth)
		}
		if cfg.Height != 240 {
			t.Errorf("height: got %d, want 240 (aspect preserved)", cfg.Height)
		}
	})

	t.Run("small image is returned unchanged", func(t *testing.T) {
		r := NewRenderer()
		src := pngImage(t, 100, 100)

		out, err := r.Render(src)
		if err != nil {
			t.Fatalf("Render: %v", err)
		}
		if !bytes.Equal(out, src) {
			t.Error("small image should pass through untouched")
		}
	})

	t.Run("garbage input fails", func(t *testing.T) {
		r := NewRenderer()
		if _, err := r.Render([]byte("not an image")); err == nil {
			t.Fatal("expected error for non-image data")
		}
	})
}
