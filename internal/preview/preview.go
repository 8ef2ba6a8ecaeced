// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package preview renders the small local representation of a queued
// image shown next to its upload progress. Rendering happens before any
// network transfer and never touches the server.
package preview

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif" // register GIF decoder
	"image/jpeg"
	_ "image/png" // register PNG decoder

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // register WebP decoder
)

const (
	// DefaultMaxWidth is the preview width in pixels.
	DefaultMaxWidth = 320

	// previewQuality is the JPEG quality of rendered previews.
	previewQuality = 80

	// maxImagePixels caps decoded size to prevent memory bombs.
	// 10000x10000 = 100 million pixels, ~400 MB decoded in RGBA.
	maxImagePixels = 100_000_000
)

// Renderer produces JPEG previews constrained to MaxWidth.
type Renderer struct {
	MaxWidth int
}

// NewRenderer creates a renderer with the default width.
func NewRenderer() *Renderer {
	return &Renderer{MaxWidth: DefaultMaxWidth}
}

// Render decodes src and returns a JPEG no wider than MaxWidth with the
// aspect ratio preserved. Images already within the limit are returned
// unchanged: they are their own preview.
func (r *Renderer) Render(src []byte) ([]byte, error) {
	maxWidth := r.MaxWidth
	if maxWidth <= 0 {
		maxWidth = DefaultMaxWidth
	}

	// Decode config first to check dimensions without a full decode.
	cfg, _, err := image.DecodeConfig(bytes.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("preview decode config: %w", err)
	}
	if int64(cfg.Width)*int64(cfg.Height) > maxImagePixels {
		return nil, fmt.Errorf("preview: image too large: %dx%d exceeds %d pixels", cfg.Width, cfg.Height, maxImagePixels)
	}
	if cfg.Width <= maxWidth {
		return src, nil
	}

	img, _, err := image.Decode(bytes.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("preview decode: %w", err)
	}

	bounds := img.Bounds()
	height := bounds.Dy() * maxWidth / bounds.Dx()
	if height < 1 {
		height = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, maxWidth, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	var out bytes.Buffer
	if err := jpeg.Encode(&out, dst, &jpeg.Options{Quality: previewQuality}); err != nil {
		return nil, fmt.Errorf("preview encode: %w", err)
	}
	return out.Bytes(), nil
}
