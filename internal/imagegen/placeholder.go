package imagegen

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var (
	placeholderBG     = color.RGBA{R: 245, G: 248, B: 252, A: 255}
	placeholderBorder = color.RGBA{R: 46, G: 125, B: 255, A: 255}
	placeholderText   = color.RGBA{R: 20, G: 23, B: 26, A: 255}
)

const (
	borderInset = 40
	borderWidth = 8
)

// Placeholder renders a bordered rectangle with the label text and returns it
// as a base64-encoded PNG. Size "1024x1024" yields a 1024px square; any other
// value yields 512px.
func Placeholder(label, size string) (string, error) {
	dim := 512
	if size == "1024x1024" {
		dim = 1024
	}

	img := image.NewRGBA(image.Rect(0, 0, dim, dim))
	draw.Draw(img, img.Bounds(), image.NewUniform(placeholderBG), image.Point{}, draw.Src)
	drawBorder(img, dim)

	if label == "" {
		label = "AI Image"
	}
	if runes := []rune(label); len(runes) > 34 {
		label = string(runes[:34])
	}
	drawLabel(img, label+"...", dim)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("failed to encode placeholder: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// drawBorder paints the four edges of a rectangle inset from the canvas.
func drawBorder(img *image.RGBA, dim int) {
	border := image.NewUniform(placeholderBorder)
	lo, hi := borderInset, dim-borderInset

	edges := []image.Rectangle{
		image.Rect(lo, lo, hi, lo+borderWidth),
		image.Rect(lo, hi-borderWidth, hi, hi),
		image.Rect(lo, lo, lo+borderWidth, hi),
		image.Rect(hi-borderWidth, lo, hi, hi),
	}
	for _, e := range edges {
		draw.Draw(img, e, border, image.Point{}, draw.Src)
	}
}

func drawLabel(img *image.RGBA, text string, dim int) {
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(placeholderText),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(60, dim/2),
	}
	d.DrawString(text)
}
