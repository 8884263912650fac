package imagegen

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"testing"
)

func decodePlaceholder(t *testing.T, b64 string) (width, height int) {
	t.Helper()
	raw, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		t.Fatalf("placeholder is not valid base64: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("placeholder is not a valid PNG: %v", err)
	}
	b := img.Bounds()
	return b.Dx(), b.Dy()
}

func TestPlaceholder_LargeSize(t *testing.T) {
	b64, err := Placeholder("eco bags", "1024x1024")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	w, h := decodePlaceholder(t, b64)
	if w != 1024 || h != 1024 {
		t.Errorf("expected 1024x1024, got %dx%d", w, h)
	}
}

func TestPlaceholder_OtherSizesRenderSmall(t *testing.T) {
	b64, err := Placeholder("eco bags", "512x512")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	w, h := decodePlaceholder(t, b64)
	if w != 512 || h != 512 {
		t.Errorf("expected 512x512, got %dx%d", w, h)
	}
}

func TestPlaceholder_EmptyLabel(t *testing.T) {
	if _, err := Placeholder("", "512x512"); err != nil {
		t.Fatalf("unexpected error for empty label: %v", err)
	}
}

func TestPlaceholder_LongLabelDoesNotFail(t *testing.T) {
	long := "a label far longer than the thirty-four characters the canvas can fit"
	if _, err := Placeholder(long, "1024x1024"); err != nil {
		t.Fatalf("unexpected error for long label: %v", err)
	}
}
