package renderer

import (
	"bytes"
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/ljanyst/ray-tracer/pkg/core"
)

func TestCanvas_SetAndAt(t *testing.T) {
	c := NewCanvas(10, 20)
	if c.Width() != 10 || c.Height() != 20 {
		t.Fatalf("Unexpected size %dx%d", c.Width(), c.Height())
	}
	if !c.At(3, 4).Equals(core.Black) {
		t.Errorf("Expected a black canvas, got %v", c.At(3, 4))
	}

	red := core.NewColor(1, 0, 0)
	c.Set(2, 3, red)
	if !c.At(2, 3).Equals(red) {
		t.Errorf("Expected red, got %v", c.At(2, 3))
	}

	// out of range is ignored
	c.Set(10, 0, red)
	c.Set(-1, 0, red)
	if !c.At(10, 0).Equals(core.Black) {
		t.Error("Out of range reads should be black")
	}
}

func ppmLines(t *testing.T, c *Canvas) []string {
	t.Helper()
	var buf bytes.Buffer
	if err := c.WritePPM(&buf); err != nil {
		t.Fatalf("WritePPM failed: %v", err)
	}
	out := buf.String()
	if !strings.HasSuffix(out, "\n") {
		t.Error("PPM output should end with a newline")
	}
	return strings.Split(strings.TrimSuffix(out, "\n"), "\n")
}

func TestCanvas_WritePPMHeader(t *testing.T) {
	lines := ppmLines(t, NewCanvas(5, 3))
	expected := []string{"P3", "5 3", "255"}
	for i, want := range expected {
		if lines[i] != want {
			t.Errorf("Header line %d: expected %q, got %q", i, want, lines[i])
		}
	}
}

func TestCanvas_WritePPMPixels(t *testing.T) {
	c := NewCanvas(5, 3)
	c.Set(0, 0, core.NewColor(1.5, 0, 0))
	c.Set(2, 1, core.NewColor(0, 0.5, 0))
	c.Set(4, 2, core.NewColor(-0.5, 0, 1))

	lines := ppmLines(t, c)
	expected := []string{
		"255 0 0 0 0 0 0 0 0 0 0 0 0 0 0",
		"0 0 0 0 0 0 0 128 0 0 0 0 0 0 0",
		"0 0 0 0 0 0 0 0 0 0 0 0 0 0 255",
	}
	for i, want := range expected {
		if got := lines[3+i]; got != want {
			t.Errorf("Line %d: expected %q, got %q", 3+i, want, got)
		}
	}
}

func TestCanvas_WritePPMSplitsLongLines(t *testing.T) {
	c := NewCanvas(10, 2)
	for y := 0; y < 2; y++ {
		for x := 0; x < 10; x++ {
			c.Set(x, y, core.NewColor(1, 0.8, 0.6))
		}
	}

	lines := ppmLines(t, c)
	expected := []string{
		"255 204 153 255 204 153 255 204 153 255 204 153 255 204 153 255 204",
		"153 255 204 153 255 204 153 255 204 153 255 204 153",
		"255 204 153 255 204 153 255 204 153 255 204 153 255 204 153 255 204",
		"153 255 204 153 255 204 153 255 204 153 255 204 153",
	}
	if len(lines) != 3+len(expected) {
		t.Fatalf("Expected %d lines, got %d", 3+len(expected), len(lines))
	}
	for i, want := range expected {
		if got := lines[3+i]; got != want {
			t.Errorf("Line %d: expected %q, got %q", 3+i, want, got)
		}
		if len(lines[3+i]) > 70 {
			t.Errorf("Line %d is longer than 70 characters", 3+i)
		}
	}
}

func TestCanvas_Image(t *testing.T) {
	c := NewCanvas(2, 2)
	c.Set(0, 0, core.NewColor(1, 0, 0))
	c.Set(1, 0, core.NewColor(0, 2, 0))
	c.Set(0, 1, core.NewColor(0, 0, 0.5))

	img := c.Image()
	tests := []struct {
		x, y     int
		expected color.RGBA
	}{
		{0, 0, color.RGBA{255, 0, 0, 255}},
		{1, 0, color.RGBA{0, 255, 0, 255}},
		{0, 1, color.RGBA{0, 0, 128, 255}},
		{1, 1, color.RGBA{0, 0, 0, 255}},
	}
	for _, tt := range tests {
		if got := img.RGBAAt(tt.x, tt.y); got != tt.expected {
			t.Errorf("Pixel (%d, %d): expected %v, got %v", tt.x, tt.y, tt.expected, got)
		}
	}

	sub := c.SubImage(image.Rect(1, 0, 2, 2))
	if sub.Bounds().Dx() != 1 || sub.Bounds().Dy() != 2 {
		t.Fatalf("Unexpected sub image bounds %v", sub.Bounds())
	}
	if got := sub.RGBAAt(0, 0); got != (color.RGBA{0, 255, 0, 255}) {
		t.Errorf("Sub image origin should map to (1, 0), got %v", got)
	}
}
