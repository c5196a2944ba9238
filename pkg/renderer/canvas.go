package renderer

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"
	"math"
	"strconv"

	"github.com/ljanyst/ray-tracer/pkg/core"
)

// maxPPMLine is the longest line a PPM file may contain
const maxPPMLine = 70

// Canvas is a grid of unclamped colors. Concurrent writers are safe as
// long as they touch disjoint pixels.
type Canvas struct {
	width  int
	height int
	pixels []core.Tuple
}

// NewCanvas creates a black canvas
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		width:  width,
		height: height,
		pixels: make([]core.Tuple, width*height),
	}
}

// Width returns the canvas width in pixels
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in pixels
func (c *Canvas) Height() int { return c.height }

// Set writes the color of pixel (x, y). Out-of-range writes are dropped.
func (c *Canvas) Set(x, y int, col core.Tuple) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	c.pixels[y*c.width+x] = col
}

// At returns the color of pixel (x, y)
func (c *Canvas) At(x, y int) core.Tuple {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return core.Black
	}
	return c.pixels[y*c.width+x]
}

// toByte scales a color channel to 0..255
func toByte(v float64) uint8 {
	scaled := math.Round(v * 255)
	if scaled < 0 {
		return 0
	}
	if scaled > 255 {
		return 255
	}
	return uint8(scaled)
}

// toRGBA converts a color to an opaque 8-bit RGBA value
func toRGBA(col core.Tuple) color.RGBA {
	return color.RGBA{R: toByte(col.R()), G: toByte(col.G()), B: toByte(col.B()), A: 255}
}

// WritePPM writes the canvas as a plain (P3) PPM. Each pixel row starts a
// new line and no line exceeds 70 characters.
func (c *Canvas) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", c.width, c.height); err != nil {
		return fmt.Errorf("failed to write PPM header: %w", err)
	}

	for y := 0; y < c.height; y++ {
		lineLen := 0
		for x := 0; x < c.width; x++ {
			rgba := toRGBA(c.At(x, y))
			for _, v := range []uint8{rgba.R, rgba.G, rgba.B} {
				s := strconv.Itoa(int(v))
				switch {
				case lineLen == 0:
				case lineLen+1+len(s) > maxPPMLine:
					bw.WriteByte('\n')
					lineLen = 0
				default:
					bw.WriteByte(' ')
					lineLen++
				}
				bw.WriteString(s)
				lineLen += len(s)
			}
		}
		bw.WriteByte('\n')
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write PPM data: %w", err)
	}
	return nil
}

// Image converts the canvas to an 8-bit RGBA image, clamping every channel
func (c *Canvas) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			img.SetRGBA(x, y, toRGBA(c.At(x, y)))
		}
	}
	return img
}

// SubImage converts the pixels within bounds to an RGBA image whose origin
// is the top-left corner of bounds
func (c *Canvas) SubImage(bounds image.Rectangle) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			img.SetRGBA(x-bounds.Min.X, y-bounds.Min.Y, toRGBA(c.At(x, y)))
		}
	}
	return img
}
