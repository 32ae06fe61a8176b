// Package imgproc implements classical 2D image-processing operations:
// noise injection, spatial filtering, gradient-based edge detection,
// histogram enhancement, ideal frequency-domain filtering, and hybrid-image
// synthesis. Every operation is a pure function: it never mutates its input
// buffer and always returns a freshly allocated result quantized to 8 bits.
package imgproc

import (
	"image"
	"image/color"
	"math"
)

// GrayImage wraps image.Gray, the single-channel pixel buffer every
// grayscale operation consumes and produces.
type GrayImage struct {
	*image.Gray
}

// NewGrayImage creates a zeroed grayscale buffer of the given dimensions.
func NewGrayImage(width, height int) *GrayImage {
	return &GrayImage{Gray: image.NewGray(image.Rect(0, 0, width, height))}
}

// GrayImageFromImage converts any image.Image to a GrayImage.
func GrayImageFromImage(img image.Image) *GrayImage {
	bounds := img.Bounds()
	gray := NewGrayImage(bounds.Dx(), bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			gray.Set(x-bounds.Min.X, y-bounds.Min.Y, img.At(x, y))
		}
	}
	return gray
}

// Width returns the buffer width.
func (img *GrayImage) Width() int {
	return img.Bounds().Dx()
}

// Height returns the buffer height.
func (img *GrayImage) Height() int {
	return img.Bounds().Dy()
}

// GetGray returns the sample at (x, y).
func (img *GrayImage) GetGray(x, y int) uint8 {
	return img.Gray.Pix[y*img.Stride+x]
}

// SetGrayValue sets the sample at (x, y).
func (img *GrayImage) SetGrayValue(x, y int, v uint8) {
	img.Gray.Pix[y*img.Stride+x] = v
}

// Clone creates a deep copy of the buffer.
func (img *GrayImage) Clone() *GrayImage {
	clone := NewGrayImage(img.Width(), img.Height())
	copy(clone.Pix, img.Pix)
	return clone
}

// Plane returns the buffer as a float64 working plane.
func (img *GrayImage) Plane() Plane {
	width, height := img.Width(), img.Height()
	p := NewPlane(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			p[y][x] = float64(img.Gray.Pix[y*img.Stride+x])
		}
	}
	return p
}

// RGB represents a color with 8-bit channels.
type RGB struct {
	R, G, B uint8
}

// RGBAImage wraps image.RGBA, the 3-channel pixel buffer. The alpha channel
// is carried as 255 and never processed.
type RGBAImage struct {
	*image.RGBA
}

// NewRGBAImage creates a zeroed color buffer of the given dimensions.
func NewRGBAImage(width, height int) *RGBAImage {
	return &RGBAImage{RGBA: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// RGBAImageFromImage converts any image.Image to an RGBAImage.
func RGBAImageFromImage(img image.Image) *RGBAImage {
	bounds := img.Bounds()
	rgba := NewRGBAImage(bounds.Dx(), bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			rgba.Set(x-bounds.Min.X, y-bounds.Min.Y, img.At(x, y))
		}
	}
	return rgba
}

// Width returns the buffer width.
func (img *RGBAImage) Width() int {
	return img.Bounds().Dx()
}

// Height returns the buffer height.
func (img *RGBAImage) Height() int {
	return img.Bounds().Dy()
}

// GetRGB returns the color at (x, y).
func (img *RGBAImage) GetRGB(x, y int) RGB {
	c := img.RGBAAt(x, y)
	return RGB{R: c.R, G: c.G, B: c.B}
}

// SetRGB sets the color at (x, y) with full alpha.
func (img *RGBAImage) SetRGB(x, y int, c RGB) {
	img.SetRGBA(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
}

// Clone creates a deep copy of the buffer.
func (img *RGBAImage) Clone() *RGBAImage {
	clone := NewRGBAImage(img.Width(), img.Height())
	copy(clone.Pix, img.Pix)
	return clone
}

// Plane is a 2D float64 working buffer used for intermediate computation
// between 8-bit quantization boundaries: gradients, spectra, and unscaled
// frequency components.
type Plane [][]float64

// NewPlane allocates a zeroed plane of the given dimensions.
func NewPlane(width, height int) Plane {
	p := make(Plane, height)
	for y := range p {
		p[y] = make([]float64, width)
	}
	return p
}

// Dims returns the plane's width and height. A nil plane is 0x0.
func (p Plane) Dims() (width, height int) {
	if len(p) == 0 {
		return 0, 0
	}
	return len(p[0]), len(p)
}

// Range returns the minimum and maximum values in the plane.
func (p Plane) Range() (min, max float64) {
	min, max = math.Inf(1), math.Inf(-1)
	for _, row := range p {
		for _, v := range row {
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
	}
	return min, max
}

// Clamped quantizes the plane to a grayscale buffer, clipping each value
// to [0, 255] and rounding.
func (p Plane) Clamped() *GrayImage {
	width, height := p.Dims()
	img := NewGrayImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Gray.Pix[y*img.Stride+x] = clampUint8(p[y][x])
		}
	}
	return img
}

// Rescaled quantizes the plane to a grayscale buffer after linearly mapping
// the observed [min, max] range onto [0, 255]. A constant plane cannot be
// rescaled, so it falls back to clamping.
func (p Plane) Rescaled() *GrayImage {
	min, max := p.Range()
	if max <= min {
		return p.Clamped()
	}
	width, height := p.Dims()
	img := NewGrayImage(width, height)
	scale := 255 / (max - min)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Gray.Pix[y*img.Stride+x] = clampUint8((p[y][x] - min) * scale)
		}
	}
	return img
}

// clampInt clamps an integer to the given range.
func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// clampUint8 clamps a float64 to [0, 255] and converts to uint8.
func clampUint8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(math.Round(v))
}
