package imgproc

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// FrequencyMode selects which side of the cutoff radius a frequency filter
// keeps.
type FrequencyMode string

const (
	LowPass  FrequencyMode = "low"
	HighPass FrequencyMode = "high"
)

// Spectrum carries the visualization byproducts of a frequency filter: the
// log-magnitude spectrum before and after masking, and the mask itself
// rendered as a binary buffer. None of it is part of the numeric contract.
type Spectrum struct {
	Before *GrayImage
	After  *GrayImage
	Mask   *GrayImage
}

// FilterFrequency applies an ideal (hard-cutoff) circular frequency filter
// to a grayscale buffer: forward 2D DFT, center shift, boolean circular
// mask at the cutoff radius, unshift, inverse DFT, magnitude, and a min-max
// rescale to [0, 255]. Ringing artifacts are inherent to the hard cutoff.
// A degenerate constant result (cutoff 0 low-pass keeps only the DC term)
// skips the rescale and clamps instead.
func FilterFrequency(gray *GrayImage, mode FrequencyMode, cutoff float64) (*GrayImage, *Spectrum, error) {
	if mode != LowPass && mode != HighPass {
		return nil, nil, fmt.Errorf("%w: frequency mode %q", ErrInvalidParameter, mode)
	}

	width, height := gray.Width(), gray.Height()
	shifted := shiftSpectrum(fft.FFT2Real(gray.Plane()))
	before := logMagnitude(shifted)

	mask := circularMask(width, height, cutoff, mode)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if !mask[y][x] {
				shifted[y][x] = 0
			}
		}
	}
	after := logMagnitude(shifted)

	filtered := magnitude(fft.IFFT2(unshiftSpectrum(shifted)))

	return filtered.Rescaled(), &Spectrum{
		Before: before.Rescaled(),
		After:  after.Rescaled(),
		Mask:   maskImage(mask),
	}, nil
}

// maskPlane applies one side of the ideal filter to a float plane and
// returns the unscaled spatial magnitude. The hybrid synthesizer combines
// these raw planes before any display rescale.
func maskPlane(p Plane, mode FrequencyMode, cutoff float64) Plane {
	width, height := p.Dims()
	shifted := shiftSpectrum(fft.FFT2Real(p))
	mask := circularMask(width, height, cutoff, mode)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if !mask[y][x] {
				shifted[y][x] = 0
			}
		}
	}
	return magnitude(fft.IFFT2(unshiftSpectrum(shifted)))
}

// circularMask marks the spatial frequencies within (low-pass) or beyond
// (high-pass) the Euclidean cutoff radius from the centered zero frequency.
func circularMask(width, height int, cutoff float64, mode FrequencyMode) [][]bool {
	crow, ccol := height/2, width/2
	mask := make([][]bool, height)
	for y := range mask {
		mask[y] = make([]bool, width)
		for x := range mask[y] {
			dx, dy := float64(x-ccol), float64(y-crow)
			inside := math.Sqrt(dx*dx+dy*dy) <= cutoff
			if mode == LowPass {
				mask[y][x] = inside
			} else {
				mask[y][x] = !inside
			}
		}
	}
	return mask
}

// shiftSpectrum rolls the spectrum so the zero frequency sits at the
// center, the 2D analogue of fftshift.
func shiftSpectrum(f [][]complex128) [][]complex128 {
	height := len(f)
	width := len(f[0])
	hy, hx := height/2, width/2
	out := make([][]complex128, height)
	for y := range out {
		out[y] = make([]complex128, width)
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			out[(y+hy)%height][(x+hx)%width] = f[y][x]
		}
	}
	return out
}

// unshiftSpectrum is the exact inverse of shiftSpectrum.
func unshiftSpectrum(f [][]complex128) [][]complex128 {
	height := len(f)
	width := len(f[0])
	hy, hx := height/2, width/2
	out := make([][]complex128, height)
	for y := range out {
		out[y] = make([]complex128, width)
		for x := 0; x < width; x++ {
			out[y][x] = f[(y+hy)%height][(x+hx)%width]
		}
	}
	return out
}

// magnitude takes the element-wise modulus of a complex spectrum. The
// inverse transform of a masked spectrum is only near-real, so the modulus
// recovers a usable spatial plane.
func magnitude(f [][]complex128) Plane {
	out := make(Plane, len(f))
	for y, row := range f {
		out[y] = make([]float64, len(row))
		for x, v := range row {
			out[y][x] = cmplx.Abs(v)
		}
	}
	return out
}

// logMagnitude compresses a spectrum for display as 20*log(|F|+1).
func logMagnitude(f [][]complex128) Plane {
	out := make(Plane, len(f))
	for y, row := range f {
		out[y] = make([]float64, len(row))
		for x, v := range row {
			out[y][x] = 20 * math.Log(cmplx.Abs(v)+1)
		}
	}
	return out
}

func maskImage(mask [][]bool) *GrayImage {
	height := len(mask)
	width := len(mask[0])
	img := NewGrayImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if mask[y][x] {
				img.Gray.Pix[y*img.Stride+x] = 255
			}
		}
	}
	return img
}
