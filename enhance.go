package imgproc

import (
	"fmt"
	"image/color"
)

// NormalizeMode selects the target range of Normalize. Both modes quantize
// to bytes; RangeUnit passes through a unit interval before the 255 scale.
type NormalizeMode string

const (
	RangeUnit NormalizeMode = "0-1"
	RangeByte NormalizeMode = "0-255"
)

// EqualizeHistogram redistributes a color buffer's intensities by
// equalizing only the luma channel: each pixel moves through YCbCr, the Y
// histogram's CDF remaps Y, and chroma is carried back untouched.
func EqualizeHistogram(img *RGBAImage) *RGBAImage {
	width, height := img.Width(), img.Height()

	// Luma histogram over the whole buffer first, then the per-pixel remap.
	var hist [256]int
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := img.RGBAAt(x, y)
			luma, _, _ := color.RGBToYCbCr(c.R, c.G, c.B)
			hist[luma]++
		}
	}
	lut := equalizeLUT(hist)

	dst := NewRGBAImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := img.RGBAAt(x, y)
			luma, cb, cr := color.RGBToYCbCr(c.R, c.G, c.B)
			r, g, b := color.YCbCrToRGB(lut[luma], cb, cr)
			dst.SetRGB(x, y, RGB{R: r, G: g, B: b})
		}
	}
	return dst
}

// EqualizeHistogramGray equalizes a grayscale buffer directly.
func EqualizeHistogramGray(img *GrayImage) *GrayImage {
	lut := equalizeLUT(Histogram(img))
	width, height := img.Width(), img.Height()
	dst := NewGrayImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			dst.Gray.Pix[y*dst.Stride+x] = lut[img.Gray.Pix[y*img.Stride+x]]
		}
	}
	return dst
}

// Normalize rescales the buffer's observed [min, max] sample range linearly
// onto the selected target range. A buffer whose maximum is zero or whose
// range is empty cannot be rescaled and is returned unchanged (a copy).
func Normalize(img *RGBAImage, mode NormalizeMode) (*RGBAImage, error) {
	scale, err := normalizeScale(mode)
	if err != nil {
		return nil, err
	}

	min, max := 255, 0
	width, height := img.Width(), img.Height()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := img.RGBAAt(x, y)
			for _, v := range [3]uint8{c.R, c.G, c.B} {
				if int(v) < min {
					min = int(v)
				}
				if int(v) > max {
					max = int(v)
				}
			}
		}
	}
	if max <= 0 || max == min {
		return img.Clone(), nil
	}

	span := float64(max - min)
	dst := NewRGBAImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := img.RGBAAt(x, y)
			dst.SetRGB(x, y, RGB{
				R: clampUint8(float64(int(c.R)-min) / span * scale),
				G: clampUint8(float64(int(c.G)-min) / span * scale),
				B: clampUint8(float64(int(c.B)-min) / span * scale),
			})
		}
	}
	return dst, nil
}

// NormalizeGray is Normalize for grayscale buffers.
func NormalizeGray(img *GrayImage, mode NormalizeMode) (*GrayImage, error) {
	scale, err := normalizeScale(mode)
	if err != nil {
		return nil, err
	}

	min, max := 255, 0
	width, height := img.Width(), img.Height()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := int(img.Gray.Pix[y*img.Stride+x])
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
	}
	if max <= 0 || max == min {
		return img.Clone(), nil
	}

	span := float64(max - min)
	dst := NewGrayImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := float64(int(img.Gray.Pix[y*img.Stride+x])-min) / span * scale
			dst.Gray.Pix[y*dst.Stride+x] = clampUint8(v)
		}
	}
	return dst, nil
}

// normalizeScale resolves the quantization factor for a mode tag. RangeUnit
// normalizes into [0, 1] and scales by 255 on output; RangeByte maps
// straight onto [0, 255]. The arithmetic is identical, the tag is kept so
// unknown modes surface to the caller.
func normalizeScale(mode NormalizeMode) (float64, error) {
	switch mode {
	case RangeUnit, RangeByte:
		return 255, nil
	default:
		return 0, fmt.Errorf("%w: normalize range %q", ErrInvalidParameter, mode)
	}
}
