package imgproc

import "math"

// PadMode selects how samples outside the buffer are read while the kernel
// slides over border pixels.
type PadMode int

const (
	// PadReplicate repeats the nearest edge sample. Avoids the artificial
	// darkening that zero padding causes at borders.
	PadReplicate PadMode = iota

	// PadZero reads zero outside the buffer. Used by the Roberts detector,
	// whose 2x2 footprint is centered asymmetrically.
	PadZero
)

// Kernel is a square, odd-sized matrix of convolution weights.
type Kernel struct {
	Values [][]float64
	Size   int
}

// NewKernel creates a kernel from a square 2D slice.
func NewKernel(values [][]float64) *Kernel {
	return &Kernel{Values: values, Size: len(values)}
}

// oddSize forces an even requested kernel size up to the next odd size.
func oddSize(size int) int {
	if size < 1 {
		size = 1
	}
	if size%2 == 0 {
		size++
	}
	return size
}

// AverageKernel returns a uniform size x size kernel with weight 1/size².
// Even sizes are incremented to the next odd size.
func AverageKernel(size int) *Kernel {
	size = oddSize(size)
	w := 1 / float64(size*size)
	values := make([][]float64, size)
	for i := range values {
		values[i] = make([]float64, size)
		for j := range values[i] {
			values[i][j] = w
		}
	}
	return NewKernel(values)
}

// GaussianKernel returns a size x size Gaussian kernel with the given sigma,
// normalized so the weights sum to 1. Even sizes are incremented to the
// next odd size.
func GaussianKernel(size int, sigma float64) *Kernel {
	size = oddSize(size)
	center := size / 2
	values := make([][]float64, size)
	sum := 0.0
	for i := range values {
		values[i] = make([]float64, size)
		for j := range values[i] {
			x, y := float64(i-center), float64(j-center)
			v := math.Exp(-(x*x + y*y) / (2 * sigma * sigma))
			values[i][j] = v
			sum += v
		}
	}
	for i := range values {
		for j := range values[i] {
			values[i][j] /= sum
		}
	}
	return NewKernel(values)
}

// Convolve applies a kernel to a color buffer, each channel independently,
// with edge-replicated borders. Results are accumulated in floating point
// and clipped to [0, 255].
func Convolve(img *RGBAImage, kernel *Kernel) *RGBAImage {
	width, height := img.Width(), img.Height()
	dst := NewRGBAImage(width, height)
	half := kernel.Size / 2

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var sumR, sumG, sumB float64
			for ky := 0; ky < kernel.Size; ky++ {
				for kx := 0; kx < kernel.Size; kx++ {
					sx := clampInt(x+kx-half, 0, width-1)
					sy := clampInt(y+ky-half, 0, height-1)
					c := img.RGBAAt(sx, sy)
					k := kernel.Values[ky][kx]
					sumR += float64(c.R) * k
					sumG += float64(c.G) * k
					sumB += float64(c.B) * k
				}
			}
			dst.SetRGB(x, y, RGB{
				R: clampUint8(sumR),
				G: clampUint8(sumG),
				B: clampUint8(sumB),
			})
		}
	}
	return dst
}

// ConvolveGray applies a kernel to a grayscale buffer with edge-replicated
// borders, clipping to [0, 255].
func ConvolveGray(img *GrayImage, kernel *Kernel) *GrayImage {
	return ConvolvePlane(img.Plane(), kernel, PadReplicate).Clamped()
}

// ConvolvePlane applies a kernel to a float plane and returns the raw
// weighted sums without clamping. The pad mode controls reads outside the
// plane.
func ConvolvePlane(p Plane, kernel *Kernel, pad PadMode) Plane {
	width, height := p.Dims()
	dst := NewPlane(width, height)
	half := kernel.Size / 2

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var sum float64
			for ky := 0; ky < kernel.Size; ky++ {
				for kx := 0; kx < kernel.Size; kx++ {
					sx := x + kx - half
					sy := y + ky - half
					var v float64
					switch pad {
					case PadZero:
						if sx >= 0 && sx < width && sy >= 0 && sy < height {
							v = p[sy][sx]
						}
					default:
						v = p[clampInt(sy, 0, height-1)][clampInt(sx, 0, width-1)]
					}
					sum += v * kernel.Values[ky][kx]
				}
			}
			dst[y][x] = sum
		}
	}
	return dst
}
