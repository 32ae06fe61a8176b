package imgproc

import "math"

// EdgeResult holds the outputs of a gradient edge detector. GradX, GradY,
// and Magnitude are each independently rescaled to [0, 255] by their own
// maximum, so the gradient buffers are not on a scale comparable with the
// magnitude buffer. Callers depend on that behavior.
type EdgeResult struct {
	GradX     *GrayImage
	GradY     *GrayImage
	Magnitude *GrayImage
}

// Sobel runs the Sobel detector: 3x3 center-weighted gradient kernels with
// edge-replicated borders.
func Sobel(gray *GrayImage) *EdgeResult {
	kx := NewKernel([][]float64{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	})
	ky := NewKernel([][]float64{
		{-1, -2, -1},
		{0, 0, 0},
		{1, 2, 1},
	})
	return gradientEdges(gray, kx, ky, PadReplicate)
}

// Prewitt runs the Prewitt detector: the Sobel shape with uniform
// coefficients instead of a weighted center row.
func Prewitt(gray *GrayImage) *EdgeResult {
	kx := NewKernel([][]float64{
		{-1, 0, 1},
		{-1, 0, 1},
		{-1, 0, 1},
	})
	ky := NewKernel([][]float64{
		{-1, -1, -1},
		{0, 0, 0},
		{1, 1, 1},
	})
	return gradientEdges(gray, kx, ky, PadReplicate)
}

// Roberts runs the Roberts cross detector. Its 2x2 kernels are centered
// asymmetrically, so borders are zero padded instead of replicated.
func Roberts(gray *GrayImage) *EdgeResult {
	kx := NewKernel([][]float64{
		{1, 0},
		{0, -1},
	})
	ky := NewKernel([][]float64{
		{0, 1},
		{-1, 0},
	})
	return gradientEdges(gray, kx, ky, PadZero)
}

func gradientEdges(gray *GrayImage, kx, ky *Kernel, pad PadMode) *EdgeResult {
	p := gray.Plane()
	gx := ConvolvePlane(p, kx, pad)
	gy := ConvolvePlane(p, ky, pad)

	width, height := p.Dims()
	mag := NewPlane(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			mag[y][x] = math.Sqrt(gx[y][x]*gx[y][x] + gy[y][x]*gy[y][x])
			gx[y][x] = math.Abs(gx[y][x])
			gy[y][x] = math.Abs(gy[y][x])
		}
	}

	return &EdgeResult{
		GradX:     scaleByMax(gx),
		GradY:     scaleByMax(gy),
		Magnitude: scaleByMax(mag),
	}
}

// scaleByMax quantizes a non-negative plane after dividing by its maximum
// and multiplying by 255. A zero maximum (constant input image) skips the
// rescale so the all-zero gradient survives instead of dividing by zero.
func scaleByMax(p Plane) *GrayImage {
	_, max := p.Range()
	if max <= 0 {
		return p.Clamped()
	}
	width, height := p.Dims()
	img := NewGrayImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Gray.Pix[y*img.Stride+x] = clampUint8(p[y][x] / max * 255)
		}
	}
	return img
}
