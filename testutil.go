package imgproc

import "math"

// CreateSolidGray creates a constant-value grayscale test buffer.
func CreateSolidGray(width, height int, v uint8) *GrayImage {
	img := NewGrayImage(width, height)
	for i := range img.Pix {
		img.Pix[i] = v
	}
	return img
}

// CreateSolidImage creates a constant-color test buffer.
func CreateSolidImage(width, height int, c RGB) *RGBAImage {
	img := NewRGBAImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGB(x, y, c)
		}
	}
	return img
}

// CreateGradientGray creates a horizontal 0..255 grayscale gradient.
func CreateGradientGray(width, height int) *GrayImage {
	img := NewGrayImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Gray.Pix[y*img.Stride+x] = uint8(255 * x / (width - 1))
		}
	}
	return img
}

// CreateCheckerboardGray creates a 0/255 checkerboard with the given
// square size, the classic pattern for exercising edges and filters.
func CreateCheckerboardGray(width, height, squareSize int) *GrayImage {
	img := NewGrayImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if ((x/squareSize)+(y/squareSize))%2 == 0 {
				img.Gray.Pix[y*img.Stride+x] = 255
			}
		}
	}
	return img
}

// CreateCheckerboardImage is CreateCheckerboardGray expanded to color.
func CreateCheckerboardImage(width, height, squareSize int) *RGBAImage {
	return GrayscaleToRGBA(CreateCheckerboardGray(width, height, squareSize))
}

// CalculateMSEGray calculates the mean squared error between two grayscale
// buffers, or MaxFloat64 if the dimensions differ.
func CalculateMSEGray(a, b *GrayImage) float64 {
	if a.Width() != b.Width() || a.Height() != b.Height() {
		return math.MaxFloat64
	}
	var sumSq float64
	width, height := a.Width(), a.Height()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			d := float64(a.Gray.Pix[y*a.Stride+x]) - float64(b.Gray.Pix[y*b.Stride+x])
			sumSq += d * d
		}
	}
	return sumSq / float64(width*height)
}

// CalculateMSE calculates the mean squared error between two color buffers
// over the three color channels.
func CalculateMSE(a, b *RGBAImage) float64 {
	if a.Width() != b.Width() || a.Height() != b.Height() {
		return math.MaxFloat64
	}
	var sumSq float64
	width, height := a.Width(), a.Height()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c1, c2 := a.RGBAAt(x, y), b.RGBAAt(x, y)
			dr := float64(c1.R) - float64(c2.R)
			dg := float64(c1.G) - float64(c2.G)
			db := float64(c1.B) - float64(c2.B)
			sumSq += dr*dr + dg*dg + db*db
		}
	}
	return sumSq / float64(width*height*3)
}
