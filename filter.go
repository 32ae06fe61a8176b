package imgproc

import "sort"

// AverageFilter smooths a color buffer with a uniform size x size kernel.
func AverageFilter(img *RGBAImage, size int) *RGBAImage {
	return Convolve(img, AverageKernel(size))
}

// AverageFilterGray smooths a grayscale buffer with a uniform kernel.
func AverageFilterGray(img *GrayImage, size int) *GrayImage {
	return ConvolveGray(img, AverageKernel(size))
}

// GaussianFilter smooths a color buffer with a Gaussian kernel.
func GaussianFilter(img *RGBAImage, size int, sigma float64) *RGBAImage {
	return Convolve(img, GaussianKernel(size, sigma))
}

// GaussianFilterGray smooths a grayscale buffer with a Gaussian kernel.
func GaussianFilterGray(img *GrayImage, size int, sigma float64) *GrayImage {
	return ConvolveGray(img, GaussianKernel(size, sigma))
}

// MedianFilter replaces each sample with the median of its edge-replicated
// size x size window, each channel independently. Order statistics rather
// than a weighted sum, so edges survive better than under the linear
// filters. Even sizes are incremented to the next odd size.
func MedianFilter(img *RGBAImage, size int) *RGBAImage {
	size = oddSize(size)
	width, height := img.Width(), img.Height()
	dst := NewRGBAImage(width, height)
	half := size / 2

	winR := make([]uint8, size*size)
	winG := make([]uint8, size*size)
	winB := make([]uint8, size*size)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			n := 0
			for ky := -half; ky <= half; ky++ {
				for kx := -half; kx <= half; kx++ {
					sx := clampInt(x+kx, 0, width-1)
					sy := clampInt(y+ky, 0, height-1)
					c := img.RGBAAt(sx, sy)
					winR[n], winG[n], winB[n] = c.R, c.G, c.B
					n++
				}
			}
			dst.SetRGB(x, y, RGB{
				R: medianOf(winR),
				G: medianOf(winG),
				B: medianOf(winB),
			})
		}
	}
	return dst
}

// MedianFilterGray applies the median filter to a grayscale buffer.
func MedianFilterGray(img *GrayImage, size int) *GrayImage {
	size = oddSize(size)
	width, height := img.Width(), img.Height()
	dst := NewGrayImage(width, height)
	half := size / 2

	win := make([]uint8, size*size)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			n := 0
			for ky := -half; ky <= half; ky++ {
				for kx := -half; kx <= half; kx++ {
					sx := clampInt(x+kx, 0, width-1)
					sy := clampInt(y+ky, 0, height-1)
					win[n] = img.Gray.Pix[sy*img.Stride+sx]
					n++
				}
			}
			dst.Gray.Pix[y*dst.Stride+x] = medianOf(win)
		}
	}
	return dst
}

// medianOf sorts the window in place and returns its median. Odd kernel
// sizes give an odd window count, so a single middle element exists.
func medianOf(win []uint8) uint8 {
	sort.Slice(win, func(i, j int) bool { return win[i] < win[j] })
	return win[len(win)/2]
}
