package imgproc

import (
	"fmt"

	"gocv.io/x/gocv"
)

// Canny produces a binary edge map through OpenCV's hysteresis detector.
// The heavy lifting (Gaussian smoothing, non-maximum suppression, two
// threshold edge tracking) stays in gocv; this wrapper validates the
// thresholds and converts buffers at the boundary.
func Canny(gray *GrayImage, lowThreshold, highThreshold float64) (*GrayImage, error) {
	if lowThreshold < 0 || highThreshold < 0 {
		return nil, fmt.Errorf("%w: canny thresholds must be non-negative, got %g/%g",
			ErrInvalidParameter, lowThreshold, highThreshold)
	}
	if lowThreshold > highThreshold {
		return nil, fmt.Errorf("%w: canny low threshold %g above high threshold %g",
			ErrInvalidParameter, lowThreshold, highThreshold)
	}

	mat := grayToMat(gray)
	defer mat.Close()

	edges := gocv.NewMat()
	defer edges.Close()
	gocv.Canny(mat, &edges, float32(lowThreshold), float32(highThreshold))

	return matToGray(edges), nil
}

// grayToMat copies a grayscale buffer into a single-channel Mat.
func grayToMat(img *GrayImage) gocv.Mat {
	mat := gocv.NewMatWithSize(img.Height(), img.Width(), gocv.MatTypeCV8U)
	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			mat.SetUCharAt(y, x, img.Gray.Pix[y*img.Stride+x])
		}
	}
	return mat
}

// matToGray copies a single-channel Mat back into a grayscale buffer.
func matToGray(mat gocv.Mat) *GrayImage {
	height, width := mat.Rows(), mat.Cols()
	img := NewGrayImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Gray.Pix[y*img.Stride+x] = mat.GetUCharAt(y, x)
		}
	}
	return img
}
