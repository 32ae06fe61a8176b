package imgproc

// Histogram counts the grayscale buffer's samples into 256 intensity bins.
func Histogram(img *GrayImage) [256]int {
	var hist [256]int
	width, height := img.Width(), img.Height()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			hist[img.Gray.Pix[y*img.Stride+x]]++
		}
	}
	return hist
}

// CDF accumulates a histogram into a cumulative distribution normalized so
// the final bin is 1. An empty histogram yields all zeros.
func CDF(hist [256]int) [256]float64 {
	var cdf [256]float64
	total := 0
	for i, n := range hist {
		total += n
		cdf[i] = float64(total)
	}
	if total == 0 {
		return [256]float64{}
	}
	for i := range cdf {
		cdf[i] /= float64(total)
	}
	return cdf
}

// equalizeLUT builds the standard equalization lookup table mapping each
// intensity level to round(255 * CDF(level)).
func equalizeLUT(hist [256]int) [256]uint8 {
	cdf := CDF(hist)
	var lut [256]uint8
	for i := range lut {
		lut[i] = clampUint8(255 * cdf[i])
	}
	return lut
}
