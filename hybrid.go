package imgproc

// HybridResult holds a synthesized hybrid image. Low and High are the
// independently min-max rescaled display copies of the two frequency
// components; the Hybrid buffer is combined from the unscaled float planes,
// never from those display copies.
type HybridResult struct {
	Hybrid *GrayImage
	Low    *GrayImage
	High   *GrayImage
}

// MakeHybrid combines the low frequencies of imageA with the high
// frequencies of imageB. When dimensions differ, imageB is resampled to
// imageA's size first. The two unscaled components are summed with equal
// 0.5 weights and quantized to bytes.
func MakeHybrid(imageA, imageB *GrayImage, cutoffLow, cutoffHigh float64) *HybridResult {
	width, height := imageA.Width(), imageA.Height()
	if imageB.Width() != width || imageB.Height() != height {
		imageB = ResizeGray(imageB, width, height)
	}

	low := maskPlane(imageA.Plane(), LowPass, cutoffLow)
	high := maskPlane(imageB.Plane(), HighPass, cutoffHigh)

	combined := NewPlane(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			combined[y][x] = 0.5*low[y][x] + 0.5*high[y][x]
		}
	}

	return &HybridResult{
		Hybrid: combined.Clamped(),
		Low:    low.Rescaled(),
		High:   high.Rescaled(),
	}
}
