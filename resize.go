package imgproc

import "github.com/disintegration/imaging"

// ResizeGray resamples a grayscale buffer to the given dimensions with a
// Lanczos filter. The hybrid synthesizer uses this to reconcile input
// dimensions; the choice of resampling filter is not part of the numeric
// contract.
func ResizeGray(img *GrayImage, width, height int) *GrayImage {
	return GrayImageFromImage(imaging.Resize(img.Gray, width, height, imaging.Lanczos))
}

// Resize resamples a color buffer to the given dimensions.
func Resize(img *RGBAImage, width, height int) *RGBAImage {
	return RGBAImageFromImage(imaging.Resize(img.RGBA, width, height, imaging.Lanczos))
}
