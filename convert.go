package imgproc

// ToGrayscale converts a color buffer to grayscale using the BT.601
// luminance formula: Y = 0.299*R + 0.587*G + 0.114*B.
func ToGrayscale(img *RGBAImage) *GrayImage {
	width, height := img.Width(), img.Height()
	gray := NewGrayImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := img.RGBAAt(x, y)
			// Integer math, scaled by 1000 with rounding
			lum := (299*int(c.R) + 587*int(c.G) + 114*int(c.B) + 500) / 1000
			if lum > 255 {
				lum = 255
			}
			gray.Gray.Pix[y*gray.Stride+x] = uint8(lum)
		}
	}
	return gray
}

// ToGrayscalePlane converts a color buffer to a grayscale float plane,
// keeping full precision for downstream frequency-domain work.
func ToGrayscalePlane(img *RGBAImage) Plane {
	width, height := img.Width(), img.Height()
	p := NewPlane(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := img.RGBAAt(x, y)
			p[y][x] = 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
		}
	}
	return p
}

// GrayscaleToRGBA expands a grayscale buffer to a color buffer by
// replicating the luma value across all three channels.
func GrayscaleToRGBA(gray *GrayImage) *RGBAImage {
	width, height := gray.Width(), gray.Height()
	rgba := NewRGBAImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := gray.Gray.Pix[y*gray.Stride+x]
			rgba.SetRGB(x, y, RGB{R: v, G: v, B: v})
		}
	}
	return rgba
}
