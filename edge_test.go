package imgproc

import "testing"

func TestEdgeDetectorsOnConstantImage(t *testing.T) {
	img := CreateSolidGray(8, 8, 100)
	tests := []struct {
		name     string
		result   *EdgeResult
		interior bool // Roberts reads zeros past the border, so only its interior is flat
	}{
		{"sobel", Sobel(img), false},
		{"prewitt", Prewitt(img), false},
		{"roberts", Roberts(img), true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			lo, hi := 0, 8
			if tc.interior {
				lo, hi = 1, 7
			}
			for _, buf := range []*GrayImage{tc.result.GradX, tc.result.GradY, tc.result.Magnitude} {
				for y := lo; y < hi; y++ {
					for x := lo; x < hi; x++ {
						if v := buf.GetGray(x, y); v != 0 {
							t.Fatalf("(%d,%d): expected zero gradient, got %d", x, y, v)
						}
					}
				}
			}
		})
	}
}

func TestSobelHorizontalGradient(t *testing.T) {
	img := CreateGradientGray(16, 16)
	result := Sobel(img)

	// Rows are identical, so the vertical gradient is zero everywhere and
	// the zero-max guard must keep it zero instead of dividing by zero.
	for i, v := range result.GradY.Pix {
		if v != 0 {
			t.Fatalf("GradY should be all zero on a horizontal gradient, got %d at %d", v, i)
		}
	}

	// Each rescaled buffer peaks at exactly 255.
	maxOf := func(img *GrayImage) uint8 {
		var max uint8
		for _, v := range img.Pix {
			if v > max {
				max = v
			}
		}
		return max
	}
	if maxOf(result.GradX) != 255 {
		t.Errorf("GradX maximum should rescale to 255, got %d", maxOf(result.GradX))
	}
	if maxOf(result.Magnitude) != 255 {
		t.Errorf("Magnitude maximum should rescale to 255, got %d", maxOf(result.Magnitude))
	}
}

func TestEdgeDetectorsLocateVerticalEdge(t *testing.T) {
	// Left half black, right half white; the strongest magnitude response
	// must sit on the boundary columns.
	img := NewGrayImage(16, 16)
	for y := 0; y < 16; y++ {
		for x := 8; x < 16; x++ {
			img.SetGrayValue(x, y, 255)
		}
	}
	for _, tc := range []struct {
		name   string
		result *EdgeResult
	}{
		{"sobel", Sobel(img)},
		{"prewitt", Prewitt(img)},
		{"roberts", Roberts(img)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			mag := tc.result.Magnitude
			if mag.GetGray(7, 8) != 255 && mag.GetGray(8, 8) != 255 {
				t.Errorf("Expected peak response at the boundary, got %d/%d",
					mag.GetGray(7, 8), mag.GetGray(8, 8))
			}
			if v := mag.GetGray(2, 8); v != 0 {
				t.Errorf("Expected zero response far from the edge, got %d", v)
			}
		})
	}
}

func TestEdgeResultShape(t *testing.T) {
	img := CreateGradientGray(13, 7)
	for _, result := range []*EdgeResult{Sobel(img), Prewitt(img), Roberts(img)} {
		for _, buf := range []*GrayImage{result.GradX, result.GradY, result.Magnitude} {
			if buf.Width() != 13 || buf.Height() != 7 {
				t.Fatalf("Shape changed to %dx%d", buf.Width(), buf.Height())
			}
		}
	}
}

func TestEdgeDetectorsDoNotMutateInput(t *testing.T) {
	img := CreateCheckerboardGray(8, 8, 2)
	before := img.Clone()
	Sobel(img)
	Roberts(img)
	Prewitt(img)
	if mse := CalculateMSEGray(img, before); mse != 0 {
		t.Error("Edge detection mutated its input buffer")
	}
}
