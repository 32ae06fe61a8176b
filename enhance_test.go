package imgproc

import (
	"errors"
	"testing"
)

func TestEqualizeHistogramGrayTwoLevels(t *testing.T) {
	// Half the samples at 50, half at 200: CDF(50)=0.5, CDF(200)=1, so the
	// standard remap sends 50 to round(255*0.5)=128 and 200 to 255.
	img := NewGrayImage(4, 4)
	for i := range img.Pix {
		if i < 8 {
			img.Pix[i] = 50
		} else {
			img.Pix[i] = 200
		}
	}
	out := EqualizeHistogramGray(img)
	for i, v := range out.Pix {
		want := uint8(128)
		if i >= 8 {
			want = 255
		}
		if v != want {
			t.Fatalf("sample %d: expected %d, got %d", i, want, v)
		}
	}
}

func TestEqualizeHistogramGrayConstant(t *testing.T) {
	// A constant buffer has CDF=1 at its level; everything maps to 255.
	img := CreateSolidGray(4, 4, 100)
	out := EqualizeHistogramGray(img)
	for _, v := range out.Pix {
		if v != 255 {
			t.Fatalf("Expected constant 255, got %d", v)
		}
	}
}

func TestEqualizeHistogramStretchesContrast(t *testing.T) {
	// A low-contrast color ramp must span a wider luma range afterwards.
	img := NewRGBAImage(16, 16)
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			v := uint8(100 + x*3)
			img.SetRGB(x, y, RGB{R: v, G: v, B: v})
		}
	}
	out := EqualizeHistogram(img)
	if out.Width() != 16 || out.Height() != 16 {
		t.Fatalf("Shape changed to %dx%d", out.Width(), out.Height())
	}

	span := func(img *RGBAImage) int {
		gray := ToGrayscale(img)
		min, max := 255, 0
		for _, v := range gray.Pix {
			if int(v) < min {
				min = int(v)
			}
			if int(v) > max {
				max = int(v)
			}
		}
		return max - min
	}
	if span(out) <= span(img) {
		t.Errorf("Equalization did not widen the luma range: %d vs %d", span(out), span(img))
	}
}

func TestNormalizeStretchesToFullRange(t *testing.T) {
	for _, mode := range []NormalizeMode{RangeUnit, RangeByte} {
		img := NewGrayImage(3, 1)
		img.Pix[0], img.Pix[1], img.Pix[2] = 50, 100, 150
		out, err := NormalizeGray(img, mode)
		if err != nil {
			t.Fatalf("mode %q: %v", mode, err)
		}
		want := []uint8{0, 128, 255}
		for i, w := range want {
			if out.Pix[i] != w {
				t.Errorf("mode %q sample %d: expected %d, got %d", mode, i, w, out.Pix[i])
			}
		}
	}
}

func TestNormalizeDegenerateInputsUnchanged(t *testing.T) {
	tests := []struct {
		name string
		v    uint8
	}{
		{"all zero", 0},
		{"constant nonzero", 77},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			img := CreateSolidGray(4, 4, tc.v)
			out, err := NormalizeGray(img, RangeByte)
			if err != nil {
				t.Fatalf("NormalizeGray failed: %v", err)
			}
			if mse := CalculateMSEGray(img, out); mse != 0 {
				t.Errorf("Degenerate input should pass through unchanged, MSE %f", mse)
			}
		})
	}
}

func TestNormalizeColorGlobalRange(t *testing.T) {
	// Min and max are taken across all channels together so channel ratios
	// shift consistently.
	img := CreateSolidImage(2, 2, RGB{R: 50, G: 100, B: 150})
	out, err := Normalize(img, RangeByte)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	if got := out.GetRGB(0, 0); got != (RGB{R: 0, G: 128, B: 255}) {
		t.Errorf("Expected {0 128 255}, got %v", got)
	}
}

func TestNormalizeUnknownMode(t *testing.T) {
	img := CreateSolidImage(2, 2, RGB{})
	if _, err := Normalize(img, "0-100"); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("Expected ErrInvalidParameter, got %v", err)
	}
}

func TestCDFProperties(t *testing.T) {
	img := CreateGradientGray(16, 16)
	cdf := CDF(Histogram(img))
	if cdf[255] != 1 {
		t.Errorf("CDF must end at 1, got %g", cdf[255])
	}
	for i := 1; i < 256; i++ {
		if cdf[i] < cdf[i-1] {
			t.Fatalf("CDF decreased at level %d", i)
		}
	}
}
