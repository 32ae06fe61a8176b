package imgproc

import (
	"errors"
	"testing"
)

func TestApplyUnknownOperation(t *testing.T) {
	img := CreateSolidImage(4, 4, RGB{})
	if _, err := Apply("sharpen", img, Params{}); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("Expected ErrInvalidParameter, got %v", err)
	}
}

func TestApplySobelOnConstantGray(t *testing.T) {
	// A 4x4 all-100 image has no gradients anywhere: magnitude and both
	// gradient buffers come back identically zero.
	img := CreateSolidImage(4, 4, RGB{R: 100, G: 100, B: 100})
	result, err := Apply(OpSobel, img, Params{})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	gray := ToGrayscale(result.Image)
	for i, v := range gray.Pix {
		if v != 0 {
			t.Fatalf("magnitude sample %d: expected 0, got %d", i, v)
		}
	}
	for _, name := range []string{"gradient_x", "gradient_y"} {
		buf, ok := result.Aux[name]
		if !ok {
			t.Fatalf("Missing auxiliary buffer %q", name)
		}
		for i, v := range buf.Pix {
			if v != 0 {
				t.Fatalf("%s sample %d: expected 0, got %d", name, i, v)
			}
		}
	}
}

func TestApplyFilterOperations(t *testing.T) {
	img := CreateCheckerboardImage(16, 16, 2)
	tests := []struct {
		op Operation
		p  Params
	}{
		{OpAverageFilter, Params{KernelSize: 3}},
		{OpGaussianFilter, Params{KernelSize: 5, Sigma: 1.4}},
		{OpMedianFilter, Params{KernelSize: 3}},
		{OpEqualize, Params{}},
		{OpNormalize, Params{Range: RangeByte}},
		{OpGrayscale, Params{}},
		{OpAddNoise, Params{Noise: NoiseOpts{Type: NoiseGaussian, Sigma: 10, Seed: 1}}},
	}
	for _, tc := range tests {
		t.Run(string(tc.op), func(t *testing.T) {
			result, err := Apply(tc.op, img, tc.p)
			if err != nil {
				t.Fatalf("Apply failed: %v", err)
			}
			if result.Image.Width() != 16 || result.Image.Height() != 16 {
				t.Errorf("Shape changed to %dx%d", result.Image.Width(), result.Image.Height())
			}
		})
	}
}

func TestApplyRejectsBadModes(t *testing.T) {
	img := CreateSolidImage(4, 4, RGB{})
	tests := []struct {
		name string
		op   Operation
		p    Params
	}{
		{"unknown noise type", OpAddNoise, Params{Noise: NoiseOpts{Type: "poisson"}}},
		{"unknown normalize range", OpNormalize, Params{Range: "0-100"}},
		{"unknown frequency mode", OpFrequencyFilter, Params{Frequency: "band", Cutoff: 10}},
		{"hybrid without second image", OpHybrid, Params{CutoffLow: 10, CutoffHigh: 10}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Apply(tc.op, img, tc.p); !errors.Is(err, ErrInvalidParameter) {
				t.Errorf("Expected ErrInvalidParameter, got %v", err)
			}
		})
	}
}

func TestApplyFrequencyFilterAux(t *testing.T) {
	img := CreateCheckerboardImage(16, 16, 2)
	result, err := Apply(OpFrequencyFilter, img, Params{Frequency: LowPass, Cutoff: 5})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	for _, name := range []string{"spectrum_before", "spectrum_after", "mask"} {
		if _, ok := result.Aux[name]; !ok {
			t.Errorf("Missing auxiliary buffer %q", name)
		}
	}
}

func TestApplyHybrid(t *testing.T) {
	a := CreateSolidImage(16, 16, RGB{R: 100, G: 100, B: 100})
	b := CreateCheckerboardImage(16, 16, 2)
	result, err := Apply(OpHybrid, a, Params{Second: b, CutoffLow: 5, CutoffHigh: 5})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if _, ok := result.Aux["low_component"]; !ok {
		t.Error("Missing low_component auxiliary buffer")
	}
	if _, ok := result.Aux["high_component"]; !ok {
		t.Error("Missing high_component auxiliary buffer")
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	img := CreateCheckerboardImage(8, 8, 2)
	before := img.Clone()
	for _, op := range []Operation{OpAverageFilter, OpSobel, OpEqualize, OpGrayscale} {
		if _, err := Apply(op, img, Params{KernelSize: 3}); err != nil {
			t.Fatalf("%s failed: %v", op, err)
		}
	}
	if mse := CalculateMSE(img, before); mse != 0 {
		t.Error("Dispatch mutated the input buffer")
	}
}
