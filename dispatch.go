package imgproc

import "fmt"

// Operation names the transforms reachable through Apply. The tags mirror
// the action list the calling layer exposes.
type Operation string

const (
	OpAddNoise        Operation = "add_noise"
	OpAverageFilter   Operation = "average_filter"
	OpGaussianFilter  Operation = "gaussian_filter"
	OpMedianFilter    Operation = "median_filter"
	OpSobel           Operation = "sobel"
	OpRoberts         Operation = "roberts"
	OpPrewitt         Operation = "prewitt"
	OpCanny           Operation = "canny"
	OpEqualize        Operation = "equalize"
	OpNormalize       Operation = "normalize"
	OpGrayscale       Operation = "grayscale"
	OpFrequencyFilter Operation = "frequency_filter"
	OpHybrid          Operation = "hybrid"
)

// Params carries the named parameters an operation may consume. Each
// operation reads only the fields it documents; the rest are ignored.
type Params struct {
	Noise NoiseOpts // add_noise

	KernelSize int     // average/gaussian/median filters
	Sigma      float64 // gaussian filter

	LowThreshold  float64 // canny
	HighThreshold float64 // canny

	Range NormalizeMode // normalize

	Frequency FrequencyMode // frequency_filter
	Cutoff    float64       // frequency_filter

	Second     *RGBAImage // hybrid: high-frequency source image
	CutoffLow  float64    // hybrid
	CutoffHigh float64    // hybrid
}

// Result is a dispatched operation's output: the primary image plus any
// named auxiliary buffers (gradient components, spectrum visualizations,
// hybrid components).
type Result struct {
	Image *RGBAImage
	Aux   map[string]*GrayImage
}

// Apply runs the named operation against a color buffer. Grayscale-only
// operations convert internally. Unknown operation tags and unknown mode
// strings report ErrInvalidParameter; the input buffer is never mutated.
func Apply(op Operation, img *RGBAImage, p Params) (*Result, error) {
	switch op {
	case OpAddNoise:
		noisy, err := AddNoise(img, p.Noise)
		if err != nil {
			return nil, err
		}
		return &Result{Image: noisy}, nil

	case OpAverageFilter:
		return &Result{Image: AverageFilter(img, p.KernelSize)}, nil

	case OpGaussianFilter:
		return &Result{Image: GaussianFilter(img, p.KernelSize, p.Sigma)}, nil

	case OpMedianFilter:
		return &Result{Image: MedianFilter(img, p.KernelSize)}, nil

	case OpSobel:
		return edgeResultOf(Sobel(ToGrayscale(img))), nil

	case OpRoberts:
		return edgeResultOf(Roberts(ToGrayscale(img))), nil

	case OpPrewitt:
		return edgeResultOf(Prewitt(ToGrayscale(img))), nil

	case OpCanny:
		edges, err := Canny(ToGrayscale(img), p.LowThreshold, p.HighThreshold)
		if err != nil {
			return nil, err
		}
		return &Result{Image: GrayscaleToRGBA(edges)}, nil

	case OpEqualize:
		return &Result{Image: EqualizeHistogram(img)}, nil

	case OpNormalize:
		normalized, err := Normalize(img, p.Range)
		if err != nil {
			return nil, err
		}
		return &Result{Image: normalized}, nil

	case OpGrayscale:
		return &Result{Image: GrayscaleToRGBA(ToGrayscale(img))}, nil

	case OpFrequencyFilter:
		filtered, spectrum, err := FilterFrequency(ToGrayscale(img), p.Frequency, p.Cutoff)
		if err != nil {
			return nil, err
		}
		return &Result{
			Image: GrayscaleToRGBA(filtered),
			Aux: map[string]*GrayImage{
				"spectrum_before": spectrum.Before,
				"spectrum_after":  spectrum.After,
				"mask":            spectrum.Mask,
			},
		}, nil

	case OpHybrid:
		if p.Second == nil {
			return nil, fmt.Errorf("%w: hybrid requires a second image", ErrInvalidParameter)
		}
		hybrid := MakeHybrid(ToGrayscale(img), ToGrayscale(p.Second), p.CutoffLow, p.CutoffHigh)
		return &Result{
			Image: GrayscaleToRGBA(hybrid.Hybrid),
			Aux: map[string]*GrayImage{
				"low_component":  hybrid.Low,
				"high_component": hybrid.High,
			},
		}, nil

	default:
		return nil, fmt.Errorf("%w: unknown operation %q", ErrInvalidParameter, op)
	}
}

func edgeResultOf(edges *EdgeResult) *Result {
	return &Result{
		Image: GrayscaleToRGBA(edges.Magnitude),
		Aux: map[string]*GrayImage{
			"gradient_x": edges.GradX,
			"gradient_y": edges.GradY,
		},
	}
}
