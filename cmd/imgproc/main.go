package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/wbrown/imgproc"
)

func main() {
	inputFile := flag.String("input", "",
		"Path to the input image file (required)")
	secondFile := flag.String("second", "",
		"Path to the second input image (hybrid only)")
	outputFile := flag.String("output", "out.png",
		"Path to save the primary output image")
	auxDir := flag.String("auxdir", "",
		"Directory to save auxiliary buffers (gradients, spectra, components)")
	operation := flag.String("op", "",
		"Operation: add_noise, average_filter, gaussian_filter, median_filter, "+
			"sobel, roberts, prewitt, canny, equalize, normalize, grayscale, "+
			"frequency_filter, hybrid")

	kernelSize := flag.Int("kernel", 3,
		"Kernel size for the spatial filters (even sizes are forced odd)")
	sigma := flag.Float64("sigma", 1.0,
		"Gaussian filter standard deviation")

	noiseType := flag.String("noise", "gaussian",
		"Noise type: gaussian, uniform, or salt_pepper")
	mean := flag.Float64("mean", 0,
		"Gaussian noise mean")
	noiseSigma := flag.Float64("noise_sigma", 25,
		"Gaussian noise sigma (clamped to 0-50)")
	low := flag.Float64("low", -25,
		"Uniform noise lower bound")
	high := flag.Float64("high", 25,
		"Uniform noise upper bound")
	ratio := flag.Float64("ratio", 0.05,
		"Salt and pepper ratio (clamped to 0-0.1)")
	split := flag.Float64("split", 0.5,
		"Salt vs pepper split")
	seed := flag.Int64("seed", 0,
		"Noise seed (0 uses a fixed seed)")

	threshold1 := flag.Float64("threshold1", 100,
		"Canny low threshold")
	threshold2 := flag.Float64("threshold2", 200,
		"Canny high threshold")

	rangeType := flag.String("range", "0-255",
		"Normalize target range: 0-1 or 0-255")

	filterType := flag.String("filter", "low",
		"Frequency filter mode: low or high")
	cutoff := flag.Float64("cutoff", 30,
		"Frequency filter cutoff radius")
	cutoffLow := flag.Float64("cutoff_low", 30,
		"Hybrid low-pass cutoff radius (first image)")
	cutoffHigh := flag.Float64("cutoff_high", 10,
		"Hybrid high-pass cutoff radius (second image)")

	histogramFile := flag.String("histogram", "",
		"Optional path to save a histogram chart of the result")
	cdfFile := flag.String("cdf", "",
		"Optional path to save a CDF chart of the result")
	flag.Parse()

	if *inputFile == "" || *operation == "" {
		fmt.Fprintln(os.Stderr, "Error: -input and -op are required")
		flag.Usage()
		os.Exit(1)
	}

	img, err := imgproc.LoadImage(*inputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading input: %v\n", err)
		os.Exit(1)
	}

	params := imgproc.Params{
		Noise: imgproc.NoiseOpts{
			Type:         imgproc.NoiseType(*noiseType),
			Mean:         *mean,
			Sigma:        *noiseSigma,
			Low:          *low,
			High:         *high,
			Ratio:        *ratio,
			SaltVsPepper: *split,
			Seed:         *seed,
		},
		KernelSize:    *kernelSize,
		Sigma:         *sigma,
		LowThreshold:  *threshold1,
		HighThreshold: *threshold2,
		Range:         imgproc.NormalizeMode(*rangeType),
		Frequency:     imgproc.FrequencyMode(*filterType),
		Cutoff:        *cutoff,
		CutoffLow:     *cutoffLow,
		CutoffHigh:    *cutoffHigh,
	}

	if *secondFile != "" {
		second, err := imgproc.LoadImage(*secondFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading second image: %v\n", err)
			os.Exit(1)
		}
		params.Second = second
	}

	result, err := imgproc.Apply(imgproc.Operation(*operation), img, params)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error applying %s: %v\n", *operation, err)
		os.Exit(1)
	}

	if err := imgproc.SaveImage(result.Image.RGBA, *outputFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving output: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Saved %s result to %s\n", *operation, *outputFile)

	if *auxDir != "" && len(result.Aux) > 0 {
		if err := os.MkdirAll(*auxDir, 0o755); err != nil {
			fmt.Fprintf(os.Stderr, "Error creating aux directory: %v\n", err)
			os.Exit(1)
		}
		for name, buf := range result.Aux {
			path := filepath.Join(*auxDir, strings.ReplaceAll(name, " ", "_")+".png")
			if err := imgproc.SaveGrayImage(buf, path); err != nil {
				fmt.Fprintf(os.Stderr, "Error saving %s: %v\n", name, err)
				os.Exit(1)
			}
			fmt.Printf("Saved %s to %s\n", name, path)
		}
	}

	if *histogramFile != "" {
		chart := imgproc.RenderHistogram(result.Image, *operation)
		if err := imgproc.SaveImage(chart.RGBA, *histogramFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving histogram: %v\n", err)
			os.Exit(1)
		}
	}
	if *cdfFile != "" {
		chart := imgproc.RenderCDF(result.Image, *operation)
		if err := imgproc.SaveImage(chart.RGBA, *cdfFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving CDF chart: %v\n", err)
			os.Exit(1)
		}
	}
}
