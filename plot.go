package imgproc

import (
	"fmt"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"
)

// Chart dimensions shared by the histogram and CDF renderers.
const (
	plotWidth   = 560
	plotHeight  = 400
	plotMarginX = 48
	plotMarginY = 40
)

var plotFont *truetype.Font

func init() {
	var err error
	plotFont, err = truetype.Parse(goregular.TTF)
	if err != nil {
		panic(err)
	}
}

// RenderHistogram draws a 256-bin intensity histogram of the image's luma
// channel as a chart image. Purely a visualization artifact, outside the
// numeric contract.
func RenderHistogram(img *RGBAImage, title string) *RGBAImage {
	hist := Histogram(ToGrayscale(img))

	maxCount := 0
	for _, n := range hist {
		if n > maxCount {
			maxCount = n
		}
	}

	dc := newChart(title, "pixel value", "count")
	if maxCount > 0 {
		plotW := float64(plotWidth - 2*plotMarginX)
		plotH := float64(plotHeight - 2*plotMarginY)
		barW := plotW / 256
		dc.SetColor(color.RGBA{70, 110, 190, 255})
		for i, n := range hist {
			h := float64(n) / float64(maxCount) * plotH
			x := float64(plotMarginX) + float64(i)*barW
			dc.DrawRectangle(x, float64(plotHeight-plotMarginY)-h, barW, h)
		}
		dc.Fill()
	}
	return RGBAImageFromImage(dc.Image())
}

// RenderCDF draws the luma channel's cumulative distribution function.
func RenderCDF(img *RGBAImage, title string) *RGBAImage {
	cdf := CDF(Histogram(ToGrayscale(img)))

	dc := newChart(title, "pixel value", "cumulative probability")
	plotW := float64(plotWidth - 2*plotMarginX)
	plotH := float64(plotHeight - 2*plotMarginY)

	dc.SetColor(color.RGBA{190, 60, 60, 255})
	dc.SetLineWidth(2)
	for i := 1; i < 256; i++ {
		x0 := float64(plotMarginX) + float64(i-1)/255*plotW
		x1 := float64(plotMarginX) + float64(i)/255*plotW
		y0 := float64(plotHeight-plotMarginY) - cdf[i-1]*plotH
		y1 := float64(plotHeight-plotMarginY) - cdf[i]*plotH
		dc.DrawLine(x0, y0, x1, y1)
	}
	dc.Stroke()
	return RGBAImageFromImage(dc.Image())
}

// newChart prepares a white canvas with axes, tick labels, and a title.
func newChart(title, xLabel, yLabel string) *gg.Context {
	dc := gg.NewContext(plotWidth, plotHeight)
	dc.SetColor(color.White)
	dc.Clear()

	dc.SetFontFace(truetype.NewFace(plotFont, &truetype.Options{Size: 13}))
	dc.SetColor(color.Black)
	dc.DrawStringAnchored(title, plotWidth/2, plotMarginY/2, 0.5, 0.5)
	dc.DrawStringAnchored(xLabel, plotWidth/2, plotHeight-plotMarginY/3, 0.5, 0.5)
	dc.DrawStringAnchored(yLabel, plotMarginX/3, plotMarginY-10, 0, 0.5)

	// Axes
	dc.SetLineWidth(1)
	dc.DrawLine(plotMarginX, plotMarginY, plotMarginX, plotHeight-plotMarginY)
	dc.DrawLine(plotMarginX, plotHeight-plotMarginY, plotWidth-plotMarginX, plotHeight-plotMarginY)
	dc.Stroke()

	// X ticks at 0, 64, 128, 192, 255
	plotW := float64(plotWidth - 2*plotMarginX)
	for _, v := range []int{0, 64, 128, 192, 255} {
		x := float64(plotMarginX) + float64(v)/255*plotW
		dc.DrawLine(x, float64(plotHeight-plotMarginY), x, float64(plotHeight-plotMarginY)+4)
		dc.Stroke()
		dc.DrawStringAnchored(fmt.Sprintf("%d", v), x, float64(plotHeight-plotMarginY)+14, 0.5, 0.5)
	}
	return dc
}
