// Package plotexport renders the current wave plot to a PNG for saving.
package plotexport

import (
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/mkarpushin/trig-visualization/internal/wavemodel"
)

// WritePNG draws the sampled wave and its reference sine into an 8x4 inch
// PNG written to w, titled with the equation caption.
func WritePNG(w io.Writer, p wavemodel.Params, samples []wavemodel.Point) error {
	fig := plot.New()
	fig.Title.Text = wavemodel.Describe(p)
	fig.X.Label.Text = "x"
	fig.Y.Label.Text = "y"

	wave := make(plotter.XYs, len(samples))
	ref := make(plotter.XYs, len(samples))
	for i, s := range samples {
		wave[i].X, wave[i].Y = s.X, s.Y
		ref[i].X, ref[i].Y = s.X, s.RefY
	}

	waveLine, err := plotter.NewLine(wave)
	if err != nil {
		return err
	}
	waveLine.Color = color.RGBA{R: 0x2b, G: 0x8c, B: 0xbe, A: 0xff}
	waveLine.Width = vg.Points(1.5)

	refLine, err := plotter.NewLine(ref)
	if err != nil {
		return err
	}
	refLine.Color = color.RGBA{R: 0x99, G: 0x99, B: 0x99, A: 0xff}
	refLine.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}

	fig.Add(plotter.NewGrid(), waveLine, refLine)
	fig.Legend.Add(wavemodel.Describe(p), waveLine)
	fig.Legend.Add("sin(x)", refLine)
	fig.Legend.Top = true

	wt, err := fig.WriterTo(8*vg.Inch, 4*vg.Inch, "png")
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}
