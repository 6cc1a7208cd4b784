package render

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"navigation-service/internal/domain"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var pathColor = color.RGBA{B: 255, A: 255}

const plotSize = 6 * vg.Inch

// WritePlot draws the navigation path (longitude on x, latitude on y)
// as a PNG image.
func WritePlot(w io.Writer, path []domain.GeoCoordinate) error {
	if len(path) < 2 {
		return errors.New("write plot: path needs at least two points")
	}

	p := plot.New()
	p.Title.Text = "Navigation Path"
	p.X.Label.Text = "Longitude"
	p.Y.Label.Text = "Latitude"
	p.Add(plotter.NewGrid())

	xys := make(plotter.XYs, len(path))
	for i, c := range path {
		xys[i].X = c.Lon
		xys[i].Y = c.Lat
	}

	line, points, err := plotter.NewLinePoints(xys)
	if err != nil {
		return fmt.Errorf("write plot: build line: %w", err)
	}
	line.Color = pathColor
	points.Color = pathColor
	points.Shape = draw.CircleGlyph{}

	p.Add(line, points)
	p.Legend.Add("Path", line, points)
	equalAspect(p)

	wt, err := p.WriterTo(plotSize, plotSize, "png")
	if err != nil {
		return fmt.Errorf("write plot: encode png: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("write plot: %w", err)
	}

	return nil
}

// equalAspect widens the shorter axis so one degree has the same length on
// both axes of the square canvas.
func equalAspect(p *plot.Plot) {
	dx := p.X.Max - p.X.Min
	dy := p.Y.Max - p.Y.Min
	switch {
	case dx > dy:
		mid := (p.Y.Max + p.Y.Min) / 2
		p.Y.Min, p.Y.Max = mid-dx/2, mid+dx/2
	case dy > dx:
		mid := (p.X.Max + p.X.Min) / 2
		p.X.Min, p.X.Max = mid-dy/2, mid+dy/2
	}
}
