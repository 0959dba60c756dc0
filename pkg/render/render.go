// Package render draws a clip request and its result to a PNG image.
package render

import (
	"fmt"
	"image"
	"math"

	"github.com/fogleman/gg"

	"github.com/Kolyrub/polygon-alg/pkg/geo"
)

// padding around the drawn shapes, in pixels.
const padding = 20

// Scene is what gets drawn: both inputs and the clipped result, if any.
type Scene struct {
	Subject []geo.Point
	Cutter  []geo.Point
	Result  []geo.Point
}

func (s Scene) bounds() (geo.Point, geo.Point, bool) {
	var all []geo.Point
	all = append(all, s.Subject...)
	all = append(all, s.Cutter...)
	all = append(all, s.Result...)
	if len(all) == 0 {
		return geo.Point{}, geo.Point{}, false
	}
	mn, mx := geo.BoundingBox(all)
	return mn, mx, true
}

// Draw renders s into a square image size pixels wide. The y axis points up.
func Draw(s Scene, size int) (image.Image, error) {
	if size <= 2*padding {
		return nil, fmt.Errorf("image size %d too small", size)
	}
	c := gg.NewContext(size, size)
	c.SetRGB(1, 1, 1)
	c.Clear()

	mn, mx, ok := s.bounds()
	if !ok {
		return c.Image(), nil
	}
	span := math.Max(mx.X-mn.X, mx.Y-mn.Y)
	if span == 0 {
		span = 1
	}
	scale := float64(size-2*padding) / span

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(size))
	c.Scale(1, -1)
	c.Translate(padding, padding)
	c.Scale(scale, scale)
	c.Translate(-mn.X, -mn.Y)

	c.SetLineWidth(2)
	drawPolygon(c, s.Subject)
	c.SetRGBA(0.2, 0.4, 0.9, 0.25)
	c.FillPreserve()
	c.SetRGB(0.2, 0.4, 0.9)
	c.Stroke()

	drawPolygon(c, s.Cutter)
	c.SetRGBA(0.9, 0.5, 0.1, 0.25)
	c.FillPreserve()
	c.SetRGB(0.9, 0.5, 0.1)
	c.Stroke()

	if len(s.Result) > 0 {
		c.SetLineWidth(3)
		drawPolygon(c, s.Result)
		c.SetRGBA(0.1, 0.7, 0.2, 0.6)
		c.FillPreserve()
		c.SetRGB(0, 0.5, 0)
		c.Stroke()
	}
	return c.Image(), nil
}

// DrawPNG renders s and writes it to path.
func DrawPNG(path string, s Scene, size int) error {
	img, err := Draw(s, size)
	if err != nil {
		return err
	}
	if err := gg.SavePNG(path, img); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func drawPolygon(c *gg.Context, pts []geo.Point) {
	if len(pts) == 0 {
		return
	}
	c.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		c.LineTo(p.X, p.Y)
	}
	c.ClosePath()
}
