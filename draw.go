package seg2

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
)

const scenePadding = 16

// Scene accumulates segments and marker points and renders them to a PNG.
// It exists for the demo tool and for eyeballing geometry while debugging;
// nothing in the query API depends on it.
type Scene struct {
	Segments []Segment
	Markers  []Point
}

func (sc *Scene) AddSegment(segments ...Segment) {
	sc.Segments = append(sc.Segments, segments...)
}

func (sc *Scene) AddMarker(points ...Point) {
	sc.Markers = append(sc.Markers, points...)
}

// bounds returns the min and max corners over everything in the scene.
func (sc *Scene) bounds() (Point, Point) {
	min := Point{math.Inf(1), math.Inf(1)}
	max := Point{math.Inf(-1), math.Inf(-1)}
	grow := func(p Point) {
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
	}
	for _, s := range sc.Segments {
		grow(s.Start)
		grow(s.End)
	}
	for _, p := range sc.Markers {
		grow(p)
	}
	return min, max
}

// SavePNG renders the scene at the given scale (pixels per geometry unit)
// and writes it to path. Geometry is drawn in screen orientation, y down,
// so the image matches the coordinate convention of this package directly.
func (sc *Scene) SavePNG(path string, scale float64) error {
	if len(sc.Segments) == 0 && len(sc.Markers) == 0 {
		return errors.New("nothing to draw")
	}
	min, max := sc.bounds()

	width := int(scale*(max.X-min.X)) + scenePadding*2
	height := int(scale*(max.Y-min.Y)) + scenePadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Translate for padding, then scale, then translate to min
	c.Translate(scenePadding, scenePadding)
	c.Scale(scale, scale)
	c.Translate(-min.X, -min.Y)

	c.SetLineWidth(2)
	c.SetRGB(0, 1, 1)
	for _, s := range sc.Segments {
		c.MoveTo(s.Start.X, s.Start.Y)
		c.LineTo(s.End.X, s.End.Y)
		c.Stroke()
	}

	c.SetRGB(1, 0.3, 0)
	for _, p := range sc.Markers {
		c.DrawCircle(p.X, p.Y, 4/scale)
		c.Fill()
	}

	if err := c.SavePNG(path); err != nil {
		return errors.Wrapf(err, "saving scene to %q", path)
	}
	return nil
}

// Cat prints the PNG at path inline on terminals that support it (iTerm2).
func Cat(path string) {
	imgcat.CatFile(path, os.Stdout)
}
