// Package preview renders linearized boundaries and their centroid to a raster
// image, for checking a result without opening the document in an editor.
package preview

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"slices"

	"golang.org/x/image/vector"

	"honnef.co/go/centroid"
)

// markerSamples is the number of points per cubic used to draw the marker.
const markerSamples = 16

var (
	// ErrEmpty nothing to draw error
	ErrEmpty = errors.New("preview: nothing to draw")

	defaultShape  = color.RGBA{0x80, 0x80, 0x80, 0xff}
	defaultMarker = color.RGBA{0xff, 0x00, 0x00, 0xff}
)

// Options controls the rendering.
type Options struct {
	// Width of the image in pixels. The height follows from the aspect ratio
	// of the drawing. Defaults to 512.
	Width int
	// Margin around the drawing, in pixels.
	Margin int
	// Background defaults to white, Shape to gray and Marker to red.
	Background, Shape, Marker color.Color
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = 512
	}
	if o.Margin < 0 {
		o.Margin = 0
	}
	if o.Background == nil {
		o.Background = color.White
	}
	if o.Shape == nil {
		o.Shape = defaultShape
	}
	if o.Marker == nil {
		o.Marker = defaultMarker
	}
	return o
}

// Render draws the polylines filled with the shape color and a disc of the
// given radius around the marker point. Coverage of overlapping polylines
// with opposite winding cancels out, so holes wound against their outer
// boundary stay empty.
func Render(polys []centroid.Polyline, marker centroid.Point, radius float64, opts Options) (*image.RGBA, error) {
	opts = opts.withDefaults()

	disc, err := markerPolyline(marker, radius)
	if err != nil {
		return nil, err
	}

	var bbox centroid.Rect
	first := true
	all := append(slices.Clip(polys), disc)
	for _, p := range all {
		if len(p) == 0 {
			continue
		}
		if first {
			bbox = p.BoundingBox()
			first = false
		} else {
			bbox = bbox.Union(p.BoundingBox())
		}
	}
	if first || bbox.Width() == 0 && bbox.Height() == 0 {
		return nil, ErrEmpty
	}

	inner := float64(opts.Width - 2*opts.Margin)
	if inner <= 0 {
		return nil, errors.New("preview: margin leaves no room for the drawing")
	}
	scale := inner / math.Max(bbox.Width(), bbox.Height())
	w := opts.Width
	h := int(math.Ceil(bbox.Height()*scale)) + 2*opts.Margin
	if bbox.Width() < bbox.Height() {
		w = int(math.Ceil(bbox.Width()*scale)) + 2*opts.Margin
		h = opts.Width
	}
	// Shapes without width or height still get a row or column of pixels.
	w, h = max(w, 1), max(h, 1)
	toPixel := centroid.Translate(centroid.Vec(-bbox.X0, -bbox.Y0)).
		ThenScale(scale).
		ThenTranslate(centroid.Vec(float64(opts.Margin), float64(opts.Margin)))

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)

	shape := vector.NewRasterizer(w, h)
	for _, p := range polys {
		addPolyline(shape, p, toPixel)
	}
	shape.Draw(dst, dst.Bounds(), image.NewUniform(opts.Shape), image.Point{})

	dot := vector.NewRasterizer(w, h)
	addPolyline(dot, disc, toPixel)
	dot.Draw(dst, dst.Bounds(), image.NewUniform(opts.Marker), image.Point{})

	return dst, nil
}

// markerPolyline linearizes a circle around pt.
func markerPolyline(pt centroid.Point, radius float64) (centroid.Polyline, error) {
	if radius <= 0 {
		return nil, nil
	}
	path := centroid.Circle{Center: pt, Radius: radius}.Path(radius * 1e-3)
	var poly centroid.Polyline
	for _, b := range path.Boundaries() {
		p, err := b.Linearize(markerSamples)
		if err != nil {
			return nil, err
		}
		poly = append(poly, p...)
	}
	return poly, nil
}

func addPolyline(z *vector.Rasterizer, p centroid.Polyline, aff centroid.Affine) {
	if len(p) < 2 {
		return
	}
	pt := p[0].Transform(aff)
	z.MoveTo(float32(pt.X), float32(pt.Y))
	for _, q := range p[1:] {
		pt = q.Transform(aff)
		z.LineTo(float32(pt.X), float32(pt.Y))
	}
	z.ClosePath()
}

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}
