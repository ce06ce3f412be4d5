// Command centroid marks the centroid of a shape in an SVG document.
//
// The shape is made of the selected path elements: the subpath with the
// largest area is its outer boundary, all other subpaths are holes. A filled
// circle is added at the centroid, in the document's current layer.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"honnef.co/go/centroid"
	"honnef.co/go/centroid/internal/config"
	"honnef.co/go/centroid/internal/preview"
	"honnef.co/go/centroid/internal/svgdoc"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// source identifies the path a boundary was extracted from.
type source struct {
	path  svgdoc.Path
	index int
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := config.Parse(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	logger := cfg.Logger(stderr)
	defer func() {
		_ = logger.Sync()
	}()

	if err := mark(cfg, logger, stdin, stdout, stderr); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

func mark(cfg *config.Config, logger *zap.Logger, stdin io.Reader, stdout, stderr io.Writer) error {
	in := stdin
	if cfg.Input != "-" {
		f, err := os.Open(cfg.Input)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	doc, err := svgdoc.Parse(in)
	if err != nil {
		return err
	}
	paths, err := doc.Select(cfg.IDs)
	if err != nil {
		return err
	}

	var (
		boundaries []centroid.Boundary
		sources    []source
	)
	for _, p := range paths {
		bp, err := p.BezPath()
		if err != nil {
			fmt.Fprintln(stderr, err)
			continue
		}
		if ce := logger.Check(zap.DebugLevel, "path"); ce != nil {
			ce.Write(
				zap.String("name", p.Name()),
				zap.String("d", bp.SVG(centroid.SVGOptions{MaxPrecision: 6})))
		}
		for i, b := range bp.Boundaries() {
			boundaries = append(boundaries, b)
			sources = append(sources, source{path: p, index: i})
		}
	}

	res, err := centroid.Compute(boundaries, cfg.Options(logger))
	for _, r := range res.Boundaries {
		if r.Err != nil {
			src := sources[r.Index]
			fmt.Fprintf(stderr, "path %s, subpath %d: %s\n", src.path.Name(), src.index, r.Err)
		}
	}
	if errors.Is(err, centroid.ErrEmptyInput) {
		return errors.New("centroid: no paths have valid centroids")
	}
	if err != nil {
		var berr centroid.BoundaryError
		if errors.As(err, &berr) {
			src := sources[berr.Index]
			return fmt.Errorf("path %s, subpath %d: %w", src.path.Name(), src.index, berr.Err)
		}
		return err
	}

	c := res.Compound
	id, err := doc.AddMarker(svgdoc.Marker{Center: c.Centroid, Radius: cfg.CentroidRadius})
	if err != nil {
		return err
	}
	logger.Info("centroid",
		zap.String("marker", id),
		zap.Float64("x", c.Centroid.X),
		zap.Float64("y", c.Centroid.Y),
		zap.Float64("area", c.Area),
		zap.Int("holes", len(c.Holes)))

	if err := writeFile(cfg.Output, stdout, func(w io.Writer) error {
		_, err := doc.WriteTo(w)
		return err
	}); err != nil {
		return err
	}

	if cfg.Preview != "" {
		valid := res.Valid()
		polys := make([]centroid.Polyline, len(valid))
		for i, r := range valid {
			polys[i] = r.Polyline
		}
		img, err := preview.Render(polys, c.Centroid, cfg.CentroidRadius, preview.Options{
			Width:  cfg.PreviewWidth,
			Margin: cfg.PreviewWidth / 32,
		})
		if err != nil {
			return err
		}
		return writeFile(cfg.Preview, stdout, func(w io.Writer) error {
			return preview.WritePNG(w, img)
		})
	}
	return nil
}

// writeFile calls write with the named file, or with stdout for "-".
func writeFile(name string, stdout io.Writer, write func(io.Writer) error) error {
	if name == "-" {
		return write(stdout)
	}
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
