// Package svgdoc reads SVG documents, extracts their rendered path elements
// and inserts centroid markers into them.
//
// Documents are written back byte for byte; markers are spliced in right
// before the end tag of the layer they belong to.
package svgdoc

import (
	"bytes"
	"encoding/hex"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"honnef.co/go/centroid"
)

const (
	nsSVG      = "http://www.w3.org/2000/svg"
	nsInkscape = "http://www.inkscape.org/namespaces/inkscape"
	nsSodipodi = "http://sodipodi.sourceforge.net/DTD/sodipodi-0.dtd"
)

var (
	// ErrNotSVG root element is not svg error
	ErrNotSVG = errors.New("svgdoc: document root is not an svg element")
	// ErrNoPaths no path elements error
	ErrNoPaths = errors.New("svgdoc: need at least one path")
)

// Path is a path element of a document.
type Path struct {
	// ID is the element's id attribute, possibly empty.
	ID string
	// Label is the element's inkscape:label attribute, possibly empty.
	Label string
	// D is the raw path data.
	D string
	// CTM maps the path's coordinates to the document's user space. It
	// includes the path's own transform and those of its ancestors.
	CTM centroid.Affine
	// Rendered is false for paths inside elements that are only drawn by
	// reference, such as defs or clipPath.
	Rendered bool
}

// nonRendering are the container elements whose children are never drawn
// where they appear in the document.
var nonRendering = map[string]bool{
	"defs":     true,
	"clipPath": true,
	"mask":     true,
	"marker":   true,
	"pattern":  true,
	"symbol":   true,
}

// Name returns a human readable name for the path.
func (p Path) Name() string {
	switch {
	case p.Label != "":
		return p.Label
	case p.ID != "":
		return p.ID
	default:
		return "<unnamed path>"
	}
}

// BezPath parses the path data and maps it to user space. Its subpaths are
// the path's boundaries, see [centroid.BezPath.Boundaries].
func (p Path) BezPath() (centroid.BezPath, error) {
	bp, err := centroid.ParseSVG(p.D)
	if err != nil {
		return nil, fmt.Errorf("path %s: %w", p.Name(), err)
	}
	if p.CTM != centroid.Identity {
		bp = bp.Transform(p.CTM)
	}
	return bp, nil
}

// Marker is a centroid marker, a filled circle.
type Marker struct {
	// Center is the marker's position in user space.
	Center centroid.Point
	Radius float64
	// Fill defaults to red.
	Fill string
	// ID defaults to a random "centroid-dot-xxxxxx" name.
	ID string
}

// group is a container element that markers can be inserted into.
type group struct {
	id  string
	ctm centroid.Affine
	// offset of the end tag, or -1 for self-closing elements
	end int
}

type insertion struct {
	offset int
	text   string
}

// Document is a parsed SVG document.
type Document struct {
	src          []byte
	paths        []Path
	root         group
	groups       map[string]group
	currentLayer string
	inkscapeNS   string
	insertions   []insertion
}

// Parse reads an SVG document.
func Parse(r io.Reader) (*Document, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	doc := &Document{
		src:    src,
		groups: map[string]group{},
	}

	type frame struct {
		name   xml.Name
		ctm    centroid.Affine
		group  bool
		id     string
		hidden bool
	}
	var stack []frame

	var seenRoot bool
	dec := xml.NewDecoder(bytes.NewReader(src))
	for {
		offset := int(dec.InputOffset())
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("svgdoc: %w", err)
		}

		switch tok := tok.(type) {
		case xml.StartElement:
			parent := centroid.Identity
			hidden := false
			if len(stack) > 0 {
				parent = stack[len(stack)-1].ctm
				hidden = stack[len(stack)-1].hidden
			} else if seenRoot || tok.Name.Local != "svg" {
				return nil, ErrNotSVG
			} else {
				seenRoot = true
				doc.inkscapeNS = inkscapePrefix(tok.Attr)
			}

			own, err := centroid.ParseTransform(attr(tok.Attr, "", "transform"))
			if err != nil {
				return nil, fmt.Errorf("svgdoc: element %s: %w", tok.Name.Local, err)
			}
			ctm := parent.Mul(own)
			id := attr(tok.Attr, "", "id")
			if tok.Name.Space == "" || tok.Name.Space == nsSVG {
				hidden = hidden || nonRendering[tok.Name.Local]
			}

			switch tok.Name.Local {
			case "path":
				if tok.Name.Space == "" || tok.Name.Space == nsSVG {
					doc.paths = append(doc.paths, Path{
						ID:       id,
						Label:    attr(tok.Attr, nsInkscape, "label"),
						D:        attr(tok.Attr, "", "d"),
						CTM:      ctm,
						Rendered: !hidden,
					})
				}
			case "namedview":
				if tok.Name.Space == nsSodipodi {
					doc.currentLayer = attr(tok.Attr, nsInkscape, "current-layer")
				}
			}

			stack = append(stack, frame{
				name:   tok.Name,
				ctm:    ctm,
				group:  tok.Name.Local == "g" || len(stack) == 0,
				id:     id,
				hidden: hidden,
			})
		case xml.EndElement:
			if len(stack) == 0 {
				return nil, fmt.Errorf("svgdoc: unexpected end element %s", tok.Name.Local)
			}
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !top.group {
				continue
			}
			end := offset
			if int(dec.InputOffset()) == offset {
				// The decoder synthesizes end elements for self-closing
				// tags without consuming any input.
				end = -1
			}
			g := group{id: top.id, ctm: top.ctm, end: end}
			if len(stack) == 0 {
				doc.root = g
			} else if top.id != "" {
				doc.groups[top.id] = g
			}
		}
	}
	if len(stack) != 0 {
		return nil, fmt.Errorf("svgdoc: unexpected end of document inside %s", stack[len(stack)-1].name.Local)
	}
	if !seenRoot {
		return nil, ErrNotSVG
	}
	return doc, nil
}

func attr(attrs []xml.Attr, space, local string) string {
	for _, a := range attrs {
		if a.Name.Local == local && a.Name.Space == space {
			return a.Value
		}
	}
	return ""
}

// inkscapePrefix returns the prefix the root element binds to the Inkscape
// namespace, or the empty string.
func inkscapePrefix(attrs []xml.Attr) string {
	for _, a := range attrs {
		if a.Name.Space == "xmlns" && a.Value == nsInkscape {
			return a.Name.Local
		}
	}
	return ""
}

// Paths returns all path elements of the document, in document order,
// including those that aren't rendered.
func (d *Document) Paths() []Path {
	return slices.Clone(d.paths)
}

// Select returns the paths with the given ids, in the order of ids. Without
// ids, all rendered paths are returned. It fails with [ErrNoPaths] if the
// result would be empty.
func (d *Document) Select(ids []string) ([]Path, error) {
	if len(ids) == 0 {
		out := slices.DeleteFunc(d.Paths(), func(p Path) bool { return !p.Rendered })
		if len(out) == 0 {
			return nil, ErrNoPaths
		}
		return out, nil
	}
	out := make([]Path, 0, len(ids))
	for _, id := range ids {
		i := slices.IndexFunc(d.paths, func(p Path) bool { return p.ID == id })
		if i < 0 {
			return nil, fmt.Errorf("svgdoc: no path with id %q", id)
		}
		out = append(out, d.paths[i])
	}
	return out, nil
}

// target returns the group markers are inserted into: Inkscape's current
// layer if there is one and it can hold children, the root element otherwise.
func (d *Document) target() group {
	if g, ok := d.groups[d.currentLayer]; ok && g.end >= 0 {
		return g
	}
	return d.root
}

// AddMarker queues a marker for insertion and returns its id. Markers are
// inserted into the current layer, converted into its coordinate system.
func (d *Document) AddMarker(m Marker) (string, error) {
	t := d.target()
	if t.end < 0 {
		return "", errors.New("svgdoc: root element is self-closing")
	}
	if m.ID == "" {
		id, err := uuid.NewRandom()
		if err != nil {
			return "", err
		}
		m.ID = "centroid-dot-" + hex.EncodeToString(id[:3])
	}
	if m.Fill == "" {
		m.Fill = "red"
	}
	center := m.Center.Transform(t.ctm.Invert())

	var sb strings.Builder
	sb.WriteString("<circle")
	if d.inkscapeNS != "" {
		writeAttr(&sb, d.inkscapeNS+":label", m.ID)
	}
	writeAttr(&sb, "id", m.ID)
	writeAttr(&sb, "fill", m.Fill)
	writeAttr(&sb, "r", formatFloat(m.Radius))
	writeAttr(&sb, "cx", formatFloat(center.X))
	writeAttr(&sb, "cy", formatFloat(center.Y))
	sb.WriteString("/>")

	d.insertions = append(d.insertions, insertion{offset: t.end, text: sb.String()})
	return m.ID, nil
}

func writeAttr(sb *strings.Builder, name, value string) {
	sb.WriteByte(' ')
	sb.WriteString(name)
	sb.WriteString(`="`)
	xml.EscapeText(sb, []byte(value))
	sb.WriteByte('"')
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// WriteTo writes the document, including all markers added so far, to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	ins := slices.Clone(d.insertions)
	sort.SliceStable(ins, func(i, j int) bool { return ins[i].offset < ins[j].offset })

	var total int64
	prev := 0
	for _, in := range ins {
		n, err := w.Write(d.src[prev:in.offset])
		total += int64(n)
		if err != nil {
			return total, err
		}
		n, err = io.WriteString(w, in.text)
		total += int64(n)
		if err != nil {
			return total, err
		}
		prev = in.offset
	}
	n, err := w.Write(d.src[prev:])
	total += int64(n)
	return total, err
}
