package centroid

import (
	"fmt"
	"math"

	parsestrconv "github.com/tdewolff/parse/v2/strconv"
)

// ArcTolerance is the accuracy with which elliptical arcs in path data are
// approximated by cubic Béziers.
const ArcTolerance = 1e-3

// argument counts of the path data commands
var svgCmdArgs = map[byte]int{
	'M': 2,
	'Z': 0,
	'L': 2,
	'H': 1,
	'V': 1,
	'C': 6,
	'S': 4,
	'Q': 4,
	'T': 2,
	'A': 7,
}

func skipCommaWhitespace(b []byte) int {
	i := 0
	for i < len(b) && (b[i] == ' ' || b[i] == ',' || b[i] == '\n' || b[i] == '\r' || b[i] == '\t') {
		i++
	}
	return i
}

func isNumberStart(c byte) bool {
	return c >= '0' && c <= '9' || c == '.' || c == '-' || c == '+'
}

func pathDataError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidPathData, fmt.Sprintf(format, args...))
}

// ParseSVG parses SVG path data, the contents of a path element's d
// attribute.
//
// All commands are supported. Smooth curves reflect the previous control
// point, and elliptical arcs are approximated with cubic Béziers to
// [ArcTolerance]. The final cubic of an arc ends exactly on the arc's end
// point.
func ParseSVG(d string) (BezPath, error) {
	var p BezPath
	path := []byte(d)
	i := skipCommaWhitespace(path)
	if i == len(path) {
		return p, nil
	}
	if path[i] != 'M' && path[i] != 'm' {
		return nil, pathDataError("path data must start with a moveto command, found %q", path[i])
	}

	var (
		f [7]float64
		// current point, start of the current subpath and the last control
		// points of cubic and quadratic curves
		cur, start, lastC, lastQ Point
		prevCmd                  = byte('z')
	)
	for {
		i += skipCommaWhitespace(path[i:])
		if i >= len(path) {
			break
		}

		cmd := prevCmd
		repeat := true
		if cmd == 'z' || cmd == 'Z' || !isNumberStart(path[i]) {
			cmd = path[i]
			repeat = false
			i++
			i += skipCommaWhitespace(path[i:])
		}

		upper := cmd
		if 'a' <= cmd && cmd <= 'z' {
			upper -= 'a' - 'A'
		}
		nargs, ok := svgCmdArgs[upper]
		if !ok {
			return nil, pathDataError("unknown command %q at position %d", cmd, i)
		}
		for j := 0; j < nargs; j++ {
			if upper == 'A' && (j == 3 || j == 4) {
				// flags are single digits and may be written without separators
				if i < len(path) && (path[i] == '0' || path[i] == '1') {
					f[j] = float64(path[i] - '0')
					i++
				} else {
					return nil, pathDataError("arc flags must be 0 or 1 in command %q at position %d", cmd, i+1)
				}
			} else {
				num, n := parsestrconv.ParseFloat(path[i:])
				if n == 0 {
					if repeat && j == 0 {
						return nil, pathDataError("unknown command %q at position %d", path[i], i+1)
					}
					return nil, pathDataError("command %q needs %d numbers, at position %d", cmd, nargs, i+1)
				}
				f[j] = num
				i += n
			}
			i += skipCommaWhitespace(path[i:])
		}

		rel := cmd != upper
		abs := func(x, y float64) Point {
			if rel {
				return Point{cur.X + x, cur.Y + y}
			}
			return Point{x, y}
		}

		var end Point
		switch upper {
		case 'M':
			end = abs(f[0], f[1])
			p.MoveTo(end)
			start = end
			// subsequent pairs are implicit linetos
			if rel {
				cmd = 'l'
			} else {
				cmd = 'L'
			}
		case 'Z':
			p.ClosePath()
			end = start
		case 'L':
			end = abs(f[0], f[1])
			p.LineTo(end)
		case 'H':
			end = Point{f[0], cur.Y}
			if rel {
				end.X += cur.X
			}
			p.LineTo(end)
		case 'V':
			end = Point{cur.X, f[0]}
			if rel {
				end.Y += cur.Y
			}
			p.LineTo(end)
		case 'C':
			cp1 := abs(f[0], f[1])
			cp2 := abs(f[2], f[3])
			end = abs(f[4], f[5])
			p.CubicTo(cp1, cp2, end)
			lastC = cp2
		case 'S':
			cp1 := cur
			if prevCmd == 'C' || prevCmd == 'c' || prevCmd == 'S' || prevCmd == 's' {
				cp1 = cur.Translate(cur.Sub(lastC))
			}
			cp2 := abs(f[0], f[1])
			end = abs(f[2], f[3])
			p.CubicTo(cp1, cp2, end)
			lastC = cp2
		case 'Q':
			cp := abs(f[0], f[1])
			end = abs(f[2], f[3])
			p.QuadTo(cp, end)
			lastQ = cp
		case 'T':
			cp := cur
			if prevCmd == 'Q' || prevCmd == 'q' || prevCmd == 'T' || prevCmd == 't' {
				cp = cur.Translate(cur.Sub(lastQ))
			}
			end = abs(f[0], f[1])
			p.QuadTo(cp, end)
			lastQ = cp
		case 'A':
			end = abs(f[5], f[6])
			appendSVGArc(&p, SVGArc{
				From:      cur,
				To:        end,
				Radii:     Vec2{f[0], f[1]},
				XRotation: f[2] * math.Pi / 180,
				LargeArc:  f[3] == 1,
				Sweep:     f[4] == 1,
			})
		}
		prevCmd = cmd
		cur = end
	}
	return p, nil
}

func appendSVGArc(p *BezPath, svgArc SVGArc) {
	if svgArc.From == svgArc.To {
		// Arcs with coinciding end points are omitted.
		return
	}
	arc, ok := svgArc.Arc()
	if !ok {
		p.LineTo(svgArc.To)
		return
	}
	n := len(*p)
	for el := range arc.PathElements(ArcTolerance) {
		if el.Kind == CubicToKind {
			p.Push(el)
		}
	}
	if len(*p) > n {
		(*p)[len(*p)-1].P2 = svgArc.To
	} else {
		p.LineTo(svgArc.To)
	}
}

// ParseTransform parses the value of an SVG transform attribute, a list of
// matrix, translate, scale, rotate, skewX and skewY functions. An empty
// string is the identity.
func ParseTransform(s string) (Affine, error) {
	aff := Identity
	b := []byte(s)
	i := 0
	for {
		i += skipCommaWhitespace(b[i:])
		if i >= len(b) {
			return aff, nil
		}

		nameStart := i
		for i < len(b) && (b[i] >= 'a' && b[i] <= 'z' || b[i] >= 'A' && b[i] <= 'Z') {
			i++
		}
		name := string(b[nameStart:i])
		if name == "" {
			return Identity, pathDataError("expected transform function at position %d", i+1)
		}
		i += skipCommaWhitespace(b[i:])
		if i >= len(b) || b[i] != '(' {
			return Identity, pathDataError("expected '(' after %s", name)
		}
		i++

		var args []float64
		for {
			i += skipCommaWhitespace(b[i:])
			if i >= len(b) {
				return Identity, pathDataError("unterminated %s", name)
			}
			if b[i] == ')' {
				i++
				break
			}
			num, n := parsestrconv.ParseFloat(b[i:])
			if n == 0 {
				return Identity, pathDataError("bad argument to %s at position %d", name, i+1)
			}
			args = append(args, num)
			i += n
		}

		t, err := transformFunc(name, args)
		if err != nil {
			return Identity, err
		}
		aff = aff.Mul(t)
	}
}

func transformFunc(name string, args []float64) (Affine, error) {
	want := func(counts ...int) error {
		for _, c := range counts {
			if len(args) == c {
				return nil
			}
		}
		return pathDataError("%s takes %v arguments, got %d", name, counts, len(args))
	}
	deg := func(a float64) float64 { return a * math.Pi / 180 }

	switch name {
	case "matrix":
		if err := want(6); err != nil {
			return Identity, err
		}
		return Affine{args[0], args[1], args[2], args[3], args[4], args[5]}, nil
	case "translate":
		if err := want(1, 2); err != nil {
			return Identity, err
		}
		v := Vec2{X: args[0]}
		if len(args) == 2 {
			v.Y = args[1]
		}
		return Translate(v), nil
	case "scale":
		if err := want(1, 2); err != nil {
			return Identity, err
		}
		if len(args) == 1 {
			return Scale(args[0], args[0]), nil
		}
		return Scale(args[0], args[1]), nil
	case "rotate":
		if err := want(1, 3); err != nil {
			return Identity, err
		}
		if len(args) == 1 {
			return Rotate(deg(args[0])), nil
		}
		return RotateAbout(deg(args[0]), Pt(args[1], args[2])), nil
	case "skewX":
		if err := want(1); err != nil {
			return Identity, err
		}
		return Skew(math.Tan(deg(args[0])), 0), nil
	case "skewY":
		if err := want(1); err != nil {
			return Identity, err
		}
		return Skew(0, math.Tan(deg(args[0]))), nil
	default:
		return Identity, pathDataError("unknown transform function %q", name)
	}
}
