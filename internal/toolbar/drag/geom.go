package drag

import (
	"math"

	"github.com/sadopc/floatbar/internal/toolbar/option"
)

// Point is a position in container coordinates.
type Point struct {
	X, Y float64
}

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 { return math.Hypot(p.X-q.X, p.Y-q.Y) }

// Size is a width and height.
type Size struct {
	W, H float64
}

// Rect is an origin and a size.
type Rect struct {
	Point
	Size
}

// Center returns the middle of r.
func (r Rect) Center() Point {
	return Point{r.X + r.W/2, r.Y + r.H/2}
}

// Bounds is the range of valid top-left positions for the toolbar.
type Bounds struct {
	Min, Max Point
}

// BoundsFor returns the positions that keep a bar of size bar inside a
// container of size container. A bar larger than the container is pinned
// at the origin on that axis.
func BoundsFor(container, bar Size) Bounds {
	return Bounds{
		Max: Point{
			X: math.Max(0, container.W-bar.W),
			Y: math.Max(0, container.H-bar.H),
		},
	}
}

// Clamp limits p to b.
func (b Bounds) Clamp(p Point) Point {
	return Point{
		X: math.Max(b.Min.X, math.Min(p.X, b.Max.X)),
		Y: math.Max(b.Min.Y, math.Min(p.Y, b.Max.Y)),
	}
}

// AnchorPoint maps an anchor to its reference point: 10%, 50% or 90% of
// the container along each axis.
func AnchorPoint(a option.Anchor, container Size) Point {
	fx, fy := 0.5, 0.5
	switch {
	case a.IsLeft():
		fx = 0.1
	case a.IsRight():
		fx = 0.9
	}
	switch {
	case a.IsTop():
		fy = 0.1
	case a.IsBottom():
		fy = 0.9
	}
	return Point{container.W * fx, container.H * fy}
}

// Nearest returns the allowed anchor whose reference point is closest to
// center. An empty allowed list searches every anchor. Ties go to the
// earlier entry.
func Nearest(center Point, container Size, allowed []option.Anchor) option.Anchor {
	if len(allowed) == 0 {
		allowed = option.Anchors
	}
	best := allowed[0]
	bestDist := math.Inf(1)
	for _, a := range allowed {
		if d := AnchorPoint(a, container).Dist(center); d < bestDist {
			best, bestDist = a, d
		}
	}
	return best
}

// Place returns the top-left position of a bar mounted at anchor, keeping
// inset distance from the edges it touches.
func Place(a option.Anchor, container, bar Size, inset float64) Point {
	var p Point
	switch {
	case a.IsLeft():
		p.X = inset
	case a.IsRight():
		p.X = container.W - bar.W - inset
	default:
		p.X = (container.W - bar.W) / 2
	}
	switch {
	case a.IsTop():
		p.Y = inset
	case a.IsBottom():
		p.Y = container.H - bar.H - inset
	default:
		p.Y = (container.H - bar.H) / 2
	}
	return BoundsFor(container, bar).Clamp(p)
}
