package vmath

import "math"

// Point is a 2D position in either normalized (0..1) or pixel space
type Point struct {
	X, Y float64
}

// Line is a directed segment between two points
type Line struct {
	Start, End Point
}

// Length returns the Euclidean length of the line
func (l Line) Length() float64 {
	return Dist(l.Start, l.End)
}

// Midpoint returns the point halfway between Start and End
func (l Line) Midpoint() Point {
	return Lerp(l.Start, l.End, 0.5)
}

// Dist returns the Euclidean distance between a and b
func Dist(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Lerp interpolates between a and b, t in [0,1]
func Lerp(a, b Point, t float64) Point {
	return Point{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
	}
}

// DistancePointToSegment returns the distance from p to the closest point of segment ab.
// Projection parameter is clamped to [0,1]; a degenerate segment (a == b) yields |p-a|
func DistancePointToSegment(p, a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return Dist(p, a)
	}

	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	closest := Point{X: a.X + t*dx, Y: a.Y + t*dy}
	return Dist(p, closest)
}

// DistancePointToPath returns the minimum distance from p to any consecutive pair of the path.
// A single-point path degrades to point distance; an empty path returns +Inf
func DistancePointToPath(p Point, path []Point) float64 {
	switch len(path) {
	case 0:
		return math.Inf(1)
	case 1:
		return Dist(p, path[0])
	}

	best := math.Inf(1)
	for i := 1; i < len(path); i++ {
		if d := DistancePointToSegment(p, path[i-1], path[i]); d < best {
			best = d
		}
	}
	return best
}

// PathLength returns the summed length of all consecutive pairs
func PathLength(path []Point) float64 {
	total := 0.0
	for i := 1; i < len(path); i++ {
		total += Dist(path[i-1], path[i])
	}
	return total
}

// ScalePath maps normalized points onto a width x height surface
func ScalePath(path []Point, width, height float64) []Point {
	out := make([]Point, len(path))
	for i, p := range path {
		out[i] = Point{X: p.X * width, Y: p.Y * height}
	}
	return out
}

// SplitPath resamples a polyline into consecutive lines of approximately segLen.
// Each path edge is divided into max(1, round(len/segLen)) equal parts so the summed
// line length equals the path length; zero-length edges produce no lines
func SplitPath(path []Point, segLen float64) []Line {
	if len(path) < 2 || segLen <= 0 {
		return nil
	}

	lines := make([]Line, 0, int(PathLength(path)/segLen)+len(path))
	for i := 1; i < len(path); i++ {
		a, b := path[i-1], path[i]
		edge := Dist(a, b)
		if edge == 0 {
			continue
		}

		n := int(math.Round(edge / segLen))
		if n < 1 {
			n = 1
		}
		for k := 0; k < n; k++ {
			lines = append(lines, Line{
				Start: Lerp(a, b, float64(k)/float64(n)),
				End:   Lerp(a, b, float64(k+1)/float64(n)),
			})
		}
	}
	return lines
}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
