package geo

import "math"

// SignedArea returns the signed area using the shoelace formula.
// Positive when the interior is on the left of each edge.
func SignedArea(pts []Point) float64 {
	n := len(pts)
	if n < 3 {
		return 0
	}
	area := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += pts[i].X * pts[j].Y
		area -= pts[j].X * pts[i].Y
	}
	return area / 2
}

// Area returns the unsigned area of the polygon.
func Area(pts []Point) float64 {
	return math.Abs(SignedArea(pts))
}

// IsConvex reports whether every turn along the ring goes the same way.
// Collinear runs are allowed.
func IsConvex(pts []Point) bool {
	n := len(pts)
	if n < 3 {
		return true
	}
	sign := 0
	for i := 0; i < n; i++ {
		a, b, c := pts[i], pts[(i+1)%n], pts[(i+2)%n]
		cross := b.Sub(a).Cross(c.Sub(b))
		switch {
		case cross > 0:
			if sign < 0 {
				return false
			}
			sign = 1
		case cross < 0:
			if sign > 0 {
				return false
			}
			sign = -1
		}
	}
	return true
}

// Centroid returns the centroid of the polygon, or the vertex average when
// the polygon is degenerate.
func Centroid(pts []Point) Point {
	n := len(pts)
	if n == 0 {
		return Point{}
	}
	a := SignedArea(pts)
	if n < 3 || math.Abs(a) < 1e-12 {
		sum := Point{}
		for _, v := range pts {
			sum = sum.Add(v)
		}
		return sum.Scale(1.0 / float64(n))
	}
	cx, cy := 0.0, 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		cross := pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
		cx += (pts[i].X + pts[j].X) * cross
		cy += (pts[i].Y + pts[j].Y) * cross
	}
	f := 1.0 / (6.0 * a)
	return Point{cx * f, cy * f}
}

// BoundingBox returns the axis-aligned bounding box as (min, max).
func BoundingBox(pts []Point) (Point, Point) {
	if len(pts) == 0 {
		return Point{}, Point{}
	}
	minP, maxP := pts[0], pts[0]
	for _, v := range pts[1:] {
		minP.X = math.Min(minP.X, v.X)
		minP.Y = math.Min(minP.Y, v.Y)
		maxP.X = math.Max(maxP.X, v.X)
		maxP.Y = math.Max(maxP.Y, v.Y)
	}
	return minP, maxP
}

// ContainsConvex reports whether pt lies inside or within tol of the convex
// polygon pts, whose interior is on the left of each edge.
func ContainsConvex(pts []Point, pt Point, tol float64) bool {
	n := len(pts)
	if n == 0 {
		return false
	}
	for i := 0; i < n; i++ {
		e := NewEdge(pts[i], pts[(i+1)%n])
		l := e.Vector().Length()
		if l == 0 {
			continue
		}
		if e.Vector().Cross(pt.Sub(e.Org))/l < -tol {
			return false
		}
	}
	return true
}
