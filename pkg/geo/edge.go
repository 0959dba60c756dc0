package geo

import "math"

// parallelEpsilon is the determinant magnitude below which two edges are
// treated as parallel.
const parallelEpsilon = 1e-15

// PointClass is the position of a point relative to a directed edge.
type PointClass int

const (
	// Left is strictly on the left of the edge's line: the inside.
	Left PointClass = iota
	// Right is strictly on the right of the edge's line.
	Right
	// Behind is collinear and before the origin.
	Behind
	// Beyond is collinear and past the destination.
	Beyond
	// Between is collinear and strictly inside the segment.
	Between
	// Origin coincides with the edge's origin.
	Origin
	// Destination coincides with the edge's destination.
	Destination
)

var pointClassNames = [...]string{
	Left:        "LEFT",
	Right:       "RIGHT",
	Behind:      "BEHIND",
	Beyond:      "BEYOND",
	Between:     "BETWEEN",
	Origin:      "ORIGIN",
	Destination: "DESTINATION",
}

func (c PointClass) String() string {
	if c < 0 || int(c) >= len(pointClassNames) {
		return "UNKNOWN"
	}
	return pointClassNames[c]
}

// Edge is a directed segment from Org to Dest.
type Edge struct {
	Org  Point `json:"org"`
	Dest Point `json:"dest"`
}

// NewEdge returns the edge org→dest.
func NewEdge(org, dest Point) Edge {
	return Edge{Org: org, Dest: dest}
}

// Point returns org + t·(dest − org).
func (e Edge) Point(t float64) Point {
	return e.Org.Lerp(e.Dest, t)
}

// Vector returns dest − org.
func (e Edge) Vector() Point {
	return e.Dest.Sub(e.Org)
}

// Classify returns where p lies relative to e. The sign of the cross product
// decides LEFT/RIGHT; collinear points are split by projection and length.
func (e Edge) Classify(p Point) PointClass {
	a := e.Vector()
	b := p.Sub(e.Org)
	sa := a.Cross(b)
	switch {
	case sa > 0:
		return Left
	case sa < 0:
		return Right
	case a.Dot(b) < 0:
		return Behind
	case e.Org.Distance(e.Dest) < e.Org.Distance(p):
		return Beyond
	case e.Org.Equal(p):
		return Origin
	case e.Dest.Equal(p):
		return Destination
	}
	return Between
}

// LineParam returns the parameter along e at which the infinite lines through
// e and f meet. It reports false when the lines are parallel or coincident.
func (e Edge) LineParam(f Edge) (float64, bool) {
	t, _, ok := e.solve(f)
	return t, ok
}

// Intersect returns the parameter along e at which the segments e and f
// cross. It reports false for parallel segments and for lines that meet
// outside either segment.
func (e Edge) Intersect(f Edge) (float64, bool) {
	t, u, ok := e.solve(f)
	if !ok {
		return 0, false
	}
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return t, false
	}
	return t, true
}

// solve returns the parameters t (along e) and u (along f) of the meeting
// point of both lines.
func (e Edge) solve(f Edge) (t, u float64, ok bool) {
	a, b := e.Dest.X-e.Org.X, f.Org.X-f.Dest.X
	c, d := e.Dest.Y-e.Org.Y, f.Org.Y-f.Dest.Y
	denom := a*d - b*c
	if math.Abs(denom) < parallelEpsilon {
		return 0, 0, false
	}
	ex, ey := f.Org.X-e.Org.X, f.Org.Y-e.Org.Y
	t = (ex*d - ey*b) / denom
	u = (a*ey - c*ex) / denom
	return t, u, true
}
