package geo

import (
	"errors"
	"fmt"
	"testing"
)

// sameRing reports whether got is want up to a rotation of the start vertex.
func sameRing(got, want []Point, tol float64) bool {
	if len(got) != len(want) {
		return false
	}
	if len(got) == 0 {
		return true
	}
	for start := range got {
		match := true
		for i := range want {
			if !approxPoint(got[(start+i)%len(got)], want[i], tol) {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

func clipPoints(t *testing.T, subject, cutter []Point) ([]Point, bool) {
	t.Helper()
	got, ok, err := ClipPoints(subject, cutter)
	if err != nil {
		t.Fatalf("ClipPoints: %v", err)
	}
	return got, ok
}

// --- Single edge ---

func TestClipAgainstEdgeHalvesSquare(t *testing.T) {
	sq := BuildPolygon([]Point{Pt(0, 0), Pt(2, 0), Pt(2, 2), Pt(0, 2)})
	res, ok := ClipAgainstEdge(sq, NewEdge(Pt(1, 1), Pt(3, 1)))
	if !ok {
		t.Fatal("expected a non-empty half")
	}
	want := []Point{Pt(2, 1), Pt(2, 2), Pt(0, 2), Pt(0, 1)}
	if got := res.Points(); !sameRing(got, want, tolerance) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestClipAgainstEdgeRestoresCursor(t *testing.T) {
	sq := BuildPolygon([]Point{Pt(0, 0), Pt(2, 0), Pt(2, 2), Pt(0, 2)})
	sq.Advance(Clockwise)
	before := sq.Current()
	ClipAgainstEdge(sq, NewEdge(Pt(1, 1), Pt(3, 1)))
	if sq.Current() != before {
		t.Errorf("cursor moved from %d to %d", before, sq.Current())
	}
}

func TestClipAgainstEdgeAllInside(t *testing.T) {
	tri := []Point{Pt(0, 1), Pt(2, 1), Pt(1, 3)}
	res, ok := ClipAgainstEdge(BuildPolygon(tri), NewEdge(Pt(-10, 0), Pt(10, 0)))
	if !ok {
		t.Fatal("triangle above the line should survive")
	}
	if got := res.Points(); !sameRing(got, tri, tolerance) {
		t.Errorf("expected %v unchanged, got %v", tri, got)
	}
}

func TestClipAgainstEdgeEmptySubject(t *testing.T) {
	res, ok := ClipAgainstEdge(NewPolygon(), NewEdge(Pt(0, 0), Pt(1, 0)))
	if ok || !res.IsEmpty() {
		t.Errorf("expected empty result, got %v", res.Points())
	}
}

func TestClipAgainstEdgeAllOutside(t *testing.T) {
	tri := BuildPolygon([]Point{Pt(0, -1), Pt(2, -1), Pt(1, -3)})
	res, ok := ClipAgainstEdge(tri, NewEdge(Pt(-10, 0), Pt(10, 0)))
	if ok || !res.IsEmpty() {
		t.Errorf("expected empty result, got %v", res.Points())
	}
}

// Points on the clip line are outside: a triangle touching the line from the
// outside clips to nothing.
func TestClipAgainstEdgeBoundaryIsOutside(t *testing.T) {
	tri := BuildPolygon([]Point{Pt(1, 0), Pt(2, -2), Pt(0, -2)})
	e := NewEdge(Pt(0, 0), Pt(2, 0))
	if c := e.Classify(Pt(1, 0)); c != Between {
		t.Fatalf("expected touching vertex to be BETWEEN, got %s", c)
	}
	if res, ok := ClipAgainstEdge(tri, e); ok {
		t.Errorf("expected no intersection, got %v", res.Points())
	}
}

// Boundary vertices only survive as computed crossing points, which starts
// the result at the first crossing rather than at the subject's cursor.
func TestClipAgainstEdgeBoundaryVerticesAsCrossings(t *testing.T) {
	sq := BuildPolygon([]Point{Pt(0, 0), Pt(2, 0), Pt(2, 2), Pt(0, 2)})
	res, ok := ClipAgainstEdge(sq, NewEdge(Pt(0, 0), Pt(2, 0)))
	if !ok {
		t.Fatal("expected non-empty result")
	}
	want := []Point{Pt(2, 0), Pt(2, 2), Pt(0, 2), Pt(0, 0)}
	if got := res.Points(); !samePoints(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

// --- Full clip ---

func TestClipPolygonOverlappingSquares(t *testing.T) {
	subject := []Point{Pt(0, 0), Pt(2, 0), Pt(2, 2), Pt(0, 2)}
	cutter := []Point{Pt(1, 1), Pt(3, 1), Pt(3, 3), Pt(1, 3)}
	got, ok := clipPoints(t, subject, cutter)
	if !ok {
		t.Fatal("expected the squares to intersect")
	}
	want := []Point{Pt(2, 2), Pt(1, 2), Pt(1, 1), Pt(2, 1)}
	if !sameRing(got, want, tolerance) {
		t.Errorf("expected unit square %v, got %v", want, got)
	}
}

func TestClipPolygonTriangles(t *testing.T) {
	subject := []Point{Pt(0, 0), Pt(2, 0), Pt(1, 3)}
	cutter := []Point{Pt(0, 2), Pt(1, -1), Pt(2, 2)}
	got, ok := clipPoints(t, subject, cutter)
	if !ok {
		t.Fatal("expected the triangles to intersect")
	}
	want := []Point{
		Pt(5.0/3, 1), Pt(4.0/3, 2), Pt(2.0/3, 2),
		Pt(1.0/3, 1), Pt(2.0/3, 0), Pt(4.0/3, 0),
	}
	if !sameRing(got, want, tolerance) {
		t.Errorf("expected hexagon %v, got %v", want, got)
	}
	if !IsConvex(got) {
		t.Errorf("result %v is not convex", got)
	}
}

func TestClipPolygonDisjoint(t *testing.T) {
	subject := []Point{Pt(-1, -1), Pt(1, -1), Pt(0, 1)}
	cutter := []Point{Pt(99, 99), Pt(101, 99), Pt(100, 101)}
	got, ok := clipPoints(t, subject, cutter)
	if ok || got != nil {
		t.Errorf("expected failure for disjoint triangles, got %v", got)
	}
}

// Squares sharing one edge only touch; with boundary points outside this is
// reported as no intersection.
func TestClipPolygonTouchingSquares(t *testing.T) {
	subject := []Point{Pt(0, 0), Pt(1, 0), Pt(1, 1), Pt(0, 1)}
	cutter := []Point{Pt(1, 0), Pt(2, 0), Pt(2, 1), Pt(1, 1)}
	if got, ok := clipPoints(t, subject, cutter); ok {
		t.Errorf("expected touching squares to report failure, got %v", got)
	}
}

func TestClipPolygonAgainstItself(t *testing.T) {
	shapes := map[string][]Point{
		"square":   {Pt(0, 0), Pt(2, 0), Pt(2, 2), Pt(0, 2)},
		"triangle": {Pt(0, 0), Pt(2, 0), Pt(1, 3)},
		"pentagon": {Pt(0, 0), Pt(4, 0), Pt(5, 3), Pt(2, 5), Pt(-1, 3)},
	}
	for name, pts := range shapes {
		t.Run(name, func(t *testing.T) {
			got, ok := clipPoints(t, pts, pts)
			if !ok {
				t.Fatal("self clip should succeed")
			}
			if !sameRing(got, pts, tolerance) {
				t.Errorf("expected %v up to rotation, got %v", pts, got)
			}
		})
	}
}

func TestClipPolygonContained(t *testing.T) {
	outer := []Point{Pt(0, 0), Pt(20, 0), Pt(20, 20), Pt(0, 20)}
	inner := []Point{Pt(5, 5), Pt(15, 5), Pt(15, 15), Pt(5, 15)}

	got, ok := clipPoints(t, inner, outer)
	if !ok || !approxEqual(Area(got), 100, tolerance) {
		t.Errorf("inner clipped by outer: area %f, ok=%v", Area(got), ok)
	}
	got, ok = clipPoints(t, outer, inner)
	if !ok || !approxEqual(Area(got), 100, tolerance) {
		t.Errorf("outer clipped by inner: area %f, ok=%v", Area(got), ok)
	}
}

func TestClipPolygonEmptyInput(t *testing.T) {
	sq := BuildPolygon([]Point{Pt(0, 0), Pt(1, 0), Pt(1, 1)})
	if _, _, err := ClipPolygon(NewPolygon(), sq); !errors.Is(err, ErrEmptyPolygon) {
		t.Errorf("empty subject: expected ErrEmptyPolygon, got %v", err)
	}
	if _, _, err := ClipPolygon(sq, NewPolygon()); !errors.Is(err, ErrEmptyPolygon) {
		t.Errorf("empty cutter: expected ErrEmptyPolygon, got %v", err)
	}
}

func TestClipPolygonLeavesInputsIntact(t *testing.T) {
	subjectPts := []Point{Pt(0, 0), Pt(2, 0), Pt(2, 2), Pt(0, 2)}
	subject := BuildPolygon(subjectPts)
	cutter := BuildPolygon([]Point{Pt(10, 10), Pt(12, 10), Pt(12, 12)})
	cutter.Advance(Clockwise)
	cur := cutter.Current()

	if _, ok, _ := ClipPolygon(subject, cutter); ok {
		t.Fatal("expected failure")
	}
	if cutter.Current() != cur {
		t.Errorf("cutter cursor moved from %d to %d", cur, cutter.Current())
	}
	if got := subject.Points(); !samePoints(got, subjectPts) {
		t.Errorf("subject changed to %v", got)
	}
}

// Overlapping regular polygons at assorted offsets: every result vertex lies
// in both inputs, and a failure means neither polygon has a vertex strictly
// inside the other.
func TestClipPolygonRegularPolygons(t *testing.T) {
	for _, n1 := range []int{3, 4, 7} {
		for _, n2 := range []int{3, 5, 8} {
			for _, dx := range []float64{0, 0.5, 1.5, 2.5, 4} {
				a := regularPolygon(Pt(0, 0), 2, n1)
				b := regularPolygon(Pt(dx, dx/3), 1.5, n2)
				t.Run(fmt.Sprintf("%d-%d-%.1f", n1, n2, dx), func(t *testing.T) {
					got, ok := clipPoints(t, a, b)
					if !ok {
						for _, v := range a {
							if ContainsConvex(b, v, -tolerance) {
								t.Errorf("failure although %v is inside the cutter", v)
							}
						}
						for _, v := range b {
							if ContainsConvex(a, v, -tolerance) {
								t.Errorf("failure although %v is inside the subject", v)
							}
						}
						return
					}
					for _, v := range got {
						if !ContainsConvex(a, v, 1e-7) || !ContainsConvex(b, v, 1e-7) {
							t.Errorf("vertex %v lies outside an input polygon", v)
						}
					}
					if Area(got) > Area(a)+tolerance || Area(got) > Area(b)+tolerance {
						t.Errorf("intersection area %f exceeds an input area", Area(got))
					}
				})
			}
		}
	}
	if _, ok := clipPoints(t, regularPolygon(Pt(0, 0), 2, 6), regularPolygon(Pt(0, 0), 1, 4)); !ok {
		t.Error("concentric polygons must intersect")
	}
}

// A repeated cutter vertex forms a zero-length edge with nothing on its left,
// so the whole clip fails.
func TestClipPolygonRepeatedCutterVertex(t *testing.T) {
	subject := []Point{Pt(1, 1), Pt(2, 1), Pt(2, 2), Pt(1, 2)}
	cutter := []Point{Pt(0, 0), Pt(4, 0), Pt(4, 0), Pt(4, 4), Pt(0, 4)}
	if c := NewEdge(Pt(4, 0), Pt(4, 0)).Classify(Pt(1, 1)); c != Beyond {
		t.Fatalf("expected BEYOND against a zero-length edge, got %s", c)
	}
	if got, ok := clipPoints(t, subject, cutter); ok {
		t.Errorf("expected failure, got %v", got)
	}
}
