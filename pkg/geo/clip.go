package geo

// ClipAgainstEdge clips subject to the half-plane on the left of e using one
// Sutherland-Hodgman pass. Only points classified Left are inside; points on
// the line of e count as outside. The subject's cursor makes one full turn
// and ends where it started. The second result reports whether the clipped
// polygon has any vertex.
func ClipAgainstEdge(subject *Polygon, e Edge) (*Polygon, bool) {
	result := NewPolygon()
	for i := 0; i < subject.Len(); i++ {
		cur := subject.Current()
		s := NewEdge(subject.Point(cur), subject.Point(subject.Next(cur)))
		orgInside := e.Classify(s.Org) == Left
		destInside := e.Classify(s.Dest) == Left

		switch {
		case orgInside && destInside:
			result.Insert(s.Dest)
		case orgInside && !destInside:
			if t, ok := e.LineParam(s); ok {
				result.Insert(e.Point(t))
			}
		case !orgInside && destInside:
			if t, ok := e.LineParam(s); ok {
				result.Insert(e.Point(t))
			}
			result.Insert(s.Dest)
		}
		subject.Advance(Clockwise)
	}
	return result, !result.IsEmpty()
}

// ClipPolygon returns the intersection of subject and cutter by clipping a
// copy of subject against every edge of cutter in clockwise order, starting
// at the cutter's cursor. Both polygons must be convex with their interior on
// the left of each edge; this is not checked.
//
// It reports false with a nil polygon when the polygons do not overlap, and
// ErrEmptyPolygon when either input has no vertex.
func ClipPolygon(subject, cutter *Polygon) (*Polygon, bool, error) {
	if subject.IsEmpty() || cutter.IsEmpty() {
		return nil, false, ErrEmptyPolygon
	}
	work := subject.Clone()
	for i := 0; i < cutter.Len(); i++ {
		e, err := cutter.Edge()
		if err != nil {
			return nil, false, err
		}
		next, ok := ClipAgainstEdge(work, e)
		work.Clear()
		if !ok {
			// Finish the turn so the cutter's cursor is left where it was.
			for ; i < cutter.Len(); i++ {
				cutter.Advance(Clockwise)
			}
			return nil, false, nil
		}
		work = next
		cutter.Advance(Clockwise)
	}
	return work, true, nil
}

// ClipPoints is ClipPolygon over point slices.
func ClipPoints(subject, cutter []Point) ([]Point, bool, error) {
	result, ok, err := ClipPolygon(BuildPolygon(subject), BuildPolygon(cutter))
	if err != nil || !ok {
		return nil, ok, err
	}
	return result.Points(), true, nil
}
