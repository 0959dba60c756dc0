package geo

import "errors"

// ErrEmptyPolygon is returned when an operation needs at least one vertex.
var ErrEmptyPolygon = errors.New("polygon is empty")

// Rotation is a traversal direction around a ring.
type Rotation int

const (
	// Clockwise follows next links.
	Clockwise Rotation = iota
	// CounterClockwise follows previous links.
	CounterClockwise
)

// VertexID addresses a vertex inside its polygon's arena.
type VertexID int

// NoVertex is the null vertex id.
const NoVertex VertexID = -1

type vertex struct {
	pt   Point
	next VertexID
	prev VertexID
}

// Polygon is a closed ring of vertices stored in an arena. Vertices are
// addressed by VertexID and linked in both directions; a cursor marks the
// current vertex. A polygon exclusively owns its vertices.
//
// If Len() > 0, following Next Len() times from any vertex returns to it.
// If Len() == 0, Current() is NoVertex.
//
// A Polygon is not safe for concurrent use.
type Polygon struct {
	nodes []vertex
	free  []VertexID
	cur   VertexID
	size  int
}

// NewPolygon returns an empty polygon.
func NewPolygon() *Polygon {
	return &Polygon{cur: NoVertex}
}

// BuildPolygon returns a polygon whose ring visits pts in order, starting
// at pts[0].
func BuildPolygon(pts []Point) *Polygon {
	p := &Polygon{
		nodes: make([]vertex, 0, len(pts)),
		cur:   NoVertex,
	}
	for _, pt := range pts {
		p.Insert(pt)
	}
	return p
}

// Len returns the number of vertices.
func (p *Polygon) Len() int {
	return p.size
}

// IsEmpty reports whether the polygon has no vertices.
func (p *Polygon) IsEmpty() bool {
	return p.size == 0
}

// Current returns the cursor vertex, or NoVertex for an empty polygon.
func (p *Polygon) Current() VertexID {
	return p.cur
}

// Point returns the coordinates of vertex id.
func (p *Polygon) Point(id VertexID) Point {
	return p.nodes[id].pt
}

// CurrentPoint returns the coordinates of the cursor vertex.
func (p *Polygon) CurrentPoint() (Point, error) {
	if p.cur == NoVertex {
		return Point{}, ErrEmptyPolygon
	}
	return p.nodes[p.cur].pt, nil
}

// Next returns the clockwise neighbour of id.
func (p *Polygon) Next(id VertexID) VertexID {
	return p.nodes[id].next
}

// Prev returns the counter-clockwise neighbour of id.
func (p *Polygon) Prev(id VertexID) VertexID {
	return p.nodes[id].prev
}

// Neighbor returns the neighbour of id in direction rot.
func (p *Polygon) Neighbor(id VertexID, rot Rotation) VertexID {
	if rot == Clockwise {
		return p.nodes[id].next
	}
	return p.nodes[id].prev
}

// Advance moves the cursor one vertex in direction rot. The ring has no end,
// so callers bound their walks by Len().
func (p *Polygon) Advance(rot Rotation) {
	if p.cur == NoVertex {
		return
	}
	p.cur = p.Neighbor(p.cur, rot)
}

// Edge returns the edge from the cursor vertex to its clockwise neighbour.
func (p *Polygon) Edge() (Edge, error) {
	if p.cur == NoVertex {
		return Edge{}, ErrEmptyPolygon
	}
	v := p.nodes[p.cur]
	return Edge{Org: v.pt, Dest: p.nodes[v.next].pt}, nil
}

// Insert appends pt at the end of the ring, just before the cursor, so a walk
// from the cursor visits points in insertion order. The first vertex becomes
// the cursor.
func (p *Polygon) Insert(pt Point) VertexID {
	if p.cur == NoVertex {
		id := p.alloc(pt)
		p.nodes[id].next = id
		p.nodes[id].prev = id
		p.cur = id
		p.size = 1
		return id
	}
	return p.InsertAfter(p.nodes[p.cur].prev, pt)
}

// InsertAfter splices a new vertex holding pt immediately clockwise of at.
func (p *Polygon) InsertAfter(at VertexID, pt Point) VertexID {
	id := p.alloc(pt)
	next := p.nodes[at].next
	p.nodes[id].next = next
	p.nodes[id].prev = at
	p.nodes[next].prev = id
	p.nodes[at].next = id
	p.size++
	return id
}

// Remove unlinks vertex id from the ring and returns its coordinates. If id
// was the cursor, the cursor moves to its clockwise neighbour.
func (p *Polygon) Remove(id VertexID) Point {
	v := p.nodes[id]
	if p.size == 1 {
		p.cur = NoVertex
	} else {
		p.nodes[v.prev].next = v.next
		p.nodes[v.next].prev = v.prev
		if p.cur == id {
			p.cur = v.next
		}
	}
	p.nodes[id] = vertex{next: NoVertex, prev: NoVertex}
	p.free = append(p.free, id)
	p.size--
	return v.pt
}

// Clear removes every vertex, leaving an empty polygon.
func (p *Polygon) Clear() {
	for p.cur != NoVertex {
		p.Remove(p.nodes[p.cur].next)
	}
	p.nodes = p.nodes[:0]
	p.free = p.free[:0]
}

// Clone returns a deep copy whose ring visits the same points in the same
// order, starting at this polygon's cursor.
func (p *Polygon) Clone() *Polygon {
	return BuildPolygon(p.Points())
}

// Points walks the ring once clockwise from the cursor and returns the
// visited coordinates.
func (p *Polygon) Points() []Point {
	if p.cur == NoVertex {
		return nil
	}
	pts := make([]Point, 0, p.size)
	id := p.cur
	for i := 0; i < p.size; i++ {
		pts = append(pts, p.nodes[id].pt)
		id = p.nodes[id].next
	}
	return pts
}

func (p *Polygon) alloc(pt Point) VertexID {
	if n := len(p.free); n > 0 {
		id := p.free[n-1]
		p.free = p.free[:n-1]
		p.nodes[id] = vertex{pt: pt, next: NoVertex, prev: NoVertex}
		return id
	}
	p.nodes = append(p.nodes, vertex{pt: pt, next: NoVertex, prev: NoVertex})
	return VertexID(len(p.nodes) - 1)
}
