package validation

import (
	"fmt"

	"github.com/Kolyrub/polygon-alg/pkg/geo"
	"github.com/Kolyrub/polygon-alg/pkg/protocol"
)

// ValidateRequest validates both polygons of a clip request.
func ValidateRequest(req protocol.Request) *Report {
	r := ValidatePolygon("subject", req.Subject)
	r.Merge(ValidatePolygon("cutter", req.Cutter))
	if r.Valid {
		validateContainment("cutter", req.Cutter, "subject", req.Subject, r)
		validateContainment("subject", req.Subject, "cutter", req.Cutter, r)
	}
	return r
}

// ValidatePolygon checks one polygon given as a vertex list. Errors mark
// input the clipper cannot take at all; warnings mark input it accepts but
// may clip incorrectly.
func ValidatePolygon(name string, pts []geo.Point) *Report {
	r := NewReport()

	if len(pts) == 0 {
		r.AddError(Result{
			Level:       LevelInput,
			Message:     "polygon has no vertices",
			Path:        name,
			ActualValue: 0,
			Expected:    ">= 1 vertex",
		})
		return r
	}

	finite := true
	for i, p := range pts {
		if !p.IsFinite() {
			finite = false
			r.AddError(Result{
				Level:       LevelInput,
				Message:     "vertex coordinates must be finite",
				Path:        fmt.Sprintf("%s[%d]", name, i),
				ActualValue: p,
			})
		}
	}
	if !finite {
		return r
	}

	validateDuplicates(name, pts, r)

	if len(pts) < 3 {
		r.AddWarning(Result{
			Level:       LevelGeometry,
			Message:     "polygon is degenerate",
			Path:        name,
			ActualValue: len(pts),
			Expected:    ">= 3 vertices",
		})
		return r
	}

	area := geo.SignedArea(pts)
	switch {
	case area < 0:
		r.AddWarning(Result{
			Level:       LevelGeometry,
			Message:     "interior is on the right of the edges",
			Path:        name,
			ActualValue: area,
			Expected:    "positive signed area",
			Suggestions: []string{"Reverse the vertex order"},
		})
	case area == 0:
		r.AddWarning(Result{
			Level:       LevelGeometry,
			Message:     "polygon has zero area",
			Path:        name,
			ActualValue: area,
		})
	}

	if !geo.IsConvex(pts) {
		r.AddWarning(Result{
			Level:       LevelGeometry,
			Message:     "polygon is not convex",
			Path:        name,
			Suggestions: []string{"Split the polygon into convex parts and clip each"},
		})
	}

	c := geo.Centroid(pts)
	r.AddInfo(Result{
		Level:       LevelGeometry,
		Message:     fmt.Sprintf("%d vertices, area %.6g, centroid (%.6g, %.6g)", len(pts), area, c.X, c.Y),
		Path:        name,
		ActualValue: area,
	})
	return r
}

func validateDuplicates(name string, pts []geo.Point, r *Report) {
	n := len(pts)
	if n < 2 {
		return
	}
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		if pts[i].Equal(pts[j]) {
			r.AddWarning(Result{
				Level:       LevelGeometry,
				Message:     "consecutive vertices coincide",
				Path:        fmt.Sprintf("%s[%d]", name, j),
				ActualValue: pts[j],
				Suggestions: []string{
					"Remove the repeated vertex",
					"A cutter with a zero-length edge clips every point away, so the request reports FAIL",
				},
			})
		}
	}
}

// validateContainment notes when every vertex of inner lies in outer, in
// which case the clip returns inner unchanged. Only convex polygons with their
// interior on the left are checked.
func validateContainment(innerName string, inner []geo.Point, outerName string, outer []geo.Point, r *Report) {
	if !usable(inner) || !usable(outer) {
		return
	}
	for _, v := range inner {
		if !geo.ContainsConvex(outer, v, 0) {
			return
		}
	}
	r.AddInfo(Result{
		Level:   LevelGeometry,
		Message: fmt.Sprintf("%s lies within %s", innerName, outerName),
		Path:    innerName,
	})
}

func usable(pts []geo.Point) bool {
	return len(pts) >= 3 && geo.SignedArea(pts) > 0 && geo.IsConvex(pts)
}
