package server

import (
	"log"

	"github.com/Kolyrub/polygon-alg/pkg/geo"
	"github.com/Kolyrub/polygon-alg/pkg/protocol"
)

// Clip runs one clip request and maps the outcome onto a response: OK with
// the result's vertices, FAIL when the polygons do not overlap, ERROR when
// the request cannot be processed. A panic inside the clipper is reported as
// ERROR rather than taking the process down.
func Clip(req protocol.Request) (resp protocol.Response) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("clip panic: %v", r)
			resp = protocol.Error()
		}
	}()

	subject := geo.BuildPolygon(req.Subject)
	cutter := geo.BuildPolygon(req.Cutter)
	result, ok, err := geo.ClipPolygon(subject, cutter)
	if err != nil {
		return protocol.Error()
	}
	if !ok {
		return protocol.Fail()
	}
	return protocol.OK(result.Points())
}
