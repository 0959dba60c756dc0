// Package protocol implements the whitespace-delimited text exchange used by
// the clip server:
//
//	request:  <S> x1 y1 ... xS yS <P> x1 y1 ... xP yP
//	response: OK\n<N>\nx1 y1\n...  |  FAIL\n  |  ERROR\n
//
// Counts are followed by that many coordinate pairs; no other terminator is
// used.
package protocol

import (
	"bufio"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/Kolyrub/polygon-alg/pkg/geo"
)

// Status is the first token of a response.
type Status string

const (
	StatusOK    Status = "OK"
	StatusFail  Status = "FAIL"
	StatusError Status = "ERROR"
)

// Request carries the subject polygon and the cutting polygon.
type Request struct {
	Subject []geo.Point `json:"subject" yaml:"subject"`
	Cutter  []geo.Point `json:"cutter" yaml:"cutter"`
}

// Response is the outcome of a clip. Vertices is set only for StatusOK.
type Response struct {
	Status   Status      `json:"status"`
	Vertices []geo.Point `json:"vertices,omitempty"`
}

// OK returns a success response holding vertices.
func OK(vertices []geo.Point) Response {
	return Response{Status: StatusOK, Vertices: vertices}
}

// Fail returns the no-intersection response.
func Fail() Response {
	return Response{Status: StatusFail}
}

// Error returns the processing-failure response.
func Error() Response {
	return Response{Status: StatusError}
}

// ErrTooManyVertices is returned when a count exceeds the reader's limit.
var ErrTooManyVertices = errors.New("too many vertices")

// maxPrealloc caps the slice capacity reserved from a count read off the
// wire; larger polygons grow as their coordinates arrive.
const maxPrealloc = 1024

type tokenizer struct {
	sc *bufio.Scanner
}

func newTokenizer(r io.Reader) *tokenizer {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	return &tokenizer{sc: sc}
}

func (t *tokenizer) next() (string, error) {
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return "", errors.Wrap(err, "reading token")
		}
		return "", io.ErrUnexpectedEOF
	}
	return t.sc.Text(), nil
}

func (t *tokenizer) count(limit int) (int, error) {
	tok, err := t.next()
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid count %q", tok)
	}
	if n < 1 {
		return 0, errors.Errorf("count must be positive, got %d", n)
	}
	if limit > 0 && n > limit {
		return 0, errors.Wrapf(ErrTooManyVertices, "%d > %d", n, limit)
	}
	return n, nil
}

func (t *tokenizer) float() (float64, error) {
	tok, err := t.next()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid coordinate %q", tok)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.Errorf("coordinate %q is not finite", tok)
	}
	return v, nil
}

func (t *tokenizer) points(n int) ([]geo.Point, error) {
	pts := make([]geo.Point, 0, min(n, maxPrealloc))
	for i := 0; i < n; i++ {
		x, err := t.float()
		if err != nil {
			return nil, errors.Wrapf(err, "vertex %d", i)
		}
		y, err := t.float()
		if err != nil {
			return nil, errors.Wrapf(err, "vertex %d", i)
		}
		pts = append(pts, geo.Pt(x, y))
	}
	return pts, nil
}

func (t *tokenizer) polygon(limit int) ([]geo.Point, error) {
	n, err := t.count(limit)
	if err != nil {
		return nil, err
	}
	return t.points(n)
}

// ReadRequest parses one request from r. It stops reading after the last
// coordinate of the cutting polygon. maxVertices bounds each polygon's count;
// zero means no bound.
func ReadRequest(r io.Reader, maxVertices int) (Request, error) {
	t := newTokenizer(r)
	subject, err := t.polygon(maxVertices)
	if err != nil {
		return Request{}, errors.Wrap(err, "subject polygon")
	}
	cutter, err := t.polygon(maxVertices)
	if err != nil {
		return Request{}, errors.Wrap(err, "cutting polygon")
	}
	return Request{Subject: subject, Cutter: cutter}, nil
}

// WriteRequest writes req on a single line.
func WriteRequest(w io.Writer, req Request) error {
	var b strings.Builder
	writeCounted(&b, req.Subject, " ")
	b.WriteByte(' ')
	writeCounted(&b, req.Cutter, " ")
	b.WriteByte('\n')
	_, err := io.WriteString(w, b.String())
	return errors.Wrap(err, "writing request")
}

// WriteResponse writes resp in the line-oriented response format.
func WriteResponse(w io.Writer, resp Response) error {
	var b strings.Builder
	switch resp.Status {
	case StatusOK:
		b.WriteString("OK\n")
		writeCounted(&b, resp.Vertices, "\n")
		b.WriteByte('\n')
	case StatusFail:
		b.WriteString("FAIL\n")
	default:
		b.WriteString("ERROR\n")
	}
	_, err := io.WriteString(w, b.String())
	return errors.Wrap(err, "writing response")
}

// ReadResponse parses a response produced by WriteResponse.
func ReadResponse(r io.Reader) (Response, error) {
	t := newTokenizer(r)
	status, err := t.next()
	if err != nil {
		return Response{}, errors.Wrap(err, "reading status")
	}
	switch Status(status) {
	case StatusOK:
		n, err := t.count(0)
		if err != nil {
			return Response{}, errors.Wrap(err, "result polygon")
		}
		pts, err := t.points(n)
		if err != nil {
			return Response{}, errors.Wrap(err, "result polygon")
		}
		return OK(pts), nil
	case StatusFail:
		return Fail(), nil
	case StatusError:
		return Error(), nil
	}
	return Response{}, errors.Errorf("unknown status %q", status)
}

// FormatFloat renders v in the shortest form that parses back to v.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// writeCounted writes len(pts) followed by each "x y" pair, separated by sep.
func writeCounted(b *strings.Builder, pts []geo.Point, sep string) {
	b.WriteString(strconv.Itoa(len(pts)))
	for _, p := range pts {
		b.WriteString(sep)
		b.WriteString(FormatFloat(p.X))
		b.WriteByte(' ')
		b.WriteString(FormatFloat(p.Y))
	}
}
