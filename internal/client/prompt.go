package client

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/Kolyrub/polygon-alg/pkg/geo"
	"github.com/Kolyrub/polygon-alg/pkg/protocol"
)

// Prompt asks for both polygons on out and reads them from in. Values may be
// separated by any whitespace, so a whole polygon can be pasted on one line.
func Prompt(in io.Reader, out io.Writer) (protocol.Request, error) {
	sc := bufio.NewScanner(in)
	sc.Split(bufio.ScanWords)

	subject, err := promptPolygon(sc, out, "first")
	if err != nil {
		return protocol.Request{}, err
	}
	cutter, err := promptPolygon(sc, out, "second")
	if err != nil {
		return protocol.Request{}, err
	}
	return protocol.Request{Subject: subject, Cutter: cutter}, nil
}

func promptPolygon(sc *bufio.Scanner, out io.Writer, which string) ([]geo.Point, error) {
	fmt.Fprintf(out, "Enter the vertex count of the %s polygon: ", which)
	tok, err := scanToken(sc)
	if err != nil {
		return nil, err
	}
	n, err := strconv.Atoi(tok)
	if err != nil || n < 1 {
		return nil, fmt.Errorf("invalid vertex count %q", tok)
	}

	fmt.Fprintf(out, "Enter the %s polygon's vertices clockwise as x y pairs:\n", which)
	pts := make([]geo.Point, 0, n)
	for i := 0; i < n; i++ {
		var xy [2]float64
		for j := range xy {
			tok, err := scanToken(sc)
			if err != nil {
				return nil, err
			}
			if xy[j], err = strconv.ParseFloat(tok, 64); err != nil {
				return nil, fmt.Errorf("vertex %d: invalid coordinate %q", i, tok)
			}
		}
		pts = append(pts, geo.Pt(xy[0], xy[1]))
	}
	return pts, nil
}

func scanToken(sc *bufio.Scanner) (string, error) {
	if sc.Scan() {
		return sc.Text(), nil
	}
	if err := sc.Err(); err != nil {
		return "", err
	}
	return "", io.ErrUnexpectedEOF
}
