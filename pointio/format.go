package pointio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/planar/closest"
)

// Write emits one "x y" line per point.
func Write(w io.Writer, points []closest.Point) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 64)
	for _, p := range points {
		buf = strconv.AppendFloat(buf[:0], p.X, 'g', -1, 64)
		buf = append(buf, ' ')
		buf = strconv.AppendFloat(buf, p.Y, 'g', -1, 64)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// Read parses the text format. Blank lines and lines starting with '#' are
// skipped. A malformed line yields an error wrapping ErrBadLine.
func Read(r io.Reader) ([]closest.Point, error) {
	var (
		out  []closest.Point
		line int
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		p, err := parseLine(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		out = append(out, p)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

func parseLine(text string) (closest.Point, error) {
	fields := strings.Fields(text)
	if len(fields) != 2 {
		return closest.Point{}, fmt.Errorf("want 2 fields, got %d: %w", len(fields), ErrBadLine)
	}
	x, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return closest.Point{}, fmt.Errorf("x %q: %w", fields[0], ErrBadLine)
	}
	y, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return closest.Point{}, fmt.Errorf("y %q: %w", fields[1], ErrBadLine)
	}

	return closest.Point{X: x, Y: y}, nil
}
