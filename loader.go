package airfoil

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ReadContour reads airfoil coordinates from the file at path. Lines
// containing comment anywhere are skipped; every remaining line must carry
// at least two whitespace-separated floating-point tokens, x then y. Tokens
// beyond the first two are ignored.
//
// Failures are logged through the package logger and reported as an error
// wrapping one of the package sentinels; the returned slice is nil in that
// case.
func ReadContour(path, comment string) ([]Point, error) {
	f, err := os.Open(path)
	if err != nil {
		Logger().Error("unable to open contour file", "path", path, "err", err)
		return nil, fmt.Errorf("read contour: %w", err)
	}
	defer f.Close()

	pts, err := ParseContour(f, comment)
	if err != nil {
		Logger().Error("unable to parse contour file", "path", path, "err", err)
		if errors.Is(err, ErrInvalidContour) {
			Logger().Info("maybe not a valid airfoil file", "path", path)
		}
		return nil, fmt.Errorf("read contour %s: %w", path, err)
	}
	return pts, nil
}

// ParseContour parses coordinate data from r. See [ReadContour] for the
// format. The returned slice is freshly allocated and owned by the caller.
func ParseContour(r io.Reader, comment string) ([]Point, error) {
	var pts []Point
	sc := bufio.NewScanner(r)
	lineno := 0
	for sc.Scan() {
		lineno++
		line := sc.Text()
		if strings.Contains(line, comment) {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("%w: line %d: want two coordinate values, got %d",
				ErrInvalidContour, lineno, len(fields))
		}
		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: bad x value %q", ErrInvalidContour, lineno, fields[0])
		}
		y, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: bad y value %q", ErrInvalidContour, lineno, fields[1])
		}
		pts = append(pts, Pt(x, y))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read contour data: %w", err)
	}
	if len(pts) == 0 {
		return nil, ErrEmptyContour
	}
	return pts, nil
}
