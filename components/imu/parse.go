package imu

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/adammck/cube/math3d"
)

// ErrMalformed is wrapped by every error returned from ParseLine.
var ErrMalformed = errors.New("malformed line")

// ParseLine parses a line of the form "<x>\t<y>", where both are integer
// angles in degrees. Surrounding whitespace (including the line ending) is
// ignored.
func ParseLine(line string) (x float64, y float64, err error) {
	fields := strings.Split(strings.TrimSpace(line), "\t")
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%w: %q: expected 2 fields, got %d", ErrMalformed, line, len(fields))
	}

	ix, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q: x: %s", ErrMalformed, line, err)
	}

	iy, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q: y: %s", ErrMalformed, line, err)
	}

	return float64(ix), float64(iy), nil
}

// FormatLine returns the line which ParseLine reads back as x and y, rounded
// to whole degrees.
func FormatLine(x, y float64) string {
	return fmt.Sprintf("%d\t%d\n", int(math.Round(x)), int(math.Round(y)))
}

// WriteLine writes the X and Y angles of ea to w as a single line.
func WriteLine(w io.Writer, ea math3d.EulerAngles) error {
	_, err := io.WriteString(w, FormatLine(ea.Pitch, ea.Heading))
	if err != nil {
		return fmt.Errorf("%w (while writing line)", err)
	}

	return nil
}
