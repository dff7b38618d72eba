// Package instance - TSPLIB readers and writers.
//
// Supported subset of the TSPLIB95 format:
//   - EDGE_WEIGHT_TYPE: EUC_2D with a NODE_COORD_SECTION (1-indexed ids),
//   - EDGE_WEIGHT_TYPE: EXPLICIT with EDGE_WEIGHT_FORMAT: FULL_MATRIX and an
//     EDGE_WEIGHT_SECTION of n×n whitespace-separated values (values may be
//     wrapped across lines arbitrarily).
//
// Parsing errors wrap ErrBadFormat with positional context so callers can
// both match the sentinel via errors.Is and show a useful message.
package instance

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// ErrBadFormat is wrapped by every TSPLIB parsing failure.
var ErrBadFormat = errors.New("instance: malformed TSPLIB input")

// Section and header keywords of the supported TSPLIB subset.
const (
	kwName          = "NAME"
	kwDimension     = "DIMENSION"
	kwEdgeWeight    = "EDGE_WEIGHT_TYPE"
	kwNodeCoords    = "NODE_COORD_SECTION"
	kwEdgeSection   = "EDGE_WEIGHT_SECTION"
	kwDisplaySecton = "DISPLAY_DATA_SECTION"
	kwEOF           = "EOF"

	weightEuclid2D = "EUC_2D"
	weightExplicit = "EXPLICIT"
)

// Load reads a TSPLIB instance from the file at path.
func Load(path string) (*Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads a TSPLIB instance from r. See the package-file doc for the
// supported subset. The resulting Instance carries coordinates only for the
// EUC_2D form.
//
// Complexity: O(n²) time and space (dominated by the distance matrix).
func Parse(r io.Reader) (*Instance, error) {
	var (
		sc         = bufio.NewScanner(r)
		name       = "Unknown"
		weightType string
		dimension  = -1
		line       string
	)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	// Header scan: stop at the first data section keyword.
	var section string
	for sc.Scan() {
		line = strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if line == kwNodeCoords || line == kwEdgeSection {
			section = line
			break
		}
		if line == kwEOF {
			break
		}

		key, value, ok := splitHeader(line)
		if !ok {
			continue // unknown free-form header lines are ignored
		}
		switch key {
		case kwName:
			name = value
		case kwDimension:
			d, err := strconv.Atoi(value)
			if err != nil || d <= 0 {
				return nil, fmt.Errorf("%w: bad DIMENSION %q", ErrBadFormat, value)
			}
			dimension = d
		case kwEdgeWeight:
			weightType = value
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if dimension <= 0 {
		return nil, fmt.Errorf("%w: DIMENSION missing", ErrBadFormat)
	}

	switch section {
	case kwNodeCoords:
		if weightType != "" && !strings.EqualFold(weightType, weightEuclid2D) {
			return nil, fmt.Errorf("%w: unsupported EDGE_WEIGHT_TYPE %q with coordinates", ErrBadFormat, weightType)
		}

		return parseCoordSection(sc, dimension, name)
	case kwEdgeSection:
		return parseMatrixSection(sc, dimension, name)
	default:
		return nil, fmt.Errorf("%w: no NODE_COORD_SECTION or EDGE_WEIGHT_SECTION", ErrBadFormat)
	}
}

// splitHeader splits "KEY : value" (or "KEY: value") into its parts.
func splitHeader(line string) (key, value string, ok bool) {
	idx := strings.Index(line, ":")
	if idx < 0 {
		return "", "", false
	}
	key = strings.TrimSpace(line[:idx])
	value = strings.TrimSpace(line[idx+1:])

	return key, value, key != ""
}

// parseCoordSection reads n coordinate lines ("id x y") and builds the
// symmetric Euclidean instance.
func parseCoordSection(sc *bufio.Scanner, n int, name string) (*Instance, error) {
	coords := make([][2]float64, 0, n)

	var line string
	for sc.Scan() {
		line = strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if line == kwEOF || line == kwDisplaySecton {
			break
		}

		fields := strings.Fields(line)
		if len(fields) < 3 {
			return nil, fmt.Errorf("%w: coordinate line %q", ErrBadFormat, line)
		}
		x, errX := strconv.ParseFloat(fields[1], 64)
		y, errY := strconv.ParseFloat(fields[2], 64)
		if errX != nil || errY != nil {
			return nil, fmt.Errorf("%w: coordinate line %q", ErrBadFormat, line)
		}
		coords = append(coords, [2]float64{x, y})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(coords) != n {
		return nil, fmt.Errorf("%w: DIMENSION %d but %d coordinates", ErrBadFormat, n, len(coords))
	}

	return FromPoints(coords, name)
}

// parseMatrixSection reads n*n whitespace-separated weights, tolerating
// arbitrary line wrapping, and builds the (possibly asymmetric) instance.
func parseMatrixSection(sc *bufio.Scanner, n int, name string) (*Instance, error) {
	values := make([]float64, 0, n*n)

	var line string
	for sc.Scan() {
		line = strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if line == kwEOF || line == kwDisplaySecton {
			break
		}
		for _, tok := range strings.Fields(line) {
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: weight %q", ErrBadFormat, tok)
			}
			values = append(values, v)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(values) != n*n {
		return nil, fmt.Errorf("%w: want %d weights, got %d", ErrBadFormat, n*n, len(values))
	}

	matrix := make([][]float64, n)
	var i int
	for i = 0; i < n; i++ {
		matrix[i] = values[i*n : (i+1)*n]
	}

	return New(matrix, name)
}

// FromPoints builds a symmetric Euclidean instance from 2-D points.
// The coordinates are retained on the instance (see Coordinates/WriteCoords).
//
// Complexity: O(n²) time and space.
func FromPoints(points [][2]float64, name string) (*Instance, error) {
	n := len(points)
	if n == 0 {
		return nil, ErrEmptyInstance
	}

	matrix := make([][]float64, n)

	var (
		i, j   int
		dx, dy float64
		d      float64
	)
	for i = 0; i < n; i++ {
		matrix[i] = make([]float64, n)
	}
	// Fill the upper triangle and mirror; diagonal stays exactly zero.
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			dx = points[i][0] - points[j][0]
			dy = points[i][1] - points[j][1]
			d = math.Hypot(dx, dy)
			matrix[i][j] = d
			matrix[j][i] = d
		}
	}

	inst, err := New(matrix, name)
	if err != nil {
		return nil, err
	}
	owned := make([][2]float64, n)
	copy(owned, points)

	return inst.withCoords(owned), nil
}

// Write emits inst as an EXPLICIT FULL_MATRIX TSPLIB file.
//
// Complexity: O(n²).
func Write(w io.Writer, inst *Instance) error {
	if inst == nil {
		return ErrEmptyInstance
	}
	n := inst.n

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "NAME : %s\n", inst.name)
	fmt.Fprintln(bw, "TYPE : TSP")
	fmt.Fprintf(bw, "DIMENSION : %d\n", n)
	fmt.Fprintln(bw, "EDGE_WEIGHT_TYPE : EXPLICIT")
	fmt.Fprintln(bw, "EDGE_WEIGHT_FORMAT : FULL_MATRIX")
	fmt.Fprintln(bw, "EDGE_WEIGHT_SECTION")

	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if j > 0 {
				fmt.Fprint(bw, " ")
			}
			fmt.Fprintf(bw, "%.6f", inst.dist[i*n+j])
		}
		fmt.Fprintln(bw)
	}
	fmt.Fprintln(bw, kwEOF)

	return bw.Flush()
}

// WriteCoords emits inst as an EUC_2D NODE_COORD_SECTION TSPLIB file.
// Fails with ErrEmptyInstance when the instance carries no coordinates
// (matrix-born instances cannot be written in coordinate form).
//
// Complexity: O(n).
func WriteCoords(w io.Writer, inst *Instance) error {
	if inst == nil || inst.coords == nil {
		return ErrEmptyInstance
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "NAME : %s\n", inst.name)
	fmt.Fprintln(bw, "TYPE : TSP")
	fmt.Fprintf(bw, "DIMENSION : %d\n", inst.n)
	fmt.Fprintln(bw, "EDGE_WEIGHT_TYPE : EUC_2D")
	fmt.Fprintln(bw, "NODE_COORD_SECTION")

	var i int
	for i = 0; i < inst.n; i++ {
		// TSPLIB node ids are 1-indexed.
		fmt.Fprintf(bw, "%d %.6f %.6f\n", i+1, inst.coords[i][0], inst.coords[i][1])
	}
	fmt.Fprintln(bw, kwEOF)

	return bw.Flush()
}
