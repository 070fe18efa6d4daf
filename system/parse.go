// SPDX-License-Identifier: MIT

package system

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// ParseRow reads one equation typed as n+1 whitespace-separated numbers.
//
// Errors:
//   - ErrRowLength ("expected N values, got M") when the count is wrong.
//   - ErrBadNumber when an entry does not parse or is NaN/±Inf.
func ParseRow(line string, n int) ([]float64, error) {
	fields := strings.Fields(line)
	if len(fields) != n+1 {
		return nil, fmt.Errorf("%w: expected %d values, got %d", ErrRowLength, n+1, len(fields))
	}
	row := make([]float64, len(fields))
	for j, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: %q", ErrBadNumber, f)
		}
		row[j] = v
	}

	return row, nil
}

// ReadText reads a system written as plain rows: one equation per line,
// blank lines and lines starting with '#' ignored. The number of rows fixes n.
func ReadText(r io.Reader) (*System, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if len(lines) == 0 {
		return nil, ErrNoEquations
	}

	s := &System{Rows: make([][]float64, len(lines))}
	for i, line := range lines {
		row, err := ParseRow(line, len(lines))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		s.Rows[i] = row
	}

	return s, nil
}
