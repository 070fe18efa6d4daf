// SPDX-License-Identifier: MIT

package system

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/linsys/matrix"
)

// System is one linear system in augmented form.
type System struct {
	// Name identifies the system in reports; defaults to the file name.
	Name string `yaml:"name" json:"name"`

	// Description is free text shown above the solution.
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	// Rows holds the augmented matrix, one equation per row:
	// n coefficients followed by the constant.
	Rows [][]float64 `yaml:"rows" json:"rows"`
}

// N returns the number of unknowns (and equations).
func (s *System) N() int { return len(s.Rows) }

// Validate checks the n×(n+1) shape and that every value is finite.
func (s *System) Validate() error {
	n := len(s.Rows)
	if n == 0 {
		return ErrNoEquations
	}
	for i, row := range s.Rows {
		if len(row) != n+1 {
			return fmt.Errorf("row %d: %w: expected %d values, got %d", i+1, ErrRowLength, n+1, len(row))
		}
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("row %d, column %d: %w", i+1, j+1, ErrNonFinite)
			}
		}
	}

	return nil
}

// Matrix validates the system and copies its rows into a fresh *matrix.Dense.
func (s *System) Matrix() (*matrix.Dense, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return matrix.FromRows(s.Rows)
}

// Decode parses a YAML (or JSON) document into a validated System.
// Unknown fields are rejected so typos such as "row:" surface early.
func Decode(r io.Reader) (*System, error) {
	var s System
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// Load reads a system file. "*.txt" files are read as plain rows (ReadText);
// everything else is decoded as YAML/JSON. A missing Name is filled with
// the file's base name without extension.
func Load(path string) (*System, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read system file: %w", err)
	}

	var s *System
	if strings.EqualFold(filepath.Ext(path), ".txt") {
		s, err = ReadText(bytes.NewReader(data))
	} else {
		s, err = Decode(bytes.NewReader(data))
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	return s, nil
}

// Parse reads a system whose format is not known up front (e.g. stdin):
// when the first non-blank, non-comment line starts like a number the input
// is read as plain rows, otherwise it is decoded as YAML/JSON.
func Parse(data []byte) (*System, error) {
	if looksNumeric(data) {
		return ReadText(bytes.NewReader(data))
	}

	return Decode(bytes.NewReader(data))
}

func looksNumeric(data []byte) bool {
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		return strings.ContainsRune("0123456789+-.", rune(line[0]))
	}

	return false
}
