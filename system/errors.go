// SPDX-License-Identifier: MIT

package system

import "errors"

var (
	// ErrNoEquations reports a system without rows.
	ErrNoEquations = errors.New("system: at least one equation is required")

	// ErrRowLength reports a row whose value count differs from n+1.
	ErrRowLength = errors.New("system: wrong number of values")

	// ErrBadNumber reports an entry that is not a finite decimal number.
	ErrBadNumber = errors.New("system: please enter valid numbers")

	// ErrNonFinite reports NaN or ±Inf inside decoded rows.
	ErrNonFinite = errors.New("system: NaN or Inf value")

	// ErrDecode wraps YAML/JSON syntax and schema failures.
	ErrDecode = errors.New("system: cannot decode")
)
