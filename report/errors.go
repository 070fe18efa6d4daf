// SPDX-License-Identifier: MIT

package report

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownFormat indicates an output format other than text, json, yaml or cbor.
	ErrUnknownFormat = errors.New("report: unknown output format")

	// ErrNoResult indicates a Report built from a Result without a reduced matrix.
	ErrNoResult = errors.New("report: result has no reduced matrix")
)

func reportErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
