// SPDX-License-Identifier: MIT

package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"
)

// Format names an output encoding.
type Format string

// Supported formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCBOR Format = "cbor"
)

// Formats lists every supported format in help-text order.
var Formats = []Format{FormatText, FormatJSON, FormatYAML, FormatCBOR}

// ParseFormat accepts a format name case-insensitively ("yml" is YAML).
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML, FormatCBOR:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%q: %w", s, ErrUnknownFormat)
	}
}

// Binary reports whether the format is not meant for a terminal.
func (f Format) Binary() bool { return f == FormatCBOR }

// WriteJSON writes v as indented JSON followed by a newline.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

// WriteYAML writes v as a YAML document (two-space indent).
func WriteYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}

	return enc.Close()
}

// cborMode is the core deterministic encoding: sorted map keys, shortest
// floats, so equal reports encode to equal bytes.
var cborMode = mustCBORMode()

func mustCBORMode() cbor.EncMode {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("report: cbor mode: %v", err))
	}

	return em
}

// WriteCBOR writes v as one deterministic CBOR data item. Struct fields
// use their json tag names as map keys.
func WriteCBOR(w io.Writer, v any) error {
	return cborMode.NewEncoder(w).Encode(v)
}

// Encode writes v in a structured format (json, yaml or cbor).
// FormatText is rejected; text goes through WriteText.
func Encode(w io.Writer, f Format, v any) error {
	switch f {
	case FormatJSON:
		return WriteJSON(w, v)
	case FormatYAML:
		return WriteYAML(w, v)
	case FormatCBOR:
		return WriteCBOR(w, v)
	default:
		return fmt.Errorf("encode %q: %w", f, ErrUnknownFormat)
	}
}
