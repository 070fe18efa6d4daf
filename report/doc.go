// SPDX-License-Identifier: MIT

// Package report renders gauss results for people and for machines.
//
// Text output follows the worked-solution layout of a classroom solver:
// bannered sections, bracketed matrices with %8.2f cells, one "Step k"
// block per row operation, then the SOLUTION section (unique values, the
// inconsistency notice, or the parametric form with "where t1 ∈ ℝ").
//
// Structured output goes through Report, a flat serialisable snapshot of a
// gauss.Result, encoded as JSON, YAML (gopkg.in/yaml.v3) or CBOR
// (github.com/fxamacker/cbor/v2, core deterministic encoding).
//
// AI-Hints:
//   - Attach StepPrinter with gauss.WithObserver to get the intermediate matrices.
//   - Walkthrough runs a whole worked solution (header, steps, final matrix,
//     substitutions, solution) in the original order.
//   - Residual gives ‖A·x − b‖∞ for a candidate solution; use it to verify.
package report
