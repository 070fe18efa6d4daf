// SPDX-License-Identifier: MIT

// Package system describes one square linear system as data: a name, an
// optional description and the rows of its augmented matrix [A | b].
//
// Systems come from three places:
//
//   - YAML (or JSON) files decoded with Load / Decode,
//   - plain text where each line holds one row of whitespace-separated
//     numbers (ReadText, also what Load uses for *.txt files),
//   - interactive entry, one row at a time, through ParseRow.
//
// Every path ends in Validate, which enforces the n×(n+1) finite-values
// contract before Matrix hands the rows to the solver.
//
// Example file:
//
//	name: three-by-three
//	description: unique solution x = (2, 3, -1)
//	rows:
//	  - [2, 1, -1, 8]
//	  - [-3, -1, 2, -11]
//	  - [-2, 1, 2, -3]
package system
