// SPDX-License-Identifier: MIT

package report

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/linsys/gauss"
	"github.com/katalvlaran/linsys/matrix"
)

// Layout constants of the text rendering.
const (
	RuleWidth = 50

	CaptionInitial    = "Initial Augmented Matrix:"
	CaptionTriangular = "Final Upper Triangular Matrix:"
	CaptionRREF       = "Final Reduced Row Echelon Form (RREF):"
)

var (
	heavyRule = strings.Repeat("=", RuleWidth)
	lightRule = strings.Repeat("-", RuleWidth)
)

// WriteBanner writes a blank line and title framed by "=" rules.
func WriteBanner(w io.Writer, title string) error {
	var buf bytes.Buffer
	banner(&buf, title)
	_, err := w.Write(buf.Bytes())

	return err
}

// WriteMatrix prints m as bracketed rows of %8.2f cells between "-" rules,
// preceded by a blank line and caption when caption is non-empty:
//
//	[     2.00     1.00    -1.00     8.00 ]
func WriteMatrix(w io.Writer, caption string, m matrix.Matrix) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := renderMatrix(&buf, caption, m); err != nil {
		return err
	}
	_, err := w.Write(buf.Bytes())

	return err
}

// WriteText prints the SOLUTION section for res:
//   - Unique: one "x1 = 2.00" line per variable.
//   - NoSolution: the inconsistency notice.
//   - Infinite: free variables, their parameters and the parametric form.
func WriteText(w io.Writer, res gauss.Result) error {
	var buf bytes.Buffer
	banner(&buf, "SOLUTION")

	switch res.Kind {
	case gauss.Unique:
		buf.WriteString("\n✓ UNIQUE SOLUTION FOUND\n")
		buf.WriteString(lightRule + "\n")
		for i, v := range res.Solution {
			fmt.Fprintf(&buf, "%s = %.2f\n", varName(res, i), v)
		}
		buf.WriteString(heavyRule + "\n")
	case gauss.NoSolution:
		buf.WriteString("\n✗ NO SOLUTION (Inconsistent System)\n")
		buf.WriteString(lightRule + "\n")
		buf.WriteString("The system has no solution because it contains\n")
		buf.WriteString("contradictory equations (e.g., 0 = non-zero constant)\n")
		buf.WriteString(heavyRule + "\n")
	case gauss.Infinite:
		buf.WriteString("\n∞ INFINITELY MANY SOLUTIONS (Dependent System)\n")
		buf.WriteString(lightRule + "\n")
		if res.Parametric == nil {
			buf.WriteString("The system has infinitely many solutions.\n")
			buf.WriteString(heavyRule + "\n")
			break
		}
		parametric(&buf, res)
	default:
		return fmt.Errorf("report: WriteText: unsupported kind %v", res.Kind)
	}

	_, err := w.Write(buf.Bytes())

	return err
}

func banner(buf *bytes.Buffer, title string) {
	buf.WriteString("\n" + heavyRule + "\n")
	buf.WriteString(title + "\n")
	buf.WriteString(heavyRule + "\n")
}

func renderMatrix(buf *bytes.Buffer, caption string, m matrix.Matrix) error {
	if caption != "" {
		buf.WriteString("\n" + caption + "\n")
	}
	buf.WriteString(lightRule + "\n")
	r, c := m.Rows(), m.Cols()
	for i := 0; i < r; i++ {
		buf.WriteString("[ ")
		for j := 0; j < c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return err
			}
			fmt.Fprintf(buf, "%8.2f ", v)
		}
		buf.WriteString("]\n")
	}
	buf.WriteString(lightRule + "\n")

	return nil
}

// parametric writes the free-variable block and the closing rules.
func parametric(buf *bytes.Buffer, res gauss.Result) {
	p := res.Parametric
	free := make([]string, len(p.Free))
	lets := make([]string, len(p.Free))
	for k, col := range p.Free {
		free[k] = varName(res, col)
		lets[k] = free[k] + " = " + p.Params[k]
	}
	fmt.Fprintf(buf, "\nFree variables: %s\n", strings.Join(free, ", "))
	fmt.Fprintf(buf, "Let %s\n", strings.Join(lets, ", "))

	banner(buf, "PARAMETRIC SOLUTION:")
	for _, e := range p.Exprs {
		fmt.Fprintf(buf, "%s = %s\n", e.Name, e)
	}
	buf.WriteString(heavyRule + "\n")
	fmt.Fprintf(buf, "\nwhere %s ∈ ℝ\n", strings.Join(p.Params, ", "))
	buf.WriteString(heavyRule + "\n")
}
