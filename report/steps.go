// SPDX-License-Identifier: MIT

package report

import (
	"bytes"
	"fmt"
	"io"

	"github.com/katalvlaran/linsys/gauss"
	"github.com/katalvlaran/linsys/matrix"
)

// StepPrinter is a gauss.Observer that prints every row operation as
// "Step k: <description>" followed by the matrix after the step. The first
// back-substituted value opens a BACK SUBSTITUTION banner; each value then
// prints as "x3 = -1.00".
//
// Observe cannot return an error, so the first write failure is kept and
// later steps are dropped; check Err once the solve returns.
type StepPrinter struct {
	w            io.Writer
	err          error
	substituting bool
}

// NewStepPrinter returns a printer writing to w.
func NewStepPrinter(w io.Writer) *StepPrinter {
	return &StepPrinter{w: w}
}

// Observe implements gauss.Observer.
func (p *StepPrinter) Observe(step gauss.Step) {
	if p.err != nil {
		return
	}

	var buf bytes.Buffer
	if step.Op == gauss.OpSubstitute {
		if !p.substituting {
			banner(&buf, "BACK SUBSTITUTION")
			p.substituting = true
		}
		fmt.Fprintf(&buf, "%s\n", step.Description())
	} else if step.Matrix != nil {
		caption := fmt.Sprintf("Step %d: %s", step.Seq, step.Description())
		if p.err = renderMatrix(&buf, caption, step.Matrix); p.err != nil {
			return
		}
	}
	_, p.err = p.w.Write(buf.Bytes())
}

// Err returns the first write error, if any.
func (p *StepPrinter) Err() error { return p.err }

// Walkthrough solves a copy of m with method and prints the complete worked
// solution to w: method banner, initial matrix, every step, the final
// triangular/RREF matrix, back-substitution (Gauss, unique systems) and the
// SOLUTION section.
//
// extra, when non-nil, observes the same steps (e.g. a structured logger).
// opts must not carry WithObserver; use extra instead.
//
// Errors: the input contract errors of gauss.Solve, and write errors from w.
func Walkthrough(w io.Writer, m matrix.Matrix, method gauss.Method, extra gauss.Observer, opts ...gauss.Option) (gauss.Result, error) {
	if err := matrix.ValidateAugmented(m); err != nil {
		return gauss.Result{}, err
	}
	work, err := matrix.CloneDense(m)
	if err != nil {
		return gauss.Result{}, err
	}

	if err = WriteBanner(w, method.Title()); err != nil {
		return gauss.Result{}, err
	}
	if err = WriteMatrix(w, CaptionInitial, work); err != nil {
		return gauss.Result{}, err
	}

	printer := NewStepPrinter(w)
	opts = append(opts[:len(opts):len(opts)], gauss.WithObserver(gauss.Observers(printer, extra)))

	var (
		red     gauss.Reduction
		caption string
	)
	switch method {
	case gauss.MethodGauss:
		red, err = gauss.EliminateGauss(work, opts...)
		caption = CaptionTriangular
	case gauss.MethodGaussJordan:
		red, err = gauss.EliminateGaussJordan(work, opts...)
		caption = CaptionRREF
	default:
		return gauss.Result{}, fmt.Errorf("%v: %w", method, gauss.ErrUnknownMethod)
	}
	if err != nil {
		return gauss.Result{}, err
	}
	if err = printer.Err(); err != nil {
		return gauss.Result{}, err
	}
	if err = WriteMatrix(w, caption, red.Matrix); err != nil {
		return gauss.Result{}, err
	}

	res, err := gauss.ClassifyAndSolve(red, opts...)
	if err != nil {
		return gauss.Result{}, err
	}
	if err = printer.Err(); err != nil {
		return gauss.Result{}, err
	}

	return res, WriteText(w, res)
}
