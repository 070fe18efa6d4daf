// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"math"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/linsys/gauss"
	"github.com/katalvlaran/linsys/matrix"
	"github.com/katalvlaran/linsys/report"
	"github.com/katalvlaran/linsys/system"
)

// MethodBoth runs both eliminations on independent copies and compares them.
const MethodBoth = "both"

// VerifyTolerance is the largest accepted ‖A·x − b‖∞ under --verify.
const VerifyTolerance = 1e-8

// SolveOptions holds flags for the solve command.
type SolveOptions struct {
	Method      string // "gauss" | "gauss-jordan" | "both"
	Steps       bool   // print every row operation (text format)
	Verify      bool   // check the residual of the answer
	VarPrefix   string
	ParamPrefix string
}

// Comparison is the structured output of --method both.
type Comparison struct {
	ID      string           `json:"id" yaml:"id"`
	Agree   bool             `json:"agree" yaml:"agree"`
	Reports []*report.Report `json:"reports" yaml:"reports"`
}

// NewSolveCommand creates the solve command.
func NewSolveCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SolveOptions{}

	cmd := &cobra.Command{
		Use:   "solve [system-file]",
		Short: "Solve a linear system read from a file or stdin",
		Long: `Solve a linear system given as an augmented matrix.

The file is YAML/JSON (name, description, rows) or, with a .txt extension,
plain rows of space-separated numbers. Without a file (or with "-") the
system is read from stdin and its format is detected from the first line.`,
		Example: `  linsys solve system.yaml
  linsys solve --method gauss-jordan --steps system.txt
  echo "2 1 5
1 -1 1" | linsys solve --method both --verify --format json`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // main prints the error once
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(rootOpts, opts, args, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Method, "method", "m", gauss.MethodGauss.String(), "elimination method (gauss|gauss-jordan|both)")
	cmd.Flags().BoolVarP(&opts.Steps, "steps", "s", false, "print every row operation with the matrix after it")
	cmd.Flags().BoolVar(&opts.Verify, "verify", false, "fail unless the answer satisfies A·x = b")
	cmd.Flags().StringVar(&opts.VarPrefix, "var-prefix", gauss.DefaultVariablePrefix, "variable name prefix")
	cmd.Flags().StringVar(&opts.ParamPrefix, "param-prefix", gauss.DefaultParameterPrefix, "free parameter name prefix")

	return cmd
}

func runSolve(rootOpts *RootOptions, opts *SolveOptions, args []string, cmd *cobra.Command) error {
	out, err := formatter(rootOpts, cmd)
	if err != nil {
		return err
	}
	logger, err := newLogger(cmd.ErrOrStderr(), rootOpts)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid flags", err)
	}

	methods, err := parseMethods(opts.Method)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid method", err)
	}
	if opts.VarPrefix == "" || opts.ParamPrefix == "" {
		return NewExitError(ExitCommandError, "name prefixes must be non-empty")
	}

	sys, err := loadSystem(args, cmd.InOrStdin())
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load system", err)
	}
	m, err := sys.Matrix()
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid system", err)
	}

	id := newSolveID()
	log := logger.With().Str("solve_id", id).Str("system", sys.Name).Logger()
	out.VerboseLog("Solving %q (%d unknowns) with %s", sys.Name, sys.N(), opts.Method)

	s := &solver{
		out:  out,
		log:  log,
		opts: opts,
		sys:  sys,
		orig: m,
	}
	if out.Text() && sys.Description != "" {
		fmt.Fprintf(out.Writer, "%s: %s\n", sys.Name, sys.Description)
	}

	reports := make([]*report.Report, 0, len(methods))
	results := make([]gauss.Result, 0, len(methods))
	for _, method := range methods {
		res, rep, err := s.solve(method)
		if err != nil {
			return err
		}
		rep.ID = id
		results = append(results, res)
		reports = append(reports, rep)
	}

	var failure error
	for _, rep := range reports {
		if rep.Residual != nil && *rep.Residual > VerifyTolerance {
			failure = NewExitError(ExitFailure, fmt.Sprintf("verification failed: residual %.3e with %s", *rep.Residual, rep.Method))
			log.Error().Str("method", rep.Method).Float64("residual", *rep.Residual).Msg("verification failed")
		}
	}

	if len(methods) == 1 {
		if !out.Text() {
			if err := out.Structured(reports[0]); err != nil {
				return WrapExitError(ExitCommandError, "failed to write output", err)
			}
		}
		return failure
	}

	agree := resultsAgree(results[0], results[1])
	log.Info().Bool("agree", agree).Msg("methods compared")
	if out.Text() {
		fmt.Fprintf(out.Writer, "\nMethods agree: %s\n", yesNo(agree))
	} else if err := out.Structured(Comparison{ID: id, Agree: agree, Reports: reports}); err != nil {
		return WrapExitError(ExitCommandError, "failed to write output", err)
	}
	if !agree && failure == nil {
		failure = NewExitError(ExitFailure, "gauss and gauss-jordan disagree")
	}

	return failure
}

// solver carries one invocation's state across methods.
type solver struct {
	out  *OutputFormatter
	log  zerolog.Logger
	opts *SolveOptions
	sys  *system.System
	orig *matrix.Dense
}

// solve runs one method, prints text output when asked, and builds the report.
func (s *solver) solve(method gauss.Method) (gauss.Result, *report.Report, error) {
	log := s.log.With().Str("method", method.String()).Logger()
	gopts := []gauss.Option{
		gauss.WithVariablePrefix(s.opts.VarPrefix),
		gauss.WithParameterPrefix(s.opts.ParamPrefix),
	}
	steps := stepLogger{log: log}

	var (
		res gauss.Result
		err error
	)
	switch {
	case s.out.Text() && s.opts.Steps:
		res, err = report.Walkthrough(s.out.Writer, s.orig, method, steps, gopts...)
	default:
		res, err = gauss.Solve(s.orig, method, append(gopts, gauss.WithObserver(steps))...)
		if err == nil && s.out.Text() {
			err = writeSummary(s.out.Writer, method, res)
		}
	}
	if err != nil {
		return gauss.Result{}, nil, WrapExitError(ExitCommandError, "solve failed", err)
	}

	rep, err := report.FromResult(res, s.sys)
	if err != nil {
		return gauss.Result{}, nil, WrapExitError(ExitCommandError, "solve failed", err)
	}
	if s.opts.Verify {
		if err = s.verify(res, rep); err != nil {
			return gauss.Result{}, nil, WrapExitError(ExitCommandError, "verification failed", err)
		}
	}

	log.Info().
		Str("kind", res.Kind.String()).
		Int("rank", res.Rank).
		Int("unknowns", res.N).
		Msg("solved")

	return res, rep, nil
}

// verify fills rep.Residual. Unique answers are checked directly; infinite
// ones at every parameter equal to 0 and to 1. NoSolution has nothing to check.
func (s *solver) verify(res gauss.Result, rep *report.Report) error {
	var candidates [][]float64
	switch res.Kind {
	case gauss.Unique:
		candidates = append(candidates, res.Solution)
	case gauss.Infinite:
		k := len(res.Parametric.Params)
		for _, t := range []float64{0, 1} {
			params := make([]float64, k)
			for i := range params {
				params[i] = t
			}
			x, err := res.Parametric.Evaluate(params)
			if err != nil {
				return err
			}
			candidates = append(candidates, x)
		}
	default:
		return nil
	}

	var worst float64
	for _, x := range candidates {
		r, err := report.Residual(s.orig, x)
		if err != nil {
			return err
		}
		worst = math.Max(worst, r)
	}
	rep.Residual = &worst
	if s.out.Text() {
		fmt.Fprintf(s.out.Writer, "Residual ‖Ax - b‖∞ = %.3e\n", worst)
	}

	return nil
}

// writeSummary prints the method banner, the final matrix and the solution.
func writeSummary(w io.Writer, method gauss.Method, res gauss.Result) error {
	caption := report.CaptionTriangular
	if method == gauss.MethodGaussJordan {
		caption = report.CaptionRREF
	}
	if err := report.WriteBanner(w, method.Title()); err != nil {
		return err
	}
	if err := report.WriteMatrix(w, caption, res.Reduced); err != nil {
		return err
	}
	return report.WriteText(w, res)
}

func parseMethods(s string) ([]gauss.Method, error) {
	if s == MethodBoth {
		return []gauss.Method{gauss.MethodGauss, gauss.MethodGaussJordan}, nil
	}
	m, err := gauss.ParseMethod(s)
	if err != nil {
		return nil, err
	}
	return []gauss.Method{m}, nil
}

// loadSystem reads the file argument, or stdin when there is none (or "-").
func loadSystem(args []string, stdin io.Reader) (*system.System, error) {
	if len(args) == 1 && args[0] != "-" {
		return system.Load(args[0])
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	sys, err := system.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("stdin: %w", err)
	}
	if sys.Name == "" {
		sys.Name = "stdin"
	}
	return sys, nil
}

// resultsAgree compares classifications and, for unique systems, the
// solution vectors entry by entry.
func resultsAgree(a, b gauss.Result) bool {
	if a.Kind != b.Kind || a.Rank != b.Rank {
		return false
	}
	if a.Kind != gauss.Unique {
		return true
	}
	for i := range a.Solution {
		if math.Abs(a.Solution[i]-b.Solution[i]) > VerifyTolerance*(1+math.Abs(a.Solution[i])) {
			return false
		}
	}
	return true
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
