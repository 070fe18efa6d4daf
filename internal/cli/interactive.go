// SPDX-License-Identifier: MIT

package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/linsys/gauss"
	"github.com/katalvlaran/linsys/matrix"
	"github.com/katalvlaran/linsys/report"
	"github.com/katalvlaran/linsys/system"
)

// Menu choices of the interactive session.
const (
	choiceGauss       = "1"
	choiceGaussJordan = "2"
	choiceExit        = "3"
)

// errInputClosed ends the session when stdin runs out.
var errInputClosed = errors.New("input closed")

// NewInteractiveCommand creates the interactive command: a menu-driven loop
// that reads systems from the terminal and prints worked solutions.
func NewInteractiveCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "interactive",
		Aliases: []string{"menu"},
		Short:   "Enter systems at a prompt and watch them being solved step by step",
		Long: `Start the menu-driven solver.

Choose a method, type the number of equations and then each row of the
augmented matrix (coefficients followed by the constant). Every row
operation is printed with the matrix after it, followed by the solution.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(rootOpts, cmd)
		},
	}

	return cmd
}

func runInteractive(rootOpts *RootOptions, cmd *cobra.Command) error {
	logger, err := newLogger(cmd.ErrOrStderr(), rootOpts)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid flags", err)
	}
	s := &session{
		in:  bufio.NewScanner(cmd.InOrStdin()),
		out: cmd.OutOrStdout(),
		log: logger,
	}

	err = s.run()
	if errors.Is(err, errInputClosed) {
		s.goodbye()
		return nil
	}
	if err != nil {
		return WrapExitError(ExitCommandError, "interactive session failed", err)
	}
	return nil
}

// session is one interactive run over a line-oriented reader.
type session struct {
	in  *bufio.Scanner
	out io.Writer
	log zerolog.Logger
}

func (s *session) run() error {
	for {
		if err := s.menu(); err != nil {
			return err
		}
		choice, err := s.choose()
		if err != nil {
			return err
		}
		if choice == choiceExit {
			s.goodbye()
			return nil
		}
		method := gauss.MethodGauss
		if choice == choiceGaussJordan {
			method = gauss.MethodGaussJordan
		}

		m, err := s.readMatrix()
		if err != nil {
			return err
		}

		log := s.log.With().Str("solve_id", newSolveID()).Str("method", method.String()).Logger()
		res, err := report.Walkthrough(s.out, m, method, stepLogger{log: log})
		if err != nil {
			log.Error().Err(err).Msg("solve failed")
			fmt.Fprintf(s.out, "\nError: %v\n", err)
		} else {
			log.Info().Str("kind", res.Kind.String()).Int("rank", res.Rank).Msg("solved")
		}

		fmt.Fprintf(s.out, "\n%s\n", strings.Repeat("=", report.RuleWidth))
		again, err := s.prompt("\nSolve another system? (y/n): ")
		if err != nil {
			return err
		}
		if strings.ToLower(again) != "y" {
			s.goodbye()
			return nil
		}
	}
}

func (s *session) menu() error {
	if err := report.WriteBanner(s.out, "LINEAR EQUATIONS SOLVER"); err != nil {
		return err
	}
	_, err := fmt.Fprint(s.out, "\nChoose the solution method:\n"+
		"1. Gauss Elimination\n"+
		"2. Gauss-Jordan Elimination\n"+
		"3. Exit\n")
	return err
}

// choose re-prompts until one of the three menu entries is typed.
func (s *session) choose() (string, error) {
	for {
		choice, err := s.prompt("\nEnter your choice (1, 2, or 3): ")
		if err != nil {
			return "", err
		}
		switch choice {
		case choiceGauss, choiceGaussJordan, choiceExit:
			return choice, nil
		}
		fmt.Fprintln(s.out, "Invalid choice. Please enter 1, 2, or 3.")
	}
}

// readMatrix asks for n and then n rows, repeating a row until it parses.
func (s *session) readMatrix() (*matrix.Dense, error) {
	var n int
	for {
		line, err := s.prompt("Enter the number of equations: ")
		if err != nil {
			return nil, err
		}
		if n, err = strconv.Atoi(line); err == nil && n > 0 {
			break
		}
		fmt.Fprintln(s.out, "Error: Please enter a positive whole number")
	}

	fmt.Fprintf(s.out, "\nEnter the augmented matrix (%dx%d):\n", n, n+1)
	fmt.Fprintln(s.out, "(Enter each row with space-separated values, including the constant)")

	sys := &system.System{Rows: make([][]float64, n)}
	for i := 0; i < n; i++ {
		for {
			line, err := s.prompt(fmt.Sprintf("Row %d: ", i+1))
			if err != nil {
				return nil, err
			}
			row, err := system.ParseRow(line, n)
			if err == nil {
				sys.Rows[i] = row
				break
			}
			switch {
			case errors.Is(err, system.ErrRowLength):
				fmt.Fprintf(s.out, "Error: Expected %d values, got %d\n", n+1, len(strings.Fields(line)))
			default:
				fmt.Fprintln(s.out, "Error: Please enter valid numbers")
			}
		}
	}

	return sys.Matrix()
}

// prompt writes text and returns the next trimmed input line.
func (s *session) prompt(text string) (string, error) {
	if _, err := fmt.Fprint(s.out, text); err != nil {
		return "", err
	}
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}
		return "", errInputClosed
	}
	return strings.TrimSpace(s.in.Text()), nil
}

func (s *session) goodbye() {
	fmt.Fprintln(s.out, "\nThank you for using Linear Equations Solver!")
	fmt.Fprintln(s.out, "Goodbye! 👋")
}
