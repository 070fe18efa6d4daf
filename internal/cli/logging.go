// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/linsys/gauss"
)

// DefaultLogLevel keeps stderr quiet unless something goes wrong.
const DefaultLogLevel = "warn"

// newLogger builds the console logger for one command invocation.
// --verbose forces debug level, which also turns on per-step events.
func newLogger(w io.Writer, opts *RootOptions) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(opts.LogLevel)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", opts.LogLevel, err)
	}
	if level == zerolog.NoLevel {
		level = zerolog.WarnLevel
	}
	if opts.Verbose {
		level = zerolog.DebugLevel
	}

	out := zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: time.TimeOnly}

	return zerolog.New(out).Level(level).With().Timestamp().Logger(), nil
}

// newSolveID returns a time-ordered correlation id for one solve.
func newSolveID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// stepLogger is a gauss.Observer emitting one debug event per step.
type stepLogger struct {
	log zerolog.Logger
}

func (s stepLogger) Observe(step gauss.Step) {
	ev := s.log.Debug()
	if !ev.Enabled() {
		return
	}
	ev.Int("seq", step.Seq).
		Str("method", step.Method.String()).
		Str("op", step.Op.String()).
		Int("row", step.Row+1)
	switch step.Op {
	case gauss.OpSwap, gauss.OpEliminate:
		ev.Int("source", step.Source+1)
	case gauss.OpSubstitute:
		ev.Float64("value", step.Value)
	}
	ev.Msg(step.Description())
}
