// SPDX-License-Identifier: MIT

// Package gauss: step observation.
//
// The engine never prints. Callers that want the classic step-by-step
// matrix dumps (or structured logs) register an Observer via WithObserver;
// it is called synchronously after each mutation with a snapshot copy of the
// matrix, so observers may keep or print it freely.
package gauss

import (
	"fmt"

	"github.com/katalvlaran/linsys/matrix"
)

// StepOp identifies the elementary operation reported by a Step.
type StepOp int

const (
	// OpSwap exchanges two rows: R_row ↔ R_source.
	OpSwap StepOp = iota + 1

	// OpNormalize divides a row by its pivot: R_row = R_row / Factor.
	OpNormalize

	// OpEliminate subtracts a scaled pivot row: R_row = R_row − Factor·R_source.
	OpEliminate

	// OpSubstitute reports one back-substituted value: x_row = Value.
	OpSubstitute
)

// String returns a short lowercase name (used as a log field).
func (op StepOp) String() string {
	switch op {
	case OpSwap:
		return "swap"
	case OpNormalize:
		return "normalize"
	case OpEliminate:
		return "eliminate"
	case OpSubstitute:
		return "substitute"
	default:
		return fmt.Sprintf("op(%d)", int(op))
	}
}

// Step describes one mutation (or substitution) performed by the engine.
// Row indices are 0-based; Description renders them 1-based.
type Step struct {
	Seq    int // 1-based, restarts with every engine call
	Method Method
	Op     StepOp
	Row    int     // row that changed (variable index for OpSubstitute)
	Source int     // other row involved (swap partner / pivot row)
	Column int     // pivot column (OpNormalize, OpEliminate)
	Factor float64 // divisor (OpNormalize) or multiplier (OpEliminate)
	Value  float64 // substituted value (OpSubstitute)
	Name   string  // variable name (OpSubstitute)

	// Matrix is a snapshot taken after the step; nil for OpSubstitute.
	Matrix *matrix.Dense
}

// Description renders the step the way a worked solution on paper reads.
func (s Step) Description() string {
	switch s.Op {
	case OpSwap:
		return fmt.Sprintf("Swap R%d ↔ R%d", s.Row+1, s.Source+1)
	case OpNormalize:
		return fmt.Sprintf("R%d = R%d / %.2f", s.Row+1, s.Row+1, s.Factor)
	case OpEliminate:
		return fmt.Sprintf("R%d = R%d - (%.2f) × R%d", s.Row+1, s.Row+1, s.Factor, s.Source+1)
	case OpSubstitute:
		return fmt.Sprintf("%s = %.2f", s.Name, s.Value)
	default:
		return s.Op.String()
	}
}

// Observer receives engine steps in order.
type Observer interface {
	Observe(step Step)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(step Step)

// Observe calls f(step).
func (f ObserverFunc) Observe(step Step) { f(step) }

// multiObserver fans a step out to several observers in registration order.
type multiObserver []Observer

func (mo multiObserver) Observe(step Step) {
	for _, o := range mo {
		o.Observe(step)
	}
}

// Observers combines observers; nil entries are dropped. Returns nil when
// nothing remains so the engine can skip snapshots entirely.
func Observers(obs ...Observer) Observer {
	out := make(multiObserver, 0, len(obs))
	for _, o := range obs {
		if o != nil {
			out = append(out, o)
		}
	}
	switch len(out) {
	case 0:
		return nil
	case 1:
		return out[0]
	default:
		return out
	}
}

// emitter numbers steps and snapshots the matrix only when someone listens.
type emitter struct {
	obs    Observer
	method Method
	seq    int
}

func newEmitter(obs Observer, method Method) *emitter {
	return &emitter{obs: obs, method: method}
}

// emit fills Seq/Method/Matrix and forwards the step.
func (e *emitter) emit(step Step, m *matrix.Dense) {
	if e.obs == nil {
		return
	}
	e.seq++
	step.Seq = e.seq
	step.Method = e.method
	if m != nil {
		step.Matrix, _ = matrix.CloneDense(m) // m is non-nil; clone cannot fail
	}
	e.obs.Observe(step)
}
