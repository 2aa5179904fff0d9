package step

import "fmt"

// ErrorPrefix marks narrations of validation failure sequences.
const ErrorPrefix = "Error: "

// Step is one immutable snapshot of algorithm state.
type Step struct {
	View        View        `json:"view"`
	Annotations Annotations `json:"annotations"`
	Narration   string      `json:"narration"`
}

// Complete reports whether the step carries complete=true.
func (s Step) Complete() bool { return s.Annotations.Bool(Complete) }

func (s Step) Clone() Step {
	return Step{View: s.View.Clone(), Annotations: s.Annotations.Clone(), Narration: s.Narration}
}

// ValidationError describes input that was rejected before or at the start
// of generation. It travels inside a Sequence and is never returned as an
// error value by generators.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Sequence is the ordered recording of one generator run. A Sequence built by
// a Recorder is never empty and never changes after Finish or Fail.
type Sequence struct {
	steps []Step
	err   *ValidationError
}

func (s Sequence) Len() int { return len(s.steps) }

// At returns a copy of step i. It panics when i is out of range.
func (s Sequence) At(i int) Step { return s.steps[i].Clone() }

func (s Sequence) First() Step { return s.At(0) }

func (s Sequence) Last() Step { return s.At(len(s.steps) - 1) }

// Steps returns deep copies of every step.
func (s Sequence) Steps() []Step {
	out := make([]Step, len(s.steps))
	for i, st := range s.steps {
		out[i] = st.Clone()
	}
	return out
}

// Invalid reports whether the sequence is a validation failure frame.
func (s Sequence) Invalid() bool { return s.err != nil }

// Err returns the validation failure, or nil.
func (s Sequence) Err() *ValidationError { return s.err }

// Narrations lists every step's narration in order.
func (s Sequence) Narrations() []string {
	out := make([]string, len(s.steps))
	for i, st := range s.steps {
		out[i] = st.Narration
	}
	return out
}

// FromSteps rebuilds a Sequence from previously captured steps, e.g. for
// tests and renderers. Steps are deep-copied.
func FromSteps(steps []Step) Sequence {
	out := make([]Step, len(steps))
	for i, st := range steps {
		out[i] = st.Clone()
	}
	return Sequence{steps: out}
}
