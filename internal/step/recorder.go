package step

// Recorder accumulates snapshots for a single generator run.
type Recorder struct {
	steps []Step
}

func NewRecorder() *Recorder {
	return &Recorder{steps: make([]Step, 0, 64)}
}

// Emit snapshots v and ann. Both are deep-copied, so callers may keep
// mutating their working storage afterwards.
func (r *Recorder) Emit(v View, ann Annotations, narration string) {
	r.steps = append(r.steps, Step{View: v.Clone(), Annotations: ann.Clone(), Narration: narration})
}

// Len returns the number of steps recorded so far.
func (r *Recorder) Len() int { return len(r.steps) }

// Finish appends the completion step and returns the sequence. The recorder
// must not be reused afterwards.
func (r *Recorder) Finish(v View, ann Annotations, narration string) Sequence {
	ann = ann.Clone()
	ann[Complete] = true
	r.steps = append(r.steps, Step{View: v.Clone(), Annotations: ann, Narration: narration})
	seq := Sequence{steps: r.steps}
	r.steps = nil
	return seq
}

// Fail returns the one-step sequence reporting rejected input. The view is
// kept so renderers can still show what was entered.
func Fail(v View, field, reason string) Sequence {
	verr := &ValidationError{Field: field, Reason: reason}
	return Sequence{
		steps: []Step{{
			View:        v.Clone(),
			Annotations: Annotations{Error: verr.Error(), Complete: true},
			Narration:   ErrorPrefix + reason,
		}},
		err: verr,
	}
}
