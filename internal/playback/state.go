package playback

import (
	"errors"
	"time"

	"github.com/san-kum/dsaviz/internal/step"
)

var ErrInvalidInterval = errors.New("playback: interval must be positive")

const DefaultIntervalMs = 500

// Frame is what a renderer needs after every transition.
type Frame struct {
	Step    step.Step
	Index   int
	Total   int
	Playing bool
}

// Empty reports whether no sequence is loaded.
func (f Frame) Empty() bool { return f.Total == 0 }

// State is the single-threaded playback state machine. The cursor always
// lies in [0, Len()-1] and is 0 for an empty sequence; playing is cleared
// whenever the cursor reaches the last step.
type State struct {
	seq        step.Sequence
	cursor     int
	playing    bool
	intervalMs int
}

func NewState() *State {
	return &State{intervalMs: DefaultIntervalMs}
}

// Load replaces the sequence, rewinds to 0 and pauses.
func (s *State) Load(seq step.Sequence) {
	s.seq = seq
	s.cursor = 0
	s.playing = false
}

// Reset drops the loaded sequence.
func (s *State) Reset() { s.Load(step.Sequence{}) }

// Play starts autoplay and reports whether it did. It is a no-op on an empty
// sequence or at the last step.
func (s *State) Play() bool {
	if s.seq.Len() == 0 || s.atEnd() {
		return false
	}
	s.playing = true
	return true
}

func (s *State) Pause() { s.playing = false }

func (s *State) StepForward() {
	s.playing = false
	s.Seek(s.cursor + 1)
}

func (s *State) StepBack() {
	s.playing = false
	s.Seek(s.cursor - 1)
}

// Seek clamps i into range, moves the cursor there and pauses.
func (s *State) Seek(i int) {
	s.playing = false
	s.cursor = clamp(i, s.seq.Len())
}

func (s *State) SetIntervalMs(ms int) error {
	if ms <= 0 {
		return ErrInvalidInterval
	}
	s.intervalMs = ms
	return nil
}

// Tick advances one step while playing and reports whether the cursor moved.
// Reaching the last step stops playback.
func (s *State) Tick() bool {
	if !s.playing || s.atEnd() {
		s.playing = false
		return false
	}
	s.cursor++
	if s.atEnd() {
		s.playing = false
	}
	return true
}

func (s *State) CurrentStep() (step.Step, bool) {
	if s.seq.Len() == 0 {
		return step.Step{}, false
	}
	return s.seq.At(s.cursor), true
}

func (s *State) Cursor() int             { return s.cursor }
func (s *State) Len() int                { return s.seq.Len() }
func (s *State) IsPlaying() bool         { return s.playing }
func (s *State) IntervalMs() int         { return s.intervalMs }
func (s *State) Sequence() step.Sequence { return s.seq }

func (s *State) Interval() time.Duration {
	return time.Duration(s.intervalMs) * time.Millisecond
}

func (s *State) Frame() Frame {
	st, _ := s.CurrentStep()
	return Frame{Step: st, Index: s.cursor, Total: s.seq.Len(), Playing: s.playing}
}

func (s *State) atEnd() bool { return s.cursor >= s.seq.Len()-1 }

func clamp(i, n int) int {
	if n == 0 || i < 0 {
		return 0
	}
	if i > n-1 {
		return n - 1
	}
	return i
}
