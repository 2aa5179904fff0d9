package playback

import (
	"log/slog"
	"sync"

	"github.com/san-kum/dsaviz/internal/step"
)

// Player drives a State from a Clock. Every operation that changes the
// cursor or the sequence outside of a tick invalidates the pending timer
// before returning, so a late callback can never advance a replaced
// sequence or undo a manual seek.
type Player struct {
	mu        sync.Mutex
	state     *State
	clock     Clock
	timer     Timer
	epoch     uint64
	observers []func(Frame)
	log       *slog.Logger
}

type Option func(*Player)

func WithLogger(l *slog.Logger) Option { return func(p *Player) { p.log = l } }

// WithObserver registers fn to receive a frame after every transition.
func WithObserver(fn func(Frame)) Option {
	return func(p *Player) { p.observers = append(p.observers, fn) }
}

func NewPlayer(clock Clock, opts ...Option) *Player {
	if clock == nil {
		clock = RealClock()
	}
	p := &Player{state: NewState(), clock: clock, log: slog.Default()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Player) Subscribe(fn func(Frame)) {
	p.mu.Lock()
	p.observers = append(p.observers, fn)
	p.mu.Unlock()
}

func (p *Player) Load(seq step.Sequence) {
	p.mutate(func(s *State) {
		s.Load(seq)
		p.log.Debug("sequence loaded", "steps", seq.Len(), "invalid", seq.Invalid())
	})
}

func (p *Player) Reset() { p.mutate((*State).Reset) }

func (p *Player) Play() {
	p.mu.Lock()
	if p.state.IsPlaying() || !p.state.Play() {
		p.mu.Unlock()
		return
	}
	p.cancelLocked()
	p.scheduleLocked()
	p.publishLocked()
}

func (p *Player) Pause()       { p.mutate((*State).Pause) }
func (p *Player) StepForward() { p.mutate((*State).StepForward) }
func (p *Player) StepBack()    { p.mutate((*State).StepBack) }
func (p *Player) Seek(i int)   { p.mutate(func(s *State) { s.Seek(i) }) }

// TogglePlay pauses a playing player and starts a paused one.
func (p *Player) TogglePlay() {
	if p.Frame().Playing {
		p.Pause()
		return
	}
	p.Play()
}

// SetIntervalMs changes the tick period. A running autoplay is rescheduled
// with the new period.
func (p *Player) SetIntervalMs(ms int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.state.SetIntervalMs(ms); err != nil {
		return err
	}
	if p.state.IsPlaying() {
		p.cancelLocked()
		p.scheduleLocked()
	}
	return nil
}

func (p *Player) IntervalMs() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state.IntervalMs()
}

func (p *Player) Frame() Frame {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state.Frame()
}

// Close stops autoplay and drops any pending tick.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state.Pause()
	p.cancelLocked()
}

// mutate applies a transport command that stops autoplay.
func (p *Player) mutate(fn func(*State)) {
	p.mu.Lock()
	p.cancelLocked()
	fn(p.state)
	p.publishLocked()
}

func (p *Player) cancelLocked() {
	p.epoch++
	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
}

func (p *Player) scheduleLocked() {
	if !p.state.IsPlaying() {
		return
	}
	epoch := p.epoch
	p.timer = p.clock.AfterFunc(p.state.Interval(), func() { p.fire(epoch) })
}

func (p *Player) fire(epoch uint64) {
	p.mu.Lock()
	if epoch != p.epoch {
		p.mu.Unlock()
		return
	}
	p.timer = nil
	p.state.Tick()
	p.scheduleLocked()
	p.publishLocked()
}

// publishLocked releases p.mu and then notifies observers.
func (p *Player) publishLocked() {
	frame := p.state.Frame()
	obs := append([]func(Frame){}, p.observers...)
	p.mu.Unlock()
	for _, fn := range obs {
		fn(frame)
	}
}
