package playback_test

import (
	"sync"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/dsaviz/internal/algo"
	"github.com/san-kum/dsaviz/internal/playback"
	"github.com/san-kum/dsaviz/internal/step"
)

// leakyClock records callbacks and ignores Stop, the way a real timer whose
// callback has already started behaves.
type leakyClock struct {
	mu  sync.Mutex
	fns []func()
}

type leakyTimer struct{}

func (leakyTimer) Stop() bool { return false }

func (c *leakyClock) AfterFunc(_ time.Duration, f func()) playback.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fns = append(c.fns, f)
	return leakyTimer{}
}

func (c *leakyClock) fireAll() {
	c.mu.Lock()
	fns := c.fns
	c.fns = nil
	c.mu.Unlock()
	for _, f := range fns {
		f()
	}
}

var _ = Describe("Player", func() {
	var (
		clock *playback.ManualClock
		p     *playback.Player
		seq   step.Sequence
	)

	BeforeEach(func() {
		clock = playback.NewManualClock()
		p = playback.NewPlayer(clock)
		Expect(p.SetIntervalMs(100)).To(Succeed())
		seq = algo.Bubble([]int{5, 3, 8, 1, 2})
		p.Load(seq)
	})

	It("advances one step per interval while playing", func() {
		p.Play()
		Expect(clock.Pending()).To(Equal(1))
		clock.Advance(99 * time.Millisecond)
		Expect(p.Frame().Index).To(Equal(0))
		clock.Advance(time.Millisecond)
		Expect(p.Frame().Index).To(Equal(1))
		clock.Advance(300 * time.Millisecond)
		Expect(p.Frame().Index).To(Equal(4))
		Expect(p.Frame().Playing).To(BeTrue())
	})

	It("stops at the last step and schedules nothing more", func() {
		p.Play()
		clock.Advance(time.Duration(seq.Len()+10) * 100 * time.Millisecond)
		f := p.Frame()
		Expect(f.Index).To(Equal(seq.Len() - 1))
		Expect(f.Playing).To(BeFalse())
		Expect(f.Step.Complete()).To(BeTrue())
		Expect(clock.Pending()).To(Equal(0))
	})

	It("cancels the pending tick on pause", func() {
		p.Play()
		p.Pause()
		Expect(clock.Pending()).To(Equal(0))
		clock.Advance(time.Second)
		Expect(p.Frame().Index).To(Equal(0))
	})

	It("does not let a pending tick override a seek", func() {
		p.Play()
		clock.Advance(250 * time.Millisecond)
		p.Seek(0)
		clock.Advance(time.Second)
		Expect(p.Frame().Index).To(Equal(0))
		Expect(p.Frame().Playing).To(BeFalse())
	})

	It("does not tick a freshly loaded sequence", func() {
		p.Play()
		clock.Advance(150 * time.Millisecond)
		other := algo.Linear([]int{4, 5, 6}, 6)
		p.Load(other)
		clock.Advance(time.Second)
		f := p.Frame()
		Expect(f.Index).To(Equal(0))
		Expect(f.Total).To(Equal(other.Len()))
		Expect(f.Playing).To(BeFalse())
	})

	It("reschedules when the interval changes mid-play", func() {
		p.Play()
		Expect(p.SetIntervalMs(1000)).To(Succeed())
		clock.Advance(500 * time.Millisecond)
		Expect(p.Frame().Index).To(Equal(0))
		clock.Advance(500 * time.Millisecond)
		Expect(p.Frame().Index).To(Equal(1))
		Expect(p.SetIntervalMs(0)).To(MatchError(playback.ErrInvalidInterval))
		Expect(p.IntervalMs()).To(Equal(1000))
	})

	It("notifies observers after every transition", func() {
		var frames []playback.Frame
		p.Subscribe(func(f playback.Frame) { frames = append(frames, f) })
		p.StepForward()
		p.Play()
		clock.Advance(100 * time.Millisecond)
		p.Pause()
		Expect(frames).To(HaveLen(4))
		Expect(frames[0].Index).To(Equal(1))
		Expect(frames[1].Playing).To(BeTrue())
		Expect(frames[2].Index).To(Equal(2))
		Expect(frames[3].Playing).To(BeFalse())
	})

	It("toggles play and pause", func() {
		p.TogglePlay()
		Expect(p.Frame().Playing).To(BeTrue())
		p.TogglePlay()
		Expect(p.Frame().Playing).To(BeFalse())
	})

	Context("when a stale callback runs after cancellation", func() {
		It("discards it", func() {
			leaky := &leakyClock{}
			lp := playback.NewPlayer(leaky)
			lp.Load(seq)
			lp.Play()
			lp.Seek(2)
			leaky.fireAll()
			Expect(lp.Frame().Index).To(Equal(2))

			lp.Play()
			lp.Load(algo.Linear([]int{1}, 1))
			leaky.fireAll()
			Expect(lp.Frame().Index).To(Equal(0))
		})
	})

	Context("with the real clock", func() {
		It("plays through to the end", func() {
			rp := playback.NewPlayer(playback.RealClock())
			DeferCleanup(rp.Close)
			Expect(rp.SetIntervalMs(2)).To(Succeed())
			rp.Load(seq)
			rp.Play()
			Eventually(func() bool { return rp.Frame().Playing }).
				WithTimeout(5 * time.Second).Should(BeFalse())
			Expect(rp.Frame().Index).To(Equal(seq.Len() - 1))
		})
	})
})
