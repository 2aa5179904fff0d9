package playback_test

import (
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/dsaviz/internal/algo"
	"github.com/san-kum/dsaviz/internal/playback"
	"github.com/san-kum/dsaviz/internal/step"
)

var _ = Describe("State", func() {
	var (
		s   *playback.State
		seq step.Sequence
	)

	BeforeEach(func() {
		s = playback.NewState()
		seq = algo.Bubble([]int{5, 3, 8, 1, 2})
		s.Load(seq)
	})

	It("starts paused at 0 after load", func() {
		Expect(s.Cursor()).To(Equal(0))
		Expect(s.IsPlaying()).To(BeFalse())
		Expect(s.Len()).To(Equal(seq.Len()))
		cur, ok := s.CurrentStep()
		Expect(ok).To(BeTrue())
		Expect(cur).To(Equal(seq.First()))
	})

	It("clamps stepping and seeking", func() {
		s.StepBack()
		Expect(s.Cursor()).To(Equal(0))
		s.Seek(1000)
		Expect(s.Cursor()).To(Equal(seq.Len() - 1))
		s.StepForward()
		Expect(s.Cursor()).To(Equal(seq.Len() - 1))
		s.Seek(-5)
		Expect(s.Cursor()).To(Equal(0))
	})

	It("pauses on manual navigation", func() {
		for _, cmd := range []func(){s.StepForward, s.StepBack, func() { s.Seek(2) }} {
			Expect(s.Play()).To(BeTrue())
			cmd()
			Expect(s.IsPlaying()).To(BeFalse())
		}
	})

	It("refuses to play at the end or when empty", func() {
		s.Seek(seq.Len() - 1)
		Expect(s.Play()).To(BeFalse())
		Expect(s.IsPlaying()).To(BeFalse())

		s.Reset()
		Expect(s.Play()).To(BeFalse())
		Expect(s.Cursor()).To(Equal(0))
		Expect(s.Frame().Empty()).To(BeTrue())
		_, ok := s.CurrentStep()
		Expect(ok).To(BeFalse())
	})

	It("autoplays to the last step and stops there", func() {
		Expect(s.Play()).To(BeTrue())
		ticks := 0
		for s.IsPlaying() {
			Expect(s.Tick()).To(BeTrue())
			ticks++
			Expect(ticks).To(BeNumerically("<=", seq.Len()))
		}
		Expect(s.Cursor()).To(Equal(seq.Len() - 1))
		Expect(ticks).To(Equal(seq.Len() - 1))
		Expect(s.Tick()).To(BeFalse())
		Expect(s.Cursor()).To(Equal(seq.Len() - 1))
	})

	It("ignores ticks while paused", func() {
		Expect(s.Tick()).To(BeFalse())
		Expect(s.Cursor()).To(Equal(0))
	})

	It("rejects non-positive intervals", func() {
		Expect(s.SetIntervalMs(200)).To(Succeed())
		Expect(s.SetIntervalMs(0)).To(MatchError(playback.ErrInvalidInterval))
		Expect(s.SetIntervalMs(-3)).To(MatchError(playback.ErrInvalidInterval))
		Expect(s.IntervalMs()).To(Equal(200))
	})

	It("resets to paused at 0 when a new sequence is loaded", func() {
		s.Seek(3)
		s.Play()
		s.Load(algo.Linear([]int{1, 2}, 2))
		Expect(s.Cursor()).To(Equal(0))
		Expect(s.IsPlaying()).To(BeFalse())
	})

	It("keeps the cursor in range under random commands", func() {
		rng := rand.New(rand.NewSource(7))
		for i := 0; i < 2000; i++ {
			switch rng.Intn(7) {
			case 0:
				s.Play()
			case 1:
				s.Pause()
			case 2:
				s.StepForward()
			case 3:
				s.StepBack()
			case 4:
				s.Seek(rng.Intn(3*seq.Len()) - seq.Len())
			case 5, 6:
				s.Tick()
			}
			Expect(s.Cursor()).To(BeNumerically(">=", 0))
			Expect(s.Cursor()).To(BeNumerically("<", s.Len()))
			if s.Cursor() == s.Len()-1 {
				Expect(s.IsPlaying()).To(BeFalse())
			}
		}
	})
})
