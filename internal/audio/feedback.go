// Package audio plays short movement cues through the system speaker.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// cueGap throttles cues while a key is held, one per gap at most.
const cueGap = 180 * time.Millisecond

// Feedback plays a soft tick on committed steps and a low buzz when a
// wall rejects one. Every method is safe to call when initialization
// failed; they simply do nothing.
type Feedback struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	lastStep    time.Time
	lastBump    time.Time
	now         func() time.Time
}

// NewFeedback opens the speaker. Audio failure is not fatal: the
// returned Feedback is inert and err reports what went wrong.
func NewFeedback() (*Feedback, error) {
	f := &Feedback{
		mixer: &beep.Mixer{},
		now:   time.Now,
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return f, err
	}
	speaker.Play(f.mixer)
	f.initialized = true
	return f, nil
}

// Step plays the footstep tick.
func (f *Feedback) Step() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.initialized || f.now().Sub(f.lastStep) < cueGap {
		return
	}
	f.lastStep = f.now()
	f.play(440, 30*time.Millisecond)
}

// Bump plays the wall buzz.
func (f *Feedback) Bump() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.initialized || f.now().Sub(f.lastBump) < cueGap {
		return
	}
	f.lastBump = f.now()
	f.play(110, 60*time.Millisecond)
}

// play mixes in one tone. Callers hold mu.
func (f *Feedback) play(freq float64, d time.Duration) {
	f.mixer.Add(beep.Take(sampleRate.N(d), newToneGenerator(sampleRate, freq)))
}

// toneGenerator produces a sine tone with a short attack envelope so
// cues start without a click.
type toneGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

func newToneGenerator(sr beep.SampleRate, freq float64) *toneGenerator {
	return &toneGenerator{sr: sr, freq: freq}
}

func (g *toneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		envelope := math.Min(t/0.005, 1.0)
		sample := 0.2 * envelope * math.Sin(2*math.Pi*g.freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *toneGenerator) Err() error {
	return nil
}
