package main

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// soundboard plays the three synthesized cues of the piece. A nil soundboard
// is silent, so callers never need to care whether audio came up.
type soundboard struct{}

func newSoundboard() (*soundboard, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	return &soundboard{}, nil
}

func (s *soundboard) close() {
	if s != nil {
		speaker.Close()
	}
}

// crackle is the short dry tick of a crack extending under tension.
func (s *soundboard) crackle() {
	if s == nil {
		return
	}
	speaker.Play(newNoiseBurst(60*time.Millisecond, 0.15))
}

// crash is the shatter impact; louder breaks hit harder.
func (s *soundboard) crash(intensity float64) {
	if s == nil {
		return
	}
	speaker.Play(newNoiseBurst(400*time.Millisecond, 0.25+0.45*intensity))
}

// chime rings once when the mend completes.
func (s *soundboard) chime() {
	if s == nil {
		return
	}
	speaker.Play(newChime(660, 1200*time.Millisecond))
}

// noiseBurst is a decaying low-passed noise streamer: ceramic, not hiss.
type noiseBurst struct {
	remaining int
	total     int
	gain      float64
	last      float64
}

func newNoiseBurst(d time.Duration, gain float64) *noiseBurst {
	n := sampleRate.N(d)
	return &noiseBurst{remaining: n, total: n, gain: gain}
}

func (nb *noiseBurst) Stream(samples [][2]float64) (int, bool) {
	if nb.remaining <= 0 {
		return 0, false
	}
	for i := range samples {
		if nb.remaining <= 0 {
			return i, true
		}
		env := float64(nb.remaining) / float64(nb.total)
		nb.last += 0.35 * (rand.Float64()*2 - 1 - nb.last)
		v := nb.last * env * env * nb.gain
		samples[i][0], samples[i][1] = v, v
		nb.remaining--
	}
	return len(samples), true
}

func (nb *noiseBurst) Err() error { return nil }

// chime is a sine with a soft octave-and-a-half partial and an exponential
// release.
type chime struct {
	freq      float64
	pos       int
	remaining int
	total     int
}

func newChime(freq float64, d time.Duration) *chime {
	n := sampleRate.N(d)
	return &chime{freq: freq, remaining: n, total: n}
}

func (c *chime) Stream(samples [][2]float64) (int, bool) {
	if c.remaining <= 0 {
		return 0, false
	}
	for i := range samples {
		if c.remaining <= 0 {
			return i, true
		}
		t := float64(c.pos) / float64(int(sampleRate))
		env := float64(c.remaining) / float64(c.total)
		v := 0.22 * env * env * (math.Sin(2*math.Pi*c.freq*t) +
			0.4*math.Sin(2*math.Pi*c.freq*1.5*t))
		samples[i][0], samples[i][1] = v, v
		c.pos++
		c.remaining--
	}
	return len(samples), true
}

func (c *chime) Err() error { return nil }
