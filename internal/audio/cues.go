// Package audio turns game events into short generated sound cues.
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/tomz197/galaxyblaster/internal/game"
)

// SampleRate is the output rate of every cue.
const SampleRate = beep.SampleRate(44100)

// tone is one segment of a cue.
type tone struct {
	freq     float64 // Hz; 0 selects noise
	duration time.Duration
	volume   float64 // Linear gain
}

// cueTones lists the segments played for each event kind. Kinds without
// an entry are silent.
var cueTones = map[game.EventKind][]tone{
	game.EventFire:            {{freq: 1320, duration: 30 * time.Millisecond, volume: 0.15}},
	game.EventMeteorDestroyed: {{freq: 0, duration: 120 * time.Millisecond, volume: 0.3}},
	game.EventBossSpawned: {
		{freq: 110, duration: 180 * time.Millisecond, volume: 0.4},
		{freq: 92.5, duration: 260 * time.Millisecond, volume: 0.4},
	},
	game.EventBossHit:       {{freq: 220, duration: 60 * time.Millisecond, volume: 0.3}},
	game.EventBossDestroyed: {{freq: 0, duration: 400 * time.Millisecond, volume: 0.5}},
	game.EventShipHit: {
		{freq: 440, duration: 80 * time.Millisecond, volume: 0.4},
		{freq: 330, duration: 80 * time.Millisecond, volume: 0.4},
		{freq: 220, duration: 160 * time.Millisecond, volume: 0.4},
	},
	game.EventVictory: {
		{freq: 523.25, duration: 120 * time.Millisecond, volume: 0.35},
		{freq: 659.25, duration: 120 * time.Millisecond, volume: 0.35},
		{freq: 783.99, duration: 240 * time.Millisecond, volume: 0.35},
	},
	game.EventDefeat: {
		{freq: 392, duration: 200 * time.Millisecond, volume: 0.35},
		{freq: 311.13, duration: 200 * time.Millisecond, volume: 0.35},
		{freq: 261.63, duration: 400 * time.Millisecond, volume: 0.35},
	},
}

// Cue builds the streamer for an event kind, or nil when the kind is silent.
func Cue(kind game.EventKind) beep.Streamer {
	tones, ok := cueTones[kind]
	if !ok {
		return nil
	}
	parts := make([]beep.Streamer, 0, len(tones))
	for _, t := range tones {
		s := segment(t)
		if s == nil {
			continue
		}
		parts = append(parts, s)
	}
	if len(parts) == 0 {
		return nil
	}
	return beep.Seq(parts...)
}

// segment renders one tone with a short fade-out.
func segment(t tone) beep.Streamer {
	n := SampleRate.N(t.duration)
	var src beep.Streamer
	if t.freq <= 0 {
		src = &noise{}
	} else {
		sine, err := generators.SineTone(SampleRate, t.freq)
		if err != nil {
			return nil
		}
		src = sine
	}
	faded := &fadeOut{streamer: beep.Take(n, src), total: n}
	return newVolume(faded, t.volume)
}

// newVolume scales s by a linear gain.
// math.Log2(0) is -Inf, so zero gain is expressed as silence.
func newVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

// noise is white noise, used for explosions.
type noise struct{}

func (noise) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		v := rand.Float64()*2 - 1
		samples[i][0] = v
		samples[i][1] = v
	}
	return len(samples), true
}

func (noise) Err() error { return nil }

// fadeOut ramps the gain of a finite stream linearly down to zero.
type fadeOut struct {
	streamer beep.Streamer
	pos      int
	total    int
}

func (f *fadeOut) Stream(samples [][2]float64) (int, bool) {
	n, ok := f.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		gain := 1.0
		if f.total > 0 {
			gain = 1 - float64(f.pos)/float64(f.total)
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		f.pos++
	}
	return n, ok
}

func (f *fadeOut) Err() error { return f.streamer.Err() }
