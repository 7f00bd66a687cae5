package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveTriangle
)

// oscillator generates a fixed-length raw wave.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a streamer producing duration of the given wave.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveTriangle:
			val = 1 - 4*math.Abs(o.phase-0.5)
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// sweep is a sine whose frequency glides linearly from one pitch to another.
type sweep struct {
	from, to float64
	phase    float64
	duration int
	position int
	rate     beep.SampleRate
}

// NewSweep creates a sine gliding from one frequency to another over duration.
func NewSweep(from, to float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &sweep{from: from, to: to, duration: rate.N(duration), rate: rate}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.duration {
			return i, i > 0
		}
		progress := float64(s.position) / float64(s.duration)
		freq := s.from + (s.to-s.from)*progress

		val := math.Sin(2 * math.Pi * s.phase)
		samples[i][0] = val
		samples[i][1] = val

		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// envelope applies a linear attack and release to a stream.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope shapes s with an attack and release over duration.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.totalSamples - e.releaseSamples
		if e.releaseSamples > 0 && e.position >= releaseStart {
			vol = math.Max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly. math.Log2(0) is -Inf, so zero is mapped to silence.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Sound effect durations.
const (
	flapDuration     = 90 * time.Millisecond
	scoreNoteLength  = 70 * time.Millisecond
	gameOverDuration = 450 * time.Millisecond
	recordNoteLength = 90 * time.Millisecond
	effectAttack     = 5 * time.Millisecond
	effectRelease    = 40 * time.Millisecond
)

// CreateFlapSound generates a short upward chirp.
func CreateFlapSound(rate beep.SampleRate, vol float64) beep.Streamer {
	chirp := NewSweep(420, 780, flapDuration, rate)
	return newVolume(NewEnvelope(chirp, flapDuration, effectAttack, effectRelease, rate), vol)
}

// CreateScoreSound generates a two-note chime.
func CreateScoreSound(rate beep.SampleRate, vol float64) beep.Streamer {
	n1 := NewEnvelope(NewOscillator(987.77, scoreNoteLength, WaveSquare, rate), scoreNoteLength, effectAttack, effectRelease, rate)
	n2 := NewEnvelope(NewOscillator(1318.51, scoreNoteLength, WaveSquare, rate), scoreNoteLength, effectAttack, effectRelease, rate)
	return newVolume(beep.Seq(n1, n2), vol*0.5)
}

// CreateGameOverSound generates a falling saw buzz.
func CreateGameOverSound(rate beep.SampleRate, vol float64) beep.Streamer {
	fall := NewSweep(330, 90, gameOverDuration, rate)
	buzz := NewOscillator(110, gameOverDuration, WaveSaw, rate)
	mixed := beep.Mix(newVolume(fall, 0.7), newVolume(buzz, 0.3))
	return newVolume(NewEnvelope(mixed, gameOverDuration, effectAttack, 150*time.Millisecond, rate), vol)
}

// CreateRecordSound generates a rising three-note arpeggio.
func CreateRecordSound(rate beep.SampleRate, vol float64) beep.Streamer {
	notes := []float64{523.25, 659.25, 783.99}
	seq := make([]beep.Streamer, 0, len(notes))
	for _, f := range notes {
		seq = append(seq, NewEnvelope(NewOscillator(f, recordNoteLength, WaveTriangle, rate), recordNoteLength, effectAttack, effectRelease, rate))
	}
	return newVolume(beep.Seq(seq...), vol)
}
