package assets

import (
	"fmt"
	"math"
	"math/rand"
	"sync"

	"github.com/automoto/shadowblade/config"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// SFXBank synthesizes sound effects on first use and caches the PCM bytes
// (16-bit little endian stereo) ready for audio.NewPlayerFromBytes.
type SFXBank struct {
	rate  beep.SampleRate
	mu    sync.Mutex
	cache map[config.SoundID][]byte
}

func NewSFXBank(sampleRate int) *SFXBank {
	return &SFXBank{
		rate:  beep.SampleRate(sampleRate),
		cache: make(map[config.SoundID][]byte),
	}
}

// PCM returns the rendered bytes for id.
func (b *SFXBank) PCM(id config.SoundID) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if pcm, ok := b.cache[id]; ok {
		return pcm, nil
	}
	spec, ok := config.Sound.Tones[id]
	if !ok {
		return nil, fmt.Errorf("assets: no tone for sound %d", id)
	}
	pcm := Synthesize(spec, b.rate, int64(id))
	b.cache[id] = pcm
	return pcm, nil
}

// Preload renders every configured cue so the first play does not stall.
func (b *SFXBank) Preload() {
	for id := range config.Sound.Tones {
		_, _ = b.PCM(id)
	}
}

// Synthesize renders spec to PCM bytes. seed fixes the noise pattern so a
// cue sounds the same on every run.
func Synthesize(spec config.ToneSpec, rate beep.SampleRate, seed int64) []byte {
	osc := &oscillator{
		wave:     spec.Wave,
		freq:     spec.Freq,
		freqEnd:  spec.FreqEnd,
		rate:     rate,
		duration: rate.N(spec.Duration),
		rng:      rand.New(rand.NewSource(seed)),
	}
	shaped := &envelope{
		streamer: osc,
		total:    rate.N(spec.Duration),
		attack:   rate.N(spec.Attack),
		release:  rate.N(spec.Release),
	}
	return render(newVolume(shaped, 0.5))
}

func render(s beep.Streamer) []byte {
	var out []byte
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for _, frame := range buf[:n] {
			for _, v := range frame {
				v = math.Max(-1, math.Min(1, v))
				sample := int16(v * math.MaxInt16)
				out = append(out, byte(sample), byte(sample>>8))
			}
		}
		if !ok || n == 0 {
			return out
		}
	}
}

// oscillator generates a single waveform, sweeping linearly from freq to
// freqEnd when freqEnd is set.
type oscillator struct {
	wave     config.Waveform
	freq     float64
	freqEnd  float64
	phase    float64
	position int
	duration int
	rate     beep.SampleRate
	rng      *rand.Rand
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}

		var val float64
		switch o.wave {
		case config.WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case config.WaveSquare:
			val = 1
			if o.phase >= 0.5 {
				val = -1
			}
		case config.WaveSaw:
			val = 2 * (o.phase - 0.5)
		case config.WaveNoise:
			val = o.rng.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		freq := o.freq
		if o.freqEnd > 0 && o.duration > 0 {
			freq += (o.freqEnd - o.freq) * float64(o.position) / float64(o.duration)
		}
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release.
type envelope struct {
	streamer beep.Streamer
	position int
	total    int
	attack   int
	release  int
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, false
		}
		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if e.release > 0 && e.position >= e.total-e.release {
			vol = math.Min(vol, float64(e.total-e.position)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly; zero is silent since log2(0) is -Inf.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
