// Package micmeter measures how loud the microphone gets over a short window.
// Capture runs in an external recorder process; callers that must not block
// use Async and poll the returned channel.
package micmeter

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"time"
)

const (
	// BlockSize is the number of samples per RMS measurement.
	BlockSize = 1024
	// SampleRate of the capture stream, mono signed 16-bit little endian.
	SampleRate = 44100
	// LevelOffset maps dBFS onto the positive level scale: full scale reads
	// 140 and -10 dBFS reads 130.
	LevelOffset = 140.0
)

var ErrNoBackend = errors.New("micmeter: no capture backend found")

// Meter reports the peak level reached during d.
type Meter interface {
	Peak(ctx context.Context, d time.Duration) (float64, error)
}

// Result is delivered once by Async.
type Result struct {
	Peak float64
	Err  error
}

// Async runs m.Peak on its own goroutine. The channel receives exactly one
// Result and is then closed.
func Async(ctx context.Context, m Meter, d time.Duration) <-chan Result {
	ch := make(chan Result, 1)
	go func() {
		defer close(ch)
		peak, err := m.Peak(ctx, d)
		ch <- Result{Peak: peak, Err: err}
	}()
	return ch
}

// Level converts one block of samples to the positive level scale.
// Silence reads 0.
func Level(samples []int16) float64 {
	if len(samples) == 0 {
		return 0
	}
	var sum float64
	for _, s := range samples {
		v := float64(s) / 32768.0
		sum += v * v
	}
	rms := math.Sqrt(sum / float64(len(samples)))
	db := 20 * math.Log10(rms+1e-6)
	return math.Max(0, db+LevelOffset)
}

// PeakLevel reads s16le mono PCM until EOF and returns the loudest block.
// A trailing partial block is measured too.
func PeakLevel(r io.Reader) (float64, error) {
	buf := make([]byte, BlockSize*2)
	samples := make([]int16, BlockSize)
	peak := 0.0
	for {
		n, err := io.ReadFull(r, buf)
		if n >= 2 {
			count := n / 2
			for i := 0; i < count; i++ {
				samples[i] = int16(binary.LittleEndian.Uint16(buf[i*2:]))
			}
			peak = math.Max(peak, Level(samples[:count]))
		}
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return peak, nil
		}
		if err != nil {
			return peak, fmt.Errorf("micmeter: read: %w", err)
		}
	}
}

// Fixed is a Meter that always reports the same level after the window.
// Used when no microphone is available and by headless runs.
type Fixed struct {
	Value float64
	Wait  bool // sleep for the window before answering
}

func (f Fixed) Peak(ctx context.Context, d time.Duration) (float64, error) {
	if !f.Wait {
		return f.Value, nil
	}
	select {
	case <-time.After(d):
		return f.Value, nil
	case <-ctx.Done():
		return 0, ctx.Err()
	}
}
