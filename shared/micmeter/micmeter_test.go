package micmeter

import (
	"bytes"
	"context"
	"encoding/binary"
	"math"
	"testing"
	"time"
)

func constantBlock(n int, v int16) []int16 {
	s := make([]int16, n)
	for i := range s {
		s[i] = v
	}
	return s
}

func TestLevel(t *testing.T) {
	tests := []struct {
		name    string
		samples []int16
		want    float64
	}{
		{"empty", nil, 0},
		{"silence", constantBlock(BlockSize, 0), 20},
		{"full scale", constantBlock(BlockSize, math.MinInt16), LevelOffset},
		{"minus ten dBFS", constantBlock(BlockSize, 10362), 130},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Level(tt.samples)
			if math.Abs(got-tt.want) > 0.05 {
				t.Errorf("Level() = %.3f, want %.3f", got, tt.want)
			}
		})
	}
}

func TestLevelIsMonotonic(t *testing.T) {
	quiet := Level(constantBlock(BlockSize, 300))
	loud := Level(constantBlock(BlockSize, 20000))
	if loud <= quiet {
		t.Errorf("louder input read %.2f, quieter %.2f", loud, quiet)
	}
}

func encode(samples []int16) []byte {
	var buf bytes.Buffer
	for _, s := range samples {
		_ = binary.Write(&buf, binary.LittleEndian, s)
	}
	return buf.Bytes()
}

func TestPeakLevelPicksLoudestBlock(t *testing.T) {
	var pcm []int16
	pcm = append(pcm, constantBlock(BlockSize, 100)...)
	pcm = append(pcm, constantBlock(BlockSize, 10362)...)
	pcm = append(pcm, constantBlock(BlockSize/2, 50)...)

	got, err := PeakLevel(bytes.NewReader(encode(pcm)))
	if err != nil {
		t.Fatalf("PeakLevel: %v", err)
	}
	if math.Abs(got-130) > 0.05 {
		t.Errorf("PeakLevel() = %.3f, want 130", got)
	}
}

func TestPeakLevelEmpty(t *testing.T) {
	got, err := PeakLevel(bytes.NewReader(nil))
	if err != nil || got != 0 {
		t.Errorf("PeakLevel(empty) = %v, %v", got, err)
	}
}

func TestAsyncDeliversOnce(t *testing.T) {
	ch := Async(context.Background(), Fixed{Value: 133}, time.Millisecond)
	res, ok := <-ch
	if !ok || res.Err != nil || res.Peak != 133 {
		t.Fatalf("first receive = %+v, ok=%v", res, ok)
	}
	if _, ok := <-ch; ok {
		t.Error("channel should be closed after the result")
	}
}

func TestFixedHonoursCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := (Fixed{Value: 1, Wait: true}).Peak(ctx, time.Hour); err == nil {
		t.Error("expected context error")
	}
}
