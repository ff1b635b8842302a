package micmeter

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"time"
)

// Backend is an external recorder writing raw PCM to stdout.
type Backend struct {
	Name string
	Path string
	Args []string
}

// DetectBackend searches for available capture tools.
// Priority: parec > pw-record > arecord
func DetectBackend() (*Backend, error) {
	rate := strconv.Itoa(SampleRate)

	// PulseAudio, also provided by PipeWire's pulse shim
	if path, err := exec.LookPath("parec"); err == nil {
		return &Backend{
			Name: "parec",
			Path: path,
			Args: []string{"--raw", "--format=s16le", "--rate=" + rate, "--channels=1"},
		}, nil
	}

	// PipeWire native
	if path, err := exec.LookPath("pw-record"); err == nil {
		return &Backend{
			Name: "pw-record",
			Path: path,
			Args: []string{"--format=s16", "--rate=" + rate, "--channels=1", "-"},
		}, nil
	}

	// ALSA
	if path, err := exec.LookPath("arecord"); err == nil {
		return &Backend{
			Name: "arecord",
			Path: path,
			Args: []string{"-t", "raw", "-f", "S16_LE", "-r", rate, "-c", "1", "-q"},
		}, nil
	}

	return nil, ErrNoBackend
}

// ExecMeter records through a Backend process.
type ExecMeter struct {
	Backend *Backend
}

// NewExecMeter detects a backend and returns a meter bound to it.
func NewExecMeter() (*ExecMeter, error) {
	b, err := DetectBackend()
	if err != nil {
		return nil, err
	}
	return &ExecMeter{Backend: b}, nil
}

// Peak records for d and returns the loudest block. The recorder is killed
// when the window ends, which is the normal way the stream finishes.
func (m *ExecMeter) Peak(ctx context.Context, d time.Duration) (float64, error) {
	ctx, cancel := context.WithTimeout(ctx, d)
	defer cancel()

	cmd := exec.CommandContext(ctx, m.Backend.Path, m.Backend.Args...)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return 0, fmt.Errorf("micmeter: %s: %w", m.Backend.Name, err)
	}
	if err := cmd.Start(); err != nil {
		return 0, fmt.Errorf("micmeter: start %s: %w", m.Backend.Name, err)
	}

	peak, readErr := PeakLevel(stdout)
	waitErr := cmd.Wait()

	if readErr != nil && ctx.Err() == nil {
		return peak, readErr
	}
	if waitErr != nil && ctx.Err() == nil {
		var exitErr *exec.ExitError
		if errors.As(waitErr, &exitErr) {
			return peak, fmt.Errorf("micmeter: %s exited: %w", m.Backend.Name, waitErr)
		}
		return peak, waitErr
	}
	return peak, nil
}
