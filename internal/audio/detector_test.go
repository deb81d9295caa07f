package audio

import (
	"errors"
	"os/exec"
	"slices"
	"testing"
)

func stubLookPath(t *testing.T, installed ...string) {
	t.Helper()
	orig := lookPath
	lookPath = func(name string) (string, error) {
		if slices.Contains(installed, name) {
			return "/usr/bin/" + name, nil
		}
		return "", exec.ErrNotFound
	}
	t.Cleanup(func() { lookPath = orig })
}

func TestDetectBackendPriority(t *testing.T) {
	tests := []struct {
		name      string
		installed []string
		expected  BackendType
	}{
		{"pulse first", []string{"ffplay", "aplay", "pacat"}, BackendPulse},
		{"pipewire", []string{"pw-cat", "play"}, BackendPipeWire},
		{"alsa", []string{"aplay", "play", "ffplay"}, BackendALSA},
		{"sox", []string{"play"}, BackendSoX},
		{"ffplay", []string{"ffplay"}, BackendFFplay},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stubLookPath(t, tt.installed...)
			b, err := DetectBackend(48000)
			if err != nil {
				t.Fatalf("DetectBackend() error = %v", err)
			}
			if b.Type != tt.expected {
				t.Errorf("DetectBackend() = %v, expected %v", b.Type, tt.expected)
			}
			if b.Path == "" || len(b.Args) == 0 {
				t.Errorf("incomplete backend: %+v", b)
			}
		})
	}
}

func TestDetectBackendRate(t *testing.T) {
	stubLookPath(t, "aplay")
	b, err := DetectBackend(22050)
	if err != nil {
		t.Fatalf("DetectBackend() error = %v", err)
	}
	if !slices.Contains(b.Args, "22050") {
		t.Errorf("Args = %v, expected the sample rate", b.Args)
	}
}

func TestDetectBackendNone(t *testing.T) {
	stubLookPath(t)
	if _, err := DetectBackend(44100); !errors.Is(err, ErrNoAudioBackend) {
		t.Errorf("DetectBackend() error = %v, expected %v", err, ErrNoAudioBackend)
	}
}
