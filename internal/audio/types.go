package audio

import "errors"

// BackendType identifies the audio backend
type BackendType int

const (
	BackendPulse BackendType = iota
	BackendPipeWire
	BackendALSA
	BackendSoX
	BackendFFplay
)

func (b BackendType) String() string {
	switch b {
	case BackendPulse:
		return "pulse"
	case BackendPipeWire:
		return "pipewire"
	case BackendALSA:
		return "alsa"
	case BackendSoX:
		return "sox"
	case BackendFFplay:
		return "ffplay"
	default:
		return "unknown"
	}
}

// BackendConfig describes a CLI audio backend that reads raw s16le stereo
// samples on stdin.
type BackendConfig struct {
	Type BackendType
	Name string
	Path string
	Args []string
}

// Sentinel errors
var (
	ErrNoAudioBackend = errors.New("audio: no compatible backend found")
	ErrPipeClosed     = errors.New("audio: pipe closed")
	ErrRunning        = errors.New("audio: engine already running")
)

// Output format shared by every backend.
const (
	channels      = 2
	bytesPerFrame = channels * 2 // s16le stereo
)
