package core

import (
	"io"

	"github.com/charmbracelet/log"
)

// SoundEvent names a one-shot sound the game asks the audio sink to play.
type SoundEvent int

const (
	SoundStart SoundEvent = iota
	SoundPaddleHit
	SoundBrickHit // Params.Row selects the pitch
	SoundCombo    // Params.Combo selects the pitch
	SoundWallHit
	SoundExplosion
	SoundPowerUp
	SoundLoseLife
	SoundGameOver
	SoundLevelComplete
	SoundBossHit
	SoundEliteCharge
	SoundEliteFireball
	SoundEliteRumble
	SoundLightning
	SoundFreeze
	SoundTeleport
	SoundShield
	SoundCoin
	SoundWin
	SoundBip
	soundEventCount
)

// SoundEventCount is the number of defined sound events.
const SoundEventCount = int(soundEventCount)

var soundEventNames = [...]string{
	"start", "paddleHit", "brickHit", "combo", "wallHit", "explosion", "powerup",
	"loseLife", "gameOver", "levelComplete", "bossHit", "eliteCharge",
	"eliteFireball", "eliteRumble", "lightning", "freeze", "teleport", "shield",
	"coin", "win", "bip",
}

func (e SoundEvent) String() string {
	if e < 0 || int(e) >= len(soundEventNames) {
		return "unknown"
	}
	return soundEventNames[e]
}

// SoundParams carries the optional arguments of a sound event.
type SoundParams struct {
	Row   int // Brick row for SoundBrickHit
	Combo int // Combo count for SoundCombo
}

// Theme names a looping background music theme.
type Theme string

const (
	ThemeNormal    Theme = "normal"
	ThemeJourney   Theme = "journey"
	ThemeAdventure Theme = "adventure"
	ThemeMystic    Theme = "mystic"
	ThemeFast      Theme = "fast"
	ThemeTriumph   Theme = "triumph"
	ThemeBoss      Theme = "boss"
)

// AudioSink consumes fire-and-forget sound requests.
type AudioSink interface {
	Play(ev SoundEvent, p SoundParams)
	StartTheme(t Theme)
	StopTheme()
}

// ParticleSink receives particle bursts in world coordinates.
// The sink animates and retires particles on its own.
type ParticleSink interface {
	SpawnBurst(x, y float64, c Color, count int, explosion bool)
}

// Severity classifies a user-facing notification.
type Severity int

const (
	SeverityInfo Severity = iota
	SeveritySuccess
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeveritySuccess:
		return "success"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "info"
	}
}

// Notifier shows transient feedback to the player.
type Notifier interface {
	Notify(msg string, sev Severity)
}

// Persistence is a small key-value store for preferences and progress.
// Get reports ok=false for a missing key.
type Persistence interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// Services bundles the collaborators a game session talks to.
// Zero fields are replaced by no-op implementations in WithDefaults.
type Services struct {
	Audio     AudioSink
	Particles ParticleSink
	Notify    Notifier
	Store     Persistence
	Log       *log.Logger
}

// WithDefaults returns a copy with every nil collaborator replaced by a no-op.
func (s Services) WithDefaults() Services {
	if s.Audio == nil {
		s.Audio = NopAudio{}
	}
	if s.Particles == nil {
		s.Particles = NopParticles{}
	}
	if s.Notify == nil {
		s.Notify = NopNotifier{}
	}
	if s.Store == nil {
		s.Store = NewMemoryStore()
	}
	if s.Log == nil {
		s.Log = log.New(io.Discard)
	}
	return s
}

// NopAudio discards every sound request.
type NopAudio struct{}

func (NopAudio) Play(SoundEvent, SoundParams) {}
func (NopAudio) StartTheme(Theme)             {}
func (NopAudio) StopTheme()                   {}

// NopParticles discards every burst.
type NopParticles struct{}

func (NopParticles) SpawnBurst(float64, float64, Color, int, bool) {}

// NopNotifier discards every notification.
type NopNotifier struct{}

func (NopNotifier) Notify(string, Severity) {}

// MemoryStore is an in-memory Persistence, used when no database is wired.
type MemoryStore struct {
	data map[string]string
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]string)}
}

func (m *MemoryStore) Get(key string) (string, bool, error) {
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *MemoryStore) Set(key, value string) error {
	m.data[key] = value
	return nil
}
