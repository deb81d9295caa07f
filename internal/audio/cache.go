package audio

import (
	"sync"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/glowbreak/internal/core"
)

// soundCache stores rendered unity-gain buffers
type soundCache struct {
	rate beep.SampleRate

	mu     sync.RWMutex
	sounds map[soundKey]floatBuffer
	themes map[core.Theme]floatBuffer
}

func newSoundCache(rate beep.SampleRate) *soundCache {
	return &soundCache{
		rate:   rate,
		sounds: make(map[soundKey]floatBuffer),
		themes: make(map[core.Theme]floatBuffer),
	}
}

// get returns a cached sound, rendering it on first use
func (c *soundCache) get(k soundKey) floatBuffer {
	c.mu.RLock()
	buf, ok := c.sounds[k]
	c.mu.RUnlock()
	if ok {
		return buf
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring write lock
	if buf, ok := c.sounds[k]; ok {
		return buf
	}
	buf = generateSound(k, c.rate)
	c.sounds[k] = buf
	return buf
}

// theme returns a cached theme loop
func (c *soundCache) theme(t core.Theme) floatBuffer {
	c.mu.RLock()
	buf, ok := c.themes[t]
	c.mu.RUnlock()
	if ok {
		return buf
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if buf, ok := c.themes[t]; ok {
		return buf
	}
	buf = generateTheme(t, c.rate)
	c.themes[t] = buf
	return buf
}

// preload renders the sounds heard in the first seconds of play
func (c *soundCache) preload() {
	for _, ev := range []core.SoundEvent{core.SoundStart, core.SoundPaddleHit, core.SoundWallHit} {
		c.get(soundKey{event: ev})
	}
}
