// Package leaderboard keeps the per-day high score table. Every run of a
// given daily seed plays the same layout, so scores are only compared
// within one seed.
package leaderboard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/glowbreak/internal/config"
)

// ErrOffline is returned when the backing store cannot be reached. Top still
// returns the last cached table alongside it when one exists.
var ErrOffline = errors.New("leaderboard: offline")

// Entry is one row of a daily table.
type Entry struct {
	Name      string
	Score     int
	MaxCombo  int
	Seed      string
	CreatedAt time.Time
}

// Store is the backing table. storage.Store implements it on SQLite.
type Store interface {
	InsertScore(ctx context.Context, e Entry) error
	QueryTopScores(ctx context.Context, seed string, limit int) ([]Entry, error)
}

type cachedTable struct {
	entries []Entry
	fetched time.Time
}

// Service submits scores and serves cached top tables.
type Service struct {
	store  Store
	cfg    config.LeaderboardConfig
	logger *log.Logger
	now    func() time.Time

	mu    sync.Mutex
	cache map[string]cachedTable
}

// New creates a Service. A nil store keeps the service permanently offline.
func New(store Store, cfg config.LeaderboardConfig, logger *log.Logger) *Service {
	def := config.Default().Leaderboard
	if cfg.Limit <= 0 {
		cfg.Limit = def.Limit
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = def.CacheTTL
	}
	if cfg.MaxNameLen <= 0 {
		cfg.MaxNameLen = def.MaxNameLen
	}
	if cfg.DefaultName == "" {
		cfg.DefaultName = def.DefaultName
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Service{
		store:  store,
		cfg:    cfg,
		logger: logger.WithPrefix("leaderboard"),
		now:    time.Now,
		cache:  make(map[string]cachedTable),
	}
}

// SanitizeName trims a player name, drops control characters and cuts it to
// maxLen runes. An empty result becomes def.
func SanitizeName(name string, maxLen int, def string) string {
	name = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, name)
	name = strings.TrimSpace(name)

	runes := []rune(name)
	if maxLen > 0 && len(runes) > maxLen {
		name = strings.TrimSpace(string(runes[:maxLen]))
	}
	if name == "" {
		return def
	}
	return name
}

// Submit records a finished run. The score is floored. On success the
// cached table of the seed is dropped so the next Top refetches.
func (s *Service) Submit(ctx context.Context, name string, score float64, maxCombo int, seed string) (Entry, error) {
	e := Entry{
		Name:      SanitizeName(name, s.cfg.MaxNameLen, s.cfg.DefaultName),
		Score:     int(math.Floor(math.Max(score, 0))),
		MaxCombo:  max(maxCombo, 0),
		Seed:      seed,
		CreatedAt: s.now(),
	}
	if s.store == nil {
		return e, ErrOffline
	}
	if err := s.store.InsertScore(ctx, e); err != nil {
		s.logger.Warn("submit failed", "seed", seed, "err", err)
		return e, fmt.Errorf("%w: %w", ErrOffline, err)
	}

	s.mu.Lock()
	delete(s.cache, seed)
	s.mu.Unlock()

	s.logger.Info("score submitted", "seed", seed, "name", e.Name, "score", e.Score)
	return e, nil
}

// Top returns the best entries for seed. Fresh cached tables are served
// without touching the store. When the store fails, the stale cached table
// (possibly nil) is returned with an error wrapping ErrOffline.
func (s *Service) Top(ctx context.Context, seed string) ([]Entry, error) {
	s.mu.Lock()
	cached, ok := s.cache[seed]
	s.mu.Unlock()

	if ok && s.now().Sub(cached.fetched) < s.cfg.CacheTTL {
		return cached.entries, nil
	}
	if s.store == nil {
		return cached.entries, ErrOffline
	}

	entries, err := s.store.QueryTopScores(ctx, seed, s.cfg.Limit)
	if err != nil {
		s.logger.Warn("query failed", "seed", seed, "err", err)
		return cached.entries, fmt.Errorf("%w: %w", ErrOffline, err)
	}

	s.mu.Lock()
	s.cache[seed] = cachedTable{entries: entries, fetched: s.now()}
	s.mu.Unlock()
	return entries, nil
}

// Invalidate drops every cached table.
func (s *Service) Invalidate() {
	s.mu.Lock()
	clear(s.cache)
	s.mu.Unlock()
}
