// Package glowbreak implements the brick-breaker session: a deterministic,
// frame-driven simulation with power-ups, special bricks, elite bricks,
// bosses, combo scoring and a daily-seeded layout.
package glowbreak

import (
	"fmt"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/glowbreak/internal/config"
	"github.com/vovakirdan/glowbreak/internal/core"
	"github.com/vovakirdan/glowbreak/internal/registry"
)

// Session states
const (
	StateIdle     = "idle"     // Title screen, waiting for the first launch
	StatePlaying  = "playing"  // Simulation running
	StatePaused   = "paused"   // Paused by the player or after a lost life
	StateGameOver = "gameover" // Lives exhausted (or the campaign is complete)
	StateWin      = "win"      // Level cleared, waiting to start the next one
)

// GameMode represents the game mode.
type GameMode int

const (
	ModeCampaign GameMode = iota // Levels up to the final boss
	ModeEndless                  // Rows keep descending, play until game over
)

// pauseReason tells why the session is paused.
type pauseReason int

const (
	pauseUser pauseReason = iota
	pauseLifeLost
)

// Game is one brick-breaker session.
type Game struct {
	mode    GameMode
	cfg     config.Config
	svc     core.Services
	log     *log.Logger
	runtime core.RuntimeConfig

	// Randomness: layout comes from the daily seed, play from the runtime seed
	dailySeed int64
	layoutRNG *SeededRNG
	rng       *SeededRNG

	// Session
	state             string
	pause             pauseReason
	level             int
	score             float64
	highScore         float64
	lives             int
	combo             int
	maxCombo          int
	missCount         int
	consecutiveLosses int
	bossFailures      int
	credits           int
	ballSpeed         float64 // Base speed of new balls, raised per level
	scoreMult         float64
	timeFactor        float64
	clock             float64 // Session time in ms, advances only while playing
	pendingExplosions int
	idleMs            float64
	eliteSlowMs       float64
	freezeActive      bool
	freezeUntil       float64
	continueMs        float64 // Continue countdown; > 0 while the offer stands
	endlessMs         float64
	completed         bool

	// Level summary and game over texts
	lastRank   Rank
	lastLevel  int
	newBest    bool
	lastReward Reward
	overTitle  string

	// Entities
	pad         Paddle
	ballSet     []*Ball
	grid        *Grid
	elites      []BrickID
	boss        *Boss
	projectiles []*Projectile
	pickups     []*Pickup
	barrier     Shield

	power    *PowerUps
	sched    Scheduler
	progress *Progress
}

// New creates a campaign session.
func New(env registry.Env) *Game {
	return newGame(ModeCampaign, env)
}

// NewEndless creates an endless session.
func NewEndless(env registry.Env) *Game {
	return newGame(ModeEndless, env)
}

func newGame(mode GameMode, env registry.Env) *Game {
	if env.Config.Field.Width <= 0 {
		env.Config = config.Default()
	}
	svc := env.Services.WithDefaults()
	g := &Game{
		mode:     mode,
		cfg:      env.Config,
		svc:      svc,
		log:      svc.Log.WithPrefix("glowbreak"),
		progress: NewProgress(svc),
	}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this game mode.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "glowbreak_endless"
	}
	return "glowbreak"
}

// Title returns the display name for this game mode.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Glowbreak (Endless)"
	}
	return "Glowbreak"
}

// Reset starts a new run. Pending scheduled tasks of the previous run are
// dropped. Consecutive losses and boss failures carry over so the assist
// keeps working across restarts.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.sched.Clear()

	g.dailySeed = runtime.DailySeed
	if g.dailySeed == 0 {
		g.dailySeed = DailySeed(time.Now())
	}
	seed := runtime.Seed
	if seed == 0 {
		seed = g.dailySeed
	}
	g.layoutRNG = NewSeededRNG(g.dailySeed)
	g.rng = NewSeededRNG(seed)

	g.level = 1
	g.score = 0
	g.lives = g.cfg.Gameplay.Lives
	g.combo, g.maxCombo = 0, 0
	g.credits = g.cfg.Gameplay.InitialCredits
	g.ballSpeed = g.cfg.Ball.Speed
	g.scoreMult, g.timeFactor = 1, 1
	g.clock = 0
	g.continueMs = 0
	g.completed = false
	g.lastRank, g.lastLevel, g.newBest = RankNone, 0, false
	g.overTitle = ""
	g.highScore = g.progress.HighScore(g.ID())

	g.power = NewPowerUps(g.cfg.PowerUps.Durations, g.shieldY())
	g.pad = Paddle{
		Width:     g.cfg.Paddle.Width,
		BaseWidth: g.cfg.Paddle.Width,
		Height:    g.cfg.Paddle.Height,
		Speed:     g.cfg.Paddle.Speed,
		Y:         g.cfg.Field.Height - g.cfg.Paddle.BottomOffset,
	}

	g.loadLevel()
	g.state = StateIdle
	g.log.Debug("session reset", "mode", g.ID(), "daily_seed", g.dailySeed, "seed", seed)
}

func (g *Game) shieldY() float64 {
	return g.cfg.Field.Height - 10
}

// loadLevel builds the grid of the current level and puts a fresh ball on
// the paddle.
func (g *Game) loadLevel() {
	g.sched.Clear()
	g.pendingExplosions = 0

	b := g.cfg.Bricks
	g.grid = BuildLevel(g.level, g.layoutRNG, LevelOptions{
		Columns:  b.Columns,
		Rows:     b.Rows,
		BossRows: b.BossRows,
		Layout: Layout{
			BrickW:     b.Width,
			BrickH:     b.Height,
			Padding:    b.Padding,
			OffsetTop:  b.OffsetTop,
			OffsetLeft: b.OffsetLeft,
		},
	})
	g.refreshElites()

	g.boss = nil
	if kind, ok := BossKindForTier(BossTier(g.level)); ok {
		assist := config.Assist{BossFailures: g.bossFailures}
		g.boss = NewBoss(kind, g.cfg.Field.Width, assist.BossHP(kind.Info().HP), g.cfg.Gameplay.BossDamageCDMs)
		g.svc.Notify.Notify(fmt.Sprintf("%s approaches!", kind), core.SeverityWarning)
	}

	g.missCount = 0
	g.idleMs = 0
	g.endlessMs = 0
	g.clearPlayfield()
	g.log.Debug("level loaded", "level", g.level, "pattern", PatternName(g.level), "bricks", g.grid.AliveCount())
}

// refreshElites rebuilds the list of live elite bricks.
func (g *Game) refreshElites() {
	g.elites = g.elites[:0]
	g.grid.Each(func(b *Brick) {
		if b.Alive && b.Elite != nil {
			g.elites = append(g.elites, b.ID)
		}
	})
}

// clearPlayfield reverts every effect, clears pickups and projectiles, and
// puts a single held ball on a centred paddle.
func (g *Game) clearPlayfield() {
	g.power.RevertAll(g)
	g.freezeActive = false
	g.barrier = Shield{}
	g.pickups = nil
	g.projectiles = nil
	g.eliteSlowMs = 0
	g.pad.InvincibleMs = 0
	g.refreshPaddleWidth()
	g.pad.X = (g.cfg.Field.Width - g.pad.Width) / 2
	g.ballSet = []*Ball{g.newBall()}
}

func (g *Game) newBall() *Ball {
	r := g.cfg.Ball.Radius
	return &Ball{
		X:      g.pad.CenterX(),
		Y:      g.pad.Y - r,
		Radius: r,
		Speed:  g.ballSpeed,
		Held:   true,
		Mods:   g.power.BallMods(),
	}
}

// Step advances the session by one tick of the configured tick rate.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	return g.StepElapsed(in, g.runtime.FrameInterval())
}

// StepElapsed advances the session by a measured interval.
func (g *Game) StepElapsed(in core.InputFrame, elapsed time.Duration) core.StepResult {
	dt := float64(elapsed) / float64(time.Millisecond)
	g.handleInput(in)

	switch g.state {
	case StatePlaying:
		g.update(in, dt)
	case StateGameOver:
		if g.continueMs > 0 {
			g.tickContinue(dt)
		}
	}

	return core.StepResult{State: g.State()}
}

// handleInput applies the state transitions driven by the player.
func (g *Game) handleInput(in core.InputFrame) {
	switch g.state {
	case StateIdle:
		if in.Has(core.ActionLaunch) {
			g.svc.Audio.Play(core.SoundStart, core.SoundParams{})
			g.play()
		}

	case StatePlaying:
		if in.Has(core.ActionPause) {
			g.state = StatePaused
			g.pause = pauseUser
			g.svc.Audio.StopTheme()
			return
		}
		if in.Has(core.ActionLaunch) {
			g.launchHeld()
		}

	case StatePaused:
		if in.Has(core.ActionPause) || in.Has(core.ActionLaunch) {
			g.play()
		}

	case StateWin:
		if in.Has(core.ActionLaunch) {
			g.play()
		}

	case StateGameOver:
		if g.continueMs > 0 {
			if in.Has(core.ActionContinue) {
				g.continueGame()
			}
			return
		}
		if in.Has(core.ActionRestart) {
			g.Reset(g.runtime)
		}
	}
}

// play enters the playing state and launches any held ball.
func (g *Game) play() {
	g.state = StatePlaying
	g.svc.Audio.StartTheme(ThemeForLevel(g.level))
	g.launchHeld()
}

// launchHeld releases every held ball at 45° upward.
func (g *Game) launchHeld() {
	for _, b := range g.ballSet {
		if !b.Held {
			continue
		}
		dir := 1.0
		if g.rng.NextFloat() < 0.5 {
			dir = -1
		}
		s := b.ExpectedSpeed() * math.Sqrt2 / 2
		b.Held = false
		b.DX, b.DY = dir*s, -s
	}
}

// update runs one playing tick.
func (g *Game) update(in core.InputFrame, dt float64) {
	g.clock += dt
	ts := TimeScale(dt, g.cfg.Field.FrameInterval, g.cfg.Field.MaxTimeScale) * g.timeFactor

	g.sched.Poll(g.clock)
	if g.state != StatePlaying {
		return
	}

	g.updatePaddle(in, ts)
	g.updateBalls(ts)
	if g.state != StatePlaying {
		return
	}

	g.updateEffects(dt)
	g.updatePickups(ts)

	g.updateBoss(dt, ts)
	g.updateElites(dt)
	g.updateProjectiles(ts)
	if g.state != StatePlaying {
		return
	}

	g.updateIdleDrop(dt)
	if g.mode == ModeEndless {
		g.updateEndless(dt)
	}
}

// updateEffects ticks timed effects, the shield, and the paddle timers.
func (g *Game) updateEffects(dt float64) {
	for _, k := range g.power.Tick(g, dt) {
		g.log.Debug("effect expired", "kind", k)
	}
	if g.barrier.Active {
		g.barrier.RemainingMs -= dt
		if g.barrier.RemainingMs <= 0 && !g.power.Effects.Active(KindInvincible) {
			g.barrier = Shield{}
		}
	}
	g.pad.InvincibleMs = math.Max(0, g.pad.InvincibleMs-dt)
	g.eliteSlowMs = math.Max(0, g.eliteSlowMs-dt)
}

// loseLife costs one life after every ball has been lost.
func (g *Game) loseLife() {
	g.lives = max(0, g.lives-1)
	g.missCount++
	g.combo = 0
	if g.lives == 0 {
		g.gameOver()
		return
	}

	g.svc.Audio.Play(core.SoundLoseLife, core.SoundParams{})
	g.clearPlayfield()
	g.state = StatePaused
	g.pause = pauseLifeLost
	g.log.Debug("life lost", "lives", g.lives, "level", g.level)
}

// gameOver ends play. A continue is offered when the player can pay for it.
func (g *Game) gameOver() {
	g.endRun(true)
}

func (g *Game) endRun(offerContinue bool) {
	g.state = StateGameOver
	g.recordHighScore()
	g.svc.Audio.StopTheme()
	g.svc.Audio.Play(core.SoundGameOver, core.SoundParams{})

	if offerContinue && g.canContinue() {
		g.continueMs = g.cfg.Gameplay.ContinueMs
		return
	}
	g.finishGameOver()
}

func (g *Game) canContinue() bool {
	return g.score >= g.cfg.Gameplay.ContinueCost || g.credits > 0
}

// tickContinue runs the continue countdown, beeping on the last three seconds.
func (g *Game) tickContinue(dt float64) {
	before := math.Ceil(g.continueMs / 1000)
	g.continueMs -= dt
	after := math.Ceil(g.continueMs / 1000)
	if after < before && after >= 1 && after <= 3 {
		g.svc.Audio.Play(core.SoundBip, core.SoundParams{})
	}
	if g.continueMs <= 0 {
		g.continueMs = 0
		g.finishGameOver()
	}
}

// continueGame pays for a continue, score first, and resumes the level.
func (g *Game) continueGame() {
	switch {
	case g.score >= g.cfg.Gameplay.ContinueCost:
		g.score -= g.cfg.Gameplay.ContinueCost
	case g.credits > 0:
		g.credits--
	default:
		return
	}

	g.continueMs = 0
	g.lives = g.cfg.Gameplay.Lives
	g.clearPlayfield()
	g.pad.InvincibleMs = g.cfg.Gameplay.InvincibleMs
	g.svc.Audio.Play(core.SoundStart, core.SoundParams{})
	g.svc.Notify.Notify("Continue!", core.SeverityInfo)
	g.log.Info("continue", "level", g.level, "score", math.Floor(g.score), "credits", g.credits)
	g.state = StatePaused
	g.pause = pauseLifeLost
}

// finishGameOver is the terminal game over.
func (g *Game) finishGameOver() {
	g.consecutiveLosses++
	if IsBossLevel(g.level) {
		g.bossFailures++
	}

	g.overTitle = "GAME OVER"
	if remaining := g.grid.AliveCount(); remaining > 0 && remaining <= 5 {
		g.overTitle = "SO CLOSE!"
	}
	assist := config.Assist{ConsecutiveLosses: g.consecutiveLosses, BossFailures: g.bossFailures}
	if assist.Active() {
		g.overTitle = "DON'T GIVE UP!"
		g.ballSpeed = assist.BallSpeed(g.ballSpeed, g.cfg.Ball.Speed)
	}
	g.credits = g.cfg.Gameplay.InitialCredits

	g.progress.CheckStats()
	g.progress.Flush()
	g.log.Info("game over", "mode", g.ID(), "level", g.level, "score", math.Floor(g.score), "losses", g.consecutiveLosses)
}

// recordHighScore keeps the best score of the mode.
func (g *Game) recordHighScore() {
	if g.score <= g.highScore {
		return
	}
	g.highScore = g.score
	g.progress.SaveHighScore(g.ID(), g.score)
}

// checkWin ends the level when every brick is dead, no explosion is still
// pending, and the boss (if any) is dead.
func (g *Game) checkWin() {
	if g.state != StatePlaying || g.pendingExplosions > 0 {
		return
	}
	if !g.LevelCleared() {
		return
	}
	g.winLevel()
}

// LevelCleared reports whether the level is won: all bricks destroyed and,
// on a level with a boss, the boss dead.
func (g *Game) LevelCleared() bool {
	if !g.grid.Cleared() {
		return false
	}
	return g.boss == nil || g.boss.Dead()
}

// winLevel grades the level, hands out the reward, and prepares the next one.
func (g *Game) winLevel() {
	g.consecutiveLosses = 0
	g.lastLevel = g.level
	g.lastRank = ComputeRank(g.missCount, g.maxCombo, g.score, TargetScore(g.level))
	g.newBest = g.progress.SaveBestRank(g.level, g.lastRank)

	reward := RewardFor(g.level, g.mode)
	g.lastReward = reward
	g.lives = min(g.lives+reward.Lives, g.cfg.Gameplay.MaxLives)
	g.score += reward.Score
	g.credits += reward.Credits

	if g.boss != nil {
		g.progress.Stats.BossKills++
		g.bossFailures = 0
	}
	if g.lastRank == RankS {
		g.progress.Stats.SRankCount++
	}
	if g.ballSpeed >= g.cfg.Ball.MaxSpeed {
		g.progress.Unlock("speed_demon")
	}
	g.ballSpeed = math.Min(g.ballSpeed+g.cfg.Ball.LevelStep, g.cfg.Ball.MaxSpeed)
	g.progress.CheckStats()
	g.progress.Flush()

	g.svc.Audio.StopTheme()
	g.svc.Audio.Play(core.SoundLevelComplete, core.SoundParams{})
	g.log.Info("level cleared", "level", g.level, "rank", g.lastRank, "score", math.Floor(g.score))

	if reward.Complete {
		g.completed = true
		g.state = StateGameOver
		g.overTitle = "CAMPAIGN COMPLETE"
		g.recordHighScore()
		g.svc.Audio.Play(core.SoundWin, core.SoundParams{})
		return
	}

	g.level++
	g.loadLevel()
	g.state = StateWin
}

// State returns the current summary state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    int(math.Floor(g.score)),
		Level:    g.level,
		Lives:    g.lives,
		MaxCombo: g.maxCombo,
		GameOver: g.state == StateGameOver && g.continueMs <= 0,
		Paused:   g.state == StatePaused,
	}
}

// Phase returns the session state name.
func (g *Game) Phase() string {
	return g.state
}

// DailySeed returns the seed of the brick layout.
func (g *Game) DailySeed() int64 {
	return g.dailySeed
}

// Progress returns the stats and achievements of the player.
func (g *Game) Progress() *Progress {
	return g.progress
}

// Completed reports whether the campaign has been finished.
func (g *Game) Completed() bool {
	return g.completed
}

// powerUpTarget implementation

func (g *Game) balls() []*Ball { return g.ballSet }

func (g *Game) addBalls(bs ...*Ball) { g.ballSet = append(g.ballSet, bs...) }

func (g *Game) paddle() *Paddle { return &g.pad }

func (g *Game) shield() *Shield { return &g.barrier }

func (g *Game) setTimeFactor(v float64) { g.timeFactor = v }

func (g *Game) setScoreMultiplier(v float64) { g.scoreMult = v }

// refreshPaddleWidth recomputes the width from the base width, the size
// effect, and the freeze enlargement, keeping the paddle centred in place.
func (g *Game) refreshPaddleWidth() {
	w := g.pad.BaseWidth * g.power.WidthFactor()
	if g.freezeActive {
		w *= FreezeWidth
	}
	center := g.pad.CenterX()
	g.pad.Width = w
	g.pad.X = core.ClampF(center-w/2, 0, g.cfg.Field.Width-w)
}

func init() {
	registry.Register("glowbreak", func(env registry.Env) registry.Game {
		return New(env)
	})
	registry.Register("glowbreak_endless", func(env registry.Env) registry.Game {
		return NewEndless(env)
	})
}
