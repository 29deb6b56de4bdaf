// Package game runs one level attempt at a time: entity bookkeeping, the
// per-tick simulation step, the spawn director and the session that moves a
// player between levels.
package game

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/tomz197/galaxyblaster/internal/level"
	"github.com/tomz197/galaxyblaster/internal/object"
)

// Spawn pacing, in ticks.
const (
	InitialSpawnInterval = 60.0
	MinSpawnInterval     = 20.0
	SpawnIntervalStep    = 0.5
)

// DefaultView is the logical playfield.
var DefaultView = object.NewScreen(1280, 720)

// Options configures a Run. Zero values select the defaults.
type Options struct {
	Level             int         // 1..MaxLevel; anything else plays level 1
	Table             level.Table // Rule set; zero value selects level.Standard
	View              object.Screen
	Rand              object.Rand
	Lives             int
	InvulnerableTicks int
	Logger            *log.Logger
}

// Run is everything belonging to a single level attempt. Starting or
// retrying a level builds a new Run; nothing carries over.
type Run struct {
	Level       int
	Config      level.Config
	Progress    *level.Progress
	Ship        *object.Ship
	Projectiles []*object.Projectile
	Hostiles    []*object.Hostile
	Explosions  []*object.Explosion
	Lives       Lives
	Score       int
	Effects     Effects
	Active      bool // Steps are no-ops once false

	view          object.Screen
	table         level.Table
	rng           object.Rand
	log           *log.Logger
	frame         uint64
	spawnTimer    int
	spawnInterval float64
	pending       *completion
	resolved      bool
	events        []Event
}

// NewRun starts a fresh attempt.
func NewRun(opts Options) *Run {
	if opts.Table.Policy == nil {
		opts.Table = level.Standard
	}
	if opts.View.Width <= 0 || opts.View.Height <= 0 {
		opts.View = DefaultView
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(rand.Int63()))
	}
	if opts.Lives <= 0 {
		opts.Lives = DefaultLives
	}
	if opts.InvulnerableTicks <= 0 {
		opts.InvulnerableTicks = DefaultInvulnerableTicks
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	n := level.Normalize(opts.Level)
	cfg := opts.Table.Config(n)
	r := &Run{
		Level:         n,
		Config:        cfg,
		Progress:      level.NewProgress(n, cfg, opts.Table.Policy),
		Ship:          object.NewShip(opts.View),
		Lives:         NewLives(opts.Lives, opts.InvulnerableTicks),
		Active:        true,
		view:          opts.View,
		table:         opts.Table,
		rng:           opts.Rand,
		log:           opts.Logger.With("level", n),
		spawnInterval: InitialSpawnInterval,
	}
	r.log.Info("level started", "difficulty", cfg.Difficulty, "rules", opts.Table.Name)
	return r
}

// View returns the logical playfield of the run.
func (r *Run) View() object.Screen {
	return r.view
}

// Frame advances the run by one frame: one simulation step, then any
// scheduled completion that has come due.
func (r *Run) Frame() {
	r.frame++
	r.Step()
	r.fireDue()
}

// Frames returns how many frames have elapsed.
func (r *Run) Frames() uint64 {
	return r.frame
}

// MoveShip places the ship at logical x, clamped to the playfield margins.
func (r *Run) MoveShip(x float64) {
	if !r.Active {
		return
	}
	r.Ship.MoveTo(x, float64(r.view.Width))
}

// NudgeShip moves the ship by dir ship-speeds (negative is left).
func (r *Run) NudgeShip(dir float64) {
	r.MoveShip(r.Ship.X + dir*r.Ship.Speed)
}

// Fire launches a projectile from the ship. Returns false when the run is
// no longer active.
func (r *Run) Fire() bool {
	if !r.Active {
		return false
	}
	x, y := r.Ship.Muzzle()
	r.Projectiles = append(r.Projectiles, object.NewProjectile(x, y))
	r.emit(EventFire, x, y)
	return true
}

// SpawnInterval returns the current number of ticks between spawns.
func (r *Run) SpawnInterval() float64 {
	return r.spawnInterval
}

// Resolved reports whether the attempt has a final outcome the
// presentation should show.
func (r *Run) Resolved() bool {
	return r.resolved
}

// Outcome returns the level state of the attempt.
func (r *Run) Outcome() level.State {
	return r.Progress.State
}

// DrainEvents returns and clears the events emitted since the last call.
func (r *Run) DrainEvents() []Event {
	ev := r.events
	r.events = nil
	return ev
}

func (r *Run) emit(kind EventKind, x, y float64) {
	r.events = append(r.events, Event{Kind: kind, X: x, Y: y})
}

// resolve publishes the final outcome.
func (r *Run) resolve(state level.State) {
	if r.resolved {
		return
	}
	r.Active = false
	r.resolved = true
	switch state {
	case level.Victory:
		r.emit(EventVictory, r.Ship.X, r.Ship.Y)
		r.log.Info("level complete", "score", r.Score, "meteors", r.Progress.MeteorsDestroyed, "bosses", r.Progress.BossesDestroyed)
	case level.Defeat:
		r.emit(EventDefeat, r.Ship.X, r.Ship.Y)
		r.log.Info("level failed", "score", r.Score, "meteors", r.Progress.MeteorsDestroyed, "bosses", r.Progress.BossesDestroyed)
	}
}
