package game

import (
	"github.com/tomz197/galaxyblaster/internal/level"
	"github.com/tomz197/galaxyblaster/internal/object"
	"github.com/tomz197/galaxyblaster/internal/physics"
)

// Step advances the attempt by one tick. It does nothing once the run is
// inactive. A terminal transition ends the tick where it happens.
func (r *Run) Step() {
	if !r.Active {
		return
	}

	factor := r.Effects.Update()
	r.Lives.Tick()

	r.advanceProjectiles(factor)
	r.advanceHostiles(factor)

	if r.collideShip() {
		return
	}
	if r.collideProjectiles() {
		return
	}

	r.advanceExplosions(factor)
	r.tickSpawner()
}

func (r *Run) advanceProjectiles(factor float64) {
	for _, p := range r.Projectiles {
		if p.Advance(factor) {
			p.MarkDestroyed()
		}
	}
	r.Projectiles = compact(r.Projectiles)
}

func (r *Run) advanceHostiles(factor float64) {
	height := float64(r.view.Height)
	for _, h := range r.Hostiles {
		if h.Advance(factor, height) {
			h.MarkDestroyed()
			if h.Boss {
				r.bossGone(h)
			}
		}
	}
	r.Hostiles = compact(r.Hostiles)
}

// bossGone re-arms the wave of a boss that left play without being destroyed.
func (r *Run) bossGone(h *object.Hostile) {
	r.Progress.BossEscaped(h.Wave)
	r.emit(EventBossEscaped, h.X, h.Y)
	r.log.Debug("boss left play", "wave", h.Wave)
}

// collideShip resolves the first hostile touching the ship. Returns true
// when the hit ends the attempt.
func (r *Run) collideShip() bool {
	s := r.Ship
	for _, h := range r.Hostiles {
		if h.IsDestroyed() || !physics.CirclesOverlap(s.X, s.Y, s.Radius(), h.X, h.Y, h.Radius()) {
			continue
		}
		// Protected ships pass through hostiles untouched
		if !r.Lives.Hit() {
			return false
		}
		r.Effects.Kick(ShipHitShake, ShipHitFlash)
		h.MarkDestroyed()
		if h.Boss {
			r.bossGone(h)
		}
		r.emit(EventShipHit, s.X, s.Y)
		r.log.Debug("ship hit", "lives", r.Lives.Remaining)
		break
	}
	r.Hostiles = compact(r.Hostiles)

	if r.Lives.Exhausted() {
		r.resolve(r.Progress.Fail())
		return true
	}
	return false
}

// collideProjectiles resolves projectile strikes in hostile order, then
// projectile order, at most one strike per hostile. Returns true when a
// kill ends the attempt.
func (r *Run) collideProjectiles() bool {
	defer func() {
		r.Hostiles = compact(r.Hostiles)
		r.Projectiles = compact(r.Projectiles)
	}()

	for _, h := range r.Hostiles {
		if h.IsDestroyed() {
			continue
		}
		for _, p := range r.Projectiles {
			if p.IsDestroyed() || !physics.PointInCircle(p.X, p.Y, h.X, h.Y, h.Radius()) {
				continue
			}
			p.MarkDestroyed()
			if r.strike(h) {
				return true
			}
			break
		}
	}
	return false
}

// strike applies one projectile hit to h. Returns true when the attempt ended.
func (r *Run) strike(h *object.Hostile) bool {
	if !h.Boss {
		h.MarkDestroyed()
		r.Explosions = append(r.Explosions, object.NewExplosion(h))
		r.Score++
		r.emit(EventMeteorDestroyed, h.X, h.Y)
		if r.Progress.RecordMeteor() == level.Victory {
			r.resolve(level.Victory)
			return true
		}
		return false
	}

	r.Effects.Kick(BossHitShake, BossHitFlash)
	if !h.Hit() {
		r.emit(EventBossHit, h.X, h.Y)
		return false
	}

	r.Explosions = append(r.Explosions, object.NewExplosion(h))
	r.Effects.Kick(0, BossDefeatFlash)
	r.emit(EventBossDestroyed, h.X, h.Y)
	r.log.Info("boss destroyed", "wave", h.Wave, "final", h.Final)

	if r.Progress.RecordBoss() == level.Victory {
		r.Active = false
		r.schedule(level.Victory, CompletionDelay)
		return true
	}
	r.Effects.SlowDown(SlowMotionTicks)
	return false
}

func (r *Run) advanceExplosions(factor float64) {
	kept := r.Explosions[:0]
	for _, e := range r.Explosions {
		if !e.Advance(factor) {
			kept = append(kept, e)
		}
	}
	clear(r.Explosions[len(kept):])
	r.Explosions = kept
}

func (r *Run) tickSpawner() {
	r.spawnTimer++
	if float64(r.spawnTimer) <= r.spawnInterval {
		return
	}
	r.spawn()
	r.spawnTimer = 0
	if r.spawnInterval > MinSpawnInterval {
		r.spawnInterval -= SpawnIntervalStep
	}
}

// destroyable is an entity that can be marked for removal.
type destroyable interface {
	IsDestroyed() bool
}

// compact drops destroyed entities in place, keeping order.
func compact[T destroyable](items []T) []T {
	kept := items[:0]
	for _, it := range items {
		if !it.IsDestroyed() {
			kept = append(kept, it)
		}
	}
	clear(items[len(kept):])
	return kept
}
