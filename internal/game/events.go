package game

// EventKind identifies something the presentation layer may want to react to.
type EventKind int

const (
	EventFire            EventKind = iota // Projectile launched
	EventMeteorDestroyed                  // Regular hostile destroyed by a projectile
	EventBossSpawned                      // Boss entered play
	EventBossHit                          // Boss lost a hit point
	EventBossDestroyed                    // Boss hit points reached zero
	EventBossEscaped                      // Boss left play without being destroyed
	EventShipHit                          // Ship lost a life
	EventVictory                          // Attempt resolved as a victory
	EventDefeat                           // Attempt resolved as a defeat
)

// String returns a short name for logs.
func (k EventKind) String() string {
	switch k {
	case EventFire:
		return "fire"
	case EventMeteorDestroyed:
		return "meteor_destroyed"
	case EventBossSpawned:
		return "boss_spawned"
	case EventBossHit:
		return "boss_hit"
	case EventBossDestroyed:
		return "boss_destroyed"
	case EventBossEscaped:
		return "boss_escaped"
	case EventShipHit:
		return "ship_hit"
	case EventVictory:
		return "victory"
	case EventDefeat:
		return "defeat"
	default:
		return "unknown"
	}
}

// Event is emitted by a Run as the simulation progresses.
type Event struct {
	Kind EventKind
	X, Y float64 // Where it happened, in logical coordinates
}
