package game

// Defaults for a new attempt.
const (
	DefaultLives             = 3
	DefaultInvulnerableTicks = 120 // 2 s at 60 ticks/s
)

// Lives tracks remaining lives and post-hit protection.
type Lives struct {
	Remaining    int
	Invulnerable bool
	Timer        int // Protection ticks left

	protection int
}

// NewLives creates a full set of lives with the given protection window.
func NewLives(n, protection int) Lives {
	return Lives{Remaining: n, protection: protection}
}

// Hit takes a life and starts protection. Returns false, changing nothing,
// while protected.
func (l *Lives) Hit() bool {
	if l.Invulnerable {
		return false
	}
	l.Remaining--
	l.Invulnerable = true
	l.Timer = l.protection
	return true
}

// Tick counts protection down by one tick.
func (l *Lives) Tick() {
	if !l.Invulnerable {
		return
	}
	l.Timer--
	if l.Timer <= 0 {
		l.Timer = 0
		l.Invulnerable = false
	}
}

// Exhausted reports whether no lives remain.
func (l Lives) Exhausted() bool {
	return l.Remaining <= 0
}
