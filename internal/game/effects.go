package game

// Visual cue tuning.
const (
	ShakeDecay      = 1.5  // Shake lost per tick
	FlashDecay      = 0.04 // Flash opacity lost per tick
	SlowFactor      = 0.25 // Motion multiplier while slow motion is active
	SlowMotionTicks = 45   // Slow-motion window after a boss falls mid-level

	ShipHitShake    = 15.0
	ShipHitFlash    = 0.3
	BossHitShake    = 8.0
	BossHitFlash    = 0.15
	BossDefeatFlash = 0.85
)

// Effects holds the transient cues that shape presentation and, through
// slow motion, the motion multiplier.
type Effects struct {
	Shake      float64 // Screen shake magnitude
	Flash      float64 // Full-frame flash opacity
	SlowMotion int     // Remaining slow-motion ticks
}

// Update decays the cues by one tick and returns the motion multiplier
// to use for this tick.
func (e *Effects) Update() float64 {
	e.Shake = max(0, e.Shake-ShakeDecay)
	e.Flash = max(0, e.Flash-FlashDecay)
	if e.SlowMotion > 0 {
		e.SlowMotion--
		return SlowFactor
	}
	return 1
}

// Kick raises shake and flash to at least the given values.
func (e *Effects) Kick(shake, flash float64) {
	e.Shake = max(e.Shake, shake)
	e.Flash = max(e.Flash, flash)
}

// SlowDown starts (or extends) a slow-motion window.
func (e *Effects) SlowDown(ticks int) {
	e.SlowMotion = max(e.SlowMotion, ticks)
}
