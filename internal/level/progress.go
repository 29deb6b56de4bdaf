package level

// State is the outcome of a level attempt.
type State int

const (
	InProgress State = iota // Attempt still running
	Victory                 // Completion policy satisfied
	Defeat                  // Lives exhausted
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case Victory:
		return "victory"
	case Defeat:
		return "defeat"
	default:
		return "unknown"
	}
}

// Terminal reports whether the state ends the attempt.
func (s State) Terminal() bool {
	return s == Victory || s == Defeat
}

// Progress tracks kills and boss bookkeeping for one level attempt.
// Only InProgress accepts transitions; Victory and Defeat are final.
type Progress struct {
	Level            int
	Config           Config
	MeteorsDestroyed int
	BossesDestroyed  int
	BossSpawned      []bool // One flag per threshold
	BossActive       bool
	State            State

	policy Policy
}

// NewProgress creates a fresh progress tracker for the given level.
// A nil policy falls back to Quota.
func NewProgress(n int, cfg Config, policy Policy) *Progress {
	if policy == nil {
		policy = Quota
	}
	return &Progress{
		Level:       Normalize(n),
		Config:      cfg,
		BossSpawned: make([]bool, len(cfg.Thresholds)),
		policy:      policy,
	}
}

// NextBossWave returns the first threshold index whose boss is due:
// not yet spawned, threshold reached, and no boss currently active.
func (p *Progress) NextBossWave() (int, bool) {
	if p.BossActive {
		return -1, false
	}
	for i, threshold := range p.Config.Thresholds {
		if !p.BossSpawned[i] && p.MeteorsDestroyed >= threshold {
			return i, true
		}
	}
	return -1, false
}

// BossSpawnedAt marks the boss of wave i as in play.
func (p *Progress) BossSpawnedAt(i int) {
	if i < 0 || i >= len(p.BossSpawned) {
		return
	}
	p.BossSpawned[i] = true
	p.BossActive = true
}

// BossEscaped clears the active boss of wave i without counting a kill and
// re-arms its threshold so it spawns again.
func (p *Progress) BossEscaped(i int) {
	p.BossActive = false
	if i >= 0 && i < len(p.BossSpawned) {
		p.BossSpawned[i] = false
	}
}

// IsFinalWave reports whether wave i is the last boss of the level.
func (p *Progress) IsFinalWave(i int) bool {
	return i == len(p.Config.Thresholds)-1
}

// RecordMeteor counts a regular kill and evaluates completion.
func (p *Progress) RecordMeteor() State {
	if p.State != InProgress {
		return p.State
	}
	p.MeteorsDestroyed++
	return p.Check()
}

// RecordBoss counts a boss kill, clears the active flag and evaluates completion.
func (p *Progress) RecordBoss() State {
	if p.State != InProgress {
		return p.State
	}
	p.BossesDestroyed++
	p.BossActive = false
	return p.Check()
}

// Check applies the completion policy.
func (p *Progress) Check() State {
	if p.State == InProgress && p.policy(p.MeteorsDestroyed, p.BossesDestroyed, p.Config) {
		p.State = Victory
	}
	return p.State
}

// Fail moves an in-progress attempt to Defeat.
func (p *Progress) Fail() State {
	if p.State == InProgress {
		p.State = Defeat
	}
	return p.State
}
