// Package level holds the per-level configuration tables and the level
// progress state machine.
package level

// MaxLevel is the last playable level. Levels outside [1, MaxLevel] wrap to 1.
const MaxLevel = 3

// Config describes what a level requires and when its bosses appear.
type Config struct {
	Meteors    int    // Regular hostiles that must be destroyed
	Bosses     int    // Bosses that must be destroyed
	Thresholds []int  // Cumulative meteor kills at which each boss may spawn, ascending
	Difficulty string // Cosmetic label
}

// Table maps level numbers to configurations and carries the options that
// differ between the standard and classic rule sets.
type Table struct {
	Name        string
	Levels      [MaxLevel]Config
	Policy      Policy
	PurgeOnBoss bool // Clear regular hostiles from the field when a boss spawns
}

// Standard requires both the meteor quota and every boss of the level.
var Standard = Table{
	Name: "quota",
	Levels: [MaxLevel]Config{
		{Meteors: 35, Bosses: 1, Thresholds: []int{34}, Difficulty: "easy"},
		{Meteors: 60, Bosses: 2, Thresholds: []int{27, 54}, Difficulty: "medium"},
		{Meteors: 100, Bosses: 3, Thresholds: []int{33, 66, 99}, Difficulty: "hard"},
	},
	Policy: Quota,
}

// Classic ends the level the moment its single final boss falls.
var Classic = Table{
	Name: "classic",
	Levels: [MaxLevel]Config{
		{Meteors: 35, Bosses: 1, Thresholds: []int{34}, Difficulty: "easy"},
		{Meteors: 60, Bosses: 1, Thresholds: []int{59}, Difficulty: "medium"},
		{Meteors: 100, Bosses: 1, Thresholds: []int{99}, Difficulty: "hard"},
	},
	Policy:      BossDefeat,
	PurgeOnBoss: true,
}

// Normalize maps any level number onto [1, MaxLevel]; out-of-range values
// restart the campaign at level 1.
func Normalize(n int) int {
	if n < 1 || n > MaxLevel {
		return 1
	}
	return n
}

// Config returns the configuration for level n (normalized).
// The thresholds slice is a copy so callers cannot alter the table.
func (t Table) Config(n int) Config {
	cfg := t.Levels[Normalize(n)-1]
	cfg.Thresholds = append([]int(nil), cfg.Thresholds...)
	return cfg
}
