package level

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownPolicy is returned by ParseTable for unrecognized rule set names.
var ErrUnknownPolicy = errors.New("unknown level policy")

// Policy decides whether a level is complete given the live kill counters.
type Policy func(meteors, bosses int, cfg Config) bool

// Quota completes the level once both the meteor and the boss quota are met.
func Quota(meteors, bosses int, cfg Config) bool {
	return meteors >= cfg.Meteors && bosses >= cfg.Bosses
}

// BossDefeat completes the level as soon as the required bosses are
// destroyed, whatever the meteor count.
func BossDefeat(_, bosses int, cfg Config) bool {
	return bosses >= cfg.Bosses
}

// ParseTable resolves a rule set by name ("quota" or "classic").
// An empty name selects Standard.
func ParseTable(name string) (Table, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", Standard.Name, "standard":
		return Standard, nil
	case Classic.Name, "boss":
		return Classic, nil
	default:
		return Table{}, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
	}
}
