// Package config centralizes all tunable front-end parameters.
package config

import "time"

// View resolution - the playfield in logical units.
// Actual rendering scales to fit terminal size.
const (
	ViewWidth  = 1280 // Logical playfield width
	ViewHeight = 720  // Logical playfield height
)

// Max render resolution in terminal cells. Larger terminals get a
// centered, bordered play area.
const (
	MaxTermWidth  = 160
	MaxTermHeight = 50
)

// Player
const (
	InitialLives         = 3
	InvulnerabilityTicks = 120 // 2 s at TickRate
	ShipBlinkPeriod      = 6   // Ticks per visible/hidden phase while protected
	MaxUsernameLength    = 16  // Maximum display length for player names
)

// Shutdown
const (
	ShutdownDisplaySeconds = 10.0 // Seconds to show shutdown message before auto-disconnect
)

// Inactivity
const (
	InactivityWarnUser       = 90  // Seconds
	InactivityDisconnectUser = 120 // Seconds
)

// Simulation and rendering
const (
	TickRate        = 60
	TickTime        = time.Second / TickRate
	MaxCatchUpTicks = 5 // Most simulation steps run for one rendered frame
)
