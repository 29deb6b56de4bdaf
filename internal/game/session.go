package game

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/tomz197/galaxyblaster/internal/level"
)

// DefaultName is used when the player leaves the name empty.
const DefaultName = "Hero"

// Screen is the phase a session is showing.
type Screen int

const (
	ScreenMenu    Screen = iota // Name entry and level start
	ScreenPlaying               // A run is in progress
	ScreenVictory               // Level complete overlay
	ScreenDefeat                // Game over overlay
)

// String returns a human-readable screen name.
func (s Screen) String() string {
	switch s {
	case ScreenMenu:
		return "menu"
	case ScreenPlaying:
		return "playing"
	case ScreenVictory:
		return "victory"
	case ScreenDefeat:
		return "defeat"
	default:
		return "unknown"
	}
}

// Status is what the display shows about the session.
type Status struct {
	Screen     Screen
	Name       string
	Level      int
	Difficulty string
	Score      int
	Lives      int
	Outcome    level.State
}

// Session moves one player between the menu and level attempts.
type Session struct {
	Name   string
	Level  int
	Screen Screen
	Run    *Run // Current attempt; nil on the menu

	opts Options
	log  *log.Logger
}

// NewSession creates a session on the menu screen. opts.Level is ignored;
// every other option is handed to each Run.
func NewSession(opts Options) *Session {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Table.Policy == nil {
		opts.Table = level.Standard
	}
	return &Session{
		Name:   DefaultName,
		Level:  1,
		Screen: ScreenMenu,
		opts:   opts,
		log:    opts.Logger,
	}
}

// Table returns the rule set the session plays with.
func (s *Session) Table() level.Table {
	return s.opts.Table
}

// StartGame sets the player name and starts level 1.
func (s *Session) StartGame(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultName
	}
	s.Name = name
	s.log.Info("game started", "player", s.Name)
	s.StartLevel(1)
}

// StartLevel discards any current attempt and starts level n. Levels
// outside 1..MaxLevel start level 1.
func (s *Session) StartLevel(n int) {
	s.Level = level.Normalize(n)
	opts := s.opts
	opts.Level = s.Level
	opts.Logger = s.log.With("player", s.Name)
	s.Run = NewRun(opts)
	s.Screen = ScreenPlaying
}

// Retry restarts the current level from scratch.
func (s *Session) Retry() {
	s.StartLevel(s.Level)
}

// Next starts the following level, or level 1 after the last one.
func (s *Session) Next() {
	if s.Level >= level.MaxLevel {
		s.StartLevel(1)
		return
	}
	s.StartLevel(s.Level + 1)
}

// Menu abandons the current attempt and returns to the menu.
func (s *Session) Menu() {
	if s.Run != nil {
		s.Run.Active = false
	}
	s.Run = nil
	s.Screen = ScreenMenu
}

// Update advances the current attempt by one frame and switches to the
// outcome screen once it is resolved.
func (s *Session) Update() {
	if s.Screen != ScreenPlaying || s.Run == nil {
		return
	}
	s.Run.Frame()
	if !s.Run.Resolved() {
		return
	}
	switch s.Run.Outcome() {
	case level.Victory:
		s.Screen = ScreenVictory
	case level.Defeat:
		s.Screen = ScreenDefeat
	}
}

// Events drains the events of the current attempt.
func (s *Session) Events() []Event {
	if s.Run == nil {
		return nil
	}
	return s.Run.DrainEvents()
}

// Status reports the current display values.
func (s *Session) Status() Status {
	st := Status{
		Screen:     s.Screen,
		Name:       s.Name,
		Level:      s.Level,
		Difficulty: s.opts.Table.Config(s.Level).Difficulty,
		Outcome:    level.InProgress,
	}
	if s.Run != nil {
		st.Score = s.Run.Score
		st.Lives = s.Run.Lives.Remaining
		st.Outcome = s.Run.Outcome()
	}
	return st
}
