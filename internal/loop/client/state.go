package client

import (
	"time"

	"github.com/tomz197/galaxyblaster/internal/draw"
	"github.com/tomz197/galaxyblaster/internal/game"
	"github.com/tomz197/galaxyblaster/internal/input"
	"github.com/tomz197/galaxyblaster/internal/loop/config"
	"github.com/tomz197/galaxyblaster/internal/object"
)

// ClientState holds per-connection state (input, session, camera, etc.).
// Each client has its own instance, managed by the Client.
type ClientState struct {
	Input    input.Input
	Session  *game.Session
	View     object.Screen // Logical playfield
	Camera   object.Camera // Shake offset for this frame
	NameBuf  []rune        // Name being typed on the menu
	MenuPick int           // Level highlighted on the menu (1-based)
	Running  bool          // Client loop running

	termSizeFunc  draw.TermSizeFunc // Function to get terminal size
	delta         time.Duration     // Frame delta time
	shuttingDown  bool              // Server asked clients to leave
	shutdownTimer float64           // Countdown before auto-disconnect on shutdown
	isInactive    bool              // Whether the client is in inactive warning state

	// Previous-frame values used to detect transitions that need a full clear
	prevScreen       game.Screen
	prevShuttingDown bool
	wasInactive      bool
}

// NewClientState creates a new initialized client state.
func NewClientState(session *game.Session, name string) *ClientState {
	return &ClientState{
		Session:  session,
		View:     object.NewScreen(config.ViewWidth, config.ViewHeight),
		NameBuf:  []rune(name),
		MenuPick: 1,
		Running:  true,
	}
}
