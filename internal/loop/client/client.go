// Package client runs one player's game in a terminal: input, simulation
// pacing, and drawing the session to the half-block canvas.
package client

import (
	"bufio"
	"errors"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/galaxyblaster/internal/draw"
	"github.com/tomz197/galaxyblaster/internal/game"
	"github.com/tomz197/galaxyblaster/internal/input"
	"github.com/tomz197/galaxyblaster/internal/level"
	"github.com/tomz197/galaxyblaster/internal/loop/config"
	"github.com/tomz197/galaxyblaster/internal/loop/server"
	"github.com/tomz197/galaxyblaster/internal/profile"
)

// CueSink receives the gameplay events of every frame, e.g. to play sounds.
type CueSink interface {
	Handle(events []game.Event)
}

// NameStore remembers the display name between sessions.
type NameStore interface {
	Load() (profile.Profile, error)
	Save(p profile.Profile) error
}

// Client handles rendering and input for a single connection.
type Client struct {
	lobby        server.Lobby
	handle       *server.ClientHandle
	state        *ClientState
	canvas       *draw.Canvas
	chunkWriter  *draw.ChunkWriter // Accumulates UI text for chunked output
	writer       io.Writer
	inputStream  *input.Stream
	clock        *FrameClock
	lastInput    time.Time
	termSizeFunc draw.TermSizeFunc
	cues         CueSink
	names        NameStore
	shake        *rand.Rand
	log          *log.Logger
}

// ClientOptions configures the client.
type ClientOptions struct {
	TermSizeFunc draw.TermSizeFunc
	Username     string      // Initial name; a stored profile name wins
	Table        level.Table // Rule set; zero value selects level.Standard
	Seed         int64       // Hostile randomness; 0 picks one from the clock
	Lobby        server.Lobby
	Cues         CueSink
	Names        NameStore
	Logger       *log.Logger
}

// NewClient creates a client reading keys from r and drawing to w.
func NewClient(r *bufio.Reader, w io.Writer, opts ClientOptions) *Client {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	name := profile.NormalizeName(opts.Username)
	if opts.Names != nil {
		p, err := opts.Names.Load()
		switch {
		case err == nil && p.Name != "":
			name = p.Name
		case err != nil && !errors.Is(err, profile.ErrNotFound):
			logger.Warn("could not load profile", "err", err)
		}
	}
	if name == "" {
		name = game.DefaultName
	}

	session := game.NewSession(game.Options{
		Table:             opts.Table,
		Rand:              rand.New(rand.NewSource(seed)),
		Lives:             config.InitialLives,
		InvulnerableTicks: config.InvulnerabilityTicks,
		Logger:            logger,
	})
	state := NewClientState(session, name)
	state.termSizeFunc = termSizeFunc

	// Create canvas with clamped dimensions for max render resolution
	termWidth, termHeight, _ := draw.TerminalSizeRawWith(termSizeFunc)
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)
	canvas := draw.NewScaledCanvas(renderWidth, renderHeight, config.ViewWidth, config.ViewHeight)
	canvas.SetOffset(offsetCol, offsetRow)
	chunkWriter := draw.NewChunkWriter(w, offsetCol, offsetRow)

	c := &Client{
		lobby:        opts.Lobby,
		state:        state,
		canvas:       canvas,
		chunkWriter:  chunkWriter,
		writer:       w,
		inputStream:  input.StartStream(r),
		clock:        NewFrameClock(config.TickTime, config.MaxCatchUpTicks),
		lastInput:    time.Now(),
		termSizeFunc: termSizeFunc,
		cues:         opts.Cues,
		names:        opts.Names,
		shake:        rand.New(rand.NewSource(seed + 1)),
		log:          logger,
	}
	if c.lobby != nil {
		c.handle = c.lobby.RegisterClient(name)
	}
	return c
}

// Session exposes the game session driven by this client.
func (c *Client) Session() *game.Session {
	return c.state.Session
}

// Run starts the client loop. Blocks until the player quits, goes idle
// for too long or the server shuts down.
func (c *Client) Run() error {
	draw.HideCursor(c.writer)
	draw.EnableMouse(c.writer)
	defer draw.ShowCursor(c.writer)
	defer draw.DisableMouse(c.writer)
	draw.ClearScreen(c.writer)

	lastTime := time.Now()

	for c.state.Running {
		frameStart := time.Now()
		c.state.delta = frameStart.Sub(lastTime)
		lastTime = frameStart

		// Process input
		c.processInput()

		// Check for server events
		c.processServerEvents()

		// Handle screen resize
		c.updateScreen()

		steps := c.clock.Advance(c.state.delta)

		// Handle game state
		switch {
		case c.state.shuttingDown:
			c.updateShutdownState()
		case c.state.Session.Screen == game.ScreenMenu:
			c.updateMenuState()
		case c.state.Session.Screen == game.ScreenPlaying:
			c.updatePlayingState(steps)
		case c.state.Session.Screen == game.ScreenVictory:
			c.updateVictoryState()
		case c.state.Session.Screen == game.ScreenDefeat:
			c.updateDefeatState()
		}

		// Draw frame
		if err := c.drawFrame(); err != nil {
			return err
		}

		// Frame timing
		elapsed := time.Since(frameStart)
		if elapsed < config.TickTime {
			time.Sleep(config.TickTime - elapsed)
		}
	}

	if c.lobby != nil && c.handle != nil {
		c.lobby.UnregisterClient(c.handle.ID)
	}

	draw.ClearScreen(c.writer)
	return nil
}

// processInput reads input and tracks inactivity.
func (c *Client) processInput() {
	c.state.Input = input.ReadInput(c.inputStream)

	if len(c.state.Input.Pressed) > 0 {
		c.lastInput = time.Now()
		c.state.isInactive = false
	} else if time.Since(c.lastInput).Seconds() > config.InactivityDisconnectUser {
		c.log.Info("disconnecting idle player", "player", c.state.Session.Name)
		c.state.Running = false
	} else if time.Since(c.lastInput).Seconds() > config.InactivityWarnUser {
		c.state.isInactive = true
	}

	if c.state.Input.Interrupt {
		c.state.Running = false
	}
	// On the menu q is part of a name
	if c.state.Input.Quit && (c.state.shuttingDown || c.state.Session.Screen != game.ScreenMenu) {
		c.state.Running = false
	}
}

// processServerEvents handles events from the server.
func (c *Client) processServerEvents() {
	if c.handle == nil {
		return
	}
	for {
		select {
		case event, ok := <-c.handle.EventsCh:
			if !ok {
				c.state.Running = false
				return
			}
			if event.Type == server.EventServerShutdown && !c.state.shuttingDown {
				c.state.shuttingDown = true
				c.state.shutdownTimer = config.ShutdownDisplaySeconds
			}
		default:
			return
		}
	}
}

// updateScreen handles terminal resize, clamping to max render resolution.
// On actual size changes, clears the terminal to remove residual pixels
// outside the new canvas area (e.g. old borders or offset content).
func (c *Client) updateScreen() {
	termWidth, termHeight, err := draw.TerminalSizeRawWith(c.termSizeFunc)
	if err != nil {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)

	if renderWidth != c.canvas.TerminalWidth() || renderHeight != c.canvas.TerminalHeight() ||
		offsetCol != c.canvas.OffsetCol() || offsetRow != c.canvas.OffsetRow() {
		draw.ClearScreen(c.writer)
		c.canvas.Resize(renderWidth, renderHeight)
		c.canvas.ForceRedraw()
	}

	c.canvas.SetOffset(offsetCol, offsetRow)
	c.chunkWriter.SetOffset(offsetCol, offsetRow)
}

// clampTermSize clamps terminal dimensions to the max render resolution and computes
// the centering offset for the render area.
func clampTermSize(termWidth, termHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = max(1, min(termWidth, config.MaxTermWidth))
	renderHeight = max(1, min(termHeight, config.MaxTermHeight))
	offsetCol = max(0, (termWidth-renderWidth)/2)
	offsetRow = max(0, (termHeight-renderHeight)/2)
	return
}

// updateMenuState edits the name, picks a level and starts the game.
func (c *Client) updateMenuState() {
	in := c.state.Input
	buf := c.state.NameBuf
	for i := 0; i < in.Erase && len(buf) > 0; i++ {
		buf = buf[:len(buf)-1]
	}
	for _, r := range in.Text {
		if len(buf) >= config.MaxUsernameLength {
			break
		}
		buf = append(buf, r)
	}
	c.state.NameBuf = buf

	if in.Tab {
		c.state.MenuPick = c.state.MenuPick%level.MaxLevel + 1
	}
	if in.Escape && len(in.Pressed) == 1 {
		c.state.Running = false
		return
	}
	if in.Enter {
		c.startGame()
	}
}

// startGame starts the session at the level picked on the menu.
func (c *Client) startGame() {
	input.ResetKeyInput(c.inputStream)
	c.clock.Reset()

	s := c.state.Session
	s.StartGame(profile.NormalizeName(string(c.state.NameBuf)))
	if c.state.MenuPick != 1 {
		s.StartLevel(c.state.MenuPick)
	}
	c.state.NameBuf = []rune(s.Name)
	c.saveName(s.Name)
}

// saveName stores the name for the next session. Failures only cost
// convenience, so they are logged.
func (c *Client) saveName(name string) {
	if c.names == nil {
		return
	}
	if err := c.names.Save(profile.Profile{Name: name}); err != nil {
		c.log.Warn("could not save profile", "err", err)
	}
}

// updatePlayingState applies input and runs the simulation steps due.
func (c *Client) updatePlayingState(steps int) {
	in := c.state.Input
	s := c.state.Session
	run := s.Run

	if in.Escape && len(in.Pressed) == 1 {
		s.Menu()
		return
	}

	if in.PointerMoved {
		x, _ := c.canvas.TerminalToLogical(in.PointerCol-c.canvas.OffsetCol(), in.PointerRow-c.canvas.OffsetRow())
		run.MoveShip(x)
	}
	for i := 0; i < in.Fire; i++ {
		run.Fire()
	}

	for i := 0; i < steps && s.Screen == game.ScreenPlaying; i++ {
		switch {
		case in.Left && !in.Right:
			run.NudgeShip(-1)
		case in.Right && !in.Left:
			run.NudgeShip(1)
		}
		s.Update()
	}

	if c.cues != nil {
		c.cues.Handle(s.Events())
	} else {
		s.Events()
	}

	if s.Screen != game.ScreenPlaying {
		input.ResetKeyInput(c.inputStream)
	}
}

// updateVictoryState waits for the player to continue.
func (c *Client) updateVictoryState() {
	switch c.pressedLetter() {
	case 'n':
		c.resume((*game.Session).Next)
	case 'm':
		c.state.Session.Menu()
	default:
		if c.state.Input.Enter {
			c.resume((*game.Session).Next)
		}
	}
}

// updateDefeatState waits for the player to retry or leave.
func (c *Client) updateDefeatState() {
	switch c.pressedLetter() {
	case 'r':
		c.resume((*game.Session).Retry)
	case 'm':
		c.state.Session.Menu()
	}
}

// resume starts a new attempt through the given session transition.
func (c *Client) resume(move func(*game.Session)) {
	input.ResetKeyInput(c.inputStream)
	c.clock.Reset()
	move(c.state.Session)
}

// pressedLetter returns the first letter typed this frame, lowercased.
func (c *Client) pressedLetter() rune {
	for _, r := range c.state.Input.Text {
		if r >= 'A' && r <= 'Z' {
			return r + ('a' - 'A')
		}
		if r >= 'a' && r <= 'z' {
			return r
		}
	}
	return 0
}

// updateShutdownState handles the shutdown screen countdown.
func (c *Client) updateShutdownState() {
	c.state.shutdownTimer -= c.state.delta.Seconds()
	if c.state.shutdownTimer <= 0 {
		c.state.Running = false
	}
}
