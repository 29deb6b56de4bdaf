package client

import (
	"fmt"
	"strings"
	"time"

	"github.com/tomz197/galaxyblaster/internal/draw"
	"github.com/tomz197/galaxyblaster/internal/game"
	"github.com/tomz197/galaxyblaster/internal/level"
	"github.com/tomz197/galaxyblaster/internal/loop/config"
	"github.com/tomz197/galaxyblaster/internal/object"
)

// bossBarWidth is the width in cells of the boss health bar.
const bossBarWidth = 20

// drawFrame draws the current frame.
func (c *Client) drawFrame() error {
	// On screen or overlay transitions, do a full terminal clear
	// so UI elements from the previous screen don't persist.
	screen := c.state.Session.Screen
	if screen != c.state.prevScreen || c.state.isInactive != c.state.wasInactive ||
		c.state.shuttingDown != c.state.prevShuttingDown {
		c.chunkWriter.WriteString("\033[H\033[2J")
		c.canvas.ForceRedraw()
		c.state.prevScreen = screen
		c.state.wasInactive = c.state.isInactive
		c.state.prevShuttingDown = c.state.shuttingDown
	}

	c.canvas.Clear()

	if run := c.state.Session.Run; run != nil && !c.state.shuttingDown {
		if err := c.drawRun(run); err != nil {
			return err
		}
	}

	// Render canvas to terminal
	c.canvas.Render(c.chunkWriter)

	// Draw border when terminal exceeds max render resolution
	c.canvas.RenderBorder(c.chunkWriter)

	c.drawUI()

	return c.chunkWriter.Flush()
}

// drawRun draws every entity of the attempt plus the hit flash.
func (c *Client) drawRun(run *game.Run) error {
	c.state.Camera = object.Camera{}
	if shake := run.Effects.Shake; shake > 0 {
		c.state.Camera.X = (c.shake.Float64()*2 - 1) * shake
		c.state.Camera.Y = (c.shake.Float64()*2 - 1) * shake
	}

	ctx := object.DrawContext{
		Canvas: c.canvas,
		Camera: c.state.Camera,
		View:   c.state.View,
	}

	for _, h := range run.Hostiles {
		if err := h.Draw(ctx); err != nil {
			return err
		}
	}
	for _, e := range run.Explosions {
		if err := e.Draw(ctx); err != nil {
			return err
		}
	}
	for _, p := range run.Projectiles {
		if err := p.Draw(ctx); err != nil {
			return err
		}
	}

	// Hide the ship on alternate blocks of ticks while protected
	lives := run.Lives
	if !lives.Invulnerable || object.ShouldRenderBlink(lives.Timer, config.ShipBlinkPeriod) {
		if err := run.Ship.Draw(ctx); err != nil {
			return err
		}
	}

	if run.Effects.Flash > 0 {
		c.canvas.Dither(run.Effects.Flash * 0.5)
	}
	return nil
}

// drawUI draws the text overlay for the current screen.
func (c *Client) drawUI() {
	termWidth := c.canvas.TerminalWidth()
	termHeight := c.canvas.TerminalHeight()
	centerX := termWidth / 2
	centerY := termHeight / 2

	if c.state.shuttingDown {
		c.drawShutdownScreen(centerX, centerY)
		return
	}

	if c.state.isInactive {
		c.drawInactivityScreen(centerX, centerY)
		return
	}

	switch c.state.Session.Screen {
	case game.ScreenMenu:
		c.drawMenuScreen(centerX, centerY)
	case game.ScreenPlaying:
		c.drawPlayingHUD(termWidth, termHeight)
	case game.ScreenVictory:
		c.drawPlayingHUD(termWidth, termHeight)
		c.drawVictoryScreen(centerX, centerY)
	case game.ScreenDefeat:
		c.drawPlayingHUD(termWidth, termHeight)
		c.drawDefeatScreen(centerX, centerY)
	}
}

// writeText writes s at the given cell and marks the cells dirty so the
// canvas repaints them once the text is gone.
func (c *Client) writeText(col, row int, s string) {
	if row < 1 || row > c.canvas.TerminalHeight() {
		return
	}
	col = max(1, col)
	c.chunkWriter.WriteAt(col, row, s)
	c.canvas.MarkTextDirty(col, row, len([]rune(s)))
}

// writeCentered writes s centered on centerX.
func (c *Client) writeCentered(centerX, row int, s string) {
	c.writeText(centerX-len([]rune(s))/2, row, s)
}

// drawInactivityScreen draws the inactivity warning screen.
func (c *Client) drawInactivityScreen(centerX, centerY int) {
	c.writeCentered(centerX, centerY-2, "INACTIVITY WARNING")

	msg := fmt.Sprintf(
		"You have been inactive for too long. You will be disconnected in %d seconds.",
		int(config.InactivityDisconnectUser-time.Since(c.lastInput).Seconds()),
	)
	c.writeCentered(centerX, centerY, msg)
	c.writeCentered(centerX, centerY+2, "Press any key to continue")
}

// drawMenuScreen draws the title, name entry and level picker.
func (c *Client) drawMenuScreen(centerX, centerY int) {
	// ASCII art title (figlet "small" font)
	titleArt := []string{
		`  ___   _   _      _   __  ____   __`,
		` / __| /_\ | |    /_\  \ \/ /\ \ / /`,
		`| (_ |/ _ \| |__ / _ \  >  <  \ V / `,
		` \___/_/ \_\____/_/ \_\/_/\_\  |_|  `,
		` ___ _      _   ___ _____ ___ ___   `,
		`| _ ) |    /_\ / __|_   _| __| _ \  `,
		`| _ \ |__ / _ \\__ \ | | | _||   /  `,
		`|___/____/_/ \_\___/ |_| |___|_|_\  `,
	}

	titleWidth := 0
	for _, line := range titleArt {
		titleWidth = max(titleWidth, len(line))
	}

	titleStartY := centerY - 9
	for i, line := range titleArt {
		c.writeText(centerX-titleWidth/2, titleStartY+i, line)
	}

	rowY := titleStartY + len(titleArt) + 1
	table := c.state.Session.Table()

	name := string(c.state.NameBuf)
	cursor := " "
	if time.Now().UnixMilli()/500%2 == 0 {
		cursor = "_"
	}
	nameLine := fmt.Sprintf("Name: %-*s", config.MaxUsernameLength+1, name+cursor)
	c.writeCentered(centerX, rowY, nameLine)

	cfg := table.Config(c.state.MenuPick)
	levelLine := fmt.Sprintf("Level: < %d %-6s >   rules: %s", c.state.MenuPick, cfg.Difficulty, table.Name)
	c.writeCentered(centerX, rowY+2, levelLine)

	controls := []string{
		"Mouse / A D / < >  Move",
		"Click / SPACE      Shoot",
		"TAB                Level",
		"ESC                Quit ",
	}
	for i, line := range controls {
		c.writeCentered(centerX, rowY+4+i, line)
	}

	if time.Now().UnixMilli()/600%2 == 0 {
		c.writeCentered(centerX, rowY+5+len(controls), ">>  Press ENTER to Start  <<")
	} else {
		c.writeCentered(centerX, rowY+5+len(controls), strings.Repeat(" ", 28))
	}
}

// drawPlayingHUD draws the in-game HUD.
// Text fields use fixed-width formatting so shrinking values don't leave
// residual characters on screen.
func (c *Client) drawPlayingHUD(termWidth, termHeight int) {
	run := c.state.Session.Run
	if run == nil {
		return
	}
	st := c.state.Session.Status()
	p := run.Progress

	c.writeText(2, 1, fmt.Sprintf("Score: %-8d", st.Score))

	livesText := fmt.Sprintf("Lives: %-3d", st.Lives)
	c.writeText(termWidth-len(livesText)-1, 1, livesText)

	levelText := fmt.Sprintf("Level %d (%s)", st.Level, st.Difficulty)
	c.writeCentered(termWidth/2, 1, levelText)

	progressText := fmt.Sprintf("Meteors: %3d/%-3d  Bosses: %d/%d",
		p.MeteorsDestroyed, p.Config.Meteors, p.BossesDestroyed, p.Config.Bosses)
	c.writeText(2, termHeight, progressText)

	if c.lobby != nil {
		playersText := fmt.Sprintf("Players: %-4d", c.lobby.Players())
		c.writeText(termWidth-len(playersText)-1, termHeight, playersText)
	}

	c.drawBossBar(termWidth, run)
}

// drawBossBar draws the health of the first active boss below the HUD.
func (c *Client) drawBossBar(termWidth int, run *game.Run) {
	var boss *object.Hostile
	for _, h := range run.Hostiles {
		if h.Boss && !h.Destroyed {
			boss = h
			break
		}
	}
	if boss == nil {
		return
	}

	label := "BOSS "
	if boss.Final {
		label = "FINAL "
	}
	frac := float64(boss.HP) / float64(object.BossHP)
	var bar strings.Builder
	for i := 0; i < bossBarWidth; i++ {
		// Partially filled cell uses a lighter shade
		bar.WriteRune(draw.ShadeLevel(frac*bossBarWidth - float64(i)))
	}

	text := label + "[" + bar.String() + "]"
	col := termWidth/2 - len([]rune(text))/2
	c.chunkWriter.WriteAt(max(1, col), 2, draw.ColorMagenta+text+draw.ColorReset)
	c.canvas.MarkTextDirty(max(1, col), 2, len([]rune(text)))
}

// drawVictoryScreen draws the level complete overlay.
func (c *Client) drawVictoryScreen(centerX, centerY int) {
	st := c.state.Session.Status()
	titleArt := []string{
		` _    _____   _____ _       ___ _    ___   _   ___ ___ ___  `,
		`| |  | __\ \ / / __| |     / __| |  | __| /_\ | _ \ __|   \ `,
		`| |__| _| \ V /| _|| |__  | (__| |__| _| / _ \|   / _|| |) |`,
		`|____|___| \_/ |___|____|  \___|____|___/_/ \_\_|_\___|___/ `,
	}
	c.drawOverlay(centerX, centerY, draw.ColorGreen, titleArt, []string{
		fmt.Sprintf("Well done, %s!", st.Name),
		fmt.Sprintf("Score: %d", st.Score),
	}, nextPrompt(st.Level))
}

// nextPrompt is the continue hint after winning the given level.
func nextPrompt(n int) string {
	if n >= level.MaxLevel {
		return ">>  ENTER: Play Again   M: Menu   Q: Quit  <<"
	}
	return ">>  ENTER: Next Level   M: Menu   Q: Quit  <<"
}

// drawDefeatScreen draws the game over overlay.
func (c *Client) drawDefeatScreen(centerX, centerY int) {
	st := c.state.Session.Status()
	titleArt := []string{
		`   ___   _   __  __ ___    _____   _____ ___  `,
		`  / __| /_\ |  \/  | __|  / _ \ \ / / __| _ \ `,
		` | (_ |/ _ \| |\/| | _|  | (_) \ V /| _||   / `,
		`  \___/_/ \_\_|  |_|___|  \___/ \_/ |___|_|_\ `,
	}
	c.drawOverlay(centerX, centerY, draw.ColorRed, titleArt, []string{
		fmt.Sprintf("Level %d (%s)", st.Level, st.Difficulty),
		fmt.Sprintf("Score: %d", st.Score),
	}, ">>  R: Retry   M: Menu   Q: Quit  <<")
}

// drawOverlay draws a colored title with a few lines and a blinking prompt.
func (c *Client) drawOverlay(centerX, centerY int, color string, titleArt, lines []string, prompt string) {
	titleWidth := 0
	for _, line := range titleArt {
		titleWidth = max(titleWidth, len(line))
	}

	titleStartY := centerY - 5
	col := max(1, centerX-titleWidth/2)
	for i, line := range titleArt {
		c.chunkWriter.WriteAt(col, titleStartY+i, color+line+draw.ColorReset)
		c.canvas.MarkTextDirty(col, titleStartY+i, len(line))
	}

	y := titleStartY + len(titleArt) + 1
	for i, line := range lines {
		c.writeCentered(centerX, y+i, line)
	}

	promptY := y + len(lines) + 1
	if time.Now().UnixMilli()/600%2 == 0 {
		c.writeCentered(centerX, promptY, prompt)
	} else {
		c.writeCentered(centerX, promptY, strings.Repeat(" ", len(prompt)))
	}
}

// drawShutdownScreen draws the server shutdown notification screen.
func (c *Client) drawShutdownScreen(centerX, centerY int) {
	c.writeCentered(centerX, centerY-3, "SERVER SHUTTING DOWN")
	c.writeCentered(centerX, centerY-1, "The server is restarting for maintenance.")
	c.writeCentered(centerX, centerY, "Please reconnect in a moment.")

	remaining := int(c.state.shutdownTimer) + 1
	c.writeCentered(centerX, centerY+2, fmt.Sprintf("Disconnecting in %2d seconds...", remaining))
	c.writeCentered(centerX, centerY+4, "Press Q to disconnect now")
}
