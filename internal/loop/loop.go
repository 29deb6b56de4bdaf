// Package loop runs a local game in the current terminal.
package loop

import (
	"bufio"
	"io"

	"github.com/charmbracelet/log"
	"github.com/tomz197/galaxyblaster/internal/audio"
	"github.com/tomz197/galaxyblaster/internal/loop/client"
)

// Options configures a local game.
type Options struct {
	Client client.ClientOptions
	Sound  bool // Play event cues through the speaker
}

// Run plays until the player quits. Sound is optional: when the speaker
// cannot be opened the game runs silent.
func Run(r *bufio.Reader, w io.Writer, opts Options) error {
	logger := opts.Client.Logger
	if logger == nil {
		logger = log.New(io.Discard)
		opts.Client.Logger = logger
	}

	if opts.Sound && opts.Client.Cues == nil {
		player := audio.NewPlayer(logger)
		if err := player.Init(); err != nil {
			logger.Warn("sound disabled", "err", err)
		} else {
			defer player.Close()
			opts.Client.Cues = player
		}
	}

	c := client.NewClient(r, w, opts.Client)
	logger.Info("local game started", "rules", c.Session().Table().Name)
	return c.Run()
}
