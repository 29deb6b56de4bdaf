package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/tomz197/galaxyblaster/internal/config"
	"github.com/tomz197/galaxyblaster/internal/level"
	"github.com/tomz197/galaxyblaster/internal/loop"
	"github.com/tomz197/galaxyblaster/internal/loop/client"
	"github.com/tomz197/galaxyblaster/internal/profile"
	"golang.org/x/term"
)

func main() {
	seed := flag.Int64("seed", int64(config.GetEnvInt("GALAXY_SEED", 0)), "random seed for hostiles (0 picks one)")
	policy := flag.String("policy", config.GetEnv("GALAXY_POLICY", "quota"), "level rules: quota or classic")
	mute := flag.Bool("mute", config.GetEnv("GALAXY_MUTE", "") != "", "disable sound")
	name := flag.String("name", "", "player name (overrides the saved profile)")
	profilePath := flag.String("profile", config.GetEnv("GALAXY_PROFILE", ""), "profile file (default: user config dir)")
	logPath := flag.String("log", config.GetEnv("GALAXY_LOG", ""), "write logs to this file")
	flag.Parse()

	table, err := level.ParseTable(*policy)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	// The terminal belongs to the game, so logs only go to a file
	logOut := io.Discard
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	logger := log.NewWithOptions(logOut, log.Options{ReportTimestamp: true, Level: log.DebugLevel})

	opts := loop.Options{
		Client: client.ClientOptions{
			Username: *name,
			Table:    table,
			Seed:     *seed,
			Logger:   logger,
		},
		Sound: !*mute,
	}
	if *name == "" {
		if store := openProfile(*profilePath, logger); store != nil {
			opts.Client.Names = store
		}
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	reader := bufio.NewReader(os.Stdin)
	if err := loop.Run(reader, os.Stdout, opts); err != nil {
		_ = term.Restore(fd, oldState)
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

// openProfile returns the profile store, or nil when no location is usable.
func openProfile(path string, logger *log.Logger) *profile.Store {
	if path == "" {
		p, err := profile.DefaultPath()
		if err != nil {
			logger.Warn("profile disabled", "err", err)
			return nil
		}
		path = p
	}
	return profile.NewStore(path)
}
