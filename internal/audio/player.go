package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/tomz197/galaxyblaster/internal/game"
)

// maxVoices caps simultaneous cues; rapid fire would otherwise pile up.
const maxVoices = 8

// Player plays event cues through the system speaker. The zero value and
// a Player whose Init failed are silent.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	log         *log.Logger
}

// NewPlayer creates a silent player; call Init to open the speaker.
func NewPlayer(logger *log.Logger) *Player {
	return &Player{mixer: &beep.Mixer{}, log: logger}
}

// Init opens the speaker. Audio is optional, so callers usually log the
// error and keep the silent player.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/20)); err != nil {
		return fmt.Errorf("open speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Handle plays the cue for each event.
func (p *Player) Handle(events []game.Event) {
	if len(events) == 0 {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()
	for _, e := range events {
		if p.mixer.Len() >= maxVoices {
			if p.log != nil {
				p.log.Debug("cue dropped", "event", e.Kind)
			}
			continue
		}
		if s := Cue(e.Kind); s != nil {
			p.mixer.Add(s)
		}
	}
}

// Close stops all cues and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}
