package game

import "github.com/tomz197/galaxyblaster/internal/level"

// CompletionDelay is how many frames a boss-defeat victory waits before it
// resolves (500 ms at 60 frames/s).
const CompletionDelay = 30

// completion is a terminal outcome waiting for its due frame.
type completion struct {
	due   uint64
	state level.State
}

// schedule arms a deferred completion. The run is already inactive.
func (r *Run) schedule(state level.State, delay int) {
	r.pending = &completion{due: r.frame + uint64(delay), state: state}
}

// fireDue resolves a pending completion once its frame has come.
func (r *Run) fireDue() {
	if r.pending == nil || r.frame < r.pending.due {
		return
	}
	state := r.pending.state
	r.pending = nil
	r.resolve(state)
}
