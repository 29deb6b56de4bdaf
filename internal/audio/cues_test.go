package audio

import (
	"testing"

	"github.com/tomz197/galaxyblaster/internal/game"
)

func drain(t *testing.T, kind game.EventKind) int {
	t.Helper()
	s := Cue(kind)
	if s == nil {
		t.Fatalf("no cue for %v", kind)
	}
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			if buf[i][0] < -1 || buf[i][0] > 1 {
				t.Fatalf("%v: sample %d out of range: %v", kind, total+i, buf[i][0])
			}
		}
		total += n
		if !ok {
			break
		}
		if total > int(SampleRate) {
			t.Fatalf("%v: cue longer than a second", kind)
		}
	}
	return total
}

func TestCueLengths(t *testing.T) {
	tests := []struct {
		kind game.EventKind
		ms   int
	}{
		{game.EventFire, 30},
		{game.EventMeteorDestroyed, 120},
		{game.EventBossHit, 60},
		{game.EventShipHit, 320},
		{game.EventVictory, 480},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			got := drain(t, tt.kind)
			want := int(SampleRate) * tt.ms / 1000
			if got < want-3 || got > want+3 {
				t.Fatalf("cue streamed %d samples, want about %d", got, want)
			}
		})
	}
}

func TestSilentKinds(t *testing.T) {
	if Cue(game.EventBossEscaped) != nil {
		t.Fatalf("boss escape should be silent")
	}
}

func TestUninitializedPlayerIsSilent(t *testing.T) {
	p := NewPlayer(nil)
	p.Handle([]game.Event{{Kind: game.EventFire}})
	if p.mixer.Len() != 0 {
		t.Fatalf("uninitialized player queued %d cues", p.mixer.Len())
	}
	p.Close()
}
