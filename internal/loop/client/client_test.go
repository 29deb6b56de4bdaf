package client

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/tomz197/galaxyblaster/internal/game"
	"github.com/tomz197/galaxyblaster/internal/input"
	"github.com/tomz197/galaxyblaster/internal/object"
	"github.com/tomz197/galaxyblaster/internal/profile"
)

type fakeNames struct {
	stored profile.Profile
	saves  int
}

func (f *fakeNames) Load() (profile.Profile, error) {
	if f.stored.Name == "" {
		return profile.Profile{}, profile.ErrNotFound
	}
	return f.stored, nil
}

func (f *fakeNames) Save(p profile.Profile) error {
	f.stored = p
	f.saves++
	return nil
}

func newTestClient(t *testing.T, names NameStore) (*Client, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	c := NewClient(bufio.NewReader(strings.NewReader("")), out, ClientOptions{
		TermSizeFunc: func() (int, int, error) { return 100, 40, nil },
		Seed:         1,
		Names:        names,
	})
	return c, out
}

func TestClampTermSize(t *testing.T) {
	tests := []struct {
		name                   string
		w, h                   int
		rw, rh, offCol, offRow int
	}{
		{"fits", 80, 24, 80, 24, 0, 0},
		{"too large", 200, 60, 160, 50, 20, 5},
		{"empty", 0, 0, 1, 1, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rw, rh, oc, or := clampTermSize(tt.w, tt.h)
			if rw != tt.rw || rh != tt.rh || oc != tt.offCol || or != tt.offRow {
				t.Fatalf("got %d,%d offset %d,%d", rw, rh, oc, or)
			}
		})
	}
}

func TestMenuStartsPickedLevel(t *testing.T) {
	names := &fakeNames{}
	c, _ := newTestClient(t, names)
	c.state.NameBuf = nil

	c.state.Input = input.Input{Text: []rune("Adx"), Erase: 0}
	c.updateMenuState()
	c.state.Input = input.Input{Erase: 1, Text: []rune("a"), Tab: true}
	c.updateMenuState()
	if string(c.state.NameBuf) != "Ada" || c.state.MenuPick != 2 {
		t.Fatalf("name = %q pick = %d", string(c.state.NameBuf), c.state.MenuPick)
	}

	c.state.Input = input.Input{Enter: true}
	c.updateMenuState()
	s := c.Session()
	if s.Screen != game.ScreenPlaying || s.Level != 2 || s.Name != "Ada" {
		t.Fatalf("session = %+v", s.Status())
	}
	if names.saves != 1 || names.stored.Name != "Ada" {
		t.Fatalf("profile not saved: %+v", names.stored)
	}
}

func TestMenuNameLimit(t *testing.T) {
	c, _ := newTestClient(t, nil)
	c.state.NameBuf = nil
	c.state.Input = input.Input{Text: []rune(strings.Repeat("x", 40))}
	c.updateMenuState()
	if len(c.state.NameBuf) != 16 {
		t.Fatalf("name length = %d, want 16", len(c.state.NameBuf))
	}
}

func TestStoredNameWins(t *testing.T) {
	c, _ := newTestClient(t, &fakeNames{stored: profile.Profile{Name: "Grace"}})
	if string(c.state.NameBuf) != "Grace" {
		t.Fatalf("name = %q, want the stored one", string(c.state.NameBuf))
	}
}

func TestPlayingEscapeReturnsToMenu(t *testing.T) {
	c, _ := newTestClient(t, nil)
	c.Session().StartGame("Ada")

	c.state.Input = input.Input{Escape: true, Pressed: []byte{0x1b}}
	c.updatePlayingState(1)
	if c.Session().Screen != game.ScreenMenu {
		t.Fatalf("screen = %v, want menu", c.Session().Screen)
	}
}

func TestPlayingStepsAndFires(t *testing.T) {
	c, _ := newTestClient(t, nil)
	c.Session().StartGame("Ada")
	run := c.Session().Run
	x := run.Ship.X

	c.state.Input = input.Input{Right: true, Fire: 1}
	c.updatePlayingState(3)
	if run.Frames() != 3 {
		t.Fatalf("frames = %d, want 3", run.Frames())
	}
	if run.Ship.X <= x {
		t.Fatalf("ship did not move right: %v -> %v", x, run.Ship.X)
	}
	if len(run.Projectiles) != 1 {
		t.Fatalf("projectiles = %d, want 1", len(run.Projectiles))
	}
}

func TestOutcomeScreens(t *testing.T) {
	c, _ := newTestClient(t, nil)
	s := c.Session()

	s.StartLevel(1)
	s.Screen = game.ScreenVictory
	c.state.Input = input.Input{Text: []rune("N")}
	c.updateVictoryState()
	if s.Screen != game.ScreenPlaying || s.Level != 2 {
		t.Fatalf("next: level %d screen %v", s.Level, s.Screen)
	}

	s.Screen = game.ScreenDefeat
	c.state.Input = input.Input{Text: []rune("r")}
	c.updateDefeatState()
	if s.Screen != game.ScreenPlaying || s.Level != 2 {
		t.Fatalf("retry: level %d screen %v", s.Level, s.Screen)
	}

	s.Screen = game.ScreenDefeat
	c.state.Input = input.Input{Text: []rune("m")}
	c.updateDefeatState()
	if s.Screen != game.ScreenMenu {
		t.Fatalf("screen = %v, want menu", s.Screen)
	}
}

func TestDefeatOnLastLevelRetriesIt(t *testing.T) {
	c, _ := newTestClient(t, nil)
	s := c.Session()
	s.StartLevel(3)
	run := s.Run
	run.Lives.Remaining = 1
	run.Hostiles = append(run.Hostiles, &object.Hostile{X: run.Ship.X, Y: run.Ship.Y, Size: 64, Wave: -1})
	s.Update()
	if s.Screen != game.ScreenDefeat {
		t.Fatalf("screen = %v, want defeat", s.Screen)
	}

	c.state.Input = input.Input{Text: []rune("r")}
	c.updateDefeatState()
	if s.Screen != game.ScreenPlaying || s.Level != 3 {
		t.Fatalf("retry after losing level 3: level %d screen %v", s.Level, s.Screen)
	}
	if s.Run.Lives.Remaining != game.DefaultLives || s.Run.Score != 0 {
		t.Fatalf("retry should start a fresh attempt: %+v", s.Status())
	}
}

func TestDrawFrameWritesHUD(t *testing.T) {
	c, out := newTestClient(t, nil)
	if err := c.drawFrame(); err != nil {
		t.Fatalf("drawFrame: %v", err)
	}
	if !strings.Contains(out.String(), "Name: Hero") {
		t.Fatalf("menu not drawn")
	}

	c.Session().StartGame("Ada")
	out.Reset()
	if err := c.drawFrame(); err != nil {
		t.Fatalf("drawFrame: %v", err)
	}
	if !strings.Contains(out.String(), "Score: 0") || !strings.Contains(out.String(), "Level 1 (easy)") {
		t.Fatalf("HUD not drawn")
	}
}
