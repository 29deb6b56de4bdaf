package game

import (
	"math/rand"
	"testing"

	"github.com/tomz197/galaxyblaster/internal/level"
)

func newTestSession(table level.Table) *Session {
	return NewSession(Options{Table: table, Rand: rand.New(rand.NewSource(3))})
}

// killBoss sets up a one-hit boss of the given wave with a projectile in it.
func killBoss(r *Run, wave int) {
	b := bossAt(r, wave, 640, 300)
	b.HP = 1
	shootAt(r, 640, 300)
}

func TestLevelOneQuotaNeedsMeteorAfterBoss(t *testing.T) {
	r := newTestRun(t, 1, level.Standard)
	r.Progress.MeteorsDestroyed = 34
	killBoss(r, 0)
	r.Frame()

	if r.Progress.BossesDestroyed != 1 || r.Outcome() != level.InProgress || !r.Active {
		t.Fatalf("34 meteors and the boss must not complete the quota: %+v", r.Progress)
	}

	meteorAt(r, 300, 200)
	shootAt(r, 300, 205)
	r.Frame()
	if r.Outcome() != level.Victory || !r.Resolved() || r.Active {
		t.Fatalf("35th meteor should win immediately: outcome=%v resolved=%v", r.Outcome(), r.Resolved())
	}
	if r.Score != 1 {
		t.Fatalf("score = %d, want 1", r.Score)
	}
	if countKind(r.DrainEvents(), EventVictory) != 1 {
		t.Fatalf("expected one victory event")
	}
}

func TestLevelOneClassicWinsOnBossAfterDelay(t *testing.T) {
	r := newTestRun(t, 1, level.Classic)
	r.Progress.MeteorsDestroyed = 34
	killBoss(r, 0)
	r.Frame()

	if r.Outcome() != level.Victory {
		t.Fatalf("classic rules win on the boss, got %v", r.Outcome())
	}
	if r.Active || r.Resolved() {
		t.Fatalf("victory should be pending: active=%v resolved=%v", r.Active, r.Resolved())
	}

	explosions := len(r.Explosions)
	for i := 1; i < CompletionDelay; i++ {
		r.Frame()
		if r.Resolved() {
			t.Fatalf("resolved after %d frames, want %d", i, CompletionDelay)
		}
	}
	if len(r.Explosions) != explosions || r.Explosions[0].Alpha != 1 {
		t.Fatalf("no step may run while completion is pending")
	}
	r.Frame()
	if !r.Resolved() {
		t.Fatalf("not resolved after %d frames", CompletionDelay)
	}
	if countKind(r.DrainEvents(), EventVictory) != 1 {
		t.Fatalf("expected one victory event")
	}
}

func TestLevelOneQuotaBossLastIsDeferred(t *testing.T) {
	r := newTestRun(t, 1, level.Standard)
	r.Progress.MeteorsDestroyed = 35
	killBoss(r, 0)
	r.Frame()
	if r.Outcome() != level.Victory || r.Resolved() {
		t.Fatalf("boss-completed victory should be deferred")
	}
	for i := 0; i < CompletionDelay; i++ {
		r.Frame()
	}
	if !r.Resolved() {
		t.Fatalf("deferred victory never resolved")
	}
}

func TestLevelTwoBossWaves(t *testing.T) {
	r := newTestRun(t, 2, level.Standard)

	r.Progress.MeteorsDestroyed = 27
	r.spawn()
	if !r.Progress.BossActive || r.Hostiles[0].Final {
		t.Fatalf("first wave should be an intermediate boss")
	}
	r.Hostiles = nil
	r.Progress.RecordBoss()

	r.spawn()
	if r.Progress.BossActive || len(r.Hostiles) != 1 || r.Hostiles[0].Boss {
		t.Fatalf("between thresholds only regular hostiles spawn")
	}
	r.Hostiles = nil

	r.Progress.MeteorsDestroyed = 59
	r.spawn()
	if len(r.Hostiles) != 1 || !r.Hostiles[0].Final {
		t.Fatalf("threshold 54 should bring the final boss")
	}
	r.Hostiles = nil
	r.Progress.BossActive = false

	meteorAt(r, 300, 200)
	shootAt(r, 300, 205)
	r.Frame()
	if r.Outcome() != level.InProgress {
		t.Fatalf("level 2 needs both bosses destroyed")
	}
	killBoss(r, 1)
	r.Frame()
	if r.Outcome() != level.Victory {
		t.Fatalf("60 meteors and 2 bosses should complete level 2, got %+v", r.Progress)
	}
}

func TestSessionStartGame(t *testing.T) {
	s := newTestSession(level.Standard)
	if s.Screen != ScreenMenu || s.Run != nil {
		t.Fatalf("new session should be on the menu")
	}
	s.StartGame("   ")
	st := s.Status()
	if st.Name != DefaultName || st.Level != 1 || st.Screen != ScreenPlaying {
		t.Fatalf("status = %+v", st)
	}
	if st.Lives != DefaultLives || st.Score != 0 || st.Difficulty != "easy" || st.Outcome != level.InProgress {
		t.Fatalf("status = %+v", st)
	}
	s.StartGame("  Ada ")
	if s.Name != "Ada" {
		t.Fatalf("name = %q, want trimmed", s.Name)
	}
}

func TestSessionStartLevelWraps(t *testing.T) {
	s := newTestSession(level.Standard)
	for _, n := range []int{0, -1, 4, 99} {
		s.StartLevel(n)
		if s.Level != 1 || s.Run.Level != 1 {
			t.Errorf("StartLevel(%d) played level %d", n, s.Level)
		}
	}
	s.StartLevel(3)
	if s.Status().Difficulty != "hard" {
		t.Fatalf("level 3 difficulty = %q", s.Status().Difficulty)
	}
}

func TestSessionRetryIsIdempotent(t *testing.T) {
	s := newTestSession(level.Standard)
	s.StartLevel(2)
	s.Run.Score = 17
	s.Run.Lives.Remaining = 1
	s.Run.Progress.MeteorsDestroyed = 40
	s.Run.Fire()

	s.Retry()
	first := s.Status()
	s.Retry()
	second := s.Status()

	if first != second {
		t.Fatalf("retry twice differs: %+v vs %+v", first, second)
	}
	r := s.Run
	if r.Level != 2 || r.Score != 0 || r.Lives.Remaining != DefaultLives || r.Lives.Invulnerable {
		t.Fatalf("retry should start a fresh attempt: %+v", first)
	}
	if r.Progress.MeteorsDestroyed != 0 || r.Progress.BossesDestroyed != 0 || r.Progress.BossActive {
		t.Fatalf("progress not reset: %+v", r.Progress)
	}
	if len(r.Projectiles) != 0 || len(r.Hostiles) != 0 || len(r.Explosions) != 0 {
		t.Fatalf("entities survived retry")
	}
	for i, spawned := range r.Progress.BossSpawned {
		if spawned {
			t.Fatalf("threshold %d still marked spawned", i)
		}
	}
}

func TestSessionNextAndRetry(t *testing.T) {
	tests := []struct {
		name  string
		from  int
		move  func(*Session)
		level int
	}{
		{"next from 1", 1, (*Session).Next, 2},
		{"next from 2", 2, (*Session).Next, 3},
		{"next after last", 3, (*Session).Next, 1},
		{"retry mid game", 2, (*Session).Retry, 2},
		{"retry last level", 3, (*Session).Retry, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(level.Standard)
			s.StartLevel(tt.from)
			tt.move(s)
			if s.Level != tt.level || s.Screen != ScreenPlaying {
				t.Fatalf("level = %d screen = %v, want %d playing", s.Level, s.Screen, tt.level)
			}
		})
	}
}

func TestSessionMenu(t *testing.T) {
	s := newTestSession(level.Standard)
	s.StartGame("Ada")
	r := s.Run
	s.Menu()
	if s.Screen != ScreenMenu || s.Run != nil || r.Active {
		t.Fatalf("menu should discard the run")
	}
	s.Update()
	if s.Screen != ScreenMenu {
		t.Fatalf("update on the menu changed screen")
	}
	if s.Events() != nil {
		t.Fatalf("no events without a run")
	}
}

func TestSessionDefeatScreen(t *testing.T) {
	s := newTestSession(level.Standard)
	s.StartGame("Ada")
	s.Run.Lives.Remaining = 1
	meteorAt(s.Run, 640, 600)
	s.Update()
	if s.Screen != ScreenDefeat || s.Status().Outcome != level.Defeat || s.Status().Lives != 0 {
		t.Fatalf("status = %+v", s.Status())
	}
}

func TestSessionVictoryScreenAfterDelay(t *testing.T) {
	s := newTestSession(level.Classic)
	s.StartGame("Ada")
	s.Run.Progress.MeteorsDestroyed = 34
	killBoss(s.Run, 0)
	s.Update()
	if s.Screen != ScreenPlaying {
		t.Fatalf("victory screen shown before the delay")
	}
	for i := 0; i < CompletionDelay; i++ {
		s.Update()
	}
	if s.Screen != ScreenVictory {
		t.Fatalf("screen = %v, want victory", s.Screen)
	}
	if countKind(s.Events(), EventVictory) != 1 {
		t.Fatalf("expected a victory event")
	}
}
