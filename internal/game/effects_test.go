package game

import "testing"

func TestEffectsUpdate(t *testing.T) {
	var e Effects
	e.Kick(ShipHitShake, ShipHitFlash)
	e.Kick(BossHitShake, BossHitFlash)
	if e.Shake != ShipHitShake || e.Flash != ShipHitFlash {
		t.Fatalf("Kick must keep the larger cue: %+v", e)
	}

	if f := e.Update(); f != 1 {
		t.Fatalf("factor = %v, want 1", f)
	}
	if e.Shake != ShipHitShake-ShakeDecay {
		t.Fatalf("shake = %v", e.Shake)
	}

	for i := 0; i < 100; i++ {
		e.Update()
	}
	if e.Shake != 0 || e.Flash != 0 {
		t.Fatalf("cues should floor at zero: %+v", e)
	}

	e.SlowDown(2)
	e.SlowDown(1)
	if e.Update() != SlowFactor || e.Update() != SlowFactor || e.Update() != 1 {
		t.Fatalf("slow motion should last exactly two ticks")
	}
}

func TestLivesHit(t *testing.T) {
	l := NewLives(2, 3)
	if !l.Hit() || l.Remaining != 1 || !l.Invulnerable || l.Timer != 3 {
		t.Fatalf("first hit: %+v", l)
	}
	if l.Hit() || l.Remaining != 1 {
		t.Fatalf("hit while protected must be ignored: %+v", l)
	}
	l.Tick()
	l.Tick()
	if !l.Invulnerable {
		t.Fatalf("protection ended early")
	}
	l.Tick()
	if l.Invulnerable || l.Timer != 0 {
		t.Fatalf("protection should be over: %+v", l)
	}
	if !l.Hit() || !l.Exhausted() {
		t.Fatalf("second hit should exhaust lives: %+v", l)
	}
}
