package server

import (
	"testing"
	"time"
)

func TestRegisterUnregister(t *testing.T) {
	s := NewServer(nil)
	a := s.RegisterClient("ada")
	b := s.RegisterClient("bob")
	if a.ID == b.ID {
		t.Fatalf("client IDs must be unique")
	}
	if s.Players() != 2 {
		t.Fatalf("Players = %d, want 2", s.Players())
	}
	s.UnregisterClient(a.ID)
	s.UnregisterClient(a.ID)
	s.UnregisterClient(99)
	if s.Players() != 1 {
		t.Fatalf("Players = %d, want 1", s.Players())
	}
}

func TestShutdownNotifiesAndWaits(t *testing.T) {
	s := NewServer(nil)
	h := s.RegisterClient("ada")

	go func() {
		ev := <-h.EventsCh
		if ev.Type == EventServerShutdown {
			s.UnregisterClient(h.ID)
		}
	}()

	start := time.Now()
	s.Shutdown(5 * time.Second)
	if s.Players() != 0 {
		t.Fatalf("client still registered after shutdown")
	}
	if time.Since(start) >= 5*time.Second {
		t.Fatalf("Shutdown waited for the full timeout")
	}
}

func TestShutdownTimesOut(t *testing.T) {
	s := NewServer(nil)
	s.RegisterClient("idle")
	start := time.Now()
	s.Shutdown(300 * time.Millisecond)
	if time.Since(start) < 300*time.Millisecond {
		t.Fatalf("Shutdown returned before the timeout")
	}
}
