package fireworks

import (
	"testing"
	"time"
)

func newTestSpawner(seed int64) (*Spawner, *World, *Scheduler, *Tuning) {
	tuning := DefaultTuning()
	world := NewWorld(800, 600)
	sched := NewScheduler()
	return NewSpawner(world, NewRand(seed), &tuning, sched), world, sched, &tuning
}

func TestAmbientRocketBounds(t *testing.T) {
	s, w, _, _ := newTestSpawner(3)
	for i := 0; i < 200; i++ {
		r := s.Ambient()
		if r.Target.X < 60 || r.Target.X >= 740 {
			t.Fatalf("target x %v outside [60, 740)", r.Target.X)
		}
		if r.Target.Y < 60 || r.Target.Y >= 300 {
			t.Fatalf("target y %v outside [60, 300)", r.Target.Y)
		}
		if r.Pos.Y != 610 || r.Pos.X < 40 || r.Pos.X >= 760 {
			t.Fatalf("start %+v not just below the bottom edge", r.Pos)
		}
		if r.Central {
			t.Fatal("ambient rocket marked central")
		}
	}
	if len(w.Rockets) != 200 {
		t.Errorf("rockets = %d, want 200", len(w.Rockets))
	}
}

func TestAmbientBatchRespectsCap(t *testing.T) {
	s, w, _, tuning := newTestSpawner(4)
	tuning.AmbientCap = 2
	total := 0
	for i := 0; i < 100; i++ {
		n := s.AmbientBatch()
		if n < 1 || n > 2 {
			t.Fatalf("batch of %d with cap 2", n)
		}
		total += n
	}
	if len(w.Rockets) != total {
		t.Errorf("rockets = %d, want %d", len(w.Rockets), total)
	}
}

func TestCentralRocketAim(t *testing.T) {
	s, _, _, _ := newTestSpawner(5)
	r := s.Central()
	if !r.Central {
		t.Fatal("central rocket not marked central")
	}
	if r.Target != (Vec2{X: 400, Y: 260}) {
		t.Errorf("target = %+v, want (400, 260)", r.Target)
	}
	if r.Pos.Y != 620 || r.Pos.X < 280 || r.Pos.X >= 520 {
		t.Errorf("start = %+v, want near bottom center", r.Pos)
	}
}

func TestPeriodicPolicyKeepsFiring(t *testing.T) {
	s, w, sched, tuning := newTestSpawner(6)
	tuning.PeriodicChance = 1
	s.StartPeriodic()

	if n := sched.Run(tuning.PeriodicMin - time.Millisecond); n != 0 {
		t.Fatalf("policy fired %d times before its shortest interval", n)
	}
	// every interval is at least PeriodicMin, so ten seconds fires at most 11 times
	fired := 0
	for now := time.Duration(0); now <= 10*time.Second; now += 16 * time.Millisecond {
		fired += sched.Run(now)
	}
	if fired < 5 || fired > 11 {
		t.Errorf("fired %d times in 10s, want between 5 and 11", fired)
	}
	if len(w.Rockets) != fired {
		t.Errorf("rockets = %d, want one per firing (%d)", len(w.Rockets), fired)
	}
	if sched.Pending() != 1 {
		t.Errorf("pending = %d, want the rearmed policy", sched.Pending())
	}
}
