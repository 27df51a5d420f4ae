package fireworks

import (
	"math"
	"testing"
)

func TestSparkLifeDecreasesByOne(t *testing.T) {
	tuning := DefaultTuning()
	rng := NewRand(3)
	s := NewSpark(Vec2{100, 100}, Palette[2], 3, rng.Angle(), 60, 2, true)
	for s.Life > 0 {
		before := s.Life
		s.Update(&tuning, rng)
		if s.Life != before-1 {
			t.Fatalf("life went %d -> %d", before, s.Life)
		}
		if s.Alpha < 0 || s.Alpha > 1 {
			t.Fatalf("alpha %f out of [0,1]", s.Alpha)
		}
		if len(s.Trail) > tuning.SparkTrailLength {
			t.Fatalf("trail length %d exceeds %d", len(s.Trail), tuning.SparkTrailLength)
		}
	}
	if !s.Expired(&tuning, 1e9) {
		t.Fatal("spark with no life left should be expired")
	}
}

func TestSparkAlphaFollowsLife(t *testing.T) {
	tuning := DefaultTuning()
	rng := NewRand(1)
	s := NewSpark(Vec2{}, Palette[0], 0, 0, 100, 1, false)
	for i := 0; i < 25; i++ {
		s.Update(&tuning, rng)
	}
	if want := 75.0 / 100; math.Abs(s.Alpha-want) > 1e-12 {
		t.Fatalf("alpha = %f, want %f", s.Alpha, want)
	}
}

func TestSparkFlickerOnlyDims(t *testing.T) {
	tuning := DefaultTuning()
	tuning.SparkFlickerChance = 1
	rng := NewRand(11)
	s := NewSpark(Vec2{}, Palette[0], 0, 0, 100, 1, true)
	for i := 0; i < 50; i++ {
		s.Update(&tuning, rng)
		base := float64(s.Life) / float64(s.MaxLife)
		if s.Alpha > base || s.Alpha < base*0.6 {
			t.Fatalf("tick %d: flickered alpha %f outside [%f, %f]", i, s.Alpha, base*0.6, base)
		}
	}
}

func TestSparkTrailBudget(t *testing.T) {
	tuning := DefaultTuning()
	rng := NewRand(5)
	short := NewSpark(Vec2{}, Palette[0], 1, 0, 40, 1, false)
	long := NewSpark(Vec2{}, Palette[0], 1, 0, 130, 1, false)
	for i := 0; i < 30; i++ {
		short.Update(&tuning, rng)
		long.Update(&tuning, rng)
	}
	if len(short.Trail) != tuning.SparkTrailLength {
		t.Errorf("short-lived spark trail = %d, want %d", len(short.Trail), tuning.SparkTrailLength)
	}
	for i, p := range short.Trail {
		if p.Budget != 4 {
			t.Errorf("short-lived trail point %d budget = %d, want 4", i, p.Budget)
		}
	}
	for i, p := range long.Trail {
		if p.Budget != 13 {
			t.Errorf("long-lived trail point %d budget = %d, want 13", i, p.Budget)
		}
	}
	if len(long.Trail) != tuning.SparkTrailLength {
		t.Errorf("long-lived spark trail = %d, want %d", len(long.Trail), tuning.SparkTrailLength)
	}
}

func TestSparkExpiry(t *testing.T) {
	tuning := DefaultTuning()
	tests := []struct {
		name  string
		spark Spark
		want  bool
	}{
		{"alive", Spark{Pos: Vec2{10, 10}, Life: 5, MaxLife: 10, Alpha: 0.5}, false},
		{"no life", Spark{Pos: Vec2{10, 10}, Life: 0, MaxLife: 10, Alpha: 0.5}, true},
		{"faded", Spark{Pos: Vec2{10, 10}, Life: 5, MaxLife: 10, Alpha: 0.02}, true},
		{"fell off", Spark{Pos: Vec2{10, 651}, Life: 5, MaxLife: 10, Alpha: 0.5}, true},
		{"just below", Spark{Pos: Vec2{10, 649}, Life: 5, MaxLife: 10, Alpha: 0.5}, false},
		{"nan", Spark{Pos: Vec2{math.NaN(), 10}, Life: 5, MaxLife: 10, Alpha: 0.5}, true},
		{"inf velocity", Spark{Pos: Vec2{10, 10}, Vel: Vec2{math.Inf(1), 0}, Life: 5, MaxLife: 10, Alpha: 0.5}, true},
	}
	for _, tt := range tests {
		if got := tt.spark.Expired(&tuning, 600); got != tt.want {
			t.Errorf("%s: Expired = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestSparkDrawIsAdditive(t *testing.T) {
	tuning := DefaultTuning()
	rng := NewRand(9)
	s := NewSpark(Vec2{50, 50}, Palette[4], 2, 1, 80, 2, true)
	for i := 0; i < 5; i++ {
		s.Update(&tuning, rng)
	}
	rec := newRecorder()
	s.Draw(rec)
	if rec.circles != len(s.Trail)+1 {
		t.Fatalf("drew %d circles, want %d", rec.circles, len(s.Trail)+1)
	}
	if rec.byBlend[BlendSourceOver] != 0 {
		t.Fatal("spark drew with source-over")
	}
}

func TestSparkTrailFadesTowardHead(t *testing.T) {
	tuning := DefaultTuning()
	rng := NewRand(11)
	s := NewSpark(Vec2{50, 50}, Palette[1], 2, 1, 100, 2, false)
	for i := 0; i < 8; i++ {
		s.Update(&tuning, rng)
	}
	rec := newRecorder()
	s.Draw(rec)
	trail := rec.circleAlphas[:len(s.Trail)]
	for i := 1; i < len(trail); i++ {
		if trail[i] > trail[i-1] {
			t.Fatalf("trail alpha rises from %d to %d at point %d", trail[i-1], trail[i], i)
		}
	}
	if trail[0] <= trail[len(trail)-1] {
		t.Errorf("oldest point alpha %d not above newest %d", trail[0], trail[len(trail)-1])
	}
}

func TestZeroRecorderIsUsable(t *testing.T) {
	var rec recorder
	NewSpark(Vec2{}, Palette[0], 1, 0, 50, 1, false).Draw(&rec)
	if rec.byBlend[BlendLighter] != 1 {
		t.Errorf("lighter draws = %d, want 1", rec.byBlend[BlendLighter])
	}
}
