package sfx

import (
	"encoding/binary"
	"math"
	"testing"
	"time"
)

func TestBangLengthAndRange(t *testing.T) {
	samples := Bang(44100, time.Second, 1)
	if len(samples) != 44100 {
		t.Fatalf("got %d samples, want 44100", len(samples))
	}
	for i, s := range samples {
		if s[0] < -1 || s[0] > 1 || s[1] < -1 || s[1] > 1 {
			t.Fatalf("sample %d out of range: %v", i, s)
		}
	}
	if last := samples[len(samples)-1]; last[0] != 0 || last[1] != 0 {
		t.Errorf("clip ends on %v, want silence", last)
	}
}

func TestBangDecays(t *testing.T) {
	samples := Bang(44100, time.Second, 2)
	energy := func(from, to int) float64 {
		var e float64
		for _, s := range samples[from:to] {
			e += s[0] * s[0]
		}
		return e
	}
	head := energy(0, 4410)
	tail := energy(len(samples)-4410, len(samples))
	if tail >= head/10 {
		t.Fatalf("tail energy %f not well below head energy %f", tail, head)
	}
}

func TestBangEmpty(t *testing.T) {
	if got := Bang(44100, 0, 1); got != nil {
		t.Fatalf("zero duration gave %d samples", len(got))
	}
}

func TestPCM16(t *testing.T) {
	buf := PCM16([][2]float64{{1, -1}, {0.5, 0}}, 1)
	if len(buf) != 8 {
		t.Fatalf("len = %d, want 8", len(buf))
	}
	if l := int16(binary.LittleEndian.Uint16(buf[0:])); l != math.MaxInt16 {
		t.Errorf("left = %d", l)
	}
	if r := int16(binary.LittleEndian.Uint16(buf[2:])); r != -math.MaxInt16 {
		t.Errorf("right = %d", r)
	}
	if l := int16(binary.LittleEndian.Uint16(buf[4:])); l != math.MaxInt16/2 {
		t.Errorf("half = %d", l)
	}
	vol := 0.3
	quiet := PCM16([][2]float64{{1, 1}}, vol)
	if l := int16(binary.LittleEndian.Uint16(quiet[0:])); l != int16(vol*math.MaxInt16) {
		t.Errorf("volume scaled sample = %d", l)
	}
}
