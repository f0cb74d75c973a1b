package words

import (
	"errors"
	"math/rand/v2"
	"testing"
)

// seqSource returns its values in order, then repeats the last one.
type seqSource struct {
	vals []int
	i    int
}

func (s *seqSource) IntN(n int) int {
	v := s.vals[len(s.vals)-1]
	if s.i < len(s.vals) {
		v = s.vals[s.i]
		s.i++
	}
	return v % n
}

func TestPickTarget_SkipsReserved(t *testing.T) {
	p := NewPool([]string{"*damn", "*hell", "quip"}, nil)

	// Draws land on the reserved entries first.
	src := &seqSource{vals: []int{0, 1, 0, 2}}
	got, err := p.PickTarget(4, src)
	if err != nil {
		t.Fatalf("PickTarget: %v", err)
	}
	if got != "quip" {
		t.Errorf("PickTarget = %q, expected quip", got)
	}
	if src.i != 4 {
		t.Errorf("PickTarget drew %d times, expected 4", src.i)
	}
}

func TestPickTarget_NeverReserved(t *testing.T) {
	p := NewPool([]string{"*damn", "quip", "*hell", "yoga"}, nil)
	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 500; i++ {
		got, err := p.PickTarget(4, rng)
		if err != nil {
			t.Fatalf("PickTarget: %v", err)
		}
		if got == "damn" || got == "hell" {
			t.Fatalf("PickTarget returned reserved %q", got)
		}
	}
}

func TestPickTarget_StuckSourceFallsBack(t *testing.T) {
	p := NewPool([]string{"*damn", "quip"}, nil)
	got, err := p.PickTarget(4, &seqSource{vals: []int{0}})
	if err != nil || got != "quip" {
		t.Errorf("PickTarget = %q, %v, expected quip", got, err)
	}
}

func TestPickTarget_NoTargets(t *testing.T) {
	p := NewPool([]string{"*damn", "apple"}, nil)
	for _, length := range []int{4, 6} {
		if _, err := p.PickTarget(length, CryptoSource); !errors.Is(err, ErrNoTargets) {
			t.Errorf("PickTarget(%d) = %v, expected ErrNoTargets", length, err)
		}
	}
}

func TestCryptoSource_InRange(t *testing.T) {
	for i := 0; i < 100; i++ {
		if v := CryptoSource.IntN(7); v < 0 || v >= 7 {
			t.Fatalf("IntN(7) = %d", v)
		}
	}
}
