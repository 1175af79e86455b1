package rng

import "testing"

func TestHashStringDeterministic(t *testing.T) {
	inputs := []string{"", "a", "42:dungeon-layout", "0,0:template"}
	for _, in := range inputs {
		first := HashString(in)
		second := HashString(in)
		if first != second {
			t.Errorf("HashString(%q) = %d then %d, want stable", in, first, second)
		}
	}
}

func TestHashStringKnownValues(t *testing.T) {
	// FNV-1a 32-bit reference values.
	if got := HashString(""); got != 2166136261 {
		t.Errorf("HashString(\"\") = %d, want 2166136261", got)
	}
	if got := HashString("a"); got != 3826002220 {
		t.Errorf("HashString(\"a\") = %d, want 3826002220", got)
	}
}

func TestHashStringOrderSensitive(t *testing.T) {
	if HashString("ab") == HashString("ba") {
		t.Error("HashString should be order-sensitive")
	}
}

func TestRngDeterministic(t *testing.T) {
	a := New(1234)
	b := New(1234)
	for i := 0; i < 100; i++ {
		av := a.Float64()
		bv := b.Float64()
		if av != bv {
			t.Fatalf("sequence diverged at call %d: %v vs %v", i, av, bv)
		}
		if av < 0 || av >= 1 {
			t.Fatalf("value %v outside [0,1) at call %d", av, i)
		}
	}
}

func TestRngKnownSequence(t *testing.T) {
	// state = 1664525*0 + 1013904223 after the first step.
	r := New(0)
	if got, want := r.Float64(), float64(1013904223)/4294967296.0; got != want {
		t.Errorf("first value = %v, want %v", got, want)
	}
}

func TestRngSeedsDiffer(t *testing.T) {
	a := New(1)
	b := New(2)
	same := true
	for i := 0; i < 10; i++ {
		if a.Float64() != b.Float64() {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical 10-value prefix")
	}
}

func TestSubSeedSalting(t *testing.T) {
	layout := SubSeed(42, "dungeon-layout")
	floors := SubSeed(42, "dungeon-floor-count")
	if layout == floors {
		t.Error("different labels should derive different seeds")
	}
	if layout != SubSeed(42, "dungeon-layout") {
		t.Error("SubSeed should be deterministic")
	}
	if SubSeed(42, "dungeon-layout") == SubSeed(43, "dungeon-layout") {
		t.Error("different run seeds should derive different sub-seeds")
	}
}

func TestIntnRange(t *testing.T) {
	r := New(777)
	for i := 0; i < 1000; i++ {
		v := r.Intn(4)
		if v < 0 || v >= 4 {
			t.Fatalf("Intn(4) = %d, want in [0,4)", v)
		}
	}
}
