package party

import (
	"testing"

	"github.com/simplehero/dungeon/internal/grid"
)

func testStartTiles() []grid.Coord {
	return []grid.Coord{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 2}}
}

func TestNew(t *testing.T) {
	p, err := New("0,0", testStartTiles())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if len(p.Heroes) != Size {
		t.Fatalf("hero count = %d, want %d", len(p.Heroes), Size)
	}
	if p.ActiveHeroIndex != 0 {
		t.Errorf("ActiveHeroIndex = %d, want 0", p.ActiveHeroIndex)
	}

	letters := []string{"W", "R", "M"}
	for i, h := range p.Heroes {
		if h.ClassLetter != letters[i] {
			t.Errorf("hero %d letter = %q, want %q", i, h.ClassLetter, letters[i])
		}
		if h.RoomID != "0,0" {
			t.Errorf("hero %d room = %q, want 0,0", i, h.RoomID)
		}
		if h.Tile != testStartTiles()[i] {
			t.Errorf("hero %d tile = %+v, want %+v", i, h.Tile, testStartTiles()[i])
		}
		if h.HP != h.MaxHP {
			t.Errorf("hero %d HP = %d/%d, want full", i, h.HP, h.MaxHP)
		}
		if h.Facing != grid.South {
			t.Errorf("hero %d facing = %s, want S", i, h.Facing)
		}
	}
}

func TestNewTooFewTiles(t *testing.T) {
	if _, err := New("0,0", testStartTiles()[:2]); err == nil {
		t.Error("New with 2 tiles should fail")
	}
}

func TestSetActiveHero(t *testing.T) {
	p, err := New("0,0", testStartTiles())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if !p.SetActiveHero(2) {
		t.Error("SetActiveHero(2) should succeed")
	}
	if p.ActiveHero() != p.Heroes[2] {
		t.Error("ActiveHero should be hero 2")
	}

	// Out-of-range calls are no-ops.
	for _, index := range []int{-1, 3, 99} {
		if p.SetActiveHero(index) {
			t.Errorf("SetActiveHero(%d) should be rejected", index)
		}
		if p.ActiveHeroIndex != 2 {
			t.Errorf("ActiveHeroIndex changed to %d after rejected call", p.ActiveHeroIndex)
		}
	}
}

func TestHeroByID(t *testing.T) {
	p, err := New("0,0", testStartTiles())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	h, ok := p.HeroByID("hero-1")
	if !ok || h != p.Heroes[1] {
		t.Error("HeroByID(hero-1) should return the second hero")
	}
	if _, ok := p.HeroByID("hero-9"); ok {
		t.Error("HeroByID should fail for unknown id")
	}
}
