package path

import (
	"reflect"
	"testing"

	"github.com/simplehero/dungeon/internal/grid"
)

func openGrid(width, height int) func(grid.Coord) bool {
	return func(c grid.Coord) bool {
		return c.InBounds(width, height)
	}
}

func TestFindSameStartAndGoal(t *testing.T) {
	start := grid.Coord{X: 3, Y: 3}
	got := Find(start, start, openGrid(10, 10))
	if !reflect.DeepEqual(got, []grid.Coord{start}) {
		t.Errorf("Find(a, a) = %v, want [%+v]", got, start)
	}
}

func TestFindUnreachable(t *testing.T) {
	got := Find(grid.Coord{}, grid.Coord{X: 5, Y: 5}, func(grid.Coord) bool { return false })
	if len(got) != 0 {
		t.Errorf("Find with alwaysFalse = %v, want empty", got)
	}
}

func TestFindOptimalOnOpenGrid(t *testing.T) {
	tests := []struct {
		start, goal grid.Coord
	}{
		{grid.Coord{X: 0, Y: 0}, grid.Coord{X: 4, Y: 0}},
		{grid.Coord{X: 0, Y: 0}, grid.Coord{X: 0, Y: 7}},
		{grid.Coord{X: 1, Y: 1}, grid.Coord{X: 6, Y: 4}},
		{grid.Coord{X: 9, Y: 9}, grid.Coord{X: 0, Y: 0}},
	}
	for _, tt := range tests {
		got := Find(tt.start, tt.goal, openGrid(10, 10))
		want := 1 + tt.start.Manhattan(tt.goal)
		if len(got) != want {
			t.Errorf("path %v -> %v has %d tiles, want %d", tt.start, tt.goal, len(got), want)
		}
		if got[0] != tt.start || got[len(got)-1] != tt.goal {
			t.Errorf("path endpoints = %v..%v, want %v..%v", got[0], got[len(got)-1], tt.start, tt.goal)
		}
	}
}

func TestFindStepsAreAdjacent(t *testing.T) {
	got := Find(grid.Coord{X: 0, Y: 0}, grid.Coord{X: 5, Y: 5}, openGrid(6, 6))
	for i := 1; i < len(got); i++ {
		if got[i-1].Manhattan(got[i]) != 1 {
			t.Fatalf("non-adjacent step %v -> %v", got[i-1], got[i])
		}
	}
}

func TestFindRoutesAroundWall(t *testing.T) {
	// Vertical wall at x=2 with a gap at y=4.
	canWalk := func(c grid.Coord) bool {
		if !c.InBounds(6, 6) {
			return false
		}
		if c.X == 2 && c.Y != 4 {
			return false
		}
		return true
	}

	got := Find(grid.Coord{X: 0, Y: 0}, grid.Coord{X: 5, Y: 0}, canWalk)
	if len(got) == 0 {
		t.Fatal("expected a path through the gap")
	}
	crossed := false
	for _, c := range got {
		if c.X == 2 {
			if c.Y != 4 {
				t.Fatalf("path crosses wall at %+v", c)
			}
			crossed = true
		}
	}
	if !crossed {
		t.Error("path never crossed the wall column")
	}
	// Detour length: down to the gap, across, back up.
	if want := 1 + 5 + 8; len(got) != want {
		t.Errorf("detour path has %d tiles, want %d", len(got), want)
	}
}

func TestFindDeterministic(t *testing.T) {
	a := Find(grid.Coord{X: 0, Y: 0}, grid.Coord{X: 4, Y: 4}, openGrid(8, 8))
	b := Find(grid.Coord{X: 0, Y: 0}, grid.Coord{X: 4, Y: 4}, openGrid(8, 8))
	if !reflect.DeepEqual(a, b) {
		t.Errorf("identical queries returned different paths: %v vs %v", a, b)
	}
}

func TestFindGoalBlocked(t *testing.T) {
	blockedGoal := grid.Coord{X: 3, Y: 3}
	canWalk := func(c grid.Coord) bool {
		return c.InBounds(6, 6) && c != blockedGoal
	}
	if got := Find(grid.Coord{X: 0, Y: 0}, blockedGoal, canWalk); len(got) != 0 {
		t.Errorf("path to blocked goal = %v, want empty", got)
	}
}
