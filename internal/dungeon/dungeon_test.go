package dungeon

import (
	"reflect"
	"testing"

	"github.com/simplehero/dungeon/internal/grid"
	"github.com/simplehero/dungeon/internal/room"
)

func TestGenerateBasics(t *testing.T) {
	d, err := Generate(room.DefaultCatalog(), 42)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if d.Seed != 42 {
		t.Errorf("Seed = %d, want 42", d.Seed)
	}
	if d.TotalFloors < 3 || d.TotalFloors > 7 {
		t.Errorf("TotalFloors = %d, want in [3,7]", d.TotalFloors)
	}
	if len(d.Rooms) != d.TotalFloors {
		t.Errorf("room count = %d, want %d", len(d.Rooms), d.TotalFloors)
	}
	if d.CurrentRoomID != "0,0" {
		t.Errorf("CurrentRoomID = %q, want \"0,0\"", d.CurrentRoomID)
	}
	if !d.DiscoveredRoomIDs["0,0"] {
		t.Error("origin room should start discovered")
	}
	if len(d.DiscoveredRoomIDs) != 1 {
		t.Errorf("discovered count = %d, want 1", len(d.DiscoveredRoomIDs))
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a, err := Generate(room.DefaultCatalog(), 1234)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	b, err := Generate(room.DefaultCatalog(), 1234)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if a.TotalFloors != b.TotalFloors {
		t.Fatalf("TotalFloors differ: %d vs %d", a.TotalFloors, b.TotalFloors)
	}
	if !reflect.DeepEqual(a.FloorByRoomID, b.FloorByRoomID) {
		t.Error("floor assignments differ between identical seeds")
	}
	for id, ra := range a.Rooms {
		rb, ok := b.Rooms[id]
		if !ok {
			t.Fatalf("room %s missing from second generation", id)
		}
		if !reflect.DeepEqual(ra.Tiles, rb.Tiles) || !reflect.DeepEqual(ra.Exits, rb.Exits) {
			t.Errorf("room %s differs between identical seeds", id)
		}
	}
}

func TestFloorNumbersSequential(t *testing.T) {
	d, err := Generate(room.DefaultCatalog(), 99)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	seen := make(map[int]bool)
	for id, floor := range d.FloorByRoomID {
		if floor < 1 || floor > d.TotalFloors {
			t.Errorf("room %s floor = %d, want in [1,%d]", id, floor, d.TotalFloors)
		}
		if seen[floor] {
			t.Errorf("floor %d assigned twice", floor)
		}
		seen[floor] = true
	}
	if d.FloorByRoomID["0,0"] != 1 {
		t.Errorf("origin floor = %d, want 1", d.FloorByRoomID["0,0"])
	}
}

// Post-pruning connectivity: every remaining exit must lead to a generated
// room whose opposite exit also remains.
func TestPrunedExitsConnect(t *testing.T) {
	for seed := uint32(0); seed < 50; seed++ {
		d, err := Generate(room.DefaultCatalog(), seed)
		if err != nil {
			t.Fatalf("seed %d: Generate failed: %v", seed, err)
		}
		for id, r := range d.Rooms {
			for _, dir := range grid.Directions {
				if _, ok := r.Exits[dir]; !ok {
					continue
				}
				neighbor, ok := d.RoomAt(dir.Step(r.Coord))
				if !ok {
					t.Errorf("seed %d: room %s has %s exit to missing room", seed, id, dir)
					continue
				}
				if _, ok := neighbor.Exits[dir.Opposite()]; !ok {
					t.Errorf("seed %d: room %s exit %s has no matching %s exit in %s",
						seed, id, dir, dir.Opposite(), neighbor.ID)
				}
			}
		}
	}
}

func TestLayoutIsConnectedPath(t *testing.T) {
	d, err := Generate(room.DefaultCatalog(), 7)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	// Consecutive floors must occupy adjacent room coordinates.
	byFloor := make(map[int]*room.Room)
	for id, floor := range d.FloorByRoomID {
		byFloor[floor] = d.Rooms[id]
	}
	for floor := 2; floor <= d.TotalFloors; floor++ {
		prev, cur := byFloor[floor-1], byFloor[floor]
		if prev == nil || cur == nil {
			t.Fatalf("missing room for floor %d or %d", floor-1, floor)
		}
		if prev.Coord.Manhattan(cur.Coord) != 1 {
			t.Errorf("floors %d and %d are not adjacent: %+v vs %+v",
				floor-1, floor, prev.Coord, cur.Coord)
		}
	}
}

func TestRollFloorCountDistribution(t *testing.T) {
	counts := make(map[int]int)
	const samples = 5000
	for seed := uint32(0); seed < samples; seed++ {
		floors := RollFloorCount(seed)
		if floors < 3 || floors > 7 {
			t.Fatalf("RollFloorCount(%d) = %d, want in [3,7]", seed, floors)
		}
		counts[floors]++
	}

	// 5 floors carries weight 40/100; expect it to dominate, and the 10%
	// tails to land loosely near their share.
	if counts[5] <= counts[4] || counts[5] <= counts[6] {
		t.Errorf("weight-40 bucket not dominant: %v", counts)
	}
	for _, floors := range []int{3, 7} {
		share := float64(counts[floors]) / samples
		if share < 0.05 || share > 0.20 {
			t.Errorf("floors=%d share = %.3f, want near 0.10", floors, share)
		}
	}
}

func TestRollFloorCountDeterministic(t *testing.T) {
	for _, seed := range []uint32{0, 1, 42, 4096} {
		if RollFloorCount(seed) != RollFloorCount(seed) {
			t.Errorf("RollFloorCount(%d) not stable", seed)
		}
	}
}

func TestCurrentRoom(t *testing.T) {
	d, err := Generate(room.DefaultCatalog(), 3)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	r, err := d.CurrentRoom()
	if err != nil {
		t.Fatalf("CurrentRoom failed: %v", err)
	}
	if r.ID != d.CurrentRoomID {
		t.Errorf("CurrentRoom id = %s, want %s", r.ID, d.CurrentRoomID)
	}

	d.CurrentRoomID = "999,999"
	if _, err := d.CurrentRoom(); err == nil {
		t.Error("CurrentRoom should fail for unknown id")
	}
}

func TestFloorNumberFallback(t *testing.T) {
	d, err := Generate(room.DefaultCatalog(), 3)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if got := d.FloorNumber("unknown"); got != 1 {
		t.Errorf("FloorNumber(unknown) = %d, want 1", got)
	}
}
