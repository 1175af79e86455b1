// Package dungeon builds and tracks the dungeon: a connected path of rooms
// across a seeded random floor count, with discovery and current-room state.
package dungeon

import (
	"fmt"

	"github.com/simplehero/dungeon/internal/grid"
	"github.com/simplehero/dungeon/internal/rng"
	"github.com/simplehero/dungeon/internal/room"
)

const (
	floorCountSalt = "dungeon-floor-count"
	layoutSalt     = "dungeon-layout"
)

// floorCountWeights is the discrete distribution the total floor count is
// rolled from.
var floorCountWeights = []struct {
	floors int
	weight float64
}{
	{3, 10},
	{4, 20},
	{5, 40},
	{6, 20},
	{7, 10},
}

// Dungeon holds the full generated dungeon. All rooms are pre-generated up
// front so the floor count is known and every transition target exists.
type Dungeon struct {
	Seed              uint32
	TotalFloors       int
	FloorByRoomID     map[string]int
	Rooms             map[string]*room.Room
	DiscoveredRoomIDs map[string]bool
	CurrentRoomID     string
}

// Generate creates the dungeon for a seed: rolls the floor count, walks out
// a connected path of room coordinates, generates each room from the
// catalog, and prunes exits that lead nowhere.
func Generate(catalog *room.Catalog, seed uint32) (*Dungeon, error) {
	totalFloors := RollFloorCount(seed)

	coords, err := layoutCoords(seed, totalFloors)
	if err != nil {
		return nil, err
	}

	rooms := make(map[string]*room.Room, len(coords))
	floorByRoomID := make(map[string]int, len(coords))
	for i, coord := range coords {
		r, err := room.Generate(catalog, seed, coord)
		if err != nil {
			return nil, fmt.Errorf("failed to generate room %s: %w", coord.Key(), err)
		}
		rooms[r.ID] = r
		floorByRoomID[r.ID] = i + 1
	}

	pruneDisconnectedExits(rooms)

	originID := coords[0].Key()
	return &Dungeon{
		Seed:              seed,
		TotalFloors:       totalFloors,
		FloorByRoomID:     floorByRoomID,
		Rooms:             rooms,
		DiscoveredRoomIDs: map[string]bool{originID: true},
		CurrentRoomID:     originID,
	}, nil
}

// RollFloorCount rolls the total floor count for a seed from the weighted
// distribution. Cumulative selection; ties favor the earlier bucket, and
// floating rounding falls back to the last bucket.
func RollFloorCount(seed uint32) int {
	r := rng.New(rng.SubSeed(seed, floorCountSalt))

	total := 0.0
	for _, bucket := range floorCountWeights {
		total += bucket.weight
	}

	roll := r.Float64() * total
	acc := 0.0
	for _, bucket := range floorCountWeights {
		acc += bucket.weight
		if roll <= acc {
			return bucket.floors
		}
	}
	return floorCountWeights[len(floorCountWeights)-1].floors
}

// layoutCoords walks out a connected path of room coordinates starting at
// the origin, one fresh random neighbor at a time.
func layoutCoords(seed uint32, totalFloors int) ([]grid.Coord, error) {
	r := rng.New(rng.SubSeed(seed, layoutSalt))

	coords := []grid.Coord{{X: 0, Y: 0}}
	used := map[string]bool{coords[0].Key(): true}

	for len(coords) < totalFloors {
		tail := coords[len(coords)-1]
		options := make([]grid.Coord, 0, 4)
		for _, dir := range grid.Directions {
			next := dir.Step(tail)
			if !used[next.Key()] {
				options = append(options, next)
			}
		}

		if len(options) == 0 {
			return nil, fmt.Errorf("failed to generate dungeon layout: no available room coordinate after %d floors", len(coords))
		}

		selected := options[r.Intn(len(options))]
		coords = append(coords, selected)
		used[selected.Key()] = true
	}

	return coords, nil
}

// pruneDisconnectedExits removes every exit whose target coordinate has no
// generated room, returning the tile to plain floor. After pruning, every
// remaining exit is traversable.
func pruneDisconnectedExits(rooms map[string]*room.Room) {
	for _, r := range rooms {
		for _, dir := range grid.Directions {
			if _, ok := r.Exits[dir]; !ok {
				continue
			}
			target := dir.Step(r.Coord)
			if _, ok := rooms[target.Key()]; !ok {
				r.PruneExit(dir)
			}
		}
	}
}

// Room returns the room with the given id.
func (d *Dungeon) Room(id string) (*room.Room, bool) {
	r, ok := d.Rooms[id]
	return r, ok
}

// RoomAt returns the room at a room-lattice coordinate.
func (d *Dungeon) RoomAt(coord grid.Coord) (*room.Room, bool) {
	return d.Room(coord.Key())
}

// CurrentRoom returns the room the party is in. The current id always
// references a generated room.
func (d *Dungeon) CurrentRoom() (*room.Room, error) {
	r, ok := d.Rooms[d.CurrentRoomID]
	if !ok {
		return nil, fmt.Errorf("current room %s missing from dungeon", d.CurrentRoomID)
	}
	return r, nil
}

// Discover marks a room id as discovered.
func (d *Dungeon) Discover(id string) {
	d.DiscoveredRoomIDs[id] = true
}

// FloorNumber returns the 1-based floor number for a room id, defaulting to
// 1 for unknown rooms.
func (d *Dungeon) FloorNumber(id string) int {
	if floor, ok := d.FloorByRoomID[id]; ok {
		return floor
	}
	return 1
}
