// Package game composes the dungeon and party into the movement and
// room-transition state machine. All mutation happens synchronously inside
// UpdateHoverPath, CommitMoveFromHover, Step, and SetActiveHeroIndex; the
// state is owned by the single loop that drives ticks.
package game

import (
	"fmt"

	"github.com/simplehero/dungeon/internal/dungeon"
	"github.com/simplehero/dungeon/internal/grid"
	"github.com/simplehero/dungeon/internal/items"
	"github.com/simplehero/dungeon/internal/party"
	"github.com/simplehero/dungeon/internal/room"
)

// State is the full simulation state for one run.
type State struct {
	Dungeon *dungeon.Dungeon
	Party   *party.Party
	Items   *items.Catalog

	// HoverPath is the uncommitted A* preview, recomputed on demand.
	HoverPath []grid.Coord
	// MovingPath is the committed path being walked one tile per tick.
	MovingPath []grid.Coord
	// ReadyByHeroID maps a hero standing on an exit tile to that exit's
	// direction. Its size reaching party size with all directions equal is
	// the sole trigger for a room transition.
	ReadyByHeroID map[string]grid.Direction

	// Inventory is the shared party inventory.
	Inventory []InventoryEntry
}

// New generates a dungeon for the seed and places the default party around
// the origin room's center.
func New(templates *room.Catalog, itemCatalog *items.Catalog, seed uint32) (*State, error) {
	d, err := dungeon.Generate(templates, seed)
	if err != nil {
		return nil, err
	}

	origin, err := d.CurrentRoom()
	if err != nil {
		return nil, err
	}

	startTiles, err := origin.ClosestWalkable(origin.Center(), party.Size)
	if err != nil {
		return nil, fmt.Errorf("failed to place party: %w", err)
	}

	p, err := party.New(origin.ID, startTiles)
	if err != nil {
		return nil, err
	}

	return &State{
		Dungeon:       d,
		Party:         p,
		Items:         itemCatalog,
		HoverPath:     nil,
		MovingPath:    nil,
		ReadyByHeroID: make(map[string]grid.Direction),
		Inventory:     StarterInventory(itemCatalog),
	}, nil
}

// CurrentRoom returns the room the party is in.
func (s *State) CurrentRoom() (*room.Room, error) {
	return s.Dungeon.CurrentRoom()
}

// TileAt returns the tile at a coordinate of the current room, void when
// out of bounds.
func (s *State) TileAt(c grid.Coord) room.Tile {
	r, err := s.CurrentRoom()
	if err != nil {
		return room.TileVoid
	}
	return r.TileAt(c)
}

// CurrentFloorNumber returns the 1-based floor number of the current room.
func (s *State) CurrentFloorNumber() int {
	return s.Dungeon.FloorNumber(s.Dungeon.CurrentRoomID)
}

// SetActiveHeroIndex switches the active hero. Out-of-range indexes are
// ignored. Switching discards any in-flight hover and movement paths.
func (s *State) SetActiveHeroIndex(index int) {
	s.Party.SetActiveHero(index)
	s.HoverPath = nil
	s.MovingPath = nil
}

// occupiedByOtherHero reports whether another hero blocks the coordinate.
// Heroes in the ready set never block: the party must be able to stack at
// the exit.
func (s *State) occupiedByOtherHero(roomID string, c grid.Coord, heroID string) bool {
	for _, h := range s.Party.Heroes {
		if h.ID == heroID {
			continue
		}
		if _, ready := s.ReadyByHeroID[h.ID]; ready {
			continue
		}
		if h.RoomID == roomID && h.Tile == c {
			return true
		}
	}
	return false
}
