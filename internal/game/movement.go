package game

import (
	"fmt"

	"github.com/simplehero/dungeon/internal/grid"
	"github.com/simplehero/dungeon/internal/hero"
	"github.com/simplehero/dungeon/internal/path"
)

// UpdateHoverPath recomputes the preview path from the active hero to the
// target. A hero that is ready at an exit has movement locked, so its hover
// path is always empty.
func (s *State) UpdateHoverPath(target grid.Coord) error {
	r, err := s.CurrentRoom()
	if err != nil {
		return err
	}

	h := s.Party.ActiveHero()
	if _, ready := s.ReadyByHeroID[h.ID]; ready {
		s.HoverPath = nil
		return nil
	}

	s.HoverPath = path.Find(h.Tile, target, func(c grid.Coord) bool {
		return r.CanWalk(c) && !s.occupiedByOtherHero(r.ID, c, h.ID)
	})
	return nil
}

// CommitMoveFromHover copies the hover path into the committed movement
// path. A path shorter than 2 tiles means no movement is needed; a
// ready-at-exit hero cannot commit at all.
func (s *State) CommitMoveFromHover() {
	h := s.Party.ActiveHero()
	if _, ready := s.ReadyByHeroID[h.ID]; ready {
		return
	}
	if len(s.HoverPath) < 2 {
		return
	}
	s.MovingPath = append([]grid.Coord(nil), s.HoverPath...)
}

// Step advances the committed path by one tile. Called once per simulation
// tick. It reports whether a move occurred; the error return is reserved
// for broken generation invariants surfacing during a room transition.
//
// Occupancy is re-validated every tick: paths are not pre-locked, so a tile
// now held by another non-ready hero aborts the whole committed path.
func (s *State) Step() (bool, error) {
	h := s.Party.ActiveHero()
	if _, ready := s.ReadyByHeroID[h.ID]; ready {
		return false, nil
	}
	if len(s.MovingPath) < 2 {
		return false, nil
	}

	s.MovingPath = s.MovingPath[1:]
	next := s.MovingPath[0]

	if s.occupiedByOtherHero(h.RoomID, next, h.ID) {
		s.MovingPath = nil
		return false, nil
	}

	updateFacing(h, next)
	h.Tile = next

	if err := s.refreshExitReady(h.ID, h.Tile); err != nil {
		return true, err
	}
	if err := s.maybeTransitionRoom(); err != nil {
		return true, err
	}
	return true, nil
}

// updateFacing turns the hero toward the tile it is about to enter.
// Horizontal movement wins over vertical; no movement leaves facing
// unchanged.
func updateFacing(h *hero.Hero, next grid.Coord) {
	switch {
	case next.X > h.Tile.X:
		h.Facing = grid.East
	case next.X < h.Tile.X:
		h.Facing = grid.West
	case next.Y > h.Tile.Y:
		h.Facing = grid.South
	case next.Y < h.Tile.Y:
		h.Facing = grid.North
	}
}

// refreshExitReady records or clears the hero's exit readiness for its
// current tile.
func (s *State) refreshExitReady(heroID string, tile grid.Coord) error {
	r, err := s.CurrentRoom()
	if err != nil {
		return err
	}
	if dir, ok := r.ExitDirectionAt(tile); ok {
		s.ReadyByHeroID[heroID] = dir
	} else {
		delete(s.ReadyByHeroID, heroID)
	}
	return nil
}

// maybeTransitionRoom moves the party to the neighboring room once every
// hero is ready on exits of the same direction.
func (s *State) maybeTransitionRoom() error {
	if len(s.ReadyByHeroID) != len(s.Party.Heroes) {
		return nil
	}

	var direction grid.Direction
	first := true
	for _, dir := range s.ReadyByHeroID {
		if first {
			direction = dir
			first = false
			continue
		}
		if dir != direction {
			return nil
		}
	}

	current, err := s.CurrentRoom()
	if err != nil {
		return err
	}

	nextCoord := direction.Step(current.Coord)
	nextRoom, ok := s.Dungeon.RoomAt(nextCoord)
	if !ok {
		// Pruning guarantees exits only point at generated rooms.
		return fmt.Errorf("no room at %s beyond %s exit of %s", nextCoord.Key(), direction, current.ID)
	}

	s.Dungeon.CurrentRoomID = nextRoom.ID
	s.Dungeon.Discover(nextRoom.ID)

	entry, ok := nextRoom.Exits[direction.Opposite()]
	if !ok {
		return fmt.Errorf("room %s is missing entry exit %s", nextRoom.ID, direction.Opposite())
	}

	startTiles, err := nextRoom.ClosestWalkable(entry, len(s.Party.Heroes))
	if err != nil {
		return err
	}

	for i, h := range s.Party.Heroes {
		h.RoomID = nextRoom.ID
		h.Tile = startTiles[i]
	}

	s.ReadyByHeroID = make(map[string]grid.Direction)
	s.HoverPath = nil
	s.MovingPath = nil
	return nil
}
