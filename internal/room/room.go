package room

import (
	"fmt"
	"sort"

	"github.com/simplehero/dungeon/internal/grid"
)

// Room is one generated room: a tile grid plus the exit tiles that connect
// it to neighboring rooms. Rooms are immutable after dungeon construction
// except for the one-time exit pruning the generator performs.
type Room struct {
	ID     string                        `json:"id"`
	Coord  grid.Coord                    `json:"coord"`
	Width  int                           `json:"width"`
	Height int                           `json:"height"`
	Tiles  [][]Tile                      `json:"tiles"`
	Exits  map[grid.Direction]grid.Coord `json:"exits"`
}

// Generate builds the room at a coordinate from the catalog. It is a pure
// function of (seed, coordinate): regenerating the same coordinate under the
// same seed reproduces identical tiles and exits.
func Generate(catalog *Catalog, runSeed uint32, coord grid.Coord) (*Room, error) {
	template, err := catalog.Choose(runSeed, coord)
	if err != nil {
		return nil, err
	}

	width, height, tiles, exits, err := parseMatrix(template)
	if err != nil {
		return nil, err
	}

	return &Room{
		ID:     coord.Key(),
		Coord:  coord,
		Width:  width,
		Height: height,
		Tiles:  tiles,
		Exits:  exits,
	}, nil
}

// TileAt returns the tile at a coordinate, or void when out of bounds.
func (r *Room) TileAt(c grid.Coord) Tile {
	if !c.InBounds(r.Width, r.Height) {
		return TileVoid
	}
	return r.Tiles[c.Y][c.X]
}

// CanWalk reports whether the coordinate is in bounds and walkable.
func (r *Room) CanWalk(c grid.Coord) bool {
	return r.TileAt(c).IsWalkable()
}

// ExitDirectionAt returns the direction of the exit occupying the tile, if
// any.
func (r *Room) ExitDirectionAt(c grid.Coord) (grid.Direction, bool) {
	for _, dir := range grid.Directions {
		if exit, ok := r.Exits[dir]; ok && exit == c {
			return dir, true
		}
	}
	return "", false
}

// PruneExit converts an exit tile back to plain floor and removes the exit
// entry. Called once at dungeon-build time for exits with no generated
// neighbor.
func (r *Room) PruneExit(dir grid.Direction) {
	exit, ok := r.Exits[dir]
	if !ok {
		return
	}
	r.Tiles[exit.Y][exit.X] = TileFloor
	delete(r.Exits, dir)
}

// ClosestWalkable returns the count walkable tiles nearest to origin,
// ordered by Manhattan distance, then row, then column for determinism.
// When the room is short of tiles the origin itself is appended if walkable;
// a room that still cannot seat count tiles violates a generation invariant.
func (r *Room) ClosestWalkable(origin grid.Coord, count int) ([]grid.Coord, error) {
	walkable := make([]grid.Coord, 0, r.Width*r.Height)
	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			c := grid.Coord{X: x, Y: y}
			if r.CanWalk(c) {
				walkable = append(walkable, c)
			}
		}
	}

	sort.SliceStable(walkable, func(i, j int) bool {
		di := walkable[i].Manhattan(origin)
		dj := walkable[j].Manhattan(origin)
		if di != dj {
			return di < dj
		}
		if walkable[i].Y != walkable[j].Y {
			return walkable[i].Y < walkable[j].Y
		}
		return walkable[i].X < walkable[j].X
	})

	if len(walkable) > count {
		walkable = walkable[:count]
	}

	if len(walkable) < count && r.CanWalk(origin) && !containsCoord(walkable, origin) {
		walkable = append(walkable, origin)
	}

	if len(walkable) < count {
		return nil, fmt.Errorf("room %s does not contain enough walkable tiles: have %d, need %d", r.ID, len(walkable), count)
	}

	return walkable, nil
}

// Center returns the grid center of the room.
func (r *Room) Center() grid.Coord {
	return grid.Coord{X: r.Width / 2, Y: r.Height / 2}
}

func containsCoord(coords []grid.Coord, c grid.Coord) bool {
	for _, existing := range coords {
		if existing == c {
			return true
		}
	}
	return false
}
