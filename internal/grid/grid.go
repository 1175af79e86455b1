// Package grid provides the coordinate primitives shared by rooms and the
// dungeon graph. The same Coord type serves both in-room tile positions and
// room-lattice positions; a room coordinate is one unit per room.
package grid

import (
	"fmt"
	"strconv"
	"strings"
)

// Coord is an integer (x, y) pair.
type Coord struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// Key returns the stable "x,y" string form of the coordinate. Room ids use
// this encoding, as do internal pathfinding maps.
func (c Coord) Key() string {
	return strconv.Itoa(c.X) + "," + strconv.Itoa(c.Y)
}

// ParseKey parses an "x,y" key back into a coordinate.
func ParseKey(key string) (Coord, error) {
	parts := strings.SplitN(key, ",", 2)
	if len(parts) != 2 {
		return Coord{}, fmt.Errorf("invalid coordinate key %q", key)
	}
	x, err := strconv.Atoi(parts[0])
	if err != nil {
		return Coord{}, fmt.Errorf("invalid coordinate key %q: %w", key, err)
	}
	y, err := strconv.Atoi(parts[1])
	if err != nil {
		return Coord{}, fmt.Errorf("invalid coordinate key %q: %w", key, err)
	}
	return Coord{X: x, Y: y}, nil
}

// InBounds reports whether the coordinate lies inside a width x height grid.
func (c Coord) InBounds(width, height int) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < width && c.Y < height
}

// Add returns the coordinate offset by another.
func (c Coord) Add(other Coord) Coord {
	return Coord{X: c.X + other.X, Y: c.Y + other.Y}
}

// Manhattan returns the Manhattan distance to another coordinate.
func (c Coord) Manhattan(other Coord) int {
	return abs(c.X-other.X) + abs(c.Y-other.Y)
}

// Neighbors4 returns the four orthogonal neighbors in N, E, S, W order.
// The order matters for deterministic generation and pathfinding.
func (c Coord) Neighbors4() [4]Coord {
	return [4]Coord{
		{X: c.X, Y: c.Y - 1},
		{X: c.X + 1, Y: c.Y},
		{X: c.X, Y: c.Y + 1},
		{X: c.X - 1, Y: c.Y},
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Direction is one of the four cardinal directions.
type Direction string

const (
	North Direction = "N"
	East  Direction = "E"
	South Direction = "S"
	West  Direction = "W"
)

// Directions lists all directions in N, E, S, W order.
var Directions = [4]Direction{North, East, South, West}

// IsValid reports whether the direction is one of the four cardinals.
func (d Direction) IsValid() bool {
	switch d {
	case North, East, South, West:
		return true
	default:
		return false
	}
}

// Delta returns the unit step for the direction. North is negative y.
func (d Direction) Delta() Coord {
	switch d {
	case North:
		return Coord{X: 0, Y: -1}
	case South:
		return Coord{X: 0, Y: 1}
	case East:
		return Coord{X: 1, Y: 0}
	default:
		return Coord{X: -1, Y: 0}
	}
}

// Opposite returns the inverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	default:
		return East
	}
}

// Step moves a coordinate one unit in the direction. Used for both tile
// steps and room-lattice steps.
func (d Direction) Step(c Coord) Coord {
	return c.Add(d.Delta())
}
