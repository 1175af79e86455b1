// Package path provides grid shortest-path search for party movement.
package path

import "github.com/simplehero/dungeon/internal/grid"

type node struct {
	coord grid.Coord
	g     int
	f     int
}

// Find runs A* from start to goal over 4-connected neighbors with the
// Manhattan heuristic. canWalk decides which coordinates may be entered;
// start itself is never tested. The returned path includes both endpoints,
// is [start] when start equals goal, and is nil when the goal is
// unreachable. The search never mutates caller state.
//
// The open list is a plain slice popped at the first strictly-lowest f, so
// equal-cost ties resolve by insertion order and identical queries always
// return the identical path.
func Find(start, goal grid.Coord, canWalk func(grid.Coord) bool) []grid.Coord {
	if start == goal {
		return []grid.Coord{start}
	}

	open := []node{{coord: start, g: 0, f: start.Manhattan(goal)}}
	cameFrom := make(map[grid.Coord]grid.Coord)
	gScore := map[grid.Coord]int{start: 0}
	closed := make(map[grid.Coord]bool)

	for len(open) > 0 {
		best := 0
		for i := 1; i < len(open); i++ {
			if open[i].f < open[best].f {
				best = i
			}
		}

		current := open[best]
		open = append(open[:best], open[best+1:]...)

		if current.coord == goal {
			return reconstruct(goal, cameFrom)
		}
		closed[current.coord] = true

		for _, next := range current.coord.Neighbors4() {
			if closed[next] || !canWalk(next) {
				continue
			}

			tentativeG := current.g + 1
			if known, ok := gScore[next]; ok && tentativeG >= known {
				continue
			}

			cameFrom[next] = current.coord
			gScore[next] = tentativeG
			f := tentativeG + next.Manhattan(goal)

			updated := false
			for i := range open {
				if open[i].coord == next {
					open[i].g = tentativeG
					open[i].f = f
					updated = true
					break
				}
			}
			if !updated {
				open = append(open, node{coord: next, g: tentativeG, f: f})
			}
		}
	}

	return nil
}

func reconstruct(goal grid.Coord, cameFrom map[grid.Coord]grid.Coord) []grid.Coord {
	path := []grid.Coord{goal}
	current := goal
	for {
		previous, ok := cameFrom[current]
		if !ok {
			break
		}
		path = append(path, previous)
		current = previous
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
