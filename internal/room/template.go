package room

import (
	"fmt"

	"github.com/simplehero/dungeon/internal/grid"
	"github.com/simplehero/dungeon/internal/rng"
)

// Template is a room shape described as a character matrix. '.' is floor,
// the letters N/E/S/W are exit tiles carrying their direction, and any other
// character is void.
type Template struct {
	ID     string   `yaml:"id"`
	Weight float64  `yaml:"weight,omitempty"`
	Matrix []string `yaml:"matrix"`
}

// EffectiveWeight returns the selection weight, defaulting to 1 when the
// template does not specify one.
func (t *Template) EffectiveWeight() float64 {
	if t.Weight <= 0 {
		return 1
	}
	return t.Weight
}

// Catalog is the set of templates rooms are generated from.
type Catalog struct {
	Templates []Template `yaml:"templates"`
}

// Validate checks that every template in the catalog parses. A broken
// catalog is a fatal configuration error, caught before any room is built.
func (c *Catalog) Validate() error {
	if len(c.Templates) == 0 {
		return fmt.Errorf("room template catalog is empty")
	}
	for i := range c.Templates {
		if _, _, _, _, err := parseMatrix(&c.Templates[i]); err != nil {
			return err
		}
	}
	return nil
}

// Choose selects a template for a room coordinate using a seeded weighted
// draw. The same seed and coordinate always select the same template.
func (c *Catalog) Choose(runSeed uint32, coord grid.Coord) (*Template, error) {
	if len(c.Templates) == 0 {
		return nil, fmt.Errorf("room template catalog is empty")
	}

	r := rng.New(rng.SubSeed(runSeed, coord.Key()+":template"))
	total := 0.0
	for i := range c.Templates {
		total += c.Templates[i].EffectiveWeight()
	}

	roll := r.Float64() * total
	acc := 0.0
	for i := range c.Templates {
		acc += c.Templates[i].EffectiveWeight()
		if roll <= acc {
			return &c.Templates[i], nil
		}
	}
	// Floating rounding can leave roll a hair above the final cumulative sum.
	return &c.Templates[len(c.Templates)-1], nil
}

// parseMatrix converts a template matrix into a tile grid and exit map.
func parseMatrix(t *Template) (width, height int, tiles [][]Tile, exits map[grid.Direction]grid.Coord, err error) {
	if len(t.Matrix) == 0 {
		return 0, 0, nil, nil, fmt.Errorf("room template %q is empty", t.ID)
	}

	width = len(t.Matrix[0])
	if width == 0 {
		return 0, 0, nil, nil, fmt.Errorf("room template %q has an empty row", t.ID)
	}
	height = len(t.Matrix)

	tiles = make([][]Tile, height)
	exits = make(map[grid.Direction]grid.Coord)

	for y, row := range t.Matrix {
		if len(row) != width {
			return 0, 0, nil, nil, fmt.Errorf("room template %q has inconsistent row width at y=%d", t.ID, y)
		}
		tileRow := make([]Tile, width)
		for x := 0; x < width; x++ {
			switch marker := row[x]; marker {
			case '.':
				tileRow[x] = TileFloor
			case 'N', 'E', 'S', 'W':
				tileRow[x] = TileExit
				exits[grid.Direction(marker)] = grid.Coord{X: x, Y: y}
			default:
				tileRow[x] = TileVoid
			}
		}
		tiles[y] = tileRow
	}

	return width, height, tiles, exits, nil
}

// DefaultCatalog returns the built-in template set. A YAML catalog loaded at
// startup replaces it; the built-ins keep generation working without one.
func DefaultCatalog() *Catalog {
	return &Catalog{
		Templates: []Template{
			{
				ID:     "hall",
				Weight: 2,
				Matrix: []string{
					"######N######",
					"#...........#",
					"#...........#",
					"#...........#",
					"W...........E",
					"#...........#",
					"#...........#",
					"#...........#",
					"######S######",
				},
			},
			{
				ID:     "chamber",
				Weight: 2,
				Matrix: []string{
					"####N####",
					"#.......#",
					"#.......#",
					"#.......#",
					"W.......E",
					"#.......#",
					"#.......#",
					"#.......#",
					"####S####",
				},
			},
			{
				ID: "cross",
				Matrix: []string{
					"#####N#####",
					"####...####",
					"####...####",
					"####...####",
					"W.........E",
					"####...####",
					"####...####",
					"####...####",
					"#####S#####",
				},
			},
			{
				ID: "vault",
				Matrix: []string{
					"######N######",
					"#...........#",
					"#..##...##..#",
					"#...........#",
					"#...........#",
					"W...........E",
					"#...........#",
					"#...........#",
					"#..##...##..#",
					"#...........#",
					"######S######",
				},
			},
		},
	}
}
