// mapgen renders a generated dungeon as ASCII, one room per floor, for
// eyeballing templates and layout without running the server.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"time"

	"github.com/simplehero/dungeon/internal/dungeon"
	"github.com/simplehero/dungeon/internal/grid"
	"github.com/simplehero/dungeon/internal/room"
)

func main() {
	seed := flag.Uint("seed", 0, "Run seed (default: random based on current time)")
	templatesFile := flag.String("templates", "", "Path to room templates YAML file (default: built-in catalog)")
	flag.Parse()

	runSeed := uint32(*seed)
	if runSeed == 0 {
		runSeed = uint32(time.Now().UnixNano())
	}

	templates := room.DefaultCatalog()
	if *templatesFile != "" {
		var err error
		templates, err = room.LoadCatalogFromYAML(*templatesFile)
		if err != nil {
			log.Fatalf("Failed to load room templates: %v", err)
		}
	}

	d, err := dungeon.Generate(templates, runSeed)
	if err != nil {
		log.Fatalf("Failed to generate dungeon: %v", err)
	}

	fmt.Printf("seed %d, %d floors\n\n", runSeed, d.TotalFloors)

	ids := make([]string, 0, len(d.Rooms))
	for id := range d.Rooms {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return d.FloorByRoomID[ids[i]] < d.FloorByRoomID[ids[j]]
	})

	for _, id := range ids {
		r := d.Rooms[id]
		fmt.Printf("floor %d: room %s (%dx%d)\n", d.FloorByRoomID[id], id, r.Width, r.Height)
		printRoom(os.Stdout, r)
		fmt.Println()
	}
}

// printRoom draws one room: '#' void, '.' floor, exits by their direction
// letter.
func printRoom(w *os.File, r *room.Room) {
	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			c := grid.Coord{X: x, Y: y}
			switch tile := r.TileAt(c); tile {
			case room.TileVoid:
				fmt.Fprint(w, "#")
			case room.TileFloor:
				fmt.Fprint(w, ".")
			case room.TileExit:
				if dir, ok := r.ExitDirectionAt(c); ok {
					fmt.Fprint(w, dir)
				} else {
					fmt.Fprint(w, "E")
				}
			default:
				fmt.Fprint(w, "?")
			}
		}
		fmt.Fprintln(w)
	}
}
