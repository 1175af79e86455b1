package game

import (
	"github.com/simplehero/dungeon/internal/grid"
	"github.com/simplehero/dungeon/internal/hero"
)

// HeroView is a flattened read-only snapshot of one hero, shaped for
// rendering.
type HeroView struct {
	ID          string         `json:"id"`
	ClassLetter string         `json:"classLetter"`
	ClassName   string         `json:"className"`
	Race        string         `json:"race"`
	HP          int            `json:"hp"`
	MaxHP       int            `json:"maxHp"`
	Body        int            `json:"body"`
	Mind        int            `json:"mind"`
	Equipment   hero.Equipment `json:"equipment"`
	RoomID      string         `json:"roomId"`
	Floor       int            `json:"floor"`
	Tile        grid.Coord     `json:"tile"`
	Facing      grid.Direction `json:"facing"`
	Active      bool           `json:"active"`
	Ready       bool           `json:"ready"`
}

// HeroViews returns one view per party hero, in party order.
func (s *State) HeroViews() []HeroView {
	views := make([]HeroView, 0, len(s.Party.Heroes))
	for i, h := range s.Party.Heroes {
		_, ready := s.ReadyByHeroID[h.ID]
		views = append(views, HeroView{
			ID:          h.ID,
			ClassLetter: h.ClassLetter,
			ClassName:   h.ClassName.String(),
			Race:        h.RaceName.String(),
			HP:          h.HP,
			MaxHP:       h.MaxHP,
			Body:        h.Body,
			Mind:        h.Mind,
			Equipment:   h.Equipment,
			RoomID:      h.RoomID,
			Floor:       s.Dungeon.FloorNumber(h.RoomID),
			Tile:        h.Tile,
			Facing:      h.Facing,
			Active:      i == s.Party.ActiveHeroIndex,
			Ready:       ready,
		})
	}
	return views
}

// CurrentRoomID returns the coordinate id of the room the party is in.
func (s *State) CurrentRoomID() string {
	return s.Dungeon.CurrentRoomID
}
