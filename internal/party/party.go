// Package party manages the fixed 3-hero party and its active-hero index.
package party

import (
	"fmt"

	"github.com/simplehero/dungeon/internal/class"
	"github.com/simplehero/dungeon/internal/grid"
	"github.com/simplehero/dungeon/internal/hero"
	"github.com/simplehero/dungeon/internal/race"
)

// Size is the fixed party size.
const Size = 3

// DefaultBlueprints is the standard lineup.
var DefaultBlueprints = [Size]hero.Blueprint{
	{Class: class.Warrior, Race: race.Orc},
	{Class: class.Ranger, Race: race.Elf},
	{Class: class.Mage, Race: race.Human},
}

// Party is an ordered list of exactly 3 heroes and the active-hero index.
type Party struct {
	Heroes          []*hero.Hero `json:"heroes"`
	ActiveHeroIndex int          `json:"activeHeroIndex"`
}

// New builds the default party in a room, placing hero i at startTiles[i],
// all facing South at full HP with hero 0 active.
func New(roomID string, startTiles []grid.Coord) (*Party, error) {
	if len(startTiles) < Size {
		return nil, fmt.Errorf("party needs %d start tiles, got %d", Size, len(startTiles))
	}

	heroes := make([]*hero.Hero, Size)
	for i, blueprint := range DefaultBlueprints {
		heroes[i] = hero.New(fmt.Sprintf("hero-%d", i), roomID, startTiles[i], blueprint)
	}

	return &Party{Heroes: heroes, ActiveHeroIndex: 0}, nil
}

// ActiveHero returns the currently selected hero.
func (p *Party) ActiveHero() *hero.Hero {
	return p.Heroes[p.ActiveHeroIndex]
}

// SetActiveHero updates the active index. Out-of-range indexes are ignored;
// the call never corrupts state.
func (p *Party) SetActiveHero(index int) bool {
	if index < 0 || index >= len(p.Heroes) {
		return false
	}
	p.ActiveHeroIndex = index
	return true
}

// HeroByID returns the hero with the given id.
func (p *Party) HeroByID(id string) (*hero.Hero, bool) {
	for _, h := range p.Heroes {
		if h.ID == id {
			return h, true
		}
	}
	return nil, false
}
