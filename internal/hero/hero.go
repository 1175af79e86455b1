// Package hero defines hero state: identity, class, race-derived stats,
// position, facing, and equipment.
package hero

import (
	"fmt"

	"github.com/simplehero/dungeon/internal/class"
	"github.com/simplehero/dungeon/internal/grid"
	"github.com/simplehero/dungeon/internal/items"
	"github.com/simplehero/dungeon/internal/race"
)

// Slot names an equipment slot.
type Slot string

const (
	SlotArmor     Slot = "armor"
	SlotLeftHand  Slot = "leftHand"
	SlotRightHand Slot = "rightHand"
	SlotRelic     Slot = "relic"
)

// IsValid reports whether the slot is known.
func (s Slot) IsValid() bool {
	switch s {
	case SlotArmor, SlotLeftHand, SlotRightHand, SlotRelic:
		return true
	default:
		return false
	}
}

// Equipment holds a hero's equipped items by slot plus an ordered backpack.
// Empty strings mean an empty slot. A two-handed weapon occupies both hand
// slots with the same item id.
type Equipment struct {
	Armor     string   `json:"armor"`
	LeftHand  string   `json:"leftHand"`
	RightHand string   `json:"rightHand"`
	Relic     string   `json:"relic"`
	Backpack  []string `json:"backpack"`
}

// Hero is one party member.
type Hero struct {
	ID          string         `json:"id"`
	ClassLetter string         `json:"classLetter"`
	ClassName   class.Class    `json:"className"`
	RaceName    race.Race      `json:"raceName"`
	HP          int            `json:"hp"`
	MaxHP       int            `json:"maxHp"`
	Body        int            `json:"body"`
	Mind        int            `json:"mind"`
	Equipment   Equipment      `json:"equipment"`
	RoomID      string         `json:"roomId"`
	Tile        grid.Coord     `json:"tile"`
	Facing      grid.Direction `json:"facing"`
}

// Blueprint pairs a class with a race for party creation.
type Blueprint struct {
	Class class.Class
	Race  race.Race
}

// New creates a hero from a blueprint at a spawn tile: full HP, facing
// South, empty equipment.
func New(id, roomID string, spawnTile grid.Coord, blueprint Blueprint) *Hero {
	stats := blueprint.Race.Stats()
	return &Hero{
		ID:          id,
		ClassLetter: blueprint.Class.Letter(),
		ClassName:   blueprint.Class,
		RaceName:    blueprint.Race,
		HP:          stats.MaxHP,
		MaxHP:       stats.MaxHP,
		Body:        stats.Body,
		Mind:        stats.Mind,
		Equipment:   Equipment{Backpack: []string{}},
		RoomID:      roomID,
		Tile:        spawnTile,
		Facing:      grid.South,
	}
}

// AddToBackpack appends an item id to the backpack.
func (h *Hero) AddToBackpack(itemID string) {
	h.Equipment.Backpack = append(h.Equipment.Backpack, itemID)
}

// Equip moves an item from the backpack into a slot, validating against the
// catalog. Invalid operations return an error and leave the hero unchanged.
func (h *Hero) Equip(catalog *items.Catalog, itemID string, slot Slot) error {
	if !slot.IsValid() {
		return fmt.Errorf("unknown equipment slot %q", slot)
	}

	item, ok := catalog.Get(itemID)
	if !ok {
		return fmt.Errorf("unknown item %q", itemID)
	}
	if !h.removeFromBackpack(itemID) {
		return fmt.Errorf("item %q is not in the backpack", itemID)
	}

	restore := func() { h.AddToBackpack(itemID) }

	switch slot {
	case SlotArmor:
		if item.Category != items.CategoryArmor || item.Shield {
			restore()
			return fmt.Errorf("item %q cannot be worn as armor", itemID)
		}
		if h.Equipment.Armor != "" {
			restore()
			return fmt.Errorf("armor slot is occupied")
		}
		h.Equipment.Armor = itemID

	case SlotRelic:
		if !item.Relic {
			restore()
			return fmt.Errorf("item %q cannot occupy the relic slot", itemID)
		}
		if h.Equipment.Relic != "" {
			restore()
			return fmt.Errorf("relic slot is occupied")
		}
		h.Equipment.Relic = itemID

	case SlotLeftHand, SlotRightHand:
		if !item.HandEquippable() {
			restore()
			return fmt.Errorf("item %q cannot be held", itemID)
		}
		if item.TwoHanded() {
			if h.Equipment.LeftHand != "" || h.Equipment.RightHand != "" {
				restore()
				return fmt.Errorf("two-handed item %q needs both hands free", itemID)
			}
			h.Equipment.LeftHand = itemID
			h.Equipment.RightHand = itemID
			return nil
		}
		if slot == SlotLeftHand {
			if h.Equipment.LeftHand != "" {
				restore()
				return fmt.Errorf("left hand is occupied")
			}
			h.Equipment.LeftHand = itemID
		} else {
			if h.Equipment.RightHand != "" {
				restore()
				return fmt.Errorf("right hand is occupied")
			}
			h.Equipment.RightHand = itemID
		}
	}

	return nil
}

// Unequip moves the item in a slot back to the backpack. Unequipping a
// two-handed weapon clears both hands and returns a single backpack entry.
func (h *Hero) Unequip(slot Slot) error {
	if !slot.IsValid() {
		return fmt.Errorf("unknown equipment slot %q", slot)
	}

	var itemID string
	switch slot {
	case SlotArmor:
		itemID = h.Equipment.Armor
		h.Equipment.Armor = ""
	case SlotRelic:
		itemID = h.Equipment.Relic
		h.Equipment.Relic = ""
	case SlotLeftHand:
		itemID = h.Equipment.LeftHand
		h.Equipment.LeftHand = ""
		if h.Equipment.RightHand == itemID {
			h.Equipment.RightHand = ""
		}
	case SlotRightHand:
		itemID = h.Equipment.RightHand
		h.Equipment.RightHand = ""
		if h.Equipment.LeftHand == itemID {
			h.Equipment.LeftHand = ""
		}
	}

	if itemID == "" {
		return fmt.Errorf("slot %q is empty", slot)
	}
	h.AddToBackpack(itemID)
	return nil
}

// UseConsumable consumes an item from the backpack. Healing clamps at max
// HP.
func (h *Hero) UseConsumable(catalog *items.Catalog, itemID string) error {
	item, ok := catalog.Get(itemID)
	if !ok {
		return fmt.Errorf("unknown item %q", itemID)
	}
	if item.Category != items.CategoryConsumable {
		return fmt.Errorf("item %q is not consumable", itemID)
	}
	if !h.removeFromBackpack(itemID) {
		return fmt.Errorf("item %q is not in the backpack", itemID)
	}

	h.HP += item.HealValue
	if h.HP > h.MaxHP {
		h.HP = h.MaxHP
	}
	return nil
}

func (h *Hero) removeFromBackpack(itemID string) bool {
	for i, id := range h.Equipment.Backpack {
		if id == itemID {
			h.Equipment.Backpack = append(h.Equipment.Backpack[:i], h.Equipment.Backpack[i+1:]...)
			return true
		}
	}
	return false
}
