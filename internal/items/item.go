// Package items defines the static item catalog consumed by equipment
// validation. The catalog is an immutable lookup table, not part of the
// movement core.
package items

import "sort"

// Category is the broad kind of an item.
type Category string

const (
	CategoryWeapon     Category = "weapon"
	CategoryArmor      Category = "armor"
	CategoryConsumable Category = "consumable"
)

// IsValid reports whether the category is known.
func (c Category) IsValid() bool {
	switch c {
	case CategoryWeapon, CategoryArmor, CategoryConsumable:
		return true
	default:
		return false
	}
}

// Item is one catalog entry with its category-specific attributes.
type Item struct {
	ID       string   `yaml:"-"`
	Name     string   `yaml:"name"`
	Category Category `yaml:"category"`
	// Weapon fields
	HandsRequired int `yaml:"hands_required,omitempty"`
	Range         int `yaml:"range,omitempty"`
	AttackDice    int `yaml:"attack_dice,omitempty"`
	Damage        int `yaml:"damage,omitempty"`
	// Armor fields
	DefenseBonus     int  `yaml:"defense_bonus,omitempty"`
	MovementModifier int  `yaml:"movement_modifier,omitempty"`
	Shield           bool `yaml:"shield,omitempty"`
	// Relic-slot eligibility
	Relic bool `yaml:"relic,omitempty"`
	// Consumable fields
	HealValue int `yaml:"heal_value,omitempty"`
}

// TwoHanded reports whether the item is a weapon needing both hands.
func (i *Item) TwoHanded() bool {
	return i.Category == CategoryWeapon && i.HandsRequired >= 2
}

// HandEquippable reports whether the item can occupy a hand slot: any
// weapon, or a shield.
func (i *Item) HandEquippable() bool {
	return i.Category == CategoryWeapon || (i.Category == CategoryArmor && i.Shield)
}

// Catalog is a set of items keyed by id.
type Catalog struct {
	byID map[string]*Item
}

// NewCatalog builds a catalog from items. Later duplicates replace earlier
// ones.
func NewCatalog(entries []Item) *Catalog {
	byID := make(map[string]*Item, len(entries))
	for i := range entries {
		item := entries[i]
		byID[item.ID] = &item
	}
	return &Catalog{byID: byID}
}

// Get returns the item with the given id.
func (c *Catalog) Get(id string) (*Item, bool) {
	item, ok := c.byID[id]
	return item, ok
}

// Has reports whether the catalog contains the id.
func (c *Catalog) Has(id string) bool {
	_, ok := c.byID[id]
	return ok
}

// All returns every item sorted by id for deterministic iteration.
func (c *Catalog) All() []*Item {
	ids := make([]string, 0, len(c.byID))
	for id := range c.byID {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	all := make([]*Item, 0, len(ids))
	for _, id := range ids {
		all = append(all, c.byID[id])
	}
	return all
}

// Len returns the number of items in the catalog.
func (c *Catalog) Len() int {
	return len(c.byID)
}

// DefaultCatalog returns the built-in item set.
func DefaultCatalog() *Catalog {
	return NewCatalog([]Item{
		{ID: "short-sword", Name: "Short Sword", Category: CategoryWeapon, HandsRequired: 1, Range: 1, AttackDice: 1, Damage: 3},
		{ID: "two-handed-sword", Name: "Two-Handed Sword", Category: CategoryWeapon, HandsRequired: 2, Range: 1, AttackDice: 2, Damage: 4},
		{ID: "bow", Name: "Bow", Category: CategoryWeapon, HandsRequired: 2, Range: 4, AttackDice: 1, Damage: 3},
		{ID: "staff", Name: "Staff", Category: CategoryWeapon, HandsRequired: 2, Range: 4, AttackDice: 1, Damage: 2},
		{ID: "light-armor", Name: "Light Armor", Category: CategoryArmor, DefenseBonus: 1},
		{ID: "heavy-armor", Name: "Heavy Armor", Category: CategoryArmor, DefenseBonus: 2, MovementModifier: -1},
		{ID: "shield", Name: "Shield", Category: CategoryArmor, DefenseBonus: 1, Shield: true},
		{ID: "health-potion", Name: "Health Potion", Category: CategoryConsumable, HealValue: 6},
	})
}
