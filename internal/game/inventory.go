package game

import "github.com/simplehero/dungeon/internal/items"

// InventoryEntry is one item held in the shared party inventory.
type InventoryEntry struct {
	ItemID   string         `json:"itemId"`
	Name     string         `json:"name"`
	Category items.Category `json:"category"`
}

// StarterInventory builds the default party inventory: one of each catalog
// item, in catalog order.
func StarterInventory(catalog *items.Catalog) []InventoryEntry {
	entries := make([]InventoryEntry, 0, catalog.Len())
	for _, item := range catalog.All() {
		entries = append(entries, InventoryEntry{
			ItemID:   item.ID,
			Name:     item.Name,
			Category: item.Category,
		})
	}
	return entries
}

// SanitizeInventory filters inventory entries against the catalog, dropping
// unknown items and refreshing name and category from the canonical
// definitions.
func SanitizeInventory(catalog *items.Catalog, entries []InventoryEntry) []InventoryEntry {
	sanitized := make([]InventoryEntry, 0, len(entries))
	for _, entry := range entries {
		item, ok := catalog.Get(entry.ItemID)
		if !ok {
			continue
		}
		sanitized = append(sanitized, InventoryEntry{
			ItemID:   item.ID,
			Name:     item.Name,
			Category: item.Category,
		})
	}
	return sanitized
}
