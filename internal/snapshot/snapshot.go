// Package snapshot serializes and restores the full simulation state.
// Writes always emit the current schema version; reads also accept the
// older version 1 shape, which lacked floor tracking and hero equipment.
// Restore repairs malformed or partial snapshots instead of failing, so a
// stale save never strands a run.
package snapshot

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/simplehero/dungeon/internal/game"
	"github.com/simplehero/dungeon/internal/grid"
	"github.com/simplehero/dungeon/internal/hero"
	"github.com/simplehero/dungeon/internal/items"
	"github.com/simplehero/dungeon/internal/party"
	"github.com/simplehero/dungeon/internal/room"
)

// Version is the schema version written by Capture.
const Version = 2

// FloorEntry is one room-id to floor-number pair.
type FloorEntry struct {
	RoomID string `json:"roomId"`
	Floor  int    `json:"floor"`
}

// Party is the persisted party shape.
type Party struct {
	ActiveHeroIndex int          `json:"activeHeroIndex"`
	Heroes          []*hero.Hero `json:"heroes"`
}

// Snapshot is the version 2 persisted shape of a run.
type Snapshot struct {
	Version           int                   `json:"version"`
	Seed              uint32                `json:"seed"`
	TotalFloors       int                   `json:"totalFloors"`
	CurrentRoomID     string                `json:"currentRoomId"`
	DiscoveredRoomIDs []string              `json:"discoveredRoomIds"`
	FloorByRoomID     []FloorEntry          `json:"floorByRoomId"`
	Rooms             []*room.Room          `json:"rooms"`
	Party             Party                 `json:"party"`
	Inventory         []game.InventoryEntry `json:"inventory,omitempty"`
}

// heroV1 is the version 1 hero record: position only, no stats or
// equipment.
type heroV1 struct {
	ID          string         `json:"id"`
	ClassLetter string         `json:"classLetter"`
	RoomID      string         `json:"roomId"`
	Tile        grid.Coord     `json:"tile"`
	Facing      grid.Direction `json:"facing"`
}

// snapshotV1 is the version 1 shape: no floor tracking, minimal heroes.
type snapshotV1 struct {
	Version           int          `json:"version"`
	Seed              uint32       `json:"seed"`
	CurrentRoomID     string       `json:"currentRoomId"`
	DiscoveredRoomIDs []string     `json:"discoveredRoomIds"`
	Rooms             []*room.Room `json:"rooms"`
	Party             struct {
		ActiveHeroIndex int      `json:"activeHeroIndex"`
		Heroes          []heroV1 `json:"heroes"`
	} `json:"party"`
}

// Capture builds a version 2 snapshot from the live state. Lists are sorted
// so the same state always serializes to the same bytes.
func Capture(s *game.State) *Snapshot {
	discovered := make([]string, 0, len(s.Dungeon.DiscoveredRoomIDs))
	for id := range s.Dungeon.DiscoveredRoomIDs {
		discovered = append(discovered, id)
	}
	sort.Strings(discovered)

	floors := make([]FloorEntry, 0, len(s.Dungeon.FloorByRoomID))
	for id, floor := range s.Dungeon.FloorByRoomID {
		floors = append(floors, FloorEntry{RoomID: id, Floor: floor})
	}
	sort.Slice(floors, func(i, j int) bool { return floors[i].Floor < floors[j].Floor })

	rooms := make([]*room.Room, 0, len(s.Dungeon.Rooms))
	for _, r := range s.Dungeon.Rooms {
		rooms = append(rooms, r)
	}
	sort.Slice(rooms, func(i, j int) bool { return rooms[i].ID < rooms[j].ID })

	return &Snapshot{
		Version:           Version,
		Seed:              s.Dungeon.Seed,
		TotalFloors:       s.Dungeon.TotalFloors,
		CurrentRoomID:     s.Dungeon.CurrentRoomID,
		DiscoveredRoomIDs: discovered,
		FloorByRoomID:     floors,
		Rooms:             rooms,
		Party: Party{
			ActiveHeroIndex: s.Party.ActiveHeroIndex,
			Heroes:          s.Party.Heroes,
		},
		Inventory: s.Inventory,
	}
}

// Marshal serializes the live state to version 2 snapshot JSON.
func Marshal(s *game.State) ([]byte, error) {
	data, err := json.Marshal(Capture(s))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	return data, nil
}

// Restore rebuilds a live state from snapshot JSON. It accepts version 1
// and version 2 payloads and repairs what it can: an unknown current room
// falls back to an available room, out-of-bounds or non-walkable hero tiles
// are replaced with valid ones, short parties are padded from a freshly
// generated fallback party, the active index is clamped, and equipment and
// inventory are sanitized against the item catalog. Only unparseable JSON
// or a seed that cannot regenerate a dungeon is an error.
func Restore(data []byte, templates *room.Catalog, itemCatalog *items.Catalog) (*game.State, error) {
	var envelope struct {
		Version int `json:"version"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot: %w", err)
	}

	var snap Snapshot
	switch envelope.Version {
	case Version:
		if err := json.Unmarshal(data, &snap); err != nil {
			return nil, fmt.Errorf("failed to parse version %d snapshot: %w", Version, err)
		}
	case 0, 1:
		var old snapshotV1
		if err := json.Unmarshal(data, &old); err != nil {
			return nil, fmt.Errorf("failed to parse version 1 snapshot: %w", err)
		}
		snap = upgradeV1(&old)
	default:
		return nil, fmt.Errorf("unsupported snapshot version %d", envelope.Version)
	}

	// The fallback regenerates the dungeon and a default party from the
	// seed; generation is deterministic, so it matches what the snapshot
	// was originally captured from.
	fallback, err := game.New(templates, itemCatalog, snap.Seed)
	if err != nil {
		return nil, fmt.Errorf("failed to rebuild fallback state: %w", err)
	}

	s := fallback
	applyDungeon(s, &snap)
	applyParty(s, &snap, itemCatalog)

	if snap.Inventory != nil {
		s.Inventory = game.SanitizeInventory(itemCatalog, snap.Inventory)
	}
	s.HoverPath = nil
	s.MovingPath = nil
	s.ReadyByHeroID = make(map[string]grid.Direction)
	return s, nil
}

// upgradeV1 lifts a version 1 snapshot into the current shape. Heroes keep
// only identity and position; stats and equipment are left zero for the
// party repair pass to fill in.
func upgradeV1(old *snapshotV1) Snapshot {
	heroes := make([]*hero.Hero, 0, len(old.Party.Heroes))
	for _, h := range old.Party.Heroes {
		heroes = append(heroes, &hero.Hero{
			ID:          h.ID,
			ClassLetter: h.ClassLetter,
			RoomID:      h.RoomID,
			Tile:        h.Tile,
			Facing:      h.Facing,
		})
	}
	return Snapshot{
		Version:           Version,
		Seed:              old.Seed,
		CurrentRoomID:     old.CurrentRoomID,
		DiscoveredRoomIDs: old.DiscoveredRoomIDs,
		Rooms:             old.Rooms,
		Party: Party{
			ActiveHeroIndex: old.Party.ActiveHeroIndex,
			Heroes:          heroes,
		},
	}
}

// applyDungeon overlays the snapshot's dungeon state onto the fallback.
// Snapshot rooms replace regenerated ones when well formed, so exit pruning
// and any persisted tile edits survive; the fallback covers everything the
// snapshot omits.
func applyDungeon(s *game.State, snap *Snapshot) {
	for _, r := range snap.Rooms {
		if r == nil || r.ID == "" || len(r.Tiles) == 0 {
			continue
		}
		if r.Width <= 0 || r.Height <= 0 || len(r.Tiles) != r.Height {
			continue
		}
		if hasJaggedRows(r) {
			continue
		}
		s.Dungeon.Rooms[r.ID] = r
	}

	if snap.TotalFloors > 0 {
		s.Dungeon.TotalFloors = snap.TotalFloors
	}
	for _, entry := range snap.FloorByRoomID {
		if _, ok := s.Dungeon.Rooms[entry.RoomID]; ok && entry.Floor > 0 {
			s.Dungeon.FloorByRoomID[entry.RoomID] = entry.Floor
		}
	}

	current := snap.CurrentRoomID
	if _, ok := s.Dungeon.Rooms[current]; !ok {
		current = anyRoomID(s)
	}
	s.Dungeon.CurrentRoomID = current

	discovered := map[string]bool{current: true}
	for _, id := range snap.DiscoveredRoomIDs {
		if _, ok := s.Dungeon.Rooms[id]; ok {
			discovered[id] = true
		}
	}
	s.Dungeon.DiscoveredRoomIDs = discovered
}

// hasJaggedRows reports whether any tile row is narrower or wider than the
// room's declared width. Such a room would index out of range on tile
// lookups, so the regenerated fallback covers it instead.
func hasJaggedRows(r *room.Room) bool {
	for _, row := range r.Tiles {
		if len(row) != r.Width {
			return true
		}
	}
	return false
}

// anyRoomID picks a deterministic fallback room, preferring the origin.
func anyRoomID(s *game.State) string {
	if _, ok := s.Dungeon.Rooms["0,0"]; ok {
		return "0,0"
	}
	ids := make([]string, 0, len(s.Dungeon.Rooms))
	for id := range s.Dungeon.Rooms {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids[0]
}

// applyParty overlays the snapshot's heroes onto the fallback party,
// repairing each record as it goes.
func applyParty(s *game.State, snap *Snapshot, itemCatalog *items.Catalog) {
	taken := make(map[string]bool)

	for i := 0; i < party.Size; i++ {
		base := s.Party.Heroes[i]
		if i < len(snap.Party.Heroes) && snap.Party.Heroes[i] != nil {
			repairHero(s, snap.Party.Heroes[i], base, itemCatalog, taken)
			s.Party.Heroes[i] = snap.Party.Heroes[i]
		} else {
			base.RoomID = s.Dungeon.CurrentRoomID
			base.Tile = validTile(s, base.RoomID, base.Tile, taken)
		}
		placed := s.Party.Heroes[i]
		taken[placed.RoomID+"/"+placed.Tile.Key()] = true
	}
	s.Party.Heroes = s.Party.Heroes[:party.Size]

	index := snap.Party.ActiveHeroIndex
	if index < 0 {
		index = 0
	}
	if index >= party.Size {
		index = party.Size - 1
	}
	s.Party.ActiveHeroIndex = index
}

// repairHero fills missing fields of a persisted hero from the fallback
// hero holding the same slot and forces position and equipment back into
// the valid range.
func repairHero(s *game.State, h, base *hero.Hero, itemCatalog *items.Catalog, taken map[string]bool) {
	if h.ID == "" {
		h.ID = base.ID
	}
	if h.ClassLetter == "" {
		h.ClassLetter = base.ClassLetter
	}
	if !h.ClassName.IsValid() {
		h.ClassName = base.ClassName
	}
	if !h.RaceName.IsValid() {
		h.RaceName = base.RaceName
	}
	if h.MaxHP <= 0 {
		stats := h.RaceName.Stats()
		h.MaxHP = stats.MaxHP
		h.Body = stats.Body
		h.Mind = stats.Mind
	}
	if h.HP <= 0 || h.HP > h.MaxHP {
		h.HP = h.MaxHP
	}
	if !h.Facing.IsValid() {
		h.Facing = grid.South
	}

	if _, ok := s.Dungeon.Rooms[h.RoomID]; !ok {
		h.RoomID = s.Dungeon.CurrentRoomID
	}
	h.Tile = validTile(s, h.RoomID, h.Tile, taken)

	sanitizeEquipment(&h.Equipment, itemCatalog)
}

// validTile returns the hero's tile when it is walkable and free, otherwise
// the nearest free walkable tile to the room center.
func validTile(s *game.State, roomID string, tile grid.Coord, taken map[string]bool) grid.Coord {
	r, ok := s.Dungeon.Rooms[roomID]
	if !ok {
		return tile
	}
	if r.CanWalk(tile) && !taken[roomID+"/"+tile.Key()] {
		return tile
	}

	candidates, err := r.ClosestWalkable(r.Center(), party.Size)
	if err != nil {
		return tile
	}
	for _, c := range candidates {
		if !taken[roomID+"/"+c.Key()] {
			return c
		}
	}
	return tile
}

// sanitizeEquipment drops item ids the catalog does not know and enforces
// slot rules loose snapshots might violate.
func sanitizeEquipment(eq *hero.Equipment, catalog *items.Catalog) {
	keepSlot := func(id string, valid func(*items.Item) bool) string {
		if id == "" {
			return ""
		}
		item, ok := catalog.Get(id)
		if !ok || !valid(item) {
			return ""
		}
		return id
	}

	eq.Armor = keepSlot(eq.Armor, func(i *items.Item) bool {
		return i.Category == items.CategoryArmor && !i.Shield
	})
	eq.LeftHand = keepSlot(eq.LeftHand, (*items.Item).HandEquippable)
	eq.RightHand = keepSlot(eq.RightHand, (*items.Item).HandEquippable)
	eq.Relic = keepSlot(eq.Relic, func(i *items.Item) bool { return i.Relic })

	// A two-handed weapon persisted in one hand only is dropped entirely.
	if eq.LeftHand != eq.RightHand {
		if item, ok := catalog.Get(eq.LeftHand); ok && item.TwoHanded() {
			eq.LeftHand = ""
		}
		if item, ok := catalog.Get(eq.RightHand); ok && item.TwoHanded() {
			eq.RightHand = ""
		}
	}

	backpack := make([]string, 0, len(eq.Backpack))
	for _, id := range eq.Backpack {
		if catalog.Has(id) {
			backpack = append(backpack, id)
		}
	}
	eq.Backpack = backpack
}
