package database

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ErrSaveNotFound is returned when a save slot does not exist.
var ErrSaveNotFound = errors.New("save slot not found")

// SaveInfo describes one save slot without its snapshot payload.
type SaveInfo struct {
	Slot    string
	Seed    uint32
	SavedAt time.Time
}

// WriteSave stores a snapshot under a slot name. Writing an existing slot
// overwrites it; the newest write wins.
func (d *Database) WriteSave(slot string, seed uint32, snapshot []byte) error {
	if slot == "" {
		return fmt.Errorf("save slot name is empty")
	}

	query := d.qb.Build(`
		INSERT INTO saves (slot, seed, snapshot, saved_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (slot) DO UPDATE SET
			seed = excluded.seed,
			snapshot = excluded.snapshot,
			saved_at = excluded.saved_at`)

	if _, err := d.db.Exec(query, slot, int64(seed), string(snapshot), time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to write save %q: %w", slot, err)
	}
	return nil
}

// ReadSave returns the snapshot stored under a slot name.
func (d *Database) ReadSave(slot string) ([]byte, error) {
	query := d.qb.Build(`SELECT snapshot FROM saves WHERE slot = ?`)

	var snapshot string
	err := d.db.QueryRow(query, slot).Scan(&snapshot)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %q", ErrSaveNotFound, slot)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read save %q: %w", slot, err)
	}
	return []byte(snapshot), nil
}

// ListSaves returns all save slots, newest first.
func (d *Database) ListSaves() ([]SaveInfo, error) {
	query := d.qb.Build(`SELECT slot, seed, saved_at FROM saves ORDER BY saved_at DESC, slot ASC`)

	rows, err := d.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list saves: %w", err)
	}
	defer rows.Close()

	var saves []SaveInfo
	for rows.Next() {
		var info SaveInfo
		var seed int64
		if err := rows.Scan(&info.Slot, &seed, &info.SavedAt); err != nil {
			return nil, fmt.Errorf("failed to scan save row: %w", err)
		}
		info.Seed = uint32(seed)
		saves = append(saves, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate saves: %w", err)
	}
	return saves, nil
}

// DeleteSave removes a save slot. Deleting a missing slot is not an error.
func (d *Database) DeleteSave(slot string) error {
	query := d.qb.Build(`DELETE FROM saves WHERE slot = ?`)
	if _, err := d.db.Exec(query, slot); err != nil {
		return fmt.Errorf("failed to delete save %q: %w", slot, err)
	}
	return nil
}
