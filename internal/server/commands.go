package server

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/simplehero/dungeon/internal/game"
	"github.com/simplehero/dungeon/internal/grid"
	"github.com/simplehero/dungeon/internal/room"
	"github.com/simplehero/dungeon/internal/snapshot"
)

// Command is one JSON message from a client.
type Command struct {
	Type string `json:"type"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
	Hero int    `json:"hero"`
	Slot string `json:"slot"`
}

// Command types accepted from clients.
const (
	CommandHover  = "hover"
	CommandCommit = "commit"
	CommandHero   = "hero"
	CommandState  = "state"
	CommandSave   = "save"
	CommandLoad   = "load"
	CommandSaves  = "saves"
	CommandDelete = "delete"
)

// StateFrame is the full render view pushed to clients.
type StateFrame struct {
	Type            string                `json:"type"`
	Tick            uint64                `json:"tick"`
	Seed            uint32                `json:"seed"`
	RoomID          string                `json:"roomId"`
	Floor           int                   `json:"floor"`
	TotalFloors     int                   `json:"totalFloors"`
	Room            *room.Room            `json:"room"`
	DiscoveredRooms []string              `json:"discoveredRooms"`
	Heroes          []game.HeroView       `json:"heroes"`
	ActiveHeroIndex int                   `json:"activeHeroIndex"`
	HoverPath       []grid.Coord          `json:"hoverPath,omitempty"`
	MovingPath      []grid.Coord          `json:"movingPath,omitempty"`
	Inventory       []game.InventoryEntry `json:"inventory"`
}

// ErrorFrame reports a rejected command to the client that sent it.
type ErrorFrame struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// SaveEntry is one save slot in a SavesFrame.
type SaveEntry struct {
	Slot    string    `json:"slot"`
	Seed    uint32    `json:"seed"`
	SavedAt time.Time `json:"savedAt"`
}

// SavesFrame lists the stored save slots.
type SavesFrame struct {
	Type  string      `json:"type"`
	Saves []SaveEntry `json:"saves"`
}

// handleMessage decodes and applies one client message, returning the frame
// to send back. Malformed input and failed commands produce an ErrorFrame,
// never an error; the session stays up.
func (s *Server) handleMessage(message []byte) any {
	var cmd Command
	if err := json.Unmarshal(message, &cmd); err != nil {
		return ErrorFrame{Type: "error", Message: "malformed command"}
	}

	frame, err := s.applyCommand(cmd)
	if err != nil {
		return ErrorFrame{Type: "error", Message: err.Error()}
	}
	return frame
}

// applyCommand runs one command against the state under the state lock.
func (s *Server) applyCommand(cmd Command) (any, error) {
	switch cmd.Type {
	case CommandHover:
		s.mu.Lock()
		defer s.mu.Unlock()
		if err := s.state.UpdateHoverPath(grid.Coord{X: cmd.X, Y: cmd.Y}); err != nil {
			return nil, err
		}
		return s.buildFrameLocked(), nil

	case CommandCommit:
		s.mu.Lock()
		defer s.mu.Unlock()
		s.state.CommitMoveFromHover()
		return s.buildFrameLocked(), nil

	case CommandHero:
		s.mu.Lock()
		defer s.mu.Unlock()
		s.state.SetActiveHeroIndex(cmd.Hero)
		return s.buildFrameLocked(), nil

	case CommandState:
		s.mu.Lock()
		defer s.mu.Unlock()
		return s.buildFrameLocked(), nil

	case CommandSave:
		return s.saveSlot(cmd.Slot)

	case CommandLoad:
		return s.loadSlot(cmd.Slot)

	case CommandSaves:
		if s.db == nil {
			return nil, fmt.Errorf("no save store configured")
		}
		return s.listSaves()

	case CommandDelete:
		if s.db == nil {
			return nil, fmt.Errorf("no save store configured")
		}
		if err := s.db.DeleteSave(cmd.Slot); err != nil {
			return nil, err
		}
		return s.listSaves()

	default:
		return nil, fmt.Errorf("unknown command %q", cmd.Type)
	}
}

func (s *Server) saveSlot(slot string) (any, error) {
	if s.db == nil {
		return nil, fmt.Errorf("no save store configured")
	}

	s.mu.Lock()
	data, err := snapshot.Marshal(s.state)
	seed := s.state.Dungeon.Seed
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	if err := s.db.WriteSave(slot, seed, data); err != nil {
		return nil, err
	}
	return s.listSaves()
}

func (s *Server) loadSlot(slot string) (any, error) {
	if s.db == nil {
		return nil, fmt.Errorf("no save store configured")
	}

	data, err := s.db.ReadSave(slot)
	if err != nil {
		return nil, err
	}

	restored, err := snapshot.Restore(data, s.templates, s.items)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.state = restored
	frame := s.buildFrameLocked()
	s.mu.Unlock()
	return frame, nil
}

func (s *Server) listSaves() (any, error) {
	saves, err := s.db.ListSaves()
	if err != nil {
		return nil, err
	}
	entries := make([]SaveEntry, 0, len(saves))
	for _, info := range saves {
		entries = append(entries, SaveEntry{Slot: info.Slot, Seed: info.Seed, SavedAt: info.SavedAt})
	}
	return SavesFrame{Type: "saves", Saves: entries}, nil
}

// buildFrameLocked assembles a StateFrame. Callers hold s.mu.
func (s *Server) buildFrameLocked() StateFrame {
	st := s.state

	discovered := make([]string, 0, len(st.Dungeon.DiscoveredRoomIDs))
	for id := range st.Dungeon.DiscoveredRoomIDs {
		discovered = append(discovered, id)
	}
	sort.Strings(discovered)

	current, _ := st.CurrentRoom()

	return StateFrame{
		Type:            "state",
		Tick:            s.tick,
		Seed:            st.Dungeon.Seed,
		RoomID:          st.Dungeon.CurrentRoomID,
		Floor:           st.CurrentFloorNumber(),
		TotalFloors:     st.Dungeon.TotalFloors,
		Room:            current,
		DiscoveredRooms: discovered,
		Heroes:          st.HeroViews(),
		ActiveHeroIndex: st.Party.ActiveHeroIndex,
		HoverPath:       st.HoverPath,
		MovingPath:      st.MovingPath,
		Inventory:       st.Inventory,
	}
}
