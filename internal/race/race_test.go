package race

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultStats(t *testing.T) {
	tests := []struct {
		race  Race
		maxHP int
		body  int
		mind  int
	}{
		{Human, 10, 3, 3},
		{Elf, 8, 2, 4},
		{Orc, 12, 4, 2},
	}
	for _, tt := range tests {
		stats := tt.race.Stats()
		if stats.MaxHP != tt.maxHP {
			t.Errorf("%s MaxHP = %d, want %d", tt.race, stats.MaxHP, tt.maxHP)
		}
		if stats.Body != tt.body {
			t.Errorf("%s Body = %d, want %d", tt.race, stats.Body, tt.body)
		}
		if stats.Mind != tt.mind {
			t.Errorf("%s Mind = %d, want %d", tt.race, stats.Mind, tt.mind)
		}
	}
}

func TestIsValid(t *testing.T) {
	if !Human.IsValid() {
		t.Error("Human should be valid")
	}
	if Race("Goblin").IsValid() {
		t.Error("Goblin should not be valid")
	}
}

func TestUnknownRaceFallsBack(t *testing.T) {
	stats := Race("Goblin").Stats()
	if stats.MaxHP != 10 {
		t.Errorf("unknown race MaxHP = %d, want Human fallback 10", stats.MaxHP)
	}
	if got := Race("Goblin").String(); got != "Unknown" {
		t.Errorf("unknown race String() = %q, want Unknown", got)
	}
}

func TestParse(t *testing.T) {
	r, err := Parse("  elf ")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if r != Elf {
		t.Errorf("Parse = %s, want Elf", r)
	}
	if _, err := Parse("kobold"); err == nil {
		t.Error("Parse should reject unknown race")
	}
}

func TestLoadFromYAML(t *testing.T) {
	t.Cleanup(func() { SetConfig(nil) })

	path := filepath.Join(t.TempDir(), "races.yaml")
	content := `races:
  Dwarf:
    name: Dwarf
    max_hp: 14
    body: 5
    mind: 1
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	config, err := LoadFromYAML(path)
	if err != nil {
		t.Fatalf("LoadFromYAML failed: %v", err)
	}
	if len(config.Races) != 1 {
		t.Fatalf("got %d races, want 1", len(config.Races))
	}

	dwarf := Race("Dwarf")
	if !dwarf.IsValid() {
		t.Error("loaded race should be valid")
	}
	if stats := dwarf.Stats(); stats.MaxHP != 14 || stats.Body != 5 {
		t.Errorf("Dwarf stats = %+v, want max_hp 14 body 5", stats)
	}
	// The loaded catalog replaced the defaults.
	if Human.IsValid() {
		t.Error("Human should no longer be valid after replacement catalog load")
	}
}

func TestLoadFromYAMLErrors(t *testing.T) {
	t.Cleanup(func() { SetConfig(nil) })

	if _, err := LoadFromYAML(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file should fail")
	}

	path := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(path, []byte("races: {}"), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := LoadFromYAML(path); err == nil {
		t.Error("catalog without races should fail")
	}
}
