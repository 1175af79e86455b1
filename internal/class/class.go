// Package class defines the hero class catalog.
package class

import (
	"fmt"
	"strings"
)

// Class identifies a hero class.
type Class string

const (
	Warrior Class = "Warrior"
	Ranger  Class = "Ranger"
	Mage    Class = "Mage"
)

// All returns every valid class.
func All() []Class {
	return []Class{Warrior, Ranger, Mage}
}

// IsValid reports whether the class is known.
func (c Class) IsValid() bool {
	switch c {
	case Warrior, Ranger, Mage:
		return true
	default:
		return false
	}
}

// String returns the display name of the class.
func (c Class) String() string {
	if c.IsValid() {
		return string(c)
	}
	return "Unknown"
}

// Letter returns the single-letter tag used on the board and in saves.
func (c Class) Letter() string {
	switch c {
	case Warrior:
		return "W"
	case Ranger:
		return "R"
	case Mage:
		return "M"
	default:
		return "?"
	}
}

// FromLetter resolves a class from its single-letter tag.
func FromLetter(letter string) (Class, bool) {
	switch letter {
	case "W":
		return Warrior, true
	case "R":
		return Ranger, true
	case "M":
		return Mage, true
	default:
		return "", false
	}
}

// Parse parses a string into a Class, case-insensitively.
func Parse(s string) (Class, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "warrior":
		return Warrior, nil
	case "ranger":
		return Ranger, nil
	case "mage":
		return Mage, nil
	default:
		return "", fmt.Errorf("unknown class: %s", s)
	}
}
