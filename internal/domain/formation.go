package domain

import (
	"errors"
	"fmt"
)

// SlotsPerFormation is the number of players on the pitch per side.
const SlotsPerFormation = 5

// Formation is one of the fixed five-slot lineup templates.
type Formation int

const (
	Formation121 Formation = iota
	Formation112
	Formation211
	Formation1111

	NumFormations
)

type formationTemplate struct {
	name        string
	description string
	slots       []Position
}

var formations = [NumFormations]formationTemplate{
	Formation121: {"1-2-1", "Balanced between defence and attack",
		[]Position{Goalkeeper, Defender, Midfielder, Midfielder, Forward}},
	Formation112: {"1-1-2", "Two forwards for explosive attacking play",
		[]Position{Goalkeeper, Defender, Midfielder, Forward, Forward}},
	Formation211: {"2-1-1", "Defence first with two defenders",
		[]Position{Goalkeeper, Defender, Defender, Midfielder, Forward}},
	Formation1111: {"1-1-1-1", "Flexible shape for every situation",
		[]Position{Goalkeeper, Defender, Midfielder, Forward, Midfielder}},
}

func (f Formation) Valid() bool {
	return f >= 0 && f < NumFormations
}

func (f Formation) String() string {
	if !f.Valid() {
		return fmt.Sprintf("Formation(%d)", int(f))
	}
	return formations[f].name
}

func (f Formation) Description() string {
	if !f.Valid() {
		return ""
	}
	return formations[f].description
}

// Slots returns a copy of the formation's positions, goalkeeper first.
func (f Formation) Slots() []Position {
	if !f.Valid() {
		return nil
	}
	return append([]Position(nil), formations[f].slots...)
}

// Validate checks that the template has five slots with exactly one goalkeeper.
func (f Formation) Validate() error {
	if !f.Valid() {
		return fmt.Errorf("unknown formation %d", int(f))
	}
	return validateSlots(f.String(), formations[f].slots)
}

func validateSlots(name string, slots []Position) error {
	if len(slots) != SlotsPerFormation {
		return fmt.Errorf("formation %s: %d slots, want %d", name, len(slots), SlotsPerFormation)
	}
	var keepers int
	for _, p := range slots {
		if p == Goalkeeper {
			keepers++
		}
	}
	if keepers != 1 {
		return fmt.Errorf("formation %s: %d goalkeeper slots, want 1", name, keepers)
	}
	return nil
}

// ValidateFormations checks every shipped template. Any violation is a startup error.
func ValidateFormations() error {
	var errs []error
	for f := Formation(0); f < NumFormations; f++ {
		if err := f.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
