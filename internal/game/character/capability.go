package character

import (
	"errors"
	"fmt"
)

// ErrIncapable is returned when a character is asked to fill a role its kind
// cannot perform.
var ErrIncapable = errors.New("character lacks capability")

// Named is anything with a display name.
type Named interface {
	Name() string
}

// Combatant is anything that can be harmed in battle.
type Combatant interface {
	Named
	Health() int
	TakeDamage(amount int)
}

// Distractible is a combatant exposing a settable distraction flag.
type Distractible interface {
	Combatant
	IsDistracted() bool
	SetDistracted(distracted bool)
}

// Attacker can strike a combatant, returning the narration.
type Attacker interface {
	Combatant
	Attack(target Combatant) string
}

// Distracter can distract a target, returning the narration.
type Distracter interface {
	Named
	Distract(target Distractible) string
}

// Character is the capability set shared by every variant.
type Character interface {
	Combatant
	ID() string
	Kind() Kind
	Location() int
	Strength() int
	Intellect() int
	Run() string
	Speak(words ...string) string
	Debut() string
}

// AsAttacker returns c as an Attacker.
//
// Postcondition: Returns a non-nil Attacker, or an error wrapping ErrIncapable.
func AsAttacker(c Character) (Attacker, error) {
	if a, ok := c.(Attacker); ok {
		return a, nil
	}
	return nil, incapable(c, "attack")
}

// AsDistracter returns c as a Distracter.
//
// Postcondition: Returns a non-nil Distracter, or an error wrapping ErrIncapable.
func AsDistracter(c Character) (Distracter, error) {
	if d, ok := c.(Distracter); ok {
		return d, nil
	}
	return nil, incapable(c, "distract")
}

// AsDistractible returns c as a Distractible.
//
// Postcondition: Returns a non-nil Distractible, or an error wrapping ErrIncapable.
func AsDistractible(c Character) (Distractible, error) {
	if d, ok := c.(Distractible); ok {
		return d, nil
	}
	return nil, incapable(c, "be distracted")
}

func incapable(c Character, what string) error {
	if c == nil {
		return fmt.Errorf("%w: nil character cannot %s", ErrIncapable, what)
	}
	return fmt.Errorf("%w: %s %q cannot %s", ErrIncapable, c.Kind(), c.Name(), what)
}
