package scripting

import (
	"fmt"

	"github.com/cory-johannsen/wayfarers/internal/game/character"
	"github.com/cory-johannsen/wayfarers/internal/narrate"
)

// Lookup resolves a character by name, returning nil when none matches.
type Lookup func(name string) character.Character

// Bind wires the engine callbacks to the characters reachable through find and
// sends script narration to n in the story tone.
//
// Precondition: find and n must be non-nil.
func (m *Manager) Bind(find Lookup, n narrate.Narrator) {
	m.Narrate = func(msg string) { n.Narrate(narrate.ToneStory, msg) }
	m.Health = func(name string) (int, bool) {
		c := find(name)
		if c == nil {
			return 0, false
		}
		return c.Health(), true
	}
	m.Distracted = func(name string) (bool, bool) {
		c := find(name)
		if c == nil {
			return false, false
		}
		d, err := character.AsDistractible(c)
		if err != nil {
			return false, false
		}
		return d.IsDistracted(), true
	}
	m.SetDistracted = func(name string, distracted bool) error {
		c := find(name)
		if c == nil {
			return fmt.Errorf("no character named %q", name)
		}
		d, err := character.AsDistractible(c)
		if err != nil {
			return err
		}
		d.SetDistracted(distracted)
		return nil
	}
}
