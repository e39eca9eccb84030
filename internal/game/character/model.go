// Package character defines the combatant data model: a shared Vitals record,
// the Human, Wizard, Warrior, Dragon and Cat variants built on it, and the
// capability interfaces the prologue and scene director work against.
package character

import "fmt"

// Kind tags which variant a character is and therefore which capabilities it has.
type Kind int

const (
	KindUnknown Kind = iota // zero value; intentionally invalid
	KindHuman
	KindWizard
	KindWarrior
	KindDragon
	KindCat
)

// String returns the lower-case kind name used in cast files.
func (k Kind) String() string {
	switch k {
	case KindHuman:
		return "human"
	case KindWizard:
		return "wizard"
	case KindWarrior:
		return "warrior"
	case KindDragon:
		return "dragon"
	case KindCat:
		return "cat"
	default:
		return "unknown"
	}
}

// ParseKind maps a cast-file kind name to a Kind.
//
// Postcondition: Returns a valid Kind or an error naming the rejected value.
func ParseKind(s string) (Kind, error) {
	for _, k := range []Kind{KindHuman, KindWizard, KindWarrior, KindDragon, KindCat} {
		if k.String() == s {
			return k, nil
		}
	}
	return KindUnknown, fmt.Errorf("unknown kind %q (want one of human, wizard, warrior, dragon, cat)", s)
}

// RunStep is the distance covered by a single Run.
const RunStep = 5

// Vitals is the identity and statistics record every variant embeds.
//
// Invariant: name never changes after construction; location only grows
// through Run. Health has no floor; defeat is judged by the caller.
type Vitals struct {
	id        string
	kind      Kind
	name      string
	health    int
	location  int
	strength  int
	intellect int
}

// ID returns the identifier assigned at build time.
func (v *Vitals) ID() string { return v.id }

// Kind returns the variant tag.
func (v *Vitals) Kind() Kind { return v.kind }

// Name returns the display name.
func (v *Vitals) Name() string { return v.name }

// Health returns current health. It may be zero or negative.
func (v *Vitals) Health() int { return v.health }

// Location returns the cumulative distance travelled.
func (v *Vitals) Location() int { return v.location }

// Strength returns the strength score. Narrative only.
func (v *Vitals) Strength() int { return v.strength }

// Intellect returns the intellect score. Narrative only.
func (v *Vitals) Intellect() int { return v.intellect }

// TakeDamage lowers health by amount with no floor.
//
// Postcondition: Health() == old Health() - amount.
func (v *Vitals) TakeDamage(amount int) {
	v.health -= amount
}

// Run advances the character by RunStep.
//
// Postcondition: Location() == old Location() + RunStep.
func (v *Vitals) Run() string {
	v.location += RunStep
	return fmt.Sprintf("%s wanders %d paces through the forest", v.name, RunStep)
}

// Debut returns the line narrated when the character first appears. Most
// kinds make no entrance.
func (v *Vitals) Debut() string { return "" }

// String implements fmt.Stringer for logging.
func (v *Vitals) String() string {
	return fmt.Sprintf("%s %q (hp %d)", v.kind, v.name, v.health)
}
