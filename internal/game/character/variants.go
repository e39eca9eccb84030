package character

import (
	"fmt"
	"strings"

	"github.com/cory-johannsen/wayfarers/internal/game/dice"
)

// Flavor tables. Every pick is a uniform draw through the injected dice.Chooser.
var (
	humanSounds    = []string{"huzzah", "hark", "alas"}
	catSounds      = []string{"meow", "purr", "hiss"}
	dragonSounds   = []string{"7", "11", "17", "3"}
	catDistraction = []string{"jumping off walls", "sand-paper licks", "mind control lol wut"}
)

// Damage dealt by the fixed-damage attacks.
const (
	SpellDamage = 1
	FireDamage  = 3
)

// Human is a speaking character with an optional faction tag.
type Human struct {
	Vitals
	Faction string

	chooser dice.Chooser
}

// Speak returns words joined by spaces, or a random interjection when none
// are given.
//
// Postcondition: with no words, the result is one of humanSounds.
func (h *Human) Speak(words ...string) string {
	if len(words) > 0 {
		return strings.Join(words, " ")
	}
	return h.chooser.Choose("human speech", humanSounds)
}

// Wizard is a Human that learns and casts spells.
type Wizard struct {
	Human
}

// Speak decorates the human speech with " wisely".
func (w *Wizard) Speak(words ...string) string {
	return w.Human.Speak(words...) + " wisely"
}

// Learn raises intellect by one and returns the new value. Unbounded.
func (w *Wizard) Learn() int {
	w.intellect++
	return w.intellect
}

// Read runs teaching (if any) and narrates the book being read.
func (w *Wizard) Read(book string, teaching func()) string {
	if teaching != nil {
		teaching()
	}
	return fmt.Sprintf("%s reads %s", w.name, book)
}

// CastSpell deals SpellDamage to target unconditionally.
//
// Precondition: target must be non-nil.
// Postcondition: target.Health() is reduced by exactly SpellDamage.
func (w *Wizard) CastSpell(target Combatant) string {
	target.TakeDamage(SpellDamage)
	return fmt.Sprintf("%s casts a spell on %s!", w.name, target.Name())
}

// Attack is the wizard's counter-attack: a spell.
func (w *Wizard) Attack(target Combatant) string { return w.CastSpell(target) }

// Warrior is a Human carrying equipment who charges with variable damage.
type Warrior struct {
	Human
	Weapon string
	Armor  string

	charge dice.Expression
	roller *dice.Roller
}

// ChargeDamage returns the dice expression rolled by Charge.
func (w *Warrior) ChargeDamage() dice.Expression { return w.charge }

// Charge rolls the charge expression and applies the result to target.
//
// Precondition: target must be non-nil.
// Postcondition: target.Health() drops by the rolled amount, which lies in
// [ChargeDamage().Min(), ChargeDamage().Max()].
func (w *Warrior) Charge(target Combatant) string {
	damage := w.roller.Roll(w.charge).Total()
	target.TakeDamage(damage)
	return fmt.Sprintf("%s charges %s, causing %d damage.", w.name, target.Name(), damage)
}

// Attack is the warrior's counter-attack: a charge.
func (w *Warrior) Attack(target Combatant) string { return w.Charge(target) }

// Dragon breathes fire unless distracted.
//
// Invariant: distracted is true at construction and is only cleared by
// SetDistracted.
type Dragon struct {
	Vitals

	distracted bool
	chooser    dice.Chooser
}

// IsDistracted reports the distraction flag.
func (d *Dragon) IsDistracted() bool { return d.distracted }

// SetDistracted sets the distraction flag.
func (d *Dragon) SetDistracted(distracted bool) { d.distracted = distracted }

// Speak ignores words; dragons are fluent only in primes.
func (d *Dragon) Speak(...string) string {
	return d.chooser.Choose("dragon speech", dragonSounds)
}

// Debut narrates the dragon's arrival.
func (d *Dragon) Debut() string {
	return fmt.Sprintf("%s lets out a smokey belch", d.name)
}

// BreatheFire deals FireDamage to target unless the dragon is distracted.
//
// Precondition: target must be non-nil.
// Postcondition: if IsDistracted(), target health is unchanged; otherwise it
// drops by exactly FireDamage. The distraction flag is never modified.
func (d *Dragon) BreatheFire(target Combatant) string {
	if d.distracted {
		return fmt.Sprintf("%s is distracted!", d.name)
	}
	target.TakeDamage(FireDamage)
	return fmt.Sprintf("%s breathes fire on %s!", d.name, target.Name())
}

// Attack is the dragon's attack: fire.
func (d *Dragon) Attack(target Combatant) string { return d.BreatheFire(target) }

// Cat is the sidekick. It cannot attack but always manages a distraction.
type Cat struct {
	Vitals

	chooser dice.Chooser
}

// Speak ignores words and returns a random cat sound.
func (c *Cat) Speak(...string) string {
	return c.chooser.Choose("cat speech", catSounds)
}

// Debut is the cat announcing itself.
func (c *Cat) Debut() string { return c.Speak() }

// Distract sets target's distraction flag and narrates a random tactic.
//
// Precondition: target must be non-nil.
// Postcondition: target.IsDistracted() is true, whatever it was before.
func (c *Cat) Distract(target Distractible) string {
	target.SetDistracted(true)
	tactic := c.chooser.Choose("cat distraction", catDistraction)
	return fmt.Sprintf("%s distracts %s with %s", c.name, target.Name(), tactic)
}
