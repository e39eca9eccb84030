// Package prologue introduces the cast before the battle begins.
package prologue

import (
	"fmt"
	"strings"

	"github.com/cory-johannsen/wayfarers/internal/game/character"
	"github.com/cory-johannsen/wayfarers/internal/game/dice"
	"github.com/cory-johannsen/wayfarers/internal/narrate"
)

const (
	// Opening is narrated when a Prologue is created.
	Opening = "Our adventure has begun.."
	// JourneyClosing ends the journey-forth sentence.
	JourneyClosing = "set forth on their journey!"
	// nameJoiner joins roster names in the journey-forth sentence.
	nameJoiner = " and "
)

// openers are the first steps a traveller takes on leaving.
var openers = []string{
	"takes their first bold steps",
	"leaves the shire",
	"finally gets out of bed",
}

// Prologue holds the ordered roster of characters entering the story.
//
// Invariant: roster preserves registration order.
type Prologue struct {
	narrator narrate.Narrator
	roster   []character.Named
}

// New creates an empty Prologue and narrates the Opening.
//
// Precondition: narrator must be non-nil.
func New(narrator narrate.Narrator) *Prologue {
	narrator.Narrate(narrate.ToneStory, Opening)
	return &Prologue{narrator: narrator}
}

// Enlist appends c to the roster without narration.
//
// Precondition: c must be non-nil.
func (p *Prologue) Enlist(c character.Named) {
	p.roster = append(p.roster, c)
}

// IntroduceCharacter appends c to the roster and narrates its introduction.
//
// Precondition: c must be non-nil.
// Postcondition: c is the last roster entry; the returned line was narrated.
func (p *Prologue) IntroduceCharacter(c character.Named) string {
	p.Enlist(c)
	line := introduction(c)
	p.narrator.Narrate(narrate.ToneStory, line)
	return line
}

// JourneyForth narrates every roster name joined by " and ", then JourneyClosing.
// With an empty roster the name segment is empty and the sentence begins
// with a space: " set forth on their journey!".
func (p *Prologue) JourneyForth() string {
	names := make([]string, len(p.roster))
	for i, c := range p.roster {
		names[i] = c.Name()
	}
	line := strings.Join(names, nameJoiner) + " " + JourneyClosing
	p.narrator.Narrate(narrate.ToneStory, line)
	return line
}

// BeginStory narrates an introduction for every roster entry in
// registration order, then the journey-forth sentence. The roster is not
// modified.
func (p *Prologue) BeginStory() []string {
	lines := make([]string, 0, len(p.roster)+1)
	for _, c := range p.roster {
		line := introduction(c)
		p.narrator.Narrate(narrate.ToneStory, line)
		lines = append(lines, line)
	}
	return append(lines, p.JourneyForth())
}

// Roster returns a copy of the roster in registration order.
func (p *Prologue) Roster() []character.Named {
	cp := make([]character.Named, len(p.roster))
	copy(cp, p.roster)
	return cp
}

// Depart narrates one randomly chosen opener per roster entry, in
// registration order.
//
// Precondition: chooser must be non-nil.
// Postcondition: len(result) == len(Roster()).
func (p *Prologue) Depart(chooser dice.Chooser) []string {
	lines := make([]string, 0, len(p.roster))
	for _, c := range p.roster {
		line := c.Name() + " " + chooser.Choose("journey opener", openers)
		p.narrator.Narrate(narrate.ToneStory, line)
		lines = append(lines, line)
	}
	return lines
}

func introduction(c character.Named) string {
	return fmt.Sprintf("%s has entered the story!", c.Name())
}
