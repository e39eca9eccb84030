// Package scene runs the scripted climactic battle: an intro, a four-step
// combat loop checked before every turn, and a resolution naming the winner.
package scene

import (
	"errors"
	"fmt"
	"strings"
)

// Phase is the director's position in the Intro → Combat → Resolution sequence.
type Phase int

const (
	PhaseIntro Phase = iota
	PhaseCombat
	PhaseResolution
	PhaseDone
)

// String returns the phase label.
func (p Phase) String() string {
	switch p {
	case PhaseIntro:
		return "intro"
	case PhaseCombat:
		return "combat"
	case PhaseResolution:
		return "resolution"
	case PhaseDone:
		return "done"
	default:
		return "unknown"
	}
}

// TiePolicy decides the outcome when both combatants end on equal health.
// The zero value awards the antagonist, matching a strict "protagonist has
// more health" comparison.
type TiePolicy int

const (
	TieAntagonist TiePolicy = iota
	TieProtagonist
	TieDraw
)

// String returns the config name of the policy.
func (t TiePolicy) String() string {
	switch t {
	case TieAntagonist:
		return "antagonist"
	case TieProtagonist:
		return "protagonist"
	case TieDraw:
		return "draw"
	default:
		return "unknown"
	}
}

// ParseTiePolicy maps a config value to a TiePolicy.
func ParseTiePolicy(s string) (TiePolicy, error) {
	switch strings.ToLower(s) {
	case "antagonist":
		return TieAntagonist, nil
	case "protagonist":
		return TieProtagonist, nil
	case "draw":
		return TieDraw, nil
	default:
		return TieAntagonist, fmt.Errorf("tie policy must be one of [antagonist, protagonist, draw], got %q", s)
	}
}

var (
	// ErrTurnLimit is returned by Run when neither combatant falls within MaxTurns.
	ErrTurnLimit = errors.New("battle did not conclude within the turn limit")
	// ErrMissingRole is returned by New when a role is unfilled.
	ErrMissingRole = errors.New("scene role missing")
)

// Outcome summarizes a finished battle.
type Outcome struct {
	// Winner is the victor's name; empty for a draw.
	Winner            string
	Draw              bool
	Turns             int
	ProtagonistHealth int
	AntagonistHealth  int
}

// TurnHook is notified after every completed turn.
type TurnHook interface {
	AfterTurn(turn int)
}

// TurnHookFunc adapts a function to TurnHook.
type TurnHookFunc func(turn int)

// AfterTurn calls f(turn).
func (f TurnHookFunc) AfterTurn(turn int) { f(turn) }
