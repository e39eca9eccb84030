package scene

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/wayfarers/internal/game/character"
	"github.com/cory-johannsen/wayfarers/internal/narrate"
)

// DefaultMaxTurns bounds the combat loop when no limit is configured.
const DefaultMaxTurns = 100

// Antagonist attacks and can be distracted.
type Antagonist interface {
	character.Attacker
	character.Distractible
}

// Options tune a Director. The zero value is valid: no turn limit, ties to the
// antagonist, no hook, no logging.
type Options struct {
	// MaxTurns bounds the combat loop; 0 means unbounded.
	MaxTurns  int
	TiePolicy TiePolicy
	Hook      TurnHook
	Logger    *zap.Logger
}

// Director sequences the battle between a protagonist, their sidekick and
// an antagonist.
//
// Invariant: phase only moves forward.
type Director struct {
	protagonist character.Attacker
	sidekick    character.Distracter
	antagonist  Antagonist
	narrator    narrate.Narrator
	opts        Options
	logger      *zap.Logger

	phase Phase
	turns int
}

// New validates the roles and returns a Director in PhaseIntro. Nothing is
// narrated until Intro or Run is called.
//
// Precondition: narrator must be non-nil.
// Postcondition: Returns a Director, or an error wrapping ErrMissingRole or
// character.ErrIncapable that names the offending role.
func New(protagonist, sidekick, antagonist character.Character, narrator narrate.Narrator, opts Options) (*Director, error) {
	if protagonist == nil {
		return nil, fmt.Errorf("scene: protagonist: %w", ErrMissingRole)
	}
	if sidekick == nil {
		return nil, fmt.Errorf("scene: sidekick: %w", ErrMissingRole)
	}
	if antagonist == nil {
		return nil, fmt.Errorf("scene: antagonist: %w", ErrMissingRole)
	}

	hero, err := character.AsAttacker(protagonist)
	if err != nil {
		return nil, fmt.Errorf("scene: protagonist: %w", err)
	}
	pal, err := character.AsDistracter(sidekick)
	if err != nil {
		return nil, fmt.Errorf("scene: sidekick: %w", err)
	}
	if _, err := character.AsAttacker(antagonist); err != nil {
		return nil, fmt.Errorf("scene: antagonist: %w", err)
	}
	if _, err := character.AsDistractible(antagonist); err != nil {
		return nil, fmt.Errorf("scene: antagonist: %w", err)
	}
	if opts.MaxTurns < 0 {
		return nil, fmt.Errorf("scene: max turns must be >= 0, got %d", opts.MaxTurns)
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Director{
		protagonist: hero,
		sidekick:    pal,
		antagonist:  antagonist.(Antagonist),
		narrator:    narrator,
		opts:        opts,
		logger:      logger,
	}, nil
}

// Phase returns the current phase.
func (d *Director) Phase() Phase { return d.phase }

// Turns returns the number of completed turns.
func (d *Director) Turns() int { return d.turns }

// Intro narrates the one-time encounter text and enters PhaseCombat.
// Calling it again is a no-op.
func (d *Director) Intro() {
	if d.phase != PhaseIntro {
		return
	}
	a, p := d.antagonist.Name(), d.protagonist.Name()
	d.narrator.Narrate(narrate.ToneStory, fmt.Sprintf(
		"%s flaps his mighty wings and descends before the frightened wayfarers. "+
			"'7, 11, 17, 3!', he putters, fluent only in primes. "+
			"But %s understands every syllable. "+
			"%s is hungry. And hungry dragons need to eat.", a, p, a))
	d.phase = PhaseCombat
}

// Concluded reports the termination predicate: either combatant at or below zero health.
func (d *Director) Concluded() bool {
	return d.antagonist.Health() <= 0 || d.protagonist.Health() <= 0
}

// PlayTurn runs one four-step turn: the antagonist attacks, the sidekick
// distracts it, the antagonist attacks again, the protagonist strikes back.
// The hook, if any, runs afterwards.
//
// Precondition: Intro has been called.
// Postcondition: Turns() is incremented by one.
func (d *Director) PlayTurn() {
	d.narrator.Narrate(narrate.ToneAction, d.antagonist.Attack(d.protagonist))
	d.narrator.Narrate(narrate.ToneAction, d.sidekick.Distract(d.antagonist))
	d.narrator.Narrate(narrate.ToneAction, d.antagonist.Attack(d.protagonist))
	d.narrator.Narrate(narrate.ToneAction, d.protagonist.Attack(d.antagonist))
	d.turns++

	d.logger.Debug("turn complete",
		zap.Int("turn", d.turns),
		zap.Int("protagonist_health", d.protagonist.Health()),
		zap.Int("antagonist_health", d.antagonist.Health()),
		zap.Bool("antagonist_distracted", d.antagonist.IsDistracted()),
	)
	if d.opts.Hook != nil {
		d.opts.Hook.AfterTurn(d.turns)
	}
}

// Resolve compares health, narrates the result and enters PhaseDone.
// Strictly greater health wins; equal health follows the TiePolicy.
//
// Postcondition: Returns the Outcome; Phase() == PhaseDone.
func (d *Director) Resolve() Outcome {
	d.phase = PhaseResolution
	out := Outcome{
		Turns:             d.turns,
		ProtagonistHealth: d.protagonist.Health(),
		AntagonistHealth:  d.antagonist.Health(),
	}

	switch {
	case out.ProtagonistHealth > out.AntagonistHealth:
		out.Winner = d.protagonist.Name()
	case out.AntagonistHealth > out.ProtagonistHealth:
		out.Winner = d.antagonist.Name()
	case d.opts.TiePolicy == TieProtagonist:
		out.Winner = d.protagonist.Name()
	case d.opts.TiePolicy == TieDraw:
		out.Draw = true
	default:
		out.Winner = d.antagonist.Name()
	}

	if out.Draw {
		d.narrator.Narrate(narrate.ToneVictory, fmt.Sprintf(
			"Neither %s nor %s prevails. The forest falls silent.", d.protagonist.Name(), d.antagonist.Name()))
	} else {
		d.narrator.Narrate(narrate.ToneVictory, fmt.Sprintf("%s emerges victorious! Sweet relief!", out.Winner))
	}
	d.phase = PhaseDone
	return out
}

// Run plays the whole scene: Intro, turns until Concluded, then Resolve.
// The predicate is checked before every turn, so a battle that starts
// concluded plays zero turns.
//
// Postcondition: on success Phase() == PhaseDone. Returns ErrTurnLimit
// (without resolving) when MaxTurns turns pass inconclusively, or the
// context error if ctx is cancelled between turns.
func (d *Director) Run(ctx context.Context) (Outcome, error) {
	d.logger.Info("battle starting",
		zap.String("protagonist", d.protagonist.Name()),
		zap.String("sidekick", d.sidekick.Name()),
		zap.String("antagonist", d.antagonist.Name()),
		zap.Int("max_turns", d.opts.MaxTurns),
		zap.Stringer("tie_policy", d.opts.TiePolicy),
	)
	d.Intro()

	for !d.Concluded() {
		if err := ctx.Err(); err != nil {
			return d.partial(), fmt.Errorf("battle interrupted after %d turns: %w", d.turns, err)
		}
		if d.opts.MaxTurns > 0 && d.turns >= d.opts.MaxTurns {
			d.narrator.Narrate(narrate.ToneWarning, "The battle rages on without end.")
			d.logger.Warn("turn limit reached",
				zap.Int("turns", d.turns),
				zap.Int("protagonist_health", d.protagonist.Health()),
				zap.Int("antagonist_health", d.antagonist.Health()),
			)
			return d.partial(), ErrTurnLimit
		}
		d.PlayTurn()
	}

	out := d.Resolve()
	d.logger.Info("battle resolved",
		zap.String("winner", out.Winner),
		zap.Bool("draw", out.Draw),
		zap.Int("turns", out.Turns),
	)
	return out, nil
}

func (d *Director) partial() Outcome {
	return Outcome{
		Turns:             d.turns,
		ProtagonistHealth: d.protagonist.Health(),
		AntagonistHealth:  d.antagonist.Health(),
	}
}
