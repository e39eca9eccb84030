package character

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/cory-johannsen/wayfarers/internal/game/dice"
)

// DefaultChargeDamage is the warrior charge roll when none is configured: 0 to 4.
const DefaultChargeDamage = "1d5-1"

// DefaultCatHealth is the health a cat starts with when none is configured.
const DefaultCatHealth = 9

// Config is the construction record for one character, as found in cast files.
//
// Health is a pointer so that an explicit zero can be told apart from a
// missing value.
type Config struct {
	Kind         string `yaml:"kind"`
	Name         string `yaml:"name"`
	Health       *int   `yaml:"health"`
	Strength     int    `yaml:"strength"`
	Intellect    int    `yaml:"intellect"`
	Faction      string `yaml:"faction"`
	Weapon       string `yaml:"weapon"`
	Armor        string `yaml:"armor"`
	ChargeDamage string `yaml:"charge_damage"`
}

// Validate checks the record for the given kind without building it.
//
// Postcondition: Returns nil iff Build would succeed; the error names the
// offending field.
func (c Config) Validate() error {
	kind, err := ParseKind(c.Kind)
	if err != nil {
		if c.Name == "" {
			return fmt.Errorf("character: %w", err)
		}
		return fmt.Errorf("character %q: %w", c.Name, err)
	}
	if c.Name == "" {
		return errors.New("character: name must not be empty")
	}
	if c.Health == nil && kind != KindCat {
		return fmt.Errorf("character %q: health must be set for a %s", c.Name, kind)
	}
	if kind == KindWarrior && c.ChargeDamage != "" {
		expr, err := dice.Parse(c.ChargeDamage)
		if err != nil {
			return fmt.Errorf("character %q: charge_damage: %w", c.Name, err)
		}
		if expr.Min() < 0 {
			return fmt.Errorf("character %q: charge_damage %q can roll below zero (min %d)", c.Name, c.ChargeDamage, expr.Min())
		}
	}
	return nil
}

// Builder constructs characters from Config records, injecting the shared
// randomness and identifiers.
type Builder struct {
	chooser dice.Chooser
	roller  *dice.Roller
	newID   func() string
}

// NewBuilder returns a Builder that hands chooser and roller to every character.
//
// Precondition: chooser and roller must be non-nil.
func NewBuilder(chooser dice.Chooser, roller *dice.Roller) *Builder {
	return &Builder{chooser: chooser, roller: roller, newID: uuid.NewString}
}

// Build validates cfg and constructs the matching variant.
//
// Postcondition: Returns a Character with Location() == 0, or a non-nil error
// naming the missing or invalid field.
func (b *Builder) Build(cfg Config) (Character, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	kind, _ := ParseKind(cfg.Kind)
	switch kind {
	case KindHuman:
		return b.human(cfg, KindHuman), nil
	case KindWizard:
		return &Wizard{Human: *b.human(cfg, KindWizard)}, nil
	case KindWarrior:
		return b.warrior(cfg), nil
	case KindDragon:
		return &Dragon{Vitals: b.vitals(cfg, KindDragon), distracted: true, chooser: b.chooser}, nil
	default:
		return &Cat{Vitals: b.vitals(cfg, KindCat), chooser: b.chooser}, nil
	}
}

// NewWizard builds a wizard, ignoring cfg.Kind.
func (b *Builder) NewWizard(cfg Config) (*Wizard, error) {
	c, err := b.buildAs(cfg, KindWizard)
	if err != nil {
		return nil, err
	}
	return c.(*Wizard), nil
}

// NewWarrior builds a warrior, ignoring cfg.Kind.
func (b *Builder) NewWarrior(cfg Config) (*Warrior, error) {
	c, err := b.buildAs(cfg, KindWarrior)
	if err != nil {
		return nil, err
	}
	return c.(*Warrior), nil
}

// NewDragon builds a dragon, ignoring cfg.Kind.
func (b *Builder) NewDragon(cfg Config) (*Dragon, error) {
	c, err := b.buildAs(cfg, KindDragon)
	if err != nil {
		return nil, err
	}
	return c.(*Dragon), nil
}

// NewCat builds a cat, ignoring cfg.Kind.
func (b *Builder) NewCat(cfg Config) (*Cat, error) {
	c, err := b.buildAs(cfg, KindCat)
	if err != nil {
		return nil, err
	}
	return c.(*Cat), nil
}

// NewHuman builds a plain human, ignoring cfg.Kind.
func (b *Builder) NewHuman(cfg Config) (*Human, error) {
	c, err := b.buildAs(cfg, KindHuman)
	if err != nil {
		return nil, err
	}
	return c.(*Human), nil
}

func (b *Builder) buildAs(cfg Config, kind Kind) (Character, error) {
	cfg.Kind = kind.String()
	return b.Build(cfg)
}

func (b *Builder) vitals(cfg Config, kind Kind) Vitals {
	health := DefaultCatHealth
	if cfg.Health != nil {
		health = *cfg.Health
	}
	return Vitals{
		id:        b.newID(),
		kind:      kind,
		name:      cfg.Name,
		health:    health,
		strength:  cfg.Strength,
		intellect: cfg.Intellect,
	}
}

func (b *Builder) human(cfg Config, kind Kind) *Human {
	return &Human{Vitals: b.vitals(cfg, kind), Faction: cfg.Faction, chooser: b.chooser}
}

func (b *Builder) warrior(cfg Config) *Warrior {
	expr := cfg.ChargeDamage
	if expr == "" {
		expr = DefaultChargeDamage
	}
	// Validate has already parsed a non-empty expression.
	charge, _ := dice.Parse(expr)
	return &Warrior{
		Human:  *b.human(cfg, KindWarrior),
		Weapon: cfg.Weapon,
		Armor:  cfg.Armor,
		charge: charge,
		roller: b.roller,
	}
}

// IntPtr returns a pointer to v, for filling Config.Health in code.
func IntPtr(v int) *int { return &v }
