// Package cast loads cast files: the character records of a story plus which
// of them play the protagonist, sidekick and antagonist.
package cast

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/wayfarers/internal/game/character"
)

//go:embed default_cast.yaml
var defaultCast []byte

// File is the on-disk shape of a cast file.
type File struct {
	Protagonist string             `yaml:"protagonist"`
	Sidekick    string             `yaml:"sidekick"`
	Antagonist  string             `yaml:"antagonist"`
	Characters  []character.Config `yaml:"characters"`
}

// Validate checks every character record, name uniqueness, and that each
// role names a distinct listed character.
//
// Postcondition: Returns nil iff the file can be built; otherwise an error
// naming the first offending entry or field.
func (f *File) Validate() error {
	if len(f.Characters) == 0 {
		return fmt.Errorf("cast: characters must not be empty")
	}
	seen := make(map[string]int, len(f.Characters))
	for i, c := range f.Characters {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("cast: characters[%d]: %w", i, err)
		}
		if prev, dup := seen[c.Name]; dup {
			return fmt.Errorf("cast: characters[%d]: name %q already used by characters[%d]", i, c.Name, prev)
		}
		seen[c.Name] = i
	}
	roles := []struct{ field, name string }{
		{"protagonist", f.Protagonist},
		{"sidekick", f.Sidekick},
		{"antagonist", f.Antagonist},
	}
	for _, role := range roles {
		if role.name == "" {
			return fmt.Errorf("cast: %s must not be empty", role.field)
		}
		if _, ok := seen[role.name]; !ok {
			return fmt.Errorf("cast: %s %q is not listed in characters", role.field, role.name)
		}
	}
	for i, a := range roles {
		for _, b := range roles[i+1:] {
			if a.name == b.name {
				return fmt.Errorf("cast: %s and %s are both %q; each role needs its own character", a.field, b.field, a.name)
			}
		}
	}
	return nil
}

// LoadFromBytes parses and validates a cast file from raw YAML.
//
// Postcondition: Returns a validated *File or an error.
func LoadFromBytes(data []byte) (*File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("parsing cast YAML: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Load reads and validates the cast file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading cast %q: %w", path, err)
	}
	f, err := LoadFromBytes(data)
	if err != nil {
		return nil, fmt.Errorf("loading %q: %w", path, err)
	}
	return f, nil
}

// Default returns the cast compiled into the binary.
func Default() *File {
	f, err := LoadFromBytes(defaultCast)
	if err != nil {
		panic("cast: embedded default cast is invalid: " + err.Error())
	}
	return f
}

// Cast is a built cast: characters in file order and the three roles.
type Cast struct {
	Characters  []character.Character
	Protagonist character.Character
	Sidekick    character.Character
	Antagonist  character.Character
}

// Build constructs every character with b and resolves the roles.
//
// Precondition: f has passed Validate; b must be non-nil.
// Postcondition: Returns a Cast whose roles point into Characters, or an error.
func (f *File) Build(b *character.Builder) (*Cast, error) {
	c := &Cast{Characters: make([]character.Character, 0, len(f.Characters))}
	byName := make(map[string]character.Character, len(f.Characters))
	for i, cfg := range f.Characters {
		built, err := b.Build(cfg)
		if err != nil {
			return nil, fmt.Errorf("cast: characters[%d]: %w", i, err)
		}
		c.Characters = append(c.Characters, built)
		byName[built.Name()] = built
	}
	c.Protagonist = byName[f.Protagonist]
	c.Sidekick = byName[f.Sidekick]
	c.Antagonist = byName[f.Antagonist]
	return c, nil
}

// Find returns the character called name, or nil.
func (c *Cast) Find(name string) character.Character {
	for _, ch := range c.Characters {
		if ch.Name() == name {
			return ch
		}
	}
	return nil
}
