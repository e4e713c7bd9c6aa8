// Package spell defines spell records, their rarity tints and the catalog the engine selects from.
package spell

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/runecast/vmath"
)

var (
	// ErrInvalidDefinition is returned when a spell record breaks a structural rule
	ErrInvalidDefinition = errors.New("invalid spell definition")

	// ErrUnknownSpell is returned by catalog lookups that match nothing
	ErrUnknownSpell = errors.New("unknown spell")
)

// EssenceCost is one (resource, amount) pair; opaque to the engine
type EssenceCost struct {
	Type   string
	Amount int
}

// Definition is an immutable spell record loaded at session start
type Definition struct {
	ID        string
	Name      string
	Rarity    RarityTier
	Path      []vmath.Point // normalized (0..1, 0..1) reference gesture
	MinDamage int
	MaxDamage int
	Essence   []EssenceCost
}

// Validate checks the structural rules every definition must satisfy
func (d *Definition) Validate() error {
	if d.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidDefinition)
	}
	if len(d.Path) < 2 {
		return fmt.Errorf("%w: spell %q needs at least 2 path points, has %d", ErrInvalidDefinition, d.ID, len(d.Path))
	}
	for i, p := range d.Path {
		if p.X < 0 || p.X > 1 || p.Y < 0 || p.Y > 1 {
			return fmt.Errorf("%w: spell %q point %d (%.3f, %.3f) outside unit square", ErrInvalidDefinition, d.ID, i, p.X, p.Y)
		}
	}
	if d.MinDamage > d.MaxDamage {
		return fmt.Errorf("%w: spell %q min damage %d exceeds max %d", ErrInvalidDefinition, d.ID, d.MinDamage, d.MaxDamage)
	}
	if d.MinDamage < 0 {
		return fmt.Errorf("%w: spell %q has negative min damage", ErrInvalidDefinition, d.ID)
	}
	if !d.Rarity.Valid() {
		return fmt.Errorf("%w: spell %q has rarity %d", ErrInvalidDefinition, d.ID, int(d.Rarity))
	}
	for _, c := range d.Essence {
		if c.Type == "" || c.Amount < 0 {
			return fmt.Errorf("%w: spell %q has malformed essence cost %+v", ErrInvalidDefinition, d.ID, c)
		}
	}
	return nil
}

// DisplayName returns Name, falling back to ID
func (d *Definition) DisplayName() string {
	if d.Name != "" {
		return d.Name
	}
	return d.ID
}

// CostCopy returns a copy of the essence cost slice for forwarding to collaborators
func (d *Definition) CostCopy() []EssenceCost {
	out := make([]EssenceCost, len(d.Essence))
	copy(out, d.Essence)
	return out
}
