package spell

import (
	"fmt"
)

// Catalog is an ordered, read-only set of spell definitions
type Catalog struct {
	spells []Definition
	byID   map[string]int
}

// NewCatalog validates every definition and rejects duplicate ids
func NewCatalog(defs []Definition) (*Catalog, error) {
	if len(defs) == 0 {
		return nil, fmt.Errorf("%w: catalog is empty", ErrInvalidDefinition)
	}

	c := &Catalog{
		spells: make([]Definition, len(defs)),
		byID:   make(map[string]int, len(defs)),
	}
	for i := range defs {
		if err := defs[i].Validate(); err != nil {
			return nil, err
		}
		if _, dup := c.byID[defs[i].ID]; dup {
			return nil, fmt.Errorf("%w: duplicate spell id %q", ErrInvalidDefinition, defs[i].ID)
		}
		c.spells[i] = defs[i]
		c.byID[defs[i].ID] = i
	}
	return c, nil
}

// Len returns the number of spells
func (c *Catalog) Len() int {
	return len(c.spells)
}

// All returns the definitions in catalog order
func (c *Catalog) All() []Definition {
	out := make([]Definition, len(c.spells))
	copy(out, c.spells)
	return out
}

// Get looks up a spell by id
func (c *Catalog) Get(id string) (*Definition, error) {
	idx, ok := c.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSpell, id)
	}
	return &c.spells[idx], nil
}

// Slot looks up a spell by 1-based position (number key binding)
func (c *Catalog) Slot(n int) (*Definition, error) {
	if n < 1 || n > len(c.spells) {
		return nil, fmt.Errorf("%w: slot %d", ErrUnknownSpell, n)
	}
	return &c.spells[n-1], nil
}
