package spell

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/runecast/vmath"
)

// CatalogDocument is the on-disk form of a spell catalog
type CatalogDocument struct {
	Spells []SpellDocument `yaml:"spells" toml:"spells" json:"spells" jsonschema:"required,minItems=1"`
}

// SpellDocument is the on-disk form of one spell
type SpellDocument struct {
	ID        string         `yaml:"id" toml:"id" json:"id" jsonschema:"required"`
	Name      string         `yaml:"name" toml:"name" json:"name,omitempty"`
	Rarity    string         `yaml:"rarity" toml:"rarity" json:"rarity" jsonschema:"required,enum=common,enum=uncommon,enum=rare,enum=epic,enum=legendary,enum=godtier"`
	Path      [][2]float64   `yaml:"path" toml:"path" json:"path" jsonschema:"required,minItems=2"`
	MinDamage int            `yaml:"min_damage" toml:"min_damage" json:"min_damage" jsonschema:"minimum=0"`
	MaxDamage int            `yaml:"max_damage" toml:"max_damage" json:"max_damage" jsonschema:"minimum=0"`
	Essence   []CostDocument `yaml:"essence" toml:"essence" json:"essence,omitempty"`
}

// CostDocument is the on-disk form of one essence cost
type CostDocument struct {
	Type   string `yaml:"type" toml:"type" json:"type" jsonschema:"required"`
	Amount int    `yaml:"amount" toml:"amount" json:"amount" jsonschema:"minimum=0"`
}

// LoadCatalog reads a catalog file; the format follows the extension (.yaml, .yml, .toml, .json)
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}

	var doc CatalogDocument
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing catalog yaml: %w", err)
		}
	case ".toml":
		if _, err := toml.Decode(string(data), &doc); err != nil {
			return nil, fmt.Errorf("parsing catalog toml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing catalog json: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported catalog format %q", ext)
	}

	return doc.Catalog()
}

// Catalog converts the document into a validated catalog
func (doc *CatalogDocument) Catalog() (*Catalog, error) {
	defs := make([]Definition, 0, len(doc.Spells))
	for i := range doc.Spells {
		def, err := doc.Spells[i].Definition()
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	return NewCatalog(defs)
}

// Definition converts one spell document
func (sd *SpellDocument) Definition() (Definition, error) {
	rarity, err := ParseRarity(sd.Rarity)
	if err != nil {
		return Definition{}, fmt.Errorf("spell %q: %w", sd.ID, err)
	}

	path := make([]vmath.Point, len(sd.Path))
	for i, p := range sd.Path {
		path[i] = vmath.Point{X: p[0], Y: p[1]}
	}

	costs := make([]EssenceCost, len(sd.Essence))
	for i, c := range sd.Essence {
		costs[i] = EssenceCost{Type: c.Type, Amount: c.Amount}
	}

	return Definition{
		ID:        sd.ID,
		Name:      sd.Name,
		Rarity:    rarity,
		Path:      path,
		MinDamage: sd.MinDamage,
		MaxDamage: sd.MaxDamage,
		Essence:   costs,
	}, nil
}

// Document converts a catalog back to its on-disk form
func (c *Catalog) Document() CatalogDocument {
	doc := CatalogDocument{Spells: make([]SpellDocument, 0, len(c.spells))}
	for _, d := range c.spells {
		sd := SpellDocument{
			ID:        d.ID,
			Name:      d.Name,
			Rarity:    d.Rarity.String(),
			Path:      make([][2]float64, len(d.Path)),
			MinDamage: d.MinDamage,
			MaxDamage: d.MaxDamage,
		}
		for i, p := range d.Path {
			sd.Path[i] = [2]float64{p.X, p.Y}
		}
		for _, e := range d.Essence {
			sd.Essence = append(sd.Essence, CostDocument{Type: e.Type, Amount: e.Amount})
		}
		doc.Spells = append(doc.Spells, sd)
	}
	return doc
}
