package spell

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/runecast/core"
)

// RarityTier is a cosmetic classification that only tints critical-hit particles and debris
type RarityTier int

const (
	Common RarityTier = iota
	Uncommon
	Rare
	Epic
	Legendary
	GodTier

	rarityCount
)

var rarityNames = [rarityCount]string{
	Common:    "common",
	Uncommon:  "uncommon",
	Rare:      "rare",
	Epic:      "epic",
	Legendary: "legendary",
	GodTier:   "godtier",
}

var rarityColors = [rarityCount]core.RGB{
	Common:    {R: 158, G: 158, B: 158},
	Uncommon:  {R: 76, G: 175, B: 80},
	Rare:      {R: 33, G: 150, B: 243},
	Epic:      {R: 171, G: 71, B: 188},
	Legendary: {R: 255, G: 152, B: 0},
	GodTier:   {R: 255, G: 23, B: 68},
}

// Tiers returns all rarity tiers in ascending order
func Tiers() []RarityTier {
	out := make([]RarityTier, rarityCount)
	for i := range out {
		out[i] = RarityTier(i)
	}
	return out
}

// Valid reports whether r is a known tier
func (r RarityTier) Valid() bool {
	return r >= 0 && r < rarityCount
}

func (r RarityTier) String() string {
	if !r.Valid() {
		return fmt.Sprintf("rarity(%d)", int(r))
	}
	return rarityNames[r]
}

// Color returns the display tint for the tier; unknown tiers fall back to Common
func (r RarityTier) Color() core.RGB {
	if !r.Valid() {
		return rarityColors[Common]
	}
	return rarityColors[r]
}

// ParseRarity resolves a case-insensitive tier name ("god-tier" and "god_tier" accepted)
func ParseRarity(s string) (RarityTier, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer("-", "", "_", "", " ", "").Replace(key)
	for i, name := range rarityNames {
		if name == key {
			return RarityTier(i), nil
		}
	}
	return Common, fmt.Errorf("%w: unknown rarity %q", ErrInvalidDefinition, s)
}
