package spell

import (
	"fmt"
	"math"

	"github.com/lixenwraith/runecast/vmath"
)

// Builtin returns the stock six-spell catalog
func Builtin() (*Catalog, error) {
	c, err := NewCatalog(builtinDefinitions())
	if err != nil {
		return nil, fmt.Errorf("builtin catalog: %w", err)
	}
	return c, nil
}

func builtinDefinitions() []Definition {
	return []Definition{
		{
			ID:        "ember-ring",
			Name:      "Ember Ring",
			Rarity:    Common,
			Path:      ellipsePath(0.5, 0.55, 0.3, 0.3, 32),
			MinDamage: 10,
			MaxDamage: 30,
			Essence:   []EssenceCost{{Type: "fire", Amount: 1}},
		},
		{
			ID:     "storm-lash",
			Name:   "Storm Lash",
			Rarity: Uncommon,
			Path: []vmath.Point{
				{X: 0.12, Y: 0.3}, {X: 0.31, Y: 0.78}, {X: 0.5, Y: 0.3},
				{X: 0.69, Y: 0.78}, {X: 0.88, Y: 0.3},
			},
			MinDamage: 15,
			MaxDamage: 40,
			Essence:   []EssenceCost{{Type: "air", Amount: 2}},
		},
		{
			ID:        "tidal-spiral",
			Name:      "Tidal Spiral",
			Rarity:    Rare,
			Path:      spiralPath(0.5, 0.55, 0.36, 2.5, 60),
			MinDamage: 20,
			MaxDamage: 55,
			Essence:   []EssenceCost{{Type: "water", Amount: 2}, {Type: "air", Amount: 1}},
		},
		{
			ID:        "ward-star",
			Name:      "Star of Warding",
			Rarity:    Epic,
			Path:      starPath(0.5, 0.57, 0.36, 5),
			MinDamage: 30,
			MaxDamage: 75,
			Essence:   []EssenceCost{{Type: "light", Amount: 3}},
		},
		{
			ID:        "serpent-coil",
			Name:      "Serpent Coil",
			Rarity:    Legendary,
			Path:      sinePath(0.1, 0.9, 0.55, 0.22, 3, 48),
			MinDamage: 40,
			MaxDamage: 100,
			Essence:   []EssenceCost{{Type: "earth", Amount: 3}, {Type: "water", Amount: 2}},
		},
		{
			ID:        "void-sigil",
			Name:      "Void Sigil",
			Rarity:    GodTier,
			Path:      lemniscatePath(0.5, 0.55, 0.4, 64),
			MinDamage: 60,
			MaxDamage: 160,
			Essence:   []EssenceCost{{Type: "void", Amount: 5}, {Type: "light", Amount: 2}},
		},
	}
}

// ellipsePath returns a closed loop starting at the top of the ellipse
func ellipsePath(cx, cy, rx, ry float64, n int) []vmath.Point {
	pts := make([]vmath.Point, 0, n+1)
	for i := 0; i <= n; i++ {
		a := -math.Pi/2 + 2*math.Pi*float64(i)/float64(n)
		pts = append(pts, vmath.Point{X: cx + rx*math.Cos(a), Y: cy + ry*math.Sin(a)})
	}
	return pts
}

// spiralPath returns an Archimedean spiral winding outward from the center
func spiralPath(cx, cy, maxR, turns float64, n int) []vmath.Point {
	pts := make([]vmath.Point, 0, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		a := t * turns * 2 * math.Pi
		r := maxR * t
		pts = append(pts, vmath.Point{X: cx + r*math.Cos(a), Y: cy + r*math.Sin(a)})
	}
	return pts
}

// starPath returns a closed {points/2} star polygon traced in one stroke
func starPath(cx, cy, r float64, points int) []vmath.Point {
	pts := make([]vmath.Point, 0, points+1)
	step := 2
	for i := 0; i <= points; i++ {
		k := (i * step) % points
		a := -math.Pi/2 + 2*math.Pi*float64(k)/float64(points)
		pts = append(pts, vmath.Point{X: cx + r*math.Cos(a), Y: cy + r*math.Sin(a)})
	}
	return pts
}

// sinePath returns a horizontal sine wave between x0 and x1
func sinePath(x0, x1, cy, amp, periods float64, n int) []vmath.Point {
	pts := make([]vmath.Point, 0, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		pts = append(pts, vmath.Point{
			X: x0 + (x1-x0)*t,
			Y: cy + amp*math.Sin(t*periods*2*math.Pi),
		})
	}
	return pts
}

// lemniscatePath returns a closed Bernoulli lemniscate (figure eight)
func lemniscatePath(cx, cy, a float64, n int) []vmath.Point {
	pts := make([]vmath.Point, 0, n+1)
	for i := 0; i <= n; i++ {
		t := 2 * math.Pi * float64(i) / float64(n)
		s, c := math.Sincos(t)
		den := 1 + s*s
		pts = append(pts, vmath.Point{
			X: cx + a*c/den,
			Y: cy + a*s*c/den,
		})
	}
	return pts
}
