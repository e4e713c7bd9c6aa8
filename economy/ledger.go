// Package economy holds the essence balances successful casts draw from.
package economy

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"sync"

	"github.com/lixenwraith/runecast/spell"
)

// ErrInsufficientEssence is returned when a balance can't cover a cost
var ErrInsufficientEssence = errors.New("insufficient essence")

// Ledger is an in-memory essence wallet
// Deduct is all-or-nothing per request
type Ledger struct {
	mu       sync.Mutex
	balances map[string]int
	spent    map[string]int
}

// NewLedger creates a ledger seeded with the given balances
func NewLedger(initial map[string]int) *Ledger {
	l := &Ledger{
		balances: make(map[string]int, len(initial)),
		spent:    make(map[string]int),
	}
	for k, v := range initial {
		if v > 0 {
			l.balances[k] = v
		}
	}
	return l
}

// Deduct removes every cost from the balances, or none of them
func (l *Ledger) Deduct(spellID string, cost []spell.EssenceCost) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	// Sum per type first; a cost list may name a type twice
	need := make(map[string]int, len(cost))
	for _, c := range cost {
		if c.Amount < 0 {
			return fmt.Errorf("spell %q: negative %s cost %d", spellID, c.Type, c.Amount)
		}
		need[c.Type] += c.Amount
	}

	for t, amount := range need {
		if have := l.balances[t]; have < amount {
			return fmt.Errorf("spell %q needs %d %s, have %d: %w", spellID, amount, t, have, ErrInsufficientEssence)
		}
	}

	for t, amount := range need {
		l.balances[t] -= amount
		l.spent[t] += amount
	}
	log.Printf("economy: %s deducted %v", spellID, need)
	return nil
}

// Grant adds essence of one type
func (l *Ledger) Grant(essence string, amount int) {
	if amount <= 0 {
		return
	}
	l.mu.Lock()
	l.balances[essence] += amount
	l.mu.Unlock()
}

// Balance returns the current amount of one essence type
func (l *Ledger) Balance(essence string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balances[essence]
}

// Spent returns the total deducted of one essence type
func (l *Ledger) Spent(essence string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.spent[essence]
}

// Entry is one essence type and its balance
type Entry struct {
	Type    string
	Balance int
	Spent   int
}

// Snapshot returns all known essence types sorted by name
func (l *Ledger) Snapshot() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	seen := make(map[string]struct{}, len(l.balances)+len(l.spent))
	for k := range l.balances {
		seen[k] = struct{}{}
	}
	for k := range l.spent {
		seen[k] = struct{}{}
	}

	out := make([]Entry, 0, len(seen))
	for k := range seen {
		out = append(out, Entry{Type: k, Balance: l.balances[k], Spent: l.spent[k]})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Type < out[j].Type })
	return out
}
