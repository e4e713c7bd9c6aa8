package economy

import (
	"errors"
	"sync"
	"testing"

	"github.com/lixenwraith/runecast/engine"
	"github.com/lixenwraith/runecast/spell"
)

var _ engine.Economy = (*Ledger)(nil)

func TestDeductAllOrNothing(t *testing.T) {
	l := NewLedger(map[string]int{"fire": 3, "air": 1})

	err := l.Deduct("tidal", []spell.EssenceCost{{Type: "fire", Amount: 2}, {Type: "air", Amount: 2}})
	if !errors.Is(err, ErrInsufficientEssence) {
		t.Fatalf("Deduct() err = %v, want ErrInsufficientEssence", err)
	}
	if l.Balance("fire") != 3 || l.Balance("air") != 1 {
		t.Errorf("failed deduct changed balances: fire=%d air=%d", l.Balance("fire"), l.Balance("air"))
	}

	if err := l.Deduct("ember", []spell.EssenceCost{{Type: "fire", Amount: 2}}); err != nil {
		t.Fatalf("Deduct() err = %v", err)
	}
	if l.Balance("fire") != 1 || l.Spent("fire") != 2 {
		t.Errorf("fire balance=%d spent=%d, want 1/2", l.Balance("fire"), l.Spent("fire"))
	}
}

func TestDeductSumsRepeatedTypes(t *testing.T) {
	l := NewLedger(map[string]int{"water": 3})
	err := l.Deduct("x", []spell.EssenceCost{{Type: "water", Amount: 2}, {Type: "water", Amount: 2}})
	if !errors.Is(err, ErrInsufficientEssence) {
		t.Errorf("repeated type should sum to 4 > 3, got %v", err)
	}
}

func TestDeductEmptyCost(t *testing.T) {
	l := NewLedger(nil)
	if err := l.Deduct("free", nil); err != nil {
		t.Errorf("empty cost err = %v", err)
	}
	if err := l.Deduct("bad", []spell.EssenceCost{{Type: "fire", Amount: -1}}); err == nil {
		t.Error("negative cost accepted")
	}
}

func TestConcurrentDeduct(t *testing.T) {
	l := NewLedger(map[string]int{"light": 50})

	var wg sync.WaitGroup
	var mu sync.Mutex
	ok := 0
	for range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if l.Deduct("star", []spell.EssenceCost{{Type: "light", Amount: 1}}) == nil {
				mu.Lock()
				ok++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if ok != 50 {
		t.Errorf("successful deducts = %d, want 50", ok)
	}
	if l.Balance("light") != 0 {
		t.Errorf("balance = %d, want 0", l.Balance("light"))
	}
}

func TestSnapshot(t *testing.T) {
	l := NewLedger(map[string]int{"fire": 2, "air": 0})
	l.Grant("water", 4)
	l.Deduct("ember", []spell.EssenceCost{{Type: "fire", Amount: 2}})

	snap := l.Snapshot()
	want := []Entry{{"fire", 0, 2}, {"water", 4, 0}}
	if len(snap) != len(want) {
		t.Fatalf("snapshot = %+v, want %+v", snap, want)
	}
	for i := range want {
		if snap[i] != want[i] {
			t.Errorf("snapshot[%d] = %+v, want %+v", i, snap[i], want[i])
		}
	}
}
