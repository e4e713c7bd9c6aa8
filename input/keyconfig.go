package input

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gdamore/tcell/v2"
)

// Rune aliases for keys that can't be bare single-char TOML keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// keyFile is the on-disk keymap layout
//
//	[keys]
//	x = "quit"
//	space = "none"
//
//	[special]
//	"ctrl-q" = "none"
type keyFile struct {
	Keys    map[string]string `toml:"keys"`
	Special map[string]string `toml:"special"`
}

// specialKeysByName is the reverse of tcell.KeyNames, lowercased
var specialKeysByName = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = k
	}
	return m
}()

// LoadKeyConfig parses TOML keymap data into a sparse override KeyTable
// Returns error on unknown action names, invalid key names, or parse failure
func LoadKeyConfig(data []byte) (*KeyTable, error) {
	var kf keyFile
	if _, err := toml.Decode(string(data), &kf); err != nil {
		return nil, fmt.Errorf("keymap parse: %w", err)
	}

	kt := &KeyTable{}

	if len(kf.Keys) > 0 {
		kt.Runes = make(map[rune]IntentType, len(kf.Keys))
		for keyStr, action := range kf.Keys {
			r, err := resolveRune(keyStr)
			if err != nil {
				return nil, fmt.Errorf("[keys] key %q: %w", keyStr, err)
			}
			if r >= '1' && r <= '9' {
				return nil, fmt.Errorf("[keys] key %q: digits are reserved for spell slots", keyStr)
			}
			t, ok := ActionIntent(action)
			if !ok {
				return nil, fmt.Errorf("[keys] key %q: unknown action: %q", keyStr, action)
			}
			kt.Runes[r] = t
		}
	}

	if len(kf.Special) > 0 {
		kt.SpecialKeys = make(map[tcell.Key]IntentType, len(kf.Special))
		for keyStr, action := range kf.Special {
			k, ok := specialKeysByName[strings.ToLower(keyStr)]
			if !ok {
				return nil, fmt.Errorf("[special] unknown key name: %q", keyStr)
			}
			t, ok := ActionIntent(action)
			if !ok {
				return nil, fmt.Errorf("[special] key %q: unknown action: %q", keyStr, action)
			}
			kt.SpecialKeys[k] = t
		}
	}

	return kt, nil
}

// resolveRune converts a TOML key string to a rune
// Accepts single characters and named aliases
func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}

	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], nil
	}

	return 0, fmt.Errorf("invalid rune key: %q (expected single character or alias)", s)
}

// MergeKeyTable returns a new KeyTable with base values overridden by non-nil override maps
// Override entries bound to "none" delete the key from the result
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()
	if override == nil {
		return result
	}
	mergeMap(result.Runes, override.Runes)
	mergeMap(result.SpecialKeys, override.SpecialKeys)
	return result
}

func mergeMap[K comparable](base, override map[K]IntentType) {
	for k, v := range override {
		if v == IntentNone {
			delete(base, k)
		} else {
			base[k] = v
		}
	}
}
