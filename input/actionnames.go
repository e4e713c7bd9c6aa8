package input

import "strings"

// actionRegistry maps canonical action names used in keymap files to intents
// "none" unbinds a key
var actionRegistry = map[string]IntentType{
	"none":   IntentNone,
	"quit":   IntentQuit,
	"pause":  IntentPause,
	"mute":   IntentToggleMute,
	"resize": IntentResize,
}

// ActionIntent resolves an action name, case-insensitive
func ActionIntent(name string) (IntentType, bool) {
	t, ok := actionRegistry[strings.ToLower(strings.TrimSpace(name))]
	return t, ok
}

// ActionName returns the canonical name bound to an intent, or ""
func ActionName(t IntentType) string {
	for name, it := range actionRegistry {
		if it == t && name != "none" {
			return name
		}
	}
	return ""
}
