package input

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// specialKeyNames maps config key names to terminal keys
var specialKeyNames = map[string]tcell.Key{
	"up":        tcell.KeyUp,
	"down":      tcell.KeyDown,
	"left":      tcell.KeyLeft,
	"right":     tcell.KeyRight,
	"enter":     tcell.KeyEnter,
	"esc":       tcell.KeyEscape,
	"escape":    tcell.KeyEscape,
	"backspace": tcell.KeyBackspace2,
	"tab":       tcell.KeyTab,
	"home":      tcell.KeyHome,
	"end":       tcell.KeyEnd,
	"pgup":      tcell.KeyPgUp,
	"pgdn":      tcell.KeyPgDn,
	"insert":    tcell.KeyInsert,
	"delete":    tcell.KeyDelete,
}

// Rune aliases for keys awkward to write as bare characters
var runeAliases = map[string]rune{
	"space": ' ',
}

// ApplyBindings replaces the keys of each named action with the listed key names
// Actions not present in bindings keep their defaults
// Returns error on unknown action or key names; the table is left untouched on error
func (kt *KeyTable) ApplyBindings(bindings map[string][]string) error {
	type bound struct {
		action  Action
		special []tcell.Key
		runes   []rune
	}

	parsed := make([]bound, 0, len(bindings))
	for name, keys := range bindings {
		a, err := ParseAction(strings.ToUpper(name))
		if err != nil {
			return fmt.Errorf("keys: %w", err)
		}
		b := bound{action: a}
		for _, k := range keys {
			special, r, err := parseKeyName(k)
			if err != nil {
				return fmt.Errorf("keys.%s: %w", name, err)
			}
			if special != tcell.KeyRune {
				b.special = append(b.special, special)
			} else {
				b.runes = append(b.runes, r)
			}
		}
		parsed = append(parsed, b)
	}

	for _, b := range parsed {
		kt.unbindAction(b.action)
	}
	for _, b := range parsed {
		in := Intent{Type: IntentAction, Action: b.action}
		for _, k := range b.special {
			kt.SpecialKeys[k] = in
		}
		for _, r := range b.runes {
			kt.Runes[r] = in
		}
	}
	return nil
}

// parseKeyName resolves "up", "enter", "space" or a single character
// Returns tcell.KeyRune with the rune for printable keys
func parseKeyName(name string) (tcell.Key, rune, error) {
	lower := strings.ToLower(name)
	if k, ok := specialKeyNames[lower]; ok {
		return k, 0, nil
	}
	if r, ok := runeAliases[lower]; ok {
		return tcell.KeyRune, r, nil
	}
	if utf8.RuneCountInString(lower) == 1 {
		r, _ := utf8.DecodeRuneInString(lower)
		return tcell.KeyRune, r, nil
	}
	return 0, 0, fmt.Errorf("unknown key name %q", name)
}
