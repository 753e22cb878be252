package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// KeyTable maps terminal keys to intents
type KeyTable struct {
	// Special keys (arrows, Enter, Esc, Ctrl+*, function keys)
	SpecialKeys map[tcell.Key]Intent

	// Printable rune bindings, matched case-insensitively
	Runes map[rune]Intent

	// KeypadRunes pass through as IntentKeypad when no binding matches
	KeypadRunes string
}

// DefaultKeyTable returns the default controller layout
// Arrows drive the D-pad, z/x/c/v are A/B/X/Y, Enter is Start, Esc and Backspace fall back to B
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Intent{
			tcell.KeyUp:         {Type: IntentAction, Action: DpadUp},
			tcell.KeyDown:       {Type: IntentAction, Action: DpadDown},
			tcell.KeyLeft:       {Type: IntentAction, Action: DpadLeft},
			tcell.KeyRight:      {Type: IntentAction, Action: DpadRight},
			tcell.KeyEnter:      {Type: IntentAction, Action: BtnStart},
			tcell.KeyEscape:     {Type: IntentAction, Action: BtnB},
			tcell.KeyBackspace:  {Type: IntentAction, Action: BtnB},
			tcell.KeyBackspace2: {Type: IntentAction, Action: BtnB},
			tcell.KeyCtrlC:      {Type: IntentQuit},
			tcell.KeyCtrlQ:      {Type: IntentQuit},
			tcell.KeyCtrlS:      {Type: IntentToggleMute},
			tcell.KeyF12:        {Type: IntentToggleDebug},
		},
		Runes: map[rune]Intent{
			'z': {Type: IntentAction, Action: BtnA},
			'x': {Type: IntentAction, Action: BtnB},
			'c': {Type: IntentAction, Action: BtnX},
			'v': {Type: IntentAction, Action: BtnY},
		},
		KeypadRunes: "0123456789./*-+=",
	}
}

// Resolve maps a key event to its intent
func (kt *KeyTable) Resolve(ev *tcell.EventKey) Intent {
	if ev.Key() != tcell.KeyRune {
		if in, ok := kt.SpecialKeys[ev.Key()]; ok {
			return in
		}
		return Intent{}
	}

	r := unicode.ToLower(ev.Rune())
	if in, ok := kt.Runes[r]; ok {
		return in
	}
	for _, k := range kt.KeypadRunes {
		if k == r {
			return Intent{Type: IntentKeypad, Rune: r}
		}
	}
	return Intent{}
}

// unbindAction removes every key currently bound to a
func (kt *KeyTable) unbindAction(a Action) {
	for k, in := range kt.SpecialKeys {
		if in.Type == IntentAction && in.Action == a {
			delete(kt.SpecialKeys, k)
		}
	}
	for r, in := range kt.Runes {
		if in.Type == IntentAction && in.Action == a {
			delete(kt.Runes, r)
		}
	}
}
