package input

import "fmt"

// Action is a logical controller token, independent of the physical input that produced it
type Action uint8

const (
	ActionNone Action = iota
	DpadUp
	DpadDown
	DpadLeft
	DpadRight
	BtnA
	BtnB
	BtnX
	BtnY
	BtnStart
)

// Actions lists every valid action in declaration order
var Actions = [...]Action{DpadUp, DpadDown, DpadLeft, DpadRight, BtnA, BtnB, BtnX, BtnY, BtnStart}

// String returns the wire name (DPAD_U, BTN_A, ...)
func (a Action) String() string {
	switch a {
	case DpadUp:
		return "DPAD_U"
	case DpadDown:
		return "DPAD_D"
	case DpadLeft:
		return "DPAD_L"
	case DpadRight:
		return "DPAD_R"
	case BtnA:
		return "BTN_A"
	case BtnB:
		return "BTN_B"
	case BtnX:
		return "BTN_X"
	case BtnY:
		return "BTN_Y"
	case BtnStart:
		return "BTN_START"
	case ActionNone:
		return "NONE"
	}
	return fmt.Sprintf("Action(%d)", uint8(a))
}

// Valid reports whether a is one of the nine controller actions
func (a Action) Valid() bool {
	return a >= DpadUp && a <= BtnStart
}

// IsDpad reports whether a is a directional action
func (a Action) IsDpad() bool {
	return a >= DpadUp && a <= DpadRight
}

// ParseAction resolves a wire name to its Action
func ParseAction(name string) (Action, error) {
	for _, a := range Actions {
		if a.String() == name {
			return a, nil
		}
	}
	return ActionNone, fmt.Errorf("unknown action %q", name)
}
