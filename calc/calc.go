// Package calc implements the four-function calculator app
package calc

import (
	"math"
	"strings"
)

// Op is a pending or requested operation
type Op byte

const (
	OpNone   Op = 0
	OpAdd    Op = '+'
	OpSub    Op = '-'
	OpMul    Op = '*'
	OpDiv    Op = '/'
	OpEquals Op = '='
)

// ParseOp maps a keypad rune to an operation
func ParseOp(r rune) (Op, bool) {
	switch op := Op(r); op {
	case OpAdd, OpSub, OpMul, OpDiv, OpEquals:
		return op, true
	}
	return OpNone, false
}

func (o Op) String() string {
	if o == OpNone {
		return ""
	}
	return string(rune(o))
}

// apply evaluates prev op next; equals yields next
func (o Op) apply(prev, next float64) float64 {
	switch o {
	case OpAdd:
		return prev + next
	case OpSub:
		return prev - next
	case OpMul:
		return prev * next
	case OpDiv:
		return prev / next
	case OpEquals:
		return next
	case OpNone:
		return next
	}
	return math.NaN()
}

// State is a comparable snapshot of the calculator
type State struct {
	Display string
	Prev    float64
	HasPrev bool
	Op      Op
	Waiting bool
	Echo    string
}

// Calculator evaluates strictly left to right with no operator precedence
// Division by zero and other invalid arithmetic show as Infinity or NaN
type Calculator struct {
	display string
	prev    float64
	hasPrev bool
	op      Op
	waiting bool
	echo    string
}

func New() *Calculator {
	c := &Calculator{}
	c.Clear()
	return c
}

// Clear resets every field to the initial state
func (c *Calculator) Clear() {
	c.display = "0"
	c.prev = 0
	c.hasPrev = false
	c.op = OpNone
	c.waiting = false
	c.echo = ""
}

// InputDigit enters a digit or decimal point; returns false for any other rune
// A second decimal point in one operand is ignored
func (c *Calculator) InputDigit(d rune) bool {
	isDot := d == '.'
	if !isDot && (d < '0' || d > '9') {
		return false
	}

	if c.waiting {
		if isDot {
			c.display = "0."
		} else {
			c.display = string(d)
		}
		c.waiting = false
		c.echo += c.display
		return true
	}

	if isDot && strings.ContainsRune(c.display, '.') {
		return true
	}

	fresh := c.echo == "" && c.display == "0"
	switch {
	case c.display == "0" && isDot:
		c.display = "0."
	case c.display == "0":
		c.display = string(d)
	default:
		c.display += string(d)
	}

	if fresh {
		c.echo = c.display
	} else {
		c.echo += string(d)
	}
	return true
}

// PerformOperation commits the current operand with op
// With a pending operator the stashed operand and display are combined first;
// equals finishes the chain and waits for a fresh operand
func (c *Calculator) PerformOperation(op Op) {
	input := parseDisplay(c.display)

	switch {
	case !c.hasPrev:
		c.prev = input
		c.hasPrev = true
		c.echo = FormatNumber(input) + op.String()
	case c.op != OpNone:
		result := c.op.apply(c.prev, input)
		if op == OpEquals {
			c.hasPrev = false
			c.prev = 0
			c.display = FormatNumber(result)
			c.echo = FormatNumber(result)
			c.op = OpNone
			c.waiting = true
			return
		}
		c.prev = result
		c.display = FormatNumber(result)
		c.echo = FormatNumber(result) + op.String()
	default:
		c.echo = FormatNumber(input) + op.String()
	}

	c.waiting = true
	c.op = op
}

// Display returns the main readout
func (c *Calculator) Display() string { return c.display }

// Echo returns the running expression line
func (c *Calculator) Echo() string { return c.echo }

// Pending returns the pending operator, OpNone if none
func (c *Calculator) Pending() Op { return c.op }

// Snapshot returns the full state for comparison
func (c *Calculator) Snapshot() State {
	return State{
		Display: c.display,
		Prev:    c.prev,
		HasPrev: c.hasPrev,
		Op:      c.op,
		Waiting: c.waiting,
		Echo:    c.echo,
	}
}
