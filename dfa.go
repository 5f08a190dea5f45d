package dfa

import (
	"github.com/bits-and-blooms/bitset"
)

// States are plain integers assigned densely from 0. Two values are
// distinguished for every automaton built by this package.
const (
	// StateInitial is the state every automaton starts in and returns to on Reset.
	StateInitial = 0

	// StateTrap is the absorbing sink state. Any symbol with no table row and no
	// override leads here, and no symbol ever leads out. It is never accepting.
	StateTrap = -1
)

// transition keys the table by source state and input symbol.
type transition struct {
	state  int
	symbol byte
}

// StepOverride computes the successor state for one input symbol. It is
// installed for states whose outgoing behavior depends on a condition over the
// symbol ("anything except the terminator") rather than on exact per-symbol
// table rows.
type StepOverride func(symbol byte) int

// DFA Represents a deterministic finite automaton over an 8-bit alphabet.
// The transition table and accept-state set are fixed at construction (see
// Builder) and never change afterward; the only mutable field is the current
// state. Run resets that state on entry, so one instance can be reused for any
// number of inputs. Instances are not safe for concurrent use; give each
// goroutine its own instance via Clone, which shares the immutable table.
type DFA struct {
	numStates int
	table     map[transition]int
	isAccept  *bitset.BitSet
	overrides map[int]StepOverride
	state     int
}

// Reset Moves the automaton back to the initial state. Idempotent.
func (d *DFA) Reset() {
	d.state = StateInitial
}

// Step Consumes one input symbol. If an override is installed for the current
// state it decides the successor; otherwise the (state, symbol) table row
// does, and a missing row leads to the trap state. The trap state absorbs:
// once there, further symbols are no-ops.
func (d *DFA) Step(symbol byte) {
	if d.state == StateTrap {
		return
	}
	if fn, ok := d.overrides[d.state]; ok {
		d.state = fn(symbol)
		return
	}
	if next, ok := d.table[transition{d.state, symbol}]; ok {
		d.state = next
		return
	}
	d.state = StateTrap
}

// IsAccepting Returns true if the current state is an accept state.
func (d *DFA) IsAccepting() bool {
	return d.state != StateTrap && d.isAccept.Test(uint(d.state))
}

// Run Resets the automaton, consumes every byte of input in order and returns
// whether the automaton ends in an accept state.
func (d *DFA) Run(input string) bool {
	d.Reset()
	for i := 0; i < len(input); i++ {
		d.Step(input[i])
	}
	return d.IsAccepting()
}

// CurrentState Returns the state reached so far; useful together with Step and
// IsAccepting when feeding symbols incrementally.
func (d *DFA) CurrentState() int {
	return d.state
}

// IsAccept Returns true if the given state is an accept state, regardless of
// the current state.
func (d *DFA) IsAccept(state int) bool {
	return state >= 0 && d.isAccept.Test(uint(state))
}

// NumStates How many states this automaton has, the trap state excluded.
func (d *DFA) NumStates() int {
	return d.numStates
}

// NumTransitions How many table rows this automaton has. Transitions realized
// by overrides are not counted.
func (d *DFA) NumTransitions() int {
	return len(d.table)
}

// Clone Returns an independent automaton in the initial state. The table,
// accept set and overrides are shared; they are read-only after construction,
// so clones may run concurrently with the original.
func (d *DFA) Clone() *DFA {
	return &DFA{
		numStates: d.numStates,
		table:     d.table,
		isAccept:  d.isAccept,
		overrides: d.overrides,
		state:     StateInitial,
	}
}
