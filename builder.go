package dfa

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Builder Assembles the transition table, accept-state set and step overrides
// for a DFA. States are the integers [0, numStates); every row and override is
// validated against that range. Methods record the first misuse and Build
// reports it, so call sites can chain adds without checking each one.
type Builder struct {
	numStates int
	table     map[transition]int
	isAccept  *bitset.BitSet
	overrides map[int]StepOverride
	err       error
}

// NewBuilder Starts a builder for an automaton with the given number of
// states. numStates must be at least 1 so the initial state exists.
func NewBuilder(numStates int) *Builder {
	b := &Builder{
		numStates: numStates,
		table:     make(map[transition]int),
		isAccept:  bitset.New(uint(max(numStates, 1))),
		overrides: make(map[int]StepOverride),
	}
	if numStates < 1 {
		b.fail(fmt.Errorf("automaton needs at least 1 state, got %d", numStates))
	}
	return b
}

func (b *Builder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

func (b *Builder) checkState(state int) bool {
	if state < 0 || state >= b.numStates {
		b.fail(fmt.Errorf("state %d out of range [0, %d)", state, b.numStates))
		return false
	}
	return true
}

// AddTransition Adds the table row (from, symbol) -> to. Each (from, symbol)
// key may be added once; a second add for the same key is misuse.
func (b *Builder) AddTransition(from int, symbol byte, to int) *Builder {
	if !b.checkState(from) || !b.checkState(to) {
		return b
	}
	key := transition{state: from, symbol: symbol}
	if prev, ok := b.table[key]; ok {
		b.fail(fmt.Errorf("transition (%d, %q) already added with dest %d", from, symbol, prev))
		return b
	}
	b.table[key] = to
	return b
}

// SetAccept Marks a state as accepting. The trap state cannot be accepting.
func (b *Builder) SetAccept(state int) *Builder {
	if b.checkState(state) {
		b.isAccept.Set(uint(state))
	}
	return b
}

// OverrideStep Installs fn as the successor function for every symbol consumed
// in the given state. Table rows for that state are not consulted; fn alone
// decides, including any transition to StateTrap.
func (b *Builder) OverrideStep(state int, fn StepOverride) *Builder {
	if !b.checkState(state) {
		return b
	}
	if fn == nil {
		b.fail(fmt.Errorf("nil step override for state %d", state))
		return b
	}
	if _, ok := b.overrides[state]; ok {
		b.fail(fmt.Errorf("step override for state %d already installed", state))
		return b
	}
	b.overrides[state] = fn
	return b
}

// Build Returns the finished automaton in its initial state, or the first
// error recorded while assembling it. The returned automaton never mutates
// the table, accept set or overrides again.
func (b *Builder) Build() (*DFA, error) {
	if b.err != nil {
		return nil, b.err
	}
	return &DFA{
		numStates: b.numStates,
		table:     b.table,
		isAccept:  b.isAccept,
		overrides: b.overrides,
		state:     StateInitial,
	}, nil
}
