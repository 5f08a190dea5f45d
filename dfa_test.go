package dfa

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStep(t *testing.T) {
	t.Run("testTrapAbsorbs", func(t *testing.T) {
		a, err := NewWord("ab")
		assert.Nil(t, err)

		a.Reset()
		a.Step('x')
		assert.Equal(t, StateTrap, a.CurrentState())

		// No symbol leads out of the trap, not even the word's own bytes.
		for _, symbol := range []byte{'a', 'b', 'x', 0, '\n'} {
			a.Step(symbol)
			assert.Equal(t, StateTrap, a.CurrentState())
		}
		assert.False(t, a.IsAccepting())
	})

	t.Run("testMissingRowTraps", func(t *testing.T) {
		a, err := NewBuilder(2).
			AddTransition(0, 'a', 1).
			SetAccept(1).
			Build()
		assert.Nil(t, err)

		a.Reset()
		a.Step('b')
		assert.Equal(t, StateTrap, a.CurrentState())
	})

	t.Run("testIncremental", func(t *testing.T) {
		a, err := NewWord("go")
		assert.Nil(t, err)

		a.Reset()
		assert.Equal(t, StateInitial, a.CurrentState())
		assert.False(t, a.IsAccepting())

		a.Step('g')
		assert.Equal(t, 1, a.CurrentState())
		assert.False(t, a.IsAccepting())

		a.Step('o')
		assert.Equal(t, 2, a.CurrentState())
		assert.True(t, a.IsAccepting())
	})
}

func TestReset(t *testing.T) {
	t.Run("testResetIdempotent", func(t *testing.T) {
		a, err := NewWord("x")
		assert.Nil(t, err)

		a.Reset()
		a.Reset()
		assert.Equal(t, StateInitial, a.CurrentState())
	})

	t.Run("testResetLeavesTrap", func(t *testing.T) {
		a, err := NewWord("x")
		assert.Nil(t, err)

		a.Step('y')
		assert.Equal(t, StateTrap, a.CurrentState())
		a.Reset()
		assert.Equal(t, StateInitial, a.CurrentState())
	})
}

func TestRunReusesInstance(t *testing.T) {
	a, err := NewWord("abc")
	assert.Nil(t, err)

	// Interleaved runs on one instance match fresh-instance verdicts.
	assert.False(t, a.Run("abx"))
	assert.True(t, a.Run("abc"))
	assert.False(t, a.Run(""))
	assert.True(t, a.Run("abc"))
}

func TestIsAccept(t *testing.T) {
	a, err := NewWord("hi")
	assert.Nil(t, err)

	assert.False(t, a.IsAccept(0))
	assert.False(t, a.IsAccept(1))
	assert.True(t, a.IsAccept(2))
	assert.False(t, a.IsAccept(StateTrap))
}

func TestClone(t *testing.T) {
	a, err := NewWord("ab")
	assert.Nil(t, err)

	a.Reset()
	a.Step('a')

	c := a.Clone()
	assert.Equal(t, StateInitial, c.CurrentState())
	assert.Equal(t, 1, a.CurrentState())

	// The clone runs independently of the original's in-flight state.
	assert.True(t, c.Run("ab"))
	assert.Equal(t, 1, a.CurrentState())
	a.Step('b')
	assert.True(t, a.IsAccepting())
}
