package dfa

// NewWord
// Returns a new automaton that recognizes exactly the given word and nothing
// else. For a word of length L the automaton has L+1 states; state i means the
// first i bytes of the word have been consumed in order, and state L is the
// sole accept state:
//
//	-> () -f-> () -o-> () -o-> []
//
// Any other symbol at any position falls into the trap state and the run
// rejects. The empty word builds a single accepting state with no transitions,
// so it accepts only the empty input.
func NewWord(word string) (*DFA, error) {
	b := NewBuilder(len(word) + 1)
	for i := 0; i < len(word); i++ {
		b.AddTransition(i, word[i], i+1)
	}
	b.SetAccept(len(word))
	return b.Build()
}
