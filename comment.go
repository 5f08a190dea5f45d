package dfa

// NewComment
// Returns a new automaton that recognizes a single source-code comment in one
// of three styles:
//
//  1. a line comment that starts with // and ends with a newline
//  2. a block comment that starts with (* and ends with *)
//  3. a block comment that starts with { and ends with }
//
// The automaton has 8 states. Each style is a separate branch out of state 0,
// all three meeting in the accept state 3:
//
//	0 -/-> 1 -/-> 2 -\n-> 3      line comment, 2 loops on everything else
//	0 -{-> 4 -}-> 3              brace comment, 4 loops on everything else
//	0 -(-> 5 -*-> 6 ...*) -> 3   6 loops until *, 7 closes on ) or falls back
//
// States 2, 4, 6 and 7 carry step overrides because their behavior is a
// condition on the symbol rather than a row per symbol: 2 and 4 self-loop on
// everything except their terminator, and 7 must distinguish the closing
// paren, a further asterisk (which keeps the close pending, so runs of
// asterisks before the paren are fine) and anything else (which resumes
// normal scanning in 6). State 3 has no outgoing rows: exactly one comment is
// consumed per run, trailing symbols trap and reject.
func NewComment() (*DFA, error) {
	b := NewBuilder(8)
	b.AddTransition(0, '/', 1)
	b.AddTransition(1, '/', 2)
	b.AddTransition(0, '{', 4)
	b.AddTransition(0, '(', 5)
	b.AddTransition(5, '*', 6)
	b.SetAccept(3)
	b.OverrideStep(2, func(symbol byte) int {
		if symbol == '\n' {
			return 3
		}
		return 2
	})
	b.OverrideStep(4, func(symbol byte) int {
		if symbol == '}' {
			return 3
		}
		return 4
	})
	b.OverrideStep(6, func(symbol byte) int {
		if symbol == '*' {
			return 7
		}
		return 6
	})
	b.OverrideStep(7, func(symbol byte) int {
		switch symbol {
		case ')':
			return 3
		case '*':
			return 7
		default:
			return 6
		}
	})
	return b.Build()
}
