// Package grammar holds the declaration grammar as composable matchers.
//
// A Matcher is an ordered-choice, non-backtracking (PEG) recognizer over
// bytes: repetition is greedy and never gives input back, so every rule in
// this package runs in time linear in the input it consumes.
package grammar

// Matcher matches a rule at pos in src and returns the offset just past the
// match.
type Matcher func(src string, pos int) (int, bool)

// Byte matches the single byte c.
func Byte(c byte) Matcher {
	return func(src string, pos int) (int, bool) {
		if pos < len(src) && src[pos] == c {
			return pos + 1, true
		}
		return pos, false
	}
}

// Literal matches s exactly.
func Literal(s string) Matcher {
	return func(src string, pos int) (int, bool) {
		if len(src)-pos >= len(s) && src[pos:pos+len(s)] == s {
			return pos + len(s), true
		}
		return pos, false
	}
}

// Class matches one byte accepted by pred.
func Class(pred func(byte) bool) Matcher {
	return func(src string, pos int) (int, bool) {
		if pos < len(src) && pred(src[pos]) {
			return pos + 1, true
		}
		return pos, false
	}
}

// Seq matches each of ms in turn.
func Seq(ms ...Matcher) Matcher {
	return func(src string, pos int) (int, bool) {
		cur := pos
		for _, m := range ms {
			next, ok := m(src, cur)
			if !ok {
				return pos, false
			}
			cur = next
		}
		return cur, true
	}
}

// Choice returns the first alternative that matches.
func Choice(ms ...Matcher) Matcher {
	return func(src string, pos int) (int, bool) {
		for _, m := range ms {
			if next, ok := m(src, pos); ok {
				return next, true
			}
		}
		return pos, false
	}
}

// Optional matches m or nothing.
func Optional(m Matcher) Matcher {
	return func(src string, pos int) (int, bool) {
		if next, ok := m(src, pos); ok {
			return next, true
		}
		return pos, true
	}
}

// ZeroOrMore matches m as many times as possible. An iteration that consumes
// nothing ends the repetition.
func ZeroOrMore(m Matcher) Matcher {
	return func(src string, pos int) (int, bool) {
		cur := pos
		for {
			next, ok := m(src, cur)
			if !ok || next == cur {
				return cur, true
			}
			cur = next
		}
	}
}

// OneOrMore matches m at least once.
func OneOrMore(m Matcher) Matcher {
	rest := ZeroOrMore(m)
	return func(src string, pos int) (int, bool) {
		next, ok := m(src, pos)
		if !ok {
			return pos, false
		}
		return rest(src, next)
	}
}

// Word reads the longest run of identifier bytes at pos and matches it when
// accept reports true for the whole run. A name is therefore never matched as
// the prefix of a longer word: "uint16" is one word, not "uint" then "16".
func Word(accept func(string) bool) Matcher {
	return func(src string, pos int) (int, bool) {
		end := pos
		for end < len(src) && IsIdentPart(src[end]) {
			end++
		}
		if end == pos || !accept(src[pos:end]) {
			return pos, false
		}
		return end, true
	}
}

// FullMatch reports whether m matches the whole of s.
func FullMatch(m Matcher, s string) bool {
	end, ok := m(s, 0)
	return ok && end == len(s)
}
