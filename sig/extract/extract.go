// Package extract recovers function declarations from text.
package extract

import (
	"iter"
	"strings"

	"github.com/tos-network/funcsig/sig/diag"
	"github.com/tos-network/funcsig/sig/grammar"
)

// Parts is the loose split of one candidate declaration.
type Parts struct {
	Name string
	// Args is the text between the first '(' after the name and the last ')'
	// of the input. It is not validated.
	Args string
	// NameOffset and ArgsOffset are byte offsets into the input.
	NameOffset int
	ArgsOffset int
}

// Split splits raw into the function name and the raw argument list text.
// Anything after the closing parenthesis, such as modifiers or a body, is
// ignored, and the text may span lines.
func Split(raw string) (Parts, error) {
	pos := grammar.SkipSpace(raw, 0)
	nameStart := pos
	if strings.HasPrefix(raw[pos:], grammar.Keyword) {
		after := pos + len(grammar.Keyword)
		if after < len(raw) && grammar.IsSpace(raw[after]) {
			p := grammar.SkipSpace(raw, after)
			if grammar.ReadIdent(raw, p) > p {
				nameStart = p
			}
		}
	}
	nameEnd := grammar.ReadIdent(raw, nameStart)
	if nameEnd == nameStart {
		return Parts{}, diag.NoMatch(nameStart, "expected function name")
	}
	open := strings.IndexByte(raw[nameEnd:], '(')
	if open < 0 {
		return Parts{}, diag.NoMatch(nameEnd, "expected '(' after function name %q", raw[nameStart:nameEnd])
	}
	open += nameEnd
	closing := strings.LastIndexByte(raw, ')')
	if closing < open {
		return Parts{}, diag.NoMatch(open, "unterminated argument list")
	}
	name := raw[nameStart:nameEnd]
	if name == grammar.Keyword {
		return Parts{}, diag.BadFunctionName(nameStart, "function name is the keyword %q", grammar.Keyword)
	}
	return Parts{
		Name:       name,
		Args:       raw[open+1 : closing],
		NameOffset: nameStart,
		ArgsOffset: open + 1,
	}, nil
}

// FunctionName returns the function name and raw argument list of raw.
func FunctionName(raw string) (name, args string, err error) {
	p, err := Split(raw)
	if err != nil {
		return "", "", err
	}
	return p.Name, p.Args, nil
}

// Match is one declaration found in a larger text.
type Match struct {
	Text   string
	Offset int
}

// All yields every non-overlapping well-formed raw declaration in code, in
// order of position. Matches only start at identifier boundaries.
func All(code string) iter.Seq[Match] {
	return func(yield func(Match) bool) {
		pos := 0
		for pos < len(code) {
			ch := code[pos]
			if !grammar.IsIdentStart(ch) || (pos > 0 && grammar.IsIdentPart(code[pos-1])) {
				pos++
				continue
			}
			if end, ok := grammar.RawFunction(code, pos); ok {
				if !yield(Match{Text: code[pos:end], Offset: pos}) {
					return
				}
				pos = end
				continue
			}
			pos = grammar.ReadIdent(code, pos)
		}
	}
}

// Declared is All restricted to matches that begin with the function keyword.
// Parameter lists such as "returns (string memory)" are well-formed
// declarations on their own and only this variant leaves them out.
func Declared(code string) iter.Seq[Match] {
	return func(yield func(Match) bool) {
		for m := range All(code) {
			if !hasKeyword(m.Text) {
				continue
			}
			if !yield(m) {
				return
			}
		}
	}
}

func hasKeyword(text string) bool {
	n := len(grammar.Keyword)
	return strings.HasPrefix(text, grammar.Keyword) && len(text) > n && grammar.IsSpace(text[n])
}

// Signatures returns the raw declarations in code. The result is empty, never
// nil, when there are none.
func Signatures(code string) []string {
	out := []string{}
	for m := range All(code) {
		out = append(out, m.Text)
	}
	return out
}

// IsRaw reports whether s as a whole is a raw declaration with a usable name.
func IsRaw(s string) bool {
	if !grammar.FullMatch(grammar.RawFunction, s) {
		return false
	}
	_, err := Split(s)
	return err == nil
}

// IsCanonical reports whether s as a whole is a canonical signature.
func IsCanonical(s string) bool {
	return grammar.FullMatch(grammar.CanonicalFunction, s)
}
