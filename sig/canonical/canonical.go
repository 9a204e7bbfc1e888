// Package canonical reduces raw function declarations to canonical ABI
// signatures such as "transfer(address,uint256)".
package canonical

import (
	"errors"

	"github.com/tos-network/funcsig/sig/ast"
	"github.com/tos-network/funcsig/sig/catalog"
	"github.com/tos-network/funcsig/sig/diag"
	"github.com/tos-network/funcsig/sig/extract"
	"github.com/tos-network/funcsig/sig/grammar"
)

// TypeName maps an alias to its canonical name. Every other name is returned
// unchanged; callers pass names already read by the grammar.
func TypeName(name string) string {
	return catalog.Canonical(name)
}

// Type resolves the elementary type of t. Array suffixes are kept verbatim.
func Type(t ast.Type) ast.Type {
	return ast.Type{
		Elem:     TypeName(t.Elem),
		Suffixes: t.Suffixes,
	}
}

// qualifiers may follow an argument type ahead of its name.
var qualifiers = map[string]bool{
	"memory":   true,
	"storage":  true,
	"calldata": true,
	"payable":  true,
	"indexed":  true,
}

// Arguments reads an argument list left to right. Each argument is an
// elementary type, its array suffixes, any qualifiers such as memory, and at
// most one name. Reading stops at the end of text or at a ')' closing the
// list.
func Arguments(text string) ([]ast.RawArgument, error) {
	var out []ast.RawArgument
	pos := grammar.SkipSpace(text, 0)
	if pos == len(text) || text[pos] == ')' {
		return out, nil
	}
	for {
		elemEnd, ok := grammar.RawElemType(text, pos)
		if !ok {
			return nil, diag.NoMatch(pos, "argument %d: expected an elementary type", len(out)+1)
		}
		arg := ast.RawArgument{Type: ast.Type{Elem: text[pos:elemEnd]}}
		pos = elemEnd
		for {
			end, ok := grammar.ArraySuffix(text, pos)
			if !ok {
				break
			}
			arg.Type.Suffixes = append(arg.Type.Suffixes, ast.ArraySuffix{Size: text[pos+1 : end-1]})
			pos = end
		}
		for named := false; ; {
			pos = grammar.SkipSpace(text, pos)
			end := grammar.ReadIdent(text, pos)
			if end == pos {
				break
			}
			word := text[pos:end]
			switch {
			case named:
				return nil, diag.NoMatch(pos, "argument %d: unexpected %q after name %q", len(out)+1, word, arg.Name)
			case qualifiers[word]:
			default:
				arg.Name = word
				named = true
			}
			pos = end
		}
		out = append(out, arg)

		if pos == len(text) || text[pos] == ')' {
			return out, nil
		}
		if text[pos] != ',' {
			return nil, diag.NoMatch(pos, "expected ',' or ')' after argument %d", len(out))
		}
		pos = grammar.SkipSpace(text, pos+1)
	}
}

// ParseRaw reads raw into its declared form without resolving aliases.
func ParseRaw(raw string) (*ast.RawSignature, error) {
	parts, err := extract.Split(raw)
	if err != nil {
		return nil, err
	}
	args, err := Arguments(parts.Args)
	if err != nil {
		var d *diag.Diagnostic
		if errors.As(err, &d) && d.Offset >= 0 {
			d.Offset += parts.ArgsOffset
		}
		return nil, err
	}
	return &ast.RawSignature{Name: parts.Name, Arguments: args}, nil
}

// Canonicalize drops argument names and resolves aliases.
func Canonicalize(raw *ast.RawSignature) *ast.Signature {
	sig := &ast.Signature{
		Name:      raw.Name,
		Arguments: make([]ast.Type, 0, len(raw.Arguments)),
	}
	for _, a := range raw.Arguments {
		sig.Arguments = append(sig.Arguments, Type(a.Type))
	}
	return sig
}

// Parse returns the canonical signature of raw.
func Parse(raw string) (*ast.Signature, error) {
	rs, err := ParseRaw(raw)
	if err != nil {
		return nil, err
	}
	return Canonicalize(rs), nil
}

// Normalize returns the canonical signature string of raw. Extraction errors
// are returned unchanged.
func Normalize(raw string) (string, error) {
	sig, err := Parse(raw)
	if err != nil {
		return "", err
	}
	return sig.String(), nil
}
