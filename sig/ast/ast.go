package ast

import "strings"

// ArraySuffix is one bracketed array marker. Size holds the digits between the
// brackets exactly as written; an empty Size is a dynamic array.
type ArraySuffix struct {
	Size string
}

func (s ArraySuffix) Dynamic() bool { return s.Size == "" }

func (s ArraySuffix) String() string { return "[" + s.Size + "]" }

// Type is an elementary type followed by zero or more array suffixes, in source
// order.
type Type struct {
	Elem     string
	Suffixes []ArraySuffix
}

func (t Type) String() string {
	if len(t.Suffixes) == 0 {
		return t.Elem
	}
	var b strings.Builder
	b.WriteString(t.Elem)
	for _, s := range t.Suffixes {
		b.WriteString(s.String())
	}
	return b.String()
}

// RawArgument is a declared argument. Name may be empty when the declaration
// omitted it.
type RawArgument struct {
	Type Type
	Name string
}

func (a RawArgument) String() string {
	if a.Name == "" {
		return a.Type.String()
	}
	return a.Type.String() + " " + a.Name
}

// RawSignature is a function declaration as written, aliases included.
type RawSignature struct {
	Name      string
	Arguments []RawArgument
}

func (s *RawSignature) String() string {
	args := make([]string, 0, len(s.Arguments))
	for _, a := range s.Arguments {
		args = append(args, a.String())
	}
	return s.Name + "(" + strings.Join(args, ", ") + ")"
}

// Signature is the canonical form: no argument names, no aliases, no spaces.
type Signature struct {
	Name      string
	Arguments []Type
}

func (s *Signature) String() string {
	var b strings.Builder
	b.WriteString(s.Name)
	b.WriteByte('(')
	for i, t := range s.Arguments {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(t.String())
	}
	b.WriteByte(')')
	return b.String()
}
