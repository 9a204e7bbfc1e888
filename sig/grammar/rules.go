package grammar

import "github.com/tos-network/funcsig/sig/catalog"

// Keyword is the optional declaration keyword.
const Keyword = "function"

var (
	spaces  = ZeroOrMore(Class(IsSpace))
	spaces1 = OneOrMore(Class(IsSpace))

	// Identifier ::= [A-Za-z_][A-Za-z0-9_]*
	Identifier = Seq(Class(IsIdentStart), ZeroOrMore(Class(IsIdentPart)))

	// RawElemType is any catalog name, aliases included.
	RawElemType = Word(catalog.IsRaw)
	// CanonicalElemType is any catalog name except the aliases.
	CanonicalElemType = Word(catalog.IsCanonical)

	// ArraySuffix ::= '[' digit* ']'
	ArraySuffix = Seq(Byte('['), ZeroOrMore(Class(IsDigit)), Byte(']'))

	RawType       = Seq(RawElemType, ZeroOrMore(ArraySuffix))
	CanonicalType = Seq(CanonicalElemType, ZeroOrMore(ArraySuffix))

	// RawArgument ::= RawType whitespace+ Identifier
	RawArgument = Seq(RawType, spaces1, Identifier)

	RawArgList = Optional(Seq(
		RawArgument,
		ZeroOrMore(Seq(spaces, Byte(','), spaces, RawArgument)),
	))

	rawFunctionBody = Seq(Identifier, spaces, Byte('('), spaces, RawArgList, spaces, Byte(')'))

	// RawFunction ::= 'function'? whitespace* Identifier whitespace* '(' ... ')'
	//
	// The keyword branch is tried first; "function(uint a)" falls back to the
	// bare branch with "function" as the name.
	RawFunction = Choice(
		Seq(Literal(Keyword), spaces, rawFunctionBody),
		rawFunctionBody,
	)

	// CanonicalFunction ::= Identifier '(' (CanonicalType (',' CanonicalType)*)? ')'
	CanonicalFunction = Seq(
		Identifier,
		Byte('('),
		Optional(Seq(CanonicalType, ZeroOrMore(Seq(Byte(','), CanonicalType)))),
		Byte(')'),
	)
)
