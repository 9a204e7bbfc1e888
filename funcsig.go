// Package funcsig reduces smart-contract function declarations to canonical
// ABI signatures.
//
//	function transfer(address to, uint amount) public   =>   transfer(address,uint256)
//
// Every function is pure and safe for concurrent use.
package funcsig

import (
	"github.com/tos-network/funcsig/sig/ast"
	"github.com/tos-network/funcsig/sig/canonical"
	"github.com/tos-network/funcsig/sig/diag"
	"github.com/tos-network/funcsig/sig/extract"
)

const Version = "funcsig 0.1.0"

var (
	// ErrNoMatch reports input without a name(...) shape, or an argument that
	// is not a catalog type.
	ErrNoMatch = diag.ErrNoMatch
	// ErrBadFunctionName reports a declaration whose name is the keyword
	// "function".
	ErrBadFunctionName = diag.ErrBadFunctionName
)

// ExtractFunctionName returns the function name and the raw text between the
// first '(' and the last ')' of raw.
func ExtractFunctionName(raw string) (name, args string, err error) {
	return extract.FunctionName(raw)
}

// ExtractFunctionSignatures returns every well-formed raw declaration found in
// code, in order of appearance.
func ExtractFunctionSignatures(code string) []string {
	return extract.Signatures(code)
}

// IsRawFunctionSignature reports whether s is exactly one raw declaration.
func IsRawFunctionSignature(s string) bool {
	return extract.IsRaw(s)
}

// IsCanonicalFunctionSignature reports whether s is exactly one canonical
// signature.
func IsCanonicalFunctionSignature(s string) bool {
	return extract.IsCanonical(s)
}

// ToCanonicalType resolves uint, int and byte to their canonical names.
func ToCanonicalType(name string) string {
	return canonical.TypeName(name)
}

// NormalizeFunctionSignature returns the canonical signature of raw.
func NormalizeFunctionSignature(raw string) (string, error) {
	return canonical.Normalize(raw)
}

// ParseFunctionSignature returns the structured canonical signature of raw.
func ParseFunctionSignature(raw string) (*ast.Signature, error) {
	return canonical.Parse(raw)
}
