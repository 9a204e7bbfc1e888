package ast

import "testing"

func TestTypeString(t *testing.T) {
	typ := Type{
		Elem:     "uint256",
		Suffixes: []ArraySuffix{{}, {Size: "3"}},
	}
	if got, want := typ.String(), "uint256[][3]"; got != want {
		t.Fatalf("type string: got=%q want=%q", got, want)
	}
	if !typ.Suffixes[0].Dynamic() || typ.Suffixes[1].Dynamic() {
		t.Fatalf("unexpected dynamic flags: %#v", typ.Suffixes)
	}
}

func TestSignatureString(t *testing.T) {
	sig := &Signature{
		Name: "transfer",
		Arguments: []Type{
			{Elem: "address"},
			{Elem: "uint256"},
		},
	}
	if got, want := sig.String(), "transfer(address,uint256)"; got != want {
		t.Fatalf("signature string: got=%q want=%q", got, want)
	}
	empty := &Signature{Name: "ping"}
	if got, want := empty.String(), "ping()"; got != want {
		t.Fatalf("empty signature string: got=%q want=%q", got, want)
	}
}

func TestRawSignatureString(t *testing.T) {
	raw := &RawSignature{
		Name: "foo",
		Arguments: []RawArgument{
			{Type: Type{Elem: "uint"}, Name: "a"},
			{Type: Type{Elem: "bytes", Suffixes: []ArraySuffix{{Size: "2"}}}},
		},
	}
	if got, want := raw.String(), "foo(uint a, bytes[2])"; got != want {
		t.Fatalf("raw signature string: got=%q want=%q", got, want)
	}
}
