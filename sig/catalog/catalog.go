// Package catalog is the closed set of elementary ABI type names accepted in
// function declarations.
//
// The tables are built once during package initialization and never mutated,
// so every lookup is safe for concurrent use.
package catalog

import "strconv"

// Entry describes one elementary type name.
type Entry struct {
	Name      string
	Dynamic   bool
	Alias     bool
	Canonical string
}

var (
	dynamicTypes = []string{"bytes", "string"}
	aliasTargets = map[string]string{
		"uint": "uint256",
		"int":  "int256",
		"byte": "bytes1",
	}
	aliasOrder = []string{"uint", "int", "byte"}

	staticTypes = buildStaticTypes()
	entries     = buildEntries()
)

func buildStaticTypes() []string {
	out := []string{"address", "bool"}
	for bits := 8; bits <= 256; bits += 8 {
		out = append(out, "uint"+strconv.Itoa(bits))
	}
	for bits := 8; bits <= 256; bits += 8 {
		out = append(out, "int"+strconv.Itoa(bits))
	}
	for size := 1; size <= 32; size++ {
		out = append(out, "bytes"+strconv.Itoa(size))
	}
	return out
}

func buildEntries() map[string]Entry {
	m := make(map[string]Entry, len(staticTypes)+len(aliasOrder)+len(dynamicTypes))
	for _, name := range staticTypes {
		m[name] = Entry{Name: name, Canonical: name}
	}
	for _, name := range dynamicTypes {
		m[name] = Entry{Name: name, Dynamic: true, Canonical: name}
	}
	for _, name := range aliasOrder {
		m[name] = Entry{Name: name, Alias: true, Canonical: aliasTargets[name]}
	}
	return m
}

// Lookup returns the catalog entry for name.
func Lookup(name string) (Entry, bool) {
	e, ok := entries[name]
	return e, ok
}

// IsRaw reports whether name may appear as an elementary type in a raw
// declaration: any static type, alias or dynamic type.
func IsRaw(name string) bool {
	_, ok := entries[name]
	return ok
}

// IsCanonical reports whether name may appear in a canonical signature.
func IsCanonical(name string) bool {
	e, ok := entries[name]
	return ok && !e.Alias
}

// IsDynamic reports whether name is a dynamically sized type.
func IsDynamic(name string) bool {
	e, ok := entries[name]
	return ok && e.Dynamic
}

// Canonical maps an alias to its canonical target. Any other name, including
// names outside the catalog, is returned unchanged.
func Canonical(name string) string {
	if target, ok := aliasTargets[name]; ok {
		return target
	}
	return name
}

// StaticTypes returns the fixed-width type names in catalog order.
func StaticTypes() []string {
	return append([]string(nil), staticTypes...)
}

// DynamicTypes returns the dynamically sized type names.
func DynamicTypes() []string {
	return append([]string(nil), dynamicTypes...)
}

// Aliases returns the alias entries in catalog order.
func Aliases() []Entry {
	out := make([]Entry, 0, len(aliasOrder))
	for _, name := range aliasOrder {
		out = append(out, entries[name])
	}
	return out
}

// CanonicalTypes returns every name that may appear in canonical output:
// dynamic types followed by static types.
func CanonicalTypes() []string {
	out := make([]string, 0, len(dynamicTypes)+len(staticTypes))
	out = append(out, dynamicTypes...)
	return append(out, staticTypes...)
}
