package reactivity

import "github.com/cespare/xxhash/v2"

// Symbol is a property key that cannot collide with string or numeric keys.
type Symbol struct {
	id   uint64
	name string
}

// SymbolFor returns the symbol registered under name. The same name always
// yields an equal Symbol.
func SymbolFor(name string) Symbol {
	return Symbol{
		id:   xxhash.Sum64String(name),
		name: name,
	}
}

func (s Symbol) String() string {
	return "Symbol(" + s.name + ")"
}

// iterateKey is tracked by anything that depends on the set of keys rather
// than on one key's value.
var iterateKey = SymbolFor("reactivity.iterate")
