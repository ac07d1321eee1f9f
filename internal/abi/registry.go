package abi

// Catalogue order is semantically significant: when two entries claim the
// same 4-byte selector, the earlier entry wins. Built-ins come first in the
// fixed order below; definitions added via Register (user ABI files, tests)
// follow in registration order.

var registered []Definition

// builtinCatalogue lists the bundled interface definitions in precedence
// order. New built-ins go in internal/abi/<name>_abi.go and get a slot here.
func builtinCatalogue() []Definition {
	return []Definition{
		erc20Definition,
		wethDefinition,
		erc721Definition,
		safeDefinition,
		accountDefinition,
		multicallDefinition,
	}
}

// Register appends a definition to the catalogue, after all built-ins.
func Register(def Definition) {
	registered = append(registered, def)
}

// Catalogue returns the full catalogue (built-ins, then registered
// definitions) as a fresh slice.
func Catalogue() []Definition {
	builtins := builtinCatalogue()
	out := make([]Definition, 0, len(builtins)+len(registered))
	out = append(out, builtins...)
	out = append(out, registered...)
	return out
}

// Lookup returns a catalogue definition by name. ok is false if not found.
func Lookup(name string) (Definition, bool) {
	for _, d := range Catalogue() {
		if d.Name == name {
			return d, true
		}
	}
	return Definition{}, false
}
