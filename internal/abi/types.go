package abi

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrDefinitionNotFound is returned when a catalogue entry is not found.
var ErrDefinitionNotFound = errors.New("interface definition not found")

// Param is a parameter in an interface entry. Tuple-typed parameters carry
// their field layout in Components.
type Param struct {
	Name       string  `json:"name"`
	Type       string  `json:"type"`
	Components []Param `json:"components,omitempty"`
}

// Entry is one interface entry (function, event, etc.).
type Entry struct {
	Name            string  `json:"name"`
	Type            string  `json:"type"`
	Inputs          []Param `json:"inputs"`
	Outputs         []Param `json:"outputs"`
	StateMutability string  `json:"stateMutability"`
}

// IsFunction returns true for callable entries (the only kind decoding cares about).
func (e Entry) IsFunction() bool {
	return e.Type == "function"
}

// Definition is a named interface definition: an ordered list of entries.
// Built once at catalogue load, never mutated afterwards.
type Definition struct {
	Name    string  `json:"name"`
	Entries []Entry `json:"abi"`
}

// Functions returns the function entries of the definition, in declaration order.
func (d Definition) Functions() []Entry {
	var fns []Entry
	for _, e := range d.Entries {
		if e.IsFunction() {
			fns = append(fns, e)
		}
	}
	return fns
}

// ParseJSON builds a Definition from a standard Solidity ABI JSON array
// (the format emitted by solc, Hardhat, and Foundry).
func ParseJSON(name string, data []byte) (Definition, error) {
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return Definition{}, fmt.Errorf("parsing ABI %q: %w", name, err)
	}
	return Definition{Name: name, Entries: entries}, nil
}
