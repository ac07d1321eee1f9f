package decoder

import (
	"fmt"

	gethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/rs/zerolog"

	"github.com/evm-tools/calldecode/internal/abi"
)

// indexEntry binds a selector to the catalogue entry that first claimed it,
// with the go-ethereum argument layout pre-compiled at build time.
type indexEntry struct {
	ABIName string
	Fn      abi.Entry
	Sig     string
	Args    gethabi.Arguments
}

// Index maps 4-byte selectors to function signatures. It is built once from
// an ordered catalogue and read-only afterwards, so it is safe for
// unrestricted concurrent reads.
type Index struct {
	entries map[Selector]indexEntry
}

// BuildIndex walks the catalogue in order (definitions, then each
// definition's functions in declaration order) and indexes every function by
// its selector. Insert-if-absent: the first catalogue entry to claim a
// selector wins, later claims are silently ignored.
//
// A function whose parameter types do not compile is skipped with a warning;
// the rest of the catalogue still gets indexed.
func BuildIndex(defs []abi.Definition, log zerolog.Logger) *Index {
	ix := &Index{entries: make(map[Selector]indexEntry)}

	for _, def := range defs {
		for _, fn := range def.Functions() {
			args, err := buildArguments(fn.Inputs)
			if err != nil {
				log.Warn().
					Str("abi", def.Name).
					Str("function", fn.Name).
					Err(err).
					Msg("skipping unparseable catalogue entry")
				continue
			}

			sel := ComputeSelector(fn.Name, fn.Inputs)
			if _, taken := ix.entries[sel]; taken {
				continue
			}
			ix.entries[sel] = indexEntry{
				ABIName: def.Name,
				Fn:      fn,
				Sig:     CanonicalSignature(fn.Name, fn.Inputs),
				Args:    args,
			}
		}
	}
	return ix
}

// Has reports whether a selector (hex string, 0x-optional, case-insensitive)
// is present in the index.
func (ix *Index) Has(selector string) bool {
	sel, ok := ParseSelector(selector)
	if !ok {
		return false
	}
	_, found := ix.entries[sel]
	return found
}

// Find returns the catalogue name and canonical signature indexed under sel.
func (ix *Index) Find(sel Selector) (abiName, signature string, ok bool) {
	e, found := ix.entries[sel]
	if !found {
		return "", "", false
	}
	return e.ABIName, e.Sig, true
}

// Len returns the number of indexed selectors.
func (ix *Index) Len() int {
	return len(ix.entries)
}

func (ix *Index) lookup(sel Selector) (indexEntry, bool) {
	e, ok := ix.entries[sel]
	return e, ok
}

// buildArguments compiles the declared parameter types into a go-ethereum
// argument layout usable for unpacking.
func buildArguments(inputs []abi.Param) (gethabi.Arguments, error) {
	args := make(gethabi.Arguments, 0, len(inputs))
	for _, p := range inputs {
		t, err := gethabi.NewType(p.Type, "", marshalComponents(p.Components))
		if err != nil {
			return nil, fmt.Errorf("param %q (%s): %w", p.Name, p.Type, err)
		}
		args = append(args, gethabi.Argument{Name: p.Name, Type: t})
	}
	return args, nil
}

func marshalComponents(comps []abi.Param) []gethabi.ArgumentMarshaling {
	if len(comps) == 0 {
		return nil
	}
	out := make([]gethabi.ArgumentMarshaling, 0, len(comps))
	for _, c := range comps {
		out = append(out, gethabi.ArgumentMarshaling{
			Name:       c.Name,
			Type:       c.Type,
			Components: marshalComponents(c.Components),
		})
	}
	return out
}
