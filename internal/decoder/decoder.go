package decoder

import (
	"encoding/hex"

	"github.com/rs/zerolog"
)

// DefaultMaxDepth bounds inner-call recursion. Adversarial calldata can nest
// wrappers arbitrarily deep; past the cap the chain is returned as decoded
// so far, with the deepest inner call left absent.
const DefaultMaxDepth = 16

// DecodedParam is one formatted parameter of a decoded call.
type DecodedParam struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Value string `json:"value"`
}

// Call is the decoded form of one function call. A wrapper call carries the
// forwarded target/value (when located) and the recursively decoded inner
// call (when its payload matched a known selector). Each node is built fresh
// per decode and never mutated afterwards.
type Call struct {
	ABI        string         `json:"abi"`
	Function   string         `json:"function"`
	Signature  string         `json:"signature"`
	Params     []DecodedParam `json:"params"`
	InnerTo    string         `json:"inner_to,omitempty"`
	InnerValue string         `json:"inner_value,omitempty"`
	Inner      *Call          `json:"inner,omitempty"`
}

// Decoder turns raw calldata into a Call tree using an immutable selector
// index. Decoding is a pure function of (index, calldata): no state is
// carried between calls, so one Decoder serves any number of goroutines.
type Decoder struct {
	index    *Index
	maxDepth int
	log      zerolog.Logger
}

// New creates a Decoder over a built index.
func New(index *Index, log zerolog.Logger) *Decoder {
	return &Decoder{index: index, maxDepth: DefaultMaxDepth, log: log}
}

// Decode decodes raw hex calldata (0x-optional, case-insensitive) into a
// Call tree. A nil result means "no match" — empty input, unknown selector,
// or a payload that does not decode against the matched signature. None of
// those are errors: arbitrary on-chain data routinely has no match.
func (d *Decoder) Decode(raw string) *Call {
	return d.decode(raw, d.maxDepth)
}

func (d *Decoder) decode(raw string, depth int) *Call {
	clean, ok := normalizeCalldata(raw)
	if !ok {
		return nil
	}

	sel, ok := ParseSelector(clean[:8])
	if !ok {
		return nil
	}
	ent, found := d.index.lookup(sel)
	if !found {
		return nil
	}

	payload, err := hex.DecodeString(clean[8:])
	if err != nil {
		d.log.Warn().Str("selector", sel.Hex()).Err(err).Msg("calldata is not valid hex")
		return nil
	}

	vals, err := ent.Args.Unpack(payload)
	if err != nil {
		d.log.Warn().
			Str("abi", ent.ABIName).
			Str("signature", ent.Sig).
			Err(err).
			Msg("calldata does not decode against matched signature")
		return nil
	}

	call := &Call{
		ABI:       ent.ABIName,
		Function:  ent.Fn.Name,
		Signature: ent.Sig,
		Params:    make([]DecodedParam, len(ent.Fn.Inputs)),
	}
	for i, p := range ent.Fn.Inputs {
		call.Params[i] = DecodedParam{
			Name:  p.Name,
			Type:  p.Type,
			Value: FormatValue(vals[i], p.Type),
		}
	}

	if slots, known := locateWrapped(ent.Fn.Name, ent.Fn.Inputs); known {
		if slots.ToIndex >= 0 {
			call.InnerTo = call.Params[slots.ToIndex].Value
		}
		if slots.ValueIndex >= 0 {
			call.InnerValue = call.Params[slots.ValueIndex].Value
		}
		if slots.DataIndex >= 0 && depth > 0 {
			call.Inner = d.tryInner(vals[slots.DataIndex], depth)
		}
		return call
	}

	// Opportunistic fallback: a function outside the wrapper table may still
	// carry calldata in a bytes parameter. First successful inner decode, in
	// declaration order, wins.
	if depth > 0 {
		for i, p := range ent.Fn.Inputs {
			if p.Type != "bytes" {
				continue
			}
			if inner := d.tryInner(vals[i], depth); inner != nil {
				call.Inner = inner
				break
			}
		}
	}
	return call
}

// tryInner attempts to decode a bytes parameter value as an embedded call.
func (d *Decoder) tryInner(v any, depth int) *Call {
	b, ok := v.([]byte)
	if !ok {
		return nil
	}
	inner := "0x" + hex.EncodeToString(b)
	if !looksLikeCalldata(inner) {
		return nil
	}
	return d.decode(inner, depth-1)
}
