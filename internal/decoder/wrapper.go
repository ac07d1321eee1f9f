package decoder

import (
	"encoding/hex"
	"strings"

	"github.com/evm-tools/calldecode/internal/abi"
)

// wrapperShape describes a known forwarding function: which parameter names
// to try, in priority order, for the forwarded target, value, and calldata.
type wrapperShape struct {
	to    []string
	value []string
	data  []string
}

// wrapperShapes is the fixed table of known forwarding functions. Matching
// is by function name; the parameter lists are searched in order and a name
// only matches when its declared type also matches (address / uint256 /
// bytes). When no name matches, the first parameter of the expected type
// anywhere in the signature is used.
var wrapperShapes = map[string]wrapperShape{
	"execTransaction": {
		to:    []string{"to"},
		value: []string{"value"},
		data:  []string{"data"},
	},
	"executeTransaction": {
		to:    []string{"to", "target", "destination"},
		value: []string{"value"},
		data:  []string{"data"},
	},
	"execute": {
		to:    []string{"to", "target", "dest", "destination"},
		value: []string{"value", "amount"},
		data:  []string{"data", "func", "callData"},
	},
	"exec": {
		to:    []string{"to", "target", "dest"},
		value: []string{"value", "amount"},
		data:  []string{"data", "func", "callData"},
	},
	"forward": {
		to:    []string{"to", "target", "dest"},
		value: []string{"value"},
		data:  []string{"data", "callData"},
	},
	"invoke": {
		to:    []string{"to", "target"},
		value: []string{"value"},
		data:  []string{"data", "callData"},
	},
}

// wrapperSlots holds the located parameter indices; -1 means unresolved.
// Callers must tolerate partial resolution (e.g. a target without data).
type wrapperSlots struct {
	ToIndex    int
	ValueIndex int
	DataIndex  int
}

// locateWrapped resolves the forwarding parameter slots for a function. ok
// is false when the function name is not in the wrapper table at all.
func locateWrapped(name string, inputs []abi.Param) (wrapperSlots, bool) {
	shape, known := wrapperShapes[name]
	if !known {
		return wrapperSlots{ToIndex: -1, ValueIndex: -1, DataIndex: -1}, false
	}
	return wrapperSlots{
		ToIndex:    findParam(inputs, shape.to, isAddressType),
		ValueIndex: findParam(inputs, shape.value, isUint256Type),
		DataIndex:  findParam(inputs, shape.data, isBytesType),
	}, true
}

// findParam scans candidate names in priority order, accepting a name only
// when the declared type matches; falls back to the first parameter of the
// expected type at any position. -1 when nothing qualifies.
func findParam(inputs []abi.Param, candidates []string, typeOK func(string) bool) int {
	for _, want := range candidates {
		for i, p := range inputs {
			if p.Name == want && typeOK(p.Type) {
				return i
			}
		}
	}
	for i, p := range inputs {
		if typeOK(p.Type) {
			return i
		}
	}
	return -1
}

func isAddressType(t string) bool { return t == "address" }
func isUint256Type(t string) bool { return t == "uint256" }
func isBytesType(t string) bool   { return t == "bytes" }

// looksLikeCalldata reports whether a hex string could carry an embedded
// call: after stripping an optional 0x prefix it must be valid hex and at
// least 8 hex chars (a full 4-byte selector). Necessary, not sufficient —
// the inner decode may still find no matching selector.
func looksLikeCalldata(s string) bool {
	clean := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if len(clean) < 8 {
		return false
	}
	_, err := hex.DecodeString(clean)
	return err == nil
}
