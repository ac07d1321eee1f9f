package decoder

import (
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/sha3"

	"github.com/evm-tools/calldecode/internal/abi"
)

// Selector is the first 4 bytes of Keccak-256 over the canonical signature.
type Selector [4]byte

// Hex returns the 0x-prefixed lowercase hex form of the selector.
func (s Selector) Hex() string {
	return "0x" + hex.EncodeToString(s[:])
}

// ParseSelector parses a 0x-optional, case-insensitive 8-hex-char selector.
func ParseSelector(s string) (Selector, bool) {
	clean := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if len(clean) != 8 {
		return Selector{}, false
	}
	raw, err := hex.DecodeString(strings.ToLower(clean))
	if err != nil {
		return Selector{}, false
	}
	var sel Selector
	copy(sel[:], raw)
	return sel, true
}

// CanonicalSignature builds the signature string used for selector
// derivation: name(type1,type2,...) — types only, declaration order,
// tuples expanded to their component layout.
func CanonicalSignature(name string, inputs []abi.Param) string {
	types := make([]string, len(inputs))
	for i, p := range inputs {
		types[i] = canonicalType(p)
	}
	return name + "(" + strings.Join(types, ",") + ")"
}

// canonicalType renders a parameter type for signature purposes.
// "tuple" and its array forms expand to "(comp1,comp2,...)" plus suffix.
func canonicalType(p abi.Param) string {
	if !strings.HasPrefix(p.Type, "tuple") {
		return p.Type
	}
	comps := make([]string, len(p.Components))
	for i, c := range p.Components {
		comps[i] = canonicalType(c)
	}
	return "(" + strings.Join(comps, ",") + ")" + strings.TrimPrefix(p.Type, "tuple")
}

// ComputeSelector derives the 4-byte selector for a function entry.
func ComputeSelector(name string, inputs []abi.Param) Selector {
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(CanonicalSignature(name, inputs)))
	var sel Selector
	copy(sel[:], h.Sum(nil)[:4])
	return sel
}

// SelectorFromCalldata extracts the selector from raw hex calldata without
// consulting any index. ok is false for empty input, the empty-call marker
// 0x, or anything shorter than 10 characters.
func SelectorFromCalldata(raw string) (Selector, bool) {
	clean, ok := normalizeCalldata(raw)
	if !ok {
		return Selector{}, false
	}
	return ParseSelector(clean[:8])
}

// normalizeCalldata strips the optional 0x prefix and lowercases the hex.
// ok is false when the input is too short to contain a 4-byte selector.
func normalizeCalldata(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "0x" || len(raw) < 10 {
		return "", false
	}
	clean := strings.TrimPrefix(strings.TrimPrefix(raw, "0x"), "0X")
	return strings.ToLower(clean), true
}
