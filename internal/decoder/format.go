package decoder

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"reflect"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// maxPlainDigits is the decimal length above which a wei-scale amount
// annotation is attempted for large unsigned integers.
const maxPlainDigits = 15

// FormatValue renders a decoded parameter value for display. It is total:
// any value yields some string, nil yields "null".
func FormatValue(v any, typeTag string) string {
	if v == nil {
		return "null"
	}

	switch val := v.(type) {
	case *big.Int:
		return formatBigInt(val, typeTag)
	case common.Address:
		return val.Hex()
	case []byte:
		return formatBytes(val)
	case bool:
		return strconv.FormatBool(val)
	case string:
		return val
	case uint8:
		return strconv.FormatUint(uint64(val), 10)
	case uint16:
		return strconv.FormatUint(uint64(val), 10)
	case uint32:
		return strconv.FormatUint(uint64(val), 10)
	case uint64:
		return formatBigInt(new(big.Int).SetUint64(val), typeTag)
	case int8, int16, int32, int64:
		return fmt.Sprintf("%d", val)
	}

	// Arrays and fixed-byte types come through as reflect kinds: [N]byte for
	// bytesN, slices/arrays for T[] and T[N].
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Array, reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			b := make([]byte, rv.Len())
			reflect.Copy(reflect.ValueOf(b), rv)
			return formatBytes(b)
		}
		elemTag := elementType(typeTag)
		parts := make([]string, rv.Len())
		for i := range parts {
			parts[i] = FormatValue(rv.Index(i).Interface(), elemTag)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	}

	return fmt.Sprintf("%v", v)
}

// formatBigInt renders an unsigned integer as decimal. For wei-scale
// candidates (uint64/128/256) longer than 15 digits, the value divided by
// 10^18 is appended as a parenthesized 6-decimal approximation — a display
// aid only, since no per-token decimals metadata exists here.
func formatBigInt(v *big.Int, typeTag string) string {
	s := v.String()
	if !isAmountCandidate(typeTag) || len(s) <= maxPlainDigits {
		return s
	}

	q := new(big.Float).Quo(new(big.Float).SetInt(v), big.NewFloat(1e18))
	f, _ := q.Float64()
	if f < 0.000001 {
		return s
	}
	return fmt.Sprintf("%s (%.6f)", s, f)
}

func isAmountCandidate(typeTag string) bool {
	switch typeTag {
	case "uint64", "uint128", "uint256":
		return true
	}
	return false
}

// formatBytes renders a byte payload as 0x-prefixed hex. Payloads over 32
// bytes are truncated to the first 32 with an explicit byte count appended.
func formatBytes(b []byte) string {
	h := "0x" + hex.EncodeToString(b)
	if len(h) <= 66 {
		return h
	}
	return fmt.Sprintf("0x%s... (%d bytes)", hex.EncodeToString(b[:32]), len(b))
}

// elementType derives the element tag of an array type by stripping the
// trailing [...] suffix. "unknown" when the tag carries no array suffix.
func elementType(typeTag string) string {
	if strings.HasSuffix(typeTag, "]") {
		if i := strings.LastIndex(typeTag, "["); i >= 0 {
			return typeTag[:i]
		}
	}
	return "unknown"
}
