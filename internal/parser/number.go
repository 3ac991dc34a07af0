package parser

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math/big"
	"strings"
)

// ParseBigInt parses a big integer from the formats found in signature
// files and on the command line.
//
// Strings with a 0x prefix or containing hex letters are read as hex, other
// strings as decimal.  json.Number keeps full precision; float64 is accepted
// for callers that decoded JSON without UseNumber and loses precision above
// 2^53.
func ParseBigInt(val interface{}) (*big.Int, error) {
	switch v := val.(type) {
	case string:
		s := strings.TrimSpace(v)
		base := 10
		if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
			s = s[2:]
			base = 16
		} else if strings.ContainsAny(s, "abcdefABCDEF") {
			base = 16
		}

		z, ok := new(big.Int).SetString(s, base)
		if !ok || s == "" {
			return nil, fmt.Errorf("invalid number format: %s", v)
		}
		return z, nil

	case json.Number:
		z, ok := new(big.Int).SetString(string(v), 10)
		if !ok {
			return nil, fmt.Errorf("invalid number format: %s", v)
		}
		return z, nil

	case float64:
		z, ok := new(big.Int).SetString(fmt.Sprintf("%.0f", v), 10)
		if !ok {
			return nil, fmt.Errorf("invalid number format: %v", v)
		}
		return z, nil

	case int64:
		return big.NewInt(v), nil

	case int:
		return big.NewInt(int64(v)), nil

	default:
		return nil, fmt.Errorf("unsupported type: %T", val)
	}
}

// HexDecode decodes a hex string, handling a 0x prefix.
func HexDecode(s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "0x")
	s = strings.TrimPrefix(s, "0X")
	return hex.DecodeString(s)
}
