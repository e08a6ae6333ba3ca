package common

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	// OCTDecimals is the number of decimal places of one OCT (micro units)
	OCTDecimals = 6

	// MicroPerOCT is the number of micro units in one OCT
	MicroPerOCT = 1_000_000
)

// amountPattern accepts non-negative decimal numbers like "12", "12.5"
var amountPattern = regexp.MustCompile(`^\d+(\.\d+)?$`)

// IsValidAmount reports whether s is a well-formed positive decimal amount
func IsValidAmount(s string) bool {
	if !amountPattern.MatchString(s) {
		return false
	}
	v, err := strconv.ParseFloat(s, 64)
	return err == nil && v > 0
}

// OCTToMicro converts an OCT amount to integer micro units, truncating
// anything beyond six decimal places.
func OCTToMicro(amount float64) uint64 {
	return uint64(amount * MicroPerOCT)
}

// MicroToOCT converts integer micro units to an OCT amount
func MicroToOCT(micro uint64) float64 {
	return float64(micro) / MicroPerOCT
}

// FormatOCT converts micro units to an OCT string without float precision loss
func FormatOCT(micro uint64) string {
	s := fmt.Sprintf("%d", micro)

	// Pad with leading zeros if needed
	for len(s) <= OCTDecimals {
		s = "0" + s
	}

	// Insert decimal point
	pos := len(s) - OCTDecimals
	return s[:pos] + "." + s[pos:]
}

// ParseOCT converts an OCT decimal string to micro units without float
// precision loss. The fractional part is truncated to six digits.
func ParseOCT(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty string")
	}

	parts := strings.Split(s, ".")

	if len(parts) == 1 {
		n, err := strconv.ParseUint(parts[0], 10, 64)
		if err != nil {
			return 0, err
		}
		for i := 0; i < OCTDecimals; i++ {
			n *= 10
		}
		return n, nil
	}

	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid decimal format")
	}

	whole := parts[0]
	frac := parts[1]

	// Pad or truncate fractional part to exact decimals
	if len(frac) < OCTDecimals {
		frac += strings.Repeat("0", OCTDecimals-len(frac))
	} else if len(frac) > OCTDecimals {
		frac = frac[:OCTDecimals]
	}

	combined := whole + frac
	return strconv.ParseUint(combined, 10, 64)
}
