package bench

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseSizeBytes converts size strings like "64MB", "512KiB", "1GiB" or
// "1048576" to a byte count. Decimal units (KB/MB/GB) are powers of 1000,
// binary units (KiB/MiB/GiB, short forms Ki/Mi/Gi) powers of 1024. A
// fractional prefix is allowed and the result rounds to the nearest byte.
// Intended for benchmark inputs, not a general-purpose parser.
func ParseSizeBytes(text string) (uint64, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0, fmt.Errorf("empty size string")
	}

	// Split numeric prefix from unit suffix.
	i := 0
	seenDot := false
	for i < len(s) {
		c := s[i]
		if c >= '0' && c <= '9' {
			i++
			continue
		}
		if c == '.' && !seenDot {
			seenDot = true
			i++
			continue
		}
		break
	}
	if i == 0 {
		return 0, fmt.Errorf("size %q has no numeric prefix", text)
	}

	value, err := strconv.ParseFloat(s[:i], 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size number %q: %w", s[:i], err)
	}
	if value < 0 {
		return 0, fmt.Errorf("size must be non-negative")
	}

	var mult float64
	switch strings.ToLower(strings.TrimSpace(s[i:])) {
	case "", "b":
		mult = 1
	case "kb":
		mult = 1e3
	case "mb":
		mult = 1e6
	case "gb":
		mult = 1e9
	case "kib", "ki":
		mult = 1024
	case "mib", "mi":
		mult = 1024 * 1024
	case "gib", "gi":
		mult = 1024 * 1024 * 1024
	default:
		return 0, fmt.Errorf("unsupported size unit %q", strings.TrimSpace(s[i:]))
	}

	bytes := value * mult
	if bytes > float64(math.MaxUint64) {
		return 0, fmt.Errorf("size %q overflows uint64", text)
	}

	return uint64(bytes + 0.5), nil
}
