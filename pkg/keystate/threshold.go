package keystate

import "strconv"

// parseDecimalThreshold parses an inception threshold field (kt, nt, bt),
// which is rendered as a plain decimal string.
func parseDecimalThreshold(s string) (int, error) {
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, ErrMalformedThreshold
	}
	return int(n), nil
}

// parseHexThreshold parses a rotation threshold field (kt, nt, bt),
// which is rendered as a lowercase hex string.
func parseHexThreshold(s string) (int, error) {
	n, err := strconv.ParseInt(s, 16, 32)
	if err != nil {
		return 0, ErrMalformedThreshold
	}
	return int(n), nil
}
