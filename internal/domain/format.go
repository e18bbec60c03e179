package domain

import (
	"strconv"
	"strings"
)

// fixed formats v with prec decimals. Values that round to zero print
// without a sign, so -0.003 at two decimals is "0.00".
func fixed(v float64, prec int) string {
	s := strconv.FormatFloat(v, 'f', prec, 64)
	if strings.HasPrefix(s, "-") && strings.Trim(s[1:], "0.") == "" {
		return s[1:]
	}
	return s
}
