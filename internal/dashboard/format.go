package dashboard

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var usPrinter = message.NewPrinter(language.AmericanEnglish)

// FormatCurrency renders v the way an en-US USD formatter would, minus the
// "$": thousand separators and exactly two decimals, halves rounded away
// from zero on the shortest representation of v. The symbol is part of the
// page markup.
func FormatCurrency(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return usPrinter.Sprintf("%.2f", v)
	}
	rounded := decimal.NewFromFloat(v).Round(2)
	return withSign(usPrinter.Sprintf("%.2f", rounded.InexactFloat64()), math.Signbit(v))
}

// fixed formats v with exactly prec decimals, rounding the exact binary
// value of v and resolving ties away from zero (1.005 -> "1.00",
// 14.125 -> "14.13").
func fixed(v float64, prec int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', prec, 64)
	}
	exact := decimal.RequireFromString(strconv.FormatFloat(v, 'f', 1074, 64))
	return withSign(exact.StringFixed(int32(prec)), v < 0)
}

// withSign restores the minus sign of a negative value that rounded to zero.
func withSign(s string, negative bool) string {
	if negative && !strings.HasPrefix(s, "-") {
		return "-" + s
	}
	return s
}

// shortest formats v with as few digits as round-trip requires (80, 2.5).
func shortest(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// signedPercent formats a percentage with a leading "+" when it is >= 0.
func signedPercent(v float64) string {
	if v == 0 {
		v = 0 // drop the sign of negative zero
	}
	if v >= 0 {
		return "+" + fixed(v, 2) + "%"
	}
	return fixed(v, 2) + "%"
}
