package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const rupeeSign = "₹"

// FormatMoney keeps consistent decimal formatting for currency fields.
func FormatMoney(amount float64) string {
	return strconv.FormatFloat(roundCents(amount), 'f', -1, 64)
}

// FormatRupee renders an amount as "₹25,000" or "₹6,800.5".
// Fractions are rounded to paise and trailing zeros dropped.
func FormatRupee(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	amount = roundCents(amount)
	whole := int64(amount)
	out := sign + rupeeSign + formatThousand(whole)

	frac := amount - float64(whole)
	if frac > 0 {
		s := strconv.FormatFloat(frac, 'f', 2, 64)
		s = strings.TrimRight(s, "0")
		if s != "0." && s != "0" {
			out += strings.TrimPrefix(s, "0")
		}
	}
	return out
}

// ParseAmount extracts the numeric amount from a display string such as
// "₹20,000" or "Rs 1,250.50". Only digits and the decimal point survive.
func ParseAmount(s string) (float64, error) {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	return strconv.ParseFloat(b.String(), 64)
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

func formatThousand(n int64) string {
	if n == 0 {
		return "0"
	}
	str := strconv.FormatInt(n, 10)
	var out strings.Builder
	for i, c := range str {
		if i != 0 && (len(str)-i)%3 == 0 {
			out.WriteByte(',')
		}
		out.WriteRune(c)
	}
	return out.String()
}
