package format

import (
	"fmt"
	"strconv"
	"strings"
)

// Currency describes one of the currencies the marketplace supports.
type Currency struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// supported mirrors the API's /products/currencies list.
var supported = []Currency{
	{Code: "DKK", Name: "Danish Krone", Symbol: "kr"},
	{Code: "EUR", Name: "Euro", Symbol: "€"},
	{Code: "USD", Name: "US Dollar", Symbol: "$"},
	{Code: "GBP", Name: "British Pound", Symbol: "£"},
	{Code: "SEK", Name: "Swedish Krona", Symbol: "kr"},
	{Code: "NOK", Name: "Norwegian Krone", Symbol: "kr"},
}

// SupportedCurrencies returns the currencies the marketplace supports.
func SupportedCurrencies() []Currency {
	out := make([]Currency, len(supported))
	copy(out, supported)
	return out
}

// Price renders an amount in the given currency, e.g. "$1,250.00" or
// "1,250.00 kr". Unknown currency codes are appended verbatim.
func Price(amount float64, code string) string {
	n := groupThousands(strconv.FormatFloat(amount, 'f', 2, 64))
	for _, c := range supported {
		if c.Code == code {
			if c.Symbol == "kr" {
				return n + " kr"
			}
			return c.Symbol + n
		}
	}
	return fmt.Sprintf("%s %s", n, code)
}

// groupThousands inserts comma separators into the integer part of a
// formatted decimal.
func groupThousands(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	out := b.String()
	if frac != "" {
		out += "." + frac
	}
	if neg {
		out = "-" + out
	}
	return out
}
