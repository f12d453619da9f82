// Package symbols canonicalizes broker-supplied ticker spellings into the
// symbols recognized by the market data vendor. The normalized symbol is
// used both as the aggregation key and as the price-lookup key.
package symbols

import (
	"regexp"
	"strings"
)

var nonSymbolChars = regexp.MustCompile(`[^A-Z0-9&-]`)

// aliases maps broker-internal spellings to the externally recognized
// ticker. Lookup happens after cleaning, so keys are already uppercased.
// Treated as data: extend the table, don't touch Normalize.
var aliases = map[string]string{
	"MSTCLTD":    "MSTC",
	"NAMINDIA":   "NAM-INDIA",
	"ABORTWELD":  "ADORWELD",
	"UNITDSPR":   "UNITDSPR",
	"AREM":       "ARE&M",
	"LGBBROSLTD": "LGBBROSLTD",
	"HSCL":       "HSCL",
}

// Normalize canonicalizes a raw ticker string. It trims and uppercases,
// strips every character outside [A-Z0-9&-], drops a single trailing "6"
// (a broker series suffix that price vendors don't recognize; this can
// misfire on symbols that legitimately end in 6), and
// finally applies the alias table.
//
// Normalize never fails. An empty result means the row is unparseable and
// callers must skip it.
func Normalize(raw string) string {
	cleaned := strings.ToUpper(strings.TrimSpace(raw))
	cleaned = nonSymbolChars.ReplaceAllString(cleaned, "")
	cleaned = strings.TrimSuffix(cleaned, "6")

	if mapped, ok := aliases[cleaned]; ok {
		return mapped
	}
	return cleaned
}
