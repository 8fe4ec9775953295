package catalog

import "strings"

// Globe is shown when a country code has no flag.
const Globe = "🌐"

const regionalIndicatorA = 0x1F1E6

// Flag returns the emoji flag for an ISO 3166-1 alpha-2 country code as a
// pair of regional indicator symbols. Empty, malformed or unknown codes,
// including UnknownCountry, yield Globe.
func Flag(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != 2 || code == UnknownCountry {
		return Globe
	}
	var b strings.Builder
	for i := 0; i < len(code); i++ {
		c := code[i]
		if c < 'A' || c > 'Z' {
			return Globe
		}
		b.WriteRune(rune(regionalIndicatorA + int(c-'A')))
	}
	return b.String()
}
