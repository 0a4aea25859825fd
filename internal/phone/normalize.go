package phone

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// Normalize converts a raw phone number into the canonical form used by the
// lead de-duplication key. Valid numbers are normalized to E.164 so that
// "099990 00001", "+91 99990 00001" and "9999000001" collapse to the same
// key. Numbers that cannot be parsed or are not valid for the region fall
// back to their bare digits, so short test fixtures still compare byte-wise.
func Normalize(raw, region string) string {
	if region == "" {
		region = "IN"
	}

	parsed, err := phonenumbers.Parse(raw, region)
	if err == nil && phonenumbers.IsValidNumber(parsed) {
		return phonenumbers.Format(parsed, phonenumbers.E164)
	}

	return Digits(raw)
}

// Digits strips every non-digit character from a phone number, keeping a
// leading plus sign if present.
func Digits(raw string) string {
	var b strings.Builder
	for i, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		} else if r == '+' && i == 0 {
			b.WriteRune(r)
		}
	}
	return b.String()
}
