package sanitizer

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// The studio operates in Nigeria; bare national numbers are parsed against
// that region. Numbers already in international form keep their own region.
const defaultRegion = "NG"

// NormalizePhone parses a customer phone number and returns it in E.164
// format. Unparseable or invalid input returns an empty string; the phone is
// an optional contact field, not an identifier.
func NormalizePhone(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	parsed, err := phonenumbers.Parse(raw, defaultRegion)
	if err != nil {
		return ""
	}
	if !phonenumbers.IsValidNumber(parsed) {
		return ""
	}

	return phonenumbers.Format(parsed, phonenumbers.E164)
}
