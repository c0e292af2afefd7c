package locale

import "strings"

// InferCountryFromPhone resolves a supported market country from the
// dialing prefix of an E.164 (or near-E.164) phone number. Rooms carry
// the site contact phone, so this is how a new site gets placed in the
// NL/BE/DE market without explicit configuration. Returns nil for
// numbers outside the supported markets.
func InferCountryFromPhone(phone string) *Country {
	normalized := strings.TrimSpace(phone)
	if normalized == "" {
		return nil
	}

	for _, country := range Countries {
		for _, prefix := range country.PhonePrefixes {
			if strings.HasPrefix(normalized, prefix) {
				return &country
			}
		}
	}
	return nil
}

// InferTimezoneFromPhone is the timezone shortcut over
// InferCountryFromPhone, used when seeding site settings defaults.
// Falls back to DefaultTimezone for unrecognized prefixes.
func InferTimezoneFromPhone(phone string) string {
	if country := InferCountryFromPhone(phone); country != nil {
		return country.DefaultTimezone
	}
	return DefaultTimezone
}
