package locale

import (
	"strings"
)

const (
	DefaultTimezone = "UTC"
)

type Country struct {
	Code            string   // ISO 3166-1 alpha-2 code
	Name            string
	PhonePrefixes   []string // with and without the leading plus
	DefaultTimezone string   // IANA zone
}

var (
	Countries = map[string]Country{
		"NL": {
			Code:            "NL",
			Name:            "Netherlands",
			PhonePrefixes:   []string{"+31", "31"},
			DefaultTimezone: "Europe/Amsterdam",
		},
		"BE": {
			Code:            "BE",
			Name:            "Belgium",
			PhonePrefixes:   []string{"+32", "32"},
			DefaultTimezone: "Europe/Brussels",
		},
		"DE": {
			Code:            "DE",
			Name:            "Germany",
			PhonePrefixes:   []string{"+49", "49"},
			DefaultTimezone: "Europe/Berlin",
		},
	}

	TimeZoneTags = map[string][]string{
		"NL": {"Europe/Amsterdam"},
		"BE": {"Europe/Brussels"},
		"DE": {"Europe/Berlin", "Europe/Busingen"},
	}
)

// DetectRegion maps an IANA zone to a supported region, defaulting to
// NL where the sites are.
func DetectRegion(tz string) string {
	for region, zones := range TimeZoneTags {
		for _, z := range zones {
			if strings.EqualFold(tz, z) {
				return region
			}
		}
	}
	return "NL"
}
