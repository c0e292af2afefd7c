package sanitizer

import (
	"strings"

	"flexspace/pkg/model"
)

// NormalizeWeekday maps any casing of an English weekday name to its
// canonical form. Unknown names come back empty.
func NormalizeWeekday(day string) string {
	day = strings.TrimSpace(day)
	if day == "" {
		return ""
	}

	for _, canonical := range model.CanonicalWeekdays {
		if strings.EqualFold(day, canonical) {
			return canonical
		}
	}
	return ""
}
