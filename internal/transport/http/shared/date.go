package shared

import "time"

// Layouts accepted for date fields in request bodies and query strings,
// tried in order. Day-first matches how office orders are written.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"02-01-2006",
	"02/01/2006",
}

// ParseDate accepts RFC3339, ISO dates, or day-first dates.
func ParseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	var err error
	for _, layout := range dateLayouts {
		var parsed time.Time
		if parsed, err = time.Parse(layout, value); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, err
}
