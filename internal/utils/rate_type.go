package utils

import (
	"strings"

	"condopark/internal/entities"
)

// NormalizeRateType maps the spellings owners commonly type onto the canonical
// rate type values. Unknown values are kept (lower-cased) since the set is open.
func NormalizeRateType(raw entities.RateType) entities.RateType {
	v := strings.ToLower(strings.TrimSpace(string(raw)))
	v = strings.NewReplacer("-", "_", " ", "_").Replace(v)
	switch v {
	case "overnight", "overnight_flat", "flat_overnight":
		return entities.RateOvernightFlat
	case "hour", "hourly", "per_hour":
		return entities.RateHourly
	case "day", "daily", "per_day":
		return entities.RateDaily
	}
	return entities.RateType(v)
}

// NormalizeEmail is the key used for the users collection.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
