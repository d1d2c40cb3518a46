package appointment

import (
	"fmt"
	"time"

	"github.com/jwalitptl/doctor-channel/internal/model"
)

// PaymentAmount returns the amount due now for a consultation fee and payment option.
// The result is presentation-only and never persisted.
func PaymentAmount(fee float64, option model.PaymentOption) (float64, error) {
	switch option {
	case model.PaymentOptionFull:
		return fee, nil
	case model.PaymentOptionHalf:
		return fee / 2, nil
	case model.PaymentOptionPayAtVisit:
		return 0, nil
	default:
		return 0, fmt.Errorf("unknown payment option %q", option)
	}
}

// dateTimeLayouts are tried in order. Layouts without a zone are read as UTC.
var dateTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// ParseDateTime parses an ISO-8601 appointment instant.
func ParseDateTime(s string) (time.Time, error) {
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse %q as a date-time", s)
}
