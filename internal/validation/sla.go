package validation

import (
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// SLASubmission is an SLA signing form that passed validation. The
// signatures are opaque base64 image data URLs; they are required but never
// verified beyond being non-empty.
type SLASubmission struct {
	EffectiveDate     time.Time
	ClientName        string
	ClientSignature   string
	ProviderSignature string
}

// SLA validates the raw SLA form fields against the given reference time.
// The effective date comparison is at day granularity in the local zone: a
// date equal to today's date passes no matter the time of day.
func SLA(effectiveDate, clientName, clientSignature, providerSignature string, now time.Time) (SLASubmission, map[string]string) {
	errs := map[string]string{}

	var parsed time.Time
	if effectiveDate == "" {
		errs["effectiveDate"] = "Effective date is required"
	} else {
		var err error
		parsed, err = time.ParseInLocation(dateLayout, effectiveDate, now.Location())
		if err != nil {
			errs["effectiveDate"] = "Effective date is required"
		} else {
			today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
			if parsed.Before(today) {
				errs["effectiveDate"] = "Effective date must be today or in the future"
			}
		}
	}

	name := strings.TrimSpace(clientName)
	if name == "" {
		errs["clientName"] = "Client name is required"
	}

	if clientSignature == "" {
		errs["clientSignature"] = "Client signature is required"
	}

	if providerSignature == "" {
		errs["providerSignature"] = "Provider signature is required"
	}

	if len(errs) > 0 {
		return SLASubmission{}, errs
	}

	return SLASubmission{
		EffectiveDate:     parsed,
		ClientName:        name,
		ClientSignature:   clientSignature,
		ProviderSignature: providerSignature,
	}, nil
}
