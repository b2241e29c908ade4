package patient

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// defaultRegion is assumed for phone numbers given without a country code.
const defaultRegion = "US"

// normalizePhone validates a phone number and returns it in E.164 form.
// An empty input is allowed and returned unchanged; phone is optional.
func normalizePhone(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}

	num, err := phonenumbers.Parse(raw, defaultRegion)
	if err != nil {
		return "", ErrInvalidPhone
	}
	if !phonenumbers.IsValidNumber(num) {
		return "", ErrInvalidPhone
	}
	return phonenumbers.Format(num, phonenumbers.E164), nil
}
