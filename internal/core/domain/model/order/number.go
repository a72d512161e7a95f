package order

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"time"

	"quickcourier/internal/pkg/errs"
)

// numberPrefix starts every generated order number.
const numberPrefix = "QC"

var numberPattern = regexp.MustCompile(`^QC-\d{8}-\d{6}-\d{3}$`)

// GenerateNumber produces a human-readable order number of the form
// QC-YYYYMMDD-HHMMSS-NNN, where NNN is a random 3-digit disambiguator for
// orders created within the same second.
func GenerateNumber(now time.Time) string {
	return fmt.Sprintf("%s-%s-%03d", numberPrefix, now.Format("20060102-150405"), rand.IntN(1000))
}

// ValidateNumber checks that a string has the generated order-number shape.
func ValidateNumber(number string) error {
	if number == "" {
		return errs.NewValueIsRequiredError("number")
	}
	if !numberPattern.MatchString(number) {
		return errs.NewValueIsInvalidErrorWithCause(
			"number", fmt.Errorf("%q does not match QC-YYYYMMDD-HHMMSS-NNN", number))
	}
	return nil
}
