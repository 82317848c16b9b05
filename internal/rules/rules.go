// Package rules implements the sector-specific half of the validation
// engine. Checks are pure functions dispatched by the provider's sector
// string; new sectors are supported by registering new entries, existing
// entries are never modified.
package rules

import (
	"strings"
	"time"

	"github.com/frontdesk-suite/service-frontdesk/internal/domain"
)

// BookingDetails carries the booking attributes sector checks may inspect.
type BookingDetails struct {
	ServiceType string
	Notes       string
	ScheduledAt time.Time
}

// CheckFunc validates booking details for one sector. It must be
// side-effect free; a nil return means the booking passes.
type CheckFunc func(b BookingDetails) error

// registry maps a provider sector to its check. Sectors without an entry
// have no additional rules. Mutated only via Register, expected at init time.
var registry = map[string]CheckFunc{
	"laboratory":     checkLaboratory,
	"transportation": checkTransportation,
	"hospitality":    checkHospitality,
}

// Register adds or replaces the check for a sector.
func Register(sector string, check CheckFunc) {
	registry[sector] = check
}

// Check runs the sector's check against the booking details. Unknown
// sectors pass unconditionally.
func Check(sector string, b BookingDetails) error {
	check, ok := registry[sector]
	if !ok {
		return nil
	}
	return check(b)
}

// checkLaboratory requires the scheduled local hour to fall within the
// [08:00, 18:00) operating window.
func checkLaboratory(b BookingDetails) error {
	hour := b.ScheduledAt.Hour()
	if hour < 8 || hour >= 18 {
		return domain.NewValidationError("outside operating hours")
	}
	return nil
}

// checkTransportation requires a pickup-location indicator in the notes.
func checkTransportation(b BookingDetails) error {
	if !strings.Contains(strings.ToLower(b.Notes), "pickup") {
		return domain.NewValidationError("missing pickup location")
	}
	return nil
}

// checkHospitality requires a check-out indicator in the notes.
func checkHospitality(b BookingDetails) error {
	if !strings.Contains(strings.ToLower(b.Notes), "check-out") {
		return domain.NewValidationError("missing check-out date")
	}
	return nil
}
