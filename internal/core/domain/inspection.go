package domain

import (
	"errors"
	"time"
)

// DateLayout is the calendar date format used on inspection records
// (day-month-year, e.g. "15-01-2025").
const DateLayout = "02-01-2006"

var ErrInspectionNotFound = errors.New("inspection not found")

// Inspection is a single periodic-technical-inspection record. Dates are
// stored as DD-MM-YYYY strings exactly as submitted; they are parsed only
// where a calendar comparison is needed.
type Inspection struct {
	ID              string    `json:"id" bson:"id"`
	CarLicensePlate string    `json:"car_license_plate" bson:"car_license_plate"`
	OwnerPhone      string    `json:"owner_phone" bson:"owner_phone"`
	InspectionDate  string    `json:"inspection_date" bson:"inspection_date"`
	ExpiryDate      string    `json:"expiry_date" bson:"expiry_date"`
	InspectorName   string    `json:"inspector_name" bson:"inspector_name"`
	InspectorPhone  string    `json:"inspector_phone" bson:"inspector_phone"`
	CarKilometers   int       `json:"car_kilometers" bson:"car_kilometers"`
	CreatedAt       time.Time `json:"created_at" bson:"created_at"`
}

// ParseDate parses a DD-MM-YYYY calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// ExpiresWithin reports whether the record's expiry date falls inside the
// inclusive window [today, today+days], measured in whole days from the
// start of today. The second return value is false when the expiry date
// does not parse as a calendar date.
func (i *Inspection) ExpiresWithin(now time.Time, days int) (bool, bool) {
	expiry, err := ParseDate(i.ExpiryDate)
	if err != nil {
		return false, false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	until := int(expiry.Sub(today).Hours() / 24)
	return until >= 0 && until <= days, true
}
