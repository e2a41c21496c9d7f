package dto

import (
	"time"

	"rentacar/shared/failure"
	"rentacar/shared/rental"
	"rentacar/shared/validator"
)

// Trip is the pickup location and rental period shared by search and booking requests.
type Trip struct {
	PickupLocation string `json:"pickup_location"`
	StartDate      string `json:"start_date"`
	ReturnDate     string `json:"return_date"`
}

// Validate checks the location first and then the dates, returning the parsed period.
func (t Trip) Validate() (time.Time, time.Time, error) {
	if err := validator.ValidateVar(t.PickupLocation, "city"); err != nil {
		return time.Time{}, time.Time{}, err //nolint:wrapcheck
	}

	start, ret, err := rental.ParseDateRange(t.StartDate, t.ReturnDate)
	if err != nil {
		return time.Time{}, time.Time{}, failure.BadRequestFromString(rental.MessageInvalidDates) //nolint:wrapcheck
	}

	return start, ret, nil
}
