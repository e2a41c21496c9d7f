package model

import (
	"fmt"
	"net/http"
	"time"

	"rentacar/shared/failure"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID             = "id"
	FieldUserID         = "user_id"
	FieldCarID          = "car_id"
	FieldPickupLocation = "pickup_location"
	FieldStartDate      = "start_date"
	FieldReturnDate     = "return_date"
	FieldTotalPrice     = "total_price"
	FieldStatus         = "status"
	FieldCreatedAt      = "created_at"

	StatusConfirmed = "Confirmed"

	EventConfirmed = "booking.confirmed"
)

const (
	MessageMissingFields  = "Error: All fields are required for booking."
	MessageUnavailable    = "Error: Selected car is not available."
	MessageStorageFailed  = "Error: Database error during booking."
	MessageInvalidRequest = "Error: Invalid request. Please book through the search form."
	messageConfirmed      = "Booking confirmed! Your car is reserved in %s."
)

type Booking struct {
	ID             string    `db:"id"`
	UserID         int64     `db:"user_id"`
	CarID          int64     `db:"car_id"`
	PickupLocation string    `db:"pickup_location"`
	StartDate      time.Time `db:"start_date"`
	ReturnDate     time.Time `db:"return_date"`
	TotalPrice     float64   `db:"total_price"`
	Status         string    `db:"status"`
	CreatedAt      time.Time `db:"created_at"`
}

type OutcomeKind string

const (
	OutcomeConfirmed   OutcomeKind = "confirmed"
	OutcomeValidation  OutcomeKind = "validation"
	OutcomeUnavailable OutcomeKind = "unavailable"
	OutcomeStorage     OutcomeKind = "storage"
)

// Outcome is the terminal state of a booking attempt and the text shown to the user.
type Outcome struct {
	Kind    OutcomeKind `json:"kind"`
	Message string      `json:"message"`
}

func (o Outcome) IsError() bool {
	return o.Kind != OutcomeConfirmed
}

// StatusCode is the HTTP status the JSON API answers with for this outcome.
func (o Outcome) StatusCode() int {
	switch o.Kind {
	case OutcomeConfirmed:
		return http.StatusCreated
	case OutcomeValidation:
		return http.StatusBadRequest
	case OutcomeUnavailable:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func ConfirmedOutcome(location string) Outcome {
	return Outcome{Kind: OutcomeConfirmed, Message: ConfirmedMessage(location)}
}

func ConfirmedMessage(location string) string {
	return fmt.Sprintf(messageConfirmed, location)
}

func InvalidRequestOutcome() Outcome {
	return Outcome{Kind: OutcomeValidation, Message: MessageInvalidRequest}
}

// OutcomeFromError classifies a booking error by its Failure code.
// Errors without a Failure are reported as storage errors.
func OutcomeFromError(err error) Outcome {
	switch failure.GetCode(err) {
	case http.StatusBadRequest:
		return Outcome{Kind: OutcomeValidation, Message: failure.GetMessage(err, MessageMissingFields)}
	case http.StatusConflict:
		return Outcome{Kind: OutcomeUnavailable, Message: failure.GetMessage(err, MessageUnavailable)}
	default:
		return Outcome{Kind: OutcomeStorage, Message: MessageStorageFailed}
	}
}
