package dto

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"rentacar/internal/domains/booking/model"
	"rentacar/shared/constant"
	gDto "rentacar/shared/dto"
	"rentacar/shared/failure"
	"rentacar/shared/rental"
	"rentacar/shared/timezone"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	CarID int64 `json:"car_id"`
	gDto.Trip
	TotalPrice float64 `json:"total_price"`
}

// FromForm reads the booking form. Values that do not parse as numbers become zero
// and are reported by Validate as missing.
func (r *CreateBookingRequest) FromForm(form url.Values) {
	r.CarID, _ = strconv.ParseInt(strings.TrimSpace(form.Get(constant.RequestParamCarID)), 10, 64)
	r.TotalPrice, _ = strconv.ParseFloat(strings.TrimSpace(form.Get(constant.RequestParamTotalPrice)), 64)
	r.PickupLocation = strings.TrimSpace(form.Get(constant.RequestParamPickupLocation))
	r.StartDate = strings.TrimSpace(form.Get(constant.RequestParamStartDate))
	r.ReturnDate = strings.TrimSpace(form.Get(constant.RequestParamReturnDate))
}

// Validate runs the presence check, then the location and the dates, and returns the parsed period.
func (r *CreateBookingRequest) Validate() (time.Time, time.Time, error) {
	if r.CarID <= 0 || r.PickupLocation == constant.Empty || r.StartDate == constant.Empty ||
		r.ReturnDate == constant.Empty || r.TotalPrice <= 0 {
		return time.Time{}, time.Time{}, failure.BadRequestFromString(model.MessageMissingFields) //nolint:wrapcheck
	}

	return r.Trip.Validate()
}

// ToModel prices the booking from the stored daily rate, not from the submitted total.
func (r *CreateBookingRequest) ToModel(start, ret time.Time, pricePerDay float64) model.Booking {
	return model.Booking{
		ID:             uuid.NewString(),
		UserID:         constant.DemoUserID,
		CarID:          r.CarID,
		PickupLocation: r.PickupLocation,
		StartDate:      start,
		ReturnDate:     ret,
		TotalPrice:     rental.TotalPrice(rental.Days(start, ret), pricePerDay),
		Status:         model.StatusConfirmed,
		CreatedAt:      timezone.Now(),
	}
}

type BookingResponse struct {
	ID             string  `json:"id"`
	CarID          int64   `json:"car_id"`
	PickupLocation string  `json:"pickup_location"`
	StartDate      string  `json:"start_date"`
	ReturnDate     string  `json:"return_date"`
	TotalPrice     float64 `json:"total_price"`
	Status         string  `json:"status"`
	Message        string  `json:"message"`
}

func (r *BookingResponse) FromModel(booking model.Booking) {
	r.ID = booking.ID
	r.CarID = booking.CarID
	r.PickupLocation = booking.PickupLocation
	r.StartDate = timezone.Format(booking.StartDate, constant.DateInputFormat)
	r.ReturnDate = timezone.Format(booking.ReturnDate, constant.DateInputFormat)
	r.TotalPrice = booking.TotalPrice
	r.Status = booking.Status
	r.Message = model.ConfirmedMessage(booking.PickupLocation)
}

// BookingConfirmedEvent is the payload published once a booking commits.
type BookingConfirmedEvent struct {
	Event          string  `json:"event"`
	BookingID      string  `json:"booking_id"`
	UserID         int64   `json:"user_id"`
	CarID          int64   `json:"car_id"`
	PickupLocation string  `json:"pickup_location"`
	StartDate      string  `json:"start_date"`
	ReturnDate     string  `json:"return_date"`
	TotalPrice     float64 `json:"total_price"`
	ConfirmedAt    string  `json:"confirmed_at"`
}

func (e *BookingConfirmedEvent) FromModel(booking model.Booking) {
	e.Event = model.EventConfirmed
	e.BookingID = booking.ID
	e.UserID = booking.UserID
	e.CarID = booking.CarID
	e.PickupLocation = booking.PickupLocation
	e.StartDate = timezone.Format(booking.StartDate, constant.DateInputFormat)
	e.ReturnDate = timezone.Format(booking.ReturnDate, constant.DateInputFormat)
	e.TotalPrice = booking.TotalPrice
	e.ConfirmedAt = timezone.Format(booking.CreatedAt, constant.DateFormat)
}
