package dto_test

import (
	"net/url"
	"testing"
	"time"

	"rentacar/internal/domains/booking/model"
	"rentacar/internal/domains/booking/model/dto"
	"rentacar/shared/failure"
	"rentacar/shared/rental"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func form() url.Values {
	return url.Values{
		"book_car":        {"1"},
		"car_id":          {"3"},
		"pickup_location": {"Islamabad"},
		"start_date":      {"2025-07-10"},
		"return_date":     {"2025-07-13"},
		"total_price":     {"180.00"},
	}
}

func TestCreateBookingRequest_FromForm(t *testing.T) {
	var req dto.CreateBookingRequest
	req.FromForm(form())

	assert.Equal(t, int64(3), req.CarID)
	assert.Equal(t, "Islamabad", req.PickupLocation)
	assert.Equal(t, "2025-07-10", req.StartDate)
	assert.Equal(t, "2025-07-13", req.ReturnDate)
	assert.InDelta(t, 180.0, req.TotalPrice, 0.001)

	bad := form()
	bad.Set("car_id", "seven")
	bad.Set("total_price", "")

	req = dto.CreateBookingRequest{}
	req.FromForm(bad)

	assert.Zero(t, req.CarID)
	assert.Zero(t, req.TotalPrice)
}

func TestCreateBookingRequest_Validate(t *testing.T) {
	tests := []struct {
		name        string
		modify      func(url.Values)
		wantMessage string
	}{
		{name: "valid", modify: func(url.Values) {}},
		{name: "missing car", modify: func(v url.Values) { v.Del("car_id") }, wantMessage: model.MessageMissingFields},
		{name: "negative car", modify: func(v url.Values) { v.Set("car_id", "-2") }, wantMessage: model.MessageMissingFields},
		{name: "empty location", modify: func(v url.Values) { v.Set("pickup_location", " ") }, wantMessage: model.MessageMissingFields},
		{name: "missing start", modify: func(v url.Values) { v.Del("start_date") }, wantMessage: model.MessageMissingFields},
		{name: "zero price", modify: func(v url.Values) { v.Set("total_price", "0") }, wantMessage: model.MessageMissingFields},
		{name: "unknown city", modify: func(v url.Values) { v.Set("pickup_location", "Oslo") }, wantMessage: rental.MessageInvalidLocation},
		{name: "same day", modify: func(v url.Values) { v.Set("return_date", "2025-07-10") }, wantMessage: rental.MessageInvalidDates},
		{name: "missing fields win over invalid city", modify: func(v url.Values) {
			v.Set("pickup_location", "Oslo")
			v.Set("total_price", "-1")
		}, wantMessage: model.MessageMissingFields},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := form()
			tt.modify(values)

			var req dto.CreateBookingRequest
			req.FromForm(values)

			start, ret, err := req.Validate()
			if tt.wantMessage == "" {
				require.NoError(t, err)
				assert.True(t, ret.After(start))

				return
			}

			var f *failure.Failure
			require.ErrorAs(t, err, &f)
			assert.Equal(t, tt.wantMessage, f.Message)
		})
	}
}

func TestCreateBookingRequest_ToModel(t *testing.T) {
	var req dto.CreateBookingRequest
	req.FromForm(form())

	start, ret, err := req.Validate()
	require.NoError(t, err)

	booking := req.ToModel(start, ret, 60)

	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, int64(1), booking.UserID)
	assert.Equal(t, int64(3), booking.CarID)
	assert.Equal(t, model.StatusConfirmed, booking.Status)
	assert.InDelta(t, 180.0, booking.TotalPrice, 0.001)
	assert.WithinDuration(t, time.Now(), booking.CreatedAt, time.Minute)

	other := req.ToModel(start, ret, 60)
	assert.NotEqual(t, booking.ID, other.ID)
}

func TestBookingResponse_FromModel(t *testing.T) {
	booking := model.Booking{
		ID:             "b-1",
		CarID:          5,
		PickupLocation: "Doha",
		StartDate:      time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
		ReturnDate:     time.Date(2025, 8, 3, 0, 0, 0, 0, time.UTC),
		TotalPrice:     90,
		Status:         model.StatusConfirmed,
	}

	var res dto.BookingResponse
	res.FromModel(booking)

	assert.Equal(t, "b-1", res.ID)
	assert.Equal(t, model.StatusConfirmed, res.Status)
	assert.Equal(t, "Booking confirmed! Your car is reserved in Doha.", res.Message)

	var event dto.BookingConfirmedEvent
	event.FromModel(booking)

	assert.Equal(t, model.EventConfirmed, event.Event)
	assert.Equal(t, "b-1", event.BookingID)
	assert.InDelta(t, 90.0, event.TotalPrice, 0.001)
}
