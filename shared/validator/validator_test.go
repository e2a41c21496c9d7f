package validator_test

import (
	"strings"
	"testing"

	"rentacar/shared/rental"
	"rentacar/shared/validator"

	"github.com/stretchr/testify/assert"
)

type tripTestStruct struct {
	PickupLocation string `json:"pickup_location" validate:"required,city"`
	StartDate      string `json:"start_date"      validate:"required,date"`
	CarType        string `json:"car_type"        validate:"omitempty,car_type"`
	Days           int    `json:"days"            validate:"gte=1,lte=90"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        *tripTestStruct
		expectError bool
	}{
		{
			name: "valid struct",
			data: &tripTestStruct{
				PickupLocation: "Lahore",
				StartDate:      "2025-06-01",
				CarType:        "SUV",
				Days:           4,
			},
			expectError: false,
		},
		{
			name: "optional car type omitted",
			data: &tripTestStruct{
				PickupLocation: "New York",
				StartDate:      "2025-06-01",
				Days:           1,
			},
			expectError: false,
		},
		{
			name: "missing required field",
			data: &tripTestStruct{
				StartDate: "2025-06-01",
				Days:      4,
			},
			expectError: true,
		},
		{
			name: "unknown city",
			data: &tripTestStruct{
				PickupLocation: "Berlin",
				StartDate:      "2025-06-01",
				Days:           4,
			},
			expectError: true,
		},
		{
			name: "unparseable date",
			data: &tripTestStruct{
				PickupLocation: "Lahore",
				StartDate:      "first of june",
				Days:           4,
			},
			expectError: true,
		},
		{
			name: "days out of range",
			data: &tripTestStruct{
				PickupLocation: "Lahore",
				StartDate:      "2025-06-01",
				Days:           0,
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(tt.data)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name        string
		field       any
		tag         string
		expectError bool
		wantMessage string
	}{
		{name: "known city", field: "Karachi", tag: "city"},
		{name: "city with space", field: "New York", tag: "city"},
		{name: "unknown city", field: "Berlin", tag: "city", expectError: true, wantMessage: rental.MessageInvalidLocation},
		{name: "city is case sensitive", field: "lahore", tag: "city", expectError: true, wantMessage: rental.MessageInvalidLocation},
		{name: "known car type", field: "Convertible", tag: "car_type"},
		{name: "unknown car type", field: "Bus", tag: "car_type", expectError: true, wantMessage: rental.MessageInvalidCarType},
		{name: "known fuel type", field: "Hybrid", tag: "fuel_type"},
		{name: "unknown fuel type", field: "Hydrogen", tag: "fuel_type", expectError: true, wantMessage: rental.MessageInvalidFuelType},
		{name: "known brand", field: "Tesla", tag: "brand"},
		{name: "unknown brand", field: "Fiat", tag: "brand", expectError: true, wantMessage: rental.MessageInvalidBrand},
		{name: "date picker value", field: "2025-06-01", tag: "date"},
		{name: "datetime-local value", field: "2025-06-01T10:30", tag: "date"},
		{name: "garbage date", field: "2025-13-45", tag: "date", expectError: true},
		{name: "non string field", field: 12, tag: "city", expectError: true, wantMessage: rental.MessageInvalidLocation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if !tt.expectError {
				assert.NoError(t, err)

				return
			}

			assert.Error(t, err)

			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, err.Error())
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		jsonBody    string
		expectError bool
	}{
		{
			name:        "valid JSON",
			jsonBody:    `{"pickup_location":"Dubai","start_date":"2025-06-01","days":3}`,
			expectError: false,
		},
		{
			name:        "invalid values",
			jsonBody:    `{"pickup_location":"Atlantis","start_date":"2025-06-01","days":3}`,
			expectError: true,
		},
		{
			name:        "malformed JSON",
			jsonBody:    `{"pickup_location":}`,
			expectError: true,
		},
		{
			name:        "empty JSON",
			jsonBody:    `{}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data tripTestStruct
			err := validator.Validate(strings.NewReader(tt.jsonBody), &data)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidationMessages(t *testing.T) {
	err := validator.ValidateStruct(&tripTestStruct{Days: 1})
	if err == nil {
		t.Fatal("expected validation error for empty struct")
	}

	if !strings.Contains(err.Error(), "required") {
		t.Errorf("expected descriptive error message containing 'required', got: %s", err.Error())
	}
}
