// Package rental holds the fixed rental enumerations and the trip rules shared
// by inventory search and booking.
package rental

import (
	"errors"
	"math"
	"slices"
	"time"

	"rentacar/shared/constant"
	"rentacar/shared/timezone"
)

const (
	MessageInvalidLocation = "Error: Invalid pickup location selected."
	MessageInvalidDates    = "Error: Return date must be after start date."
	MessageInvalidCarType  = "Error: Invalid car type selected."
	MessageInvalidFuelType = "Error: Invalid fuel type selected."
	MessageInvalidBrand    = "Error: Invalid brand selected."
)

var (
	ErrInvalidDate      = errors.New("invalid date")
	ErrInvalidDateRange = errors.New("return date must be after start date")
)

type CityGroup struct {
	Name   string
	Cities []string
}

type SortOption struct {
	Value string
	Label string
}

var (
	CityGroups = []CityGroup{
		{
			Name:   "Pakistan",
			Cities: []string{"Lahore", "Karachi", "Islamabad", "Rawalpindi", "Faisalabad", "Peshawar", "Quetta", "Multan"},
		},
		{
			Name:   "International",
			Cities: []string{"Dubai", "New York", "London", "Paris", "Tokyo", "Sydney", "Toronto", "Singapore"},
		},
	}

	Cities = flattenCities(CityGroups)

	CarTypes  = []string{"Sedan", "SUV", "Truck", "Van", "Convertible"}
	FuelTypes = []string{"Petrol", "Diesel", "Electric", "Hybrid"}
	Brands    = []string{"Toyota", "Honda", "Ford", "BMW", "Tesla"}

	SortOptions = []SortOption{
		{Value: constant.SortPriceAsc, Label: "Price: Low to High"},
		{Value: constant.SortPriceDesc, Label: "Price: High to Low"},
	}
)

// Accepted layouts, in order: <input type="date">, <input type="datetime-local">, RFC3339.
var dateLayouts = []string{
	constant.DateInputFormat,
	"2006-01-02T15:04",
	time.RFC3339,
}

func flattenCities(groups []CityGroup) []string {
	cities := []string{}
	for _, group := range groups {
		cities = append(cities, group.Cities...)
	}

	return cities
}

func IsCity(value string) bool {
	return slices.Contains(Cities, value)
}

func IsCarType(value string) bool {
	return slices.Contains(CarTypes, value)
}

func IsFuelType(value string) bool {
	return slices.Contains(FuelTypes, value)
}

func IsBrand(value string) bool {
	return slices.Contains(Brands, value)
}

// ParseDate parses a date the way browser date pickers submit it.
func ParseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		parsed, err := timezone.Parse(layout, value)
		if err == nil {
			return parsed, nil
		}
	}

	return time.Time{}, ErrInvalidDate
}

// ParseDateRange parses both dates and requires the return to be strictly after the start.
// Unparseable dates are reported as ErrInvalidDateRange as well.
func ParseDateRange(start, ret string) (time.Time, time.Time, error) {
	startDate, err := ParseDate(start)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidDateRange
	}

	returnDate, err := ParseDate(ret)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidDateRange
	}

	if !returnDate.After(startDate) {
		return time.Time{}, time.Time{}, ErrInvalidDateRange
	}

	return startDate, returnDate, nil
}

// Days returns the number of rental days between two dates, counting a started day as whole.
// Days are measured on the wall clock, so a DST shift never adds or removes a day.
func Days(start, ret time.Time) int {
	elapsed := wallClock(ret.In(start.Location())).Sub(wallClock(start))

	return int(math.Ceil(elapsed.Hours() / constant.HoursPerDay))
}

func wallClock(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

// TotalPrice is days times the daily rate, rounded to cents.
func TotalPrice(days int, pricePerDay float64) float64 {
	return math.Round(float64(days)*pricePerDay*100) / 100 //nolint:mnd
}
