package dto

import (
	"net/url"
	"strconv"
	"strings"

	"rentacar/internal/domains/car/model"
	"rentacar/shared/constant"
	gDto "rentacar/shared/dto"
	"rentacar/shared/validator"
)

// SearchRequest holds the search form values. Required reports whether the three
// required parameters were sent at all; an empty value still counts as sent.
type SearchRequest struct {
	gDto.Trip
	CarType  string `json:"car_type"`
	FuelType string `json:"fuel_type"`
	Brand    string `json:"brand"`
	Sort     string `json:"sort"`
	Required bool   `json:"-"`
}

func (r *SearchRequest) FromQuery(query url.Values) {
	r.Required = query.Has(constant.RequestParamPickupLocation) &&
		query.Has(constant.RequestParamStartDate) &&
		query.Has(constant.RequestParamReturnDate)

	r.PickupLocation = strings.TrimSpace(query.Get(constant.RequestParamPickupLocation))
	r.StartDate = strings.TrimSpace(query.Get(constant.RequestParamStartDate))
	r.ReturnDate = strings.TrimSpace(query.Get(constant.RequestParamReturnDate))
	r.CarType = strings.TrimSpace(query.Get(constant.RequestParamCarType))
	r.FuelType = strings.TrimSpace(query.Get(constant.RequestParamFuelType))
	r.Brand = strings.TrimSpace(query.Get(constant.RequestParamBrand))

	r.Sort = constant.DefaultValueSort
	if query.Has(constant.RequestParamSort) {
		r.Sort = strings.TrimSpace(query.Get(constant.RequestParamSort))
	}
}

// Validate reports the first failing check: location, dates, car type, fuel type, brand.
func (r *SearchRequest) Validate() error {
	if _, _, err := r.Trip.Validate(); err != nil {
		return err //nolint:wrapcheck
	}

	optional := []struct {
		value string
		tag   string
	}{
		{value: r.CarType, tag: "car_type"},
		{value: r.FuelType, tag: "fuel_type"},
		{value: r.Brand, tag: "brand"},
	}

	for _, field := range optional {
		if field.value == constant.Empty {
			continue
		}

		if err := validator.ValidateVar(field.value, field.tag); err != nil {
			return err //nolint:wrapcheck
		}
	}

	return nil
}

// Filter selects available cars narrowed by the optional filters that were supplied.
func (r *SearchRequest) Filter() gDto.FilterGroup {
	filter := AvailableFilter()

	optional := []struct {
		field string
		value string
	}{
		{field: model.FieldCarType, value: r.CarType},
		{field: model.FieldFuelType, value: r.FuelType},
		{field: model.FieldBrand, value: r.Brand},
	}

	for _, opt := range optional {
		if opt.value != constant.Empty {
			filter.Add(gDto.Filter{Field: opt.field, Value: opt.value, Operator: gDto.FilterOperatorEq, Table: model.TableName})
		}
	}

	return filter
}

// QueryParams maps price_asc and price_desc onto the price column; any other value sorts nothing.
func (r *SearchRequest) QueryParams() gDto.QueryParams {
	return gDto.ParseSortOption(r.Sort, model.SortColumns)
}

// AvailableFilter matches every car that can currently be booked.
func AvailableFilter() gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldAvailable, Value: true, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
	}
}

// AvailableByIDFilter matches the car only while it is available.
func AvailableByIDFilter(id int64) gDto.FilterGroup {
	filter := AvailableFilter()
	filter.Add(gDto.Filter{Field: model.FieldID, Value: id, Operator: gDto.FilterOperatorEq, Table: model.TableName})

	return filter
}

type CarResponse struct {
	ID          int64   `json:"id"`
	Brand       string  `json:"brand"`
	Model       string  `json:"model"`
	Name        string  `json:"name"`
	CarType     string  `json:"car_type"`
	FuelType    string  `json:"fuel_type"`
	PricePerDay float64 `json:"price_per_day"`
	Price       string  `json:"price"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
}

func (r *CarResponse) FromModel(car model.Car) {
	r.ID = car.ID
	r.Brand = car.Brand
	r.Model = car.Model
	r.Name = strings.TrimSpace(car.Brand + " " + car.Model)
	r.CarType = car.CarType
	r.FuelType = car.FuelType
	r.PricePerDay = car.PricePerDay
	r.Price = strconv.FormatFloat(car.PricePerDay, 'f', 2, 64)
	r.Description = car.Description
	r.Image = car.Image
}

type SearchResponse struct {
	Cars      []CarResponse `json:"cars"`
	TotalData int           `json:"total_data"`
}

func (r *SearchResponse) FromModels(models []model.Car) {
	r.Cars = make([]CarResponse, 0, len(models))

	for _, car := range models {
		var res CarResponse
		res.FromModel(car)

		r.Cars = append(r.Cars, res)
	}

	r.TotalData = len(r.Cars)
}
