package dto_test

import (
	"net/url"
	"testing"

	"rentacar/internal/domains/car/model"
	"rentacar/internal/domains/car/model/dto"
	gDto "rentacar/shared/dto"
	"rentacar/shared/failure"
	"rentacar/shared/rental"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validQuery() url.Values {
	return url.Values{
		"pickup_location": {"Lahore"},
		"start_date":      {"2025-06-01"},
		"return_date":     {"2025-06-05"},
	}
}

func TestSearchRequest_FromQuery(t *testing.T) {
	t.Run("trims values and defaults sort", func(t *testing.T) {
		query := validQuery()
		query.Set("pickup_location", "  Lahore ")
		query.Set("brand", " Toyota")

		var req dto.SearchRequest
		req.FromQuery(query)

		assert.True(t, req.Required)
		assert.Equal(t, "Lahore", req.PickupLocation)
		assert.Equal(t, "Toyota", req.Brand)
		assert.Equal(t, "price_asc", req.Sort)
	})

	t.Run("empty values still count as submitted", func(t *testing.T) {
		var req dto.SearchRequest
		req.FromQuery(url.Values{"pickup_location": {""}, "start_date": {""}, "return_date": {""}})

		assert.True(t, req.Required)
	})

	t.Run("missing return date", func(t *testing.T) {
		query := validQuery()
		query.Del("return_date")

		var req dto.SearchRequest
		req.FromQuery(query)

		assert.False(t, req.Required)
	})

	t.Run("explicit sort is kept even when empty", func(t *testing.T) {
		query := validQuery()
		query.Set("sort", "")

		var req dto.SearchRequest
		req.FromQuery(query)

		assert.Empty(t, req.Sort)
		assert.Equal(t, gDto.QueryParams{}, req.QueryParams())
	})
}

func TestSearchRequest_FromQuerySort(t *testing.T) {
	tests := []struct {
		sort     string
		expected gDto.QueryParams
	}{
		{sort: " price_desc ", expected: gDto.QueryParams{SortBy: model.FieldPricePerDay, SortDir: gDto.SortDirDesc}},
		{sort: "price_ASC", expected: gDto.QueryParams{}},
		{sort: "Price_asc", expected: gDto.QueryParams{}},
		{sort: "PRICE_DESC", expected: gDto.QueryParams{}},
	}

	for _, tt := range tests {
		t.Run(tt.sort, func(t *testing.T) {
			query := validQuery()
			query.Set("sort", tt.sort)

			var req dto.SearchRequest
			req.FromQuery(query)

			assert.Equal(t, tt.expected, req.QueryParams())
		})
	}
}

func TestSearchRequest_Validate(t *testing.T) {
	tests := []struct {
		name        string
		modify      func(url.Values)
		wantMessage string
	}{
		{name: "valid", modify: func(url.Values) {}},
		{name: "valid with filters", modify: func(q url.Values) {
			q.Set("car_type", "SUV")
			q.Set("fuel_type", "Hybrid")
			q.Set("brand", "Tesla")
		}},
		{name: "unknown location", modify: func(q url.Values) { q.Set("pickup_location", "Berlin") }, wantMessage: rental.MessageInvalidLocation},
		{name: "empty location", modify: func(q url.Values) { q.Set("pickup_location", "") }, wantMessage: rental.MessageInvalidLocation},
		{name: "return equals start", modify: func(q url.Values) { q.Set("return_date", "2025-06-01") }, wantMessage: rental.MessageInvalidDates},
		{name: "unparseable date", modify: func(q url.Values) { q.Set("start_date", "someday") }, wantMessage: rental.MessageInvalidDates},
		{name: "unknown car type", modify: func(q url.Values) { q.Set("car_type", "Bus") }, wantMessage: rental.MessageInvalidCarType},
		{name: "unknown fuel type", modify: func(q url.Values) { q.Set("fuel_type", "Coal") }, wantMessage: rental.MessageInvalidFuelType},
		{name: "unknown brand", modify: func(q url.Values) { q.Set("brand", "Fiat") }, wantMessage: rental.MessageInvalidBrand},
		{name: "location is reported before dates", modify: func(q url.Values) {
			q.Set("pickup_location", "Berlin")
			q.Set("return_date", "2025-05-01")
		}, wantMessage: rental.MessageInvalidLocation},
		{name: "car type is reported before brand", modify: func(q url.Values) {
			q.Set("car_type", "Bus")
			q.Set("brand", "Fiat")
		}, wantMessage: rental.MessageInvalidCarType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query := validQuery()
			tt.modify(query)

			var req dto.SearchRequest
			req.FromQuery(query)

			err := req.Validate()
			if tt.wantMessage == "" {
				assert.NoError(t, err)

				return
			}

			var f *failure.Failure
			require.ErrorAs(t, err, &f)
			assert.Equal(t, tt.wantMessage, f.Message)
		})
	}
}

func TestSearchRequest_Filter(t *testing.T) {
	query := validQuery()
	query.Set("car_type", "Sedan")
	query.Set("brand", "Honda")

	var req dto.SearchRequest
	req.FromQuery(query)

	filter := req.Filter()
	where, args := filter.GetWhereClause()

	assert.Equal(t, "(cars.available = :available AND cars.car_type = :car_type AND cars.brand = :brand)", where)
	assert.Equal(t, map[string]any{"available": true, "car_type": "Sedan", "brand": "Honda"}, args)
}

func TestSearchRequest_QueryParams(t *testing.T) {
	tests := []struct {
		sort     string
		expected gDto.QueryParams
	}{
		{sort: "price_asc", expected: gDto.QueryParams{SortBy: model.FieldPricePerDay, SortDir: gDto.SortDirAsc}},
		{sort: "price_desc", expected: gDto.QueryParams{SortBy: model.FieldPricePerDay, SortDir: gDto.SortDirDesc}},
		{sort: "newest", expected: gDto.QueryParams{}},
		{sort: "brand_asc", expected: gDto.QueryParams{}},
		{sort: "price_ASC", expected: gDto.QueryParams{}},
		{sort: "Price_asc", expected: gDto.QueryParams{}},
		{sort: "price_desc ", expected: gDto.QueryParams{}},
	}

	for _, tt := range tests {
		t.Run(tt.sort, func(t *testing.T) {
			req := dto.SearchRequest{Sort: tt.sort}

			assert.Equal(t, tt.expected, req.QueryParams())
		})
	}
}

func TestAvailableByIDFilter(t *testing.T) {
	filter := dto.AvailableByIDFilter(7)
	where, args := filter.GetWhereClause()

	assert.Equal(t, "(cars.available = :available AND cars.id = :id)", where)
	assert.Equal(t, map[string]any{"available": true, "id": int64(7)}, args)
}

func TestSearchResponse_FromModels(t *testing.T) {
	var res dto.SearchResponse
	res.FromModels([]model.Car{
		{ID: 1, Brand: "Toyota", Model: "Corolla", PricePerDay: 40},
		{ID: 2, Brand: "Tesla", Model: "Model 3", PricePerDay: 33.5},
	})

	require.Len(t, res.Cars, 2)
	assert.Equal(t, 2, res.TotalData)
	assert.Equal(t, "Toyota Corolla", res.Cars[0].Name)
	assert.Equal(t, "40.00", res.Cars[0].Price)
	assert.Equal(t, "33.50", res.Cars[1].Price)

	res.FromModels(nil)
	assert.NotNil(t, res.Cars)
	assert.Zero(t, res.TotalData)
}
