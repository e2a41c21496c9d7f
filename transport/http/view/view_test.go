package view_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	carDto "rentacar/internal/domains/car/model/dto"
	"rentacar/transport/http/view"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	t.Run("prompt before any search", func(t *testing.T) {
		page := view.NewPage("RentACar", view.SearchForm{Sort: "price_asc"})
		page.Prompt = "Please use the search form to find available cars."

		rec := httptest.NewRecorder()
		require.NoError(t, view.Render(rec, http.StatusOK, page))

		body := rec.Body.String()
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
		assert.Contains(t, body, "Please use the search form to find available cars.")
		assert.Contains(t, body, `<optgroup label="Pakistan">`)
		assert.Contains(t, body, `<option value="Convertible" >Convertible</option>`)
		assert.NotContains(t, body, "car-card")
	})

	t.Run("results keep the submitted filters selected", func(t *testing.T) {
		page := view.NewPage("RentACar", view.SearchForm{
			PickupLocation: "Tokyo",
			StartDate:      "2025-06-01",
			ReturnDate:     "2025-06-05",
			Brand:          "Tesla",
			Sort:           "price_desc",
		})
		page.Searched = true
		page.Cars = []carDto.CarResponse{{ID: 5, Name: "Tesla Model 3", Price: "60.00", PricePerDay: 60}}

		rec := httptest.NewRecorder()
		require.NoError(t, view.Render(rec, http.StatusOK, page))

		body := rec.Body.String()
		assert.Contains(t, body, `<option value="Tokyo" selected>Tokyo</option>`)
		assert.Contains(t, body, `<option value="Tesla" selected>Tesla</option>`)
		assert.Contains(t, body, `<option value="price_desc" selected>`)
		assert.Contains(t, body, `value="2025-06-01"`)
		assert.Contains(t, body, `data-car-id="5"`)
		assert.Contains(t, body, "$60.00/day")
	})

	t.Run("book form carries the searched values", func(t *testing.T) {
		page := view.NewPage("RentACar", view.SearchForm{
			PickupLocation: "Lahore",
			StartDate:      "2025-07-10",
			ReturnDate:     "2025-07-12",
			CarType:        "SUV",
		})
		page.Searched = true

		rec := httptest.NewRecorder()
		require.NoError(t, view.Render(rec, http.StatusOK, page))

		body := rec.Body.String()
		assert.Contains(t, body, `<input type="hidden" name="pickup_location" value="Lahore">`)
		assert.Contains(t, body, `<input type="hidden" name="start_date" value="2025-07-10">`)
		assert.Contains(t, body, `<input type="hidden" name="return_date" value="2025-07-12">`)
		assert.Contains(t, body, `<input type="hidden" name="car_type" value="SUV">`)
	})

	t.Run("banners are escaped and classified", func(t *testing.T) {
		page := view.NewPage("RentACar", view.SearchForm{})
		page.Searched = true
		page.NoResults = "No cars found matching your criteria. Try removing some filters or checking the database."
		page.Error = "<b>Error: Invalid brand selected.</b>"
		page.Confirmation = &view.Banner{Message: "Error: Selected car is not available.", IsError: true}

		rec := httptest.NewRecorder()
		require.NoError(t, view.Render(rec, http.StatusOK, page))

		body := rec.Body.String()
		assert.Contains(t, body, "&lt;b&gt;Error: Invalid brand selected.&lt;/b&gt;")
		assert.Contains(t, body, `class="confirmation error"`)
		assert.Contains(t, body, "No cars found matching your criteria.")
	})
}

func TestStatic(t *testing.T) {
	server := httptest.NewServer(http.StripPrefix("/static", view.Static()))
	defer server.Close()

	resp, err := http.Get(server.URL + "/static/app.js")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	script, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(script), "form.elements.start_date.value;")
	assert.NotContains(t, string(script), "#searchForm")
}
