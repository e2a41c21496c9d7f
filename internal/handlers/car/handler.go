package car

import (
	"net/http"

	"rentacar/infras/otel"
	"rentacar/internal/domains/car/model/dto"
	"rentacar/internal/domains/car/service"
	"rentacar/shared/constant"
	"rentacar/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Car
	otel    otel.Otel
}

func New(service service.Car, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/cars", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.SearchCars)
	})
}

// SearchCars lists available cars for a city and period.
// @Summary Search cars
// @Description Lists available cars matching the filters, ordered by daily price.
// @Tags Car
// @Produce json
// @Param pickup_location query string true "Pickup city"
// @Param start_date query string true "Start date (YYYY-MM-DD)"
// @Param return_date query string true "Return date (YYYY-MM-DD)"
// @Param car_type query string false "Car type"
// @Param fuel_type query string false "Fuel type"
// @Param brand query string false "Brand"
// @Param sort query string false "price_asc or price_desc"
// @Success 200 {object} response.Data[dto.SearchResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/cars [get]
func (handler *Handler) SearchCars(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SearchCars")
	defer scope.End()

	var req dto.SearchRequest
	req.FromQuery(request.URL.Query())

	res, err := handler.service.Search(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to search cars")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
