package booking

import (
	"net/http"
	"net/url"
	"strings"

	"rentacar/infras/jwt"
	"rentacar/infras/otel"
	"rentacar/internal/domains/booking/model"
	"rentacar/internal/domains/booking/model/dto"
	"rentacar/internal/domains/booking/service"
	"rentacar/shared/constant"
	"rentacar/shared/validator"
	"rentacar/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const homePath = "/"

type Handler struct {
	service service.Booking
	jwt     jwt.JWT
	otel    otel.Otel
}

func New(service service.Booking, jwt jwt.JWT, otel otel.Otel) Handler {
	return Handler{
		service: service,
		jwt:     jwt,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
	})
}

// FormRouter mounts the form endpoint. Every method is accepted so that stray requests
// still end in a redirect with the invalid request outcome.
func (handler *Handler) FormRouter(router chi.Router) {
	router.HandleFunc("/book", handler.Book)
}

// Book handles the search page booking form and always redirects back to the search page
// with the original search parameters and the outcome.
func (handler *Handler) Book(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Book")
	defer scope.End()

	form := url.Values{}

	if request.Method == http.MethodPost {
		if err := request.ParseForm(); err != nil {
			scope.TraceError(err)
			log.Warn().Err(err).Msg("failed to parse booking form")
		} else {
			form = request.PostForm
		}
	}

	outcome := model.InvalidRequestOutcome()

	if form.Has(constant.RequestParamBookCar) {
		var req dto.CreateBookingRequest
		req.FromForm(form)

		res, err := handler.service.Create(ctx, req)
		if err != nil {
			scope.TraceError(err)

			outcome = model.OutcomeFromError(err)
		} else {
			outcome = model.Outcome{Kind: model.OutcomeConfirmed, Message: res.Message}
			scope.AddEvent("Booking " + res.ID + " confirmed")
		}
	}

	log.Info().Str("kind", string(outcome.Kind)).Msg("booking form handled")

	http.Redirect(writer, request, homePath+"?"+handler.redirectQuery(form, outcome).Encode(), http.StatusSeeOther)
}

// redirectQuery carries the seven search parameters back, empty ones included, plus the outcome.
func (handler *Handler) redirectQuery(form url.Values, outcome model.Outcome) url.Values {
	query := url.Values{}

	query.Set(constant.RequestParamPickupLocation, strings.TrimSpace(form.Get(constant.RequestParamPickupLocation)))
	query.Set(constant.RequestParamStartDate, form.Get(constant.RequestParamStartDate))
	query.Set(constant.RequestParamReturnDate, form.Get(constant.RequestParamReturnDate))
	query.Set(constant.RequestParamCarType, strings.TrimSpace(form.Get(constant.RequestParamCarType)))
	query.Set(constant.RequestParamFuelType, strings.TrimSpace(form.Get(constant.RequestParamFuelType)))
	query.Set(constant.RequestParamBrand, strings.TrimSpace(form.Get(constant.RequestParamBrand)))

	sort := constant.DefaultValueSort
	if form.Has(constant.RequestParamSort) {
		sort = strings.TrimSpace(form.Get(constant.RequestParamSort))
	}

	query.Set(constant.RequestParamSort, sort)
	query.Set(constant.RequestParamConfirmationMessage, outcome.Message)

	token, err := handler.jwt.GenerateOutcomeToken(string(outcome.Kind), outcome.Message)
	if err != nil {
		log.Error().Err(err).Msg("failed to sign booking outcome")

		return query
	}

	query.Set(constant.RequestParamOutcome, token)

	return query
}

// CreateBooking books a car through the JSON API.
// @Summary Book a car
// @Description Books an available car for the given city and period. The total is recomputed from the daily rate.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Booking request"
// @Success 201 {object} response.Data[model.Outcome]
// @Failure 400 {object} response.Data[model.Outcome]
// @Failure 409 {object} response.Data[model.Outcome]
// @Failure 500 {object} response.Data[model.Outcome]
// @Router /v1/bookings [post]
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	var req dto.CreateBookingRequest
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to decode booking request")

		outcome := model.OutcomeFromError(err)
		response.WithJSON(writer, outcome.StatusCode(), outcome)

		return
	}

	outcome := model.Outcome{Kind: model.OutcomeConfirmed}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)

		outcome = model.OutcomeFromError(err)
	} else {
		outcome.Message = res.Message
	}

	response.WithJSON(writer, outcome.StatusCode(), outcome)
}
