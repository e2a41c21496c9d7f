package page

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"rentacar/config"
	"rentacar/infras/jwt"
	"rentacar/infras/otel"
	bookingModel "rentacar/internal/domains/booking/model"
	"rentacar/internal/domains/car/model"
	"rentacar/internal/domains/car/model/dto"
	"rentacar/internal/domains/car/service"
	"rentacar/shared/constant"
	"rentacar/shared/failure"
	"rentacar/shared/logger"
	"rentacar/transport/http/view"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	defaultTitle = "RentACar"
	errorMarker  = "Error"
)

type Handler struct {
	service service.Car
	jwt     jwt.JWT
	cfg     *config.Config
	otel    otel.Otel
}

func New(service service.Car, jwt jwt.JWT, cfg *config.Config, otel otel.Otel) Handler {
	return Handler{
		service: service,
		jwt:     jwt,
		cfg:     cfg,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/", handler.Index)
	router.Handle("/static/*", http.StripPrefix("/static", view.Static()))
}

// Index renders the search page. A search runs only when pickup_location, start_date
// and return_date are all present in the query, even if some of them are empty.
func (handler *Handler) Index(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Index")
	defer scope.End()

	query := request.URL.Query()

	var req dto.SearchRequest
	req.FromQuery(query)

	page := view.NewPage(handler.title(), view.SearchForm{
		PickupLocation: req.PickupLocation,
		StartDate:      req.StartDate,
		ReturnDate:     req.ReturnDate,
		CarType:        req.CarType,
		FuelType:       req.FuelType,
		Brand:          req.Brand,
		Sort:           req.Sort,
	})
	page.Prompt = model.MessageSearchRequired
	page.NoResults = model.MessageNoResults
	page.Confirmation = handler.confirmation(query)
	page.Error = handler.inventoryMessage(ctx)

	if req.Required {
		page.Searched = true

		res, err := handler.service.Search(ctx, req)
		if err != nil {
			scope.TraceError(err)
			log.Warn().Err(err).Msg("car search failed")

			page.Error = failure.GetMessage(err, model.MessageSearchFailed)
		} else {
			page.Cars = res.Cars
		}
	}

	if err := view.Render(writer, http.StatusOK, page); err != nil {
		scope.TraceError(err)
		logger.ErrorWithStack(err)

		http.Error(writer, constant.ResponseErrorTryAgainLater, http.StatusInternalServerError)
	}
}

// inventoryMessage warns when nothing can be booked at all. An empty string means cars are available.
func (handler *Handler) inventoryMessage(ctx context.Context) string {
	count, err := handler.service.CountAvailable(ctx)
	if err != nil {
		return failure.GetMessage(err, model.MessageInventoryFailed)
	}

	if count == 0 {
		return model.MessageEmptyInventory
	}

	return constant.Empty
}

// confirmation classifies the outcome banner by the signed outcome token when it matches
// the displayed message, and by the presence of "Error" in the message otherwise.
func (handler *Handler) confirmation(query url.Values) *view.Banner {
	message := query.Get(constant.RequestParamConfirmationMessage)
	if message == constant.Empty {
		return nil
	}

	banner := &view.Banner{
		Message: message,
		IsError: strings.Contains(message, errorMarker),
	}

	token := query.Get(constant.RequestParamOutcome)
	if token == constant.Empty {
		return banner
	}

	claims, err := handler.jwt.ValidateOutcomeToken(token)
	if err != nil {
		log.Debug().Err(err).Msg("ignoring outcome token")

		return banner
	}

	if claims.Message == message {
		banner.IsError = claims.Kind != string(bookingModel.OutcomeConfirmed)
	}

	return banner
}

func (handler *Handler) title() string {
	if handler.cfg.App.Name != constant.Empty {
		return handler.cfg.App.Name
	}

	return defaultTitle
}
