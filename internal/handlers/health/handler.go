package health

import (
	"context"
	"net/http"
	"time"

	"rentacar/infras/otel"
	"rentacar/shared/constant"
	"rentacar/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	pingTimeout = 2 * time.Second
	statusOK    = "OK"
)

// Pinger is satisfied by the database connection.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	db   Pinger
	otel otel.Otel
}

func New(db Pinger, otel otel.Otel) Handler {
	return Handler{
		db:   db,
		otel: otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/health", handler.Health)
}

// Health reports whether the database answers.
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Message
// @Failure 503 {object} response.Message
// @Router /health [get]
func (handler *Handler) Health(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Health")
	defer scope.End()

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := handler.db.Ping(ctx); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("database ping failed")

		response.WithUnhealthy(writer)

		return
	}

	response.WithMessage(writer, http.StatusOK, statusOK)
}
