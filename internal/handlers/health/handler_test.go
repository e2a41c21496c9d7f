package health_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	otelMocks "rentacar/infras/otel/mocks"
	"rentacar/internal/handlers/health"
	"rentacar/shared/constant"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

type pinger struct {
	err error
}

func (p pinger) Ping(ctx context.Context) error {
	if _, ok := ctx.Deadline(); !ok {
		return errors.New("ping without deadline")
	}

	return p.err
}

func TestHealth(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     int
		expected string
	}{
		{name: "healthy", code: http.StatusOK, expected: "OK"},
		{name: "database down", err: errors.New("connection refused"), code: http.StatusServiceUnavailable, expected: constant.ResponseErrorUnhealthy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := health.New(pinger{err: tt.err}, otelMocks.NewOtel())

			router := chi.NewRouter()
			handler.Router(router)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.code, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expected)
		})
	}
}
