package router

import (
	_ "rentacar/docs" // swagger spec
	"rentacar/internal/handlers/booking"
	"rentacar/internal/handlers/car"
	"rentacar/internal/handlers/health"
	"rentacar/internal/handlers/page"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"
)

const swaggerDocURL = "/swagger/doc.json"

type DomainHandlers struct {
	Page    page.Handler
	Car     car.Handler
	Booking booking.Handler
	Health  health.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	r.DomainHandlers.Health.Router(router)
	r.DomainHandlers.Page.Router(router)
	r.DomainHandlers.Booking.FormRouter(router)

	router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(swaggerDocURL)))

	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Car.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
