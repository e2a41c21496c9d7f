//go:build wireinject
// +build wireinject

package di

import (
	"rentacar/config"
	"rentacar/infras/jwt"
	"rentacar/infras/kafka"
	"rentacar/infras/otel"
	"rentacar/infras/postgres"
	"rentacar/infras/redis"
	"rentacar/infras/s3"
	"rentacar/shared/cache"
	"rentacar/transport/http"
	"rentacar/transport/http/middleware"
	"rentacar/transport/http/router"

	bookingRepository "rentacar/internal/domains/booking/repository"
	bookingService "rentacar/internal/domains/booking/service"
	carRepository "rentacar/internal/domains/car/repository"
	carService "rentacar/internal/domains/car/service"

	bookingHandler "rentacar/internal/handlers/booking"
	carHandler "rentacar/internal/handlers/car"
	healthHandler "rentacar/internal/handlers/health"
	pageHandler "rentacar/internal/handlers/page"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
	wire.Bind(new(healthHandler.Pinger), new(*postgres.Connection)),
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var carDomain = wire.NewSet(
	carRepository.New,
	carService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var domains = wire.NewSet(
	carDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	pageHandler.New,
	carHandler.New,
	bookingHandler.New,
	healthHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
