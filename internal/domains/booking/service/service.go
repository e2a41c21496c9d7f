package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"math"

	"rentacar/config"
	"rentacar/infras/kafka"
	"rentacar/infras/otel"
	"rentacar/internal/domains/booking/model"
	"rentacar/internal/domains/booking/model/dto"
	"rentacar/internal/domains/booking/repository"
	carModel "rentacar/internal/domains/car/model"
	carDto "rentacar/internal/domains/car/model/dto"
	carRepo "rentacar/internal/domains/car/repository"
	"rentacar/shared"
	"rentacar/shared/cache"
	"rentacar/shared/constant"
	"rentacar/shared/failure"
	"rentacar/shared/logger"
	"rentacar/shared/rental"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const priceTolerance = 0.005

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
}

type serviceImpl struct {
	repo    repository.Booking
	carRepo carRepo.Car
	cfg     *config.Config
	cache   cache.RedisCache
	kafka   kafka.Client
	otel    otel.Otel
}

func New(repo repository.Booking, carRepo carRepo.Car, cfg *config.Config, cache cache.RedisCache, kafka kafka.Client, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:    repo,
		carRepo: carRepo,
		cfg:     cfg,
		cache:   cache,
		kafka:   kafka,
		otel:    otel,
	}
}

// Create books the car when it is still available. The availability read and the insert
// share one transaction with the car row locked, so concurrent requests cannot both win.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	start, ret, err := req.Validate()
	if err != nil {
		return res, err
	}

	var booking model.Booking

	err = s.repo.WithTx(ctx, func(ctx context.Context, sqltx *sqlx.Tx) error {
		car, err := s.carRepo.GetForUpdateTx(ctx, sqltx, carDto.AvailableByIDFilter(req.CarID))
		if err != nil {
			return fmt.Errorf("failed to lock car: %w", err)
		}

		if car.ID == 0 {
			return failure.Conflict(model.MessageUnavailable) //nolint:wrapcheck
		}

		booking = req.ToModel(start, ret, car.PricePerDay)
		if math.Abs(booking.TotalPrice-req.TotalPrice) > priceTolerance {
			log.Warn().
				Int64("carID", car.ID).
				Float64("submitted", req.TotalPrice).
				Float64("computed", booking.TotalPrice).
				Msg("submitted total price differs from computed price")
		}

		if err := s.repo.InsertTx(ctx, sqltx, booking); err != nil {
			return fmt.Errorf("failed to insert booking: %w", err)
		}

		if !s.cfg.App.Booking.HoldCar {
			return nil
		}

		hold := map[string]any{carModel.FieldAvailable: false}
		if err := s.carRepo.UpdateTx(ctx, sqltx, hold, shared.FilterByID(car.ID, carModel.FieldID, carModel.TableName)); err != nil {
			return fmt.Errorf("failed to hold car: %w", err)
		}

		return nil
	})
	if err != nil {
		return res, classify(err)
	}

	res.FromModel(booking)

	go s.afterCommit(context.WithoutCancel(ctx), booking)

	return res, nil
}

func (s *serviceImpl) afterCommit(ctx context.Context, booking model.Booking) {
	if s.cfg.App.Booking.HoldCar {
		shared.InvalidateCaches(ctx, s.cache, carModel.CacheSearch)
		shared.InvalidateCaches(ctx, s.cache, carModel.CacheCount)
	}

	if !s.cfg.Kafka.Enable {
		return
	}

	var event dto.BookingConfirmedEvent
	event.FromModel(booking)

	if err := s.kafka.SendMessages(ctx, s.cfg.Kafka.Topic.Booking, kafka.Message{Key: booking.ID, Value: event}); err != nil {
		log.Error().Err(err).Str("bookingID", booking.ID).Msg("failed to publish booking confirmed event")
	}
}

// classify keeps Failures as they are and maps constraint violations onto booking outcomes.
// Anything else is logged and reported as a generic storage failure.
func classify(err error) error {
	var fail *failure.Failure
	if errors.As(err, &fail) {
		return err
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case constant.PqErrorCodeFkViolation:
			return failure.Conflict(model.MessageUnavailable) //nolint:wrapcheck
		case constant.PqErrorCodeCheckViolation:
			return failure.BadRequestFromString(rental.MessageInvalidDates) //nolint:wrapcheck
		}
	}

	logger.ErrorWithStack(err)

	return failure.InternalErrorFromString(model.MessageStorageFailed)
}
