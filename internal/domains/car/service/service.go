package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"

	"rentacar/config"
	"rentacar/infras/otel"
	"rentacar/infras/s3"
	"rentacar/internal/domains/car/model"
	"rentacar/internal/domains/car/model/dto"
	"rentacar/internal/domains/car/repository"
	"rentacar/shared"
	"rentacar/shared/cache"
	"rentacar/shared/constant"
	"rentacar/shared/failure"
	"rentacar/shared/logger"

	"github.com/rs/zerolog/log"
)

const cacheCountAvailable = "available"

type Car interface {
	Search(ctx context.Context, req dto.SearchRequest) (dto.SearchResponse, error)
	CountAvailable(ctx context.Context) (int, error)
}

type serviceImpl struct {
	repo  repository.Car
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	s3    s3.S3
}

func New(repo repository.Car, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) Car {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		s3:    s3,
	}
}

// Search returns the available cars matching req in the requested price order.
// Validation failures carry the user-facing message as a 400 Failure.
func (s *serviceImpl) Search(ctx context.Context, req dto.SearchRequest) (res dto.SearchResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Search")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = req.Validate(); err != nil {
		return res, err
	}

	params := req.QueryParams()
	filter := req.Filter()
	cacheKey := shared.BuildCacheKeyWithQuery(model.CacheSearch, params, filter)

	var models []model.Car
	if s.cacheEnabled() && s.cache.Get(ctx, cacheKey, &models) == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for car search")
	} else {
		models, err = s.repo.GetAll(ctx, params, filter)
		if err != nil {
			logger.ErrorWithStack(err)

			return res, failure.InternalErrorFromString(model.MessageSearchFailed)
		}

		s.saveAsync(ctx, cacheKey, models)
	}

	res.FromModels(models)

	for i := range res.Cars {
		res.Cars[i].Image = s.resolveImage(ctx, res.Cars[i].Image)
	}

	return res, nil
}

// CountAvailable counts the cars that can be booked right now.
func (s *serviceImpl) CountAvailable(ctx context.Context) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CountAvailable")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(model.CacheCount, cacheCountAvailable)

	if s.cacheEnabled() && s.cache.Get(ctx, cacheKey, &res) == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for car count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, dto.AvailableFilter())
	if err != nil {
		logger.ErrorWithStack(err)

		return 0, failure.InternalErrorFromString(model.MessageInventoryFailed)
	}

	s.saveAsync(ctx, cacheKey, res)

	return res, nil
}

// cacheEnabled is false for a non-positive TTL, since such entries would never expire.
func (s *serviceImpl) cacheEnabled() bool {
	return s.cfg.Cache.TTL > 0
}

func (s *serviceImpl) saveAsync(ctx context.Context, key string, value any) {
	if !s.cacheEnabled() {
		return
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, key, value, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Str("cacheKey", key).Msg("failed to save cars to cache")
		}
	}()
}

// resolveImage keeps the stored value when the object store cannot produce a URL.
func (s *serviceImpl) resolveImage(ctx context.Context, image string) string {
	url, err := s.s3.ResolveImageURL(ctx, image)
	if err != nil {
		log.Warn().Err(err).Str("image", image).Msg("failed to resolve car image")

		return image
	}

	return url
}
