package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"rentacar/config"
	"rentacar/infras/otel/mocks"
	s3Mocks "rentacar/infras/s3/mocks"
	carMocks "rentacar/internal/domains/car/mocks"
	"rentacar/internal/domains/car/model"
	"rentacar/internal/domains/car/model/dto"
	"rentacar/internal/domains/car/service"
	cacheMocks "rentacar/shared/cache/mocks"
	gDto "rentacar/shared/dto"
	"rentacar/shared/failure"
	"rentacar/shared/rental"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errCacheMiss = errors.New("cache miss")

func searchRequest(sort string) dto.SearchRequest {
	return dto.SearchRequest{
		Trip: gDto.Trip{
			PickupLocation: "Karachi",
			StartDate:      "2025-06-01",
			ReturnDate:     "2025-06-04",
		},
		Sort:     sort,
		Required: true,
	}
}

func cachedConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	return cfg
}

func passThroughImages(mockS3 *s3Mocks.MockS3) {
	mockS3.EXPECT().
		ResolveImageURL(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, image string) (string, error) { return image, nil }).
		AnyTimes()
}

func TestCarService_Search(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := carMocks.NewMockCar(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, cachedConfig(), mockCache, mockOtel, mockS3)

	ascending := []model.Car{
		{ID: 2, Brand: "Honda", Model: "Civic", CarType: "Sedan", PricePerDay: 25, Available: true},
		{ID: 1, Brand: "Toyota", Model: "Corolla", CarType: "Sedan", PricePerDay: 40, Available: true},
		{ID: 3, Brand: "BMW", Model: "X5", CarType: "SUV", PricePerDay: 60, Available: true},
	}

	tests := []struct {
		name        string
		req         dto.SearchRequest
		setupMock   func()
		wantIDs     []int64
		wantCode    int
		wantMessage string
	}{
		{
			name: "sorted by price ascending",
			req:  searchRequest("price_asc"),
			setupMock: func() {
				mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss)
				mockRepo.EXPECT().
					GetAll(gomock.Any(), gDto.QueryParams{SortBy: model.FieldPricePerDay, SortDir: gDto.SortDirAsc}, gomock.Any()).
					Return(ascending, nil)
				mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), 60).Return(nil).AnyTimes()
				passThroughImages(mockS3)
			},
			wantIDs: []int64{2, 1, 3},
		},
		{
			name: "sorted by price descending",
			req:  searchRequest("price_desc"),
			setupMock: func() {
				mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss)
				mockRepo.EXPECT().
					GetAll(gomock.Any(), gDto.QueryParams{SortBy: model.FieldPricePerDay, SortDir: gDto.SortDirDesc}, gomock.Any()).
					Return([]model.Car{ascending[2], ascending[1], ascending[0]}, nil)
				mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
				passThroughImages(mockS3)
			},
			wantIDs: []int64{3, 1, 2},
		},
		{
			name: "filters reach the repository",
			req: func() dto.SearchRequest {
				req := searchRequest("price_asc")
				req.CarType = "SUV"
				req.FuelType = "Diesel"

				return req
			}(),
			setupMock: func() {
				mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss)
				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup) ([]model.Car, error) {
						_, args := filter.GetWhereClause()
						assert.Equal(t, "SUV", args["car_type"])
						assert.Equal(t, "Diesel", args["fuel_type"])
						assert.Equal(t, true, args["available"])

						return []model.Car{ascending[2]}, nil
					})
				mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
				passThroughImages(mockS3)
			},
			wantIDs: []int64{3},
		},
		{
			name: "no matches",
			req:  searchRequest("price_asc"),
			setupMock: func() {
				mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss)
				mockRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
				mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
			wantIDs: []int64{},
		},
		{
			name: "cache hit skips the repository",
			req:  searchRequest("price_asc"),
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, value any) error {
						*(value.(*[]model.Car)) = ascending[:1]

						return nil
					})
				passThroughImages(mockS3)
			},
			wantIDs: []int64{2},
		},
		{
			name: "invalid location never queries",
			req: func() dto.SearchRequest {
				req := searchRequest("price_asc")
				req.PickupLocation = "Berlin"

				return req
			}(),
			setupMock:   func() {},
			wantCode:    http.StatusBadRequest,
			wantMessage: rental.MessageInvalidLocation,
		},
		{
			name: "return before start never queries",
			req: func() dto.SearchRequest {
				req := searchRequest("price_asc")
				req.ReturnDate = "2025-05-30"

				return req
			}(),
			setupMock:   func() {},
			wantCode:    http.StatusBadRequest,
			wantMessage: rental.MessageInvalidDates,
		},
		{
			name: "invalid fuel type never queries",
			req: func() dto.SearchRequest {
				req := searchRequest("price_asc")
				req.FuelType = "Steam"

				return req
			}(),
			setupMock:   func() {},
			wantCode:    http.StatusBadRequest,
			wantMessage: rental.MessageInvalidFuelType,
		},
		{
			name: "storage failure",
			req:  searchRequest("price_asc"),
			setupMock: func() {
				mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss)
				mockRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused"))
			},
			wantCode:    http.StatusInternalServerError,
			wantMessage: model.MessageSearchFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Search(context.Background(), tt.req)

			if tt.wantCode != 0 {
				var f *failure.Failure
				require.ErrorAs(t, err, &f)
				assert.Equal(t, tt.wantCode, f.Code)
				assert.Equal(t, tt.wantMessage, f.Message)

				return
			}

			require.NoError(t, err)

			ids := make([]int64, 0, len(res.Cars))
			for _, car := range res.Cars {
				ids = append(ids, car.ID)
			}

			assert.Equal(t, tt.wantIDs, ids)
			assert.Equal(t, len(tt.wantIDs), res.TotalData)
		})
	}
}

func TestCarService_SearchImageFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := carMocks.NewMockCar(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)

	svc := service.New(mockRepo, cachedConfig(), mockCache, mocks.NewOtel(), mockS3)

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss)
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Car{
		{ID: 1, Brand: "Ford", Model: "Transit", Image: "cars/transit.jpg"},
		{ID: 2, Brand: "Tesla", Model: "Model Y", Image: "cars/model-y.jpg"},
	}, nil)
	mockS3.EXPECT().ResolveImageURL(gomock.Any(), "cars/transit.jpg").Return("https://cdn.example.com/cars/transit.jpg", nil)
	mockS3.EXPECT().ResolveImageURL(gomock.Any(), "cars/model-y.jpg").Return("", errors.New("presign failed"))

	res, err := svc.Search(context.Background(), searchRequest("price_asc"))

	require.NoError(t, err)
	require.Len(t, res.Cars, 2)
	assert.Equal(t, "https://cdn.example.com/cars/transit.jpg", res.Cars[0].Image)
	assert.Equal(t, "cars/model-y.jpg", res.Cars[1].Image)
}

func TestCarService_CountAvailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := carMocks.NewMockCar(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	svc := service.New(mockRepo, cachedConfig(), mockCache, mocks.NewOtel(), s3Mocks.NewMockS3(ctrl))

	tests := []struct {
		name        string
		setupMock   func()
		want        int
		wantMessage string
	}{
		{
			name: "counts available cars",
			setupMock: func() {
				mockCache.EXPECT().Get(gomock.Any(), "car:count:available", gomock.Any()).Return(errCacheMiss)
				mockRepo.EXPECT().Count(gomock.Any(), dto.AvailableFilter()).Return(9, nil)
				mockCache.EXPECT().Save(gomock.Any(), "car:count:available", 9, gomock.Any()).Return(nil).AnyTimes()
			},
			want: 9,
		},
		{
			name: "empty inventory",
			setupMock: func() {
				mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss)
				mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, nil)
				mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), 0, gomock.Any()).Return(nil).AnyTimes()
			},
			want: 0,
		},
		{
			name: "cached count",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, value any) error {
						*(value.(*int)) = 4

						return nil
					})
			},
			want: 4,
		},
		{
			name: "storage failure",
			setupMock: func() {
				mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss)
				mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, errors.New("timeout"))
			},
			wantMessage: model.MessageInventoryFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			count, err := svc.CountAvailable(context.Background())

			if tt.wantMessage != "" {
				require.Error(t, err)
				assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
				assert.Equal(t, tt.wantMessage, err.Error())

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, count)
		})
	}
}

func TestCarService_WithoutCacheTTL(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := carMocks.NewMockCar(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)
	passThroughImages(mockS3)

	// no expectations: a zero TTL must neither read nor write the cache
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	svc := service.New(mockRepo, &config.Config{}, mockCache, mocks.NewOtel(), mockS3)

	mockRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Car{
		{ID: 1, Brand: "Toyota", Model: "Corolla", PricePerDay: 25, Available: true},
	}, nil).Times(2)
	mockRepo.EXPECT().Count(gomock.Any(), dto.AvailableFilter()).Return(5, nil)

	for range 2 {
		res, err := svc.Search(context.Background(), searchRequest("price_asc"))

		require.NoError(t, err)
		assert.Len(t, res.Cars, 1)
	}

	count, err := svc.CountAvailable(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 5, count)
}
