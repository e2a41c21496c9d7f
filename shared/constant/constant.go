package constant

import (
	"time"
)

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyUserID contextKey = "user_id"
)

// DemoUserID is the identity every booking is recorded under until accounts exist.
const DemoUserID int64 = 1

const (
	RequestParamPickupLocation      = "pickup_location"
	RequestParamStartDate           = "start_date"
	RequestParamReturnDate          = "return_date"
	RequestParamCarType             = "car_type"
	RequestParamFuelType            = "fuel_type"
	RequestParamBrand               = "brand"
	RequestParamSort                = "sort"
	RequestParamConfirmationMessage = "confirmation_message"
	RequestParamOutcome             = "outcome"
	RequestParamBookCar             = "book_car"
	RequestParamCarID               = "car_id"
	RequestParamTotalPrice          = "total_price"
)

const (
	RequestMaxMemory = 10 << 20 // 10 MB
)

const (
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"

	DefaultValueSort = SortPriceAsc
)

const (
	PqErrorCodeUniqueViolation = "23505"
	PqErrorCodeFkViolation     = "23503"
	PqErrorCodeCheckViolation  = "23514"
)

const (
	DateFormat      = time.RFC3339
	DateInputFormat = "2006-01-02"
)

const (
	MinutesToSeconds = 60
	HoursPerDay      = 24
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelEventScopeName      = "event"
	OtelExternalScopeName   = "external"

	OtelQueryAttributeKey = "query"
	OtelS3ScopeName       = "s3"
)

const (
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderRequestID          = "X-Request-ID"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
)

const (
	ContentTypeJSON           = "application/json"
	ContentTypeHTML           = "text/html; charset=utf-8"
	ContentTypeFormURLEncoded = "application/x-www-form-urlencoded"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
	ResponseErrorTryAgainLater        = "An error occurred. Please try again later."
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	Asterix = "*"
	Empty   = ""
)
