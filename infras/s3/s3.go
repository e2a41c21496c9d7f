package s3

//go:generate go run go.uber.org/mock/mockgen -source=./s3.go -destination=./mocks/s3_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strings"
	"time"

	"rentacar/config"
	"rentacar/infras/otel"
	"rentacar/shared/constant"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"
)

const (
	otelAttrObjectKey = "object_key"
	otelAttrBucket    = "bucket"

	defaultPresignExpireMin = 60
	region                  = "auto"
)

// S3 turns stored car image references into URLs a browser can load.
type S3 interface {
	ResolveImageURL(ctx context.Context, image string) (url string, err error)
}

type s3Impl struct {
	Client    *s3.Client
	Presigner *s3.PresignClient
	Config    *config.Config
	otel      otel.Otel
}

// ResolveImageURL returns absolute URLs and site-relative paths unchanged. Object keys are
// served from the public domain when one is configured and presigned otherwise.
func (svc *s3Impl) ResolveImageURL(ctx context.Context, image string) (url string, err error) {
	if image == constant.Empty || isAbsoluteURL(image) || strings.HasPrefix(image, "/") {
		return image, nil
	}

	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".ResolveImageURL")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	bucketName := svc.Config.External.S3.BucketName

	scope.SetAttributes(map[string]any{
		otelAttrObjectKey: image,
		otelAttrBucket:    bucketName,
	})

	if publicDomain := svc.Config.External.S3.PublicDomain; publicDomain != constant.Empty {
		return strings.TrimRight(publicDomain, "/") + "/" + image, nil
	}

	request, err := svc.Presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucketName),
		Key:    aws.String(image),
	}, s3.WithPresignExpires(svc.presignExpiry()))
	if err != nil {
		log.Error().Err(err).Str("key", image).Msg("failed to presign image")

		return constant.Empty, fmt.Errorf("failed to presign object: %w", err)
	}

	return request.URL, nil
}

func (svc *s3Impl) presignExpiry() time.Duration {
	minutes := svc.Config.External.S3.PresignExpireMin
	if minutes <= 0 {
		minutes = defaultPresignExpireMin
	}

	return time.Duration(minutes) * time.Minute
}

func isAbsoluteURL(value string) bool {
	return strings.HasPrefix(value, "http://") || strings.HasPrefix(value, "https://")
}

func New(config *config.Config, otel otel.Otel) S3 {
	endpoint := config.External.S3.APIEndpoint
	accessKeyID := config.External.S3.AccessKeyID
	secretAccessKey := config.External.S3.SecretAccessKey

	staticProvider := credentials.NewStaticCredentialsProvider(
		accessKeyID,
		secretAccessKey,
		"",
	)

	cfg, err := awsConfig.LoadDefaultConfig(
		context.TODO(),
		awsConfig.WithCredentialsProvider(staticProvider),
		awsConfig.WithRegion(region),
	)

	if err != nil {
		log.Err(err).Msg("Error loading AWS configuration")
	}

	s3Client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != constant.Empty {
			o.BaseEndpoint = aws.String(endpoint)
		}
		o.UsePathStyle = true
	})

	return &s3Impl{
		Client:    s3Client,
		Presigner: s3.NewPresignClient(s3Client),
		Config:    config,
		otel:      otel,
	}
}
