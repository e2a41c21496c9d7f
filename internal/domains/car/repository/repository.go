package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"rentacar/infras/otel"
	"rentacar/infras/postgres"
	"rentacar/internal/domains/car/model"
	gDto "rentacar/shared/dto"
	gRepo "rentacar/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Car interface {
	Get(ctx context.Context, filter gDto.FilterGroup) (model.Car, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Car, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	GetForUpdateTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) (model.Car, error)
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Car]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Car {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Car](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
