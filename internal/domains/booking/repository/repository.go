package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"rentacar/infras/otel"
	"rentacar/infras/postgres"
	"rentacar/internal/domains/booking/model"
	gRepo "rentacar/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Booking interface {
	WithTx(ctx context.Context, fn gRepo.TxFunc) error
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Booking) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
