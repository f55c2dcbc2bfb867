package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"inspirehub/infras/otel"
	"inspirehub/infras/postgres"
	"inspirehub/internal/domains/notice/model"
	gDto "inspirehub/shared/dto"
	gRepo "inspirehub/shared/repository"
)

type Notice interface {
	Insert(ctx context.Context, model model.Notice) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Notice, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Notice, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Notice]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Notice {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Notice](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// ForMember selects every notice addressed to one member.
func ForMember(memberID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldMemberID,
				Operator: gDto.FilterOperatorEq,
				Value:    memberID,
				Table:    model.TableName,
			},
		},
	}
}
