package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/jmcelreavey/todo-li-app/infras/otel"
	"github.com/jmcelreavey/todo-li-app/infras/postgres"
	"github.com/jmcelreavey/todo-li-app/internal/domains/todo/model"
	"github.com/jmcelreavey/todo-li-app/shared/constant"
	gDto "github.com/jmcelreavey/todo-li-app/shared/dto"
	"github.com/jmcelreavey/todo-li-app/shared/logger"
	gRepo "github.com/jmcelreavey/todo-li-app/shared/repository"
	"github.com/jmcelreavey/todo-li-app/shared/timezone"
)

type Todo interface {
	Insert(ctx context.Context, model model.Todo) (int64, error)
	Get(ctx context.Context, filter gDto.FilterGroup) (model.Todo, error)
	GetAll(ctx context.Context, filter gDto.FilterGroup, orderBy string) ([]model.Todo, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, fields map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	ToggleBookmark(ctx context.Context, id, userID int64) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Todo]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Todo {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Todo](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// ToggleBookmark flips the bookmark flag in a single statement so concurrent
// flips never lose a write. The row must belong to userID; a zero RETURNING
// means no row matched.
func (repo *repositoryImpl) ToggleBookmark(ctx context.Context, id, userID int64) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".ToggleBookmark")
	defer scope.End()

	query := fmt.Sprintf(
		"UPDATE %s SET %s = NOT %s, %s = :modified_at WHERE %s = :id AND %s = :user_id RETURNING %s",
		model.TableName,
		model.FieldBookmark,
		model.FieldBookmark,
		constant.FieldModifiedAt,
		model.FieldID,
		model.FieldUserID,
		model.FieldBookmark,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	args := map[string]any{
		"id":          id,
		"user_id":     userID,
		"modified_at": timezone.Now(),
	}

	prepare, err := repo.db.Write.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	var bookmark bool
	if err := prepare.GetContext(ctx, &bookmark, args); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to toggle bookmark (%s): %w", model.EntityName, err)
	}

	return bookmark, nil
}
