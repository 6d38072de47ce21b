package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/jmcelreavey/todo-li-app/infras/otel"
	"github.com/jmcelreavey/todo-li-app/internal/domains/todo/model"
	"github.com/jmcelreavey/todo-li-app/internal/domains/todo/model/dto"
	"github.com/jmcelreavey/todo-li-app/internal/domains/todo/repository"
	"github.com/jmcelreavey/todo-li-app/shared"
	"github.com/jmcelreavey/todo-li-app/shared/constant"
	gDto "github.com/jmcelreavey/todo-li-app/shared/dto"
	"github.com/jmcelreavey/todo-li-app/shared/failure"
)

type Todo interface {
	Create(ctx context.Context, req dto.CreateTodoRequest, userID int64) (int64, error)
	Get(ctx context.Context, id, userID int64) (dto.TodoResponse, error)
	GetByProgress(ctx context.Context, progress string, userID int64) ([]dto.TodoResponse, error)
	GetBookmarked(ctx context.Context, userID int64) ([]dto.TodoResponse, error)
	Update(ctx context.Context, req dto.UpdateTodoRequest, id, userID int64) error
	Delete(ctx context.Context, id, userID int64) (string, error)
	ToggleBookmark(ctx context.Context, id, userID int64) error
}

type serviceImpl struct {
	repo repository.Todo
	otel otel.Otel
}

func New(repo repository.Todo, otel otel.Otel) Todo {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateTodoRequest, userID int64) (id int64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	id, err = s.repo.Insert(ctx, req.ToModel(userID))
	if err != nil {
		log.Error().Err(err).Msg("failed to create todo")

		return 0, fmt.Errorf("failed to create todo: %w", err)
	}

	return id, nil
}

func (s *serviceImpl) Get(ctx context.Context, id, userID int64) (res dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	todo, err := s.getOwned(ctx, id, userID)
	if err != nil {
		return res, err
	}

	res.FromModel(todo)

	return res, nil
}

func (s *serviceImpl) GetByProgress(ctx context.Context, progress string, userID int64) (res []dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByProgress")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldUserID,
				Operator: gDto.FilterOperatorEq,
				Value:    userID,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldProgress,
				Operator: gDto.FilterOperatorEq,
				Value:    progress,
				Table:    model.TableName,
			},
		},
	}

	todos, err := s.repo.GetAll(ctx, filter, constant.FieldCreatedAt+" DESC")
	if err != nil {
		log.Error().Err(err).Msg("failed to get todos")

		return res, fmt.Errorf("failed to get todos: %w", err)
	}

	return dto.FromModels(todos), nil
}

func (s *serviceImpl) GetBookmarked(ctx context.Context, userID int64) (res []dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetBookmarked")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldUserID,
				Operator: gDto.FilterOperatorEq,
				Value:    userID,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldBookmark,
				Operator: gDto.FilterOperatorEq,
				Value:    true,
				Table:    model.TableName,
			},
		},
	}

	todos, err := s.repo.GetAll(ctx, filter, constant.FieldCreatedAt+" DESC")
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookmarked todos")

		return res, fmt.Errorf("failed to get bookmarked todos: %w", err)
	}

	return dto.FromModels(todos), nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateTodoRequest, id, userID int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = s.getOwned(ctx, id, userID); err != nil {
		return err
	}

	updatedFields := shared.TransformFields(req)
	if err := s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update todo")

		return fmt.Errorf("failed to update todo: %w", err)
	}

	return nil
}

// Delete removes the todo and returns its title for the confirmation message.
func (s *serviceImpl) Delete(ctx context.Context, id, userID int64) (title string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	todo, err := s.getOwned(ctx, id, userID)
	if err != nil {
		return "", err
	}

	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete todo")

		return "", fmt.Errorf("failed to delete todo: %w", err)
	}

	return todo.Title, nil
}

func (s *serviceImpl) ToggleBookmark(ctx context.Context, id, userID int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ToggleBookmark")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = s.getOwned(ctx, id, userID); err != nil {
		return err
	}

	if _, err := s.repo.ToggleBookmark(ctx, id, userID); err != nil {
		log.Error().Err(err).Msg("failed to toggle bookmark")

		return fmt.Errorf("failed to toggle bookmark: %w", err)
	}

	return nil
}

// getOwned fetches the todo and enforces ownership: a missing row is a 404,
// someone else's row is a 403.
func (s *serviceImpl) getOwned(ctx context.Context, id, userID int64) (model.Todo, error) {
	todo, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get todo")

		return todo, fmt.Errorf("failed to get todo: %w", err)
	}

	if todo.ID == 0 {
		return todo, failure.NotFound(model.EntityName) // nolint:wrapcheck
	}

	if todo.UserID != userID {
		log.Warn().Int64("todo_id", id).Int64("user_id", userID).Msg("todo access denied")

		return todo, failure.ErrNotTodoOwner
	}

	return todo, nil
}
