package service_test

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmcelreavey/todo-li-app/infras/otel/mocks"
	authDto "github.com/jmcelreavey/todo-li-app/internal/domains/auth/model/dto"
	authService "github.com/jmcelreavey/todo-li-app/internal/domains/auth/service"
	"github.com/jmcelreavey/todo-li-app/internal/domains/todo/model"
	"github.com/jmcelreavey/todo-li-app/internal/domains/todo/model/dto"
	"github.com/jmcelreavey/todo-li-app/internal/domains/todo/service"
	userModel "github.com/jmcelreavey/todo-li-app/internal/domains/user/model"
	"github.com/jmcelreavey/todo-li-app/shared/constant"
	gDto "github.com/jmcelreavey/todo-li-app/shared/dto"
)

// fakeUserRepo and fakeTodoRepo are in-memory stand-ins so the full
// sign-up, create, edit, bookmark, delete flow can run against real
// service implementations.

type fakeUserRepo struct {
	users  map[int64]userModel.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]userModel.User{}, nextID: 1}
}

func (r *fakeUserRepo) Insert(_ context.Context, user userModel.User) (int64, error) {
	user.ID = r.nextID
	r.users[user.ID] = user
	r.nextID++

	return user.ID, nil
}

func (r *fakeUserRepo) Get(_ context.Context, filter gDto.FilterGroup) (userModel.User, error) {
	for _, user := range r.users {
		if matchUser(filter, user) {
			return user, nil
		}
	}

	return userModel.User{}, nil
}

func (r *fakeUserRepo) Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error) {
	user, err := r.Get(ctx, filter)

	return user.ID != 0, err
}

func matchUser(filter gDto.FilterGroup, user userModel.User) bool {
	for _, f := range filter.Filters {
		cond, ok := f.(gDto.Filter)
		if !ok {
			return false
		}

		switch cond.Field {
		case userModel.FieldID:
			if user.ID != cond.Value.(int64) {
				return false
			}
		case userModel.FieldName:
			if user.Name != cond.Value.(string) {
				return false
			}
		default:
			return false
		}
	}

	return true
}

type fakeTodoRepo struct {
	todos  map[int64]model.Todo
	nextID int64
}

func newFakeTodoRepo() *fakeTodoRepo {
	return &fakeTodoRepo{todos: map[int64]model.Todo{}, nextID: 1}
}

func (r *fakeTodoRepo) Insert(_ context.Context, todo model.Todo) (int64, error) {
	todo.ID = r.nextID
	r.todos[todo.ID] = todo
	r.nextID++

	return todo.ID, nil
}

func (r *fakeTodoRepo) Get(_ context.Context, filter gDto.FilterGroup) (model.Todo, error) {
	for _, todo := range r.todos {
		if matchTodo(filter, todo) {
			return todo, nil
		}
	}

	return model.Todo{}, nil
}

func (r *fakeTodoRepo) GetAll(_ context.Context, filter gDto.FilterGroup, _ string) ([]model.Todo, error) {
	var result []model.Todo
	for _, todo := range r.todos {
		if matchTodo(filter, todo) {
			result = append(result, todo)
		}
	}

	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })

	return result, nil
}

func (r *fakeTodoRepo) Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error) {
	todo, err := r.Get(ctx, filter)

	return todo.ID != 0, err
}

func (r *fakeTodoRepo) Update(ctx context.Context, fields map[string]any, filter gDto.FilterGroup) error {
	todo, err := r.Get(ctx, filter)
	if err != nil || todo.ID == 0 {
		return err
	}

	if title, ok := fields[model.FieldTitle].(string); ok {
		todo.Title = title
	}
	if progress, ok := fields[model.FieldProgress].(string); ok {
		todo.Progress = progress
	}
	r.todos[todo.ID] = todo

	return nil
}

func (r *fakeTodoRepo) Delete(ctx context.Context, filter gDto.FilterGroup) error {
	todo, err := r.Get(ctx, filter)
	if err != nil || todo.ID == 0 {
		return err
	}

	delete(r.todos, todo.ID)

	return nil
}

func (r *fakeTodoRepo) ToggleBookmark(_ context.Context, id, userID int64) (bool, error) {
	todo, ok := r.todos[id]
	if !ok || todo.UserID != userID {
		return false, nil
	}

	todo.Bookmark = !todo.Bookmark
	r.todos[id] = todo

	return todo.Bookmark, nil
}

func matchTodo(filter gDto.FilterGroup, todo model.Todo) bool {
	for _, f := range filter.Filters {
		cond, ok := f.(gDto.Filter)
		if !ok {
			return false
		}

		switch cond.Field {
		case model.FieldID:
			if todo.ID != cond.Value.(int64) {
				return false
			}
		case model.FieldUserID:
			if todo.UserID != cond.Value.(int64) {
				return false
			}
		case model.FieldProgress:
			if todo.Progress != cond.Value.(string) {
				return false
			}
		case model.FieldBookmark:
			if todo.Bookmark != cond.Value.(bool) {
				return false
			}
		default:
			return false
		}
	}

	return true
}

func TestTodoLifecycle(t *testing.T) {
	ctx := context.Background()
	mockOtel := mocks.NewOtel()

	auth := authService.New(newFakeUserRepo(), mockOtel)
	todos := service.New(newFakeTodoRepo(), mockOtel)

	userID, err := auth.SignUp(ctx, authDto.SignUpRequest{Name: "alice", Password: "password1"})
	require.NoError(t, err)
	require.NotZero(t, userID)

	id, err := todos.Create(ctx, dto.CreateTodoRequest{Title: "Buy milk"}, userID)
	require.NoError(t, err)

	created, err := todos.Get(ctx, id, userID)
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", created.Title)
	assert.Equal(t, constant.ProgressIncomplete, created.Progress)
	assert.False(t, created.Bookmark)

	err = todos.Update(ctx, dto.UpdateTodoRequest{Title: "Buy oat milk", Progress: constant.ProgressInProgress}, id, userID)
	require.NoError(t, err)

	inProgress, err := todos.GetByProgress(ctx, constant.ProgressInProgress, userID)
	require.NoError(t, err)
	require.Len(t, inProgress, 1)
	assert.Equal(t, "Buy oat milk", inProgress[0].Title)

	incomplete, err := todos.GetByProgress(ctx, constant.ProgressIncomplete, userID)
	require.NoError(t, err)
	assert.Empty(t, incomplete)

	require.NoError(t, todos.ToggleBookmark(ctx, id, userID))

	bookmarked, err := todos.GetBookmarked(ctx, userID)
	require.NoError(t, err)
	require.Len(t, bookmarked, 1)
	assert.True(t, bookmarked[0].Bookmark)

	require.NoError(t, todos.ToggleBookmark(ctx, id, userID))

	bookmarked, err = todos.GetBookmarked(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, bookmarked)

	title, err := todos.Delete(ctx, id, userID)
	require.NoError(t, err)
	assert.Equal(t, "Buy oat milk", title)

	_, err = todos.Get(ctx, id, userID)
	require.Error(t, err)
}
