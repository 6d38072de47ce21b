package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/jmcelreavey/todo-li-app/infras/otel/mocks"
	todoMocks "github.com/jmcelreavey/todo-li-app/internal/domains/todo/mocks"
	"github.com/jmcelreavey/todo-li-app/internal/domains/todo/model"
	"github.com/jmcelreavey/todo-li-app/internal/domains/todo/model/dto"
	"github.com/jmcelreavey/todo-li-app/internal/domains/todo/service"
	"github.com/jmcelreavey/todo-li-app/shared/constant"
	"github.com/jmcelreavey/todo-li-app/shared/failure"
	gModel "github.com/jmcelreavey/todo-li-app/shared/model"
	"github.com/jmcelreavey/todo-li-app/shared/timezone"
)

const (
	ownerID    = int64(1)
	strangerID = int64(2)
)

func newTodo() model.Todo {
	return model.Todo{
		ID:       10,
		Title:    "Buy milk",
		Progress: constant.ProgressIncomplete,
		Bookmark: false,
		UserID:   ownerID,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}
}

func TestTodoService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := todoMocks.NewMockTodo(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockOtel)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful create",
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, todo model.Todo) (int64, error) {
						assert.Equal(t, "Buy milk", todo.Title)
						assert.Equal(t, constant.ProgressIncomplete, todo.Progress)
						assert.False(t, todo.Bookmark)
						assert.Equal(t, ownerID, todo.UserID)

						return 10, nil
					})
			},
			wantErr: false,
		},
		{
			name: "repository error",
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(int64(0), errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			_, err := svc.Create(context.Background(), dto.CreateTodoRequest{Title: "Buy milk"}, ownerID)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTodoService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := todoMocks.NewMockTodo(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockOtel)

	tests := []struct {
		name      string
		userID    int64
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name:   "owner gets todo",
			userID: ownerID,
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(newTodo(), nil)
			},
			wantErr: false,
		},
		{
			name:   "todo not found",
			userID: ownerID,
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Todo{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name:   "stranger is forbidden",
			userID: strangerID,
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(newTodo(), nil)
			},
			wantErr:  true,
			wantCode: http.StatusForbidden,
		},
		{
			name:   "repository error",
			userID: ownerID,
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Todo{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Get(context.Background(), 10, tt.userID)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, int64(10), res.ID)
				assert.Equal(t, "Buy milk", res.Title)
			}
		})
	}
}

func TestTodoService_GetByProgress(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := todoMocks.NewMockTodo(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockOtel)

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), constant.FieldCreatedAt+" DESC").
		Return([]model.Todo{newTodo()}, nil)

	res, err := svc.GetByProgress(context.Background(), constant.ProgressIncomplete, ownerID)
	assert.NoError(t, err)
	assert.Len(t, res, 1)
	assert.Equal(t, "Buy milk", res[0].Title)
}

func TestTodoService_GetBookmarked(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := todoMocks.NewMockTodo(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockOtel)

	bookmarked := newTodo()
	bookmarked.Bookmark = true

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), constant.FieldCreatedAt+" DESC").
		Return([]model.Todo{bookmarked}, nil)

	res, err := svc.GetBookmarked(context.Background(), ownerID)
	assert.NoError(t, err)
	assert.Len(t, res, 1)
	assert.True(t, res[0].Bookmark)
}

func TestTodoService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := todoMocks.NewMockTodo(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockOtel)

	req := dto.UpdateTodoRequest{Title: "Buy bread", Progress: constant.ProgressComplete}

	tests := []struct {
		name      string
		userID    int64
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name:   "successful update",
			userID: ownerID,
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(newTodo(), nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
						assert.Equal(t, "Buy bread", fields[model.FieldTitle])
						assert.Equal(t, constant.ProgressComplete, fields[model.FieldProgress])

						return nil
					})
			},
			wantErr: false,
		},
		{
			name:   "todo not found",
			userID: ownerID,
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Todo{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name:   "stranger is forbidden",
			userID: strangerID,
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(newTodo(), nil)
			},
			wantErr:  true,
			wantCode: http.StatusForbidden,
		},
		{
			name:   "update error",
			userID: ownerID,
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(newTodo(), nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("update error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Update(context.Background(), req, 10, tt.userID)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTodoService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := todoMocks.NewMockTodo(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockOtel)

	tests := []struct {
		name      string
		userID    int64
		setupMock func()
		wantErr   bool
		wantCode  int
		wantTitle string
	}{
		{
			name:   "successful delete returns title",
			userID: ownerID,
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(newTodo(), nil)

				mockRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr:   false,
			wantTitle: "Buy milk",
		},
		{
			name:   "todo not found",
			userID: ownerID,
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Todo{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name:   "stranger is forbidden",
			userID: strangerID,
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(newTodo(), nil)
			},
			wantErr:  true,
			wantCode: http.StatusForbidden,
		},
		{
			name:   "delete error",
			userID: ownerID,
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(newTodo(), nil)

				mockRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(errors.New("delete error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			title, err := svc.Delete(context.Background(), 10, tt.userID)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantTitle, title)
			}
		})
	}
}

func TestTodoService_ToggleBookmark(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := todoMocks.NewMockTodo(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockOtel)

	tests := []struct {
		name      string
		userID    int64
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name:   "successful toggle",
			userID: ownerID,
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(newTodo(), nil)

				mockRepo.EXPECT().
					ToggleBookmark(gomock.Any(), int64(10), ownerID).
					Return(true, nil)
			},
			wantErr: false,
		},
		{
			name:   "todo not found",
			userID: ownerID,
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Todo{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name:   "stranger is forbidden",
			userID: strangerID,
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(newTodo(), nil)
			},
			wantErr:  true,
			wantCode: http.StatusForbidden,
		},
		{
			name:   "toggle error",
			userID: ownerID,
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(newTodo(), nil)

				mockRepo.EXPECT().
					ToggleBookmark(gomock.Any(), int64(10), ownerID).
					Return(false, errors.New("toggle error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.ToggleBookmark(context.Background(), 10, tt.userID)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
