package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/jmcelreavey/todo-li-app/infras/otel"
	"github.com/jmcelreavey/todo-li-app/internal/domains/auth/model/dto"
	userModel "github.com/jmcelreavey/todo-li-app/internal/domains/user/model"
	userRepo "github.com/jmcelreavey/todo-li-app/internal/domains/user/repository"
	"github.com/jmcelreavey/todo-li-app/shared/constant"
	gDto "github.com/jmcelreavey/todo-li-app/shared/dto"
	"github.com/jmcelreavey/todo-li-app/shared/failure"
	"github.com/jmcelreavey/todo-li-app/shared/password"
)

const (
	// MessageDuplicateName is shown when the uniqueness constraint rejects a sign-up.
	MessageDuplicateName = "The username is already taken."

	// MessageSignInFailed is shown for unknown names and wrong passwords alike,
	// so a failed attempt never reveals which part was wrong.
	MessageSignInFailed = "Login failed. Please check your account name and password again."
)

type Auth interface {
	SignUp(ctx context.Context, req dto.SignUpRequest) (int64, error)
	SignIn(ctx context.Context, req dto.SignInRequest) (int64, error)
}

type serviceImpl struct {
	userRepo userRepo.User
	otel     otel.Otel
}

func New(userRepo userRepo.User, otel otel.Otel) Auth {
	return &serviceImpl{
		userRepo: userRepo,
		otel:     otel,
	}
}

// SignUp hashes the password and creates the user, returning the new id.
func (s *serviceImpl) SignUp(ctx context.Context, req dto.SignUpRequest) (id int64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SignUp")
	defer scope.End()
	defer scope.TraceIfError(err)

	hashedPassword, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return 0, fmt.Errorf("failed to hash password: %w", err)
	}

	id, err = s.userRepo.Insert(ctx, req.ToUserModel(hashedPassword))
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation {
			log.Warn().Str("name", req.Name).Msg("sign-up attempt with taken username")

			return 0, failure.Conflict(MessageDuplicateName)
		}

		log.Error().Err(err).Msg("failed to create user")

		return 0, fmt.Errorf("failed to create user: %w", err)
	}

	return id, nil
}

// SignIn verifies the credentials and returns the user id.
func (s *serviceImpl) SignIn(ctx context.Context, req dto.SignInRequest) (id int64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SignIn")
	defer scope.End()
	defer scope.TraceIfError(err)

	nameFilter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    userModel.FieldName,
				Operator: gDto.FilterOperatorEq,
				Value:    req.Name,
				Table:    userModel.TableName,
			},
		},
	}

	user, err := s.userRepo.Get(ctx, nameFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return 0, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == 0 {
		log.Warn().Str("name", req.Name).Msg("sign-in attempt with unknown name")

		return 0, failure.Unauthorized(MessageSignInFailed)
	}

	if err := password.Verify(req.Password, user.Password); err != nil {
		log.Warn().Str("name", req.Name).Msg("sign-in attempt with wrong password")

		return 0, failure.Unauthorized(MessageSignInFailed)
	}

	return user.ID, nil
}
