package usecase

import (
	"context"

	"realestate-frontend/internal/contextkeys"
	"realestate-frontend/internal/core/domain"
	"realestate-frontend/internal/core/port"
)

type GetUsersUseCase struct {
	users port.UserBackendPort
}

func NewGetUsersUseCase(users port.UserBackendPort) *GetUsersUseCase {
	return &GetUsersUseCase{users: users}
}

func (uc *GetUsersUseCase) Execute(ctx context.Context, token string) ([]domain.User, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "GetUsers"})

	ucLogger.Info("Use case started", nil)

	users, err := uc.users.ListUsers(ctx, token)
	if err != nil {
		ucLogger.Error("Backend returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"users": len(users)})
	return users, nil
}
