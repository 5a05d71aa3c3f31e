package usecase

import (
	"context"

	"realestate-frontend/internal/contextkeys"
	"realestate-frontend/internal/core/domain"
	"realestate-frontend/internal/core/port"
)

// Роли, которые админка позволяет назначить пользователю.
var assignableRoles = map[string]bool{
	"BUYER":  true,
	"SELLER": true,
	"AGENT":  true,
	"ADMIN":  true,
}

type ChangeUserRoleUseCase struct {
	users port.UserBackendPort
}

func NewChangeUserRoleUseCase(users port.UserBackendPort) *ChangeUserRoleUseCase {
	return &ChangeUserRoleUseCase{users: users}
}

func (uc *ChangeUserRoleUseCase) Execute(ctx context.Context, userID int64, role string, token string) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "ChangeUserRole",
		"user_id":  userID,
		"new_role": role,
	})

	ucLogger.Info("Use case started", nil)

	if !assignableRoles[role] {
		ucLogger.Warn("Rejected unknown role", nil)
		return &domain.ValidationError{Field: "role", Message: "unknown role: " + role}
	}

	if err := uc.users.UpdateRole(ctx, userID, role, token); err != nil {
		ucLogger.Error("Backend returned an error", err, nil)
		return err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return nil
}
