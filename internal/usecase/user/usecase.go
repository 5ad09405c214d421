package user

import (
	"context"

	"go.uber.org/zap"

	domain "user-api/internal/domain/user"
	apperrors "user-api/pkg/errors"
	"user-api/pkg/logger"
	"user-api/pkg/security"
)

// Repository defines the interface for user data access operations.
// Implementations must assign IDs atomically and return snapshots from List.
type Repository interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error) // Append a user and assign its ID
	List(ctx context.Context) ([]domain.User, error)                  // All users in creation order
}

// Service implements the business logic for user management operations.
type Service struct {
	repo Repository  // Repository for data access
	log  *zap.Logger // Logger for structured logging
}

// New creates a new instance of Service with the provided repository and logger.
func New(r Repository, log *zap.Logger) *Service {
	return &Service{repo: r, log: log}
}

// CreateUser validates the request, sanitizes the name, normalizes the email
// and stores the user. Nothing is stored when validation fails.
func (s *Service) CreateUser(ctx context.Context, in CreateUserRequest) (*CreateUserResponse, error) {
	log := logger.WithContext(ctx, s.log)

	result := ValidateCreateUser(in)
	if !result.Valid {
		log.Warn("create user validation failed", zap.Strings("errors", result.Errors))
		return nil, apperrors.NewValidationError(result.Errors...)
	}

	u, err := s.repo.Create(ctx, &domain.User{
		Name:  security.SanitizeHTML(in.Name.Value),
		Email: security.NormalizeEmail(in.Email.Value),
	})
	if err != nil {
		log.Error("failed to create user", zap.Error(err))
		return nil, apperrors.NewInternalError("failed to create user", err)
	}

	log.Info("user created", zap.Int64("id", u.ID))

	return &CreateUserResponse{User: toDTO(*u)}, nil
}

// ListUsers returns every stored user in creation order.
func (s *Service) ListUsers(ctx context.Context) (*ListUsersResponse, error) {
	domainUsers, err := s.repo.List(ctx)
	if err != nil {
		logger.WithContext(ctx, s.log).Error("failed to list users", zap.Error(err))
		return nil, apperrors.NewInternalError("failed to list users", err)
	}

	users := make([]User, len(domainUsers))
	for i, du := range domainUsers {
		users[i] = toDTO(du)
	}

	return &ListUsersResponse{Users: users}, nil
}

func toDTO(u domain.User) User {
	return User{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}
