package services

import (
	"context"

	"github.com/SscSPs/instant_transfer/internal/core/domain"
	"github.com/SscSPs/instant_transfer/internal/dto"
)

// UserSvcFacade defines registration, authentication and lookup of users.
type UserSvcFacade interface {
	// Register creates a new user with a hashed password.
	// Returns apperrors.ErrDuplicate if the username or email is taken.
	Register(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error)
	// Authenticate checks the credentials and returns the matching user.
	// Returns apperrors.ErrUnauthorized on any mismatch.
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}
