package ports

import (
	"context"

	"github.com/codexiq/review-api/internal/core/domain"
)

// AuthRepository defines the interface for user persistence. Create must be
// atomic with respect to the email/username uniqueness checks: the backing
// store enforces unique constraints, so two concurrent registrations with the
// same email cannot both succeed.
type AuthRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
