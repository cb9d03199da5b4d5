package ports

import (
	"context"

	"github.com/SKH-TMS/tms-api/internal/core/domain"
)

// UserRepository defines persistence operations on the users collection.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// AssignRole sets role on every user whose email is in emails and
	// returns the number of documents modified.
	AssignRole(ctx context.Context, emails []string, role string) (int64, error)
}
