package ports

import (
	"context"

	"github.com/SKH-TMS/tms-api/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, fullName, email, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}

// DirectoryService covers the administrative user-directory operations.
type DirectoryService interface {
	// AssignProjectManagers grants the ProjectManager role to every user in
	// emails and returns the number of users modified. Zero matches is an
	// error (domain.ErrNoUsersMatched), not a silent success.
	AssignProjectManagers(ctx context.Context, actor domain.Identity, emails []string) (int64, error)
}
