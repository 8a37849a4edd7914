package service

import (
	"context"

	"github.com/Uwezo9048/Dr.Foscah/internal/model"
)

// AuthService defines the business logic for operator authentication.
type AuthService interface {
	// Authenticate checks the credentials and returns a signed bearer token
	// together with the operator account. Unknown usernames and wrong
	// passwords both return ErrInvalidCredentials.
	Authenticate(ctx context.Context, username, password string) (string, *model.Operator, error)

	// ChangePassword verifies the current password before storing a hash of
	// the new one. An unknown username returns repository.ErrNotFound; a wrong
	// current password returns ErrInvalidCredentials.
	ChangePassword(ctx context.Context, username, currentPassword, newPassword string) error
}
