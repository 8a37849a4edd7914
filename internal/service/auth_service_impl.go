package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/Uwezo9048/Dr.Foscah/internal/model"
	"github.com/Uwezo9048/Dr.Foscah/internal/repository"
	"github.com/Uwezo9048/Dr.Foscah/pkg/auth"
)

// authServiceImpl is the production implementation of AuthService.
type authServiceImpl struct {
	operators repository.OperatorRepository
	issuer    *auth.TokenIssuer
}

// NewAuthService creates an AuthService backed by the given repository and
// token issuer.
func NewAuthService(operators repository.OperatorRepository, issuer *auth.TokenIssuer) AuthService {
	return &authServiceImpl{operators: operators, issuer: issuer}
}

// Authenticate verifies the password hash and issues a bearer token.
func (s *authServiceImpl) Authenticate(ctx context.Context, username, password string) (string, *model.Operator, error) {
	op, err := s.operators.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(op.PasswordHash), []byte(password)) != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(op.Username)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}
	return token, op, nil
}

// ChangePassword verifies the current password and replaces the stored hash.
func (s *authServiceImpl) ChangePassword(ctx context.Context, username, currentPassword, newPassword string) error {
	if currentPassword == "" || newPassword == "" {
		return fmt.Errorf("%w: both passwords are required", ErrValidation)
	}

	op, err := s.operators.FindByUsername(ctx, username)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(op.PasswordHash), []byte(currentPassword)) != nil {
		return ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return s.operators.UpdatePasswordHash(ctx, username, string(hash))
}
