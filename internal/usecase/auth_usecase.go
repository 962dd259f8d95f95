package usecase

import (
	"context"
	"errors"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"
)

type authUsecase struct {
	userRepo domain.UserRepository
	hasher   domain.Hasher
	tokens   domain.TokenIssuer
}

func NewAuthUsecase(userRepo domain.UserRepository, hasher domain.Hasher, tokens domain.TokenIssuer) domain.AuthUsecase {
	return &authUsecase{userRepo: userRepo, hasher: hasher, tokens: tokens}
}

func (u *authUsecase) Authenticate(ctx context.Context, username, password string) (*domain.AuthResult, error) {
	user, err := u.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	// Same message for both failure paths so callers cannot probe usernames
	if user == nil {
		return nil, apperror.Unauthorized("Invalid username or password")
	}
	if !u.hasher.Compare(password, user.Password) {
		return nil, apperror.Unauthorized("Invalid username or password")
	}

	// Every persisted user carries an id; a missing one is a store invariant break
	if user.ID == "" {
		return nil, apperror.Internal(errors.New("authenticated user has no id"))
	}

	token, expiresAt, err := u.tokens.Generate(user.ID)
	if err != nil {
		return nil, err
	}

	return &domain.AuthResult{
		Token:    token,
		ExpireIn: expiresAt.UnixMilli(),
	}, nil
}
