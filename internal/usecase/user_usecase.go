package usecase

import (
	"context"

	"github.com/go-playground/validator/v10"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"
	"go-portfolio-backend/pkg/validation"
)

type userUsecase struct {
	userRepo domain.UserRepository
	hasher   domain.Hasher
	validate *validator.Validate
}

func NewUserUsecase(userRepo domain.UserRepository, hasher domain.Hasher, validate *validator.Validate) domain.UserUsecase {
	return &userUsecase{userRepo: userRepo, hasher: hasher, validate: validate}
}

type userCredentials struct {
	Username string `validate:"required,min=3,max=64"`
	Password string `validate:"required,min=6"`
}

func (u *userUsecase) Create(ctx context.Context, username, password string) (*domain.User, error) {
	if err := u.validate.Struct(userCredentials{Username: username, Password: password}); err != nil {
		return nil, apperror.BadRequest(validation.FormatError(err))
	}

	existing, err := u.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.Conflict("Username already exists")
	}

	// Plaintext never reaches the store
	hashed, err := u.hasher.Generate(password)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	user := &domain.User{Username: username, Password: hashed}
	if err := u.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (u *userUsecase) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	return u.userRepo.FindByUsername(ctx, username)
}

func (u *userUsecase) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return u.userRepo.FindByID(ctx, id)
}

func (u *userUsecase) List(ctx context.Context) ([]domain.User, error) {
	return u.userRepo.FindAll(ctx)
}

func (u *userUsecase) Update(ctx context.Context, id string, data domain.UserUpdate) (*domain.User, error) {
	user, err := u.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("User not found")
	}

	if data.Username != nil && *data.Username != user.Username {
		existing, err := u.userRepo.FindByUsername(ctx, *data.Username)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, apperror.Conflict("Username already exists")
		}
		user.Username = *data.Username
	}

	if data.Password != nil {
		if err := u.validate.Var(*data.Password, "required,min=6"); err != nil {
			return nil, apperror.BadRequest("Password must be at least 6 characters")
		}
		hashed, err := u.hasher.Generate(*data.Password)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		user.Password = hashed
	}

	if err := u.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (u *userUsecase) Delete(ctx context.Context, id string) error {
	user, err := u.userRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.NotFound("User not found")
	}
	return u.userRepo.Delete(ctx, id)
}
