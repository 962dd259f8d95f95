package domain

import "context"

type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	// Always holds the bcrypt hash, never plaintext
	Password string `json:"-"`
}

// UserUpdate carries a partial update; nil fields are left untouched.
type UserUpdate struct {
	Username *string
	Password *string
}

type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*User, error)
	FindByID(ctx context.Context, id string) (*User, error)
	FindAll(ctx context.Context) ([]User, error)
	Save(ctx context.Context, user *User) error
	Delete(ctx context.Context, id string) error
}

type UserUsecase interface {
	Create(ctx context.Context, username, password string) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	FindByID(ctx context.Context, id string) (*User, error)
	List(ctx context.Context) ([]User, error)
	Update(ctx context.Context, id string, data UserUpdate) (*User, error)
	Delete(ctx context.Context, id string) error
}
