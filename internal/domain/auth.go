package domain

import "context"

// AuthResult is the outcome of a successful authentication.
// ExpireIn is the token's absolute expiry in milliseconds since epoch.
type AuthResult struct {
	Token    string `json:"token"`
	ExpireIn int64  `json:"expire_in"`
}

type AuthUsecase interface {
	Authenticate(ctx context.Context, username, password string) (*AuthResult, error)
}
