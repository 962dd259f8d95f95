package domain

import "time"

// Hasher is the one-way credential hasher.
type Hasher interface {
	Generate(plain string) (string, error)
	Compare(plain, hashed string) bool
}

// TokenIssuer issues signed bearer tokens bound to a subject identifier.
type TokenIssuer interface {
	Generate(subject string) (token string, expiresAt time.Time, err error)
}
