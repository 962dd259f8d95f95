package domain

import "context"

type Certificate struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Platform string `json:"platform"`
	// ISO date (YYYY-MM-DD)
	Date     string `json:"date"`
	URL      string `json:"url"`
	Category string `json:"category"`
}

type CertificateUpdate struct {
	Name     *string
	Platform *string
	Date     *string
	URL      *string
	Category *string
}

// Uniqueness key is the (name, platform) pair.
type CertificateRepository interface {
	FindByNameAndPlatform(ctx context.Context, name, platform string) (*Certificate, error)
	FindByID(ctx context.Context, id string) (*Certificate, error)
	FindAll(ctx context.Context) ([]Certificate, error)
	Save(ctx context.Context, certificate *Certificate) error
	Delete(ctx context.Context, id string) error
}

type CertificateUsecase interface {
	Create(ctx context.Context, certificate *Certificate) (*Certificate, error)
	FindByNameAndPlatform(ctx context.Context, name, platform string) (*Certificate, error)
	FindByID(ctx context.Context, id string) (*Certificate, error)
	List(ctx context.Context) ([]Certificate, error)
	Update(ctx context.Context, id string, data CertificateUpdate) (*Certificate, error)
	Delete(ctx context.Context, id string) error
	Seed(ctx context.Context) error
}
