package domain

import "context"

type Experience struct {
	ID          string `json:"id"`
	Role        string `json:"role"`
	Company     string `json:"company"`
	Period      string `json:"period"`
	Description string `json:"description"`
}

type ExperienceUpdate struct {
	Role        *string
	Company     *string
	Period      *string
	Description *string
}

// Uniqueness key is the (role, company) pair.
type ExperienceRepository interface {
	FindByRoleAndCompany(ctx context.Context, role, company string) (*Experience, error)
	FindByID(ctx context.Context, id string) (*Experience, error)
	FindAll(ctx context.Context) ([]Experience, error)
	Save(ctx context.Context, experience *Experience) error
	Delete(ctx context.Context, id string) error
}

type ExperienceUsecase interface {
	Create(ctx context.Context, experience *Experience) (*Experience, error)
	FindByRoleAndCompany(ctx context.Context, role, company string) (*Experience, error)
	FindByID(ctx context.Context, id string) (*Experience, error)
	List(ctx context.Context) ([]Experience, error)
	Update(ctx context.Context, id string, data ExperienceUpdate) (*Experience, error)
	Delete(ctx context.Context, id string) error
	Seed(ctx context.Context) error
}
