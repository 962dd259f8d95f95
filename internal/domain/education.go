package domain

import "context"

type Education struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Institution string `json:"institution"`
	Period      string `json:"period"`
}

type EducationUpdate struct {
	Title       *string
	Institution *string
	Period      *string
}

type EducationRepository interface {
	FindByTitle(ctx context.Context, title string) (*Education, error)
	FindByID(ctx context.Context, id string) (*Education, error)
	FindAll(ctx context.Context) ([]Education, error)
	Save(ctx context.Context, education *Education) error
	Delete(ctx context.Context, id string) error
}

type EducationUsecase interface {
	Create(ctx context.Context, education *Education) (*Education, error)
	FindByTitle(ctx context.Context, title string) (*Education, error)
	FindByID(ctx context.Context, id string) (*Education, error)
	List(ctx context.Context) ([]Education, error)
	Update(ctx context.Context, id string, data EducationUpdate) (*Education, error)
	Delete(ctx context.Context, id string) error
	Seed(ctx context.Context) error
}
