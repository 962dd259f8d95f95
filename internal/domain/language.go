package domain

import "context"

type Language struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Level string `json:"level"`
}

type LanguageUpdate struct {
	Name  *string
	Level *string
}

type LanguageRepository interface {
	FindByName(ctx context.Context, name string) (*Language, error)
	FindByID(ctx context.Context, id string) (*Language, error)
	FindAll(ctx context.Context) ([]Language, error)
	Save(ctx context.Context, language *Language) error
	Delete(ctx context.Context, id string) error
}

type LanguageUsecase interface {
	Create(ctx context.Context, language *Language) (*Language, error)
	FindByName(ctx context.Context, name string) (*Language, error)
	FindByID(ctx context.Context, id string) (*Language, error)
	List(ctx context.Context) ([]Language, error)
	Update(ctx context.Context, id string, data LanguageUpdate) (*Language, error)
	Delete(ctx context.Context, id string) error
	Seed(ctx context.Context) error
}
