package usecase

import (
	"context"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"
)

type languageUsecase struct {
	languageRepo domain.LanguageRepository
}

func NewLanguageUsecase(languageRepo domain.LanguageRepository) domain.LanguageUsecase {
	return &languageUsecase{languageRepo: languageRepo}
}

func (u *languageUsecase) Create(ctx context.Context, language *domain.Language) (*domain.Language, error) {
	existing, err := u.languageRepo.FindByName(ctx, language.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.Conflict("Language with this name already exists")
	}

	language.ID = ""
	if err := u.languageRepo.Save(ctx, language); err != nil {
		return nil, err
	}
	return language, nil
}

func (u *languageUsecase) FindByName(ctx context.Context, name string) (*domain.Language, error) {
	return u.languageRepo.FindByName(ctx, name)
}

func (u *languageUsecase) FindByID(ctx context.Context, id string) (*domain.Language, error) {
	return u.languageRepo.FindByID(ctx, id)
}

func (u *languageUsecase) List(ctx context.Context) ([]domain.Language, error) {
	return u.languageRepo.FindAll(ctx)
}

func (u *languageUsecase) Update(ctx context.Context, id string, data domain.LanguageUpdate) (*domain.Language, error) {
	language, err := u.languageRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if language == nil {
		return nil, apperror.NotFound("Language not found")
	}

	if data.Name != nil && *data.Name != language.Name {
		existing, err := u.languageRepo.FindByName(ctx, *data.Name)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, apperror.Conflict("Language with this name already exists")
		}
		language.Name = *data.Name
	}
	if data.Level != nil {
		language.Level = *data.Level
	}

	if err := u.languageRepo.Save(ctx, language); err != nil {
		return nil, err
	}
	return language, nil
}

func (u *languageUsecase) Delete(ctx context.Context, id string) error {
	language, err := u.languageRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if language == nil {
		return apperror.NotFound("Language not found")
	}
	return u.languageRepo.Delete(ctx, id)
}

func (u *languageUsecase) Seed(ctx context.Context) error {
	seed := []domain.Language{
		{Name: "Portuguese", Level: "Native"},
		{Name: "English", Level: "Professional"},
		{Name: "Technical English", Level: "Professional"},
	}

	for i := range seed {
		existing, err := u.languageRepo.FindByName(ctx, seed[i].Name)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}
		if err := u.languageRepo.Save(ctx, &seed[i]); err != nil {
			return err
		}
	}
	return nil
}
