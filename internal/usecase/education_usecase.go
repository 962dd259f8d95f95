package usecase

import (
	"context"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"
)

type educationUsecase struct {
	educationRepo domain.EducationRepository
}

func NewEducationUsecase(educationRepo domain.EducationRepository) domain.EducationUsecase {
	return &educationUsecase{educationRepo: educationRepo}
}

func (u *educationUsecase) Create(ctx context.Context, education *domain.Education) (*domain.Education, error) {
	existing, err := u.educationRepo.FindByTitle(ctx, education.Title)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.Conflict("Education with this title already exists")
	}

	education.ID = ""
	if err := u.educationRepo.Save(ctx, education); err != nil {
		return nil, err
	}
	return education, nil
}

func (u *educationUsecase) FindByTitle(ctx context.Context, title string) (*domain.Education, error) {
	return u.educationRepo.FindByTitle(ctx, title)
}

func (u *educationUsecase) FindByID(ctx context.Context, id string) (*domain.Education, error) {
	return u.educationRepo.FindByID(ctx, id)
}

func (u *educationUsecase) List(ctx context.Context) ([]domain.Education, error) {
	return u.educationRepo.FindAll(ctx)
}

func (u *educationUsecase) Update(ctx context.Context, id string, data domain.EducationUpdate) (*domain.Education, error) {
	education, err := u.educationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if education == nil {
		return nil, apperror.NotFound("Education not found")
	}

	if data.Title != nil && *data.Title != education.Title {
		existing, err := u.educationRepo.FindByTitle(ctx, *data.Title)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, apperror.Conflict("Education with this title already exists")
		}
		education.Title = *data.Title
	}
	if data.Institution != nil {
		education.Institution = *data.Institution
	}
	if data.Period != nil {
		education.Period = *data.Period
	}

	if err := u.educationRepo.Save(ctx, education); err != nil {
		return nil, err
	}
	return education, nil
}

func (u *educationUsecase) Delete(ctx context.Context, id string) error {
	education, err := u.educationRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if education == nil {
		return apperror.NotFound("Education not found")
	}
	return u.educationRepo.Delete(ctx, id)
}

func (u *educationUsecase) Seed(ctx context.Context) error {
	seed := []domain.Education{
		{Title: "Postgraduate Degree in AI for Business", Institution: "Anhembi Morumbi University", Period: "2024 - 2025"},
		{Title: "MBA in Project Management", Institution: "Anhembi Morumbi University", Period: "2023 - 2024"},
		{Title: "Degree in IT Management", Institution: "Estacio", Period: "2013 - 2016"},
		{Title: "Bachelor of Information Systems", Institution: "Bandeirante University of Sao Paulo", Period: "2009 - 2012"},
	}

	for i := range seed {
		existing, err := u.educationRepo.FindByTitle(ctx, seed[i].Title)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}
		if err := u.educationRepo.Save(ctx, &seed[i]); err != nil {
			return err
		}
	}
	return nil
}
