package usecase

import (
	"context"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"
)

type experienceUsecase struct {
	experienceRepo domain.ExperienceRepository
}

func NewExperienceUsecase(experienceRepo domain.ExperienceRepository) domain.ExperienceUsecase {
	return &experienceUsecase{experienceRepo: experienceRepo}
}

func (u *experienceUsecase) Create(ctx context.Context, experience *domain.Experience) (*domain.Experience, error) {
	existing, err := u.experienceRepo.FindByRoleAndCompany(ctx, experience.Role, experience.Company)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.Conflict("Experience with this role and company already exists")
	}

	experience.ID = ""
	if err := u.experienceRepo.Save(ctx, experience); err != nil {
		return nil, err
	}
	return experience, nil
}

func (u *experienceUsecase) FindByRoleAndCompany(ctx context.Context, role, company string) (*domain.Experience, error) {
	return u.experienceRepo.FindByRoleAndCompany(ctx, role, company)
}

func (u *experienceUsecase) FindByID(ctx context.Context, id string) (*domain.Experience, error) {
	return u.experienceRepo.FindByID(ctx, id)
}

func (u *experienceUsecase) List(ctx context.Context) ([]domain.Experience, error) {
	return u.experienceRepo.FindAll(ctx)
}

func (u *experienceUsecase) Update(ctx context.Context, id string, data domain.ExperienceUpdate) (*domain.Experience, error) {
	experience, err := u.experienceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if experience == nil {
		return nil, apperror.NotFound("Experience not found")
	}

	// The uniqueness key is the (role, company) pair; re-check it against the
	// merged values whenever either half changes.
	role, company := experience.Role, experience.Company
	if data.Role != nil {
		role = *data.Role
	}
	if data.Company != nil {
		company = *data.Company
	}
	if role != experience.Role || company != experience.Company {
		existing, err := u.experienceRepo.FindByRoleAndCompany(ctx, role, company)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, apperror.Conflict("Experience with this role and company already exists")
		}
	}

	experience.Role = role
	experience.Company = company
	if data.Period != nil {
		experience.Period = *data.Period
	}
	if data.Description != nil {
		experience.Description = *data.Description
	}

	if err := u.experienceRepo.Save(ctx, experience); err != nil {
		return nil, err
	}
	return experience, nil
}

func (u *experienceUsecase) Delete(ctx context.Context, id string) error {
	experience, err := u.experienceRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if experience == nil {
		return apperror.NotFound("Experience not found")
	}
	return u.experienceRepo.Delete(ctx, id)
}

func (u *experienceUsecase) Seed(ctx context.Context) error {
	seed := []domain.Experience{
		{
			Role:        "IT Manager",
			Company:     "Campsoft",
			Period:      "August 2023 - Present",
			Description: "Leadership of technical teams, agile project management and process optimization.",
		},
		{
			Role:        "Technical Lead",
			Company:     "Campsoft",
			Period:      "December 2020 - August 2023",
			Description: "Management of development teams, system architecture and code review.",
		},
		{
			Role:        "Full Stack Developer",
			Company:     "Campsoft",
			Period:      "July 2020 - December 2020",
			Description: "Back-end and front-end development with PHP, JavaScript and API integrations.",
		},
		{
			Role:        "PHP Developer",
			Company:     "Gmaxcorp",
			Period:      "August 2014 - July 2020",
			Description: "Website and e-commerce development, system design, deployment and documentation.",
		},
	}

	for i := range seed {
		existing, err := u.experienceRepo.FindByRoleAndCompany(ctx, seed[i].Role, seed[i].Company)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}
		if err := u.experienceRepo.Save(ctx, &seed[i]); err != nil {
			return err
		}
	}
	return nil
}
