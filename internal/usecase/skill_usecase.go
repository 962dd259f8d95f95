package usecase

import (
	"context"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"
)

type skillUsecase struct {
	skillRepo domain.SkillRepository
}

func NewSkillUsecase(skillRepo domain.SkillRepository) domain.SkillUsecase {
	return &skillUsecase{skillRepo: skillRepo}
}

func (u *skillUsecase) Create(ctx context.Context, skill *domain.Skill) (*domain.Skill, error) {
	existing, err := u.skillRepo.FindByName(ctx, skill.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.Conflict("Skill with this name already exists")
	}

	skill.ID = ""
	if err := u.skillRepo.Save(ctx, skill); err != nil {
		return nil, err
	}
	return skill, nil
}

func (u *skillUsecase) FindByName(ctx context.Context, name string) (*domain.Skill, error) {
	return u.skillRepo.FindByName(ctx, name)
}

func (u *skillUsecase) FindByID(ctx context.Context, id string) (*domain.Skill, error) {
	return u.skillRepo.FindByID(ctx, id)
}

func (u *skillUsecase) List(ctx context.Context) ([]domain.Skill, error) {
	return u.skillRepo.FindAll(ctx)
}

func (u *skillUsecase) Update(ctx context.Context, id string, data domain.SkillUpdate) (*domain.Skill, error) {
	skill, err := u.skillRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if skill == nil {
		return nil, apperror.NotFound("Skill not found")
	}

	if data.Name != nil && *data.Name != skill.Name {
		existing, err := u.skillRepo.FindByName(ctx, *data.Name)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, apperror.Conflict("Skill with this name already exists")
		}
		skill.Name = *data.Name
	}
	if data.Level != nil {
		skill.Level = *data.Level
	}
	if data.Category != nil {
		skill.Category = *data.Category
	}

	if err := u.skillRepo.Save(ctx, skill); err != nil {
		return nil, err
	}
	return skill, nil
}

func (u *skillUsecase) Delete(ctx context.Context, id string) error {
	skill, err := u.skillRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if skill == nil {
		return apperror.NotFound("Skill not found")
	}
	return u.skillRepo.Delete(ctx, id)
}

// Seed inserts the fixed skill list, skipping names that already exist.
func (u *skillUsecase) Seed(ctx context.Context) error {
	seed := []domain.Skill{
		{Name: "PHP", Level: "Advanced", Category: "Backend"},
		{Name: "Laravel", Level: "Advanced", Category: "Backend"},
		{Name: "Node.js", Level: "Advanced", Category: "Backend"},
		{Name: "REST APIs", Level: "Advanced", Category: "Backend"},
		{Name: "GraphQL", Level: "Intermediate", Category: "Backend"},
		{Name: "TypeScript", Level: "Advanced", Category: "Frontend"},
		{Name: "React", Level: "Advanced", Category: "Frontend"},
		{Name: "Next.js", Level: "Advanced", Category: "Frontend"},
		{Name: "MySQL", Level: "Advanced", Category: "Database"},
		{Name: "MongoDB", Level: "Intermediate", Category: "Database"},
		{Name: "PostgreSQL", Level: "Intermediate", Category: "Database"},
		{Name: "Docker", Level: "Advanced", Category: "DevOps"},
		{Name: "CI/CD", Level: "Advanced", Category: "DevOps"},
		{Name: "Clean Architecture", Level: "Advanced", Category: "Architecture"},
		{Name: "Scrum", Level: "Advanced", Category: "Management"},
	}

	for i := range seed {
		existing, err := u.skillRepo.FindByName(ctx, seed[i].Name)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}
		if err := u.skillRepo.Save(ctx, &seed[i]); err != nil {
			return err
		}
	}
	return nil
}
