package domain

import "context"

type Skill struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Level    string `json:"level"`
	Category string `json:"category"`
}

type SkillUpdate struct {
	Name     *string
	Level    *string
	Category *string
}

type SkillRepository interface {
	FindByName(ctx context.Context, name string) (*Skill, error)
	FindByID(ctx context.Context, id string) (*Skill, error)
	FindAll(ctx context.Context) ([]Skill, error)
	Save(ctx context.Context, skill *Skill) error
	Delete(ctx context.Context, id string) error
}

type SkillUsecase interface {
	Create(ctx context.Context, skill *Skill) (*Skill, error)
	FindByName(ctx context.Context, name string) (*Skill, error)
	FindByID(ctx context.Context, id string) (*Skill, error)
	List(ctx context.Context) ([]Skill, error)
	Update(ctx context.Context, id string, data SkillUpdate) (*Skill, error)
	Delete(ctx context.Context, id string) error
	Seed(ctx context.Context) error
}
