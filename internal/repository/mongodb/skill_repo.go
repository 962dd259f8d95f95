package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"go-portfolio-backend/internal/domain"
)

type skillDoc struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Name     string             `bson:"name"`
	Level    string             `bson:"level"`
	Category string             `bson:"category"`
}

func (d *skillDoc) toDomain() *domain.Skill {
	return &domain.Skill{
		ID:       d.ID.Hex(),
		Name:     d.Name,
		Level:    d.Level,
		Category: d.Category,
	}
}

func skillToDoc(s *domain.Skill) *skillDoc {
	return &skillDoc{Name: s.Name, Level: s.Level, Category: s.Category}
}

type skillRepo struct {
	c collection[skillDoc]
}

func NewSkillRepository(db *mongo.Database) domain.SkillRepository {
	return &skillRepo{c: newCollection[skillDoc](db, "skills", "Skill with this name already exists")}
}

func (r *skillRepo) FindByName(ctx context.Context, name string) (*domain.Skill, error) {
	doc, err := r.c.findOne(ctx, bson.M{"name": name})
	if doc == nil || err != nil {
		return nil, err
	}
	return doc.toDomain(), nil
}

func (r *skillRepo) FindByID(ctx context.Context, id string) (*domain.Skill, error) {
	doc, err := r.c.findByID(ctx, id)
	if doc == nil || err != nil {
		return nil, err
	}
	return doc.toDomain(), nil
}

func (r *skillRepo) FindAll(ctx context.Context) ([]domain.Skill, error) {
	docs, err := r.c.findAll(ctx)
	if err != nil {
		return nil, err
	}
	skills := make([]domain.Skill, 0, len(docs))
	for i := range docs {
		skills = append(skills, *docs[i].toDomain())
	}
	return skills, nil
}

func (r *skillRepo) Save(ctx context.Context, skill *domain.Skill) error {
	if skill.ID != "" {
		return r.c.replace(ctx, skill.ID, skillToDoc(skill))
	}
	oid, err := r.c.insert(ctx, skillToDoc(skill))
	if err != nil {
		return err
	}
	skill.ID = oid.Hex()
	return nil
}

func (r *skillRepo) Delete(ctx context.Context, id string) error {
	return r.c.delete(ctx, id)
}
