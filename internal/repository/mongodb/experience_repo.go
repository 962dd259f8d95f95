package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"go-portfolio-backend/internal/domain"
)

type experienceDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Role        string             `bson:"role"`
	Company     string             `bson:"company"`
	Period      string             `bson:"period"`
	Description string             `bson:"description"`
}

func (d *experienceDoc) toDomain() *domain.Experience {
	return &domain.Experience{
		ID:          d.ID.Hex(),
		Role:        d.Role,
		Company:     d.Company,
		Period:      d.Period,
		Description: d.Description,
	}
}

func experienceToDoc(e *domain.Experience) *experienceDoc {
	return &experienceDoc{Role: e.Role, Company: e.Company, Period: e.Period, Description: e.Description}
}

type experienceRepo struct {
	c collection[experienceDoc]
}

func NewExperienceRepository(db *mongo.Database) domain.ExperienceRepository {
	return &experienceRepo{c: newCollection[experienceDoc](db, "experiences", "Experience with this role and company already exists")}
}

func (r *experienceRepo) FindByRoleAndCompany(ctx context.Context, role, company string) (*domain.Experience, error) {
	doc, err := r.c.findOne(ctx, bson.M{"role": role, "company": company})
	if doc == nil || err != nil {
		return nil, err
	}
	return doc.toDomain(), nil
}

func (r *experienceRepo) FindByID(ctx context.Context, id string) (*domain.Experience, error) {
	doc, err := r.c.findByID(ctx, id)
	if doc == nil || err != nil {
		return nil, err
	}
	return doc.toDomain(), nil
}

func (r *experienceRepo) FindAll(ctx context.Context) ([]domain.Experience, error) {
	docs, err := r.c.findAll(ctx)
	if err != nil {
		return nil, err
	}
	experiences := make([]domain.Experience, 0, len(docs))
	for i := range docs {
		experiences = append(experiences, *docs[i].toDomain())
	}
	return experiences, nil
}

func (r *experienceRepo) Save(ctx context.Context, experience *domain.Experience) error {
	if experience.ID != "" {
		return r.c.replace(ctx, experience.ID, experienceToDoc(experience))
	}
	oid, err := r.c.insert(ctx, experienceToDoc(experience))
	if err != nil {
		return err
	}
	experience.ID = oid.Hex()
	return nil
}

func (r *experienceRepo) Delete(ctx context.Context, id string) error {
	return r.c.delete(ctx, id)
}
