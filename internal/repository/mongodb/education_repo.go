package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"go-portfolio-backend/internal/domain"
)

type educationDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Institution string             `bson:"institution"`
	Period      string             `bson:"period"`
}

func (d *educationDoc) toDomain() *domain.Education {
	return &domain.Education{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Institution: d.Institution,
		Period:      d.Period,
	}
}

func educationToDoc(e *domain.Education) *educationDoc {
	return &educationDoc{Title: e.Title, Institution: e.Institution, Period: e.Period}
}

type educationRepo struct {
	c collection[educationDoc]
}

func NewEducationRepository(db *mongo.Database) domain.EducationRepository {
	return &educationRepo{c: newCollection[educationDoc](db, "education", "Education with this title already exists")}
}

func (r *educationRepo) FindByTitle(ctx context.Context, title string) (*domain.Education, error) {
	doc, err := r.c.findOne(ctx, bson.M{"title": title})
	if doc == nil || err != nil {
		return nil, err
	}
	return doc.toDomain(), nil
}

func (r *educationRepo) FindByID(ctx context.Context, id string) (*domain.Education, error) {
	doc, err := r.c.findByID(ctx, id)
	if doc == nil || err != nil {
		return nil, err
	}
	return doc.toDomain(), nil
}

func (r *educationRepo) FindAll(ctx context.Context) ([]domain.Education, error) {
	docs, err := r.c.findAll(ctx)
	if err != nil {
		return nil, err
	}
	records := make([]domain.Education, 0, len(docs))
	for i := range docs {
		records = append(records, *docs[i].toDomain())
	}
	return records, nil
}

func (r *educationRepo) Save(ctx context.Context, education *domain.Education) error {
	if education.ID != "" {
		return r.c.replace(ctx, education.ID, educationToDoc(education))
	}
	oid, err := r.c.insert(ctx, educationToDoc(education))
	if err != nil {
		return err
	}
	education.ID = oid.Hex()
	return nil
}

func (r *educationRepo) Delete(ctx context.Context, id string) error {
	return r.c.delete(ctx, id)
}
