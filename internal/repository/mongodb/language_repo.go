package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"go-portfolio-backend/internal/domain"
)

type languageDoc struct {
	ID    primitive.ObjectID `bson:"_id,omitempty"`
	Name  string             `bson:"name"`
	Level string             `bson:"level"`
}

func (d *languageDoc) toDomain() *domain.Language {
	return &domain.Language{
		ID:    d.ID.Hex(),
		Name:  d.Name,
		Level: d.Level,
	}
}

func languageToDoc(l *domain.Language) *languageDoc {
	return &languageDoc{Name: l.Name, Level: l.Level}
}

type languageRepo struct {
	c collection[languageDoc]
}

func NewLanguageRepository(db *mongo.Database) domain.LanguageRepository {
	return &languageRepo{c: newCollection[languageDoc](db, "languages", "Language with this name already exists")}
}

func (r *languageRepo) FindByName(ctx context.Context, name string) (*domain.Language, error) {
	doc, err := r.c.findOne(ctx, bson.M{"name": name})
	if doc == nil || err != nil {
		return nil, err
	}
	return doc.toDomain(), nil
}

func (r *languageRepo) FindByID(ctx context.Context, id string) (*domain.Language, error) {
	doc, err := r.c.findByID(ctx, id)
	if doc == nil || err != nil {
		return nil, err
	}
	return doc.toDomain(), nil
}

func (r *languageRepo) FindAll(ctx context.Context) ([]domain.Language, error) {
	docs, err := r.c.findAll(ctx)
	if err != nil {
		return nil, err
	}
	languages := make([]domain.Language, 0, len(docs))
	for i := range docs {
		languages = append(languages, *docs[i].toDomain())
	}
	return languages, nil
}

func (r *languageRepo) Save(ctx context.Context, language *domain.Language) error {
	if language.ID != "" {
		return r.c.replace(ctx, language.ID, languageToDoc(language))
	}
	oid, err := r.c.insert(ctx, languageToDoc(language))
	if err != nil {
		return err
	}
	language.ID = oid.Hex()
	return nil
}

func (r *languageRepo) Delete(ctx context.Context, id string) error {
	return r.c.delete(ctx, id)
}
