package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"go-portfolio-backend/internal/domain"
)

type certificateDoc struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Name     string             `bson:"name"`
	Platform string             `bson:"platform"`
	Date     string             `bson:"date"`
	URL      string             `bson:"url"`
	Category string             `bson:"category"`
}

func (d *certificateDoc) toDomain() *domain.Certificate {
	return &domain.Certificate{
		ID:       d.ID.Hex(),
		Name:     d.Name,
		Platform: d.Platform,
		Date:     d.Date,
		URL:      d.URL,
		Category: d.Category,
	}
}

func certificateToDoc(c *domain.Certificate) *certificateDoc {
	return &certificateDoc{Name: c.Name, Platform: c.Platform, Date: c.Date, URL: c.URL, Category: c.Category}
}

type certificateRepo struct {
	c collection[certificateDoc]
}

func NewCertificateRepository(db *mongo.Database) domain.CertificateRepository {
	return &certificateRepo{c: newCollection[certificateDoc](db, "certificates", "Certificate with this name and platform already exists")}
}

func (r *certificateRepo) FindByNameAndPlatform(ctx context.Context, name, platform string) (*domain.Certificate, error) {
	doc, err := r.c.findOne(ctx, bson.M{"name": name, "platform": platform})
	if doc == nil || err != nil {
		return nil, err
	}
	return doc.toDomain(), nil
}

func (r *certificateRepo) FindByID(ctx context.Context, id string) (*domain.Certificate, error) {
	doc, err := r.c.findByID(ctx, id)
	if doc == nil || err != nil {
		return nil, err
	}
	return doc.toDomain(), nil
}

func (r *certificateRepo) FindAll(ctx context.Context) ([]domain.Certificate, error) {
	docs, err := r.c.findAll(ctx)
	if err != nil {
		return nil, err
	}
	certificates := make([]domain.Certificate, 0, len(docs))
	for i := range docs {
		certificates = append(certificates, *docs[i].toDomain())
	}
	return certificates, nil
}

func (r *certificateRepo) Save(ctx context.Context, certificate *domain.Certificate) error {
	if certificate.ID != "" {
		return r.c.replace(ctx, certificate.ID, certificateToDoc(certificate))
	}
	oid, err := r.c.insert(ctx, certificateToDoc(certificate))
	if err != nil {
		return err
	}
	certificate.ID = oid.Hex()
	return nil
}

func (r *certificateRepo) Delete(ctx context.Context, id string) error {
	return r.c.delete(ctx, id)
}
