package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"go-portfolio-backend/internal/domain"
)

type userDoc struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Username string             `bson:"username"`
	Password string             `bson:"password"`
}

func (d *userDoc) toDomain() *domain.User {
	return &domain.User{
		ID:       d.ID.Hex(),
		Username: d.Username,
		Password: d.Password,
	}
}

func userToDoc(u *domain.User) *userDoc {
	return &userDoc{Username: u.Username, Password: u.Password}
}

type userRepo struct {
	c collection[userDoc]
}

func NewUserRepository(db *mongo.Database) domain.UserRepository {
	return &userRepo{c: newCollection[userDoc](db, "users", "Username already exists")}
}

func (r *userRepo) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	doc, err := r.c.findOne(ctx, bson.M{"username": username})
	if doc == nil || err != nil {
		return nil, err
	}
	return doc.toDomain(), nil
}

func (r *userRepo) FindByID(ctx context.Context, id string) (*domain.User, error) {
	doc, err := r.c.findByID(ctx, id)
	if doc == nil || err != nil {
		return nil, err
	}
	return doc.toDomain(), nil
}

func (r *userRepo) FindAll(ctx context.Context) ([]domain.User, error) {
	docs, err := r.c.findAll(ctx)
	if err != nil {
		return nil, err
	}
	users := make([]domain.User, 0, len(docs))
	for i := range docs {
		users = append(users, *docs[i].toDomain())
	}
	return users, nil
}

func (r *userRepo) Save(ctx context.Context, user *domain.User) error {
	if user.ID != "" {
		return r.c.replace(ctx, user.ID, userToDoc(user))
	}
	oid, err := r.c.insert(ctx, userToDoc(user))
	if err != nil {
		return err
	}
	user.ID = oid.Hex()
	return nil
}

func (r *userRepo) Delete(ctx context.Context, id string) error {
	return r.c.delete(ctx, id)
}
