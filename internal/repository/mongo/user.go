package mongo

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jwalitptl/doctor-channel/internal/model"
)

type UserMongoRepository struct {
	Collection *mongo.Collection
}

func NewUserMongoRepository(db *mongo.Database) *UserMongoRepository {
	return &UserMongoRepository{Collection: db.Collection(CollectionUsers)}
}

// Create stores the user with a lower-cased email so the unique index is case-insensitive.
func (r *UserMongoRepository) Create(ctx context.Context, user *model.User) error {
	doc := *user
	doc.Email = strings.ToLower(doc.Email)
	_, err := r.Collection.InsertOne(ctx, &doc)
	return mapError("create user", err)
}

func (r *UserMongoRepository) Get(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	if err := r.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user); err != nil {
		return nil, mapError("get user", err)
	}
	return &user, nil
}

func (r *UserMongoRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.Collection.FindOne(ctx, bson.M{"email": strings.ToLower(email)}).Decode(&user); err != nil {
		return nil, mapError("get user by email", err)
	}
	return &user, nil
}
