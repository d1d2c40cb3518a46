package mongo

import (
	"context"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jwalitptl/doctor-channel/internal/model"
	"github.com/jwalitptl/doctor-channel/internal/repository"
)

type DoctorMongoRepository struct {
	Collection *mongo.Collection
}

func NewDoctorMongoRepository(db *mongo.Database) *DoctorMongoRepository {
	return &DoctorMongoRepository{Collection: db.Collection(CollectionDoctors)}
}

func (r *DoctorMongoRepository) Create(ctx context.Context, doctor *model.Doctor) error {
	_, err := r.Collection.InsertOne(ctx, doctor)
	return mapError("create doctor", err)
}

func (r *DoctorMongoRepository) Get(ctx context.Context, id string) (*model.Doctor, error) {
	var doctor model.Doctor
	if err := r.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doctor); err != nil {
		return nil, mapError("get doctor", err)
	}
	return &doctor, nil
}

func (r *DoctorMongoRepository) find(ctx context.Context, op string, filter bson.M) ([]*model.Doctor, error) {
	cursor, err := r.Collection.Find(ctx, filter)
	if err != nil {
		return nil, mapError(op, err)
	}
	doctors := []*model.Doctor{}
	if err := cursor.All(ctx, &doctors); err != nil {
		return nil, mapError(op, err)
	}
	return doctors, nil
}

func (r *DoctorMongoRepository) List(ctx context.Context) ([]*model.Doctor, error) {
	return r.find(ctx, "list doctors", bson.M{})
}

func (r *DoctorMongoRepository) Search(ctx context.Context, field repository.DoctorSearchField, term string) ([]*model.Doctor, error) {
	if !field.IsValid() {
		return nil, fmt.Errorf("unsupported search field %q", field)
	}
	filter := bson.M{
		string(field): primitive.Regex{Pattern: regexp.QuoteMeta(term), Options: "i"},
	}
	return r.find(ctx, "search doctors", filter)
}

func (r *DoctorMongoRepository) Update(ctx context.Context, doctor *model.Doctor) error {
	res, err := r.Collection.ReplaceOne(ctx, bson.M{"_id": doctor.ID}, doctor)
	if err != nil {
		return mapError("update doctor", err)
	}
	return matched(res)
}

func (r *DoctorMongoRepository) Delete(ctx context.Context, id string) error {
	res, err := r.Collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return mapError("delete doctor", err)
	}
	return deleted(res)
}
