package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jwalitptl/doctor-channel/internal/model"
)

type ScheduleMongoRepository struct {
	Collection *mongo.Collection
}

func NewScheduleMongoRepository(db *mongo.Database) *ScheduleMongoRepository {
	return &ScheduleMongoRepository{Collection: db.Collection(CollectionSchedules)}
}

func (r *ScheduleMongoRepository) Create(ctx context.Context, schedule *model.Schedule) error {
	_, err := r.Collection.InsertOne(ctx, schedule)
	return mapError("create schedule", err)
}

func (r *ScheduleMongoRepository) Get(ctx context.Context, id string) (*model.Schedule, error) {
	var schedule model.Schedule
	if err := r.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&schedule); err != nil {
		return nil, mapError("get schedule", err)
	}
	return &schedule, nil
}

func (r *ScheduleMongoRepository) List(ctx context.Context, doctorID string) ([]*model.Schedule, error) {
	filter := bson.M{}
	if doctorID != "" {
		filter["doctor_id"] = doctorID
	}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "start_time", Value: 1}})

	cursor, err := r.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, mapError("list schedules", err)
	}
	schedules := []*model.Schedule{}
	if err := cursor.All(ctx, &schedules); err != nil {
		return nil, mapError("iterate schedules", err)
	}
	return schedules, nil
}

func (r *ScheduleMongoRepository) Update(ctx context.Context, schedule *model.Schedule) error {
	res, err := r.Collection.ReplaceOne(ctx, bson.M{"_id": schedule.ID}, schedule)
	if err != nil {
		return mapError("update schedule", err)
	}
	return matched(res)
}

func (r *ScheduleMongoRepository) Delete(ctx context.Context, id string) error {
	res, err := r.Collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return mapError("delete schedule", err)
	}
	return deleted(res)
}
