package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jwalitptl/doctor-channel/internal/model"
	"github.com/jwalitptl/doctor-channel/internal/repository"
)

type AppointmentMongoRepository struct {
	Collection *mongo.Collection
}

func NewAppointmentMongoRepository(db *mongo.Database) *AppointmentMongoRepository {
	return &AppointmentMongoRepository{Collection: db.Collection(CollectionAppointments)}
}

func (r *AppointmentMongoRepository) Create(ctx context.Context, appointment *model.Appointment) error {
	_, err := r.Collection.InsertOne(ctx, appointment)
	return mapError("create appointment", err)
}

func (r *AppointmentMongoRepository) Get(ctx context.Context, id string) (*model.Appointment, error) {
	var appointment model.Appointment
	if err := r.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&appointment); err != nil {
		return nil, mapError("get appointment", err)
	}
	return &appointment, nil
}

func appointmentFilter(f repository.AppointmentFilter) bson.M {
	filter := bson.M{}
	if f.UserID != "" {
		filter["user_id"] = f.UserID
	}
	if f.DoctorID != "" {
		filter["doctor_id"] = f.DoctorID
	}
	window := bson.M{}
	if !f.From.IsZero() {
		window["$gte"] = f.From
	}
	if !f.To.IsZero() {
		window["$lte"] = f.To
	}
	if len(window) > 0 {
		filter["appointment_date_time"] = window
	}
	return filter
}

func (r *AppointmentMongoRepository) List(ctx context.Context, f repository.AppointmentFilter) ([]*model.Appointment, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "appointment_date_time", Value: 1},
		{Key: "created_at", Value: 1},
	})
	cursor, err := r.Collection.Find(ctx, appointmentFilter(f), opts)
	if err != nil {
		return nil, mapError("list appointments", err)
	}

	appointments := []*model.Appointment{}
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, mapError("iterate appointments", err)
	}
	return appointments, nil
}

func (r *AppointmentMongoRepository) set(ctx context.Context, op, id string, fields bson.M) error {
	res, err := r.Collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return mapError(op, err)
	}
	return matched(res)
}

func (r *AppointmentMongoRepository) UpdateStatus(ctx context.Context, id string, status model.AppointmentStatus, updatedAt time.Time) error {
	return r.set(ctx, "update appointment status", id, bson.M{"status": status, "updated_at": updatedAt})
}

func (r *AppointmentMongoRepository) UpdatePaymentStatus(ctx context.Context, id string, status model.PaymentStatus, updatedAt time.Time) error {
	return r.set(ctx, "update appointment payment status", id, bson.M{"payment_status": status, "updated_at": updatedAt})
}

func (r *AppointmentMongoRepository) Delete(ctx context.Context, id string) error {
	res, err := r.Collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return mapError("delete appointment", err)
	}
	return deleted(res)
}
