// Package mongo implements the repositories on MongoDB collections.
package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jwalitptl/doctor-channel/internal/config"
	"github.com/jwalitptl/doctor-channel/internal/repository"
)

const (
	CollectionAppointments = "appointments"
	CollectionDoctors      = "doctors"
	CollectionSchedules    = "schedules"
	CollectionUsers        = "users"
)

// Connect dials MongoDB and verifies the connection.
func Connect(ctx context.Context, cfg config.DatabaseConfig) (*mongo.Client, error) {
	opts := options.Client().ApplyURI(cfg.MongoURI)
	if cfg.Timeout > 0 {
		opts.SetConnectTimeout(cfg.Timeout).SetServerSelectionTimeout(cfg.Timeout)
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}
	return client, nil
}

type store struct {
	client       *mongo.Client
	appointments *AppointmentMongoRepository
	doctors      *DoctorMongoRepository
	schedules    *ScheduleMongoRepository
	users        *UserMongoRepository
}

func NewStore(client *mongo.Client, dbName string) repository.Store {
	db := client.Database(dbName)
	return &store{
		client:       client,
		appointments: NewAppointmentMongoRepository(db),
		doctors:      NewDoctorMongoRepository(db),
		schedules:    NewScheduleMongoRepository(db),
		users:        NewUserMongoRepository(db),
	}
}

func (s *store) Appointments() repository.AppointmentRepository { return s.appointments }
func (s *store) Doctors() repository.DoctorRepository           { return s.doctors }
func (s *store) Schedules() repository.ScheduleRepository       { return s.schedules }
func (s *store) Users() repository.UserRepository               { return s.users }

func (s *store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

func (s *store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// EnsureIndexes creates the lookup and uniqueness indexes.
func EnsureIndexes(ctx context.Context, client *mongo.Client, dbName string) error {
	db := client.Database(dbName)
	indexes := map[string][]mongo.IndexModel{
		CollectionUsers: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		CollectionAppointments: {
			{Keys: bson.D{{Key: "doctor_id", Value: 1}, {Key: "appointment_date_time", Value: 1}}},
			{Keys: bson.D{{Key: "user_id", Value: 1}}},
		},
		CollectionSchedules: {
			{Keys: bson.D{{Key: "doctor_id", Value: 1}}},
		},
	}
	for coll, models := range indexes {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("failed to create %s indexes: %w", coll, err)
		}
	}
	return nil
}

func mapError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return repository.ErrNotFound
	}
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%s: %w", op, repository.ErrDuplicate)
	}
	return fmt.Errorf("failed to %s: %w", op, err)
}

func matched(res *mongo.UpdateResult) error {
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func deleted(res *mongo.DeleteResult) error {
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}
