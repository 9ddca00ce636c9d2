package repository

import (
	"context"
	"studiobook/pkg/config"
	"studiobook/pkg/model"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// HoldLockRepository provides operations for advisory locks
type HoldLockRepository interface {
	Create(ctx context.Context, lock *model.HoldLock) (*model.HoldLock, error)
	Delete(ctx context.Context, lockID string) error
}

type mongoHoldLockRepository struct {
	collection *mongo.Collection
}

func NewHoldLockRepository(cfg *config.Config) HoldLockRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoHoldLockRepository{
		collection: db.Collection("Hold_locks"),
	}
}

// Returns duplicate key error if lock already exists
func (r *mongoHoldLockRepository) Create(ctx context.Context, lock *model.HoldLock) (*model.HoldLock, error) {
	lock.CreatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, lock)
	if err != nil {
		return nil, err
	}

	return lock, nil
}

// Delete removes an advisory lock
func (r *mongoHoldLockRepository) Delete(ctx context.Context, lockID string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": lockID})
	return err
}
