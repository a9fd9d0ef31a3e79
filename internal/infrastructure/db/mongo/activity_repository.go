package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/house-hunter/server/internal/core/domain"
)

const activityCollection = "auth_activity"

type MongoActivityRepository struct {
	coll *mongo.Collection
}

func NewActivityRepository(db *mongo.Database) *MongoActivityRepository {
	return &MongoActivityRepository{coll: db.Collection(activityCollection)}
}

type mongoAuthEvent struct {
	Email     string `bson:"email"`
	Action    string `bson:"action"`
	At        int64  `bson:"at"`
	RequestID string `bson:"request_id,omitempty"`
}

func (r *MongoActivityRepository) Insert(ctx context.Context, event domain.AuthEvent) error {
	doc := mongoAuthEvent{
		Email:     event.Email,
		Action:    event.Action,
		At:        event.At.Unix(),
		RequestID: event.RequestID,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert auth event: %w", err)
	}
	return nil
}
