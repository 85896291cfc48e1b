package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/gemstack/inventory-system/internal/core/domain"
)

const statusCollection = "status_checks"

// StatusRepository persists client heartbeat records in MongoDB.
type StatusRepository struct {
	coll *mongo.Collection
}

func NewStatusRepository(db *mongo.Database) *StatusRepository {
	return &StatusRepository{coll: db.Collection(statusCollection)}
}

type mongoStatus struct {
	ID         string `bson:"_id"`
	ClientName string `bson:"client_name"`
	Timestamp  int64  `bson:"timestamp"`
}

func (r *StatusRepository) Insert(ctx context.Context, check *domain.StatusCheck) error {
	doc := mongoStatus{
		ID:         check.ID,
		ClientName: check.ClientName,
		Timestamp:  check.Timestamp.Unix(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert status check: %w", err)
	}
	return nil
}

func (r *StatusRepository) List(ctx context.Context, limit int) ([]*domain.StatusCheck, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(int64(limit))

	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list status checks: %w", err)
	}
	defer cur.Close(ctx)

	var checks []*domain.StatusCheck
	for cur.Next(ctx) {
		var ms mongoStatus
		if err := cur.Decode(&ms); err != nil {
			return nil, fmt.Errorf("decode status check: %w", err)
		}
		checks = append(checks, &domain.StatusCheck{
			ID:         ms.ID,
			ClientName: ms.ClientName,
			Timestamp:  unixToTime(ms.Timestamp),
		})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list status checks: %w", err)
	}
	return checks, nil
}
