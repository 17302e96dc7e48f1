package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"remedyai/internal/model"
)

// RecordRepo handles MongoDB operations for completed survey records.
// Inserts are best-effort telemetry; there is no update or delete path.
type RecordRepo interface {
	Insert(ctx context.Context, record *model.SurveyRecord) error
	ListRecent(ctx context.Context, limit int64) ([]*model.SurveyRecord, error)
}

type recordRepo struct {
	collection *mongo.Collection
}

// NewRecordRepo creates a new survey record repository
func NewRecordRepo(db *mongo.Database) RecordRepo {
	return &recordRepo{
		collection: db.Collection("survey_results"),
	}
}

func (r *recordRepo) Insert(ctx context.Context, record *model.SurveyRecord) error {
	if record.ID == "" {
		record.ID = "r_" + uuid.New().String()[:8]
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}
	_, err := r.collection.InsertOne(ctx, record)
	return err
}

func (r *recordRepo) ListRecent(ctx context.Context, limit int64) ([]*model.SurveyRecord, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []*model.SurveyRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}
