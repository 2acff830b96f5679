package repositories

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"fooding/internal/models/db_models"
)

const foodRecordsCollection = "food_records"

// FoodRecordRepository caches canonical FDC detail records by fdcId.
type FoodRecordRepository interface {
	FindByFdcID(ctx context.Context, fdcID int64) (*db_models.FoodRecord, error)
	Upsert(ctx context.Context, record *db_models.FoodRecord) error
}

type foodRecordRepository struct {
	coll *mongo.Collection
}

func NewFoodRecordRepository(db *mongo.Database) FoodRecordRepository {
	return &foodRecordRepository{coll: db.Collection(foodRecordsCollection)}
}

func (r *foodRecordRepository) FindByFdcID(ctx context.Context, fdcID int64) (*db_models.FoodRecord, error) {
	var record db_models.FoodRecord
	err := r.coll.FindOne(ctx, bson.M{"fdcId": fdcID}).Decode(&record)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *foodRecordRepository) Upsert(ctx context.Context, record *db_models.FoodRecord) error {
	_, err := r.coll.UpdateOne(ctx,
		bson.M{"fdcId": record.FdcID},
		bson.M{"$set": bson.M{
			"fdcId":       record.FdcID,
			"dataType":    record.DataType,
			"description": record.Description,
			"payload":     record.Payload,
			"fetchedAt":   record.FetchedAt,
		}},
		options.Update().SetUpsert(true),
	)
	return err
}
