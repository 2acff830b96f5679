package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"fooding/internal/models/db_models"
)

func TestFoodRecordRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("find hit", func(mt *mtest.T) {
		ns := mt.DB.Name() + "." + foodRecordsCollection
		mt.AddMockResponses(mtest.CreateCursorResponse(1, ns, mtest.FirstBatch, bson.D{
			{Key: "fdcId", Value: int64(171265)},
			{Key: "dataType", Value: "SR Legacy"},
			{Key: "description", Value: "Milk, whole"},
			{Key: "payload", Value: `{"fdcId":171265}`},
		}))

		rec, err := NewFoodRecordRepository(mt.DB).FindByFdcID(context.Background(), 171265)

		require.NoError(mt, err)
		require.NotNil(mt, rec)
		assert.Equal(mt, int64(171265), rec.FdcID)
		assert.Equal(mt, "Milk, whole", rec.Description)
		assert.Equal(mt, `{"fdcId":171265}`, rec.Payload)
	})

	mt.Run("find miss", func(mt *mtest.T) {
		ns := mt.DB.Name() + "." + foodRecordsCollection
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		rec, err := NewFoodRecordRepository(mt.DB).FindByFdcID(context.Background(), 1)

		require.NoError(mt, err)
		assert.Nil(mt, rec)
	})

	mt.Run("upsert", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))

		err := NewFoodRecordRepository(mt.DB).Upsert(context.Background(), &db_models.FoodRecord{
			FdcID:     1,
			DataType:  "Branded",
			Payload:   "{}",
			FetchedAt: time.Now(),
		})

		assert.NoError(mt, err)
	})

	mt.Run("upsert error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 11000, Message: "duplicate key"}))

		err := NewFoodRecordRepository(mt.DB).Upsert(context.Background(), &db_models.FoodRecord{FdcID: 1})

		assert.Error(mt, err)
	})
}
