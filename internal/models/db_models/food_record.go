package db_models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FoodRecord is a cached FDC detail document, stored in MongoDB.
type FoodRecord struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	FdcID       int64              `bson:"fdcId" json:"fdcId"`
	DataType    string             `bson:"dataType" json:"dataType"`
	Description string             `bson:"description" json:"description"`
	// Payload is the raw JSON body returned by FDC.
	Payload   string    `bson:"payload" json:"-"`
	FetchedAt time.Time `bson:"fetchedAt" json:"fetchedAt"`
}
