package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Pantry is the per-user container. Its absence means the user has no
// pantry yet.
type Pantry struct {
	BaseModel
	OwnerEmail string       `gorm:"uniqueIndex;not null"`
	Items      []PantryItem `gorm:"foreignKey:PantryID;constraint:OnDelete:CASCADE"`
}

type PantryItem struct {
	BaseModel
	PantryID   uuid.UUID `gorm:"type:uuid;index;not null"`
	OwnerEmail string    `gorm:"index;not null"`

	FdcID       int64
	Description string
	DataType    string
	// Food is the snapshot of the record the entry was created from.
	Food datatypes.JSON

	Quantity   int `gorm:"not null;check:quantity >= 1"`
	ExpiryDate string
	Measure    string
	Cost       *float64
}
