package db_models

import (
	"github.com/lib/pq"
	"gorm.io/datatypes"

	"fooding/internal/fdc"
)

type CustomFood struct {
	BaseModel
	OwnerEmail      string `gorm:"index;not null"`
	Description     string `gorm:"not null"`
	ServingSize     string
	QuantityPerUnit string
	Nutrients       datatypes.JSONSlice[fdc.Nutrient]
	Ingredients     pq.StringArray `gorm:"type:text[]"`
	ExpiryDate      string
}

// ToFood exposes the row as a Custom food record.
func (c CustomFood) ToFood() fdc.CustomFood {
	nutrients := []fdc.Nutrient(c.Nutrients)
	if nutrients == nil {
		nutrients = []fdc.Nutrient{}
	}
	ingredients := []string(c.Ingredients)
	if ingredients == nil {
		ingredients = []string{}
	}
	return fdc.CustomFood{
		Common: fdc.Common{
			Description:   c.Description,
			DataType:      fdc.DataTypeCustom,
			FoodNutrients: nutrients,
		},
		ID:              c.ID.String(),
		ServingSize:     c.ServingSize,
		QuantityPerUnit: c.QuantityPerUnit,
		Ingredients:     ingredients,
		ExpiryDate:      c.ExpiryDate,
	}
}
