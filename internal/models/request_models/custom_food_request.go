package request_models

import "fooding/internal/fdc"

type CreateCustomFoodRequest struct {
	Name               string         `json:"name"`
	ServingSize        string         `json:"servingSize"`
	QuantityPerUnit    string         `json:"quantityPerUnit"`
	MandatoryNutrients []fdc.Nutrient `json:"mandatoryNutrients"`
	OptionalNutrients  []fdc.Nutrient `json:"optionalNutrients"`
	Ingredients        []string       `json:"ingredients"`
	ExpiryDate         string         `json:"expiryDate"`
}

type AddCustomFoodRequest struct {
	ID         string   `json:"id" binding:"required"`
	Quantity   int      `json:"quantity"`
	ExpiryDate string   `json:"expiryDate"`
	Measure    string   `json:"measure"`
	Cost       *float64 `json:"cost"`
}

type UpdateIngredientsRequest struct {
	ID          string   `json:"id" binding:"required"`
	Ingredients []string `json:"ingredients"`
}
