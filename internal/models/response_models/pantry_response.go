package response_models

import (
	"encoding/json"

	"fooding/internal/models/db_models"
)

type PantryItemResponse struct {
	ID          string          `json:"id"`
	FdcID       int64           `json:"fdcId,omitempty"`
	Description string          `json:"description"`
	DataType    string          `json:"dataType"`
	Item        json.RawMessage `json:"item,omitempty"`
	Quantity    int             `json:"quantity"`
	ExpiryDate  string          `json:"expiryDate"`
	Measure     string          `json:"measure"`
	Cost        *float64        `json:"cost,omitempty"`
}

func NewPantryItemResponse(p db_models.PantryItem) PantryItemResponse {
	var item json.RawMessage
	if len(p.Food) > 0 {
		item = json.RawMessage(p.Food)
	}
	return PantryItemResponse{
		ID:          p.ID.String(),
		FdcID:       p.FdcID,
		Description: p.Description,
		DataType:    p.DataType,
		Item:        item,
		Quantity:    p.Quantity,
		ExpiryDate:  p.ExpiryDate,
		Measure:     p.Measure,
		Cost:        p.Cost,
	}
}

func NewPantryItemResponses(items []db_models.PantryItem) []PantryItemResponse {
	out := make([]PantryItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, NewPantryItemResponse(it))
	}
	return out
}
