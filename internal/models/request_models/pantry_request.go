package request_models

import "encoding/json"

type AddToPantryRequest struct {
	// Item is the food record as returned by search or food detail.
	Item       json.RawMessage `json:"item"`
	Quantity   int             `json:"quantity"`
	ExpiryDate string          `json:"expiryDate"`
	Measure    string          `json:"measure"`
	Cost       *float64        `json:"cost"`
}

// UpdateQuantityRequest carries either an increment flag or an absolute
// quantity.
type UpdateQuantityRequest struct {
	ID        string `json:"id" binding:"required"`
	Increment *bool  `json:"increment"`
	Quantity  *int   `json:"quantity"`
}

type RemovePantryItemRequest struct {
	ID string `json:"id" binding:"required"`
}
