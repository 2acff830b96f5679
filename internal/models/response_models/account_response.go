package response_models

import "fooding/internal/models/db_models"

type SessionResponse struct {
	Token     string          `json:"token"`
	ExpiresAt int64           `json:"expires_at"`
	Account   AccountResponse `json:"account"`
}

type AccountResponse struct {
	ID       string   `json:"id"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Provider string   `json:"provider"`
	Weight   *float64 `json:"weight,omitempty"`
	Height   *float64 `json:"height,omitempty"`
	Age      *int     `json:"age,omitempty"`
	Birthday string   `json:"birthday,omitempty"`
	Gender   string   `json:"gender,omitempty"`
}

func NewAccountResponse(a *db_models.Account) AccountResponse {
	return AccountResponse{
		ID:       a.ID.String(),
		Username: a.Username,
		Email:    a.Email,
		Provider: a.Provider,
		Weight:   a.Weight,
		Height:   a.Height,
		Age:      a.Age,
		Birthday: a.Birthday,
		Gender:   a.Gender,
	}
}
