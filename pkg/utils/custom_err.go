package utils

import "errors"

var (
	ErrInvalidPage     = errors.New("invalid page parameter")
	ErrInvalidPageSize = errors.New("invalid page size parameter")
	ErrDatabaseError   = errors.New("database error")

	ErrQueryRequired     = errors.New("query is required")
	ErrInvalidDataType   = errors.New("invalid data type filter")
	ErrMissingFields     = errors.New("required fields are missing")
	ErrInvalidFoodRecord = errors.New("invalid food record")
	ErrInvalidID         = errors.New("invalid id")

	ErrUnauthorized       = errors.New("not logged in")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("user already exists")
	ErrAccountNotFound    = errors.New("account not found")
	ErrOAuthExchange      = errors.New("oauth code exchange failed")

	ErrPantryNotFound     = errors.New("pantry not found")
	ErrPantryItemNotFound = errors.New("pantry item not found")
	ErrQuantityBelowOne   = errors.New("quantity cannot be less than 1")

	ErrCustomFoodNotFound = errors.New("custom food not found")

	ErrEmptyPantry       = errors.New("pantry is empty")
	ErrRecipeUnavailable = errors.New("recipe provider is not configured")
	ErrRecipeGeneration  = errors.New("recipe generation failed")
	ErrModelNotAllowed   = errors.New("model is not allowed")
)
