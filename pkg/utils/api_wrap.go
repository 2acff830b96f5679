package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fooding/internal/fdc"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	return c.GetString("trace_id")
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	RespondWithCode(c, http.StatusOK, data, message)
}

func RespondWithCode(c *gin.Context, code int, data interface{}, message string) {
	c.JSON(code, APIResponse{
		Status:  "success",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrQueryRequired):
		RespondError(c, http.StatusBadRequest, "Query parameter is required")
	case errors.Is(err, ErrInvalidDataType):
		RespondError(c, http.StatusBadRequest, "Unknown data type filter")
	case errors.Is(err, ErrInvalidPage):
		RespondError(c, http.StatusBadRequest, "Page must be greater than 0")
	case errors.Is(err, ErrInvalidPageSize):
		RespondError(c, http.StatusBadRequest, "Page size must be between 1 and 200")
	case errors.Is(err, ErrMissingFields):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrInvalidFoodRecord), errors.Is(err, ErrInvalidID):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrEmailAlreadyExists):
		RespondError(c, http.StatusBadRequest, "User already exists")
	case errors.Is(err, ErrQuantityBelowOne):
		RespondError(c, http.StatusBadRequest, "Quantity cannot be less than 1")
	case errors.Is(err, ErrModelNotAllowed):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrEmptyPantry):
		RespondError(c, http.StatusBadRequest, "Pantry is empty")
	case errors.Is(err, ErrOAuthExchange):
		zap.L().Warn("oauth exchange failed", zap.String("trace_id", traceID(c)), zap.Error(err))
		RespondError(c, http.StatusBadRequest, "Invalid authorization code")
	case errors.Is(err, ErrUnauthorized):
		RespondError(c, http.StatusUnauthorized, "Not logged in")
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, ErrAccountNotFound):
		RespondError(c, http.StatusNotFound, "Account not found")
	case errors.Is(err, ErrPantryNotFound):
		RespondError(c, http.StatusNotFound, "Pantry not found")
	case errors.Is(err, ErrPantryItemNotFound):
		RespondError(c, http.StatusNotFound, "Pantry item not found")
	case errors.Is(err, ErrCustomFoodNotFound):
		RespondError(c, http.StatusNotFound, "Custom food not found")
	case errors.Is(err, fdc.ErrFoodNotFound):
		RespondError(c, http.StatusNotFound, "Food not found")
	case errors.Is(err, fdc.ErrUpstream):
		zap.L().Error("nutrition api failure", zap.String("trace_id", traceID(c)), zap.Error(err))
		RespondError(c, http.StatusBadGateway, "Failed to fetch data from the nutrition API")
	case errors.Is(err, ErrRecipeUnavailable):
		RespondError(c, http.StatusServiceUnavailable, "Recipe suggestions are not available")
	case errors.Is(err, ErrRecipeGeneration):
		zap.L().Error("recipe generation failed", zap.String("trace_id", traceID(c)), zap.Error(err))
		RespondError(c, http.StatusBadGateway, "Recipe provider failed")
	case errors.Is(err, ErrDatabaseError):
		zap.L().Error("database error", zap.String("trace_id", traceID(c)), zap.Error(err))
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		zap.L().Error("unknown error", zap.String("trace_id", traceID(c)), zap.Error(err))
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
