package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fooding/internal/models/request_models"
	"fooding/internal/services"
	"fooding/pkg/utils"
)

type CustomFoodController struct {
	customFoodService services.CustomFoodServiceInterface
}

func NewCustomFoodController(customFoodService services.CustomFoodServiceInterface) *CustomFoodController {
	return &CustomFoodController{customFoodService: customFoodService}
}

func (cf *CustomFoodController) List(c *gin.Context) {
	email, ok := callerEmail(c)
	if !ok {
		return
	}

	foods, err := cf.customFoodService.List(c.Request.Context(), email)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, foods, "")
}

func (cf *CustomFoodController) Create(c *gin.Context) {
	email, ok := callerEmail(c)
	if !ok {
		return
	}

	var req request_models.CreateCustomFoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	food, err := cf.customFoodService.Create(c.Request.Context(), email, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, food, "Custom food created")
}

func (cf *CustomFoodController) UpdateIngredients(c *gin.Context) {
	email, ok := callerEmail(c)
	if !ok {
		return
	}

	var req request_models.UpdateIngredientsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	food, err := cf.customFoodService.UpdateIngredients(c.Request.Context(), email, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, food, "Ingredients updated")
}
