package controllers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"fooding/internal/models/request_models"
	"fooding/internal/services"
	"fooding/pkg/utils"
)

type RecipeController struct {
	recipeService services.RecipeServiceInterface
}

func NewRecipeController(recipeService services.RecipeServiceInterface) *RecipeController {
	return &RecipeController{recipeService: recipeService}
}

// Suggest godoc
// @Summary Suggest a recipe from the pantry
// @Tags Recipes
// @Accept json
// @Produce json
// @Param request body request_models.SuggestRecipeRequest false "Generation overrides"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 503 {object} utils.APIResponse
// @Security BearerAuth
// @Router /recipes/suggest [post]
func (r *RecipeController) Suggest(c *gin.Context) {
	email, ok := callerEmail(c)
	if !ok {
		return
	}

	var req request_models.SuggestRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	recipe, err := r.recipeService.Suggest(c.Request.Context(), email, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, recipe, "")
}
