package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fooding/internal/models/request_models"
	"fooding/internal/services"
	"fooding/pkg/utils"
)

type PantryController struct {
	pantryService services.PantryServiceInterface
}

func NewPantryController(pantryService services.PantryServiceInterface) *PantryController {
	return &PantryController{pantryService: pantryService}
}

func (p *PantryController) GetPantry(c *gin.Context) {
	email, ok := callerEmail(c)
	if !ok {
		return
	}

	items, err := p.pantryService.GetPantry(c.Request.Context(), email)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, items, "")
}

func (p *PantryController) AddToPantry(c *gin.Context) {
	email, ok := callerEmail(c)
	if !ok {
		return
	}

	var req request_models.AddToPantryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	item, err := p.pantryService.AddItem(c.Request.Context(), email, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, item, "Item added to pantry")
}

func (p *PantryController) AddCustomFood(c *gin.Context) {
	email, ok := callerEmail(c)
	if !ok {
		return
	}

	var req request_models.AddCustomFoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	item, err := p.pantryService.AddCustomFood(c.Request.Context(), email, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, item, "Item added to pantry")
}

func (p *PantryController) UpdateQuantity(c *gin.Context) {
	email, ok := callerEmail(c)
	if !ok {
		return
	}

	var req request_models.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Item id and increment flag or quantity are required")
		return
	}

	item, err := p.pantryService.UpdateQuantity(c.Request.Context(), email, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, item, "Quantity updated successfully")
}

func (p *PantryController) RemoveItem(c *gin.Context) {
	email, ok := callerEmail(c)
	if !ok {
		return
	}

	var req request_models.RemovePantryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Item id is required")
		return
	}

	if err := p.pantryService.RemoveItem(c.Request.Context(), email, req.ID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Item removed from pantry")
}
