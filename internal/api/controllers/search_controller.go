package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fooding/internal/fdc"
	"fooding/internal/models/request_models"
	"fooding/internal/services"
	"fooding/pkg/middleware"
	"fooding/pkg/utils"
)

type SearchController struct {
	searchService services.SearchServiceInterface
	foodService   services.FoodServiceInterface
}

func NewSearchController(searchService services.SearchServiceInterface, foodService services.FoodServiceInterface) *SearchController {
	return &SearchController{
		searchService: searchService,
		foodService:   foodService,
	}
}

// Search godoc
// @Summary Search foods
// @Description Query FoodData Central and the caller's custom foods, grouped by data type
// @Tags Foods
// @Produce json
// @Param query query string true "Search terms"
// @Param allWords query bool false "Require all words"
// @Param pageNumber query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(20)
// @Param dataType query string false "Branded, Survey, SR Legacy, Foundation, All or Custom"
// @Param minNutrientValue query number false "Drop nutrients at or below this value"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /search [get]
func (s *SearchController) Search(c *gin.Context) {
	var q request_models.SearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	dataType := q.DataType
	if dataType == "" {
		dataType = q.LegacyDataType
	}
	input := services.SearchInput{
		Query:            q.Query,
		AllWords:         q.AllWords,
		PageNumber:       q.PageNumber,
		PageSize:         q.PageSize,
		DataType:         dataType,
		MinNutrientValue: q.MinNutrientValue,
	}
	if id, ok := middleware.IdentityFrom(c); ok {
		input.OwnerEmail = id.Email
	}

	result, err := s.searchService.Search(c.Request.Context(), input)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	if result.Empty() {
		utils.RespondError(c, http.StatusNotFound, "No results found")
		return
	}

	utils.RespondSuccess(c, result, "")
}

// GetFood godoc
// @Summary Food detail
// @Tags Foods
// @Produce json
// @Param fdcId path int true "FDC id"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /food/{fdcId} [get]
func (s *SearchController) GetFood(c *gin.Context) {
	id, ok := fdc.ParseFdcID(c.Param("fdcId"))
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Invalid food id")
		return
	}

	food, err := s.foodService.GetFood(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, food, "")
}
