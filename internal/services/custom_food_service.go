package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"fooding/internal/fdc"
	"fooding/internal/models/db_models"
	"fooding/internal/models/request_models"
	"fooding/internal/repositories"
	"fooding/pkg/utils"
)

type CustomFoodServiceInterface interface {
	Create(ctx context.Context, email string, request request_models.CreateCustomFoodRequest) (*fdc.CustomFood, error)
	List(ctx context.Context, email string) ([]fdc.CustomFood, error)
	UpdateIngredients(ctx context.Context, email string, request request_models.UpdateIngredientsRequest) (*fdc.CustomFood, error)
}

type CustomFoodService struct {
	customRepo repositories.CustomFoodRepository
	logger     *zap.Logger
}

func NewCustomFoodService(customRepo repositories.CustomFoodRepository, logger *zap.Logger) CustomFoodServiceInterface {
	return &CustomFoodService{customRepo: customRepo, logger: logger}
}

func (s *CustomFoodService) Create(ctx context.Context, email string, request request_models.CreateCustomFoodRequest) (*fdc.CustomFood, error) {
	name := strings.TrimSpace(request.Name)
	if name == "" || strings.TrimSpace(request.ServingSize) == "" ||
		strings.TrimSpace(request.QuantityPerUnit) == "" || len(request.MandatoryNutrients) == 0 {
		return nil, fmt.Errorf("%w: name, serving size, quantity per unit and mandatory nutrients are required", utils.ErrMissingFields)
	}

	nutrients := make([]fdc.Nutrient, 0, len(request.MandatoryNutrients)+len(request.OptionalNutrients))
	nutrients = append(nutrients, request.MandatoryNutrients...)
	nutrients = append(nutrients, request.OptionalNutrients...)

	food := &db_models.CustomFood{
		OwnerEmail:      email,
		Description:     name,
		ServingSize:     request.ServingSize,
		QuantityPerUnit: request.QuantityPerUnit,
		Nutrients:       datatypes.NewJSONSlice(nutrients),
		Ingredients:     pq.StringArray(cleanIngredients(request.Ingredients)),
		ExpiryDate:      request.ExpiryDate,
	}
	if err := s.customRepo.Create(ctx, food); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	s.logger.Info("custom food created", zap.String("email", email), zap.String("id", food.ID.String()))
	out := food.ToFood()
	return &out, nil
}

func (s *CustomFoodService) List(ctx context.Context, email string) ([]fdc.CustomFood, error) {
	foods, err := s.customRepo.ListByOwner(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	out := make([]fdc.CustomFood, 0, len(foods))
	for _, f := range foods {
		out = append(out, f.ToFood())
	}
	return out, nil
}

func (s *CustomFoodService) UpdateIngredients(ctx context.Context, email string, request request_models.UpdateIngredientsRequest) (*fdc.CustomFood, error) {
	id, err := uuid.Parse(request.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", utils.ErrInvalidID, request.ID)
	}
	if request.Ingredients == nil {
		return nil, fmt.Errorf("%w: ingredients are required", utils.ErrMissingFields)
	}

	updated, err := s.customRepo.UpdateIngredients(ctx, email, id, cleanIngredients(request.Ingredients))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if !updated {
		return nil, utils.ErrCustomFoodNotFound
	}

	food, err := s.customRepo.Get(ctx, email, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if food == nil {
		return nil, utils.ErrCustomFoodNotFound
	}
	out := food.ToFood()
	return &out, nil
}

func cleanIngredients(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
