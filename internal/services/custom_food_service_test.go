package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"fooding/internal/fdc"
	"fooding/internal/models/request_models"
	"fooding/pkg/utils"
)

func TestCustomFood_CreateListUpdate(t *testing.T) {
	repo := &fakeCustomRepo{}
	svc := NewCustomFoodService(repo, zap.NewNop())

	created, err := svc.Create(context.Background(), "a@b.com", request_models.CreateCustomFoodRequest{
		Name:               "Granola",
		ServingSize:        "40g",
		QuantityPerUnit:    "10",
		MandatoryNutrients: []fdc.Nutrient{{NutrientID: 1008, NutrientName: "Energy", UnitName: "KCAL", Value: 180}},
		OptionalNutrients:  []fdc.Nutrient{{NutrientID: 1003, NutrientName: "Protein", UnitName: "G", Value: 4}},
		Ingredients:        []string{"oats", " ", "honey"},
	})
	require.NoError(t, err)
	assert.Equal(t, fdc.DataTypeCustom, created.DataType)
	assert.Len(t, created.FoodNutrients, 2)
	assert.Equal(t, []string{"oats", "honey"}, created.Ingredients)

	list, err := svc.List(context.Background(), "a@b.com")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)

	updated, err := svc.UpdateIngredients(context.Background(), "a@b.com", request_models.UpdateIngredientsRequest{
		ID:          created.ID,
		Ingredients: []string{"oats", "maple syrup"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"oats", "maple syrup"}, updated.Ingredients)

	_, err = svc.UpdateIngredients(context.Background(), "eve@b.com", request_models.UpdateIngredientsRequest{
		ID:          created.ID,
		Ingredients: []string{"salt"},
	})
	assert.ErrorIs(t, err, utils.ErrCustomFoodNotFound)
}

func TestCustomFood_CreateMissingFields(t *testing.T) {
	svc := NewCustomFoodService(&fakeCustomRepo{}, zap.NewNop())

	_, err := svc.Create(context.Background(), "a@b.com", request_models.CreateCustomFoodRequest{Name: "Granola"})

	assert.ErrorIs(t, err, utils.ErrMissingFields)
}

func TestCustomFood_UpdateValidation(t *testing.T) {
	svc := NewCustomFoodService(&fakeCustomRepo{}, zap.NewNop())

	_, err := svc.UpdateIngredients(context.Background(), "a@b.com", request_models.UpdateIngredientsRequest{ID: "x", Ingredients: []string{}})
	assert.ErrorIs(t, err, utils.ErrInvalidID)

	_, err = svc.UpdateIngredients(context.Background(), "a@b.com", request_models.UpdateIngredientsRequest{ID: uuid.NewString()})
	assert.ErrorIs(t, err, utils.ErrMissingFields)
}
