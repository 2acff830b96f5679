package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"fooding/internal/fdc"
	"fooding/internal/models/db_models"
	"fooding/internal/models/request_models"
	"fooding/internal/models/response_models"
	"fooding/internal/repositories"
	"fooding/pkg/utils"
)

type PantryServiceInterface interface {
	// GetPantry lists the owner's entries; an owner without a pantry gets an
	// empty list.
	GetPantry(ctx context.Context, email string) ([]response_models.PantryItemResponse, error)
	AddItem(ctx context.Context, email string, request request_models.AddToPantryRequest) (*response_models.PantryItemResponse, error)
	AddCustomFood(ctx context.Context, email string, request request_models.AddCustomFoodRequest) (*response_models.PantryItemResponse, error)
	UpdateQuantity(ctx context.Context, email string, request request_models.UpdateQuantityRequest) (*response_models.PantryItemResponse, error)
	RemoveItem(ctx context.Context, email string, id string) error
}

type PantryService struct {
	pantryRepo repositories.PantryRepository
	customRepo repositories.CustomFoodRepository
	logger     *zap.Logger
}

func NewPantryService(pantryRepo repositories.PantryRepository, customRepo repositories.CustomFoodRepository, logger *zap.Logger) PantryServiceInterface {
	return &PantryService{
		pantryRepo: pantryRepo,
		customRepo: customRepo,
		logger:     logger,
	}
}

func (p *PantryService) GetPantry(ctx context.Context, email string) ([]response_models.PantryItemResponse, error) {
	items, err := p.pantryRepo.ListItems(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return response_models.NewPantryItemResponses(items), nil
}

func (p *PantryService) AddItem(ctx context.Context, email string, request request_models.AddToPantryRequest) (*response_models.PantryItemResponse, error) {
	raw := strings.TrimSpace(string(request.Item))
	if raw == "" || raw == "null" || request.Quantity == 0 ||
		strings.TrimSpace(request.ExpiryDate) == "" || strings.TrimSpace(request.Measure) == "" {
		return nil, fmt.Errorf("%w: item, quantity, measure, and expiry date are required", utils.ErrMissingFields)
	}
	if request.Quantity < 1 {
		return nil, utils.ErrQuantityBelowOne
	}

	food, err := fdc.DecodeFood(request.Item, fdc.Options{})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrInvalidFoodRecord, err)
	}
	base := food.Base()
	if base.Description == "" {
		return nil, fmt.Errorf("%w: description is required", utils.ErrInvalidFoodRecord)
	}

	item := &db_models.PantryItem{
		FdcID:       base.FdcID,
		Description: base.Description,
		DataType:    string(base.DataType),
		Food:        datatypes.JSON(request.Item),
		Quantity:    request.Quantity,
		ExpiryDate:  request.ExpiryDate,
		Measure:     request.Measure,
		Cost:        request.Cost,
	}
	return p.insert(ctx, email, item)
}

func (p *PantryService) AddCustomFood(ctx context.Context, email string, request request_models.AddCustomFoodRequest) (*response_models.PantryItemResponse, error) {
	id, err := uuid.Parse(request.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", utils.ErrInvalidID, request.ID)
	}
	if request.Quantity == 0 || strings.TrimSpace(request.Measure) == "" {
		return nil, fmt.Errorf("%w: quantity and measure are required", utils.ErrMissingFields)
	}
	if request.Quantity < 1 {
		return nil, utils.ErrQuantityBelowOne
	}

	custom, err := p.customRepo.Get(ctx, email, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if custom == nil {
		return nil, utils.ErrCustomFoodNotFound
	}

	snapshot, err := json.Marshal(custom.ToFood())
	if err != nil {
		return nil, fmt.Errorf("encode custom food: %w", err)
	}
	expiry := request.ExpiryDate
	if expiry == "" {
		expiry = custom.ExpiryDate
	}

	item := &db_models.PantryItem{
		Description: custom.Description,
		DataType:    string(fdc.DataTypeCustom),
		Food:        datatypes.JSON(snapshot),
		Quantity:    request.Quantity,
		ExpiryDate:  expiry,
		Measure:     request.Measure,
		Cost:        request.Cost,
	}
	return p.insert(ctx, email, item)
}

func (p *PantryService) insert(ctx context.Context, email string, item *db_models.PantryItem) (*response_models.PantryItemResponse, error) {
	pantry, err := p.pantryRepo.EnsurePantry(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	item.PantryID = pantry.ID
	item.OwnerEmail = email

	if err := p.pantryRepo.AddItem(ctx, item); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	resp := response_models.NewPantryItemResponse(*item)
	return &resp, nil
}

func (p *PantryService) UpdateQuantity(ctx context.Context, email string, request request_models.UpdateQuantityRequest) (*response_models.PantryItemResponse, error) {
	id, err := uuid.Parse(request.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", utils.ErrInvalidID, request.ID)
	}
	if request.Increment == nil && request.Quantity == nil {
		return nil, fmt.Errorf("%w: increment flag or quantity is required", utils.ErrMissingFields)
	}

	pantry, err := p.pantryRepo.FindPantry(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if pantry == nil {
		return nil, utils.ErrPantryNotFound
	}

	var changed bool
	if request.Increment != nil {
		delta := -1
		if *request.Increment {
			delta = 1
		}
		changed, err = p.pantryRepo.AdjustQuantity(ctx, email, id, delta)
	} else {
		if *request.Quantity < 1 {
			return nil, utils.ErrQuantityBelowOne
		}
		changed, err = p.pantryRepo.SetQuantity(ctx, email, id, *request.Quantity)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	item, err := p.pantryRepo.GetItem(ctx, email, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if item == nil {
		return nil, utils.ErrPantryItemNotFound
	}
	if !changed {
		// The row exists, so the guard on the resulting quantity failed.
		return nil, utils.ErrQuantityBelowOne
	}

	resp := response_models.NewPantryItemResponse(*item)
	return &resp, nil
}

func (p *PantryService) RemoveItem(ctx context.Context, email string, id string) error {
	itemID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("%w: %q", utils.ErrInvalidID, id)
	}

	pantry, err := p.pantryRepo.FindPantry(ctx, email)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if pantry == nil {
		return utils.ErrPantryNotFound
	}

	removed, err := p.pantryRepo.RemoveItem(ctx, email, itemID)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if !removed {
		return utils.ErrPantryItemNotFound
	}
	p.logger.Debug("pantry item removed", zap.String("email", email), zap.String("id", id))
	return nil
}
