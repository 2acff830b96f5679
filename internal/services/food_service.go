package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"fooding/internal/fdc"
	"fooding/internal/models/db_models"
	"fooding/internal/repositories"
	"fooding/pkg/utils"
)

type FoodServiceInterface interface {
	// GetFood returns the canonical record for an FDC id, reading through
	// the local food record store.
	GetFood(ctx context.Context, fdcID int64) (fdc.Food, error)
}

type FoodService struct {
	searcher  fdc.Searcher
	records   repositories.FoodRecordRepository
	threshold *float64
	logger    *zap.Logger
	now       func() time.Time
}

func NewFoodService(searcher fdc.Searcher, records repositories.FoodRecordRepository, threshold *float64, logger *zap.Logger) FoodServiceInterface {
	return &FoodService{
		searcher:  searcher,
		records:   records,
		threshold: threshold,
		logger:    logger,
		now:       time.Now,
	}
}

func (f *FoodService) GetFood(ctx context.Context, fdcID int64) (fdc.Food, error) {
	if fdcID <= 0 {
		return nil, utils.ErrInvalidID
	}
	opts := fdc.Options{NutrientThreshold: f.threshold}

	cached, err := f.records.FindByFdcID(ctx, fdcID)
	if err != nil {
		f.logger.Warn("food record lookup failed", zap.Int64("fdc_id", fdcID), zap.Error(err))
	}
	if cached != nil {
		food, err := fdc.DecodeFood([]byte(cached.Payload), opts)
		if err == nil {
			return food, nil
		}
		f.logger.Warn("cached food record is corrupt", zap.Int64("fdc_id", fdcID), zap.Error(err))
	}

	payload, err := f.searcher.FoodDetail(ctx, fdcID)
	if err != nil {
		return nil, err
	}
	food, err := fdc.DecodeFood(payload, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: decode food %d: %v", fdc.ErrUpstream, fdcID, err)
	}

	base := food.Base()
	record := &db_models.FoodRecord{
		FdcID:       fdcID,
		DataType:    string(base.DataType),
		Description: base.Description,
		Payload:     string(payload),
		FetchedAt:   f.now().UTC(),
	}
	if err := f.records.Upsert(ctx, record); err != nil {
		f.logger.Warn("storing food record failed", zap.Int64("fdc_id", fdcID), zap.Error(err))
	}
	return food, nil
}
