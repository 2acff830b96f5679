package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"fooding/internal/fdc"
	"fooding/internal/models/db_models"
	"fooding/internal/repositories"
	"fooding/pkg/utils"
)

const (
	defaultPageSize = 20
	maxPageSize     = 200
)

type SearchInput struct {
	Query      string
	AllWords   bool
	PageNumber int
	PageSize   int
	DataType   string
	// MinNutrientValue overrides the configured nutrient threshold.
	MinNutrientValue *float64
	// OwnerEmail is empty for anonymous callers, who get no Custom matches.
	OwnerEmail string
}

type SearchServiceInterface interface {
	Search(ctx context.Context, input SearchInput) (*fdc.Result, error)
}

type SearchService struct {
	searcher   fdc.Searcher
	customRepo repositories.CustomFoodRepository
	threshold  *float64
	logger     *zap.Logger
}

func NewSearchService(
	searcher fdc.Searcher,
	customRepo repositories.CustomFoodRepository,
	threshold *float64,
	logger *zap.Logger,
) SearchServiceInterface {
	return &SearchService{
		searcher:   searcher,
		customRepo: customRepo,
		threshold:  threshold,
		logger:     logger,
	}
}

// Search fans out one FDC request per planned category and merges the
// normalized results by bucket. Any failed sub-query fails the search.
func (s *SearchService) Search(ctx context.Context, input SearchInput) (*fdc.Result, error) {
	query := strings.TrimSpace(input.Query)
	if query == "" {
		return nil, utils.ErrQueryRequired
	}

	page := input.PageNumber
	switch {
	case page == 0:
		page = 1
	case page < 0:
		return nil, utils.ErrInvalidPage
	}
	size := input.PageSize
	switch {
	case size == 0:
		size = defaultPageSize
	case size < 0 || size > maxPageSize:
		return nil, utils.ErrInvalidPageSize
	}

	category, ok := fdc.ParseDataTypeFilter(input.DataType)
	if !ok {
		return nil, fmt.Errorf("%w: %q", utils.ErrInvalidDataType, input.DataType)
	}

	opts := fdc.Options{NutrientThreshold: s.threshold}
	if input.MinNutrientValue != nil {
		opts.NutrientThreshold = input.MinNutrientValue
	}

	plan := planCategories(category)
	results := make([]*fdc.Result, len(plan))
	var custom []db_models.CustomFood

	g, gctx := errgroup.WithContext(ctx)
	for i, c := range plan {
		g.Go(func() error {
			res, err := s.searcher.Search(gctx, fdc.SearchParams{
				Query:      query,
				AllWords:   input.AllWords,
				PageNumber: page,
				PageSize:   size,
				Category:   c,
				Options:    opts,
			})
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if input.OwnerEmail != "" {
		g.Go(func() error {
			foods, err := s.customRepo.SearchByDescription(gctx, input.OwnerEmail, query)
			if err != nil {
				return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
			}
			custom = foods
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := fdc.NewResult()
	for _, res := range results {
		merged.Merge(res)
	}
	if category == fdc.CategoryCustom || input.OwnerEmail != "" {
		merged.Ensure(fdc.BucketCustom)
	}
	for _, cf := range custom {
		food := cf.ToFood()
		food.FoodNutrients = fdc.FilterNutrients(food.FoodNutrients, opts.NutrientThreshold)
		merged.Add(food)
	}

	if len(merged.Unrecognized) > 0 {
		tags := make([]string, 0, len(merged.Unrecognized))
		for _, u := range merged.Unrecognized {
			tags = append(tags, string(u.DataType))
		}
		s.logger.Warn("search returned unrecognized data types",
			zap.String("query", query),
			zap.Strings("data_types", tags))
	}

	return merged, nil
}

// planCategories lists the external requests for a filter. Custom needs
// none.
func planCategories(c fdc.Category) []fdc.Category {
	switch c {
	case fdc.CategoryAll:
		return fdc.External
	case fdc.CategoryCustom:
		return nil
	default:
		return []fdc.Category{c}
	}
}
