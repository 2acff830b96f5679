package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"fooding/internal/fdc"
	"fooding/internal/models/db_models"
	"fooding/pkg/utils"
)

func cannedResult(foods ...fdc.Food) *fdc.Result {
	res := fdc.NewResult()
	res.TotalHits = len(foods)
	for _, f := range foods {
		res.Add(f)
	}
	return res
}

func TestSearch_Validation(t *testing.T) {
	svc := NewSearchService(&fakeSearcher{}, &fakeCustomRepo{}, nil, zap.NewNop())

	tests := []struct {
		name  string
		input SearchInput
		want  error
	}{
		{name: "missing query", input: SearchInput{Query: "  "}, want: utils.ErrQueryRequired},
		{name: "negative page", input: SearchInput{Query: "milk", PageNumber: -1}, want: utils.ErrInvalidPage},
		{name: "page size too large", input: SearchInput{Query: "milk", PageSize: 201}, want: utils.ErrInvalidPageSize},
		{name: "unknown data type", input: SearchInput{Query: "milk", DataType: "Experimental"}, want: utils.ErrInvalidDataType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Search(context.Background(), tt.input)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestSearch_AllFansOutToExternalCategories(t *testing.T) {
	searcher := &fakeSearcher{results: map[fdc.Category]*fdc.Result{
		fdc.CategoryBranded: cannedResult(fdc.BrandedFood{Common: fdc.Common{FdcID: 1, Description: "WHOLE MILK", DataType: fdc.DataTypeBranded}}),
		fdc.CategorySurvey:  cannedResult(fdc.SurveyFood{Common: fdc.Common{FdcID: 2, Description: "Milk, whole", DataType: fdc.DataTypeSurvey}}),
	}}
	svc := NewSearchService(searcher, &fakeCustomRepo{}, nil, zap.NewNop())

	res, err := svc.Search(context.Background(), SearchInput{Query: "milk", DataType: "All"})

	require.NoError(t, err)
	assert.Equal(t, []string{"Branded", "Survey"}, searcher.categories())
	assert.Len(t, res.Buckets[fdc.BucketBranded], 1)
	assert.Len(t, res.Buckets[fdc.BucketSurvey], 1)
	assert.Equal(t, 2, res.TotalHits)
}

func TestSearch_NoFilterSendsOneUnfilteredRequest(t *testing.T) {
	searcher := &fakeSearcher{}
	svc := NewSearchService(searcher, &fakeCustomRepo{}, nil, zap.NewNop())

	res, err := svc.Search(context.Background(), SearchInput{Query: "milk"})

	require.NoError(t, err)
	require.Len(t, searcher.calls, 1)
	assert.Equal(t, fdc.CategoryAny, searcher.calls[0].Category)
	assert.Equal(t, 1, searcher.calls[0].PageNumber)
	assert.Equal(t, 20, searcher.calls[0].PageSize)
	assert.True(t, res.Empty())
}

func TestSearch_UpstreamFailureFailsWholeSearch(t *testing.T) {
	searcher := &fakeSearcher{
		results: map[fdc.Category]*fdc.Result{
			fdc.CategoryBranded: cannedResult(fdc.BrandedFood{Common: fdc.Common{FdcID: 1, DataType: fdc.DataTypeBranded}}),
		},
		errs: map[fdc.Category]error{fdc.CategorySurvey: fmt.Errorf("%w: 500", fdc.ErrUpstream)},
	}
	svc := NewSearchService(searcher, &fakeCustomRepo{}, nil, zap.NewNop())

	res, err := svc.Search(context.Background(), SearchInput{Query: "milk", DataType: "All"})

	assert.ErrorIs(t, err, fdc.ErrUpstream)
	assert.Nil(t, res)
}

func TestSearch_CustomFoldIn(t *testing.T) {
	custom := &fakeCustomRepo{}
	for _, d := range []string{"Whole Milk", "Almond Butter"} {
		require.NoError(t, custom.Create(context.Background(), &db_models.CustomFood{OwnerEmail: "a@b.com", Description: d}))
	}
	require.NoError(t, custom.Create(context.Background(), &db_models.CustomFood{OwnerEmail: "other@b.com", Description: "Oat milk"}))
	searcher := &fakeSearcher{}
	svc := NewSearchService(searcher, custom, nil, zap.NewNop())

	res, err := svc.Search(context.Background(), SearchInput{Query: "milk", DataType: "Custom", OwnerEmail: "a@b.com"})

	require.NoError(t, err)
	assert.Empty(t, searcher.calls, "custom filter makes no external call")
	require.Len(t, res.Buckets[fdc.BucketCustom], 1)
	got := res.Buckets[fdc.BucketCustom][0].(fdc.CustomFood)
	assert.Equal(t, "Whole Milk", got.Description)
	assert.Equal(t, fdc.DataTypeCustom, got.DataType)
}

func TestSearch_AnonymousGetsNoCustomBucket(t *testing.T) {
	custom := &fakeCustomRepo{}
	require.NoError(t, custom.Create(context.Background(), &db_models.CustomFood{OwnerEmail: "a@b.com", Description: "Whole Milk"}))
	svc := NewSearchService(&fakeSearcher{}, custom, nil, zap.NewNop())

	res, err := svc.Search(context.Background(), SearchInput{Query: "milk", DataType: "Custom"})

	require.NoError(t, err)
	assert.True(t, res.Empty())
}

func TestSearch_ThresholdOverride(t *testing.T) {
	configured := 0.01
	override := 0.5
	searcher := &fakeSearcher{}
	custom := &fakeCustomRepo{}
	require.NoError(t, custom.Create(context.Background(), &db_models.CustomFood{
		OwnerEmail:  "a@b.com",
		Description: "Milk bar",
		Nutrients: []fdc.Nutrient{
			{NutrientID: 1, Value: 0.2},
			{NutrientID: 2, Value: 4},
		},
	}))
	svc := NewSearchService(searcher, custom, &configured, zap.NewNop())

	res, err := svc.Search(context.Background(), SearchInput{Query: "milk", MinNutrientValue: &override, OwnerEmail: "a@b.com"})

	require.NoError(t, err)
	require.Len(t, searcher.calls, 1)
	assert.Equal(t, &override, searcher.calls[0].Options.NutrientThreshold)
	got := res.Buckets[fdc.BucketCustom][0].(fdc.CustomFood)
	require.Len(t, got.FoodNutrients, 1)
	assert.Equal(t, 2, got.FoodNutrients[0].NutrientID)
}

func TestSearch_CustomStoreFailure(t *testing.T) {
	svc := NewSearchService(&fakeSearcher{}, &fakeCustomRepo{err: errBoom}, nil, zap.NewNop())

	_, err := svc.Search(context.Background(), SearchInput{Query: "milk", OwnerEmail: "a@b.com"})

	assert.ErrorIs(t, err, utils.ErrDatabaseError)
}
