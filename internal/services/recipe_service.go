package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"fooding/internal/models/request_models"
	"fooding/internal/models/response_models"
	"fooding/internal/repositories"
	"fooding/pkg/utils"
)

type RecipeSettings struct {
	SystemPrompt string
	MaxTokens    int
	Temperature  float32

	// AllowedModels are the models a caller may pick besides the
	// provider default.
	AllowedModels []string
}

type RecipeServiceInterface interface {
	Suggest(ctx context.Context, email string, request request_models.SuggestRecipeRequest) (*response_models.RecipeResponse, error)
}

type RecipeService struct {
	pantryRepo repositories.PantryRepository
	// generator is nil when no provider key is configured.
	generator utils.TextGenerator
	settings  RecipeSettings
	logger    *zap.Logger
}

func NewRecipeService(pantryRepo repositories.PantryRepository, generator utils.TextGenerator, settings RecipeSettings, logger *zap.Logger) RecipeServiceInterface {
	return &RecipeService{
		pantryRepo: pantryRepo,
		generator:  generator,
		settings:   settings,
		logger:     logger,
	}
}

func (r *RecipeService) Suggest(ctx context.Context, email string, request request_models.SuggestRecipeRequest) (*response_models.RecipeResponse, error) {
	if r.generator == nil {
		return nil, utils.ErrRecipeUnavailable
	}
	model, err := r.pickModel(request.Model)
	if err != nil {
		return nil, err
	}

	items, err := r.pantryRepo.ListItems(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	seen := make(map[string]struct{}, len(items))
	ingredients := make([]string, 0, len(items))
	for _, it := range items {
		name := strings.TrimSpace(it.Description)
		key := strings.ToLower(name)
		if name == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		ingredients = append(ingredients, name)
	}
	if len(ingredients) == 0 {
		return nil, utils.ErrEmptyPantry
	}

	req := utils.CompletionRequest{
		Model:       model,
		System:      r.settings.SystemPrompt,
		Prompt:      RecipePrompt(ingredients),
		MaxTokens:   r.settings.MaxTokens,
		Temperature: r.settings.Temperature,
	}
	if request.MaxTokens != nil && *request.MaxTokens > 0 {
		req.MaxTokens = *request.MaxTokens
	}
	if request.Temperature != nil {
		req.Temperature = *request.Temperature
	}

	text, err := r.generator.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", utils.ErrRecipeGeneration, r.generator.Provider(), err)
	}

	return &response_models.RecipeResponse{
		Provider:    r.generator.Provider(),
		Model:       req.Model,
		Ingredients: ingredients,
		Recipe:      text,
	}, nil
}

// pickModel returns the provider default unless the caller asked for an
// allowed model.
func (r *RecipeService) pickModel(requested string) (string, error) {
	def := r.generator.DefaultModel()
	requested = strings.TrimSpace(requested)
	if requested == "" || requested == def {
		return def, nil
	}
	for _, m := range r.settings.AllowedModels {
		if m == requested {
			return requested, nil
		}
	}
	return "", fmt.Errorf("%w: %q", utils.ErrModelNotAllowed, requested)
}

func RecipePrompt(ingredients []string) string {
	return fmt.Sprintf("Recommend a recipe using %s.", strings.Join(ingredients, ", "))
}
