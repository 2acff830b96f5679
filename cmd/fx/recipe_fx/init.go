package recipe_fx

import (
	"context"
	"fmt"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"fooding/internal/config"
	"fooding/internal/repositories"
	"fooding/internal/services"
	"fooding/pkg/utils"
)

var Module = fx.Provide(
	ProvideTextGenerator,
	ProvideRecipeService)

// ProvideTextGenerator picks the recipe provider from configuration. It
// returns a nil generator when the selected provider has no API key, which
// leaves the recipe endpoint answering 503.
func ProvideTextGenerator(lc fx.Lifecycle, cfg config.Config, logger *zap.Logger) (utils.TextGenerator, error) {
	rc := cfg.Recipe

	switch rc.Provider {
	case "openai":
		if rc.OpenAIKey == "" {
			logger.Warn("OPENAI_API_KEY not set, recipe suggestions disabled")
			return nil, nil
		}
		logger.Info("recipe provider ready", zap.String("provider", "openai"), zap.String("model", rc.OpenAIModel))
		return utils.NewOpenAIClient(rc.OpenAIKey, rc.OpenAIModel, ""), nil
	case "gemini":
		if rc.GeminiKey == "" {
			logger.Warn("GEMINI_API_KEY not set, recipe suggestions disabled")
			return nil, nil
		}
		client, err := utils.NewGeminiClient(context.Background(), rc.GeminiKey, rc.GeminiModel)
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return client.Close()
			},
		})
		logger.Info("recipe provider ready", zap.String("provider", "gemini"), zap.String("model", rc.GeminiModel))
		return client, nil
	default:
		return nil, fmt.Errorf("unsupported recipe provider: %s. Use 'openai' or 'gemini'", rc.Provider)
	}
}

func ProvideRecipeService(
	pantryRepo repositories.PantryRepository,
	generator utils.TextGenerator,
	cfg config.Config,
	logger *zap.Logger,
) services.RecipeServiceInterface {
	return services.NewRecipeService(pantryRepo, generator, services.RecipeSettings{
		SystemPrompt:  cfg.Recipe.SystemPrompt,
		MaxTokens:     cfg.Recipe.MaxTokens,
		Temperature:   cfg.Recipe.Temperature,
		AllowedModels: cfg.Recipe.AllowedModels,
	}, logger.Named("recipe"))
}
