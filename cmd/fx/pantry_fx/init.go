package pantry_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"fooding/internal/repositories"
	"fooding/internal/services"
)

var Module = fx.Provide(
	providePantryRepo,
	provideCustomFoodRepo,
	providePantryService,
	provideCustomFoodService)

func providePantryRepo(db *gorm.DB) repositories.PantryRepository {
	return repositories.NewPantryRepository(db)
}

func provideCustomFoodRepo(db *gorm.DB) repositories.CustomFoodRepository {
	return repositories.NewCustomFoodRepository(db)
}

func providePantryService(pantryRepo repositories.PantryRepository, customRepo repositories.CustomFoodRepository, logger *zap.Logger) services.PantryServiceInterface {
	return services.NewPantryService(pantryRepo, customRepo, logger.Named("pantry"))
}

func provideCustomFoodService(customRepo repositories.CustomFoodRepository, logger *zap.Logger) services.CustomFoodServiceInterface {
	return services.NewCustomFoodService(customRepo, logger.Named("custom_food"))
}
