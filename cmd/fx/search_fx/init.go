package search_fx

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"fooding/internal/config"
	"fooding/internal/fdc"
	"fooding/internal/repositories"
	"fooding/internal/services"
)

var Module = fx.Provide(
	provideFoodRecordRepo,
	provideSearchService,
	provideFoodService)

func provideFoodRecordRepo(db *mongo.Database) repositories.FoodRecordRepository {
	return repositories.NewFoodRecordRepository(db)
}

func provideSearchService(searcher fdc.Searcher, customRepo repositories.CustomFoodRepository, cfg config.Config, logger *zap.Logger) services.SearchServiceInterface {
	return services.NewSearchService(searcher, customRepo, cfg.FDC.NutrientThreshold, logger.Named("search"))
}

func provideFoodService(searcher fdc.Searcher, records repositories.FoodRecordRepository, cfg config.Config, logger *zap.Logger) services.FoodServiceInterface {
	return services.NewFoodService(searcher, records, cfg.FDC.NutrientThreshold, logger.Named("food"))
}
