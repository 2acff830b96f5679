package controllers_fx

import (
	"go.uber.org/fx"

	"fooding/internal/api/controllers"
	"fooding/internal/config"
	"fooding/internal/services"
)

var Module = fx.Options(
	fx.Provide(provideAccountController),
	fx.Provide(controllers.NewSearchController),
	fx.Provide(controllers.NewPantryController),
	fx.Provide(controllers.NewCustomFoodController),
	fx.Provide(controllers.NewRecipeController))

func provideAccountController(accountService services.AccountServiceInterface, cfg config.Config) *controllers.AccountController {
	return controllers.NewAccountController(accountService, cfg.Session.Secure)
}
