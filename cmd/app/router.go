package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"fooding/internal/api/controllers"
	"fooding/internal/config"
	"fooding/pkg/middleware"
)

type RouterParams struct {
	fx.In

	Config      config.Config
	Logger      *zap.Logger
	Auth        *middleware.Authenticator
	Accounts    *controllers.AccountController
	Search      *controllers.SearchController
	Pantry      *controllers.PantryController
	CustomFoods *controllers.CustomFoodController
	Recipes     *controllers.RecipeController
}

func ProvideRouter(p RouterParams) *gin.Engine {
	if p.Config.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(p.Logger.Named("http")))
	r.Use(middleware.MetricsMiddleware())
	r.Use(middleware.CORSMiddleware(p.Config.CORSOrigins))

	RegisterRoutes(r, p)

	return r
}

func RegisterRoutes(r *gin.Engine, p RouterParams) {
	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	required := p.Auth.RequireAuth()
	optional := p.Auth.OptionalAuth()

	r.POST("/register", p.Accounts.Register)
	r.POST("/login", p.Accounts.Login)
	r.POST("/oauth2callback", p.Accounts.OAuthCallback)
	r.POST("/logout", optional, p.Accounts.Logout)
	r.GET("/current_user", required, p.Accounts.CurrentUser)
	r.POST("/onboarding", required, p.Accounts.Onboarding)

	r.GET("/search", optional, p.Search.Search)
	r.GET("/food/:fdcId", p.Search.GetFood)

	authed := r.Group("/", required)
	authed.GET("/pantry", p.Pantry.GetPantry)
	authed.POST("/add_to_pantry", p.Pantry.AddToPantry)
	authed.POST("/add_custom_food", p.Pantry.AddCustomFood)
	authed.POST("/update_quantity", p.Pantry.UpdateQuantity)
	authed.POST("/remove_item", p.Pantry.RemoveItem)

	authed.GET("/custom_foods", p.CustomFoods.List)
	authed.POST("/create_new_food", p.CustomFoods.Create)
	authed.POST("/update_custom_food_ingredients", p.CustomFoods.UpdateIngredients)

	authed.POST("/recipes/suggest", p.Recipes.Suggest)
}
