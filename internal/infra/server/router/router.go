// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/krigzlist/backend/internal/integration/entrypoint/controller"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine               *gin.Engine
	healthController     *controller.HealthController
	itemController       *controller.ItemController
	budgetController     *controller.BudgetController
	reportController     *controller.ReportController
	suggestionController *controller.SuggestionController
	categoryController   *controller.CategoryController
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	itemController *controller.ItemController,
	budgetController *controller.BudgetController,
	reportController *controller.ReportController,
	suggestionController *controller.SuggestionController,
	categoryController *controller.CategoryController,
) *Router {
	return &Router{
		healthController:     healthController,
		itemController:       itemController,
		budgetController:     budgetController,
		reportController:     reportController,
		suggestionController: suggestionController,
		categoryController:   categoryController,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		items := v1.Group("/items")
		{
			items.GET("", r.itemController.List)
			items.POST("", r.itemController.Create)
			items.DELETE("", r.itemController.ClearAll)
			items.POST("/mark-all-incomplete", r.itemController.MarkAllIncomplete)
			items.DELETE("/selection", r.itemController.DeleteSelected)
			items.POST("/selection/clear", r.itemController.ClearSelection)
			items.PUT("/:id", r.itemController.Update)
			items.DELETE("/:id", r.itemController.Delete)
			items.POST("/:id/toggle", r.itemController.Toggle)
			items.POST("/:id/select", r.itemController.ToggleSelection)
		}

		budget := v1.Group("/budget")
		{
			budget.GET("", r.budgetController.Get)
			budget.PUT("", r.budgetController.Set)
			budget.DELETE("", r.budgetController.Remove)
		}

		reports := v1.Group("/reports")
		{
			reports.GET("/trends", r.reportController.Trends)
			reports.GET("/breakdown", r.reportController.Breakdown)
			reports.GET("/summary", r.reportController.Summary)
		}

		suggestions := v1.Group("/suggestions")
		{
			suggestions.GET("", r.suggestionController.List)
			suggestions.POST("/resolve", r.suggestionController.Resolve)
		}

		v1.GET("/categories", r.categoryController.List)
	}
}
