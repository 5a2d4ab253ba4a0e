package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/collegescope/api/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	schoolController *controllers.SchoolController,
	programController *controllers.ProgramController,
	aggregationController *controllers.AggregationController,
	analyticsController *controllers.AnalyticsController,
	healthController *controllers.HealthController,
) {
	// Health probes live outside the versioned group
	router.GET("/health", healthController.HealthCheck)
	router.GET("/ping", healthController.Ping)

	// API version group
	v1 := router.Group("/api/v1")

	schools := v1.Group("/schools")
	{
		schools.GET("/filter", schoolController.FilterSchools)
		schools.POST("/filter", schoolController.FilterSchools)
		schools.GET("/search", schoolController.SearchSchools)
		schools.GET("/compare", schoolController.CompareSchools)
		schools.POST("/compare", schoolController.CompareSchools)
		schools.GET("/states", schoolController.GetStates)
		schools.GET("/:id", schoolController.GetSchoolByID)
	}

	programs := v1.Group("/programs")
	{
		programs.GET("/trends", programController.GetTrends)
		programs.POST("/compare", programController.CompareBySchools)
		programs.GET("/majors", programController.GetMajors)
		programs.GET("/cip-codes", programController.GetCipCodes)
		programs.GET("/school/:id", programController.GetSchoolPrograms)
	}

	aggregations := v1.Group("/aggregations")
	{
		aggregations.GET("/state", aggregationController.GetStateAggregation)
		aggregations.GET("/roi", aggregationController.GetROI)
		aggregations.GET("/earnings-distribution", aggregationController.GetEarningsDistribution)
		aggregations.GET("/cost-vs-earnings", aggregationController.GetCostVsEarnings)
		aggregations.GET("/completion-rates", aggregationController.GetCompletionRates)
		aggregations.GET("/summary", aggregationController.GetSummary)
	}

	analytics := v1.Group("/analytics")
	{
		analytics.GET("/state-comparison", analyticsController.GetStateComparison)
		analytics.GET("/state/:code", analyticsController.GetStateAnalytics)
		analytics.GET("/school/:id", analyticsController.GetSchoolAnalytics)
		analytics.GET("/available-years", analyticsController.GetAvailableYears)
	}
}
