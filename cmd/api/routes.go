package main

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// registerRoutes sets up all API endpoints
func (app *App) registerRoutes() {
	// Health check endpoint
	app.router.GET("/ping", app.handlePing)

	// Region metadata
	app.router.GET("/regions", app.handleListRegions)

	// Registration submission, proxied to the observation service
	app.router.POST("/registration", app.handleSubmitRegistration)

	// Avalanche forecast endpoints
	app.router.GET("/forecast/:region", app.handleGetForecasts)
	app.router.GET("/forecast/:region/problems.csv", app.handleGetProblemsCSV)
	app.router.GET("/forecast/danger-levels.csv", app.handleGetDangerLevelsCSV)

	// Mountain weather endpoints
	app.router.GET("/weather/:region", app.handleGetWeather)
	app.router.GET("/weather/:region/weather.csv", app.handleGetWeatherCSV)

	// Prometheus metrics
	app.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger documentation
	app.router.GET("/swagger/*any", func(c *gin.Context) {
		path := c.Param("any")
		if path == "/" {
			c.Redirect(301, "/swagger/index.html")
			return
		}
		ginSwagger.WrapHandler(swaggerFiles.Handler)(c)
	})
}
