package api

import (
	"github.com/gin-gonic/gin"

	"github.com/inference-sim/npv-sim/sim"
)

// NewRouter wires middleware and routes for the simulation API.
func NewRouter(cfg Config, presets map[string]sim.Parameters) *gin.Engine {
	gin.SetMode(cfg.Mode)
	router := gin.New()

	router.Use(CORS(cfg.AllowedOrigins))
	router.Use(Logger())
	router.Use(ErrorHandler())

	handler := NewSimulationHandler(presets, cfg.EnforceRanges, cfg.DefaultSeed)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	v1.GET("/presets", handler.ListPresets)
	v1.POST("/simulations", handler.RunSimulation)

	return router
}
