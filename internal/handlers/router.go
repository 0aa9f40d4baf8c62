package handlers

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"healthtrack/internal/database"
	"healthtrack/internal/middleware"
)

// Router собирает все обработчики сервиса
type Router struct {
	db         *gorm.DB
	auth       *AuthHandlers
	readings   *ReadingHandlers
	sleep      *SleepHandlers
	bloodtests *BloodTestHandlers
	settings   *SettingsHandlers
	stats      *StatsHandlers
	export     *ExportHandlers
	jwt        *middleware.JWTMiddleware
}

func NewRouter(
	db *gorm.DB,
	auth *AuthHandlers,
	readings *ReadingHandlers,
	sleep *SleepHandlers,
	bloodtests *BloodTestHandlers,
	settings *SettingsHandlers,
	stats *StatsHandlers,
	export *ExportHandlers,
	jwt *middleware.JWTMiddleware,
) *Router {
	return &Router{
		db:         db,
		auth:       auth,
		readings:   readings,
		sleep:      sleep,
		bloodtests: bloodtests,
		settings:   settings,
		stats:      stats,
		export:     export,
		jwt:        jwt,
	}
}

// SetupRoutes настраивает маршруты REST API
func (rt *Router) SetupRoutes() *gin.Engine {
	r := gin.New()

	// Middleware
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", rt.healthCheck)

	api := r.Group("/api/v1")

	auth := api.Group("/auth")
	{
		auth.POST("/register", rt.auth.Register)
		auth.POST("/login", rt.auth.Login)
		auth.POST("/refresh", rt.auth.RefreshToken)
		auth.POST("/logout", rt.auth.Logout)
		auth.GET("/me", rt.jwt.RequireAuth(), rt.auth.GetProfile)
	}

	protected := api.Group("")
	protected.Use(rt.jwt.RequireAuth())
	{
		readings := protected.Group("/readings")
		{
			readings.POST("", rt.readings.Create)
			readings.GET("", rt.readings.List)
			readings.GET("/:id", rt.readings.Get)
			readings.PUT("/:id", rt.readings.Update)
			readings.DELETE("/:id", rt.readings.Delete)
		}

		sleep := protected.Group("/sleep")
		{
			sleep.POST("", rt.sleep.Create)
			sleep.GET("", rt.sleep.List)
			sleep.GET("/:id", rt.sleep.Get)
			sleep.PUT("/:id", rt.sleep.Update)
			sleep.DELETE("/:id", rt.sleep.Delete)
		}

		bloodtests := protected.Group("/bloodtests")
		{
			bloodtests.POST("", rt.bloodtests.Create)
			bloodtests.GET("", rt.bloodtests.List)
			bloodtests.GET("/:id", rt.bloodtests.Get)
			bloodtests.PUT("/:id", rt.bloodtests.Update)
			bloodtests.DELETE("/:id", rt.bloodtests.Delete)
		}

		protected.GET("/settings", rt.settings.Get)
		protected.PUT("/settings", rt.settings.Update)
		protected.GET("/guidelines", rt.settings.ListGuidelines)

		protected.GET("/stats/bp", rt.stats.BPStats)
		protected.GET("/stats/sleep", rt.stats.SleepStats)

		protected.GET("/export/readings.csv", rt.export.ReadingsCSV)
		protected.GET("/export/report.md", rt.export.Report)
	}

	return r
}

// GET /health
func (rt *Router) healthCheck(c *gin.Context) {
	status := "healthy"
	code := http.StatusOK

	if err := database.HealthCheck(rt.db); err != nil {
		status = "degraded"
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, gin.H{
		"status":    status,
		"service":   "healthtrack",
		"timestamp": time.Now().UTC(),
	})
}
