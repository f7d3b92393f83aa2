package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/shreshthco18-lgtm/calorie-tracker/config"
	"github.com/shreshthco18-lgtm/calorie-tracker/controllers"
	"github.com/shreshthco18-lgtm/calorie-tracker/middlewares"
	"github.com/shreshthco18-lgtm/calorie-tracker/services"
)

// SetupRouter wires the middleware chain and the ledger endpoints onto a
// fresh engine. The store handle is injected here and nowhere else.
func SetupRouter(db *gorm.DB, cfg config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestLogger())
	r.Use(middlewares.CORS(cfg.AllowedOrigins))

	ledger := services.NewLedgerService(db)
	days := controllers.NewDayController(ledger)

	api := r.Group("/api")
	{
		api.GET("/days", days.ListDays)
		api.POST("/meals", days.AddMeal)
		api.PUT("/days/reset", days.ResetDay)
	}

	r.GET("/healthz", func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return r
}
