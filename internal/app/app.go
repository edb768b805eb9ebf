package app

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"labreserve-service/internal/schedule"
)

// App wires the schedule service into the HTTP layer.
type App struct {
	Schedule *schedule.Service
	Catalog  schedule.Catalog
	Location *time.Location
	Logger   *zap.Logger
}

// Router builds the HTTP surface.
func (a *App) Router() *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())

	router.GET("/", a.HealthHandler)
	router.POST("/validate-intervals", a.ValidateIntervalsHandler)
	router.POST("/register-reservation", a.RegisterReservationHandler)

	return router
}
