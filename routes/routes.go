package routes

import (
	"net/http"
	"time"

	"dermacare/handlers"
	"dermacare/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle aggregates the handlers wired in main.
type HandlerBundle struct {
	Doctor  *handlers.DoctorHandler
	Booking *handlers.BookingHandler
	Admin   *handlers.AdminHandler
}

// RegisterRoutes mounts the appointment API. Paths mirror the legacy
// backend so existing clients keep working.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm DermaCare"})
	})

	api := r.Group("/api/appointments")
	{
		api.GET("/doctors", hb.Doctor.ListDoctorsHandler)
		api.GET("/doctors/:id/slots", hb.Doctor.GetDoctorSlotsHandler)

		api.POST("/book", middleware.AuthRequired(), hb.Booking.BookAppointmentHandler)
		api.GET("/my", middleware.AuthOptional(), hb.Booking.MyAppointmentsHandler)
		api.DELETE("/:id", hb.Booking.CancelAppointmentHandler)

		admin := api.Group("/admin")
		{
			admin.GET("/pending", hb.Admin.PendingAppointmentsHandler)
			admin.GET("/all", hb.Admin.AllAppointmentsHandler)
			admin.PUT("/status/:id", hb.Admin.UpdateAppointmentStatusHandler)
		}
	}
}
