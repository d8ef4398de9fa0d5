package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hsquare-backend/controllers"
	"hsquare-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func SetupRouter(
	bc *controllers.BookingController,
	ic *controllers.InvoiceController,
	uc *controllers.UserController,
) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.Logger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		bookings := api.Group("/bookings")
		{
			bookings.GET("", bc.GetBookings)
			bookings.POST("", bc.CreateBooking)
			bookings.GET("/:id", bc.GetBookingDetails)
			bookings.PATCH("/:id/status", bc.UpdateBookingStatus)
			bookings.DELETE("/:id", bc.DeleteBooking)
			bookings.GET("/:id/invoice", ic.GetBookingInvoice)
		}

		invoices := api.Group("/invoices")
		{
			invoices.GET("/:number", ic.GetInvoiceByNumber)
		}

		properties := api.Group("/properties")
		{
			properties.GET("", controllers.GetProperties)
			properties.GET("/:id", controllers.GetProperty)
			properties.POST("", controllers.CreateProperty)
			properties.PATCH("/:id", controllers.UpdateProperty)
			properties.PUT("/:id", controllers.UpdateProperty)
			properties.DELETE("/:id", controllers.DeleteProperty)
		}

		rooms := api.Group("/rooms")
		{
			rooms.GET("", controllers.GetRooms)
			rooms.POST("", controllers.CreateRoom)
			rooms.PATCH("/:id", controllers.UpdateRoom)
			rooms.PUT("/:id", controllers.UpdateRoom)
			rooms.DELETE("/:id", controllers.DeleteRoom)
		}

		users := api.Group("/users")
		{
			users.GET("", uc.GetUsers)
			users.GET("/:id", uc.GetUserByID)
			users.POST("", uc.CreateUser)
			users.PUT("/:id", uc.UpdateUser)
			users.DELETE("/:id", uc.DeleteUser)
		}

		auth := api.Group("/auth")
		{
			auth.POST("/login", controllers.Login)
		}
	}

	return r
}
