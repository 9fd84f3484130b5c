package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-backoffice/config"
	"github.com/yeremiapane/restaurant-backoffice/controllers"
	"github.com/yeremiapane/restaurant-backoffice/middlewares"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	// Uploaded avatars and event images
	r.Static("/static", config.StaticDir())

	userCtrl := controllers.NewUserController(db)
	eventCtrl := controllers.NewEventController(db)
	menuCtrl := controllers.NewMenuItemController(db)
	reservationCtrl := controllers.NewReservationController(db)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Tight rate limit on credential endpoints
	public := r.Group("/api/auth")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/register", userCtrl.Register)
		public.POST("/login", userCtrl.Login)
		public.POST("/refresh", userCtrl.RefreshToken)
	}

	// Public reads for the web front-end
	r.GET("/api/events", eventCtrl.GetAllEvents)
	r.GET("/api/events/:event_id", eventCtrl.GetEventByID)
	r.GET("/api/menu", menuCtrl.GetAllMenuItems)
	r.GET("/api/menu/:item_id", menuCtrl.GetMenuItemByID)

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware())

	// USERS
	api.GET("/users/me", userCtrl.GetProfile)
	api.GET("/users", userCtrl.GetAllUsers)
	api.PATCH("/users/:user_id", userCtrl.UpdateUser)
	api.DELETE("/users/:user_id", userCtrl.DeleteUser)
	api.POST("/users/:user_id/avatar", userCtrl.UploadAvatar)

	// EVENTS
	api.POST("/events", eventCtrl.CreateEvent)
	api.PATCH("/events/:event_id", eventCtrl.UpdateEvent)
	api.DELETE("/events/:event_id", eventCtrl.DeleteEvent)
	api.POST("/events/:event_id/image", eventCtrl.UploadEventImage)

	// MENU
	api.POST("/menu", menuCtrl.CreateMenuItem)
	api.PATCH("/menu/:item_id", menuCtrl.UpdateMenuItem)
	api.DELETE("/menu/:item_id", menuCtrl.DeleteMenuItem)

	// RESERVATIONS
	reservations := api.Group("/reservations")
	reservations.GET("", reservationCtrl.GetAllReservations)
	reservations.GET("/statistics", reservationCtrl.GetReservationStatistics)
	reservations.GET("/people_count_statistics", reservationCtrl.GetPeopleCountStatistics)
	reservations.GET("/:reservation_id", reservationCtrl.GetReservationByID)
	reservations.POST("", reservationCtrl.CreateReservation)
	reservations.PATCH("/:reservation_id", reservationCtrl.UpdateReservation)
	reservations.DELETE("/:reservation_id", reservationCtrl.DeleteReservation)

	return r
}
