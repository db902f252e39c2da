package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"frontdesk-backend/controllers"
	"frontdesk-backend/middleware"
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
	rc *controllers.ReservationController,
	lc *controllers.LedgerController,
	ic *controllers.InvoiceController,
	rmc *controllers.RoomController,
	rtc *controllers.RoomTypeController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger())

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
		api.POST("/auth/login", controllers.Login)

		reservations := api.Group("/reservations")
		{
			reservations.GET("", rc.ListReservations)
			reservations.POST("", rc.CreateReservation)
			reservations.GET("/:id", rc.GetReservation)
			reservations.PUT("/:id", rc.UpdateStay)

			reservations.POST("/:id/check-in", rc.CheckIn)
			reservations.POST("/:id/check-out", rc.CheckOut)
			reservations.POST("/:id/cancel", rc.CancelReservation)
			reservations.GET("/:id/actions", rc.GetActions)

			// multi-folio billing ledger
			reservations.GET("/:id/ledger", lc.GetLedger)
			reservations.POST("/:id/folios", lc.AddFolio)
			reservations.POST("/:id/charges", lc.AddCharge)
			reservations.POST("/:id/payments", lc.AddPayment)
			reservations.POST("/:id/charges/move", lc.MoveCharges)
			reservations.POST("/:id/charges/:entryId/rectify", lc.RectifyCharge)
			reservations.GET("/:id/billing-details/:folio", lc.GetBillingDetails)
			reservations.PUT("/:id/billing-details/:folio", lc.UpdateBillingDetails)

			reservations.GET("/:id/folios/:folio/invoice", ic.GetInvoice)
		}

		rooms := api.Group("/rooms")
		{
			rooms.GET("", rmc.GetRooms)
			rooms.POST("", rmc.CreateRoom)
			rooms.GET("/:id", rmc.GetRoomByID)
			rooms.PUT("/:id", rmc.UpdateRoom)
			rooms.PATCH("/:id/condition", rmc.SetRoomCondition)
			rooms.DELETE("/:id", rmc.DeleteRoom)
		}

		roomTypes := api.Group("/room-types")
		{
			roomTypes.GET("", rtc.GetRoomTypes)
			roomTypes.POST("", rtc.CreateRoomType)
			roomTypes.PUT("/:id", rtc.UpdateRoomType)
			roomTypes.DELETE("/:id", rtc.DeleteRoomType)
		}

		settings := api.Group("/settings")
		{
			settings.GET("", controllers.GetPropertySettings)
			settings.PUT("", controllers.UpdatePropertySettings)
		}
	}

	return r
}
