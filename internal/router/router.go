package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateReservation(c *ginext.Context)
	GetReservation(c *ginext.Context)
	GetReservationByCode(c *ginext.Context)
	ListReservations(c *ginext.Context)
	ListGuestReservations(c *ginext.Context)
	ModifyReservation(c *ginext.Context)
	AddSpecialRequest(c *ginext.Context)
	ConfirmReservation(c *ginext.Context)
	CheckInReservation(c *ginext.Context)
	CheckOutReservation(c *ginext.Context)
	CancelReservation(c *ginext.Context)
	MarkNoShow(c *ginext.Context)

	CreateAvailability(c *ginext.Context)
	GetAvailability(c *ginext.Context)
	CheckAvailability(c *ginext.Context)
	ReserveRooms(c *ginext.Context)
	ReleaseRooms(c *ginext.Context)
	BlockRooms(c *ginext.Context)
	UnblockRooms(c *ginext.Context)

	AddWaitlistEntry(c *ginext.Context)
	GetWaitlistEntry(c *ginext.Context)
	ListGuestWaitlist(c *ginext.Context)
	GetRoomWaitlist(c *ginext.Context)
	ListActiveWaitlist(c *ginext.Context)
	ConvertWaitlistEntry(c *ginext.Context)
	ExpireWaitlistEntry(c *ginext.Context)
	ExtendWaitlistEntry(c *ginext.Context)
	UpgradeWaitlistPriority(c *ginext.Context)
	NotifyWaitlistEntry(c *ginext.Context)
	ListPendingNotifications(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Reservations
		api.POST("/reservations", h.CreateReservation)
		api.GET("/reservations", h.ListReservations)
		api.GET("/reservations/:id", h.GetReservation)
		api.GET("/reservations/code/:code", h.GetReservationByCode)
		api.GET("/reservations/guest/:guest_id", h.ListGuestReservations)
		api.PUT("/reservations/:id", h.ModifyReservation)
		api.POST("/reservations/:id/special-requests", h.AddSpecialRequest)
		api.POST("/reservations/:id/confirm", h.ConfirmReservation)
		api.POST("/reservations/:id/check-in", h.CheckInReservation)
		api.POST("/reservations/:id/check-out", h.CheckOutReservation)
		api.POST("/reservations/:id/cancel", h.CancelReservation)
		api.POST("/reservations/:id/no-show", h.MarkNoShow)

		// Availability
		api.POST("/availability", h.CreateAvailability)
		api.GET("/availability/:room_type_id/:date", h.GetAvailability)
		api.POST("/availability/check", h.CheckAvailability)
		api.POST("/availability/reserve", h.ReserveRooms)
		api.POST("/availability/release", h.ReleaseRooms)
		api.POST("/availability/block", h.BlockRooms)
		api.POST("/availability/unblock", h.UnblockRooms)

		// Waitlist
		api.POST("/waitlist", h.AddWaitlistEntry)
		api.GET("/waitlist/:id", h.GetWaitlistEntry)
		api.GET("/waitlist/guest/:guest_id", h.ListGuestWaitlist)
		api.GET("/waitlist/room/:room_type_id", h.GetRoomWaitlist)
		api.GET("/waitlist/active/entries", h.ListActiveWaitlist)
		api.GET("/waitlist/notify/pending", h.ListPendingNotifications)
		api.POST("/waitlist/:id/convert", h.ConvertWaitlistEntry)
		api.POST("/waitlist/:id/expire", h.ExpireWaitlistEntry)
		api.POST("/waitlist/:id/extend", h.ExtendWaitlistEntry)
		api.POST("/waitlist/:id/upgrade-priority", h.UpgradeWaitlistPriority)
		api.POST("/waitlist/:id/notify", h.NotifyWaitlistEntry)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
