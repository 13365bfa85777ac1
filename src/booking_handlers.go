package main

import (
	"errors"
	"net/http"

	"github.com/YinkaFoster/fostertours/src/db"
	"github.com/YinkaFoster/fostertours/src/models"
	"github.com/YinkaFoster/fostertours/src/models/scopes"
	"github.com/YinkaFoster/fostertours/src/types"
	"github.com/YinkaFoster/fostertours/src/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func bookingHandlers(g *gin.RouterGroup) {
	g.GET("", func(ctx *gin.Context) {
		userId := ctx.GetString("id")
		bookings := make([]models.Booking, 0)
		if err := db.GetDb().
			Scopes(scopes.OwnedBy(userId), scopes.NewestFirst).
			Limit(100).
			Find(&bookings).Error; err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"bookings": bookings})
	})

	g.POST("", func(ctx *gin.Context) {
		var body types.CreateBookingRequestBody
		if err := ctx.BindJSON(&body); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		bookingType := types.BookingType(body.BookingType)
		if !bookingType.Valid() {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking type"})
			return
		}

		booking := models.Booking{
			ID:          utils.GenerateID("bk", 12),
			UserID:      ctx.GetString("id"),
			BookingType: bookingType,
			ItemID:      body.ItemID,
			ItemDetails: body.ItemDetails,
			TotalAmount: body.TotalAmount,
			Status:      types.BOOKING_PENDING,
			PaymentStatus: types.PAYMENT_PENDING,
		}
		if err := db.GetDb().Create(&booking).Error; err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{
			"booking_id": booking.ID,
			"status":     booking.Status,
			"message":    "Booking created successfully",
		})
	})

	g.GET("/:id", func(ctx *gin.Context) {
		var params types.SimpleIDParams
		if err := ctx.BindUri(&params); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		var booking models.Booking
		err := db.GetDb().
			Scopes(scopes.WithID(params.ID), scopes.OwnedBy(ctx.GetString("id"))).
			First(&booking).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
			return
		}
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusOK, booking)
	})
}
