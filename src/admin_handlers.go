package main

import (
	"net/http"

	"github.com/YinkaFoster/fostertours/src/db"
	"github.com/YinkaFoster/fostertours/src/models"
	"github.com/YinkaFoster/fostertours/src/models/scopes"
	"github.com/YinkaFoster/fostertours/src/types"
	"github.com/YinkaFoster/fostertours/src/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func selectUserSummary(conn *gorm.DB) *gorm.DB {
	return conn.Select("id", "name", "email")
}

func adminHandlers(g *gin.RouterGroup) {
	g.GET("/stats", func(ctx *gin.Context) {
		conn := db.GetDb()

		var usersCount, bookingsCount, ordersCount, itinerariesCount int64
		conn.Model(&models.User{}).Count(&usersCount)
		conn.Model(&models.Booking{}).Count(&bookingsCount)
		conn.Model(&models.StoreOrder{}).Count(&ordersCount)
		conn.Model(&models.Itinerary{}).Count(&itinerariesCount)

		var bookingsRevenue, ordersRevenue float64
		conn.Model(&models.Booking{}).
			Where("payment_status = ?", types.PAYMENT_PAID).
			Select("COALESCE(SUM(total_amount), 0)").
			Scan(&bookingsRevenue)
		conn.Model(&models.StoreOrder{}).
			Where("payment_status = ?", types.PAYMENT_PAID).
			Select("COALESCE(SUM(total), 0)").
			Scan(&ordersRevenue)

		recentUsers := make([]models.User, 0, 5)
		conn.Scopes(scopes.NewestFirst).Limit(5).Find(&recentUsers)
		publicRecent := make([]types.JSONB, 0, len(recentUsers))
		for i := range recentUsers {
			publicRecent = append(publicRecent, utils.PublicUser(&recentUsers[i]))
		}

		recentBookings := make([]models.Booking, 0, 5)
		conn.Scopes(scopes.NewestFirst).Limit(5).Find(&recentBookings)

		ctx.JSON(http.StatusOK, gin.H{
			"stats": gin.H{
				"users":       usersCount,
				"bookings":    bookingsCount,
				"orders":      ordersCount,
				"itineraries": itinerariesCount,
				"revenue":     bookingsRevenue + ordersRevenue,
			},
			"recent_users":    publicRecent,
			"recent_bookings": recentBookings,
		})
	})

	g.GET("/users", func(ctx *gin.Context) {
		page := intQuery(ctx, "page", 1, 0)
		limit := intQuery(ctx, "limit", 20, 100)
		search := ctx.Query("search")
		conn := db.GetDb()

		query := conn.Model(&models.User{})
		if search != "" {
			pattern := "%" + search + "%"
			query = query.Where("name ILIKE ? OR email ILIKE ?", pattern, pattern)
		}
		var total int64
		query.Count(&total)

		users := make([]models.User, 0)
		if err := query.
			Scopes(scopes.Paginate(page, limit), scopes.NewestFirst).
			Find(&users).Error; err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		publicUsers := make([]types.JSONB, 0, len(users))
		for i := range users {
			publicUsers = append(publicUsers, utils.PublicUser(&users[i]))
		}
		ctx.JSON(http.StatusOK, gin.H{
			"users": publicUsers,
			"total": total,
			"page":  page,
			"pages": (total + int64(limit) - 1) / int64(limit),
		})
	})

	g.PUT("/users/:id", func(ctx *gin.Context) {
		var body types.AdminUpdateUserRequestBody
		if err := ctx.BindJSON(&body); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		updates := map[string]any{}
		if body.Name != nil {
			updates["name"] = *body.Name
		}
		if body.Email != nil {
			updates["email"] = *body.Email
		}
		if body.Phone != nil {
			updates["phone"] = *body.Phone
		}
		if body.IsAdmin != nil {
			updates["is_admin"] = *body.IsAdmin
		}
		if body.WalletBalance != nil {
			updates["wallet_balance"] = *body.WalletBalance
		}
		if len(updates) == 0 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "No valid fields to update"})
			return
		}
		res := db.GetDb().
			Model(&models.User{}).
			Where("id = ?", ctx.Param("id")).
			Updates(updates)
		if res.Error != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": res.Error.Error()})
			return
		}
		if res.RowsAffected == 0 {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"message": "User updated successfully"})
	})

	g.DELETE("/users/:id", func(ctx *gin.Context) {
		targetId := ctx.Param("id")
		if targetId == ctx.GetString("id") {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Cannot delete yourself"})
			return
		}
		err := db.GetDb().Transaction(func(tx *gorm.DB) error {
			// Hard delete so the email can register again.
			res := tx.Unscoped().Where("id = ?", targetId).Delete(&models.User{})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
			if err := tx.Unscoped().Where("user_id = ?", targetId).Delete(&models.Booking{}).Error; err != nil {
				return err
			}
			if err := tx.Unscoped().Where("user_id = ?", targetId).Delete(&models.Cart{}).Error; err != nil {
				return err
			}
			return tx.Unscoped().
				Where("follower_id = ? OR following_id = ?", targetId, targetId).
				Delete(&models.Follow{}).Error
		})
		if err == gorm.ErrRecordNotFound {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
	})

	g.GET("/bookings", func(ctx *gin.Context) {
		page := intQuery(ctx, "page", 1, 0)
		limit := intQuery(ctx, "limit", 20, 100)
		conn := db.GetDb()

		query := conn.Model(&models.Booking{})
		if status := ctx.Query("status"); status != "" {
			query = query.Where("status = ?", status)
		}
		if bookingType := ctx.Query("booking_type"); bookingType != "" {
			query = query.Where("booking_type = ?", bookingType)
		}
		var total int64
		query.Count(&total)

		bookings := make([]models.Booking, 0)
		if err := query.
			Preload("User", selectUserSummary).
			Scopes(scopes.Paginate(page, limit), scopes.NewestFirst).
			Find(&bookings).Error; err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{
			"bookings": bookings,
			"total":    total,
			"page":     page,
			"pages":    (total + int64(limit) - 1) / int64(limit),
		})
	})

	g.PUT("/bookings/:id", func(ctx *gin.Context) {
		var body types.AdminUpdateBookingRequestBody
		if err := ctx.BindJSON(&body); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		updates := map[string]any{}
		if body.Status != nil {
			updates["status"] = *body.Status
		}
		if body.PaymentStatus != nil {
			updates["payment_status"] = *body.PaymentStatus
		}
		if len(updates) == 0 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "No valid fields to update"})
			return
		}
		res := db.GetDb().
			Model(&models.Booking{}).
			Where("id = ?", ctx.Param("id")).
			Updates(updates)
		if res.Error != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": res.Error.Error()})
			return
		}
		if res.RowsAffected == 0 {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"message": "Booking updated successfully"})
	})

	g.PUT("/bookings/:id/status", func(ctx *gin.Context) {
		var body struct {
			Status string `json:"status" binding:"required"`
		}
		if err := ctx.BindJSON(&body); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		switch types.BookingStatus(body.Status) {
		case types.BOOKING_PENDING, types.BOOKING_CONFIRMED, types.BOOKING_CANCELED, types.BOOKING_COMPLETED:
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
			return
		}
		res := db.GetDb().
			Model(&models.Booking{}).
			Where("id = ?", ctx.Param("id")).
			Update("status", body.Status)
		if res.Error != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": res.Error.Error()})
			return
		}
		if res.RowsAffected == 0 {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"message": "Booking status updated"})
	})

	g.GET("/orders", func(ctx *gin.Context) {
		page := intQuery(ctx, "page", 1, 0)
		limit := intQuery(ctx, "limit", 20, 100)
		conn := db.GetDb()

		query := conn.Model(&models.StoreOrder{})
		if status := ctx.Query("status"); status != "" {
			query = query.Where("status = ?", status)
		}
		var total int64
		query.Count(&total)

		orders := make([]models.StoreOrder, 0)
		if err := query.
			Preload("User", selectUserSummary).
			Scopes(scopes.Paginate(page, limit), scopes.NewestFirst).
			Find(&orders).Error; err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{
			"orders": orders,
			"total":  total,
			"page":   page,
			"pages":  (total + int64(limit) - 1) / int64(limit),
		})
	})

	g.PUT("/orders/:id", func(ctx *gin.Context) {
		var body types.AdminUpdateBookingRequestBody
		if err := ctx.BindJSON(&body); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		updates := map[string]any{}
		if body.Status != nil {
			updates["status"] = *body.Status
		}
		if body.PaymentStatus != nil {
			updates["payment_status"] = *body.PaymentStatus
		}
		if len(updates) == 0 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "No valid fields to update"})
			return
		}
		res := db.GetDb().
			Model(&models.StoreOrder{}).
			Where("id = ?", ctx.Param("id")).
			Updates(updates)
		if res.Error != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": res.Error.Error()})
			return
		}
		if res.RowsAffected == 0 {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"message": "Order updated successfully"})
	})

	g.POST("/make-admin/:id", func(ctx *gin.Context) {
		res := db.GetDb().
			Model(&models.User{}).
			Where("id = ?", ctx.Param("id")).
			Update("is_admin", true)
		if res.Error != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": res.Error.Error()})
			return
		}
		if res.RowsAffected == 0 {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"message": "User is now an admin"})
	})

	g.POST("/revoke-admin/:id", func(ctx *gin.Context) {
		targetId := ctx.Param("id")
		if targetId == ctx.GetString("id") {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Cannot revoke your own admin status"})
			return
		}
		res := db.GetDb().
			Model(&models.User{}).
			Where("id = ?", targetId).
			Update("is_admin", false)
		if res.Error != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": res.Error.Error()})
			return
		}
		if res.RowsAffected == 0 {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"message": "Admin privileges revoked"})
	})
}
