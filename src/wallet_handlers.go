package main

import (
	"fmt"
	"net/http"

	"github.com/YinkaFoster/fostertours/src/db"
	"github.com/YinkaFoster/fostertours/src/models"
	"github.com/YinkaFoster/fostertours/src/models/scopes"
	"github.com/YinkaFoster/fostertours/src/types"
	"github.com/YinkaFoster/fostertours/src/utils"
	"github.com/gin-gonic/gin"
)

func walletHandlers(g *gin.RouterGroup) {
	g.GET("", func(ctx *gin.Context) {
		userId := ctx.GetString("id")
		conn := db.GetDb()

		var user models.User
		if err := conn.Scopes(scopes.WithID(userId)).First(&user).Error; err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		transactions := make([]models.WalletTransaction, 0)
		if err := conn.
			Scopes(scopes.OwnedBy(userId), scopes.NewestFirst).
			Limit(20).
			Find(&transactions).Error; err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{
			"balance":      user.WalletBalance,
			"transactions": transactions,
		})
	})

	g.POST("/topup", func(ctx *gin.Context) {
		var body types.WalletTopUpRequestBody
		if err := ctx.BindJSON(&body); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid amount"})
			return
		}
		method := body.PaymentMethod
		if method == "" {
			method = "paystack"
		}

		transaction := models.WalletTransaction{
			ID:          utils.GenerateID("wtx", 12),
			UserID:      ctx.GetString("id"),
			Amount:      body.Amount,
			Type:        types.WALLET_CREDIT,
			Description: fmt.Sprintf("Wallet top-up via %s", method),
			Status:      types.TRANSACTION_PENDING,
		}
		if err := db.GetDb().Create(&transaction).Error; err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{
			"transaction_id": transaction.ID,
			"amount":         transaction.Amount,
			"payment_method": method,
			"status":         transaction.Status,
		})
	})
}
