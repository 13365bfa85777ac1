package main

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/YinkaFoster/fostertours/src/config"
	"github.com/YinkaFoster/fostertours/src/db"
	"github.com/YinkaFoster/fostertours/src/lib"
	"github.com/YinkaFoster/fostertours/src/models"
	"github.com/YinkaFoster/fostertours/src/types"
	"github.com/YinkaFoster/fostertours/src/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func paymentHandlers(g *gin.RouterGroup) {
	g.POST("/paystack/initialize", func(ctx *gin.Context) {
		var body types.PaystackInitializeRequestBody
		if err := ctx.BindJSON(&body); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		userId := ctx.GetString("id")
		reference := utils.PaystackReference()

		record := models.PaymentTransaction{
			ID:            utils.GenerateID("ptx", 12),
			Reference:     reference,
			UserID:        userId,
			BookingID:     body.BookingID,
			Email:         body.Email,
			Amount:        body.Amount,
			Status:        types.TRANSACTION_PENDING,
			PaymentMethod: "paystack",
			Purpose:       types.PURPOSE_BOOKING,
			IsMock:        !config.PaystackLiveMode(),
		}

		if config.PaystackLiveMode() {
			init, err := lib.PaystackInitialize(body.Email, reference, body.Amount)
			if err != nil {
				log.Printf("Paystack initialize failed: %s\n", err.Error())
				ctx.JSON(http.StatusBadGateway, gin.H{"error": "Payment service unavailable"})
				return
			}
			if err := db.GetDb().Create(&record).Error; err != nil {
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{
				"status":  true,
				"message": "Payment initialized",
				"data": gin.H{
					"authorization_url": init.AuthorizationURL,
					"access_code":       init.AccessCode,
					"reference":         reference,
				},
			})
			return
		}

		if err := db.GetDb().Create(&record).Error; err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{
			"status":  true,
			"message": "Payment initialized (Mock Mode)",
			"data": gin.H{
				"authorization_url": fmt.Sprintf("/booking/checkout/paystack-mock?reference=%s&amount=%v&email=%s", reference, body.Amount, body.Email),
				"access_code":       utils.GenerateAccessCode(),
				"reference":         reference,
			},
			"is_mock": true,
		})
	})

	g.POST("/paystack/verify", func(ctx *gin.Context) {
		var body struct {
			Reference string `json:"reference" binding:"required"`
		}
		if err := ctx.BindJSON(&body); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if config.PaystackLiveMode() {
			status, err := lib.PaystackVerify(body.Reference)
			if err != nil {
				log.Printf("Paystack verify failed: %s\n", err.Error())
				ctx.JSON(http.StatusBadGateway, gin.H{"error": "Payment verification service unavailable"})
				return
			}
			if status != "success" {
				ctx.JSON(http.StatusOK, gin.H{
					"status":  false,
					"message": "Payment verification failed",
					"data":    gin.H{"reference": body.Reference, "status": status},
				})
				return
			}
			txn, _, err := utils.SettlePaymentTransaction(body.Reference)
			if err != nil {
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{
				"status":  true,
				"message": "Payment verified successfully",
				"data":    gin.H{"reference": txn.Reference, "amount": txn.Amount, "status": txn.Status},
			})
			return
		}

		txn, _, err := utils.SettlePaymentTransaction(body.Reference)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Payment record not found"})
			return
		}
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{
			"status":  true,
			"message": "Payment verified successfully (Mock Mode)",
			"data": gin.H{
				"reference": txn.Reference,
				"amount":    txn.Amount,
				"status":    txn.Status,
				"is_mock":   true,
			},
		})
	})

	g.POST("/paystack/mock-complete", func(ctx *gin.Context) {
		reference := ctx.Query("reference")
		if reference == "" {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "reference is required"})
			return
		}
		var record models.PaymentTransaction
		err := db.GetDb().
			Where(&models.PaymentTransaction{Reference: reference}).
			First(&record).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Payment record not found"})
			return
		}
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if record.UserID != ctx.GetString("id") {
			ctx.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized"})
			return
		}
		txn, _, err := utils.SettlePaymentTransaction(reference)
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{
			"status":     true,
			"message":    "Mock payment completed successfully",
			"booking_id": txn.BookingID,
			"reference":  txn.Reference,
		})
	})

	g.POST("/stripe/checkout", func(ctx *gin.Context) {
		var body types.StripeCheckoutRequestBody
		if err := ctx.BindJSON(&body); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		userId := ctx.GetString("id")

		purpose := types.PURPOSE_BOOKING
		productName := fmt.Sprintf("%s booking", utils.TitleCase(body.BookingType))
		if body.BookingType == "wallet" {
			purpose = types.PURPOSE_WALLET
			productName = "Wallet top-up"
		}
		metadata := map[string]string{
			"booking_type": body.BookingType,
			"booking_id":   body.BookingID,
			"user_id":      userId,
		}
		if purpose == types.PURPOSE_WALLET && body.WalletTransactionID != "" {
			metadata["wallet_transaction_id"] = body.WalletTransactionID
		}

		session, err := lib.CreateCheckoutSession(body.Origin, productName, body.Amount, metadata)
		if err != nil {
			log.Printf("Stripe checkout failed: %s\n", err.Error())
			ctx.JSON(http.StatusBadGateway, gin.H{"error": "Payment service unavailable"})
			return
		}

		record := models.PaymentTransaction{
			ID:            utils.GenerateID("ptx", 12),
			Reference:     session.ID,
			UserID:        userId,
			BookingID:     body.BookingID,
			Amount:        body.Amount,
			Currency:      "usd",
			Status:        types.TRANSACTION_INITIATED,
			PaymentMethod: "stripe",
			Purpose:       purpose,
			Metadata: types.JSONB{
				"booking_type":          body.BookingType,
				"booking_id":            body.BookingID,
				"user_id":               userId,
				"wallet_transaction_id": body.WalletTransactionID,
			},
		}
		if err := db.GetDb().Create(&record).Error; err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"url": session.URL, "session_id": session.ID})
	})

}

func paymentConfigHandlers(g *gin.RouterGroup) {
	g.GET("/stripe/status/:session_id", func(ctx *gin.Context) {
		sessionId := ctx.Param("session_id")
		session, err := lib.RetrieveCheckoutSession(sessionId)
		if err != nil {
			log.Printf("Stripe status lookup failed: %s\n", err.Error())
			ctx.JSON(http.StatusBadGateway, gin.H{"error": "Payment service unavailable"})
			return
		}
		if session.PaymentStatus == "paid" {
			if _, _, err := utils.SettlePaymentTransaction(sessionId); err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
		}
		ctx.JSON(http.StatusOK, gin.H{
			"status":         session.Status,
			"payment_status": session.PaymentStatus,
			"amount_total":   session.AmountTotal,
			"currency":       session.Currency,
		})
	})

	g.GET("/config", func(ctx *gin.Context) {
		var publicKey any
		if pk := config.PaystackPublicKey(); pk != "" {
			publicKey = pk
		}
		ctx.JSON(http.StatusOK, gin.H{
			"paystack_public_key": publicKey,
			"is_mock_mode":        !config.PaystackLiveMode(),
			"supported_methods":   []string{"paystack", "wallet", "stripe"},
		})
	})
}
