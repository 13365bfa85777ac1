package main

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"os"

	"github.com/YinkaFoster/fostertours/src/utils"
	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
	"gorm.io/gorm"
)

func stripeWebhookRoute(g *gin.Engine) {
	apiv1 := apiv1Group(g)
	apiv1.POST("/webhook/stripe", func(ctx *gin.Context) {
		payload, err := io.ReadAll(ctx.Request.Body)
		if err != nil {
			log.Printf("Error reading request body: %s\n", err.Error())
			ctx.Status(http.StatusServiceUnavailable)
			return
		}
		whsecret := os.Getenv("STRIPE_WEBHOOK_SECRET")
		event, err := webhook.ConstructEvent(payload, ctx.GetHeader("Stripe-Signature"), whsecret)
		if err != nil {
			log.Printf("Error verifying webhook signature: %s\n", err.Error())
			ctx.Status(http.StatusBadRequest)
			return
		}
		log.Printf("[StripeEvent] %s\n", event.Type)
		switch event.Type {
		case "checkout.session.completed", "checkout.session.async_payment_succeeded":
			var session stripe.CheckoutSession
			if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
				log.Printf("[Stripe] Error parsing CheckoutSession: %s\n", err.Error())
				ctx.JSON(http.StatusOK, gin.H{"status": "error"})
				return
			}
			if session.PaymentStatus != stripe.CheckoutSessionPaymentStatusPaid {
				break
			}
			if _, _, err := utils.SettlePaymentTransaction(session.ID); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					log.Printf("[Stripe] No transaction for session %s\n", session.ID)
					break
				}
				log.Printf("[Stripe] Error settling session %s: %s\n", session.ID, err.Error())
				ctx.JSON(http.StatusOK, gin.H{"status": "error"})
				return
			}
		}
		ctx.JSON(http.StatusOK, gin.H{"status": "success"})
	})
}
