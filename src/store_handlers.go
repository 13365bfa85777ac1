package main

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/YinkaFoster/fostertours/src/db"
	"github.com/YinkaFoster/fostertours/src/models"
	"github.com/YinkaFoster/fostertours/src/models/scopes"
	"github.com/YinkaFoster/fostertours/src/types"
	"github.com/YinkaFoster/fostertours/src/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func cartHandlers(g *gin.RouterGroup) {
	g.GET("", func(ctx *gin.Context) {
		var cart models.Cart
		err := db.GetDb().
			Where("user_id = ?", ctx.GetString("id")).
			First(&cart).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusOK, gin.H{"items": types.JSONBArray{}, "total": 0})
			return
		}
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{
			"user_id": cart.UserID,
			"items":   cart.Items,
			"total":   utils.CartTotal(cart.Items),
		})
	})

	g.POST("/add", func(ctx *gin.Context) {
		var body types.CartAddRequestBody
		if err := ctx.BindJSON(&body); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if body.Quantity < 1 {
			body.Quantity = 1
		}
		userId := ctx.GetString("id")

		var cart models.Cart
		err := db.GetDb().Transaction(func(tx *gorm.DB) error {
			err := tx.Where("user_id = ?", userId).First(&cart).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				cart = models.Cart{UserID: userId, Items: types.JSONBArray{}}
			} else if err != nil {
				return err
			}

			merged := false
			for _, raw := range cart.Items {
				item, ok := raw.(map[string]any)
				if !ok {
					continue
				}
				if item["product_id"] == body.ProductID {
					qty, _ := item["quantity"].(float64)
					item["quantity"] = qty + float64(body.Quantity)
					merged = true
					break
				}
			}
			if !merged {
				cart.Items = append(cart.Items, map[string]any{
					"product_id": body.ProductID,
					"quantity":   body.Quantity,
				})
			}
			return tx.Save(&cart).Error
		})
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"message": "Item added to cart", "items": cart.Items})
	})

	g.DELETE("/remove/:product_id", func(ctx *gin.Context) {
		userId := ctx.GetString("id")
		productId := ctx.Param("product_id")

		err := db.GetDb().Transaction(func(tx *gorm.DB) error {
			var cart models.Cart
			err := tx.Where("user_id = ?", userId).First(&cart).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			if err != nil {
				return err
			}
			kept := make(types.JSONBArray, 0, len(cart.Items))
			for _, raw := range cart.Items {
				if item, ok := raw.(map[string]any); ok && item["product_id"] == productId {
					continue
				}
				kept = append(kept, raw)
			}
			cart.Items = kept
			return tx.Save(&cart).Error
		})
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"message": "Item removed from cart"})
	})

	g.DELETE("/clear", func(ctx *gin.Context) {
		if err := db.GetDb().
			Where("user_id = ?", ctx.GetString("id")).
			Delete(&models.Cart{}).Error; err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	})
}

func orderHandlers(g *gin.RouterGroup) {
	g.POST("", func(ctx *gin.Context) {
		var body types.CreateOrderRequestBody
		if err := ctx.BindJSON(&body); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		userId := ctx.GetString("id")
		paymentMethod := body.PaymentMethod
		if paymentMethod == "" {
			paymentMethod = "stripe"
		}

		order := models.StoreOrder{
			ID:              utils.GenerateID("ord", 12),
			UserID:          userId,
			Items:           body.Items,
			Subtotal:        body.Subtotal,
			Shipping:        body.Shipping,
			Total:           body.Total,
			ShippingAddress: body.ShippingAddress,
			PaymentMethod:   paymentMethod,
			WalletUsed:      body.WalletUsed,
			Status:          types.ORDER_PENDING,
			PaymentStatus:   types.PAYMENT_PENDING,
		}

		err := db.GetDb().Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&order).Error; err != nil {
				return err
			}
			if body.WalletUsed > 0 {
				description := fmt.Sprintf("Store order payment - %s", order.ID)
				if err := utils.DebitWallet(tx, userId, body.WalletUsed, description, order.ID); err != nil {
					return err
				}
			}
			return tx.Where("user_id = ?", userId).Delete(&models.Cart{}).Error
		})
		if errors.Is(err, utils.ErrInsufficientBalance) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Insufficient wallet balance"})
			return
		}
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{
			"order_id": order.ID,
			"status":   order.Status,
			"message":  "Order created successfully",
		})
	})

	g.GET("", func(ctx *gin.Context) {
		orders := make([]models.StoreOrder, 0)
		if err := db.GetDb().
			Scopes(scopes.OwnedBy(ctx.GetString("id")), scopes.NewestFirst).
			Limit(50).
			Find(&orders).Error; err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"orders": orders})
	})

	g.GET("/:id", func(ctx *gin.Context) {
		var params types.SimpleIDParams
		if err := ctx.BindUri(&params); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		var order models.StoreOrder
		err := db.GetDb().
			Scopes(scopes.WithID(params.ID), scopes.OwnedBy(ctx.GetString("id"))).
			First(&order).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusOK, order)
	})
}
