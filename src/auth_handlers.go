package main

import (
	"net/http"

	"github.com/YinkaFoster/fostertours/src/config"
	"github.com/YinkaFoster/fostertours/src/controllers"
	"github.com/YinkaFoster/fostertours/src/middlewares"
	"github.com/gin-gonic/gin"
)

const sessionCookieMaxAge = config.SESSION_TTL_DAYS * 24 * 60 * 60

func authHandlers(g *gin.RouterGroup) {
	g.POST("/register", func(ctx *gin.Context) {
		val, status, err := controllers.AuthRegister(ctx)
		if err != nil {
			ctx.JSON(status, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(status, val)
	})

	g.POST("/login", func(ctx *gin.Context) {
		val, status, err := controllers.AuthLogin(ctx)
		if err != nil {
			ctx.JSON(status, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(status, val)
	})

	g.POST("/session", func(ctx *gin.Context) {
		val, status, err := controllers.AuthSession(ctx)
		if err != nil {
			ctx.JSON(status, gin.H{"error": err.Error()})
			return
		}
		token, _ := val["session_token"].(string)
		ctx.SetSameSite(http.SameSiteNoneMode)
		ctx.SetCookie(config.SESSION_COOKIE_NAME, token, sessionCookieMaxAge, "/", "", true, true)
		ctx.JSON(status, val)
	})

	g.GET("/me", middlewares.AuthMiddleware, func(ctx *gin.Context) {
		val, status, err := controllers.AuthMe(ctx)
		if err != nil {
			ctx.JSON(status, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(status, val)
	})

	g.POST("/logout", func(ctx *gin.Context) {
		val, status, err := controllers.AuthLogout(ctx)
		if err != nil {
			ctx.JSON(status, gin.H{"error": err.Error()})
			return
		}
		ctx.SetSameSite(http.SameSiteNoneMode)
		ctx.SetCookie(config.SESSION_COOKIE_NAME, "", -1, "/", "", true, true)
		ctx.JSON(status, val)
	})
}

func userHandlers(g *gin.RouterGroup) {
	g.GET("/:user_id/profile", middlewares.OptionalAuthMiddleware, func(ctx *gin.Context) {
		val, status, err := controllers.UserProfile(ctx)
		if err != nil {
			ctx.JSON(status, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(status, val)
	})

	g.PUT("/profile", middlewares.AuthMiddleware, func(ctx *gin.Context) {
		val, status, err := controllers.UpdateProfile(ctx)
		if err != nil {
			ctx.JSON(status, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(status, val)
	})

	g.PUT("/password", middlewares.AuthMiddleware, func(ctx *gin.Context) {
		val, status, err := controllers.ChangePassword(ctx)
		if err != nil {
			ctx.JSON(status, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(status, val)
	})
}
