package middlewares

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/YinkaFoster/fostertours/src/config"
	"github.com/YinkaFoster/fostertours/src/db"
	"github.com/YinkaFoster/fostertours/src/models"
	"github.com/YinkaFoster/fostertours/src/types"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)


// resolveUser finds the caller from the session cookie first, then from a
// bearer token. The cookie wins when both are present.
func resolveUser(ctx *gin.Context) *models.User {
	d := db.GetDb()

	if cookie, err := ctx.Cookie(config.SESSION_COOKIE_NAME); err == nil && cookie != "" {
		var session models.UserSession
		if err := d.
			Where(&models.UserSession{SessionToken: cookie}).
			First(&session).
			Error; err == nil && session.ExpiresAt.After(time.Now()) {
			var user models.User
			if err := d.
				Where(&models.User{ID: session.UserID}).
				First(&user).
				Error; err == nil {
				return &user
			}
		}
	}

	bearerToken := ctx.Request.Header.Get("Authorization")
	if !strings.HasPrefix(bearerToken, "Bearer ") {
		return nil
	}
	reqToken := strings.Split(bearerToken, " ")[1]
	if reqToken == "" {
		return nil
	}
	claims := &types.Claims{}
	tkn, err := jwt.ParseWithClaims(reqToken, claims, func(t *jwt.Token) (any, error) {
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil {
		log.Printf("token error: %s\n", err.Error())
		return nil
	}
	if !tkn.Valid {
		return nil
	}
	var user models.User
	if err := d.
		Where(&models.User{ID: claims.Subject}).
		First(&user).
		Error; err != nil {
		return nil
	}
	return &user
}

func AuthMiddleware(ctx *gin.Context) {
	user := resolveUser(ctx)
	if user == nil {
		ctx.AbortWithStatusJSON(401, gin.H{"error": "Not authenticated"})
		return
	}
	ctx.Set("id", user.ID)
	ctx.Set("email", user.Email)
	ctx.Set("name", user.Name)
	ctx.Set("picture", user.Picture)
	ctx.Set("is_admin", user.IsAdmin)
}

// OptionalAuthMiddleware resolves the caller when credentials are present
// but never rejects the request.
func OptionalAuthMiddleware(ctx *gin.Context) {
	if user := resolveUser(ctx); user != nil {
		ctx.Set("id", user.ID)
		ctx.Set("email", user.Email)
		ctx.Set("name", user.Name)
		ctx.Set("picture", user.Picture)
		ctx.Set("is_admin", user.IsAdmin)
	}
}

func AdminMiddleware(ctx *gin.Context) {
	user := resolveUser(ctx)
	if user == nil {
		ctx.AbortWithStatusJSON(401, gin.H{"error": "Not authenticated"})
		return
	}
	if !user.IsAdmin {
		ctx.AbortWithStatusJSON(403, gin.H{"error": "Admin access required"})
		return
	}
	ctx.Set("id", user.ID)
	ctx.Set("email", user.Email)
	ctx.Set("name", user.Name)
	ctx.Set("is_admin", true)
}

func SecureHeaders(ctx *gin.Context) {
	ctx.Header("X-Content-Type-Options", "nosniff")
	ctx.Header("X-Frame-Options", "DENY")
	ctx.Header("Referrer-Policy", "strict-origin-when-cross-origin")
	ctx.Next()
}
