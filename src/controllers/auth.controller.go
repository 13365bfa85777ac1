package controllers

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/YinkaFoster/fostertours/src/config"
	"github.com/YinkaFoster/fostertours/src/db"
	"github.com/YinkaFoster/fostertours/src/models"
	"github.com/YinkaFoster/fostertours/src/types"
	"github.com/YinkaFoster/fostertours/src/utils"
	"github.com/gin-gonic/gin"
	"github.com/tidwall/gjson"
	"gorm.io/gorm"
)

var sessionHTTP = &http.Client{Timeout: 30 * time.Second}

func AuthRegister(ctx *gin.Context) (val types.JSONB, status int, err error) {
	var body types.RegisterRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return nil, http.StatusBadRequest, err
	}

	d := db.GetDb()
	var user models.User
	err = d.Transaction(func(tx *gorm.DB) error {
		var existing models.User
		if err := tx.
			Model(&models.User{}).
			Select("id").
			Where("email = ?", body.Email).
			First(&existing).
			Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
		}
		if existing.ID != "" {
			return errors.New("Email already registered")
		}
		hashed, err := utils.HashPassword(body.Password)
		if err != nil {
			return err
		}
		user = models.User{
			ID:       utils.GenerateID("user", 12),
			Email:    body.Email,
			Password: hashed,
			Name:     body.Name,
			Phone:    body.Phone,
		}
		return tx.Create(&user).Error
	})
	if err != nil {
		return nil, http.StatusBadRequest, err
	}

	token, err := utils.GenerateJWT(&user)
	if err != nil {
		return nil, http.StatusInternalServerError, err
	}
	return types.JSONB{
		"access_token": token,
		"token_type":   "bearer",
		"user":         utils.PublicUser(&user),
	}, http.StatusOK, nil
}

func AuthLogin(ctx *gin.Context) (val types.JSONB, status int, err error) {
	var body types.LoginRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return nil, http.StatusBadRequest, err
	}

	d := db.GetDb()
	var user models.User
	if err := d.
		Where(&models.User{Email: body.Email}).
		First(&user).
		Error; err != nil {
		return nil, http.StatusUnauthorized, errors.New("Invalid credentials")
	}
	if user.Password == "" || !utils.VerifyPassword(user.Password, body.Password) {
		return nil, http.StatusUnauthorized, errors.New("Invalid credentials")
	}

	token, err := utils.GenerateJWT(&user)
	if err != nil {
		return nil, http.StatusInternalServerError, err
	}
	return types.JSONB{
		"access_token": token,
		"token_type":   "bearer",
		"user":         utils.PublicUser(&user),
	}, http.StatusOK, nil
}

// AuthSession exchanges an OAuth session_id for a session token, creating
// the user on first sight, and hands the token back for the cookie.
func AuthSession(ctx *gin.Context) (val types.JSONB, status int, err error) {
	var body types.SessionExchangeRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return nil, http.StatusBadRequest, err
	}

	req, err := http.NewRequest(http.MethodGet, config.SessionExchangeURL(), nil)
	if err != nil {
		return nil, http.StatusInternalServerError, err
	}
	req.Header.Set("X-Session-ID", body.SessionID)
	res, err := sessionHTTP.Do(req)
	if err != nil {
		log.Printf("Auth exchange error: %s\n", err.Error())
		return nil, http.StatusInternalServerError, errors.New("Authentication service error")
	}
	defer res.Body.Close()
	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, http.StatusInternalServerError, err
	}
	if res.StatusCode != http.StatusOK {
		return nil, http.StatusUnauthorized, errors.New("Invalid session")
	}
	authData := gjson.ParseBytes(raw)
	email := authData.Get("email").String()
	name := authData.Get("name").String()
	picture := authData.Get("picture").String()
	sessionToken := authData.Get("session_token").String()
	if email == "" || sessionToken == "" {
		return nil, http.StatusUnauthorized, errors.New("Invalid session")
	}

	d := db.GetDb()
	var user models.User
	err = d.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where(&models.User{Email: email}).
			First(&user).
			Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			user = models.User{
				ID:      utils.GenerateID("user", 12),
				Email:   email,
				Name:    name,
				Picture: picture,
			}
			if err := tx.Create(&user).Error; err != nil {
				return err
			}
		} else {
			if err := tx.
				Model(&models.User{}).
				Where("id = ?", user.ID).
				Updates(map[string]any{"name": name, "picture": picture}).
				Error; err != nil {
				return err
			}
		}
		session := models.UserSession{
			UserID:       user.ID,
			SessionToken: sessionToken,
			ExpiresAt:    time.Now().Add(config.SESSION_TTL_DAYS * 24 * time.Hour),
		}
		return tx.Create(&session).Error
	})
	if err != nil {
		return nil, http.StatusInternalServerError, err
	}

	return types.JSONB{
		"user":          utils.PublicUser(&user),
		"session_token": sessionToken,
	}, http.StatusOK, nil
}

func AuthMe(ctx *gin.Context) (val types.JSONB, status int, err error) {
	userId := ctx.GetString("id")
	d := db.GetDb()
	var user models.User
	if err := d.
		Where(&models.User{ID: userId}).
		First(&user).
		Error; err != nil {
		return nil, http.StatusUnauthorized, errors.New("Not authenticated")
	}
	return utils.PublicUser(&user), http.StatusOK, nil
}

func AuthLogout(ctx *gin.Context) (val types.JSONB, status int, err error) {
	if cookie, err := ctx.Cookie(config.SESSION_COOKIE_NAME); err == nil && cookie != "" {
		d := db.GetDb()
		if err := d.
			Where("session_token = ?", cookie).
			Delete(&models.UserSession{}).
			Error; err != nil {
			log.Printf("Error deleting session: %s\n", err.Error())
		}
	}
	return types.JSONB{"message": "Logged out successfully"}, http.StatusOK, nil
}

func fmtUserName(user *models.User) string {
	if user.Name != "" {
		return user.Name
	}
	return fmt.Sprintf("user %s", user.ID)
}
