package controllers

import (
	"errors"
	"net/http"

	"github.com/YinkaFoster/fostertours/src/db"
	"github.com/YinkaFoster/fostertours/src/models"
	"github.com/YinkaFoster/fostertours/src/types"
	"github.com/YinkaFoster/fostertours/src/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// UserProfile is the public view of a user, with follow counts relative to
// the caller (who may be anonymous).
func UserProfile(ctx *gin.Context) (val types.JSONB, status int, err error) {
	profileId := ctx.Param("user_id")
	callerId := ctx.GetString("id")

	d := db.GetDb()
	var user models.User
	if err := d.
		Where(&models.User{ID: profileId}).
		First(&user).
		Error; err != nil {
		return nil, http.StatusNotFound, errors.New("User not found")
	}

	var followers, following int64
	d.Model(&models.Follow{}).Where("following_id = ?", profileId).Count(&followers)
	d.Model(&models.Follow{}).Where("follower_id = ?", profileId).Count(&following)

	isFollowing := false
	if callerId != "" && callerId != profileId {
		var edge int64
		d.Model(&models.Follow{}).
			Where(&models.Follow{FollowerID: callerId, FollowingID: profileId}).
			Count(&edge)
		isFollowing = edge > 0
	}

	return types.JSONB{
		"user_id":         user.ID,
		"name":            fmtUserName(&user),
		"picture":         user.Picture,
		"bio":             user.Bio,
		"location":        user.Location,
		"website":         user.Website,
		"followers_count": followers,
		"following_count": following,
		"is_following":    isFollowing,
		"is_own_profile":  callerId == profileId,
		"created_at":      user.CreatedAt,
	}, http.StatusOK, nil
}

func UpdateProfile(ctx *gin.Context) (val types.JSONB, status int, err error) {
	userId := ctx.GetString("id")
	var body types.UpdateProfileRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return nil, http.StatusBadRequest, err
	}

	updates := map[string]any{}
	if body.Name != nil {
		updates["name"] = *body.Name
	}
	if body.Phone != nil {
		updates["phone"] = *body.Phone
	}
	if body.Bio != nil {
		updates["bio"] = *body.Bio
	}
	if body.Location != nil {
		updates["location"] = *body.Location
	}
	if body.Website != nil {
		updates["website"] = *body.Website
	}
	if body.Picture != nil {
		updates["picture"] = *body.Picture
	}
	if len(updates) == 0 {
		return nil, http.StatusBadRequest, errors.New("No valid fields to update")
	}

	d := db.GetDb()
	if err := d.
		Model(&models.User{}).
		Where("id = ?", userId).
		Updates(updates).
		Error; err != nil {
		return nil, http.StatusInternalServerError, err
	}
	return types.JSONB{"message": "Profile updated successfully"}, http.StatusOK, nil
}

func ChangePassword(ctx *gin.Context) (val types.JSONB, status int, err error) {
	userId := ctx.GetString("id")
	var body types.ChangePasswordRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return nil, http.StatusBadRequest, err
	}

	d := db.GetDb()
	err = d.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.
			Where(&models.User{ID: userId}).
			First(&user).
			Error; err != nil {
			return err
		}
		if user.Password == "" {
			return errors.New("OAuth users cannot change password")
		}
		if !utils.VerifyPassword(user.Password, body.CurrentPassword) {
			return errors.New("Current password is incorrect")
		}
		hashed, err := utils.HashPassword(body.NewPassword)
		if err != nil {
			return err
		}
		return tx.
			Model(&models.User{}).
			Where("id = ?", userId).
			Update("password", hashed).
			Error
	})
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	return types.JSONB{"message": "Password updated successfully"}, http.StatusOK, nil
}
