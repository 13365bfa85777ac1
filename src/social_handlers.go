package main

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/YinkaFoster/fostertours/src/db"
	"github.com/YinkaFoster/fostertours/src/lib"
	"github.com/YinkaFoster/fostertours/src/models"
	"github.com/YinkaFoster/fostertours/src/types"
	"github.com/YinkaFoster/fostertours/src/utils"
	"github.com/gin-gonic/gin"
	"github.com/go-co-op/gocron/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func socialHandlers(g *gin.RouterGroup) {
	g.POST("/follow/:user_id", func(ctx *gin.Context) {
		userId := ctx.GetString("id")
		targetId := ctx.Param("user_id")
		if userId == targetId {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Cannot follow yourself"})
			return
		}
		conn := db.GetDb()
		var existing int64
		conn.Model(&models.Follow{}).
			Where("follower_id = ? AND following_id = ?", userId, targetId).
			Count(&existing)
		if existing > 0 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Already following this user"})
			return
		}
		follow := models.Follow{FollowerID: userId, FollowingID: targetId}
		if err := conn.Create(&follow).Error; err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"message": "Successfully followed user", "following": true})
	})

	g.DELETE("/follow/:user_id", func(ctx *gin.Context) {
		res := db.GetDb().
			Where("follower_id = ? AND following_id = ?", ctx.GetString("id"), ctx.Param("user_id")).
			Delete(&models.Follow{})
		if res.Error != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": res.Error.Error()})
			return
		}
		if res.RowsAffected == 0 {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Not following this user"})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"message": "Successfully unfollowed user", "following": false})
	})

	g.POST("/like/:post_id", func(ctx *gin.Context) {
		userId := ctx.GetString("id")
		postId := ctx.Param("post_id")
		conn := db.GetDb()

		var existing int64
		conn.Model(&models.PostLike{}).
			Where("post_id = ? AND user_id = ?", postId, userId).
			Count(&existing)
		if existing > 0 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Already liked this post"})
			return
		}
		like := models.PostLike{PostID: postId, UserID: userId}
		if err := conn.Create(&like).Error; err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		var likesCount int64
		conn.Model(&models.PostLike{}).Where("post_id = ?", postId).Count(&likesCount)
		ctx.JSON(http.StatusOK, gin.H{"message": "Post liked", "liked": true, "likes_count": likesCount})
	})

	g.DELETE("/like/:post_id", func(ctx *gin.Context) {
		postId := ctx.Param("post_id")
		conn := db.GetDb()
		res := conn.
			Where("post_id = ? AND user_id = ?", postId, ctx.GetString("id")).
			Delete(&models.PostLike{})
		if res.Error != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": res.Error.Error()})
			return
		}
		if res.RowsAffected == 0 {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Haven't liked this post"})
			return
		}
		var likesCount int64
		conn.Model(&models.PostLike{}).Where("post_id = ?", postId).Count(&likesCount)
		ctx.JSON(http.StatusOK, gin.H{"message": "Post unliked", "liked": false, "likes_count": likesCount})
	})

	g.POST("/comment/:post_id", func(ctx *gin.Context) {
		var body types.CommentRequestBody
		if err := ctx.BindJSON(&body); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Comment cannot be empty"})
			return
		}
		comment := models.PostComment{
			ID:        utils.GenerateID("cmt", 12),
			PostID:    ctx.Param("post_id"),
			UserID:    ctx.GetString("id"),
			UserName:  ctx.GetString("name"),
			UserImage: ctx.GetString("picture"),
			Content:   body.Content,
		}
		if err := db.GetDb().Create(&comment).Error; err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"message": "Comment added", "comment": comment})
	})

	g.DELETE("/comment/:comment_id", func(ctx *gin.Context) {
		res := db.GetDb().
			Where("id = ? AND user_id = ?", ctx.Param("comment_id"), ctx.GetString("id")).
			Delete(&models.PostComment{})
		if res.Error != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": res.Error.Error()})
			return
		}
		if res.RowsAffected == 0 {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Comment not found or not authorized"})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"message": "Comment deleted"})
	})

	g.POST("/stories", func(ctx *gin.Context) {
		var body types.CreateStoryRequestBody
		if err := ctx.BindJSON(&body); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		story := models.Story{
			ID:        utils.GenerateID("story", 12),
			UserID:    ctx.GetString("id"),
			MediaURL:  body.MediaURL,
			Caption:   body.Caption,
			ExpiresAt: time.Now().Add(24 * time.Hour),
		}
		if err := db.GetDb().Create(&story).Error; err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		// Removal at the exact expiry; the hourly sweep catches anything
		// scheduled before a restart.
		storyId := story.ID
		if _, err := lib.CreateOneTimeCronJob(
			gocron.OneTimeJob(gocron.OneTimeJobStartDateTime(story.ExpiresAt)),
			gocron.NewTask(func() {
				if err := db.GetDb().Delete(&models.Story{}, "id = ?", storyId).Error; err != nil {
					log.Printf("Error removing expired story [%s]: %s\n", storyId, err.Error())
				}
			}),
		); err != nil {
			log.Printf("Error scheduling story expiry: %s\n", err.Error())
		}
		ctx.JSON(http.StatusOK, gin.H{"message": "Story posted", "story": story})
	})

	g.GET("/stories", func(ctx *gin.Context) {
		stories := make([]models.Story, 0)
		if err := db.GetDb().
			Preload("User").
			Where("expires_at > ?", time.Now()).
			Order("created_at DESC").
			Limit(100).
			Find(&stories).Error; err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"stories": stories, "count": len(stories)})
	})

	g.POST("/favorites", func(ctx *gin.Context) {
		var body types.FavoriteRequestBody
		if err := ctx.BindJSON(&body); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		favorite := models.Favorite{
			ID:       utils.GenerateID("fav", 12),
			UserID:   ctx.GetString("id"),
			ItemID:   body.ItemID,
			ItemType: body.ItemType,
		}
		err := db.GetDb().
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&favorite).Error
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"message": "Added to favorites", "favorite": favorite})
	})

	g.DELETE("/favorites/:item_id", func(ctx *gin.Context) {
		res := db.GetDb().
			Where("user_id = ? AND item_id = ?", ctx.GetString("id"), ctx.Param("item_id")).
			Delete(&models.Favorite{})
		if res.Error != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": res.Error.Error()})
			return
		}
		if res.RowsAffected == 0 {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Favorite not found"})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"message": "Removed from favorites"})
	})

	g.GET("/favorites", func(ctx *gin.Context) {
		favorites := make([]models.Favorite, 0)
		if err := db.GetDb().
			Where("user_id = ?", ctx.GetString("id")).
			Order("created_at DESC").
			Find(&favorites).Error; err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"favorites": favorites, "count": len(favorites)})
	})

	g.POST("/calls", func(ctx *gin.Context) {
		var body types.CallLogRequestBody
		if err := ctx.BindJSON(&body); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		call := models.Call{
			ID:       utils.GenerateID("call", 12),
			CallerID: ctx.GetString("id"),
			CalleeID: body.CalleeID,
			CallType: body.CallType,
			Duration: body.Duration,
		}
		if call.CallType == "" {
			call.CallType = "voice"
		}
		if err := db.GetDb().Create(&call).Error; err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"message": "Call logged", "call": call})
	})

	g.GET("/calls", func(ctx *gin.Context) {
		userId := ctx.GetString("id")
		calls := make([]models.Call, 0)
		if err := db.GetDb().
			Where("caller_id = ? OR callee_id = ?", userId, userId).
			Order("created_at DESC").
			Limit(50).
			Find(&calls).Error; err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"calls": calls, "count": len(calls)})
	})

	g.POST("/location", func(ctx *gin.Context) {
		var body types.ShareLocationRequestBody
		if err := ctx.BindJSON(&body); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		share := models.LocationShare{
			ID:        utils.GenerateID("loc", 12),
			UserID:    ctx.GetString("id"),
			Latitude:  body.Latitude,
			Longitude: body.Longitude,
			Label:     body.Label,
		}
		err := db.GetDb().
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "user_id"}},
				DoUpdates: clause.AssignmentColumns([]string{"latitude", "longitude", "label", "updated_at"}),
			}).
			Create(&share).Error
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"message": "Location shared", "location": share})
	})

	g.GET("/location/:user_id", func(ctx *gin.Context) {
		var share models.LocationShare
		err := db.GetDb().
			Where("user_id = ?", ctx.Param("user_id")).
			First(&share).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Location not shared"})
			return
		}
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusOK, share)
	})
}

func socialPublicHandlers(g *gin.RouterGroup) {
	g.GET("/followers/:user_id", func(ctx *gin.Context) {
		limit := intQuery(ctx, "limit", 50, 100)
		conn := db.GetDb()

		follows := make([]models.Follow, 0)
		if err := conn.
			Where("following_id = ?", ctx.Param("user_id")).
			Limit(limit).
			Find(&follows).Error; err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		ids := make([]string, 0, len(follows))
		for _, f := range follows {
			ids = append(ids, f.FollowerID)
		}
		users := socialUsers(conn, ids)
		ctx.JSON(http.StatusOK, gin.H{"followers": users, "count": len(users)})
	})

	g.GET("/following/:user_id", func(ctx *gin.Context) {
		limit := intQuery(ctx, "limit", 50, 100)
		conn := db.GetDb()

		follows := make([]models.Follow, 0)
		if err := conn.
			Where("follower_id = ?", ctx.Param("user_id")).
			Limit(limit).
			Find(&follows).Error; err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		ids := make([]string, 0, len(follows))
		for _, f := range follows {
			ids = append(ids, f.FollowingID)
		}
		users := socialUsers(conn, ids)
		ctx.JSON(http.StatusOK, gin.H{"following": users, "count": len(users)})
	})

	g.GET("/is-following/:user_id", func(ctx *gin.Context) {
		userId := ctx.GetString("id")
		if userId == "" {
			ctx.JSON(http.StatusOK, gin.H{"is_following": false})
			return
		}
		var count int64
		db.GetDb().Model(&models.Follow{}).
			Where("follower_id = ? AND following_id = ?", userId, ctx.Param("user_id")).
			Count(&count)
		ctx.JSON(http.StatusOK, gin.H{"is_following": count > 0})
	})

	g.GET("/comments/:post_id", func(ctx *gin.Context) {
		limit := intQuery(ctx, "limit", 50, 100)
		comments := make([]models.PostComment, 0)
		if err := db.GetDb().
			Where("post_id = ?", ctx.Param("post_id")).
			Order("created_at DESC").
			Limit(limit).
			Find(&comments).Error; err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"comments": comments, "count": len(comments)})
	})

	g.POST("/share/:post_id", func(ctx *gin.Context) {
		var body types.ShareRequestBody
		_ = ctx.BindJSON(&body)
		if body.Platform == "" {
			body.Platform = "link"
		}
		postId := ctx.Param("post_id")
		share := models.PostShare{
			ID:       utils.GenerateID("shr", 12),
			PostID:   postId,
			UserID:   ctx.GetString("id"),
			Platform: body.Platform,
		}
		conn := db.GetDb()
		if err := conn.Create(&share).Error; err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		var sharesCount int64
		conn.Model(&models.PostShare{}).Where("post_id = ?", postId).Count(&sharesCount)
		ctx.JSON(http.StatusOK, gin.H{"message": "Share recorded", "shares_count": sharesCount})
	})
}

func socialUsers(conn *gorm.DB, ids []string) []types.JSONB {
	users := make([]types.JSONB, 0, len(ids))
	if len(ids) == 0 {
		return users
	}
	records := make([]models.User, 0, len(ids))
	if err := conn.Where("id IN ?", ids).Find(&records).Error; err != nil {
		return users
	}
	for i := range records {
		users = append(users, utils.PublicUser(&records[i]))
	}
	return users
}
