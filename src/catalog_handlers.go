package main

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/YinkaFoster/fostertours/src/db"
	"github.com/YinkaFoster/fostertours/src/lib"
	"github.com/YinkaFoster/fostertours/src/middlewares"
	"github.com/YinkaFoster/fostertours/src/models"
	"github.com/YinkaFoster/fostertours/src/types"
	"github.com/gin-gonic/gin"
)

func intQuery(ctx *gin.Context, name string, def, max int) int {
	raw := ctx.Query(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return def
	}
	if max > 0 && v > max {
		return max
	}
	return v
}

func floatQuery(ctx *gin.Context, name string) (float64, bool) {
	raw := ctx.Query(name)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func catalogHandlers(g *gin.RouterGroup) {
	g.GET("/events", func(ctx *gin.Context) {
		category := ctx.Query("category")
		city := ctx.Query("city")
		limit := intQuery(ctx, "limit", 10, 50)

		events := catalogEvents()
		filtered := make([]types.JSONB, 0, len(events))
		for _, e := range events {
			if category != "" && !strings.EqualFold(e["category"].(string), category) {
				continue
			}
			if city != "" && !containsFold(e["city"].(string), city) {
				continue
			}
			filtered = append(filtered, e)
		}
		total := len(filtered)
		if len(filtered) > limit {
			filtered = filtered[:limit]
		}
		ctx.JSON(http.StatusOK, gin.H{"events": filtered, "total": total})
	})

	g.GET("/events/:id", func(ctx *gin.Context) {
		var params types.SimpleIDParams
		if err := ctx.BindUri(&params); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusOK, catalogEventDetail(params.ID))
	})

	g.GET("/vehicles", func(ctx *gin.Context) {
		location := ctx.Query("location")
		vehicleType := ctx.Query("vehicle_type")
		limit := intQuery(ctx, "limit", 10, 50)

		vehicles := catalogVehicles()
		filtered := make([]types.JSONB, 0, len(vehicles))
		for _, v := range vehicles {
			if location != "" && !containsFold(v["location"].(string), location) {
				continue
			}
			if vehicleType != "" && !strings.EqualFold(v["type"].(string), vehicleType) {
				continue
			}
			filtered = append(filtered, v)
		}
		if len(filtered) > limit {
			filtered = filtered[:limit]
		}
		ctx.JSON(http.StatusOK, gin.H{"vehicles": filtered, "total": len(filtered)})
	})

	g.GET("/vehicles/:id", func(ctx *gin.Context) {
		var params types.SimpleIDParams
		if err := ctx.BindUri(&params); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusOK, catalogVehicleDetail(params.ID))
	})

	g.GET("/visa-packages", func(ctx *gin.Context) {
		country := ctx.Query("country")

		packages := catalogVisaPackages()
		filtered := make([]types.JSONB, 0, len(packages))
		for _, p := range packages {
			if country != "" && !containsFold(p["country"].(string), country) {
				continue
			}
			filtered = append(filtered, p)
		}
		ctx.JSON(http.StatusOK, gin.H{"packages": filtered, "total": len(filtered)})
	})

	g.GET("/blog/posts", func(ctx *gin.Context) {
		category := ctx.Query("category")
		featuredRaw := ctx.Query("featured")
		limit := intQuery(ctx, "limit", 10, 50)

		posts := catalogBlogPosts()
		filtered := make([]types.JSONB, 0, len(posts))
		for _, p := range posts {
			if category != "" && !containsFold(p["category"].(string), category) {
				continue
			}
			if featuredRaw != "" {
				want, err := strconv.ParseBool(featuredRaw)
				if err == nil && p["featured"].(bool) != want {
					continue
				}
			}
			filtered = append(filtered, p)
		}
		total := len(filtered)
		if len(filtered) > limit {
			filtered = filtered[:limit]
		}
		ctx.JSON(http.StatusOK, gin.H{"posts": filtered, "total": total})
	})

	g.GET("/blog/posts/:slug", middlewares.OptionalAuthMiddleware, func(ctx *gin.Context) {
		postSlug := ctx.Param("slug")
		short := postSlug
		if len(short) > 8 {
			short = short[:8]
		}
		postId := "post_" + short
		userId := ctx.GetString("id")

		post := types.JSONB{
			"post_id":       postId,
			"title":         "10 Hidden Gems in Southeast Asia You Must Visit",
			"slug":          postSlug,
			"excerpt":       "Discover the most beautiful off-the-beaten-path destinations in Southeast Asia.",
			"content":       blogPostBodyHTML,
			"author":        "Sarah Johnson",
			"author_id":     "user_sarah123",
			"author_image":  "https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=150",
			"image_url":     "https://images.unsplash.com/photo-1552733407-5d5c46c3bb3b?w=800",
			"category":      "Destinations",
			"tags":          types.JSONBArray{"Asia", "Adventure", "Hidden Gems"},
			"created_at":    time.Now().UTC().Format(time.RFC3339),
			"read_time":     "8 min read",
			"views":         2340,
			"featured":      true,
			"related_posts": types.JSONBArray{},
		}

		conn := db.GetDb()
		var likesCount, sharesCount int64
		conn.Model(&models.PostLike{}).Where("post_id = ?", postId).Count(&likesCount)
		conn.Model(&models.PostShare{}).Where("post_id = ?", postId).Count(&sharesCount)

		userLiked := false
		if userId != "" {
			var liked int64
			conn.Model(&models.PostLike{}).Where("post_id = ? AND user_id = ?", postId, userId).Count(&liked)
			userLiked = liked > 0
		}

		comments := make([]models.PostComment, 0)
		conn.Where("post_id = ?", postId).Order("created_at DESC").Limit(50).Find(&comments)

		post["likes_count"] = likesCount
		post["user_liked"] = userLiked
		post["comments"] = comments
		post["comments_count"] = len(comments)
		post["shares_count"] = sharesCount
		ctx.JSON(http.StatusOK, post)
	})

	g.GET("/gallery", func(ctx *gin.Context) {
		category := ctx.Query("category")
		limit := intQuery(ctx, "limit", 20, 50)

		items := catalogGalleryItems()
		filtered := make([]types.JSONB, 0, len(items))
		for _, item := range items {
			if category != "" && !containsFold(item["category"].(string), category) {
				continue
			}
			filtered = append(filtered, item)
		}
		total := len(filtered)
		if len(filtered) > limit {
			filtered = filtered[:limit]
		}
		ctx.JSON(http.StatusOK, gin.H{"items": filtered, "total": total})
	})

	g.GET("/destinations/featured", func(ctx *gin.Context) {
		c := context.Background()
		rdb := lib.GetRedisClient()
		cacheKey := "destinations:featured"
		if cached, err := rdb.Get(c, cacheKey).Result(); err == nil {
			var destinations []types.JSONB
			if err := json.Unmarshal([]byte(cached), &destinations); err == nil {
				ctx.JSON(http.StatusOK, gin.H{"destinations": destinations})
				return
			}
		}
		destinations := catalogFeaturedDestinations()
		if raw, err := json.Marshal(destinations); err == nil {
			rdb.Set(c, cacheKey, raw, time.Hour)
		}
		ctx.JSON(http.StatusOK, gin.H{"destinations": destinations})
	})

	g.GET("/store/products", func(ctx *gin.Context) {
		category := ctx.Query("category")
		minPrice, hasMin := floatQuery(ctx, "min_price")
		maxPrice, hasMax := floatQuery(ctx, "max_price")
		limit := intQuery(ctx, "limit", 12, 50)

		products := catalogStoreProducts()
		filtered := make([]types.JSONB, 0, len(products))
		for _, p := range products {
			if category != "" && !containsFold(p["category"].(string), category) {
				continue
			}
			effective := p["price"].(float64)
			if sale, ok := p["sale_price"].(float64); ok {
				effective = sale
			}
			if hasMin && effective < minPrice {
				continue
			}
			if hasMax && effective > maxPrice {
				continue
			}
			filtered = append(filtered, p)
		}
		total := len(filtered)
		if len(filtered) > limit {
			filtered = filtered[:limit]
		}
		ctx.JSON(http.StatusOK, gin.H{"products": filtered, "total": total})
	})

	g.GET("/store/products/:id", func(ctx *gin.Context) {
		var params types.SimpleIDParams
		if err := ctx.BindUri(&params); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusOK, catalogProductDetail(params.ID))
	})
}
