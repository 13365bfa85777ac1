package main

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/YinkaFoster/fostertours/src/db"
	"github.com/YinkaFoster/fostertours/src/lib"
	"github.com/YinkaFoster/fostertours/src/models"
	"github.com/YinkaFoster/fostertours/src/models/scopes"
	"github.com/YinkaFoster/fostertours/src/types"
	"github.com/YinkaFoster/fostertours/src/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const travelPlannerPrompt = `You are an expert AI travel planner for Foster Tours. Your role is to help users plan amazing trips by creating detailed, personalized itineraries.

When creating itineraries, include:
- Day-by-day breakdown with times
- Specific attractions, restaurants, and activities
- Estimated costs where possible
- Transportation recommendations
- Pro tips and local insights
- Weather considerations
- Cultural etiquette tips

Format your responses clearly with:
- Use headers for each day (## Day 1: ...)
- Bullet points for activities
- Time slots (e.g., 9:00 AM - Visit...)
- Cost estimates in USD
- Emojis to make it engaging

Be enthusiastic, helpful, and provide practical advice. If users want to modify the plan, be flexible and suggest alternatives.

Always ask clarifying questions if needed:
- Travel dates
- Budget range
- Interests (culture, food, adventure, relaxation)
- Pace preference (packed or relaxed)
- Any special requirements (accessibility, dietary, etc.)`

func itineraryHandlers(g *gin.RouterGroup) {
	g.GET("", func(ctx *gin.Context) {
		itineraries := make([]models.Itinerary, 0)
		if err := db.GetDb().
			Scopes(scopes.OwnedBy(ctx.GetString("id")), scopes.NewestFirst).
			Limit(50).
			Find(&itineraries).Error; err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"itineraries": itineraries})
	})

	g.POST("", func(ctx *gin.Context) {
		var body types.CreateItineraryRequestBody
		if err := ctx.BindJSON(&body); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		itinerary := models.Itinerary{
			ID:          utils.GenerateID("itn", 12),
			UserID:      ctx.GetString("id"),
			Title:       body.Title,
			Destination: body.Destination,
			StartDate:   body.StartDate,
			EndDate:     body.EndDate,
			Days:        body.Days,
			Notes:       body.Notes,
		}
		if err := db.GetDb().Create(&itinerary).Error; err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"itinerary_id": itinerary.ID, "message": "Itinerary created successfully"})
	})

	g.PUT("/:id", func(ctx *gin.Context) {
		var body types.JSONB
		if err := ctx.BindJSON(&body); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		allowed := map[string]string{
			"title":       "title",
			"destination": "destination",
			"start_date":  "start_date",
			"end_date":    "end_date",
			"days":        "days",
			"notes":       "notes",
		}
		updates := map[string]any{}
		for field, column := range allowed {
			if value, ok := body[field]; ok {
				if field == "days" {
					raw, ok := value.([]any)
					if !ok {
						continue
					}
					value = types.JSONBArray(raw)
				}
				updates[column] = value
			}
		}
		if len(updates) == 0 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "No valid fields to update"})
			return
		}
		res := db.GetDb().
			Model(&models.Itinerary{}).
			Where("id = ? AND user_id = ?", ctx.Param("id"), ctx.GetString("id")).
			Updates(updates)
		if res.Error != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": res.Error.Error()})
			return
		}
		if res.RowsAffected == 0 {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Itinerary not found"})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"message": "Itinerary updated successfully"})
	})

	g.DELETE("/:id", func(ctx *gin.Context) {
		res := db.GetDb().
			Where("id = ? AND user_id = ?", ctx.Param("id"), ctx.GetString("id")).
			Delete(&models.Itinerary{})
		if res.Error != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": res.Error.Error()})
			return
		}
		if res.RowsAffected == 0 {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Itinerary not found"})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"message": "Itinerary deleted successfully"})
	})
}

func aiPlannerHandlers(g *gin.RouterGroup) {
	g.POST("/start", func(ctx *gin.Context) {
		var body types.AIItineraryStartRequestBody
		if err := ctx.BindJSON(&body); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if body.Budget == "" {
			body.Budget = "moderate"
		}
		if body.Travelers < 1 {
			body.Travelers = 1
		}
		interests := "general sightseeing"
		if len(body.Interests) > 0 {
			interests = strings.Join(body.Interests, ", ")
		}
		interestsList := make(types.JSONBArray, 0, len(body.Interests))
		for _, interest := range body.Interests {
			interestsList = append(interestsList, interest)
		}

		session := models.AISession{
			ID:          utils.GenerateID("itn_ai", 12),
			UserID:      ctx.GetString("id"),
			Destination: body.Destination,
			StartDate:   body.StartDate,
			EndDate:     body.EndDate,
			Budget:      body.Budget,
			Travelers:   body.Travelers,
			Interests:   interestsList,
			Messages:    types.JSONBArray{},
		}
		if err := db.GetDb().Create(&session).Error; err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		initialMessage := fmt.Sprintf(`Please create a travel itinerary for me:

**Destination:** %s
**Dates:** %s to %s
**Budget:** %s
**Travelers:** %d
**Interests:** %s

Please create a detailed day-by-day itinerary with activities, restaurants, and tips!`,
			body.Destination, body.StartDate, body.EndDate, body.Budget, body.Travelers, interests)

		reply, err := lib.CompleteChat(travelPlannerPrompt, []types.ChatMessage{
			{Role: "user", Content: initialMessage},
		})
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("AI service error: %s", err.Error())})
			return
		}

		session.Messages = appendTranscript(session.Messages, "user", initialMessage)
		session.Messages = appendTranscript(session.Messages, "assistant", reply)
		if err := db.GetDb().Save(&session).Error; err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{
			"session_id":  session.ID,
			"message":     reply,
			"destination": session.Destination,
		})
	})

	g.POST("/:session_id/chat", func(ctx *gin.Context) {
		var body types.AIChatRequestBody
		if err := ctx.BindJSON(&body); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Message cannot be empty"})
			return
		}
		var session models.AISession
		err := db.GetDb().
			Where("id = ? AND user_id = ?", ctx.Param("session_id"), ctx.GetString("id")).
			First(&session).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
			return
		}
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		transcript := transcriptMessages(session.Messages)
		transcript = append(transcript, types.ChatMessage{Role: "user", Content: body.Message})
		reply, err := lib.CompleteChat(travelPlannerPrompt, transcript)
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("AI service error: %s", err.Error())})
			return
		}

		session.Messages = appendTranscript(session.Messages, "user", body.Message)
		session.Messages = appendTranscript(session.Messages, "assistant", reply)
		if err := db.GetDb().Save(&session).Error; err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"message": reply})
	})

	g.GET("", func(ctx *gin.Context) {
		sessions := make([]models.AISession, 0)
		if err := db.GetDb().
			Select("id", "user_id", "destination", "start_date", "end_date", "budget", "travelers", "interests", "created_at", "updated_at").
			Where("user_id = ?", ctx.GetString("id")).
			Order("updated_at DESC").
			Limit(20).
			Find(&sessions).Error; err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"sessions": sessions})
	})

	g.GET("/:session_id", func(ctx *gin.Context) {
		var session models.AISession
		err := db.GetDb().
			Where("id = ? AND user_id = ?", ctx.Param("session_id"), ctx.GetString("id")).
			First(&session).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
			return
		}
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusOK, session)
	})

	g.POST("/:session_id/save", func(ctx *gin.Context) {
		var body types.SaveAIItineraryRequestBody
		_ = ctx.BindJSON(&body)

		var session models.AISession
		err := db.GetDb().
			Where("id = ? AND user_id = ?", ctx.Param("session_id"), ctx.GetString("id")).
			First(&session).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
			return
		}
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		title := body.Title
		if title == "" {
			title = fmt.Sprintf("Trip to %s", session.Destination)
		}
		content := ""
		transcript := transcriptMessages(session.Messages)
		for i := len(transcript) - 1; i >= 0; i-- {
			if transcript[i].Role == "assistant" {
				content = transcript[i].Content
				break
			}
		}

		itinerary := models.Itinerary{
			ID:          utils.GenerateID("itn", 12),
			UserID:      session.UserID,
			Title:       title,
			Destination: session.Destination,
			StartDate:   session.StartDate,
			EndDate:     session.EndDate,
			Days:        types.JSONBArray{},
			AIContent:   content,
			AIGenerated: true,
		}
		if err := db.GetDb().Create(&itinerary).Error; err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"itinerary_id": itinerary.ID, "message": "Itinerary saved successfully"})
	})

	g.DELETE("/:session_id", func(ctx *gin.Context) {
		res := db.GetDb().
			Where("id = ? AND user_id = ?", ctx.Param("session_id"), ctx.GetString("id")).
			Delete(&models.AISession{})
		if res.Error != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": res.Error.Error()})
			return
		}
		if res.RowsAffected == 0 {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"message": "Session deleted"})
	})
}

func appendTranscript(messages types.JSONBArray, role, content string) types.JSONBArray {
	return append(messages, map[string]any{
		"role":      role,
		"content":   content,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func transcriptMessages(messages types.JSONBArray) []types.ChatMessage {
	transcript := make([]types.ChatMessage, 0, len(messages))
	for _, raw := range messages {
		entry, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		role, _ := entry["role"].(string)
		content, _ := entry["content"].(string)
		if role == "" || content == "" {
			continue
		}
		transcript = append(transcript, types.ChatMessage{Role: role, Content: content})
	}
	return transcript
}
