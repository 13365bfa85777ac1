package main

import (
	"log"
	"net/http"

	"github.com/YinkaFoster/fostertours/src/config"
	"github.com/YinkaFoster/fostertours/src/lib"
	"github.com/YinkaFoster/fostertours/src/types"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const customerCarePrompt = `You are a friendly and helpful AI customer care assistant for Foster Tours, a travel and tours company. Your role is to assist customers with:

1. **Booking Inquiries**: Help with flights, hotels, events, vehicle rentals, and visa services
2. **General Questions**: Answer questions about travel destinations, pricing, and services
3. **Support**: Help resolve issues with existing bookings
4. **Recommendations**: Suggest destinations, packages, and travel tips

**Important Information:**
- WhatsApp Support: +234 9058 681 268
- Instagram: @foster_tours
- Email: support@fostertours.com

**Services Offered:**
- Flight bookings (domestic & international)
- Hotel reservations worldwide
- Tour packages and events
- Vehicle rentals (cars, bikes, vans)
- Visa assistance and processing

**Guidelines:**
- Be warm, professional, and helpful
- If you don't know something specific, direct them to WhatsApp or email support
- Keep responses concise but informative
- Use emojis sparingly to be friendly
- Always offer to help with anything else at the end

Remember: You represent Foster Tours - make every customer feel valued!`

const chatbotUnavailableReply = "I apologize, but I'm temporarily unavailable. Please contact us on WhatsApp at +234 9058 681 268 for immediate assistance! 📱"

const chatbotTroubleReply = "I'm having a little trouble right now. For immediate help, please reach out to us on WhatsApp at +234 9058 681 268 or Instagram @foster_tours. We're here to help! 🙏"

func chatbotHandlers(g *gin.RouterGroup) {
	g.POST("/message", func(ctx *gin.Context) {
		var body types.ChatbotMessageRequestBody
		if err := ctx.BindJSON(&body); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		sessionId := body.SessionID
		if sessionId == "" {
			sessionId = uuid.NewString()
		}

		history, err := lib.ChatbotHistory(sessionId)
		if err != nil {
			log.Printf("could not load chatbot history: %s\n", err.Error())
			history = []types.ChatMessage{}
		}
		history = append(history, types.ChatMessage{Role: "user", Content: body.Message})

		if config.OpenAIAPIKey() == "" {
			ctx.JSON(http.StatusOK, gin.H{"response": chatbotUnavailableReply, "session_id": sessionId})
			return
		}

		reply, err := lib.CompleteChat(customerCarePrompt, history)
		if err != nil {
			log.Printf("Chatbot error: %s\n", err.Error())
			ctx.JSON(http.StatusOK, gin.H{"response": chatbotTroubleReply, "session_id": sessionId})
			return
		}

		history = append(history, types.ChatMessage{Role: "assistant", Content: reply})
		if err := lib.ChatbotSave(sessionId, history); err != nil {
			log.Printf("could not save chatbot history: %s\n", err.Error())
		}
		ctx.JSON(http.StatusOK, gin.H{"response": reply, "session_id": sessionId})
	})

	g.DELETE("/session/:session_id", func(ctx *gin.Context) {
		if err := lib.ChatbotClear(ctx.Param("session_id")); err != nil {
			log.Printf("could not clear chatbot session: %s\n", err.Error())
		}
		ctx.JSON(http.StatusOK, gin.H{"message": "Session cleared"})
	})
}
