package lib

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/YinkaFoster/fostertours/src/config"
	"github.com/YinkaFoster/fostertours/src/types"
	"github.com/redis/go-redis/v9"
	"github.com/tidwall/gjson"
)

const chatModel = "gpt-5.2"

var aiBaseURL = "https://api.openai.com"

// NewAIBaseURL points the client at a different host, used by tests.
func NewAIBaseURL(base string) {
	aiBaseURL = base
}

var aiHTTP = &http.Client{Timeout: 60 * time.Second}

// CompleteChat sends a system prompt plus transcript to the
// chat-completions API and returns the assistant reply.
func CompleteChat(systemPrompt string, messages []types.ChatMessage) (string, error) {
	apiKey := config.OpenAIAPIKey()
	if apiKey == "" {
		return "", errors.New("AI api key not configured")
	}
	payload := map[string]any{
		"model": chatModel,
	}
	chatMessages := []map[string]string{{"role": "system", "content": systemPrompt}}
	for _, m := range messages {
		chatMessages = append(chatMessages, map[string]string{"role": m.Role, "content": m.Content})
	}
	payload["messages"] = chatMessages
	raw, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	req, err := http.NewRequest(http.MethodPost, fmt.Sprintf("%s/v1/chat/completions", aiBaseURL), bytes.NewReader(raw))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", apiKey))
	req.Header.Set("Content-Type", "application/json")
	res, err := aiHTTP.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	if err != nil {
		return "", err
	}
	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("chat completion returned status %d", res.StatusCode)
	}
	reply := gjson.GetBytes(body, "choices.0.message.content").String()
	if reply == "" {
		return "", errors.New("chat completion response missing content")
	}
	return reply, nil
}

func chatbotKey(sessionId string) string {
	return fmt.Sprintf("chatbot:session:%s", sessionId)
}

// ChatbotHistory loads the stored transcript for a chatbot session.
func ChatbotHistory(sessionId string) ([]types.ChatMessage, error) {
	rdb := GetRedisClient()
	if rdb == nil {
		return nil, errors.New("redis not available")
	}
	raw, err := rdb.Get(context.Background(), chatbotKey(sessionId)).Result()
	if err == redis.Nil {
		return []types.ChatMessage{}, nil
	} else if err != nil {
		return nil, err
	}
	var history []types.ChatMessage
	if err := json.Unmarshal([]byte(raw), &history); err != nil {
		return nil, err
	}
	return history, nil
}

// ChatbotSave persists a transcript bounded to the most recent turns.
func ChatbotSave(sessionId string, history []types.ChatMessage) error {
	rdb := GetRedisClient()
	if rdb == nil {
		return errors.New("redis not available")
	}
	if len(history) > config.CHATBOT_MAX_TURNS {
		history = history[len(history)-config.CHATBOT_MAX_TURNS:]
	}
	raw, err := json.Marshal(history)
	if err != nil {
		return err
	}
	return rdb.Set(context.Background(), chatbotKey(sessionId), string(raw), 24*time.Hour).Err()
}

func ChatbotClear(sessionId string) error {
	rdb := GetRedisClient()
	if rdb == nil {
		return errors.New("redis not available")
	}
	return rdb.Del(context.Background(), chatbotKey(sessionId)).Err()
}
