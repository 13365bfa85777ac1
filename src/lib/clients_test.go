package lib

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/YinkaFoster/fostertours/src/types"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

func TestPaystackInitialize(t *testing.T) {
	os.Setenv("PAYSTACK_SECRET_KEY", "sk_test_abc123")
	defer os.Unsetenv("PAYSTACK_SECRET_KEY")

	var gotAuth, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		w.Write([]byte(`{"status":true,"data":{"authorization_url":"https://checkout.paystack.com/abc","access_code":"abc","reference":"PSK_ABCDEF1234567890"}}`))
	}))
	defer srv.Close()
	NewPaystackBaseURL(srv.URL)

	init, err := PaystackInitialize("someone@example.com", "PSK_ABCDEF1234567890", 1200)
	assert.Nil(t, err)
	assert.Equal(t, "https://checkout.paystack.com/abc", init.AuthorizationURL)
	assert.Equal(t, "abc", init.AccessCode)
	assert.Equal(t, "PSK_ABCDEF1234567890", init.Reference)
	assert.Equal(t, "Bearer sk_test_abc123", gotAuth)
	assert.Equal(t, "/transaction/initialize", gotPath)
}

func TestPaystackVerify(t *testing.T) {
	os.Setenv("PAYSTACK_SECRET_KEY", "sk_test_abc123")
	defer os.Unsetenv("PAYSTACK_SECRET_KEY")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/transaction/verify/PSK_ABCDEF1234567890", r.URL.Path)
		w.Write([]byte(`{"status":true,"data":{"status":"success","amount":120000}}`))
	}))
	defer srv.Close()
	NewPaystackBaseURL(srv.URL)

	status, err := PaystackVerify("PSK_ABCDEF1234567890")
	assert.Nil(t, err)
	assert.Equal(t, "success", status)
}

func TestAmadeusToken(t *testing.T) {
	os.Setenv("AMADEUS_API_KEY", "amadeus-key")
	os.Setenv("AMADEUS_API_SECRET", "amadeus-secret")
	defer os.Unsetenv("AMADEUS_API_KEY")
	defer os.Unsetenv("AMADEUS_API_SECRET")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/security/oauth2/token", r.URL.Path)
		assert.Nil(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.PostForm.Get("grant_type"))
		w.Write([]byte(`{"access_token":"tok_abc123","expires_in":1799}`))
	}))
	defer srv.Close()
	NewAmadeusBaseURL(srv.URL)

	rd, rmock := redismock.NewClientMock()
	NewRedisClient(rd)
	rmock.ExpectGet("amadeus:token").RedisNil()
	rmock.ExpectSet("amadeus:token", "tok_abc123", time.Duration(1799-60)*time.Second).SetVal("OK")

	token, err := AmadeusToken()
	assert.Nil(t, err)
	assert.Equal(t, "tok_abc123", token)
	assert.Nil(t, rmock.ExpectationsWereMet())
}

func TestCompleteChat(t *testing.T) {
	os.Setenv("OPENAI_API_KEY", "sk-test-abc123")
	defer os.Unsetenv("OPENAI_API_KEY")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test-abc123", r.Header.Get("Authorization"))
		w.Write([]byte(`{"choices":[{"message":{"content":"Day 1: morning at the Louvre."}}]}`))
	}))
	defer srv.Close()
	NewAIBaseURL(srv.URL)

	reply, err := CompleteChat("You are a travel assistant.", []types.ChatMessage{
		{Role: "user", Content: "Plan a day in Paris"},
	})
	assert.Nil(t, err)
	assert.Equal(t, "Day 1: morning at the Louvre.", reply)
}
