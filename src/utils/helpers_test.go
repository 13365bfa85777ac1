package utils

import (
	"os"
	"strings"
	"testing"

	"github.com/YinkaFoster/fostertours/src/models"
	"github.com/YinkaFoster/fostertours/src/types"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func TestGenerateID(t *testing.T) {
	id := GenerateID("bk", 12)
	assert.True(t, strings.HasPrefix(id, "bk_"))
	assert.Len(t, id, len("bk_")+12)

	other := GenerateID("bk", 12)
	assert.NotEqual(t, id, other)
}

func TestPaystackReference(t *testing.T) {
	ref := PaystackReference()
	assert.True(t, strings.HasPrefix(ref, "PSK_"))
	assert.Equal(t, strings.ToUpper(ref), ref)
	assert.Len(t, ref, len("PSK_")+16)
}

func TestPasswordRoundTrip(t *testing.T) {
	hashed, err := HashPassword("s3cret-pass")
	assert.Nil(t, err)
	assert.NotEqual(t, "s3cret-pass", hashed)
	assert.True(t, VerifyPassword(hashed, "s3cret-pass"))
	assert.False(t, VerifyPassword(hashed, "wrong-pass"))
}

func TestGenerateJWT(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret")
	defer os.Unsetenv("JWT_SECRET")

	user := &models.User{ID: "usr_abc123def456", Email: "someone@example.com", IsAdmin: true}
	token, err := GenerateJWT(user)
	assert.Nil(t, err)

	claims := &types.Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	assert.Nil(t, err)
	assert.True(t, parsed.Valid)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.True(t, claims.IsAdmin)
}

func TestPublicUserOmitsPassword(t *testing.T) {
	user := &models.User{
		ID:       "usr_abc123def456",
		Email:    "someone@example.com",
		Name:     "Test User",
		Password: "hashed-value",
	}
	public := PublicUser(user)
	assert.Equal(t, user.ID, public["user_id"])
	_, hasPassword := public["password"]
	assert.False(t, hasPassword)
}

func TestCityName(t *testing.T) {
	assert.Equal(t, "New York", CityName("JFK"))
	assert.Equal(t, "Dubai", CityName("DXB"))
	assert.Equal(t, "XYZ", CityName("XYZ"))
}

func TestGenerateMockFlights(t *testing.T) {
	flights := GenerateMockFlights("JFK", "DXB", "2026-10-01", 2)
	assert.Len(t, flights, 10)
	for _, f := range flights {
		assert.Equal(t, "JFK", f["origin"])
		assert.Equal(t, "DXB", f["destination"])
		assert.Equal(t, "2026-10-01", f["departure_date"])
		price := f["price"].(int)
		assert.Greater(t, price, 0)
		assert.Zero(t, price%2)
	}
}

func TestGenerateMockHotels(t *testing.T) {
	hotels := GenerateMockHotels("Bali")
	assert.Len(t, hotels, 6)
	for _, h := range hotels {
		assert.Equal(t, "Bali", h["location"])
		rooms := h["room_types"].(types.JSONBArray)
		assert.Len(t, rooms, 3)
	}
}

func TestCartTotal(t *testing.T) {
	items := types.JSONBArray{
		map[string]any{"price": 45.0, "quantity": 2.0},
		map[string]any{"price": 10.0},
		"not-an-item",
	}
	assert.Equal(t, 100.0, CartTotal(items))
	assert.Equal(t, 0.0, CartTotal(types.JSONBArray{}))
}

func TestSortedKeys(t *testing.T) {
	keys := SortedKeys(types.JSONB{"origin": "JFK", "airline": "Emirates", "class": "economy"})
	assert.Equal(t, []string{"airline", "class", "origin"}, keys)
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "Check In Date", TitleCase("check_in_date"))
	assert.Equal(t, "Wallet Topup", TitleCase("wallet topup"))
	assert.Equal(t, "Flight", TitleCase("flight"))
}
