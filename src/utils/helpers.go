package utils

import (
	"errors"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/YinkaFoster/fostertours/src/db"
	"github.com/YinkaFoster/fostertours/src/lib"
	"github.com/YinkaFoster/fostertours/src/models"
	"github.com/YinkaFoster/fostertours/src/types"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrInsufficientBalance = errors.New("insufficient wallet balance")

// GenerateID returns a prefixed short id like bk_1a2b3c4d5e6f.
func GenerateID(prefix string, n int) string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return fmt.Sprintf("%s_%s", prefix, hex[:n])
}

// PaystackReference builds a reference in the processor's expected shape.
func PaystackReference() string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return fmt.Sprintf("PSK_%s", strings.ToUpper(hex[:16]))
}

// GenerateAccessCode mirrors the access codes handed out by processors
// in mock mode.
func GenerateAccessCode() string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return fmt.Sprintf("ACC_%s", strings.ToUpper(hex[:12]))
}

func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func VerifyPassword(hashed, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)) == nil
}

// GenerateJWT issues a 7-day token carrying the user id, email and admin flag.
func GenerateJWT(user *models.User) (string, error) {
	now := time.Now()
	claims := types.Claims{
		UserID:  user.ID,
		Email:   user.Email,
		IsAdmin: user.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(7 * 24 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

// PublicUser is the user shape returned by auth endpoints, password omitted.
func PublicUser(user *models.User) types.JSONB {
	return types.JSONB{
		"user_id":        user.ID,
		"email":          user.Email,
		"name":           user.Name,
		"phone":          user.Phone,
		"picture":        user.Picture,
		"wallet_balance": user.WalletBalance,
		"is_admin":       user.IsAdmin,
		"created_at":     user.CreatedAt,
	}
}

var cityNames = map[string]string{
	"NYC": "New York", "LAX": "Los Angeles", "LHR": "London", "DXB": "Dubai",
	"SIN": "Singapore", "HKG": "Hong Kong", "CDG": "Paris", "NRT": "Tokyo",
	"SYD": "Sydney", "JFK": "New York", "ORD": "Chicago", "MIA": "Miami",
	"SFO": "San Francisco", "BOS": "Boston", "SEA": "Seattle", "ATL": "Atlanta",
	"MAD": "Madrid", "BCN": "Barcelona", "FCO": "Rome", "AMS": "Amsterdam",
}

func CityName(code string) string {
	if name, ok := cityNames[code]; ok {
		return name
	}
	return code
}

// GenerateMockFlights is the deterministic fallback when the aggregator is
// unavailable. Prices and timings derive only from the inputs; ids are
// fresh per call.
func GenerateMockFlights(origin, destination, date string, passengers int) []types.JSONB {
	airlines := []struct {
		Name string
		Code string
	}{
		{"Emirates", "EK"},
		{"Qatar Airways", "QR"},
		{"Singapore Airlines", "SQ"},
		{"Lufthansa", "LH"},
		{"British Airways", "BA"},
	}
	basePrices := []int{450, 520, 680, 890, 1200, 350, 750}

	flights := []types.JSONB{}
	for i, airline := range airlines {
		for j := 0; j < 2; j++ {
			stops := j % 3
			basePrice := basePrices[(i+j)%len(basePrices)]
			departureMinute := "00"
			arrivalMinute := "45"
			if j != 0 {
				departureMinute = "30"
				arrivalMinute = "15"
			}
			flights = append(flights, types.JSONB{
				"flight_id":        GenerateID("fl", 8),
				"airline":          airline.Name,
				"airline_logo":     lib.AirlineLogo(airline.Code),
				"flight_number":    fmt.Sprintf("%s%d", airline.Code, 100+i*10+j),
				"origin":           origin,
				"origin_city":      CityName(origin),
				"destination":      destination,
				"destination_city": CityName(destination),
				"departure_date":   date,
				"departure_time":   fmt.Sprintf("%d:%s", 6+i*3, departureMinute),
				"arrival_time":     fmt.Sprintf("%d:%s", 14+i*2, arrivalMinute),
				"duration":         fmt.Sprintf("%dh %dm", 8+stops*2, 30+j*15),
				"price":            basePrice * passengers,
				"stops":            stops,
				"cabin_class":      "economy",
				"available_seats":  15 + i*5,
			})
		}
	}
	return flights
}

// GenerateMockHotels is the hotel-side fallback, a fixed six-property list
// placed at the requested location.
func GenerateMockHotels(location string) []types.JSONB {
	hotelsData := []struct {
		Name      string
		Rating    float64
		Price     float64
		Amenities []string
	}{
		{"The Grand Resort & Spa", 4.8, 299, []string{"Pool", "Spa", "Restaurant", "Gym", "WiFi", "Beach Access"}},
		{"Ocean View Hotel", 4.5, 189, []string{"Pool", "Restaurant", "WiFi", "Bar", "Room Service"}},
		{"City Center Inn", 4.2, 129, []string{"WiFi", "Restaurant", "Parking", "Business Center"}},
		{"Luxury Palace Hotel", 4.9, 459, []string{"Pool", "Spa", "Golf", "Restaurant", "WiFi", "Concierge", "Private Beach"}},
		{"Budget Traveler's Inn", 3.8, 79, []string{"WiFi", "Parking", "Breakfast"}},
		{"Boutique Paradise", 4.6, 219, []string{"Pool", "Restaurant", "WiFi", "Spa", "Rooftop Bar"}},
	}

	hotels := []types.JSONB{}
	for i, h := range hotelsData {
		amenities := types.JSONBArray{}
		for _, a := range h.Amenities {
			amenities = append(amenities, a)
		}
		image := fmt.Sprintf("https://images.unsplash.com/photo-170283049914%d-a0634d87d6af?w=800", i)
		hotels = append(hotels, types.JSONB{
			"hotel_id":        GenerateID("htl", 8),
			"name":            h.Name,
			"location":        location,
			"city":            location,
			"rating":          h.Rating,
			"reviews_count":   100 + i*50,
			"price_per_night": h.Price,
			"image_url":       image,
			"images": types.JSONBArray{
				image,
				fmt.Sprintf("https://images.unsplash.com/photo-170918751605%d-d4929b67e89f?w=800", i),
			},
			"amenities":   amenities,
			"description": fmt.Sprintf("Experience luxury and comfort at %s. Located in the heart of %s.", h.Name, location),
			"room_types": types.JSONBArray{
				types.JSONB{"type": "Standard", "price": h.Price, "beds": "1 Queen"},
				types.JSONB{"type": "Deluxe", "price": h.Price * 1.5, "beds": "1 King"},
				types.JSONB{"type": "Suite", "price": h.Price * 2.5, "beds": "1 King + Living"},
			},
		})
	}
	return hotels
}

// CreditWallet moves the balance and writes the ledger row in one unit.
func CreditWallet(tx *gorm.DB, userId string, amount float64, description, reference string) error {
	if err := tx.
		Model(&models.User{}).
		Where("id = ?", userId).
		Update("wallet_balance", gorm.Expr("wallet_balance + ?", amount)).
		Error; err != nil {
		return err
	}
	entry := models.WalletTransaction{
		ID:          GenerateID("wtx", 12),
		UserID:      userId,
		Amount:      amount,
		Type:        types.WALLET_CREDIT,
		Description: description,
		Status:      types.TRANSACTION_COMPLETED,
		Reference:   reference,
	}
	return tx.Create(&entry).Error
}

// DebitWallet refuses to move more than the stored balance; the guard is
// part of the UPDATE so concurrent debits cannot both pass it.
func DebitWallet(tx *gorm.DB, userId string, amount float64, description, reference string) error {
	res := tx.
		Model(&models.User{}).
		Where("id = ? AND wallet_balance >= ?", userId, amount).
		Update("wallet_balance", gorm.Expr("wallet_balance - ?", amount))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrInsufficientBalance
	}
	entry := models.WalletTransaction{
		ID:          GenerateID("wtx", 12),
		UserID:      userId,
		Amount:      -amount,
		Type:        types.WALLET_DEBIT,
		Description: description,
		Status:      types.TRANSACTION_COMPLETED,
		Reference:   reference,
	}
	return tx.Create(&entry).Error
}

// SettlePaymentTransaction is the single funnel for every processor
// callback (Paystack verify, mock-complete, Stripe poll or webhook). The
// transition to success is guarded at the database so only the first caller
// applies side effects; any later callback finds zero rows updated and
// becomes a no-op.
func SettlePaymentTransaction(reference string) (*models.PaymentTransaction, bool, error) {
	d := db.GetDb()
	var txn models.PaymentTransaction
	settled := false
	err := d.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where(&models.PaymentTransaction{Reference: reference}).
			First(&txn).
			Error; err != nil {
			return err
		}
		res := tx.
			Model(&models.PaymentTransaction{}).
			Where("reference = ? AND status NOT IN ?", reference, []types.TransactionStatus{
				types.TRANSACTION_SUCCESS,
				types.TRANSACTION_COMPLETED,
			}).
			Update("status", types.TRANSACTION_SUCCESS)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		settled = true
		txn.Status = types.TRANSACTION_SUCCESS

		switch txn.Purpose {
		case types.PURPOSE_WALLET:
			description := fmt.Sprintf("Wallet top-up via %s", txn.PaymentMethod)
			if err := CreditWallet(tx, txn.UserID, txn.Amount, description, txn.Reference); err != nil {
				return err
			}
			if walletTxnId, ok := txn.Metadata["wallet_transaction_id"].(string); ok && walletTxnId != "" {
				if err := tx.
					Model(&models.WalletTransaction{}).
					Where("id = ?", walletTxnId).
					Update("status", types.TRANSACTION_COMPLETED).
					Error; err != nil {
					return err
				}
			}
		case types.PURPOSE_BOOKING:
			if txn.BookingID == "" {
				return nil
			}
			if err := tx.
				Model(&models.Booking{}).
				Where("id = ?", txn.BookingID).
				Updates(map[string]any{
					"payment_status":    types.PAYMENT_PAID,
					"status":            types.BOOKING_CONFIRMED,
					"payment_reference": txn.Reference,
				}).
				Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return &txn, settled, nil
}

// ExpireStalePayments closes transactions that never received a callback.
func ExpireStalePayments(maxAge time.Duration) (int64, error) {
	d := db.GetDb()
	cutoff := time.Now().Add(-maxAge)
	res := d.
		Model(&models.PaymentTransaction{}).
		Where("status IN ? AND created_at < ?", []types.TransactionStatus{
			types.TRANSACTION_PENDING,
			types.TRANSACTION_INITIATED,
		}, cutoff).
		Update("status", types.TRANSACTION_EXPIRED)
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected > 0 {
		log.Printf("Expired %d stale payment transactions\n", res.RowsAffected)
	}
	return res.RowsAffected, res.Error
}

// CartTotal sums line prices from the stored items blob.
func CartTotal(items types.JSONBArray) float64 {
	total := 0.0
	for _, raw := range items {
		item, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		price, _ := item["price"].(float64)
		qty, ok := item["quantity"].(float64)
		if !ok {
			qty = 1
		}
		total += price * qty
	}
	return total
}

// SortedKeys gives deterministic iteration over a details map for email
// rendering.
func SortedKeys(m types.JSONB) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// TitleCase uppercases the first letter of each underscore- or
// space-separated word.
func TitleCase(s string) string {
	words := strings.FieldsFunc(s, func(r rune) bool {
		return r == '_' || r == ' '
	})
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
