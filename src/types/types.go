package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
)

type Timestamps struct {
	CreatedAt time.Time      `gorm:"autoCreateTime:nano" json:"created_at,omitempty"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime:nano" json:"updated_at,omitempty"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty,omitnil"`
}

type JSONB map[string]any
type JSONBArray []any

func (a JSONB) Value() (driver.Value, error) {
	valueString, err := json.Marshal(a)
	return string(valueString), err
}
func (a *JSONB) Scan(value any) error {
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	return nil
}

func (a JSONBArray) Value() (driver.Value, error) {
	valueString, err := json.Marshal(a)
	return string(valueString), err
}
func (a *JSONBArray) Scan(value any) error {
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	return nil
}


type BookingType string

const (
	BOOKING_FLIGHT  BookingType = "flight"
	BOOKING_HOTEL   BookingType = "hotel"
	BOOKING_EVENT   BookingType = "event"
	BOOKING_VEHICLE BookingType = "vehicle"
	BOOKING_VISA    BookingType = "visa"
)

func (t BookingType) Valid() bool {
	switch t {
	case BOOKING_FLIGHT, BOOKING_HOTEL, BOOKING_EVENT, BOOKING_VEHICLE, BOOKING_VISA:
		return true
	}
	return false
}

type BookingStatus string

const (
	BOOKING_PENDING   BookingStatus = "pending"
	BOOKING_CONFIRMED BookingStatus = "confirmed"
	BOOKING_CANCELED  BookingStatus = "cancelled"
	BOOKING_COMPLETED BookingStatus = "completed"
)

type PaymentStatus string

const (
	PAYMENT_PENDING  PaymentStatus = "pending"
	PAYMENT_PAID     PaymentStatus = "paid"
	PAYMENT_REFUNDED PaymentStatus = "refunded"
)

type TransactionStatus string

const (
	TRANSACTION_PENDING   TransactionStatus = "pending"
	TRANSACTION_INITIATED TransactionStatus = "initiated"
	TRANSACTION_SUCCESS   TransactionStatus = "success"
	TRANSACTION_COMPLETED TransactionStatus = "completed"
	TRANSACTION_EXPIRED   TransactionStatus = "expired"
)

type WalletEntryType string

const (
	WALLET_CREDIT WalletEntryType = "credit"
	WALLET_DEBIT  WalletEntryType = "debit"
)

type PaymentPurpose string

const (
	PURPOSE_WALLET  PaymentPurpose = "wallet"
	PURPOSE_BOOKING PaymentPurpose = "booking"
)

type OrderStatus string

const (
	ORDER_PENDING   OrderStatus = "pending"
	ORDER_SHIPPED   OrderStatus = "shipped"
	ORDER_DELIVERED OrderStatus = "delivered"
	ORDER_CANCELED  OrderStatus = "cancelled"
)

type RegisterRequestBody struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone,omitempty"`
}

type LoginRequestBody struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type SessionExchangeRequestBody struct {
	SessionID string `json:"session_id" binding:"required"`
}

type UpdateProfileRequestBody struct {
	Name     *string `json:"name,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Bio      *string `json:"bio,omitempty"`
	Location *string `json:"location,omitempty"`
	Website  *string `json:"website,omitempty"`
	Picture  *string `json:"picture,omitempty"`
}

type ChangePasswordRequestBody struct {
	CurrentPassword string `json:"current_password" binding:"required,min=6"`
	NewPassword     string `json:"new_password" binding:"required,min=6"`
}

type FlightSearchRequestBody struct {
	Origin        string `json:"origin" binding:"required,len=3"`
	Destination   string `json:"destination" binding:"required,len=3"`
	DepartureDate string `json:"departure_date" binding:"required,searchdate" time_format:"2006-01-02"`
	ReturnDate    string `json:"return_date,omitempty" binding:"omitempty,searchdate" time_format:"2006-01-02"`
	Passengers    int    `json:"passengers,omitempty" binding:"omitempty,min=1,max=9"`
}

type HotelSearchRequestBody struct {
	Location     string `json:"location" binding:"required"`
	CheckInDate  string `json:"check_in_date" binding:"required,searchdate" time_format:"2006-01-02"`
	CheckOutDate string `json:"check_out_date" binding:"required,searchdate" time_format:"2006-01-02"`
	Guests       int    `json:"guests,omitempty" binding:"omitempty,min=1,max=9"`
	Rooms        int    `json:"rooms,omitempty" binding:"omitempty,min=1,max=5"`
}

type CreateBookingRequestBody struct {
	BookingType string  `json:"booking_type" binding:"required"`
	ItemID      string  `json:"item_id" binding:"required"`
	ItemDetails JSONB   `json:"item_details,omitempty"`
	TotalAmount float64 `json:"total_amount" binding:"required,gt=0"`
}

type WalletTopUpRequestBody struct {
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	PaymentMethod string  `json:"payment_method,omitempty"`
}

type PaystackInitializeRequestBody struct {
	BookingID string  `json:"booking_id" binding:"required"`
	Email     string  `json:"email" binding:"required,email"`
	Amount    float64 `json:"amount" binding:"required,gt=0"`
}

type StripeCheckoutRequestBody struct {
	BookingType         string  `json:"booking_type" binding:"required"`
	BookingID           string  `json:"booking_id,omitempty"`
	WalletTransactionID string  `json:"wallet_transaction_id,omitempty"`
	Amount              float64 `json:"amount" binding:"required,gt=0"`
	Origin              string  `json:"origin_url" binding:"required"`
}

type CartAddRequestBody struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity,omitempty" binding:"omitempty,min=1"`
}

type CreateOrderRequestBody struct {
	Items           JSONBArray `json:"items" binding:"required,min=1"`
	Subtotal        float64    `json:"subtotal" binding:"required,gt=0"`
	Shipping        float64    `json:"shipping,omitempty"`
	Total           float64    `json:"total" binding:"required,gt=0"`
	ShippingAddress JSONB      `json:"shipping_address,omitempty"`
	PaymentMethod   string     `json:"payment_method,omitempty"`
	WalletUsed      float64    `json:"wallet_used,omitempty" binding:"omitempty,gte=0"`
}

type CommentRequestBody struct {
	Content string `json:"content" binding:"required"`
}

type ShareRequestBody struct {
	Platform string `json:"platform,omitempty"`
}

type CreateStoryRequestBody struct {
	MediaURL string `json:"media_url" binding:"required"`
	Caption  string `json:"caption,omitempty"`
}

type FavoriteRequestBody struct {
	ItemID   string `json:"item_id" binding:"required"`
	ItemType string `json:"item_type" binding:"required"`
}

type CallLogRequestBody struct {
	CalleeID string `json:"callee_id" binding:"required"`
	CallType string `json:"call_type,omitempty"`
	Duration int    `json:"duration,omitempty"`
}

type ShareLocationRequestBody struct {
	Latitude  float64 `json:"latitude" binding:"required"`
	Longitude float64 `json:"longitude" binding:"required"`
	Label     string  `json:"label,omitempty"`
}

type CreateItineraryRequestBody struct {
	Title       string     `json:"title" binding:"required"`
	Destination string     `json:"destination" binding:"required"`
	StartDate   string     `json:"start_date,omitempty"`
	EndDate     string     `json:"end_date,omitempty"`
	Days        JSONBArray `json:"days,omitempty"`
	Notes       string     `json:"notes,omitempty"`
}

type AIItineraryStartRequestBody struct {
	Destination string   `json:"destination" binding:"required"`
	StartDate   string   `json:"start_date,omitempty"`
	EndDate     string   `json:"end_date,omitempty"`
	Budget      string   `json:"budget,omitempty"`
	Travelers   int      `json:"travelers,omitempty"`
	Interests   []string `json:"interests,omitempty"`
}

type AIChatRequestBody struct {
	Message string `json:"message" binding:"required"`
}

type ChatbotMessageRequestBody struct {
	Message   string `json:"message" binding:"required"`
	SessionID string `json:"session_id,omitempty"`
}

type SaveAIItineraryRequestBody struct {
	Title string `json:"title,omitempty"`
}

type AdminUpdateUserRequestBody struct {
	Name          *string  `json:"name,omitempty"`
	Email         *string  `json:"email,omitempty"`
	Phone         *string  `json:"phone,omitempty"`
	IsAdmin       *bool    `json:"is_admin,omitempty"`
	WalletBalance *float64 `json:"wallet_balance,omitempty"`
}

type AdminUpdateBookingRequestBody struct {
	Status        *string `json:"status,omitempty"`
	PaymentStatus *string `json:"payment_status,omitempty"`
}

type SendEmailRequestBody struct {
	ToEmail string `json:"to_email" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Content string `json:"content" binding:"required"`
}

type BookingConfirmationEmailRequestBody struct {
	BookingID      string  `json:"booking_id" binding:"required"`
	BookingType    string  `json:"booking_type" binding:"required"`
	UserEmail      string  `json:"user_email" binding:"required,email"`
	UserName       string  `json:"user_name" binding:"required"`
	BookingDetails JSONB   `json:"booking_details,omitempty"`
	TotalAmount    float64 `json:"total_amount" binding:"required"`
}

type ChatMessage struct {
	Role      string `json:"role"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp,omitempty"`
}

type SimpleIDParams struct {
	ID string `uri:"id" binding:"required"`
}
