package models

import (
	"time"
)

type User struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Email        string    `gorm:"unique;not null"          json:"email"`
	PasswordHash string    `gorm:"not null"                 json:"-"`
	FullName     string    `json:"full_name"`
	Phone        string    `json:"phone"`
	Role         string    `gorm:"not null;default:user"    json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

type RefreshToken struct {
	ID        uint   `gorm:"primaryKey"          json:"id"`
	Token     string `gorm:"unique;not null"     json:"token"`
	UserID    uint   `gorm:"index;not null"      json:"user_id"`
	Role      string `json:"role"`
	ExpiresAt int64  `gorm:"not null"            json:"expires_at"`
	Revoked   bool   `gorm:"default:false"       json:"revoked"`
}

// CartItem is the server-side copy of one cart line. ItemID is the
// deterministic product+options key, not the row id.
type CartItem struct {
	ID              uint             `gorm:"primaryKey"                json:"-"`
	UserID          uint             `gorm:"index;not null"            json:"-"`
	ItemID          string           `gorm:"not null"                  json:"id"`
	ProductID       string           `gorm:"not null"                  json:"product_id"`
	Quantity        int              `gorm:"not null;check:quantity>0" json:"quantity"`
	SelectedOptions []CartItemOption `gorm:"serializer:json"           json:"selected_options"`
	UnitPrice       int64            `gorm:"not null"                  json:"unit_price"`
	DesignFile      *DesignFile      `gorm:"serializer:json"           json:"design_file,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
}

// CartItemOption snapshots a chosen option value at selection time so
// later catalog edits cannot reprice lines already in the cart.
type CartItemOption struct {
	OptionID      string `json:"option_id"`
	ValueID       string `json:"value_id"`
	Label         string `json:"label"`
	PriceModifier int64  `json:"price_modifier"`
}

type DesignFile struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Size int64  `json:"size"`
}

type Order struct {
	ID                uint            `gorm:"primaryKey"               json:"id"`
	OrderNumber       string          `gorm:"uniqueIndex;not null"     json:"order_number"`
	UserID            uint            `gorm:"index"                    json:"user_id"`
	Status            string          `gorm:"not null;default:pending" json:"status"`
	Items             []OrderItem     `gorm:"serializer:json;not null" json:"items"`
	Subtotal          int64           `gorm:"not null"                 json:"subtotal"`
	DeliveryFee       int64           `gorm:"not null"                 json:"delivery_fee"`
	Total             int64           `gorm:"not null"                 json:"total"`
	ShippingAddress   ShippingAddress `gorm:"serializer:json;not null" json:"shipping_address"`
	DeliveryOption    DeliveryOption  `gorm:"serializer:json;not null" json:"delivery_option"`
	PaymentMethod     string          `gorm:"not null"                 json:"payment_method"`
	ReceiptURL        string          `json:"receipt_url,omitempty"`
	ReceiptUploadedAt *time.Time      `json:"receipt_uploaded_at,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
}

// OrderItem is a snapshot, not a live product reference. An order is a
// receipt of a past transaction.
type OrderItem struct {
	ProductID   string   `json:"product_id"`
	ProductName string   `json:"product_name"`
	Quantity    int      `json:"quantity"`
	UnitPrice   int64    `json:"unit_price"`
	Options     []string `json:"options"`
}

type ShippingAddress struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Company  string `json:"company,omitempty"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	Landmark string `json:"landmark,omitempty"`
}

type DeliveryOption struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Price         int64  `json:"price"`
	EstimatedDays string `json:"estimated_days"`
}

// QuoteRequest is a custom-job inquiry from the public quote form.
// Not tied to an account; contact details live on the row itself.
type QuoteRequest struct {
	ID           uint      `gorm:"primaryKey"     json:"id"`
	FullName     string    `gorm:"not null"       json:"full_name"`
	Email        string    `gorm:"not null;index" json:"email"`
	Phone        string    `gorm:"not null"       json:"phone"`
	Company      string    `json:"company,omitempty"`
	Service      string    `gorm:"not null"       json:"service"`
	Quantity     string    `json:"quantity,omitempty"`
	Deadline     string    `json:"deadline,omitempty"`
	DesignStatus string    `gorm:"not null"       json:"design_status"`
	Message      string    `gorm:"not null"       json:"message"`
	FileURL      string    `json:"file_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type WishlistEntry struct {
	ID        uint      `gorm:"primaryKey"                             json:"id"`
	UserID    uint      `gorm:"index:idx_wishlist_user_product,unique" json:"user_id"`
	ProductID string    `gorm:"index:idx_wishlist_user_product,unique" json:"product_id"`
	CreatedAt time.Time `json:"created_at"`
}
