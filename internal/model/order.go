package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type FulfillmentType string

const (
	FulfillmentPickup   FulfillmentType = "pickup"
	FulfillmentGym      FulfillmentType = "gym"
	FulfillmentDelivery FulfillmentType = "delivery"
)

func (f FulfillmentType) Valid() bool {
	switch f {
	case FulfillmentPickup, FulfillmentGym, FulfillmentDelivery:
		return true
	}
	return false
}

// Label is the short admin-facing description.
func (f FulfillmentType) Label() string {
	switch f {
	case FulfillmentPickup:
		return "📍 Pickup"
	case FulfillmentGym:
		return "🏋️ Gym Pickup (6am)"
	case FulfillmentDelivery:
		return "🚗 Delivery"
	default:
		return string(f)
	}
}

// OrderLine is a frozen copy of a cart line. It is never resolved against the current catalog.
type OrderLine struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Emoji          string          `json:"emoji"`
	SelectedOption *string         `json:"selectedOption"`
	Quantity       int             `json:"quantity"`
	Price          decimal.Decimal `json:"price"`
}

func (l OrderLine) LineTotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

type Order struct {
	ID              string          `gorm:"primaryKey;size:36;not null" json:"id"`
	CustomerName    string          `gorm:"size:128;not null" json:"customer_name"`
	CustomerEmail   string          `gorm:"size:255;not null" json:"customer_email"`
	RequestedDate   *string         `gorm:"size:10;index" json:"requested_date"` // YYYY-MM-DD
	FulfillmentType FulfillmentType `gorm:"size:16;not null" json:"fulfillment_type"`
	DeliveryAddress *string         `gorm:"size:512" json:"delivery_address"`
	Items           []OrderLine     `gorm:"type:text;serializer:json" json:"items"`
	Total           decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total"`
	Note            *string         `gorm:"size:1024" json:"note"`
	Status          string          `gorm:"size:32;not null" json:"status"` // legacy, always "pending"
	IsFulfilled     bool            `gorm:"not null" json:"is_fulfilled"`
	IsPaid          bool            `gorm:"not null" json:"is_paid"`
	CreatedAt       time.Time       `gorm:"index" json:"created_at"`
}

func (o *Order) CompositeStatus() OrderStatus {
	return CompositeStatus(o.IsFulfilled, o.IsPaid)
}
