package order

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const StatusConfirmed = "CONFIRMED"

type Item struct {
	ProductID   string          `json:"productId"`
	Name        string          `json:"name"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Quantity    int             `json:"quantity"`
	Size        string          `json:"size,omitempty"`
	VariantName string          `json:"variantName,omitempty"`
}

type ShippingSnapshot struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
}

type Order struct {
	ID            uuid.UUID
	OrderNumber   string
	UserID        string
	Status        string
	PaymentMethod string
	DeliveryZone  string
	Shipping      ShippingSnapshot
	Items         []Item
	Subtotal      decimal.Decimal
	ShippingCost  decimal.Decimal
	Total         decimal.Decimal
	PlacedAt      time.Time
}
