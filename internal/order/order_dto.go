package order

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderItemResponse struct {
	ProductID   string  `json:"productId"`
	Name        string  `json:"name"`
	UnitPrice   float64 `json:"unitPrice"`
	Quantity    int     `json:"quantity"`
	Size        string  `json:"size,omitempty"`
	VariantName string  `json:"variantName,omitempty"`
	Subtotal    float64 `json:"subtotal"`
}

type OrderResponse struct {
	ID            string              `json:"id"`
	OrderNumber   string              `json:"orderNumber"`
	Status        string              `json:"status"`
	PaymentMethod string              `json:"paymentMethod"`
	DeliveryZone  string              `json:"deliveryZone"`
	Shipping      ShippingSnapshot    `json:"shipping"`
	Subtotal      float64             `json:"subtotal"`
	ShippingCost  float64             `json:"shippingCost"`
	Total         float64             `json:"total"`
	PlacedAt      time.Time           `json:"placedAt"`
	Items         []OrderItemResponse `json:"items"`
}

func toOrderResponse(o *Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		lineTotal := it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity)))
		items = append(items, OrderItemResponse{
			ProductID:   it.ProductID,
			Name:        it.Name,
			UnitPrice:   it.UnitPrice.InexactFloat64(),
			Quantity:    it.Quantity,
			Size:        it.Size,
			VariantName: it.VariantName,
			Subtotal:    lineTotal.InexactFloat64(),
		})
	}

	return OrderResponse{
		ID:            o.ID.String(),
		OrderNumber:   o.OrderNumber,
		Status:        o.Status,
		PaymentMethod: o.PaymentMethod,
		DeliveryZone:  o.DeliveryZone,
		Shipping:      o.Shipping,
		Subtotal:      o.Subtotal.InexactFloat64(),
		ShippingCost:  o.ShippingCost.InexactFloat64(),
		Total:         o.Total.InexactFloat64(),
		PlacedAt:      o.PlacedAt,
		Items:         items,
	}
}
