package checkout

import (
	"time"

	"github.com/shopspring/decimal"

	"go-hena-store/internal/cart"
	"go-hena-store/internal/notify"
	"go-hena-store/internal/order"
)

func buildOrderDetails(
	items []cart.LineItem,
	req PlaceOrderRequest,
	fee, total decimal.Decimal,
) notify.OrderDetails {
	orderItems := make([]notify.OrderItem, 0, len(items))
	for _, li := range items {
		oi := notify.OrderItem{
			ProductID: li.Product.ID,
			Name:      li.Product.Name,
			UnitPrice: li.Product.Price.InexactFloat64(),
			Quantity:  li.Quantity,
			Size:      li.Size,
		}
		if li.Variant != nil {
			oi.VariantName = li.Variant.Name
		}
		orderItems = append(orderItems, oi)
	}

	return notify.OrderDetails{
		Items: orderItems,
		Shipping: notify.Shipping{
			FirstName:  req.Shipping.FirstName,
			LastName:   req.Shipping.LastName,
			Email:      req.Shipping.Email,
			Phone:      req.Shipping.Phone,
			Address:    req.Shipping.Address,
			City:       req.Shipping.City,
			PostalCode: req.Shipping.PostalCode,
		},
		PaymentMethod: req.PaymentMethod,
		DeliveryZone:  req.DeliveryZone,
		ShippingCost:  fee.InexactFloat64(),
		Total:         total.InexactFloat64(),
	}
}

func buildOrderRecord(
	orderNumber, userID string,
	items []cart.LineItem,
	req PlaceOrderRequest,
	subtotal, fee, total decimal.Decimal,
) *order.Order {
	orderItems := make([]order.Item, 0, len(items))
	for _, li := range items {
		it := order.Item{
			ProductID: li.Product.ID,
			Name:      li.Product.Name,
			UnitPrice: li.Product.Price,
			Quantity:  li.Quantity,
			Size:      li.Size,
		}
		if li.Variant != nil {
			it.VariantName = li.Variant.Name
		}
		orderItems = append(orderItems, it)
	}

	return &order.Order{
		OrderNumber:   orderNumber,
		UserID:        userID,
		Status:        order.StatusConfirmed,
		PaymentMethod: req.PaymentMethod,
		DeliveryZone:  req.DeliveryZone,
		Shipping: order.ShippingSnapshot{
			FirstName:  req.Shipping.FirstName,
			LastName:   req.Shipping.LastName,
			Email:      req.Shipping.Email,
			Phone:      req.Shipping.Phone,
			Address:    req.Shipping.Address,
			City:       req.Shipping.City,
			PostalCode: req.Shipping.PostalCode,
		},
		Items:        orderItems,
		Subtotal:     subtotal,
		ShippingCost: fee,
		Total:        total,
		PlacedAt:     time.Now().UTC(),
	}
}
