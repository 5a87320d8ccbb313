package notify

// OrderItem mirrors what the notification service formats into the
// email body: product identity, unit price, quantity, and the optional
// size/variant qualifiers.
type OrderItem struct {
	ProductID   string  `json:"productId"`
	Name        string  `json:"name"`
	UnitPrice   float64 `json:"unitPrice"`
	Quantity    int     `json:"quantity"`
	Size        string  `json:"size,omitempty"`
	VariantName string  `json:"variantName,omitempty"`
}

type Shipping struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
}

type OrderDetails struct {
	Items         []OrderItem `json:"items"`
	Shipping      Shipping    `json:"shipping"`
	PaymentMethod string      `json:"paymentMethod"`
	DeliveryZone  string      `json:"deliveryZone"`
	ShippingCost  float64     `json:"shippingCost"`
	Total         float64     `json:"total"`
}
