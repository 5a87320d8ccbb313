package checkout

type ShippingForm struct {
	FirstName  string `json:"firstName" validate:"required"`
	LastName   string `json:"lastName" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone" validate:"required"`
	Address    string `json:"address" validate:"required"`
	City       string `json:"city" validate:"required"`
	PostalCode string `json:"postalCode" validate:"required"`
}

type PlaceOrderRequest struct {
	Shipping      ShippingForm `json:"shipping"`
	PaymentMethod string       `json:"paymentMethod" validate:"required,oneof=cash bkash"`
	DeliveryZone  string       `json:"deliveryZone" validate:"required"`
	SaveInfo      bool         `json:"saveInfo"`
}

type PlaceOrderResponse struct {
	State        string  `json:"state"`
	OrderNumber  string  `json:"orderNumber"`
	Subtotal     float64 `json:"subtotal"`
	ShippingCost float64 `json:"shippingCost"`
	Total        float64 `json:"total"`
}

type SessionResponse struct {
	State     string `json:"state"`
	LastError string `json:"lastError,omitempty"`
}
