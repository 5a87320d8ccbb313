package cart

import (
	"go-hena-store/internal/catalog"

	"github.com/shopspring/decimal"
)

type AddItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
	Size      string `json:"size"`
	VariantID string `json:"variantId"`
}

// UpdateQuantityRequest deliberately allows zero and negative values;
// they collapse to a removal.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type ItemResponse struct {
	Product     catalog.Product `json:"product"`
	Quantity    int             `json:"quantity"`
	Size        string          `json:"size,omitempty"`
	VariantID   string          `json:"variantId,omitempty"`
	VariantName string          `json:"variantName,omitempty"`
	LineTotal   float64         `json:"lineTotal"`
}

type CartResponse struct {
	Items    []ItemResponse `json:"items"`
	Subtotal float64        `json:"subtotal"`
	Shipping float64        `json:"shipping"`
	Total    float64        `json:"total"`
}

type SavedItemsResponse struct {
	Items []ItemResponse `json:"items"`
}

func toItemResponse(li LineItem) ItemResponse {
	res := ItemResponse{
		Product:   li.Product,
		Quantity:  li.Quantity,
		Size:      li.Size,
		LineTotal: li.Product.Price.Mul(decimal.NewFromInt(int64(li.Quantity))).InexactFloat64(),
	}
	if li.Variant != nil {
		res.VariantID = li.Variant.ID
		res.VariantName = li.Variant.Name
	}
	return res
}

func toCartResponse(items []LineItem) CartResponse {
	totals := ComputeTotals(items)
	res := CartResponse{
		Items:    make([]ItemResponse, 0, len(items)),
		Subtotal: totals.Subtotal.InexactFloat64(),
		Shipping: totals.Shipping.InexactFloat64(),
		Total:    totals.Total.InexactFloat64(),
	}
	for _, li := range items {
		res.Items = append(res.Items, toItemResponse(li))
	}
	return res
}
