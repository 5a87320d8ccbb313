package cart

import (
	"go-hena-store/internal/catalog"

	"github.com/shopspring/decimal"
)

// LineItem is one distinct (product, size, variant) entry in the cart.
// Two additions with the same merge key aggregate into a single line.
type LineItem struct {
	Product  catalog.Product  `json:"product"`
	Quantity int              `json:"quantity"`
	Size     string           `json:"size,omitempty"`
	Variant  *catalog.Variant `json:"variant,omitempty"`
}

// mergeKey identifies the line for aggregation purposes: product id,
// size, and variant id (or absence thereof).
func (li LineItem) mergeKey() string {
	variantID := ""
	if li.Variant != nil {
		variantID = li.Variant.ID
	}
	return li.Product.ID + "|" + li.Size + "|" + variantID
}

func (li LineItem) matches(other LineItem) bool {
	return li.mergeKey() == other.mergeKey()
}

type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Shipping decimal.Decimal `json:"shipping"`
	Total    decimal.Decimal `json:"total"`
}

// displayShippingFee is the flat cart-level fee shown before a delivery
// zone is chosen. Checkout's zone-based fee is authoritative; this one
// is display-only.
var displayShippingFee = decimal.NewFromInt(50)

// ComputeTotals derives totals from the items alone. Totals are never
// stored independently of items, so this is the single place they are
// calculated.
func ComputeTotals(items []LineItem) Totals {
	subtotal := decimal.Zero
	for _, li := range items {
		subtotal = subtotal.Add(li.Product.Price.Mul(decimal.NewFromInt(int64(li.Quantity))))
	}

	shipping := decimal.Zero
	if len(items) > 0 {
		shipping = displayShippingFee
	}

	return Totals{
		Subtotal: subtotal,
		Shipping: shipping,
		Total:    subtotal.Add(shipping),
	}
}

// Snapshot is the persisted representation of the cart: the full item
// list plus the totals current at write time. Totals are recomputed on
// load, so a stale persisted total can never drift from the items.
type Snapshot struct {
	Items []LineItem `json:"items"`
	Totals
}
