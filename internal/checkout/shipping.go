package checkout

import "github.com/shopspring/decimal"

// Zone is a discrete shipping-fee bucket the customer selects at
// checkout. Fees are a flat lookup, not computed from the address.
type Zone string

const (
	ZoneSylhet  Zone = "sylhet"
	ZoneOutside Zone = "outside"
)

var zoneFees = map[Zone]decimal.Decimal{
	ZoneSylhet:  decimal.NewFromInt(80),
	ZoneOutside: decimal.NewFromInt(130),
}

// ShippingFee returns the flat delivery fee for a zone. Zones without
// an explicit entry pay the outside rate.
func ShippingFee(zone Zone) decimal.Decimal {
	if fee, ok := zoneFees[zone]; ok {
		return fee
	}
	return zoneFees[ZoneOutside]
}
