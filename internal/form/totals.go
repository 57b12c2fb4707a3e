package form

import "github.com/shopspring/decimal"

// Rwandan VAT applied on the net amount.
var vatRate = decimal.NewFromFloat(0.18)

var oneHundred = decimal.NewFromInt(100)

// Summary is the financial roll-up of an order used on the receipt.
type Summary struct {
	Subtotal      decimal.Decimal
	DiscountTotal decimal.Decimal
	Net           decimal.Decimal
	VAT           decimal.Decimal
	GrandTotal    decimal.Decimal
}

// Total is the line amount before discount.
func (li OrderLineItem) Total() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// NetTotal is the line amount after the percentage discount.
func (li OrderLineItem) NetTotal() decimal.Decimal {
	return li.Total().Mul(oneHundred.Sub(li.Discount)).Div(oneHundred)
}

// Summarize computes the financial summary over all line items.
func Summarize(r *OrderRecord) Summary {
	s := Summary{
		Subtotal:      decimal.Zero,
		DiscountTotal: decimal.Zero,
		Net:           decimal.Zero,
		VAT:           decimal.Zero,
		GrandTotal:    decimal.Zero,
	}
	for _, li := range r.OrderDetails {
		s.Subtotal = s.Subtotal.Add(li.Total())
		s.Net = s.Net.Add(li.NetTotal())
	}
	s.DiscountTotal = s.Subtotal.Sub(s.Net)
	s.VAT = s.Net.Mul(vatRate)
	s.GrandTotal = s.Net.Add(s.VAT)
	return s
}
