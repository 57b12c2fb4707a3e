package form

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderRecord(t *testing.T) {
	rec := NewOrderRecord()

	t.Run("Defaults", func(t *testing.T) {
		assert.Equal(t, StatusDraft, rec.Status)
		assert.Equal(t, CategoryFarmer, rec.ClientInfo.ClientCategory)
		assert.Equal(t, TierStandard, rec.ClientInfo.ClientTier)
		assert.Equal(t, PaymentPending, rec.SalesOps.PaymentStatus)
		assert.Equal(t, CertNone, rec.Compliance.QualityCertification)
		assert.Empty(t, rec.Dispatch)
		assert.Empty(t, rec.Attachments.Files)
		assert.Empty(t, rec.Attachments.Names)
		assert.False(t, rec.UpdatedAt.Before(rec.CreatedAt))
	})

	t.Run("DefaultLineItem", func(t *testing.T) {
		require.Len(t, rec.OrderDetails, 1)
		li := rec.OrderDetails[0]
		assert.Equal(t, "soyOil", li.ProductName)
		assert.Equal(t, OrderRetail, li.OrderCategory)
		assert.Equal(t, UnitLiters, li.UnitType)
		assert.Equal(t, 1, li.Quantity)
		assert.True(t, strings.HasPrefix(li.SKU, "SOY-"))
		assert.Len(t, li.SKU, 9)
	})
}

func TestNewSKU(t *testing.T) {
	sku1 := NewSKU()
	sku2 := NewSKU()

	assert.True(t, strings.HasPrefix(sku1, "SOY-"))
	assert.Len(t, sku1, 9)
	assert.NotEqual(t, sku1, sku2, "consecutive SKUs should differ")
}

func TestClone(t *testing.T) {
	rec := NewOrderRecord()
	rec.ClientInfo.FullName = "John Kamau"
	rec.Attachments.Files = []string{"blob-1"}
	rec.Attachments.Names = []string{"license.pdf"}

	clone := rec.Clone()

	t.Run("DeepEqual", func(t *testing.T) {
		assert.Equal(t, rec, clone)
	})

	t.Run("NoAliasing", func(t *testing.T) {
		clone.OrderDetails[0].Quantity = 99
		clone.Attachments.Files[0] = "blob-x"
		clone.ClientInfo.FullName = "Someone Else"

		assert.Equal(t, 1, rec.OrderDetails[0].Quantity)
		assert.Equal(t, "blob-1", rec.Attachments.Files[0])
		assert.Equal(t, "John Kamau", rec.ClientInfo.FullName)
	})

	t.Run("NilReceiver", func(t *testing.T) {
		var none *OrderRecord
		assert.Nil(t, none.Clone())
	})
}

func TestNormalize(t *testing.T) {
	rec := NewOrderRecord()
	rec.OrderDetails = []OrderLineItem{
		{OrderCategory: OrderRetail, ProductName: "soyOil", Quantity: 5},
		{OrderCategory: OrderRetail, ProductName: "", Quantity: 3},   // no product
		{OrderCategory: "", ProductName: "soyFlour", Quantity: 2},    // no category
		{OrderCategory: OrderExport, ProductName: "soyCake", Quantity: 0}, // no quantity
	}
	rec.Dispatch = []DispatchEntry{
		{Product: "soyOil", QuantityDispatched: 5, TransportMethod: TransportTruck, DispatchStatus: DispatchScheduled},
		{Product: "soyOil", QuantityDispatched: 0, TransportMethod: TransportTruck, DispatchStatus: DispatchScheduled},
		{Product: "", QuantityDispatched: 5, TransportMethod: TransportTruck, DispatchStatus: DispatchScheduled},
	}

	clean := rec.Normalize()

	require.Len(t, clean.OrderDetails, 1)
	assert.Equal(t, "soyOil", clean.OrderDetails[0].ProductName)
	require.Len(t, clean.Dispatch, 1)
	assert.Equal(t, 5, clean.Dispatch[0].QuantityDispatched)

	// input untouched
	assert.Len(t, rec.OrderDetails, 4)
	assert.Len(t, rec.Dispatch, 3)
}

func TestSummarize(t *testing.T) {
	rec := NewOrderRecord()
	rec.OrderDetails = []OrderLineItem{
		{
			OrderCategory: OrderRetail,
			ProductName:   "soyOil",
			Quantity:      10,
			UnitPrice:     decimal.NewFromInt(1000),
			Discount:      decimal.NewFromInt(10),
		},
		{
			OrderCategory: OrderWholesale,
			ProductName:   "soyFlour",
			Quantity:      5,
			UnitPrice:     decimal.NewFromInt(2000),
			Discount:      decimal.Zero,
		},
	}

	s := Summarize(rec)

	assert.True(t, s.Subtotal.Equal(decimal.NewFromInt(20000)), "subtotal %s", s.Subtotal)
	assert.True(t, s.DiscountTotal.Equal(decimal.NewFromInt(1000)), "discount %s", s.DiscountTotal)
	assert.True(t, s.Net.Equal(decimal.NewFromInt(19000)), "net %s", s.Net)
	assert.True(t, s.VAT.Equal(decimal.NewFromInt(3420)), "vat %s", s.VAT)
	assert.True(t, s.GrandTotal.Equal(decimal.NewFromInt(22420)), "grand total %s", s.GrandTotal)
}

func TestResetSection(t *testing.T) {
	t.Run("ComplianceOnly", func(t *testing.T) {
		rec := NewOrderRecord()
		rec.ClientInfo.FullName = "John Kamau"
		rec.Compliance.ExportLicense = "EXP-1"
		rec.Compliance.DigitalSignature = "signed"
		rec.Notes.ClientNotes = "call before delivery"

		ok := ResetSection(rec, SectionCompliance)

		require.True(t, ok)
		assert.Equal(t, DefaultCompliance(), rec.Compliance)
		assert.Equal(t, "John Kamau", rec.ClientInfo.FullName)
		assert.Equal(t, "call before delivery", rec.Notes.ClientNotes)
	})

	t.Run("Unknown", func(t *testing.T) {
		rec := NewOrderRecord()
		before := rec.Clone()

		ok := ResetSection(rec, Section("billing"))

		assert.False(t, ok)
		assert.Equal(t, before, rec)
	})
}

func TestResetPath(t *testing.T) {
	t.Run("Known", func(t *testing.T) {
		rec := NewOrderRecord()
		rec.ClientInfo.FullName = "John Kamau"
		rec.ClientInfo.PhoneNumber = "+250788123456"

		ok := ResetPath(rec, "clientInfo.fullName")

		require.True(t, ok)
		assert.Equal(t, "", rec.ClientInfo.FullName)
		assert.Equal(t, "+250788123456", rec.ClientInfo.PhoneNumber)
	})

	t.Run("EnumDefault", func(t *testing.T) {
		rec := NewOrderRecord()
		rec.SalesOps.OrderPriority = PriorityHigh

		require.True(t, ResetPath(rec, "salesOps.orderPriority"))
		assert.Equal(t, PriorityLow, rec.SalesOps.OrderPriority)
	})

	t.Run("Unknown", func(t *testing.T) {
		rec := NewOrderRecord()
		rec.ClientInfo.FullName = "John Kamau"
		before := rec.Clone()

		ok := ResetPath(rec, "clientInfo.fulName") // typo

		assert.False(t, ok)
		assert.Equal(t, before, rec)
	})
}
