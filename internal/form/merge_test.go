package form

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordPatch_Apply(t *testing.T) {
	t.Run("NestedMergeKeepsSiblings", func(t *testing.T) {
		rec := NewOrderRecord()
		rec.ClientInfo.Address = "Kigali, Gasabo"
		defaultSKU := rec.OrderDetails[0].SKU

		patch := RecordPatch{
			ClientInfo: &ClientInfoPatch{
				FullName:    StrPtr("John Kamau"),
				PhoneNumber: StrPtr("+250788123456"),
			},
		}
		patch.Apply(rec)

		assert.Equal(t, "John Kamau", rec.ClientInfo.FullName)
		assert.Equal(t, "+250788123456", rec.ClientInfo.PhoneNumber)
		// untouched siblings survive the merge
		assert.Equal(t, "Kigali, Gasabo", rec.ClientInfo.Address)
		assert.Equal(t, CategoryFarmer, rec.ClientInfo.ClientCategory)
		// the default line item is still there
		require.Len(t, rec.OrderDetails, 1)
		assert.Equal(t, defaultSKU, rec.OrderDetails[0].SKU)
	})

	t.Run("SlicesReplaceWholesale", func(t *testing.T) {
		rec := NewOrderRecord()

		items := []OrderLineItem{
			{OrderCategory: OrderWholesale, ProductName: "soyFlour", Quantity: 20, UnitPrice: decimal.NewFromInt(500)},
			{OrderCategory: OrderExport, ProductName: "soyCake", Quantity: 3, UnitPrice: decimal.NewFromInt(900)},
		}
		patch := RecordPatch{OrderDetails: items}
		patch.Apply(rec)

		require.Len(t, rec.OrderDetails, 2)
		assert.Equal(t, "soyFlour", rec.OrderDetails[0].ProductName)

		// the record owns its own copy
		items[0].ProductName = "changed"
		assert.Equal(t, "soyFlour", rec.OrderDetails[0].ProductName)
	})

	t.Run("EmptySliceClears", func(t *testing.T) {
		rec := NewOrderRecord()
		patch := RecordPatch{OrderDetails: []OrderLineItem{}}
		patch.Apply(rec)

		assert.Empty(t, rec.OrderDetails)
	})

	t.Run("NilSliceLeavesUnchanged", func(t *testing.T) {
		rec := NewOrderRecord()
		patch := RecordPatch{Notes: &NotesPatch{ClientNotes: StrPtr("ring twice")}}
		patch.Apply(rec)

		assert.Len(t, rec.OrderDetails, 1)
		assert.Equal(t, "ring twice", rec.Notes.ClientNotes)
	})

	t.Run("BoolAndEnumPointers", func(t *testing.T) {
		rec := NewOrderRecord()
		tier := TierPremium
		status := StatusApproved

		patch := RecordPatch{
			ClientInfo: &ClientInfoPatch{
				LoyaltyProgram: BoolPtr(true),
				ClientTier:     &tier,
			},
			Status: &status,
		}
		patch.Apply(rec)

		assert.True(t, rec.ClientInfo.LoyaltyProgram)
		assert.Equal(t, TierPremium, rec.ClientInfo.ClientTier)
		assert.Equal(t, StatusApproved, rec.Status)
	})

	t.Run("SalesOpsAndCompliance", func(t *testing.T) {
		rec := NewOrderRecord()
		paid := PaymentPaid
		received := decimal.NewFromInt(150000)

		patch := RecordPatch{
			SalesOps: &SalesOpsPatch{
				PaymentStatus:   &paid,
				PaymentReceived: &received,
				InvoiceNumber:   StrPtr("INV-001"),
			},
			Compliance: &CompliancePatch{
				DigitalSignature: StrPtr("data:image/png;base64,abc"),
			},
		}
		patch.Apply(rec)

		assert.Equal(t, PaymentPaid, rec.SalesOps.PaymentStatus)
		assert.True(t, rec.SalesOps.PaymentReceived.Equal(received))
		assert.Equal(t, "INV-001", rec.SalesOps.InvoiceNumber)
		assert.Equal(t, "data:image/png;base64,abc", rec.Compliance.DigitalSignature)
		// merged section keeps its defaults elsewhere
		assert.Equal(t, MethodCashOnDelivery, rec.SalesOps.PaymentMethod)
	})

	t.Run("AttachmentsReplace", func(t *testing.T) {
		rec := NewOrderRecord()
		rec.Attachments.Files = []string{"old"}
		rec.Attachments.Names = []string{"old.pdf"}

		patch := RecordPatch{
			Attachments: &Attachments{
				Files: []string{"blob-1", "blob-2"},
				Names: []string{"a.pdf", "b.pdf"},
			},
		}
		patch.Apply(rec)

		assert.Equal(t, []string{"blob-1", "blob-2"}, rec.Attachments.Files)
		assert.Equal(t, []string{"a.pdf", "b.pdf"}, rec.Attachments.Names)
	})
}
