package form

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/shopspring/decimal"
)

const skuAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewSKU generates a SOY-xxxxx stock keeping unit with a 5-char base36
// suffix.
func NewSKU() string {
	buf := make([]byte, 5)
	for i := range buf {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(skuAlphabet))))
		if err != nil {
			// fallback: time-based entropy
			n = big.NewInt(time.Now().UnixNano() % int64(len(skuAlphabet)))
		}
		buf[i] = skuAlphabet[n.Int64()]
	}
	return fmt.Sprintf("SOY-%s", buf)
}

// DefaultLineItem is the single retail soy-oil entry a fresh order starts
// with.
func DefaultLineItem() OrderLineItem {
	return OrderLineItem{
		OrderCategory:       OrderRetail,
		ProductName:         "soyOil",
		SKU:                 NewSKU(),
		UnitType:            UnitLiters,
		Quantity:            1,
		UnitPrice:           decimal.Zero,
		Discount:            decimal.Zero,
		OrderUrgency:        UrgencyStandard,
		PackagingPreference: PackagingStandard,
		PaymentSchedule:     ScheduleFullPayment,
	}
}

func DefaultClientInfo() ClientInfo {
	return ClientInfo{
		ClientCategory:         CategoryFarmer,
		DateOfRegistration:     time.Now().Format("2006-01-02"),
		PreferredContactMethod: ContactSMS,
		ClientTier:             TierStandard,
	}
}

func DefaultSalesOps() SalesOps {
	return SalesOps{
		PaymentStatus:   PaymentPending,
		PaymentMethod:   MethodCashOnDelivery,
		PaymentReceived: decimal.Zero,
		DeliveryStatus:  DeliveryProcessing,
		OrderPriority:   PriorityLow,
		SalesChannel:    ChannelOnline,
	}
}

func DefaultCompliance() Compliance {
	return Compliance{
		QualityCertification: CertNone,
	}
}

func DefaultConfirmation() Confirmation {
	return Confirmation{
		ConfirmationDate:   time.Now().Format("2006-01-02"),
		ConfirmationStatus: ConfirmationPending,
	}
}

func DefaultAttachments() Attachments {
	return Attachments{
		Files: []string{},
		Names: []string{},
	}
}

// NewOrderRecord builds a fresh draft with default values: one default
// line item, empty dispatch, both timestamps set to now.
func NewOrderRecord() *OrderRecord {
	now := time.Now()
	return &OrderRecord{
		ClientInfo:   DefaultClientInfo(),
		OrderDetails: []OrderLineItem{DefaultLineItem()},
		Dispatch:     []DispatchEntry{},
		SalesOps:     DefaultSalesOps(),
		Compliance:   DefaultCompliance(),
		Confirmation: DefaultConfirmation(),
		Notes:        Notes{},
		Attachments:  DefaultAttachments(),
		Status:       StatusDraft,
		CreatedAt:    now,
		UpdatedAt:    now,
		CreatedBy:    "User",
	}
}
