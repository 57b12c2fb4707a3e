package form

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	StatusDraft     OrderStatus = "draft"
	StatusSubmitted OrderStatus = "submitted"
	StatusApproved  OrderStatus = "approved"
	StatusRejected  OrderStatus = "rejected"
)

type ClientCategory string

const (
	CategoryFarmer          ClientCategory = "farmer"
	CategoryDistributor     ClientCategory = "distributor"
	CategoryRetailer        ClientCategory = "retailer"
	CategoryPartner         ClientCategory = "partner"
	CategoryIndividualBuyer ClientCategory = "individualBuyer"
)

type ClientTier string

const (
	TierStandard   ClientTier = "standard"
	TierPremium    ClientTier = "premium"
	TierEnterprise ClientTier = "enterprise"
)

type ContactMethod string

const (
	ContactSMS      ContactMethod = "sms"
	ContactCall     ContactMethod = "call"
	ContactEmail    ContactMethod = "email"
	ContactWhatsApp ContactMethod = "whatsapp"
)

type OrderCategory string

const (
	OrderRetail    OrderCategory = "retail"
	OrderWholesale OrderCategory = "wholesale"
	OrderExport    OrderCategory = "export"
)

type UnitType string

const (
	UnitLiters    UnitType = "liters"
	UnitKilograms UnitType = "kilograms"
	UnitBottles   UnitType = "bottles"
	UnitBags      UnitType = "bags"
)

type Urgency string

const (
	UrgencyStandard Urgency = "standard"
	UrgencyUrgent   Urgency = "urgent"
)

type Packaging string

const (
	PackagingStandard Packaging = "standard"
	PackagingCustom   Packaging = "custom"
)

type PaymentSchedule string

const (
	ScheduleFullPayment  PaymentSchedule = "fullPayment"
	ScheduleInstallments PaymentSchedule = "installments"
)

type TransportMethod string

const (
	TransportTruck      TransportMethod = "truck"
	TransportMotorcycle TransportMethod = "motorcycle"
	TransportOnFoot     TransportMethod = "onFoot"
	TransportCourier    TransportMethod = "thirdPartyCourier"
)

type DispatchStatus string

const (
	DispatchScheduled DispatchStatus = "scheduled"
	DispatchInTransit DispatchStatus = "inTransit"
	DispatchDelivered DispatchStatus = "delivered"
	DispatchDelayed   DispatchStatus = "delayed"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPartial PaymentStatus = "partial"
	PaymentPaid    PaymentStatus = "paid"
)

type PaymentMethod string

const (
	MethodCashOnDelivery PaymentMethod = "cashOnDelivery"
	MethodMPesa          PaymentMethod = "mPesa"
	MethodBankTransfer   PaymentMethod = "bankTransfer"
	MethodCredit         PaymentMethod = "credit"
)

type DeliveryStatus string

const (
	DeliveryProcessing DeliveryStatus = "processing"
	DeliveryDispatched DeliveryStatus = "dispatched"
	DeliveryDelivered  DeliveryStatus = "delivered"
	DeliveryCancelled  DeliveryStatus = "cancelled"
)

type OrderPriority string

const (
	PriorityLow    OrderPriority = "low"
	PriorityMedium OrderPriority = "medium"
	PriorityHigh   OrderPriority = "high"
)

type SalesChannel string

const (
	ChannelOnline   SalesChannel = "online"
	ChannelPhone    SalesChannel = "phone"
	ChannelInPerson SalesChannel = "inPerson"
	ChannelAgent    SalesChannel = "agent"
)

type QualityCertification string

const (
	CertISO22000 QualityCertification = "iso22000"
	CertHACCP    QualityCertification = "haccp"
	CertOrganic  QualityCertification = "organic"
	CertNone     QualityCertification = "none"
)

type ConfirmationStatus string

const (
	ConfirmationPending   ConfirmationStatus = "pending"
	ConfirmationConfirmed ConfirmationStatus = "confirmed"
	ConfirmationRejected  ConfirmationStatus = "rejected"
)

type ClientInfo struct {
	FullName               string         `json:"fullName" validate:"required"`
	PhoneNumber            string         `json:"phoneNumber" validate:"required,e164"`
	Email                  string         `json:"email" validate:"omitempty,email"`
	Address                string         `json:"address" validate:"required"`
	ClientCategory         ClientCategory `json:"clientCategory" validate:"required,oneof=farmer distributor retailer partner individualBuyer"`
	DateOfRegistration     string         `json:"dateOfRegistration"`
	ReferredBy             string         `json:"referredBy"`
	PreferredContactMethod ContactMethod  `json:"preferredContactMethod" validate:"omitempty,oneof=sms call email whatsapp"`
	BusinessName           string         `json:"businessName"`
	TaxID                  string         `json:"taxId"`
	LoyaltyProgram         bool           `json:"loyaltyProgram"`
	ClientTier             ClientTier     `json:"clientTier" validate:"omitempty,oneof=standard premium enterprise"`
	AccountManager         string         `json:"accountManager"`
	ClientPhoto            string         `json:"clientPhoto"`
}

type OrderLineItem struct {
	OrderCategory       OrderCategory   `json:"orderCategory" validate:"required,oneof=retail wholesale export"`
	ProductName         string          `json:"productName" validate:"required"`
	SKU                 string          `json:"sku"`
	UnitType            UnitType        `json:"unitType" validate:"omitempty,oneof=liters kilograms bottles bags"`
	Quantity            int             `json:"quantity" validate:"gte=1"`
	UnitPrice           decimal.Decimal `json:"unitPrice"`
	Discount            decimal.Decimal `json:"discount"`
	Notes               string          `json:"notes"`
	OrderUrgency        Urgency         `json:"orderUrgency" validate:"omitempty,oneof=standard urgent"`
	PackagingPreference Packaging       `json:"packagingPreference" validate:"omitempty,oneof=standard custom"`
	PaymentSchedule     PaymentSchedule `json:"paymentSchedule" validate:"omitempty,oneof=fullPayment installments"`
}

type DispatchEntry struct {
	Product            string          `json:"product" validate:"required"`
	QuantityDispatched int             `json:"quantityDispatched" validate:"gte=1"`
	TransportMethod    TransportMethod `json:"transportMethod" validate:"omitempty,oneof=truck motorcycle onFoot thirdPartyCourier"`
	DispatchStatus     DispatchStatus  `json:"dispatchStatus" validate:"omitempty,oneof=scheduled inTransit delivered delayed"`
	DispatchDate       string          `json:"dispatchDate"`
	TrackingReference  string          `json:"trackingReference"`
	DispatchNotes      string          `json:"dispatchNotes"`
	DriverContact      string          `json:"driverContact"`
	WarehouseLocation  string          `json:"warehouseLocation"`
}

type SalesOps struct {
	SalesRepresentative   string          `json:"salesRepresentative"`
	PaymentStatus         PaymentStatus   `json:"paymentStatus" validate:"omitempty,oneof=pending partial paid"`
	PaymentMethod         PaymentMethod   `json:"paymentMethod" validate:"omitempty,oneof=cashOnDelivery mPesa bankTransfer credit"`
	PaymentReceived       decimal.Decimal `json:"paymentReceived"`
	PaymentReceipt        string          `json:"paymentReceipt"`
	DeliveryStatus        DeliveryStatus  `json:"deliveryStatus" validate:"omitempty,oneof=processing dispatched delivered cancelled"`
	PreferredDeliveryDate string          `json:"preferredDeliveryDate"`
	InternalComments      string          `json:"internalComments"`
	OrderPriority         OrderPriority   `json:"orderPriority" validate:"omitempty,oneof=low medium high"`
	SalesChannel          SalesChannel    `json:"salesChannel" validate:"omitempty,oneof=online phone inPerson agent"`
	CRMSync               bool            `json:"crmSync"`
	InvoiceNumber         string          `json:"invoiceNumber"`
}

type Compliance struct {
	ExportLicense        string               `json:"exportLicense"`
	QualityCertification QualityCertification `json:"qualityCertification" validate:"omitempty,oneof=iso22000 haccp organic none"`
	CustomsDeclaration   string               `json:"customsDeclaration"`
	ComplianceNotes      string               `json:"complianceNotes"`
	DigitalSignature     string               `json:"digitalSignature"`
}

type Confirmation struct {
	ConfirmedBy        string             `json:"confirmedBy"`
	ConfirmationDate   string             `json:"confirmationDate"`
	ConfirmationStatus ConfirmationStatus `json:"confirmationStatus" validate:"omitempty,oneof=pending confirmed rejected"`
}

type Notes struct {
	InternalNotes string `json:"internalNotes"`
	ClientNotes   string `json:"clientNotes"`
}

// Attachments keeps two parallel arrays: Files holds opaque storage
// references, Names the matching display names. Index i of one always
// refers to index i of the other.
type Attachments struct {
	Files []string `json:"attachment"`
	Names []string `json:"attachmentName"`
}

// OrderRecord is the root aggregate for one client's in-progress or
// submitted order. It is always handled as a value snapshot: mutations go
// through the draft store, which clones before writing.
type OrderRecord struct {
	ClientInfo   ClientInfo      `json:"clientInfo"`
	OrderDetails []OrderLineItem `json:"orderDetails" validate:"dive"`
	Dispatch     []DispatchEntry `json:"dispatch" validate:"dive"`
	SalesOps     SalesOps        `json:"salesOps"`
	Compliance   Compliance      `json:"compliance"`
	Confirmation Confirmation    `json:"confirmation"`
	Notes        Notes           `json:"notes"`
	Attachments  Attachments     `json:"attachments"`
	Status       OrderStatus     `json:"status"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
	CreatedBy    string          `json:"createdBy"`
	UpdatedBy    string          `json:"updatedBy"`
}

// Clone returns a deep copy. Slices are copied element-wise so the result
// shares no memory with the receiver.
func (r *OrderRecord) Clone() *OrderRecord {
	if r == nil {
		return nil
	}
	out := *r

	out.OrderDetails = make([]OrderLineItem, len(r.OrderDetails))
	copy(out.OrderDetails, r.OrderDetails)

	out.Dispatch = make([]DispatchEntry, len(r.Dispatch))
	copy(out.Dispatch, r.Dispatch)

	out.Attachments = r.Attachments.clone()

	return &out
}

func (a Attachments) clone() Attachments {
	out := Attachments{
		Files: make([]string, len(a.Files)),
		Names: make([]string, len(a.Names)),
	}
	copy(out.Files, a.Files)
	copy(out.Names, a.Names)
	return out
}
