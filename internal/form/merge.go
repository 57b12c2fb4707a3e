package form

import "github.com/shopspring/decimal"

// Patch types for partial updates. A nil pointer means "leave the field
// unchanged"; a non-nil pointer overwrites it. Slice fields replace the
// target slice wholesale (line items and dispatch entries are edited as
// whole entries, never merged element-wise).

type ClientInfoPatch struct {
	FullName               *string
	PhoneNumber            *string
	Email                  *string
	Address                *string
	ClientCategory         *ClientCategory
	DateOfRegistration     *string
	ReferredBy             *string
	PreferredContactMethod *ContactMethod
	BusinessName           *string
	TaxID                  *string
	LoyaltyProgram         *bool
	ClientTier             *ClientTier
	AccountManager         *string
	ClientPhoto            *string
}

type SalesOpsPatch struct {
	SalesRepresentative   *string
	PaymentStatus         *PaymentStatus
	PaymentMethod         *PaymentMethod
	PaymentReceived       *decimal.Decimal
	PaymentReceipt        *string
	DeliveryStatus        *DeliveryStatus
	PreferredDeliveryDate *string
	InternalComments      *string
	OrderPriority         *OrderPriority
	SalesChannel          *SalesChannel
	CRMSync               *bool
	InvoiceNumber         *string
}

type CompliancePatch struct {
	ExportLicense        *string
	QualityCertification *QualityCertification
	CustomsDeclaration   *string
	ComplianceNotes      *string
	DigitalSignature     *string
}

type ConfirmationPatch struct {
	ConfirmedBy        *string
	ConfirmationDate   *string
	ConfirmationStatus *ConfirmationStatus
}

type NotesPatch struct {
	InternalNotes *string
	ClientNotes   *string
}

// RecordPatch is a partial OrderRecord. Nested sub-records merge key-wise;
// OrderDetails and Dispatch, when non-nil, replace the whole slice.
type RecordPatch struct {
	ClientInfo   *ClientInfoPatch
	OrderDetails []OrderLineItem
	Dispatch     []DispatchEntry
	SalesOps     *SalesOpsPatch
	Compliance   *CompliancePatch
	Confirmation *ConfirmationPatch
	Notes        *NotesPatch
	Attachments  *Attachments
	Status       *OrderStatus
	CreatedBy    *string
	UpdatedBy    *string
}

// Apply merges the patch into the record in place.
func (p RecordPatch) Apply(r *OrderRecord) {
	if p.ClientInfo != nil {
		p.ClientInfo.apply(&r.ClientInfo)
	}
	if p.OrderDetails != nil {
		r.OrderDetails = make([]OrderLineItem, len(p.OrderDetails))
		copy(r.OrderDetails, p.OrderDetails)
	}
	if p.Dispatch != nil {
		r.Dispatch = make([]DispatchEntry, len(p.Dispatch))
		copy(r.Dispatch, p.Dispatch)
	}
	if p.SalesOps != nil {
		p.SalesOps.apply(&r.SalesOps)
	}
	if p.Compliance != nil {
		p.Compliance.apply(&r.Compliance)
	}
	if p.Confirmation != nil {
		p.Confirmation.apply(&r.Confirmation)
	}
	if p.Notes != nil {
		p.Notes.apply(&r.Notes)
	}
	if p.Attachments != nil {
		r.Attachments = p.Attachments.clone()
	}
	if p.Status != nil {
		r.Status = *p.Status
	}
	if p.CreatedBy != nil {
		r.CreatedBy = *p.CreatedBy
	}
	if p.UpdatedBy != nil {
		r.UpdatedBy = *p.UpdatedBy
	}
}

func (p *ClientInfoPatch) apply(c *ClientInfo) {
	setStr(&c.FullName, p.FullName)
	setStr(&c.PhoneNumber, p.PhoneNumber)
	setStr(&c.Email, p.Email)
	setStr(&c.Address, p.Address)
	if p.ClientCategory != nil {
		c.ClientCategory = *p.ClientCategory
	}
	setStr(&c.DateOfRegistration, p.DateOfRegistration)
	setStr(&c.ReferredBy, p.ReferredBy)
	if p.PreferredContactMethod != nil {
		c.PreferredContactMethod = *p.PreferredContactMethod
	}
	setStr(&c.BusinessName, p.BusinessName)
	setStr(&c.TaxID, p.TaxID)
	if p.LoyaltyProgram != nil {
		c.LoyaltyProgram = *p.LoyaltyProgram
	}
	if p.ClientTier != nil {
		c.ClientTier = *p.ClientTier
	}
	setStr(&c.AccountManager, p.AccountManager)
	setStr(&c.ClientPhoto, p.ClientPhoto)
}

func (p *SalesOpsPatch) apply(s *SalesOps) {
	setStr(&s.SalesRepresentative, p.SalesRepresentative)
	if p.PaymentStatus != nil {
		s.PaymentStatus = *p.PaymentStatus
	}
	if p.PaymentMethod != nil {
		s.PaymentMethod = *p.PaymentMethod
	}
	if p.PaymentReceived != nil {
		s.PaymentReceived = *p.PaymentReceived
	}
	setStr(&s.PaymentReceipt, p.PaymentReceipt)
	if p.DeliveryStatus != nil {
		s.DeliveryStatus = *p.DeliveryStatus
	}
	setStr(&s.PreferredDeliveryDate, p.PreferredDeliveryDate)
	setStr(&s.InternalComments, p.InternalComments)
	if p.OrderPriority != nil {
		s.OrderPriority = *p.OrderPriority
	}
	if p.SalesChannel != nil {
		s.SalesChannel = *p.SalesChannel
	}
	if p.CRMSync != nil {
		s.CRMSync = *p.CRMSync
	}
	setStr(&s.InvoiceNumber, p.InvoiceNumber)
}

func (p *CompliancePatch) apply(c *Compliance) {
	setStr(&c.ExportLicense, p.ExportLicense)
	if p.QualityCertification != nil {
		c.QualityCertification = *p.QualityCertification
	}
	setStr(&c.CustomsDeclaration, p.CustomsDeclaration)
	setStr(&c.ComplianceNotes, p.ComplianceNotes)
	setStr(&c.DigitalSignature, p.DigitalSignature)
}

func (p *ConfirmationPatch) apply(c *Confirmation) {
	setStr(&c.ConfirmedBy, p.ConfirmedBy)
	setStr(&c.ConfirmationDate, p.ConfirmationDate)
	if p.ConfirmationStatus != nil {
		c.ConfirmationStatus = *p.ConfirmationStatus
	}
}

func (p *NotesPatch) apply(n *Notes) {
	setStr(&n.InternalNotes, p.InternalNotes)
	setStr(&n.ClientNotes, p.ClientNotes)
}

func setStr(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func StrPtr(s string) *string {
	return &s
}

func BoolPtr(b bool) *bool {
	return &b
}
