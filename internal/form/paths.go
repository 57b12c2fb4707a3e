package form

import "github.com/shopspring/decimal"

// fieldResets maps dotted field paths to typed reset functions so call
// sites address fields by name without reflection. Paths into the slice
// sections are not addressable; clearing those goes through ResetSection.
var fieldResets = map[string]func(*OrderRecord){
	"clientInfo.fullName":               func(r *OrderRecord) { r.ClientInfo.FullName = "" },
	"clientInfo.phoneNumber":            func(r *OrderRecord) { r.ClientInfo.PhoneNumber = "" },
	"clientInfo.email":                  func(r *OrderRecord) { r.ClientInfo.Email = "" },
	"clientInfo.address":                func(r *OrderRecord) { r.ClientInfo.Address = "" },
	"clientInfo.clientCategory":         func(r *OrderRecord) { r.ClientInfo.ClientCategory = CategoryFarmer },
	"clientInfo.dateOfRegistration":     func(r *OrderRecord) { r.ClientInfo.DateOfRegistration = DefaultClientInfo().DateOfRegistration },
	"clientInfo.referredBy":             func(r *OrderRecord) { r.ClientInfo.ReferredBy = "" },
	"clientInfo.preferredContactMethod": func(r *OrderRecord) { r.ClientInfo.PreferredContactMethod = ContactSMS },
	"clientInfo.businessName":           func(r *OrderRecord) { r.ClientInfo.BusinessName = "" },
	"clientInfo.taxId":                  func(r *OrderRecord) { r.ClientInfo.TaxID = "" },
	"clientInfo.loyaltyProgram":         func(r *OrderRecord) { r.ClientInfo.LoyaltyProgram = false },
	"clientInfo.clientTier":             func(r *OrderRecord) { r.ClientInfo.ClientTier = TierStandard },
	"clientInfo.accountManager":         func(r *OrderRecord) { r.ClientInfo.AccountManager = "" },
	"clientInfo.clientPhoto":            func(r *OrderRecord) { r.ClientInfo.ClientPhoto = "" },

	"salesOps.salesRepresentative":   func(r *OrderRecord) { r.SalesOps.SalesRepresentative = "" },
	"salesOps.paymentStatus":         func(r *OrderRecord) { r.SalesOps.PaymentStatus = PaymentPending },
	"salesOps.paymentMethod":         func(r *OrderRecord) { r.SalesOps.PaymentMethod = MethodCashOnDelivery },
	"salesOps.paymentReceived":       func(r *OrderRecord) { r.SalesOps.PaymentReceived = decimal.Zero },
	"salesOps.paymentReceipt":        func(r *OrderRecord) { r.SalesOps.PaymentReceipt = "" },
	"salesOps.deliveryStatus":        func(r *OrderRecord) { r.SalesOps.DeliveryStatus = DeliveryProcessing },
	"salesOps.preferredDeliveryDate": func(r *OrderRecord) { r.SalesOps.PreferredDeliveryDate = "" },
	"salesOps.internalComments":      func(r *OrderRecord) { r.SalesOps.InternalComments = "" },
	"salesOps.orderPriority":         func(r *OrderRecord) { r.SalesOps.OrderPriority = PriorityLow },
	"salesOps.salesChannel":          func(r *OrderRecord) { r.SalesOps.SalesChannel = ChannelOnline },
	"salesOps.crmSync":               func(r *OrderRecord) { r.SalesOps.CRMSync = false },
	"salesOps.invoiceNumber":         func(r *OrderRecord) { r.SalesOps.InvoiceNumber = "" },

	"compliance.exportLicense":        func(r *OrderRecord) { r.Compliance.ExportLicense = "" },
	"compliance.qualityCertification": func(r *OrderRecord) { r.Compliance.QualityCertification = CertNone },
	"compliance.customsDeclaration":   func(r *OrderRecord) { r.Compliance.CustomsDeclaration = "" },
	"compliance.complianceNotes":      func(r *OrderRecord) { r.Compliance.ComplianceNotes = "" },
	"compliance.digitalSignature":     func(r *OrderRecord) { r.Compliance.DigitalSignature = "" },

	"confirmation.confirmedBy":        func(r *OrderRecord) { r.Confirmation.ConfirmedBy = "" },
	"confirmation.confirmationDate":   func(r *OrderRecord) { r.Confirmation.ConfirmationDate = DefaultConfirmation().ConfirmationDate },
	"confirmation.confirmationStatus": func(r *OrderRecord) { r.Confirmation.ConfirmationStatus = ConfirmationPending },

	"notes.internalNotes": func(r *OrderRecord) { r.Notes.InternalNotes = "" },
	"notes.clientNotes":   func(r *OrderRecord) { r.Notes.ClientNotes = "" },

	"status": func(r *OrderRecord) { r.Status = StatusDraft },
}

// ResetPath resets the leaf at the dotted path to its default value.
// Returns false when the path does not resolve; the record is untouched
// in that case.
func ResetPath(r *OrderRecord, path string) bool {
	reset, ok := fieldResets[path]
	if !ok {
		return false
	}
	reset(r)
	return true
}
