package form

// Section names the top-level sub-records that can be cleared
// independently.
type Section string

const (
	SectionClientInfo   Section = "clientInfo"
	SectionOrderDetails Section = "orderDetails"
	SectionDispatch     Section = "dispatch"
	SectionSalesOps     Section = "salesOps"
	SectionCompliance   Section = "compliance"
	SectionConfirmation Section = "confirmation"
	SectionNotes        Section = "notes"
	SectionAttachments  Section = "attachments"
)

// ResetSection replaces the named sub-record with its default value,
// leaving every sibling untouched. Returns false for an unknown section.
func ResetSection(r *OrderRecord, s Section) bool {
	switch s {
	case SectionClientInfo:
		r.ClientInfo = DefaultClientInfo()
	case SectionOrderDetails:
		r.OrderDetails = []OrderLineItem{DefaultLineItem()}
	case SectionDispatch:
		r.Dispatch = []DispatchEntry{}
	case SectionSalesOps:
		r.SalesOps = DefaultSalesOps()
	case SectionCompliance:
		r.Compliance = DefaultCompliance()
	case SectionConfirmation:
		r.Confirmation = DefaultConfirmation()
	case SectionNotes:
		r.Notes = Notes{}
	case SectionAttachments:
		r.Attachments = DefaultAttachments()
	default:
		return false
	}
	return true
}
