package i18n

// Label catalogs keyed by stored enum values and form.* section/field
// keys. The English catalog is complete; the Kinyarwanda catalog falls
// back to English for anything it does not carry.

var labelsEN = map[string]string{
	// client categories
	"farmer":          "Farmer",
	"distributor":     "Distributor",
	"retailer":        "Retailer",
	"partner":         "Partner",
	"individualBuyer": "Individual Buyer",

	// tiers
	"standard":   "Standard",
	"premium":    "Premium",
	"enterprise": "Enterprise",

	// contact methods
	"sms":      "SMS",
	"call":     "Phone Call",
	"email":    "Email",
	"whatsapp": "WhatsApp",

	// products
	"soyOil":   "Soy Oil",
	"soyFlour": "Soy Flour",
	"soyCake":  "Soy Cake",

	// unit types
	"liters":    "Liters",
	"kilograms": "Kilograms",
	"bottles":   "Bottles",
	"bags":      "Bags",

	// order categories
	"retail":    "Retail",
	"wholesale": "Wholesale",
	"export":    "Export",

	// urgency / packaging / schedule
	"urgent":       "Urgent",
	"custom":       "Custom",
	"fullPayment":  "Full Payment",
	"installments": "Installments",

	// transport
	"truck":             "Truck",
	"motorcycle":        "Motorcycle",
	"onFoot":            "On Foot",
	"thirdPartyCourier": "Third-Party Courier",

	// dispatch status
	"scheduled": "Scheduled",
	"inTransit": "In Transit",
	"delivered": "Delivered",
	"delayed":   "Delayed",

	// payment
	"pending":        "Pending",
	"partial":        "Partial",
	"paid":           "Paid",
	"cashOnDelivery": "Cash on Delivery",
	"mPesa":          "M-Pesa",
	"bankTransfer":   "Bank Transfer",
	"credit":         "Credit",

	// delivery / priority / channel
	"processing": "Processing",
	"dispatched": "Dispatched",
	"cancelled":  "Cancelled",
	"low":        "Low",
	"medium":     "Medium",
	"high":       "High",
	"online":     "Online",
	"phone":      "Phone",
	"inPerson":   "In Person",
	"agent":      "Agent",

	// certifications
	"iso22000": "ISO 22000",
	"haccp":    "HACCP",
	"organic":  "Organic",
	"none":     "None",

	// lifecycle
	"draft":     "Draft",
	"submitted": "Submitted",
	"approved":  "Approved",
	"rejected":  "Rejected",
	"confirmed": "Confirmed",

	// receipt sections and fields
	"form.title":              "Customer Order Summary",
	"form.clientInfo":         "Client Information",
	"form.orderDetails":       "Order Details",
	"form.dispatch":           "Dispatch",
	"form.financialSummary":   "Financial Summary",
	"form.fullName":           "Full Name",
	"form.clientID":           "Client ID",
	"form.phoneNumber":        "Phone Number",
	"form.email":              "Email",
	"form.address":            "Address",
	"form.clientCategory":     "Client Category",
	"form.dateOfRegistration": "Date of Registration",
	"form.contactMethod":      "Preferred Contact",
	"form.clientTier":         "Client Tier",
	"form.productName":        "Product",
	"form.sku":                "SKU",
	"form.quantity":           "Quantity",
	"form.unitPrice":          "Unit Price",
	"form.total":              "Total",
	"form.subtotal":           "Subtotal",
	"form.totalDiscount":      "Total Discount",
	"form.netAmount":          "Net Amount",
	"form.taxVAT":             "Tax (VAT 18%)",
	"form.grandTotal":         "Grand Total",
}

var labelsRW = map[string]string{
	"farmer":          "Umuhinzi",
	"distributor":     "Ukwirakwiza",
	"retailer":        "Umucuruzi",
	"individualBuyer": "Umuguzi ku giti cye",

	"soyOil":   "Amavuta ya Soya",
	"soyFlour": "Ifu ya Soya",

	"liters":    "Litiro",
	"kilograms": "Ibiro",

	"pending":   "Bitegerejwe",
	"paid":      "Byishyuwe",
	"delivered": "Byagejejwe",

	"draft":     "Umushinga",
	"submitted": "Byoherejwe",

	"form.title":            "Incamake y'Itegeko ry'Umukiriya",
	"form.clientInfo":       "Amakuru y'Umukiriya",
	"form.orderDetails":     "Ibisobanuro by'Itegeko",
	"form.financialSummary": "Incamake y'Imari",
	"form.fullName":         "Amazina Yombi",
	"form.phoneNumber":      "Telefoni",
	"form.address":          "Aderesi",
	"form.quantity":         "Ingano",
	"form.unitPrice":        "Igiciro",
	"form.total":            "Igiteranyo",
	"form.grandTotal":       "Igiteranyo Rusange",
}
