package receipt

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"soyco-intake/internal/form"
	"soyco-intake/internal/i18n"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// ErrRenderFailed wraps any PDF assembly failure so callers can tell a
// rendering problem from a store-level one.
var ErrRenderFailed = errors.New("failed to render order summary")

const DefaultFilename = "meru_order_summary.pdf"

// CompanyInfo is printed in the receipt header.
type CompanyInfo struct {
	Name    string
	Contact string
}

/// Artifact is the generated receipt: the PDF bytes plus the identifiers a
// caller needs to store or share it.
type Artifact struct {
	OrderID  string
	Filename string
	Bytes    []byte
}

// Generator assembles order summary PDFs. It only ever reads the record
// it is given.
type Generator struct {
	company CompanyInfo
	labels  *i18n.Translator
	printer *message.Printer
}

func NewGenerator(company CompanyInfo, labels *i18n.Translator) *Generator {
	if company.Name == "" {
		company.Name = "Mount Meru SoyCo Rwanda"
	}
	if company.Contact == "" {
		company.Contact = "Kigali, Rwanda | +250788123456 | www.mountmerusoyco.rw"
	}
	return &Generator{
		company: company,
		labels:  labels,
		printer: message.NewPrinter(labels.Tag()),
	}
}

// Render builds the order summary for a record snapshot. The record is
// not mutated.
func (g *Generator) Render(rec *form.OrderRecord, filename string) (*Artifact, error) {
	if filename == "" {
		filename = DefaultFilename
	}
	orderID := GenerateOrderID()

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(g.labels.Label("form.title"), true)
	pdf.AddPage()
	pageWidth, _ := pdf.GetPageSize()

	g.header(pdf, pageWidth, orderID)
	g.clientTable(pdf, rec)
	g.financialSummary(pdf, rec)
	g.lineItemTable(pdf, rec)
	if len(rec.Dispatch) > 0 {
		g.dispatchTable(pdf, rec)
	}
	g.signature(pdf, rec)
	g.footer(pdf, orderID)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}

	return &Artifact{
		OrderID:  orderID,
		Filename: filename,
		Bytes:    buf.Bytes(),
	}, nil
}

func (g *Generator) header(pdf *gofpdf.Fpdf, pageWidth float64, orderID string) {
	pdf.SetFillColor(245, 245, 245)
	pdf.Rect(0, 0, pageWidth, 40, "F")

	pdf.SetTextColor(0, 105, 92)
	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetXY(15, 10)
	pdf.Cell(90, 10, g.company.Name)

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(15, 20)
	pdf.Cell(120, 6, g.company.Contact)

	pdf.SetXY(pageWidth-80, 10)
	pdf.Cell(65, 6, fmt.Sprintf("ORDER ID: %s", orderID))
	pdf.SetXY(pageWidth-80, 16)
	pdf.Cell(65, 6, fmt.Sprintf("DATE: %s", time.Now().Format("2006-01-02")))

	pdf.SetFont("Helvetica", "B", 15)
	pdf.SetTextColor(0, 105, 92)
	pdf.SetXY(0, 28)
	pdf.CellFormat(pageWidth, 10, g.labels.Label("form.title"), "", 0, "C", false, 0, "")
	pdf.SetY(45)
}

func (g *Generator) sectionTitle(pdf *gofpdf.Fpdf, key string) {
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFillColor(44, 62, 80)
	pdf.CellFormat(180, 8, g.labels.Label(key), "", 1, "L", true, 0, "")
	pdf.SetTextColor(0, 0, 0)
}

func (g *Generator) keyValueRow(pdf *gofpdf.Fpdf, key, value string, shade bool) {
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetFillColor(245, 245, 245)
	if value == "" {
		value = "-"
	}
	pdf.CellFormat(60, 7, g.labels.Label(key), "1", 0, "L", shade, 0, "")
	pdf.CellFormat(120, 7, value, "1", 1, "L", shade, 0, "")
}

func (g *Generator) clientTable(pdf *gofpdf.Fpdf, rec *form.OrderRecord) {
	g.sectionTitle(pdf, "form.clientInfo")

	ci := rec.ClientInfo
	rows := []struct{ key, val string }{
		{"form.fullName", ci.FullName},
		{"form.phoneNumber", ci.PhoneNumber},
		{"form.email", ci.Email},
		{"form.address", ci.Address},
		{"form.clientCategory", g.labels.Label(string(ci.ClientCategory))},
		{"form.dateOfRegistration", ci.DateOfRegistration},
		{"form.contactMethod", g.labels.Label(string(ci.PreferredContactMethod))},
		{"form.clientTier", g.labels.Label(string(ci.ClientTier))},
	}
	for i, r := range rows {
		g.keyValueRow(pdf, r.key, r.val, i%2 == 1)
	}
}

func (g *Generator) financialSummary(pdf *gofpdf.Fpdf, rec *form.OrderRecord) {
	g.sectionTitle(pdf, "form.financialSummary")

	s := form.Summarize(rec)
	rows := []struct {
		key string
		val decimal.Decimal
	}{
		{"form.subtotal", s.Subtotal},
		{"form.totalDiscount", s.DiscountTotal},
		{"form.netAmount", s.Net},
		{"form.taxVAT", s.VAT},
		{"form.grandTotal", s.GrandTotal},
	}
	for i, r := range rows {
		g.keyValueRow(pdf, r.key, g.money(r.val), i%2 == 1)
	}
}

func (g *Generator) lineItemTable(pdf *gofpdf.Fpdf, rec *form.OrderRecord) {
	g.sectionTitle(pdf, "form.orderDetails")

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(0, 105, 92)
	pdf.SetTextColor(255, 255, 255)
	pdf.CellFormat(10, 7, "#", "1", 0, "C", true, 0, "")
	pdf.CellFormat(45, 7, g.labels.Label("form.productName"), "1", 0, "L", true, 0, "")
	pdf.CellFormat(35, 7, g.labels.Label("form.sku"), "1", 0, "L", true, 0, "")
	pdf.CellFormat(20, 7, g.labels.Label("form.quantity"), "1", 0, "R", true, 0, "")
	pdf.CellFormat(35, 7, g.labels.Label("form.unitPrice"), "1", 0, "R", true, 0, "")
	pdf.CellFormat(35, 7, g.labels.Label("form.total"), "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFillColor(245, 245, 245)
	for i, li := range rec.OrderDetails {
		shade := i%2 == 1
		pdf.CellFormat(10, 7, fmt.Sprintf("%d", i+1), "1", 0, "C", shade, 0, "")
		pdf.CellFormat(45, 7, g.labels.Label(li.ProductName), "1", 0, "L", shade, 0, "")
		pdf.CellFormat(35, 7, li.SKU, "1", 0, "L", shade, 0, "")
		pdf.CellFormat(20, 7, fmt.Sprintf("%d", li.Quantity), "1", 0, "R", shade, 0, "")
		pdf.CellFormat(35, 7, g.money(li.UnitPrice), "1", 0, "R", shade, 0, "")
		pdf.CellFormat(35, 7, g.money(li.NetTotal()), "1", 1, "R", shade, 0, "")
	}
}

func (g *Generator) dispatchTable(pdf *gofpdf.Fpdf, rec *form.OrderRecord) {
	g.sectionTitle(pdf, "form.dispatch")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetFillColor(245, 245, 245)
	for i, d := range rec.Dispatch {
		shade := i%2 == 1
		pdf.CellFormat(45, 7, g.labels.Label(d.Product), "1", 0, "L", shade, 0, "")
		pdf.CellFormat(20, 7, fmt.Sprintf("%d", d.QuantityDispatched), "1", 0, "R", shade, 0, "")
		pdf.CellFormat(40, 7, g.labels.Label(string(d.TransportMethod)), "1", 0, "L", shade, 0, "")
		pdf.CellFormat(35, 7, g.labels.Label(string(d.DispatchStatus)), "1", 0, "L", shade, 0, "")
		pdf.CellFormat(40, 7, d.TrackingReference, "1", 1, "L", shade, 0, "")
	}
}

func (g *Generator) signature(pdf *gofpdf.Fpdf, rec *form.OrderRecord) {
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(100, 100, 100)
	pdf.Cell(90, 6, "Authorized Signature:")
	pdf.Ln(6)
	pdf.Cell(90, 6, "________________________")
	if rec.Compliance.DigitalSignature != "" {
		pdf.Ln(6)
		pdf.Cell(90, 6, "Digitally signed")
	}
}

func (g *Generator) footer(pdf *gofpdf.Fpdf, orderID string) {
	_, pageHeight := pdf.GetPageSize()
	pdf.SetY(pageHeight - 15)
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(100, 100, 100)
	footerText := fmt.Sprintf("CONFIDENTIAL - %s - %s | %s | Page %d",
		orderID, g.company.Name, time.Now().Format("2006-01-02"), pdf.PageNo())
	pdf.Cell(180, 6, footerText)
}

// money formats an amount as Rwandan francs with locale-aware grouping.
func (g *Generator) money(d decimal.Decimal) string {
	v, _ := d.Float64()
	return g.printer.Sprintf("RWF %v", number.Decimal(v, number.MaxFractionDigits(2)))
}
