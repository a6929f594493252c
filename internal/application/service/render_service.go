package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strconv"

	"github.com/devashishs/billmate-api/internal/domain/entity"
	"github.com/devashishs/billmate-api/internal/domain/enum"
	"github.com/devashishs/billmate-api/internal/domain/gst"
	"github.com/devashishs/billmate-api/internal/domain/repository"
	"github.com/devashishs/billmate-api/pkg/apperror"
)

// RenderService produces the printable invoice document. The layout is driven
// entirely by the owning business's invoice settings: column selection, labels
// and ordering, header fields, summary rows and the section toggles.
type RenderService struct {
	invoiceRepo    repository.InvoiceRepository
	businessRepo   repository.BusinessRepository
	currencySymbol string
	tmpl           *template.Template
}

// NewRenderService creates a new render service
func NewRenderService(invoiceRepo repository.InvoiceRepository, businessRepo repository.BusinessRepository, currencySymbol string) *RenderService {
	return &RenderService{
		invoiceRepo:    invoiceRepo,
		businessRepo:   businessRepo,
		currencySymbol: currencySymbol,
		tmpl:           template.Must(template.New("invoice").Parse(invoiceTemplate)),
	}
}

type renderColumn struct {
	Label   string
	Numeric bool
}

type renderCell struct {
	Text    string
	Numeric bool
}

type renderField struct {
	Label string
	Value string
}

type renderSummaryRow struct {
	Label string
	Value string
	Grand bool
}

type invoiceView struct {
	Business      *entity.Business
	LogoURL       template.URL
	InvoiceNumber string
	HeaderFields  []renderField
	Columns       []renderColumn
	Rows          [][]renderCell
	Summary       []renderSummaryRow
	ShowBillTo    bool
	CustomerName  string
	CustomerAddr  string
	CustomerGSTIN string
	CustomerState string
	ShowTerms     bool
	TermsText     string
	ShowNotes     bool
	NotesText     string
}

// RenderInvoice renders the invoice as a self-contained HTML document.
func (s *RenderService) RenderInvoice(ctx context.Context, invoiceID uint) ([]byte, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	business, err := s.businessRepo.GetByID(ctx, invoice.BusinessID)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, apperror.NewNotFoundError("Business")
	}

	view := s.buildView(invoice, business)
	var buf bytes.Buffer
	if err := s.tmpl.Execute(&buf, view); err != nil {
		return nil, apperror.NewInternalError(err)
	}
	return buf.Bytes(), nil
}

func (s *RenderService) buildView(invoice *entity.Invoice, business *entity.Business) *invoiceView {
	settings := &business.InvoiceSettings
	columns := settings.VisibleColumns()

	view := &invoiceView{
		Business:      business,
		InvoiceNumber: invoice.InvoiceNumber,
		HeaderFields:  s.headerFields(invoice, settings),
		ShowBillTo:    settings.ShowBillTo,
		CustomerName:  invoice.CustomerName,
		CustomerAddr:  invoice.CustomerAddr,
		CustomerGSTIN: invoice.CustomerGSTIN,
		CustomerState: invoice.CustomerState,
		ShowTerms:     settings.ShowTerms && settings.TermsText != "",
		TermsText:     settings.TermsText,
		ShowNotes:     settings.ShowNotes && settings.NotesText != "",
		NotesText:     settings.NotesText,
	}
	// Logos are stored as data URLs, which the template engine would
	// otherwise refuse to emit in a src attribute.
	if business.Logo != nil && *business.Logo != "" {
		view.LogoURL = template.URL(*business.Logo)
	}

	for _, col := range columns {
		view.Columns = append(view.Columns, renderColumn{
			Label:   col.EffectiveLabel(),
			Numeric: col.Kind.Numeric(),
		})
	}
	for i := range invoice.Items {
		view.Rows = append(view.Rows, s.itemRow(&invoice.Items[i], i, columns))
	}
	view.Summary = s.summaryRows(invoice, settings)
	return view
}

func (s *RenderService) headerFields(invoice *entity.Invoice, settings *entity.InvoiceSettings) []renderField {
	fields := make([]renderField, 0, 4)
	for _, hf := range settings.VisibleHeaderFields() {
		var value string
		switch hf.ID {
		case entity.HeaderFieldInvoiceNumber:
			value = invoice.InvoiceNumber
		case entity.HeaderFieldDate:
			value = invoice.Date
		case entity.HeaderFieldDueDate:
			value = invoice.DueDate
		case entity.HeaderFieldPONumber:
			value = invoice.PONumber
		}
		if value == "" {
			continue
		}
		fields = append(fields, renderField{Label: hf.Label, Value: value})
	}
	return fields
}

func (s *RenderService) itemRow(item *entity.InvoiceItem, index int, columns []entity.ColumnSpec) []renderCell {
	row := make([]renderCell, 0, len(columns))
	for _, col := range columns {
		var text string
		switch col.Kind {
		case enum.ColumnKindSr:
			text = strconv.Itoa(index + 1)
		case enum.ColumnKindParticulars:
			text = item.ProductName
		case enum.ColumnKindHSN:
			text = item.HSN
		case enum.ColumnKindUnit:
			text = item.Unit
		case enum.ColumnKindQty:
			text = strconv.FormatFloat(item.Qty, 'f', -1, 64)
		case enum.ColumnKindRate:
			text = formatAmount(item.Rate)
		case enum.ColumnKindDiscount:
			text = formatAmount(item.Discount)
		case enum.ColumnKindTaxable:
			text = formatAmount(item.Taxable)
		case enum.ColumnKindCGST:
			text = formatAmount(item.CGST)
		case enum.ColumnKindSGST:
			text = formatAmount(item.SGST)
		case enum.ColumnKindIGST:
			text = formatAmount(item.IGST)
		case enum.ColumnKindAmount:
			text = formatAmount(item.Amount)
		}
		row = append(row, renderCell{Text: text, Numeric: col.Kind.Numeric()})
	}
	return row
}

// summaryRows recomputes the intermediate totals from the stored line items so
// the summary always agrees with the table. The grand total is the one figure
// taken from the invoice record itself, since it was fixed at save time.
func (s *RenderService) summaryRows(invoice *entity.Invoice, settings *entity.InvoiceSettings) []renderSummaryRow {
	totals := gst.Aggregate(invoice.Items, invoice.RoundOff)
	rows := make([]renderSummaryRow, 0, 7)
	for _, sr := range settings.VisibleSummaryRows() {
		row := renderSummaryRow{Label: sr.Label}
		switch sr.ID {
		case entity.SummaryRowSubtotal:
			row.Value = formatAmount(totals.Subtotal)
		case entity.SummaryRowDiscountTotal:
			row.Value = formatAmount(totals.DiscountTotal)
		case entity.SummaryRowCGSTTotal:
			row.Value = formatAmount(totals.CGSTTotal)
		case entity.SummaryRowSGSTTotal:
			row.Value = formatAmount(totals.SGSTTotal)
		case entity.SummaryRowIGSTTotal:
			row.Value = formatAmount(totals.IGSTTotal)
		case entity.SummaryRowRoundOff:
			row.Value = formatAmount(invoice.RoundOff)
		case entity.SummaryRowGrandTotal:
			row.Value = s.currencySymbol + formatAmount(invoice.GrandTotal)
			row.Grand = true
		default:
			continue
		}
		rows = append(rows, row)
	}
	return rows
}

func formatAmount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

const invoiceTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Invoice {{.InvoiceNumber}}</title>
<style>
  body { font-family: Arial, Helvetica, sans-serif; font-size: 13px; color: #222; margin: 32px; }
  .header { display: flex; justify-content: space-between; border-bottom: 2px solid #333; padding-bottom: 12px; }
  .logo { display: block; max-height: 64px; max-width: 200px; margin-bottom: 6px; }
  .business-name { font-size: 20px; font-weight: bold; }
  .doc-title { font-size: 16px; font-weight: bold; text-align: right; }
  .meta { margin-top: 4px; text-align: right; }
  .billto { margin: 16px 0; }
  .billto h4 { margin: 0 0 4px; }
  table.items { width: 100%; border-collapse: collapse; margin-top: 8px; }
  table.items th, table.items td { border: 1px solid #999; padding: 5px 7px; }
  table.items th { background: #f0f0f0; text-align: left; }
  .num { text-align: right; }
  .summary { margin-top: 12px; margin-left: auto; width: 40%; min-width: 260px; }
  .summary td { padding: 3px 7px; }
  .summary .grand { font-weight: bold; border-top: 1px solid #333; }
  .section { margin-top: 16px; }
  .section h4 { margin: 0 0 4px; }
  @media print { body { margin: 0; } }
</style>
</head>
<body>
  <div class="header">
    <div>
      {{if .LogoURL}}<img class="logo" src="{{.LogoURL}}" alt="{{.Business.Name}}">{{end}}
      <div class="business-name">{{.Business.Name}}</div>
      {{if .Business.Address}}<div>{{.Business.Address}}</div>{{end}}
      {{if .Business.GSTIN}}<div>GSTIN: {{.Business.GSTIN}}</div>{{end}}
      {{if .Business.State}}<div>State: {{.Business.State}}</div>{{end}}
      {{if .Business.Phone}}<div>Phone: {{.Business.Phone}}</div>{{end}}
    </div>
    <div>
      <div class="doc-title">TAX INVOICE</div>
      {{range .HeaderFields}}<div class="meta">{{.Label}}: {{.Value}}</div>
      {{end}}
    </div>
  </div>

  {{if .ShowBillTo}}
  <div class="billto">
    <h4>Bill To</h4>
    {{if .CustomerName}}<div>{{.CustomerName}}</div>{{end}}
    {{if .CustomerAddr}}<div>{{.CustomerAddr}}</div>{{end}}
    {{if .CustomerGSTIN}}<div>GSTIN: {{.CustomerGSTIN}}</div>{{end}}
    {{if .CustomerState}}<div>State: {{.CustomerState}}</div>{{end}}
  </div>
  {{end}}

  <table class="items">
    <thead>
      <tr>
        {{range .Columns}}<th{{if .Numeric}} class="num"{{end}}>{{.Label}}</th>
        {{end}}
      </tr>
    </thead>
    <tbody>
      {{range .Rows}}<tr>
        {{range .}}<td{{if .Numeric}} class="num"{{end}}>{{.Text}}</td>
        {{end}}
      </tr>
      {{end}}
    </tbody>
  </table>

  <table class="summary">
    {{range .Summary}}<tr{{if .Grand}} class="grand"{{end}}>
      <td>{{.Label}}</td>
      <td class="num">{{.Value}}</td>
    </tr>
    {{end}}
  </table>

  {{if .ShowTerms}}
  <div class="section">
    <h4>Terms &amp; Conditions</h4>
    <div>{{.TermsText}}</div>
  </div>
  {{end}}

  {{if .ShowNotes}}
  <div class="section">
    <h4>Notes</h4>
    <div>{{.NotesText}}</div>
  </div>
  {{end}}
</body>
</html>
`
