package invoices

import (
	"bytes"
	"fmt"
	"html/template"
	"time"
)

// The printable export keeps the layout and Malay labels of the reports
// the centre already files; html/template escapes every interpolated
// value.
const reportTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <title>E-Invoice Report</title>
  <style>
    body { font-family: Arial, sans-serif; margin: 20px; color: #333; }
    .header { text-align: center; margin-bottom: 30px; border-bottom: 2px solid #007bff; padding-bottom: 20px; }
    .company-info { margin-bottom: 30px; background: #f8f9fa; padding: 15px; border-radius: 5px; }
    .invoice-table { width: 100%; border-collapse: collapse; margin-top: 20px; }
    .invoice-table th, .invoice-table td { border: 1px solid #ddd; padding: 8px; text-align: left; }
    .invoice-table th { background-color: #007bff; color: white; }
    .invoice-table tr:nth-child(even) { background-color: #f2f2f2; }
    .total-row { font-weight: bold; background-color: #e9ecef !important; }
    h1 { color: #007bff; margin: 0; }
    h2 { color: #495057; border-bottom: 1px solid #dee2e6; padding-bottom: 10px; }
    .info-row { margin: 5px 0; }
    .label { font-weight: bold; display: inline-block; width: 200px; }
  </style>
</head>
<body>
  <div class="header">
    <h1>E-INVOICE REPORT</h1>
    <p>Generated on {{.GeneratedOn}}</p>
  </div>

  <div class="company-info">
    <h2>Company Information</h2>
    <div class="info-row"><span class="label">Nama Pusat Tuisyen:</span> {{.Company.Name}}</div>
    <div class="info-row"><span class="label">Nombor Pendaftaran:</span> {{.Company.RegistrationNumber}}</div>
    <div class="info-row"><span class="label">Email:</span> {{.Company.Email}}</div>
    <div class="info-row"><span class="label">Alamat:</span> {{.Company.Address}}</div>
    <div class="info-row"><span class="label">Kod Mata Wang:</span> {{.Company.Currency}}</div>
  </div>

  <h2>Invoice Details</h2>
  <table class="invoice-table">
    <thead>
      <tr>
        <th>Nombor e-Invois</th>
        <th>Tarikh e-Invois</th>
        <th>Nama Pembeli</th>
        <th>Keterangan Perkhidmatan</th>
        <th>Harga Unit ({{.Company.Currency}})</th>
        <th>Jenis Cukai</th>
        <th>Jumlah Cukai ({{.Company.Currency}})</th>
        <th>Jumlah Termasuk Cukai ({{.Company.Currency}})</th>
      </tr>
    </thead>
    <tbody>
{{- range .Rows}}
      <tr>
        <td>{{.InvoiceNumber}}</td>
        <td>{{.InvoiceDate}}</td>
        <td>{{.BuyerName}}</td>
        <td>{{.ServiceDescription}}</td>
        <td>{{.UnitPrice}}</td>
        <td>{{.TaxType}}</td>
        <td>{{.TaxAmount}}</td>
        <td>{{.TotalIncludingTax}}</td>
      </tr>
{{- end}}
      <tr class="total-row">
        <td colspan="7"><strong>JUMLAH KESELURUHAN</strong></td>
        <td><strong>{{.GrandTotal}}</strong></td>
      </tr>
    </tbody>
  </table>

  <div style="margin-top: 30px; font-size: 12px; color: #666;">
    <p><strong>Pengelasan:</strong> Perbelanjaan Am</p>
    <p><strong>Jenis e-Invois:</strong> Invois</p>
    <p><strong>Total Invoices:</strong> {{.InvoiceCount}}</p>
    <p><strong>Report Generated:</strong> {{.GeneratedAt}}</p>
  </div>
</body>
</html>`

var reportTmpl = template.Must(template.New("einvoice-report").Parse(reportTemplate))

type reportRow struct {
	InvoiceNumber      string
	InvoiceDate        string
	BuyerName          string
	ServiceDescription string
	UnitPrice          string
	TaxType            string
	TaxAmount          string
	TotalIncludingTax  string
}

type reportData struct {
	GeneratedOn  string
	GeneratedAt  string
	Company      CompanyInfo
	Rows         []reportRow
	GrandTotal   string
	InvoiceCount int
}

// RenderHTML produces the printable report for the given lines. The
// result is handed to the PDF renderer as-is.
func RenderHTML(lines []Line, company CompanyInfo, generatedAt time.Time) (string, error) {
	rows := make([]reportRow, 0, len(lines))
	for _, l := range lines {
		rows = append(rows, reportRow{
			InvoiceNumber:      l.InvoiceNumber,
			InvoiceDate:        l.InvoiceDate.Format("02/01/2006"),
			BuyerName:          l.Buyer.Name,
			ServiceDescription: l.ServiceDescription,
			UnitPrice:          fmt.Sprintf("%.2f", l.UnitPrice),
			TaxType:            l.TaxType,
			TaxAmount:          fmt.Sprintf("%.2f", l.TaxAmount),
			TotalIncludingTax:  fmt.Sprintf("%.2f", l.TotalIncludingTax),
		})
	}

	data := reportData{
		GeneratedOn:  generatedAt.Format("02/01/2006"),
		GeneratedAt:  generatedAt.Format("02/01/2006 15:04:05"),
		Company:      company,
		Rows:         rows,
		GrandTotal:   fmt.Sprintf("%.2f", Total(lines)),
		InvoiceCount: len(lines),
	}

	var rendered bytes.Buffer
	if err := reportTmpl.Execute(&rendered, data); err != nil {
		return "", err
	}
	return rendered.String(), nil
}
