package invoicepdf

import (
	"bytes"
	"encoding/base64"
	"html/template"
	"mime"
	"os"
	"path/filepath"

	"github.com/SscSPs/finance_manager/internal/core/domain"
	"github.com/SscSPs/finance_manager/internal/models"
	"github.com/SscSPs/finance_manager/internal/utils"
)

var documentTemplate = template.Must(template.New("invoice").Funcs(template.FuncMap{
	"money": utils.FormatMoney,
}).Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<title>Invoice {{.Invoice.Number}}</title>
<style>
body { font-family: Helvetica, Arial, sans-serif; font-size: 12px; color: #222; margin: 0; }
header { display: flex; justify-content: space-between; align-items: flex-start; border-bottom: 2px solid #333; padding-bottom: 12px; }
header img { max-height: 60px; }
h1 { font-size: 22px; margin: 0 0 4px 0; }
.meta td { padding: 2px 8px 2px 0; }
.customer { margin: 18px 0; }
table.items { width: 100%; border-collapse: collapse; }
table.items th, table.items td { border-bottom: 1px solid #ccc; padding: 6px; text-align: left; }
table.items td.num, table.items th.num { text-align: right; }
table.totals { margin-left: auto; margin-top: 12px; }
table.totals td { padding: 3px 6px; text-align: right; }
table.totals tr.grand td { font-weight: bold; border-top: 2px solid #333; }
</style>
</head>
<body>
<header>
  <div>
    <h1>{{.Invoice.Company.CompanyName}}</h1>
    {{with .Invoice.Company.Address}}<div>{{.}}</div>{{end}}
  </div>
  {{with .Logo}}<img src="{{.}}" alt="logo">{{end}}
</header>
<table class="meta">
  <tr><td>Invoice</td><td>{{.Invoice.Number}}</td></tr>
  <tr><td>Date</td><td>{{.Date}}</td></tr>
</table>
<div class="customer">
  <strong>Bill to</strong><br>
  {{.Invoice.CustomerName}}{{with .Invoice.CustomerAddress}}<br>{{.}}{{end}}
</div>
<table class="items">
  <thead><tr><th>Description</th><th class="num">Quantity</th><th class="num">Price</th><th class="num">Total</th></tr></thead>
  <tbody>
  {{range .Invoice.Items}}<tr><td>{{.Description}}</td><td class="num">{{.Quantity.String}}</td><td class="num">{{money .Price $.Currency}}</td><td class="num">{{money .Total $.Currency}}</td></tr>
  {{end}}</tbody>
</table>
<table class="totals">
  <tr><td>Subtotal</td><td>{{money .Invoice.Subtotal .Currency}}</td></tr>
  <tr><td>Tax ({{.TaxPercent}}%)</td><td>{{money .Invoice.Tax .Currency}}</td></tr>
  <tr class="grand"><td>Total</td><td>{{money .Invoice.Total .Currency}}</td></tr>
</table>
</body>
</html>
`))

type documentData struct {
	Invoice    domain.GeneratedInvoice
	Date       string
	Currency   string
	TaxPercent string
	Logo       template.URL
}

// BuildHTML renders the invoice document. The company logo is embedded as a
// data URI when the file exists and skipped otherwise.
func BuildHTML(inv domain.GeneratedInvoice, currencyCode string) (string, error) {
	data := documentData{
		Invoice:    inv,
		Date:       inv.Date.Format(models.DateLayout),
		Currency:   currencyCode,
		TaxPercent: inv.TaxRate.Shift(2).String(),
		Logo:       logoDataURI(inv.Company.LogoPath),
	}
	var buf bytes.Buffer
	if err := documentTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func logoDataURI(path string) template.URL {
	if path == "" {
		return ""
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		contentType = "image/png"
	}
	return template.URL("data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(raw))
}
