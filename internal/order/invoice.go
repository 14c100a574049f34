package order

import (
	"bytes"
	"text/template"
)

// invoiceTemplate renders an order as a plain-text invoice. Amounts are
// printed in the order's payment currency leg.
var invoiceTemplate = template.Must(template.New("invoice").Parse(`BANGLABAZAAR
Invoice for order {{.OrderID}}
Date: {{.CreatedAt.Format "02 Jan 2006"}}

Billed to: {{.CustomerInfo.Name}} <{{.CustomerInfo.Email}}>
Ship to:   {{.ShippingAddress.Name}}, {{.ShippingAddress.Line}}, {{.ShippingAddress.City}}

Items ({{.PaymentCurrency}}):
{{- $cur := .PaymentCurrency}}
{{- range .Products}}
  {{.Title}}{{if .Color}} / {{.Color}}{{end}}{{if .Size}} / {{.Size}}{{end}}  x{{.Quantity}}  {{printf "%.2f" (.TotalPrice.In $cur)}}
{{- end}}

Subtotal:  {{printf "%.2f" (.SubTotal.In $cur)}}
Discount:  {{printf "%.2f" (.TotalDiscount.In $cur)}}
Shipping:  {{printf "%.2f" (.ShippingRate.In $cur)}}
Total:     {{printf "%.2f" (.TotalAmount.In $cur)}}

Payment: {{.PaymentDetails.Status}}{{if .PaymentMethod}} via {{.PaymentMethod}}{{end}}
Status:  {{.Status}}
`))

// RenderInvoice produces the downloadable invoice body for an order.
func RenderInvoice(o Order) ([]byte, error) {
	var buf bytes.Buffer
	if err := invoiceTemplate.Execute(&buf, o); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
