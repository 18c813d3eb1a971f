package notify

import (
	"bytes"
	"fmt"
	"html/template"

	"bakery-storefront/internal/model"
)

const orderTemplate = `<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <div style="background: #1f2937; padding: 20px; border-radius: 8px 8px 0 0;">
    <h1 style="color: #a855f7; margin: 0; font-size: 24px;">🫏 {{.StoreName}}</h1>
  </div>
  <div style="background: #f9fafb; padding: 20px; border: 1px solid #e5e7eb;">
    <h2 style="color: #1f2937; margin-top: 0;">{{if .ForAdmin}}New Order from {{.Order.CustomerName}}!{{else}}Thanks for your order!{{end}}</h2>
    {{- if .ForAdmin}}
    <p><strong>Customer Email:</strong> {{.Order.CustomerEmail}}</p>
    {{- end}}
    <p><strong>Requested Date:</strong> {{.RequestedDate}}</p>
    <p><strong>Fulfillment:</strong> {{.Fulfillment}}</p>
    {{- if .Note}}
    <p><strong>Note:</strong> "{{.Note}}"</p>
    {{- end}}
    <table style="width: 100%; border-collapse: collapse; margin: 20px 0;">
      <thead>
        <tr style="background: #e5e7eb;">
          <th style="padding: 8px; text-align: left;">Item</th>
          <th style="padding: 8px; text-align: center;">Qty</th>
          <th style="padding: 8px; text-align: right;">Price</th>
        </tr>
      </thead>
      <tbody>
        {{- range .Rows}}
        <tr>
          <td style="padding: 8px; border-bottom: 1px solid #eee;">{{.Label}}</td>
          <td style="padding: 8px; border-bottom: 1px solid #eee; text-align: center;">{{.Quantity}}</td>
          <td style="padding: 8px; border-bottom: 1px solid #eee; text-align: right;">{{.LineTotal}}</td>
        </tr>
        {{- end}}
      </tbody>
      <tfoot>
        <tr>
          <td colspan="2" style="padding: 12px 8px; font-weight: bold;">Total</td>
          <td style="padding: 12px 8px; text-align: right; font-weight: bold; color: #a855f7;">{{.Total}}</td>
        </tr>
      </tfoot>
    </table>
    {{- if not .ForAdmin}}
    <p>{{.OwnerName}} will be in touch soon to confirm your order. Thanks for supporting {{.StoreName}}! 💜</p>
    {{- end}}
  </div>
  <div style="background: #1f2937; padding: 15px; border-radius: 0 0 8px 8px; text-align: center;">
    <p style="color: #9ca3af; margin: 0; font-size: 12px;">Made with 💜 for friends</p>
  </div>
</div>
`

var orderHTML = template.Must(template.New("order").Parse(orderTemplate))

type row struct {
	Label     string
	Quantity  int
	LineTotal string
}

type orderView struct {
	ForAdmin      bool
	StoreName     string
	OwnerName     string
	Order         *model.Order
	RequestedDate string
	Fulfillment   string
	Note          string
	Rows          []row
	Total         string
}

func itemLabel(l model.OrderLine) string {
	label := l.Emoji + " " + l.Name
	if l.SelectedOption != nil && *l.SelectedOption != "" {
		label += " (" + *l.SelectedOption + ")"
	}
	return label
}

// RenderOrder produces the email body. forAdmin switches the heading, adds the
// customer's address and drops the thank-you paragraph.
func (n *Notifier) RenderOrder(order *model.Order, forAdmin bool) (string, error) {
	view := orderView{
		ForAdmin:      forAdmin,
		StoreName:     n.storeName,
		OwnerName:     n.ownerName,
		Order:         order,
		RequestedDate: FormatRequestedDate(order.RequestedDate),
		Fulfillment:   FulfillmentText(order),
		Total:         FormatPrice(order.Total),
	}
	if order.Note != nil {
		view.Note = *order.Note
	}
	for _, l := range order.Items {
		view.Rows = append(view.Rows, row{
			Label:     itemLabel(l),
			Quantity:  l.Quantity,
			LineTotal: FormatPrice(l.LineTotal()),
		})
	}

	var buf bytes.Buffer
	if err := orderHTML.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("render order email: %w", err)
	}
	return buf.String(), nil
}
