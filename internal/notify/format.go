package notify

import (
	"bakery-storefront/internal/calendar"
	"bakery-storefront/internal/model"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var usd = message.NewPrinter(language.AmericanEnglish)

// FormatPrice renders an amount as US dollars, e.g. $1,234.50. The zero value renders as $0.00.
func FormatPrice(amount decimal.Decimal) string {
	return usd.Sprintf("$%.2f", amount.Round(2).InexactFloat64())
}

const NotSpecified = "Not specified"

// FormatRequestedDate renders YYYY-MM-DD as "Sunday, June 1, 2025".
func FormatRequestedDate(date *string) string {
	if date == nil || *date == "" {
		return NotSpecified
	}
	t, err := calendar.Parse(*date)
	if err != nil {
		return *date
	}
	return t.Format("Monday, January 2, 2006")
}

func FulfillmentText(o *model.Order) string {
	switch o.FulfillmentType {
	case model.FulfillmentDelivery:
		address := ""
		if o.DeliveryAddress != nil {
			address = *o.DeliveryAddress
		}
		return "🚗 Delivery to " + address
	case model.FulfillmentGym:
		return model.FulfillmentGym.Label()
	default:
		return model.FulfillmentPickup.Label()
	}
}
