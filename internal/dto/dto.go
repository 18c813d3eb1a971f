package dto

import (
	"bakery-storefront/internal/model"
	"bakery-storefront/internal/session"

	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type AddCartItemRequest struct {
	ItemID         string `json:"item_id"`
	SelectedOption string `json:"selected_option"`
	Quantity       int    `json:"quantity"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// UpdateFormRequest carries the checkout fields the visitor changed; nil fields are left alone.
type UpdateFormRequest struct {
	CustomerName    *string                `json:"customer_name"`
	CustomerEmail   *string                `json:"customer_email"`
	FulfillmentType *model.FulfillmentType `json:"fulfillment_type"`
	DeliveryAddress *string                `json:"delivery_address"`
	Note            *string                `json:"note"`
}

type RequestedDateRequest struct {
	Date string `json:"date"`
}

type ViewRequest struct {
	View session.View `json:"view"`
}

type OrdersViewRequest struct {
	Mode            *session.OrdersViewMode `json:"mode"`
	StatusFilter    *string                 `json:"status_filter"`
	SelectedOrderID *string                 `json:"selected_order_id"`
}

type ShiftMonthRequest struct {
	// Calendar is "availability" or "orders".
	Calendar string `json:"calendar"`
	Delta    int    `json:"delta"`
}

type EditingRequest struct {
	Field  session.EditField `json:"field"`
	ItemID string            `json:"item_id"`
	Draft  string            `json:"draft"`
}

type AdminLoginRequest struct {
	Password string `json:"password"`
}

type CheckoutResponse struct {
	Order   *model.Order  `json:"order"`
	Session session.State `json:"session"`
}

type CreateItemRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Emoji       string          `json:"emoji"`
	Price       decimal.Decimal `json:"price"`
	Options     string          `json:"options"`
}

type UpdatePriceRequest struct {
	Price decimal.Decimal `json:"price"`
}

type UpdateOptionsRequest struct {
	Options string `json:"options"`
}

type UpdateDescriptionRequest struct {
	Description string `json:"description"`
}

type AdminEmailRequest struct {
	Email string `json:"email"`
}

type AdminEmailResponse struct {
	Email string `json:"email"`
}

type BlockedDatesResponse struct {
	BlockedDates []string `json:"blocked_dates"`
}

// SendEmailRequest is an order payload plus the optional admin address.
type SendEmailRequest struct {
	model.Order
	AdminEmail string `json:"admin_email"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}
