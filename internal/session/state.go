// Package session models everything one visitor can change while browsing:
// the current view, the admin flag, the cart, the order form and the admin
// editing flags. State is a value; actions produce the next State through Reduce.
package session

import (
	"time"

	"bakery-storefront/internal/cart"
	"bakery-storefront/internal/model"
)

type View string

const (
	ViewMenu         View = "menu"
	ViewCart         View = "cart"
	ViewConfirmation View = "confirmation"
	ViewLogin        View = "login"
	ViewAdmin        View = "admin"
	ViewOrders       View = "orders"
	ViewAvailability View = "availability"
	ViewSettings     View = "settings"
)

func (v View) adminOnly() bool {
	switch v {
	case ViewAdmin, ViewOrders, ViewAvailability, ViewSettings:
		return true
	}
	return false
}

func (v View) valid() bool {
	switch v {
	case ViewMenu, ViewCart, ViewConfirmation, ViewLogin:
		return true
	}
	return v.adminOnly()
}

type OrdersViewMode string

const (
	OrdersCalendar OrdersViewMode = "calendar"
	OrdersList     OrdersViewMode = "list"
)

// Form is the checkout form as typed; values are trimmed only at submission.
type Form struct {
	CustomerName    string                `json:"customer_name"`
	CustomerEmail   string                `json:"customer_email"`
	RequestedDate   string                `json:"requested_date"`
	FulfillmentType model.FulfillmentType `json:"fulfillment_type"`
	DeliveryAddress string                `json:"delivery_address"`
	Note            string                `json:"note"`
}

func emptyForm() Form {
	return Form{FulfillmentType: model.FulfillmentPickup}
}

type EditField string

const (
	EditPrice       EditField = "price"
	EditOptions     EditField = "options"
	EditDescription EditField = "description"
)

// Edit is an in-progress inline edit of one item field in the admin menu.
type Edit struct {
	ItemID string `json:"item_id"`
	Draft  string `json:"draft"`
}

type YearMonth struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

func yearMonthOf(t time.Time) YearMonth {
	return YearMonth{Year: t.Year(), Month: t.Month()}
}

type State struct {
	View               View               `json:"view"`
	IsAdmin            bool               `json:"is_admin"`
	Cart               cart.Cart          `json:"cart"`
	Form               Form               `json:"form"`
	Editing            map[EditField]Edit `json:"editing"`
	StatusFilter       model.StatusFilter `json:"status_filter"`
	OrdersViewMode     OrdersViewMode     `json:"orders_view_mode"`
	CalendarMonth      YearMonth          `json:"calendar_month"`
	OrderCalendarMonth YearMonth          `json:"order_calendar_month"`
	SelectedOrderID    string             `json:"selected_order_id,omitempty"`
	Error              string             `json:"error,omitempty"`
}

func NewState(now time.Time) State {
	return State{
		View:               ViewMenu,
		Cart:               cart.New(),
		Form:               emptyForm(),
		StatusFilter:       model.FilterAll,
		OrdersViewMode:     OrdersCalendar,
		CalendarMonth:      yearMonthOf(now),
		OrderCalendarMonth: yearMonthOf(now),
	}
}

func (s State) withEdit(field EditField, edit *Edit) State {
	editing := make(map[EditField]Edit, len(s.Editing)+1)
	for k, v := range s.Editing {
		editing[k] = v
	}
	if edit == nil {
		delete(editing, field)
	} else {
		editing[field] = *edit
	}
	s.Editing = editing
	return s
}
