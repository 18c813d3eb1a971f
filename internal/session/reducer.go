package session

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"bakery-storefront/internal/calendar"
	"bakery-storefront/internal/cart"
	"bakery-storefront/internal/model"
)

var (
	ErrAdminRequired   = errors.New("admin mode required")
	ErrWrongPassword   = errors.New("wrong admin password")
	ErrInvalidView     = errors.New("invalid view")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrInvalidField    = errors.New("invalid value")
)

// Action is one user intent. Apply returns the next state, or an error and
// leaves the decision to keep the old state to Reduce.
type Action interface {
	Apply(s State) (State, error)
}

// Reduce applies a, returning s unchanged when the action is rejected.
func Reduce(s State, a Action) (State, error) {
	next, err := a.Apply(s)
	if err != nil {
		return s, err
	}
	return next, nil
}

type SetView struct {
	View View
}

func (a SetView) Apply(s State) (State, error) {
	if !a.View.valid() {
		return s, fmt.Errorf("%w: %q", ErrInvalidView, a.View)
	}
	if a.View.adminOnly() && !s.IsAdmin {
		return s, ErrAdminRequired
	}
	if a.View == ViewLogin && s.IsAdmin {
		a.View = ViewAdmin
	}
	s.View = a.View
	return s, nil
}

// EnterAdmin compares the lower-cased input with the shared password.
// This only switches the session into admin mode; it is not an access control mechanism.
type EnterAdmin struct {
	Password string
	Secret   string
}

func (a EnterAdmin) Apply(s State) (State, error) {
	given := []byte(strings.ToLower(a.Password))
	if a.Secret == "" || subtle.ConstantTimeCompare(given, []byte(a.Secret)) != 1 {
		return s, ErrWrongPassword
	}
	s.IsAdmin = true
	s.View = ViewAdmin
	return s, nil
}

type ExitAdmin struct{}

func (ExitAdmin) Apply(s State) (State, error) {
	s.IsAdmin = false
	s.View = ViewMenu
	s.Editing = nil
	s.SelectedOrderID = ""
	return s, nil
}

type AddToCart struct {
	Item     *model.Item
	Option   string
	Quantity int
}

func (a AddToCart) Apply(s State) (State, error) {
	if a.Quantity < 1 {
		return s, ErrInvalidQuantity
	}
	s.Cart = s.Cart.Add(a.Item, a.Option, a.Quantity)
	return s, nil
}

type UpdateQuantity struct {
	Key      string
	Quantity int
}

func (a UpdateQuantity) Apply(s State) (State, error) {
	s.Cart = s.Cart.UpdateQuantity(a.Key, a.Quantity)
	return s, nil
}

type RemoveLine struct {
	Key string
}

func (a RemoveLine) Apply(s State) (State, error) {
	s.Cart = s.Cart.Remove(a.Key)
	return s, nil
}

type SetCustomerName struct{ Value string }

func (a SetCustomerName) Apply(s State) (State, error) {
	s.Form.CustomerName = a.Value
	return s, nil
}

type SetCustomerEmail struct{ Value string }

func (a SetCustomerEmail) Apply(s State) (State, error) {
	s.Form.CustomerEmail = a.Value
	return s, nil
}

type SetFulfillmentType struct{ Value model.FulfillmentType }

func (a SetFulfillmentType) Apply(s State) (State, error) {
	if !a.Value.Valid() {
		return s, fmt.Errorf("%w: fulfillment type %q", ErrInvalidField, a.Value)
	}
	s.Form.FulfillmentType = a.Value
	return s, nil
}

type SetDeliveryAddress struct{ Value string }

func (a SetDeliveryAddress) Apply(s State) (State, error) {
	s.Form.DeliveryAddress = a.Value
	return s, nil
}

type SetNote struct{ Value string }

func (a SetNote) Apply(s State) (State, error) {
	s.Form.Note = a.Value
	return s, nil
}

// SetRequestedDate is the date picker: the date must be tomorrow or later and
// not blocked. An empty date clears the field.
type SetRequestedDate struct {
	Date    string
	Blocked []string
	Now     time.Time
}

func (a SetRequestedDate) Apply(s State) (State, error) {
	if a.Date != "" {
		if err := calendar.Check(a.Date, a.Blocked, a.Now); err != nil {
			return s, err
		}
	}
	s.Form.RequestedDate = a.Date
	return s, nil
}

// OrderSubmitted clears the cart and the form after the order was stored.
type OrderSubmitted struct{}

func (OrderSubmitted) Apply(s State) (State, error) {
	s.Cart = cart.New()
	s.Form = emptyForm()
	s.Error = ""
	s.View = ViewConfirmation
	return s, nil
}

type SubmissionFailed struct{ Message string }

func (a SubmissionFailed) Apply(s State) (State, error) {
	s.Error = a.Message
	return s, nil
}

type DismissError struct{}

func (DismissError) Apply(s State) (State, error) {
	s.Error = ""
	return s, nil
}

type StartEditing struct {
	Field  EditField
	ItemID string
	Draft  string
}

func (a StartEditing) Apply(s State) (State, error) {
	if !s.IsAdmin {
		return s, ErrAdminRequired
	}
	switch a.Field {
	case EditPrice, EditOptions, EditDescription:
	default:
		return s, fmt.Errorf("%w: edit field %q", ErrInvalidField, a.Field)
	}
	return s.withEdit(a.Field, &Edit{ItemID: a.ItemID, Draft: a.Draft}), nil
}

// StopEditing ends an inline edit, after a save or a cancel.
type StopEditing struct {
	Field EditField
}

func (a StopEditing) Apply(s State) (State, error) {
	return s.withEdit(a.Field, nil), nil
}

type SetStatusFilter struct{ Filter string }

func (a SetStatusFilter) Apply(s State) (State, error) {
	f, err := model.ParseStatusFilter(a.Filter)
	if err != nil {
		return s, err
	}
	s.StatusFilter = f
	return s, nil
}

type SetOrdersViewMode struct{ Mode OrdersViewMode }

func (a SetOrdersViewMode) Apply(s State) (State, error) {
	if a.Mode != OrdersCalendar && a.Mode != OrdersList {
		return s, fmt.Errorf("%w: orders view mode %q", ErrInvalidField, a.Mode)
	}
	s.OrdersViewMode = a.Mode
	return s, nil
}

type ShiftCalendarMonth struct{ Delta int }

func (a ShiftCalendarMonth) Apply(s State) (State, error) {
	y, m := calendar.ShiftMonth(s.CalendarMonth.Year, s.CalendarMonth.Month, a.Delta)
	s.CalendarMonth = YearMonth{Year: y, Month: m}
	return s, nil
}

type ShiftOrderCalendarMonth struct{ Delta int }

func (a ShiftOrderCalendarMonth) Apply(s State) (State, error) {
	y, m := calendar.ShiftMonth(s.OrderCalendarMonth.Year, s.OrderCalendarMonth.Month, a.Delta)
	s.OrderCalendarMonth = YearMonth{Year: y, Month: m}
	return s, nil
}

// SelectOrder opens the order detail; an empty id closes it.
type SelectOrder struct{ OrderID string }

func (a SelectOrder) Apply(s State) (State, error) {
	s.SelectedOrderID = a.OrderID
	return s, nil
}
