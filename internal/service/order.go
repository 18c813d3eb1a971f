package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"bakery-storefront/internal/calendar"
	"bakery-storefront/internal/cart"
	"bakery-storefront/internal/changefeed"
	"bakery-storefront/internal/model"
	"bakery-storefront/internal/repository"
	"bakery-storefront/internal/session"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrIncompleteOrder = errors.New("please fill in your name, email and add items to cart")
	ErrDateUnavailable = errors.New("requested date is not available")
)

const legacyOrderStatus = "pending"

// OrderNotifier sends the emails for a freshly stored order.
type OrderNotifier interface {
	SendOrderEmails(ctx context.Context, order *model.Order, adminEmail string) error
}

type OrderDay struct {
	Date   string         `json:"date"`
	Day    int            `json:"day"`
	Orders []*model.Order `json:"orders"`
}

type OrderCalendar struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
	// Cells starts with nil placeholders for the weekday offset of day 1.
	Cells []*OrderDay `json:"cells"`
}

type OrderService interface {
	Submit(ctx context.Context, form session.Form, c cart.Cart) (*model.Order, error)
	List(ctx context.Context, filter model.StatusFilter) ([]*model.Order, error)
	ListForDate(ctx context.Context, date string, filter model.StatusFilter) ([]*model.Order, error)
	Calendar(ctx context.Context, year int, month time.Month, filter model.StatusFilter) (*OrderCalendar, error)
	ToggleFulfilled(ctx context.Context, orderID string) (*model.Order, error)
	TogglePaid(ctx context.Context, orderID string) (*model.Order, error)
	Delete(ctx context.Context, orderID string) error
	// Watch delivers a change event for every order insert, update and delete until ctx is done.
	Watch(ctx context.Context) <-chan changefeed.Event
	// Wait blocks until in-flight notification dispatches have finished.
	Wait()
}

type orderServiceImpl struct {
	orderRepo      repository.OrderRepository
	settingService SettingService
	notifier       OrderNotifier
	broker         *changefeed.Broker
	logger         *zap.Logger
	now            func() time.Time

	dispatches sync.WaitGroup
}

func NewOrderService(
	orderRepo repository.OrderRepository,
	settingService SettingService,
	notifier OrderNotifier,
	broker *changefeed.Broker,
	logger *zap.Logger,
	now func() time.Time,
) OrderService {
	if now == nil {
		now = time.Now
	}
	return &orderServiceImpl{
		orderRepo:      orderRepo,
		settingService: settingService,
		notifier:       notifier,
		broker:         broker,
		logger:         logger,
		now:            now,
	}
}

func (s *orderServiceImpl) Submit(ctx context.Context, form session.Form, c cart.Cart) (*model.Order, error) {
	name := strings.TrimSpace(form.CustomerName)
	email := strings.TrimSpace(form.CustomerEmail)
	if name == "" || email == "" || c.IsEmpty() {
		return nil, ErrIncompleteOrder
	}

	fulfillment := form.FulfillmentType
	if fulfillment == "" {
		fulfillment = model.FulfillmentPickup
	}
	if !fulfillment.Valid() {
		return nil, fmt.Errorf("%w: fulfillment type %q", session.ErrInvalidField, fulfillment)
	}

	requestedDate := optionalText(form.RequestedDate)
	if requestedDate != nil {
		blocked, err := s.settingService.BlockedDates(ctx)
		if err != nil {
			return nil, err
		}
		if err := calendar.Check(*requestedDate, blocked, s.now()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDateUnavailable, err)
		}
	}

	order := &model.Order{
		ID:              uuid.NewString(),
		CustomerName:    name,
		CustomerEmail:   email,
		RequestedDate:   requestedDate,
		FulfillmentType: fulfillment,
		Items:           c.OrderLines(),
		Total:           c.Total(),
		Note:            optionalText(form.Note),
		Status:          legacyOrderStatus,
	}
	if fulfillment == model.FulfillmentDelivery {
		order.DeliveryAddress = optionalText(form.DeliveryAddress)
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("store order in db: %w", err)
	}

	s.broker.Publish(changefeed.Event{Type: changefeed.EventInsert, OrderID: order.ID})
	s.dispatch(ctx, order)

	return order, nil
}

// dispatch sends the order emails in the background. The request may be gone
// by the time the emails go out, so the context is detached from it.
func (s *orderServiceImpl) dispatch(ctx context.Context, order *model.Order) {
	if s.notifier == nil {
		return
	}

	ctx = context.WithoutCancel(ctx)
	s.dispatches.Add(1)
	go func() {
		defer s.dispatches.Done()

		adminEmail, err := s.settingService.AdminEmail(ctx)
		if err != nil {
			s.logger.Warn("load admin email for notification", zap.String("order_id", order.ID), zap.Error(err))
		}

		if err := s.notifier.SendOrderEmails(ctx, order, adminEmail); err != nil {
			s.logger.Error("send order emails", zap.String("order_id", order.ID), zap.Error(err))
			return
		}
		s.logger.Info("order emails sent", zap.String("order_id", order.ID))
	}()
}

func (s *orderServiceImpl) Wait() {
	s.dispatches.Wait()
}

func (s *orderServiceImpl) List(ctx context.Context, filter model.StatusFilter) ([]*model.Order, error) {
	orders, err := s.orderRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return model.FilterOrders(orders, filter), nil
}

func (s *orderServiceImpl) ListForDate(ctx context.Context, date string, filter model.StatusFilter) ([]*model.Order, error) {
	if _, err := calendar.Parse(date); err != nil {
		return nil, err
	}
	orders, err := s.orderRepo.ListByRequestedDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("list orders for %s: %w", date, err)
	}
	return model.FilterOrders(orders, filter), nil
}

func (s *orderServiceImpl) Calendar(ctx context.Context, year int, month time.Month, filter model.StatusFilter) (*OrderCalendar, error) {
	orders, err := s.orderRepo.ListByRequestedMonth(ctx, year, month)
	if err != nil {
		return nil, fmt.Errorf("list orders for month: %w", err)
	}

	byDate := make(map[string][]*model.Order)
	for _, o := range model.FilterOrders(orders, filter) {
		byDate[*o.RequestedDate] = append(byDate[*o.RequestedDate], o)
	}

	grid := calendar.MonthGrid(year, month)
	cells := make([]*OrderDay, len(grid))
	for i, cell := range grid {
		if cell == nil {
			continue
		}
		date := calendar.Format(*cell)
		dayOrders := byDate[date]
		if dayOrders == nil {
			dayOrders = []*model.Order{}
		}
		cells[i] = &OrderDay{Date: date, Day: cell.Day(), Orders: dayOrders}
	}

	return &OrderCalendar{Year: year, Month: month, Cells: cells}, nil
}

func (s *orderServiceImpl) ToggleFulfilled(ctx context.Context, orderID string) (*model.Order, error) {
	order, err := s.orderRepo.ToggleFulfilled(ctx, orderID)
	if err != nil {
		return nil, err
	}
	s.broker.Publish(changefeed.Event{Type: changefeed.EventUpdate, OrderID: orderID})
	return order, nil
}

func (s *orderServiceImpl) TogglePaid(ctx context.Context, orderID string) (*model.Order, error) {
	order, err := s.orderRepo.TogglePaid(ctx, orderID)
	if err != nil {
		return nil, err
	}
	s.broker.Publish(changefeed.Event{Type: changefeed.EventUpdate, OrderID: orderID})
	return order, nil
}

func (s *orderServiceImpl) Delete(ctx context.Context, orderID string) error {
	if err := s.orderRepo.Delete(ctx, orderID); err != nil {
		return err
	}
	s.broker.Publish(changefeed.Event{Type: changefeed.EventDelete, OrderID: orderID})
	return nil
}

func (s *orderServiceImpl) Watch(ctx context.Context) <-chan changefeed.Event {
	return s.broker.Subscribe(ctx)
}
