package service

import (
	"context"
	"time"

	"bakery-storefront/internal/calendar"
	"bakery-storefront/internal/model"

	"golang.org/x/sync/errgroup"
)

// Storefront is everything the page needs on first load. The admin fields
// are only filled for sessions in admin mode.
type Storefront struct {
	Menu         []*model.Item  `json:"menu"`
	BlockedDates []string       `json:"blocked_dates"`
	Tomorrow     string         `json:"tomorrow"`
	Items        []*model.Item  `json:"items,omitempty"`
	Orders       []*model.Order `json:"orders,omitempty"`
	AdminEmail   string         `json:"admin_email,omitempty"`
}

type StorefrontService interface {
	Load(ctx context.Context, isAdmin bool) (*Storefront, error)
}

type storefrontServiceImpl struct {
	catalogService CatalogService
	orderService   OrderService
	settingService SettingService
	now            func() time.Time
}

func NewStorefrontService(
	catalogService CatalogService,
	orderService OrderService,
	settingService SettingService,
	now func() time.Time,
) StorefrontService {
	if now == nil {
		now = time.Now
	}
	return &storefrontServiceImpl{
		catalogService: catalogService,
		orderService:   orderService,
		settingService: settingService,
		now:            now,
	}
}

func (s *storefrontServiceImpl) Load(ctx context.Context, isAdmin bool) (*Storefront, error) {
	sf := &Storefront{Tomorrow: calendar.Tomorrow(s.now())}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		sf.Menu, err = s.catalogService.ListMenu(ctx)
		return err
	})
	g.Go(func() (err error) {
		sf.BlockedDates, err = s.settingService.BlockedDates(ctx)
		return err
	})

	if isAdmin {
		g.Go(func() (err error) {
			sf.Items, err = s.catalogService.ListItems(ctx)
			return err
		})
		g.Go(func() (err error) {
			sf.Orders, err = s.orderService.List(ctx, model.FilterAll)
			return err
		})
		g.Go(func() (err error) {
			sf.AdminEmail, err = s.settingService.AdminEmail(ctx)
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return sf, nil
}
