package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"bakery-storefront/internal/model"
	"bakery-storefront/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidItem    = errors.New("item needs a name and a non-negative price")
	ErrItemOutOfStock = errors.New("item is out of stock")
	ErrInvalidOption  = errors.New("option is not offered for this item")
)

type NewItem struct {
	Name        string
	Description string
	Emoji       string
	Price       decimal.Decimal
	// Options is the comma separated admin input.
	Options string
}

type CatalogService interface {
	Seed(ctx context.Context, items []*model.Item) error
	ListMenu(ctx context.Context) ([]*model.Item, error)
	ListItems(ctx context.Context) ([]*model.Item, error)
	AddItem(ctx context.Context, in NewItem) (*model.Item, error)
	ToggleStock(ctx context.Context, itemID string) (*model.Item, error)
	UpdatePrice(ctx context.Context, itemID string, price decimal.Decimal) (*model.Item, error)
	UpdateOptions(ctx context.Context, itemID string, raw string) (*model.Item, error)
	UpdateDescription(ctx context.Context, itemID string, raw string) (*model.Item, error)
	DeleteItem(ctx context.Context, itemID string) error
	// ResolveForCart loads an orderable item and the option the cart line should carry.
	ResolveForCart(ctx context.Context, itemID string, option string) (*model.Item, string, error)
}

type catalogServiceImpl struct {
	itemRepo repository.ItemRepository
}

func NewCatalogService(
	itemRepo repository.ItemRepository,
) CatalogService {
	return &catalogServiceImpl{
		itemRepo: itemRepo,
	}
}

func (s *catalogServiceImpl) Seed(ctx context.Context, items []*model.Item) error {
	for _, item := range items {
		if item.ID == "" {
			item.ID = uuid.NewString()
		}
		if item.Emoji == "" {
			item.Emoji = model.DefaultEmoji
		}
	}
	if err := s.itemRepo.Seed(ctx, items); err != nil {
		return fmt.Errorf("seed items: %w", err)
	}
	return nil
}

func (s *catalogServiceImpl) ListMenu(ctx context.Context) ([]*model.Item, error) {
	return s.itemRepo.ListInStock(ctx)
}

func (s *catalogServiceImpl) ListItems(ctx context.Context) ([]*model.Item, error) {
	return s.itemRepo.List(ctx)
}

func optionalText(raw string) *string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	return &raw
}

func (s *catalogServiceImpl) AddItem(ctx context.Context, in NewItem) (*model.Item, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || in.Price.IsNegative() {
		return nil, ErrInvalidItem
	}

	emoji := strings.TrimSpace(in.Emoji)
	if emoji == "" {
		emoji = model.DefaultEmoji
	}

	item := &model.Item{
		ID:          uuid.NewString(),
		Name:        name,
		Description: optionalText(in.Description),
		Emoji:       emoji,
		Price:       in.Price,
		Options:     model.ParseOptions(in.Options),
		InStock:     true,
	}
	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}

	return item, nil
}

func (s *catalogServiceImpl) ToggleStock(ctx context.Context, itemID string) (*model.Item, error) {
	return s.itemRepo.ToggleStock(ctx, itemID)
}

func (s *catalogServiceImpl) UpdatePrice(ctx context.Context, itemID string, price decimal.Decimal) (*model.Item, error) {
	if price.IsNegative() {
		return nil, ErrInvalidItem
	}
	return s.itemRepo.UpdatePrice(ctx, itemID, price)
}

func (s *catalogServiceImpl) UpdateOptions(ctx context.Context, itemID string, raw string) (*model.Item, error) {
	return s.itemRepo.UpdateOptions(ctx, itemID, model.ParseOptions(raw))
}

func (s *catalogServiceImpl) UpdateDescription(ctx context.Context, itemID string, raw string) (*model.Item, error) {
	return s.itemRepo.UpdateDescription(ctx, itemID, optionalText(raw))
}

func (s *catalogServiceImpl) DeleteItem(ctx context.Context, itemID string) error {
	return s.itemRepo.Delete(ctx, itemID)
}

func (s *catalogServiceImpl) ResolveForCart(ctx context.Context, itemID string, option string) (*model.Item, string, error) {
	item, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		return nil, "", err
	}
	if !item.InStock {
		return nil, "", ErrItemOutOfStock
	}

	if len(item.Options) == 0 {
		return item, "", nil
	}
	if option == "" {
		return item, item.Options[0], nil
	}
	if !item.HasOption(option) {
		return nil, "", fmt.Errorf("%w: %q", ErrInvalidOption, option)
	}
	return item, option, nil
}
