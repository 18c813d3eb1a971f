package repository

import (
	"context"

	"bakery-storefront/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ItemRepository interface {
	Seed(ctx context.Context, items []*model.Item) error
	Create(ctx context.Context, item *model.Item) error
	FindByID(ctx context.Context, itemID string) (*model.Item, error)
	List(ctx context.Context) ([]*model.Item, error)
	ListInStock(ctx context.Context) ([]*model.Item, error)
	ToggleStock(ctx context.Context, itemID string) (*model.Item, error)
	UpdatePrice(ctx context.Context, itemID string, price decimal.Decimal) (*model.Item, error)
	UpdateOptions(ctx context.Context, itemID string, options []string) (*model.Item, error)
	UpdateDescription(ctx context.Context, itemID string, description *string) (*model.Item, error)
	Delete(ctx context.Context, itemID string) error
}

type itemRepoImpl struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepoImpl{
		db: db,
	}
}

// Seed inserts items whose id is not present yet.
func (r *itemRepoImpl) Seed(ctx context.Context, items []*model.Item) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&items).Error
}

func (r *itemRepoImpl) Create(ctx context.Context, item *model.Item) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *itemRepoImpl) FindByID(ctx context.Context, itemID string) (*model.Item, error) {
	var item model.Item
	err := r.db.WithContext(ctx).
		Where("id = ?", itemID).
		First(&item).Error

	if err != nil {
		return nil, err
	}

	return &item, nil
}

func (r *itemRepoImpl) List(ctx context.Context) ([]*model.Item, error) {
	var items []*model.Item
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&items).
		Error

	if err != nil {
		return nil, err
	}

	return items, nil
}

func (r *itemRepoImpl) ListInStock(ctx context.Context) ([]*model.Item, error) {
	var items []*model.Item
	err := r.db.WithContext(ctx).
		Where("in_stock = ?", true).
		Order("created_at ASC").
		Find(&items).
		Error

	if err != nil {
		return nil, err
	}

	return items, nil
}

// update loads the item, applies mutate and writes back only the returned columns.
func (r *itemRepoImpl) update(ctx context.Context, itemID string, mutate func(item *model.Item) []string) (*model.Item, error) {
	var item model.Item
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", itemID).First(&item).Error; err != nil {
			return err
		}

		columns := mutate(&item)
		return tx.Select(columns).Updates(&item).Error
	})
	if err != nil {
		return nil, err
	}

	return &item, nil
}

func (r *itemRepoImpl) ToggleStock(ctx context.Context, itemID string) (*model.Item, error) {
	return r.update(ctx, itemID, func(item *model.Item) []string {
		item.InStock = !item.InStock
		return []string{"in_stock"}
	})
}

func (r *itemRepoImpl) UpdatePrice(ctx context.Context, itemID string, price decimal.Decimal) (*model.Item, error) {
	return r.update(ctx, itemID, func(item *model.Item) []string {
		item.Price = price
		return []string{"price"}
	})
}

func (r *itemRepoImpl) UpdateOptions(ctx context.Context, itemID string, options []string) (*model.Item, error) {
	return r.update(ctx, itemID, func(item *model.Item) []string {
		item.Options = options
		return []string{"options"}
	})
}

func (r *itemRepoImpl) UpdateDescription(ctx context.Context, itemID string, description *string) (*model.Item, error) {
	return r.update(ctx, itemID, func(item *model.Item) []string {
		item.Description = description
		return []string{"description"}
	})
}

func (r *itemRepoImpl) Delete(ctx context.Context, itemID string) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", itemID).
		Delete(&model.Item{})

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
