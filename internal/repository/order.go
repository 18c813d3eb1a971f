package repository

import (
	"context"
	"fmt"
	"time"

	"bakery-storefront/internal/model"

	"gorm.io/gorm"
)

type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	FindByID(ctx context.Context, orderID string) (*model.Order, error)
	List(ctx context.Context) ([]*model.Order, error)
	ListByRequestedDate(ctx context.Context, date string) ([]*model.Order, error)
	ListByRequestedMonth(ctx context.Context, year int, month time.Month) ([]*model.Order, error)
	ToggleFulfilled(ctx context.Context, orderID string) (*model.Order, error)
	TogglePaid(ctx context.Context, orderID string) (*model.Order, error)
	Delete(ctx context.Context, orderID string) error
}

type orderRepoImpl struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepoImpl{
		db: db,
	}
}

func (r *orderRepoImpl) Create(ctx context.Context, order *model.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *orderRepoImpl) FindByID(ctx context.Context, orderID string) (*model.Order, error) {
	var order model.Order
	err := r.db.WithContext(ctx).
		Where("id = ?", orderID).
		First(&order).Error

	if err != nil {
		return nil, err
	}

	return &order, nil
}

// List returns every order, newest first.
func (r *orderRepoImpl) List(ctx context.Context) ([]*model.Order, error) {
	var orders []*model.Order
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&orders).Error

	if err != nil {
		return nil, err
	}

	return orders, nil
}

func (r *orderRepoImpl) ListByRequestedDate(ctx context.Context, date string) ([]*model.Order, error) {
	var orders []*model.Order
	err := r.db.WithContext(ctx).
		Where("requested_date = ?", date).
		Order("created_at DESC").
		Find(&orders).Error

	if err != nil {
		return nil, err
	}

	return orders, nil
}

func (r *orderRepoImpl) ListByRequestedMonth(ctx context.Context, year int, month time.Month) ([]*model.Order, error) {
	var orders []*model.Order
	err := r.db.WithContext(ctx).
		Where("requested_date LIKE ?", fmt.Sprintf("%04d-%02d-%%", year, int(month))).
		Order("requested_date ASC, created_at DESC").
		Find(&orders).Error

	if err != nil {
		return nil, err
	}

	return orders, nil
}

func (r *orderRepoImpl) toggle(ctx context.Context, orderID string, flip func(order *model.Order) string) (*model.Order, error) {
	var order model.Order
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", orderID).First(&order).Error; err != nil {
			return err
		}

		column := flip(&order)
		return tx.Select(column).Updates(&order).Error
	})
	if err != nil {
		return nil, err
	}

	return &order, nil
}

func (r *orderRepoImpl) ToggleFulfilled(ctx context.Context, orderID string) (*model.Order, error) {
	return r.toggle(ctx, orderID, func(order *model.Order) string {
		order.IsFulfilled = !order.IsFulfilled
		return "is_fulfilled"
	})
}

func (r *orderRepoImpl) TogglePaid(ctx context.Context, orderID string) (*model.Order, error) {
	return r.toggle(ctx, orderID, func(order *model.Order) string {
		order.IsPaid = !order.IsPaid
		return "is_paid"
	})
}

func (r *orderRepoImpl) Delete(ctx context.Context, orderID string) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", orderID).
		Delete(&model.Order{})

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
