package repository

import (
	"context"
	"testing"
	"time"

	"bakery-storefront/internal/client"
	"bakery-storefront/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := client.InitTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func strPtr(s string) *string { return &s }

func newItem(name string, price string, createdAt time.Time) *model.Item {
	return &model.Item{
		ID:        uuid.NewString(),
		Name:      name,
		Emoji:     model.DefaultEmoji,
		Price:     decimal.RequireFromString(price),
		InStock:   true,
		CreatedAt: createdAt,
	}
}

func TestItemRepository_ListOrdersByCreation(t *testing.T) {
	ctx := context.Background()
	repo := NewItemRepository(newTestDB(t))

	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	second := newItem("Brownie", "3.50", base.Add(time.Hour))
	first := newItem("Cookie", "2.00", base)
	hidden := newItem("Pie", "12.00", base.Add(2*time.Hour))
	hidden.InStock = false

	require.NoError(t, repo.Seed(ctx, []*model.Item{second, first, hidden}))

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, []string{"Cookie", "Brownie", "Pie"}, []string{items[0].Name, items[1].Name, items[2].Name})

	inStock, err := repo.ListInStock(ctx)
	require.NoError(t, err)
	require.Len(t, inStock, 2)
	assert.Equal(t, "Cookie", inStock[0].Name)
}

func TestItemRepository_SeedSkipsExisting(t *testing.T) {
	ctx := context.Background()
	repo := NewItemRepository(newTestDB(t))

	item := newItem("Cookie", "2.00", time.Now())
	require.NoError(t, repo.Seed(ctx, []*model.Item{item}))

	renamed := *item
	renamed.Name = "Renamed"
	require.NoError(t, repo.Seed(ctx, []*model.Item{&renamed}))

	got, err := repo.FindByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cookie", got.Name)
}

func TestItemRepository_Updates(t *testing.T) {
	ctx := context.Background()
	repo := NewItemRepository(newTestDB(t))

	item := newItem("Cookie", "2.00", time.Now())
	require.NoError(t, repo.Create(ctx, item))

	toggled, err := repo.ToggleStock(ctx, item.ID)
	require.NoError(t, err)
	assert.False(t, toggled.InStock)

	toggled, err = repo.ToggleStock(ctx, item.ID)
	require.NoError(t, err)
	assert.True(t, toggled.InStock)

	priced, err := repo.UpdatePrice(ctx, item.ID, decimal.RequireFromString("4.25"))
	require.NoError(t, err)
	assert.True(t, priced.Price.Equal(decimal.RequireFromString("4.25")))

	withOptions, err := repo.UpdateOptions(ctx, item.ID, []string{"Chocolate", "Vanilla"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Chocolate", "Vanilla"}, withOptions.Options)

	_, err = repo.UpdateDescription(ctx, item.ID, strPtr("Chewy"))
	require.NoError(t, err)

	got, err := repo.FindByID(ctx, item.ID)
	require.NoError(t, err)
	assert.True(t, got.InStock)
	assert.True(t, got.Price.Equal(decimal.RequireFromString("4.25")))
	assert.Equal(t, []string{"Chocolate", "Vanilla"}, got.Options)
	require.NotNil(t, got.Description)
	assert.Equal(t, "Chewy", *got.Description)

	_, err = repo.UpdateOptions(ctx, item.ID, nil)
	require.NoError(t, err)
	_, err = repo.UpdateDescription(ctx, item.ID, nil)
	require.NoError(t, err)

	got, err = repo.FindByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Options)
	assert.Nil(t, got.Description)
}

func TestItemRepository_MissingItem(t *testing.T) {
	ctx := context.Background()
	repo := NewItemRepository(newTestDB(t))

	_, err := repo.ToggleStock(ctx, "missing")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	err = repo.Delete(ctx, "missing")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestItemRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewItemRepository(newTestDB(t))

	item := newItem("Cookie", "2.00", time.Now())
	require.NoError(t, repo.Create(ctx, item))
	require.NoError(t, repo.Delete(ctx, item.ID))

	_, err := repo.FindByID(ctx, item.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func newOrder(name string, date *string, createdAt time.Time) *model.Order {
	return &model.Order{
		ID:              uuid.NewString(),
		CustomerName:    name,
		CustomerEmail:   name + "@example.com",
		RequestedDate:   date,
		FulfillmentType: model.FulfillmentPickup,
		Items: []model.OrderLine{
			{ID: "cookie", Name: "Cookie", Emoji: model.DefaultEmoji, Quantity: 2, Price: decimal.RequireFromString("2.00")},
		},
		Total:     decimal.RequireFromString("4.00"),
		Status:    "pending",
		CreatedAt: createdAt,
	}
}

func TestOrderRepository_CreateAndList(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository(newTestDB(t))

	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	older := newOrder("ana", strPtr("2026-03-10"), base)
	newer := newOrder("ben", strPtr("2026-03-10"), base.Add(time.Hour))
	other := newOrder("cy", strPtr("2026-04-02"), base.Add(2*time.Hour))
	undated := newOrder("di", nil, base.Add(3*time.Hour))

	for _, o := range []*model.Order{older, newer, other, undated} {
		require.NoError(t, repo.Create(ctx, o))
	}

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, "di", all[0].CustomerName)
	assert.Equal(t, "ana", all[3].CustomerName)

	byDate, err := repo.ListByRequestedDate(ctx, "2026-03-10")
	require.NoError(t, err)
	require.Len(t, byDate, 2)
	assert.Equal(t, "ben", byDate[0].CustomerName)

	byMonth, err := repo.ListByRequestedMonth(ctx, 2026, time.March)
	require.NoError(t, err)
	assert.Len(t, byMonth, 2)

	got, err := repo.FindByID(ctx, older.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "Cookie", got.Items[0].Name)
	assert.Equal(t, 2, got.Items[0].Quantity)
	assert.True(t, got.Total.Equal(decimal.RequireFromString("4")))
}

func TestOrderRepository_ToggleFlags(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository(newTestDB(t))

	order := newOrder("ana", nil, time.Now())
	require.NoError(t, repo.Create(ctx, order))

	fulfilled, err := repo.ToggleFulfilled(ctx, order.ID)
	require.NoError(t, err)
	assert.True(t, fulfilled.IsFulfilled)
	assert.False(t, fulfilled.IsPaid)
	assert.Equal(t, model.StatusFulfilled, fulfilled.CompositeStatus())

	paid, err := repo.TogglePaid(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusComplete, paid.CompositeStatus())

	unfulfilled, err := repo.ToggleFulfilled(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusPaid, unfulfilled.CompositeStatus())

	got, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.False(t, got.IsFulfilled)
	assert.True(t, got.IsPaid)
}

func TestOrderRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository(newTestDB(t))

	order := newOrder("ana", nil, time.Now())
	require.NoError(t, repo.Create(ctx, order))
	require.NoError(t, repo.Delete(ctx, order.ID))

	assert.ErrorIs(t, repo.Delete(ctx, order.ID), gorm.ErrRecordNotFound)
	_, err := repo.TogglePaid(ctx, order.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestSettingRepository_Upsert(t *testing.T) {
	ctx := context.Background()
	repo := NewSettingRepository(newTestDB(t))

	_, err := repo.Get(ctx, model.SettingAdminEmail)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.NoError(t, repo.Upsert(ctx, model.SettingAdminEmail, `"a@example.com"`))
	require.NoError(t, repo.Upsert(ctx, model.SettingAdminEmail, `"b@example.com"`))

	setting, err := repo.Get(ctx, model.SettingAdminEmail)
	require.NoError(t, err)
	assert.Equal(t, `"b@example.com"`, setting.Value)
}

func TestSettingRepository_JSON(t *testing.T) {
	ctx := context.Background()
	repo := NewSettingRepository(newTestDB(t))

	var dates []string
	found, err := repo.GetJSON(ctx, model.SettingBlockedDates, &dates)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, repo.PutJSON(ctx, model.SettingBlockedDates, []string{"2026-03-10", "2026-03-11"}))

	found, err = repo.GetJSON(ctx, model.SettingBlockedDates, &dates)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []string{"2026-03-10", "2026-03-11"}, dates)

	require.NoError(t, repo.Upsert(ctx, model.SettingBlockedDates, "not json"))
	_, err = repo.GetJSON(ctx, model.SettingBlockedDates, &dates)
	assert.Error(t, err)
}
