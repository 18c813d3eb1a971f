package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"bakery-storefront/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingRepository interface {
	Get(ctx context.Context, key string) (*model.Setting, error)
	Upsert(ctx context.Context, key string, value string) error
	// GetJSON decodes the value of key into dst and reports whether the key exists.
	GetJSON(ctx context.Context, key string, dst interface{}) (bool, error)
	PutJSON(ctx context.Context, key string, value interface{}) error
}

type settingRepoImpl struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) SettingRepository {
	return &settingRepoImpl{
		db: db,
	}
}

func (r *settingRepoImpl) Get(ctx context.Context, key string) (*model.Setting, error) {
	var setting model.Setting
	err := r.db.WithContext(ctx).
		Where(&model.Setting{Key: key}).
		First(&setting).Error
	if err != nil {
		return nil, err
	}

	return &setting, nil
}

func (r *settingRepoImpl) Upsert(ctx context.Context, key string, value string) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "key"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"value":      value,
			"updated_at": time.Now(),
		}),
	}).Create(&model.Setting{Key: key, Value: value}).Error
}

func (r *settingRepoImpl) GetJSON(ctx context.Context, key string, dst interface{}) (bool, error) {
	setting, err := r.Get(ctx, key)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if setting.Value == "" {
		return false, nil
	}
	if err := json.Unmarshal([]byte(setting.Value), dst); err != nil {
		return true, fmt.Errorf("decode setting %s: %w", key, err)
	}

	return true, nil
}

func (r *settingRepoImpl) PutJSON(ctx context.Context, key string, value interface{}) error {
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode setting %s: %w", key, err)
	}
	return r.Upsert(ctx, key, string(b))
}
