package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const DefaultEmoji = "🍪"

// Item is a menu entry. Options keep their admin-entered order; an empty list is stored as NULL.
type Item struct {
	ID          string          `gorm:"primaryKey;size:36;not null" json:"id"`
	Name        string          `gorm:"size:128;not null" json:"name"`
	Description *string         `gorm:"size:1024" json:"description"`
	Emoji       string          `gorm:"size:32;not null" json:"emoji"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Options     []string        `gorm:"type:text;serializer:json" json:"options"`
	InStock     bool            `gorm:"not null" json:"in_stock"`
	CreatedAt   time.Time       `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func (i *Item) HasOption(option string) bool {
	for _, o := range i.Options {
		if o == option {
			return true
		}
	}
	return false
}

// ParseOptions splits a comma separated admin input into trimmed, non-empty options.
// It returns nil when nothing is left so the column is cleared.
func ParseOptions(raw string) []string {
	var options []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			options = append(options, o)
		}
	}
	return options
}

const (
	SettingBlockedDates = "blocked_dates"
	SettingAdminEmail   = "admin_email"
)

// Setting is one key of the settings table; Value holds JSON text.
type Setting struct {
	Key       string `gorm:"primaryKey;size:64;not null"`
	Value     string `gorm:"type:text"`
	UpdatedAt time.Time
}
