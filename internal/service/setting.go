package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"bakery-storefront/internal/calendar"
	"bakery-storefront/internal/model"
	"bakery-storefront/internal/repository"
)

type SettingService interface {
	BlockedDates(ctx context.Context) ([]string, error)
	// ToggleBlockedDate adds or removes one date and returns the stored collection.
	ToggleBlockedDate(ctx context.Context, date string) ([]string, error)
	// AdminEmail returns the stored notification address or the configured fallback.
	AdminEmail(ctx context.Context) (string, error)
	SaveAdminEmail(ctx context.Context, email string) (string, error)
}

type settingServiceImpl struct {
	settingRepo       repository.SettingRepository
	defaultAdminEmail string

	// serializes read-modify-write of the blocked dates collection
	blockedMu sync.Mutex
}

func NewSettingService(
	settingRepo repository.SettingRepository,
	defaultAdminEmail string,
) SettingService {
	return &settingServiceImpl{
		settingRepo:       settingRepo,
		defaultAdminEmail: strings.TrimSpace(defaultAdminEmail),
	}
}

func (s *settingServiceImpl) BlockedDates(ctx context.Context) ([]string, error) {
	var dates []string
	if _, err := s.settingRepo.GetJSON(ctx, model.SettingBlockedDates, &dates); err != nil {
		return nil, fmt.Errorf("get blocked dates: %w", err)
	}
	if dates == nil {
		dates = []string{}
	}
	return dates, nil
}

func (s *settingServiceImpl) ToggleBlockedDate(ctx context.Context, date string) ([]string, error) {
	if _, err := calendar.Parse(date); err != nil {
		return nil, err
	}

	s.blockedMu.Lock()
	defer s.blockedMu.Unlock()

	current, err := s.BlockedDates(ctx)
	if err != nil {
		return nil, err
	}

	next := calendar.Toggle(current, date)
	if err := s.settingRepo.PutJSON(ctx, model.SettingBlockedDates, next); err != nil {
		return nil, fmt.Errorf("save blocked dates: %w", err)
	}
	return next, nil
}

func (s *settingServiceImpl) AdminEmail(ctx context.Context) (string, error) {
	var email string
	if _, err := s.settingRepo.GetJSON(ctx, model.SettingAdminEmail, &email); err != nil {
		return "", fmt.Errorf("get admin email: %w", err)
	}
	if email = strings.TrimSpace(email); email == "" {
		return s.defaultAdminEmail, nil
	}
	return email, nil
}

func (s *settingServiceImpl) SaveAdminEmail(ctx context.Context, email string) (string, error) {
	email = strings.TrimSpace(email)
	if err := s.settingRepo.PutJSON(ctx, model.SettingAdminEmail, email); err != nil {
		return "", fmt.Errorf("save admin email: %w", err)
	}
	return email, nil
}
