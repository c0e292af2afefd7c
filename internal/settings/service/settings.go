package service

import (
	"context"
	"errors"

	settingserrors "flexspace/internal/settings/errors"
	"flexspace/internal/settings/repository"
	"flexspace/internal/settings/validator"
	"flexspace/pkg/config"
	apperrors "flexspace/pkg/errors"
	"flexspace/pkg/model"
	"flexspace/pkg/sanitizer"
)

type SettingsService interface {
	Get(ctx context.Context) (*model.SiteSettings, error)
	Update(ctx context.Context, updates *model.SiteSettingsUpdate) (*model.SiteSettings, error)
}

type settingsService struct {
	repo      repository.SettingsRepository
	validator *validator.SettingsValidator
	cfg       *config.Config
}

func NewSettingsService(
	repo repository.SettingsRepository,
	validator *validator.SettingsValidator,
	cfg *config.Config,
) SettingsService {
	return &settingsService{
		repo:      repo,
		validator: validator,
		cfg:       cfg,
	}
}

// DefaultSettings is what a fresh site runs on until an admin writes
// their own configuration.
func DefaultSettings() *model.SiteSettings {
	return &model.SiteSettings{
		SiteName:           "FlexSpace",
		OpenDays:           append([]model.Weekday{}, config.DefaultOpenDays...),
		MorningStart:       config.DefaultMorningStart,
		MorningEnd:         config.DefaultMorningEnd,
		AfternoonStart:     config.DefaultAfternoonStart,
		AfternoonEnd:       config.DefaultAfternoonEnd,
		NightStart:         config.DefaultNightStart,
		NightEnd:           config.DefaultNightEnd,
		TimeZone:           config.DefaultTimeZone,
		Currency:           config.DefaultCurrency,
		MaxDiscountPercent: 50,
	}
}

func (s *settingsService) Get(ctx context.Context) (*model.SiteSettings, error) {
	settings, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, settingserrors.ErrNotFound) {
			return DefaultSettings(), nil
		}
		return nil, apperrors.Internal("Failed to load site settings", err)
	}

	return settings, nil
}

func (s *settingsService) Update(ctx context.Context, updates *model.SiteSettingsUpdate) (*model.SiteSettings, error) {
	if err := s.validator.ValidateUpdate(updates); err != nil {
		s.cfg.Log.Warn("Settings update validation failed", "error", err)
		return nil, apperrors.Validation("Invalid settings update", map[string]any{"error": err.Error()})
	}

	current, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	merged := s.merge(current, updates)
	s.sanitize(merged)

	if err := s.validator.Validate(merged); err != nil {
		s.cfg.Log.Warn("Settings validation failed", "error", err)
		return nil, apperrors.Validation("Settings validation failed", map[string]any{"error": err.Error()})
	}

	if err := s.repo.Upsert(ctx, merged); err != nil {
		s.cfg.Log.Error("Failed to store site settings", "error", err)
		return nil, apperrors.Internal("Failed to store site settings", err)
	}

	s.cfg.Log.Info("Site settings updated",
		"site_name", merged.SiteName,
		"time_zone", merged.TimeZone,
		"max_discount_percent", merged.MaxDiscountPercent,
	)
	return merged, nil
}

func (s *settingsService) sanitize(settings *model.SiteSettings) {
	settings.SiteName = sanitizer.NormalizeName(settings.SiteName)
	settings.OpenDays = sanitizer.NormalizeWeekdays(settings.OpenDays)
}

func (s *settingsService) merge(current *model.SiteSettings, updates *model.SiteSettingsUpdate) *model.SiteSettings {
	merged := *current

	if updates.SiteName != "" {
		merged.SiteName = updates.SiteName
	}
	if updates.OpenDays != nil {
		merged.OpenDays = updates.OpenDays
	}
	if updates.MorningStart != "" {
		merged.MorningStart = updates.MorningStart
	}
	if updates.MorningEnd != "" {
		merged.MorningEnd = updates.MorningEnd
	}
	if updates.AfternoonStart != "" {
		merged.AfternoonStart = updates.AfternoonStart
	}
	if updates.AfternoonEnd != "" {
		merged.AfternoonEnd = updates.AfternoonEnd
	}
	if updates.NightStart != "" {
		merged.NightStart = updates.NightStart
	}
	if updates.NightEnd != "" {
		merged.NightEnd = updates.NightEnd
	}
	if updates.TimeZone != "" {
		merged.TimeZone = updates.TimeZone
	}
	if updates.Currency != "" {
		merged.Currency = updates.Currency
	}
	if updates.MaxDiscountPercent != nil {
		merged.MaxDiscountPercent = *updates.MaxDiscountPercent
	}

	return &merged
}
