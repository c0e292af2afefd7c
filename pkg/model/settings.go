package model

import "time"

// SiteSettings is the single per-site configuration document. Slot
// boundaries are local wall-clock times in HH:MM form.
type SiteSettings struct {
	ID       string `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	SiteName string `json:"site_name" bson:"site_name" validate:"required,min=2,max=100"`

	OpenDays []Weekday `json:"open_days" bson:"open_days" validate:"required,min=1,max=7,dive,oneof=Sunday Monday Tuesday Wednesday Thursday Friday Saturday"`

	MorningStart   string `json:"morning_start" bson:"morning_start" validate:"required,valid_time_of_day"`
	MorningEnd     string `json:"morning_end" bson:"morning_end" validate:"required,valid_time_of_day"`
	AfternoonStart string `json:"afternoon_start" bson:"afternoon_start" validate:"required,valid_time_of_day"`
	AfternoonEnd   string `json:"afternoon_end" bson:"afternoon_end" validate:"required,valid_time_of_day"`
	NightStart     string `json:"night_start" bson:"night_start" validate:"required,valid_time_of_day"`
	NightEnd       string `json:"night_end" bson:"night_end" validate:"required,valid_time_of_day"`

	TimeZone string `json:"time_zone" bson:"time_zone" validate:"required,timezone"`
	Currency string `json:"currency" bson:"currency" validate:"required,iso4217"`

	// MaxDiscountPercent caps the discount a recurring booking may carry.
	MaxDiscountPercent int `json:"max_discount_percent" bson:"max_discount_percent" validate:"min=0,max=100"`

	UpdatedAt time.Time `json:"updated_at" bson:"updated_at" validate:"omitempty"`
}

type SiteSettingsUpdate struct {
	SiteName string `json:"site_name,omitempty" validate:"omitempty,min=2,max=100"`

	OpenDays []Weekday `json:"open_days,omitempty" validate:"omitempty,min=1,max=7,dive,oneof=Sunday Monday Tuesday Wednesday Thursday Friday Saturday"`

	MorningStart   string `json:"morning_start,omitempty" validate:"omitempty,valid_time_of_day"`
	MorningEnd     string `json:"morning_end,omitempty" validate:"omitempty,valid_time_of_day"`
	AfternoonStart string `json:"afternoon_start,omitempty" validate:"omitempty,valid_time_of_day"`
	AfternoonEnd   string `json:"afternoon_end,omitempty" validate:"omitempty,valid_time_of_day"`
	NightStart     string `json:"night_start,omitempty" validate:"omitempty,valid_time_of_day"`
	NightEnd       string `json:"night_end,omitempty" validate:"omitempty,valid_time_of_day"`

	TimeZone string `json:"time_zone,omitempty" validate:"omitempty,timezone"`
	Currency string `json:"currency,omitempty" validate:"omitempty,iso4217"`

	MaxDiscountPercent *int `json:"max_discount_percent,omitempty" validate:"omitempty,min=0,max=100"`
}
