package validator

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	settingserrors "flexspace/internal/settings/errors"
	"flexspace/pkg/logger"
	"flexspace/pkg/model"

	"github.com/go-playground/validator/v10"
)

var timeOfDayRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	var messages []string
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

type SettingsValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewSettingsValidator(log *logger.Logger) (*SettingsValidator, error) {
	v := validator.New()

	err := v.RegisterValidation("valid_time_of_day", func(fl validator.FieldLevel) bool {
		return timeOfDayRegex.MatchString(fl.Field().String())
	})
	if err != nil {
		return nil, fmt.Errorf("failed to register valid_time_of_day: %w", err)
	}

	return &SettingsValidator{
		validate: v,
		logger:   log,
	}, nil
}

func (v *SettingsValidator) Validate(settings *model.SiteSettings) error {
	if err := v.validate.Struct(settings); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return v.translateValidationErrors(validationErrs)
		}
		return err
	}

	return v.validateSlotWindows(settings)
}

func (v *SettingsValidator) ValidateUpdate(update *model.SiteSettingsUpdate) error {
	if err := v.validate.Struct(update); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return v.translateValidationErrors(validationErrs)
		}
		return err
	}
	return nil
}

// validateSlotWindows checks each slot closes after it opens. HH:MM
// strings compare correctly as plain strings.
func (v *SettingsValidator) validateSlotWindows(settings *model.SiteSettings) error {
	windows := []struct {
		name  string
		start string
		end   string
	}{
		{"morning", settings.MorningStart, settings.MorningEnd},
		{"afternoon", settings.AfternoonStart, settings.AfternoonEnd},
		{"night", settings.NightStart, settings.NightEnd},
	}

	var validationErrors ValidationErrors
	for _, w := range windows {
		if w.end <= w.start {
			validationErrors = append(validationErrors, ValidationError{
				Field:   w.name,
				Message: fmt.Sprintf("%s: %s_end (%s) must be after %s_start (%s)", settingserrors.ErrInvalidSlotWindow, w.name, w.end, w.name, w.start),
			})
		}
	}

	if len(validationErrors) > 0 {
		return validationErrors
	}
	return nil
}

func (v *SettingsValidator) translateValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	var validationErrors ValidationErrors

	for _, err := range errs {
		message := err.Error()

		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", err.Field())
		case "min":
			message = fmt.Sprintf("%s must be at least %s", err.Field(), err.Param())
		case "max":
			message = fmt.Sprintf("%s must be at most %s", err.Field(), err.Param())
		case "oneof":
			message = fmt.Sprintf("%s must be one of: %s", err.Field(), err.Param())
		case "valid_time_of_day":
			message = fmt.Sprintf("%s must be a time of day in HH:MM form", err.Field())
		case "timezone":
			message = fmt.Sprintf("%s must be a valid IANA time zone", err.Field())
		case "iso4217":
			message = fmt.Sprintf("%s must be a valid ISO 4217 currency code", err.Field())
		case "mongodb":
			message = fmt.Sprintf("%s must be a valid MongoDB ObjectID", err.Field())
		}

		validationErrors = append(validationErrors, ValidationError{
			Field:   err.Field(),
			Message: message,
		})
	}

	return validationErrors
}
