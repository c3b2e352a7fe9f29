package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/SychO3/SMAPIDedicatedServerMod/internal/domain"
)

var validate = validator.New()

// Validate checks cfg against its struct tags. The returned error wraps
// domain.ErrInvalidConfig and names every offending field.
func Validate(cfg *Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: %v", domain.ErrInvalidConfig, err)
	}

	problems := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		problems = append(problems, describe(e))
	}
	return fmt.Errorf("%w: %s", domain.ErrInvalidConfig, strings.Join(problems, "; "))
}

func describe(e validator.FieldError) string {
	switch e.Tag() {
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %q", e.Field(), e.Param(), e.Value())
	case "required", "required_if":
		return fmt.Sprintf("%s is required", e.Field())
	case "numeric":
		return fmt.Sprintf("%s must be numeric", e.Field())
	case "gte", "gt":
		return fmt.Sprintf("%s must be %s %s", e.Field(), e.Tag(), e.Param())
	default:
		return fmt.Sprintf("%s is invalid", e.Field())
	}
}

// Warnings returns non-fatal notes about cfg, such as example credentials
// left in place for a server backend
func (c *Config) Warnings() []string {
	var warnings []string
	if c.SaveBackend == BackendPostgres && c.DBPassword == DefaultDBPassword {
		warnings = append(warnings, "DB_PASSWORD is the default value - set a real password for shared databases")
	}
	if c.SaveBackend == BackendMemory {
		warnings = append(warnings, "SAVE_BACKEND=memory - crop data will not survive a restart")
	}
	if c.Days == 0 && c.DayInterval == 0 {
		warnings = append(warnings, "DAYS and DAY_INTERVAL are both 0 - the simulation will run one day")
	}
	return warnings
}
