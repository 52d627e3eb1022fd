package services

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/custodia-labs/nodice/internal/core/domain"
)

// validate is safe for concurrent use and caches struct metadata.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by the name users type: the CLI flag or settings key.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"flag", "key"} {
			if name := fld.Tag.Get(tag); name != "" {
				return name
			}
		}
		return fld.Name
	})
	return v
}

// ValidateOptions checks run options before any file is read.
func ValidateOptions(opts domain.Options) error {
	if err := validate.Struct(opts); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, formatValidationErrors(err))
	}
	if opts.MakeCustom && opts.RawRolls() {
		return fmt.Errorf("%w: custom rolls need a wordlist, but --dice skips it", domain.ErrInvalidInput)
	}
	return nil
}

// ValidateSettings checks settings before they are persisted.
func ValidateSettings(settings *domain.Settings) error {
	if settings == nil {
		return fmt.Errorf("%w: nil settings", domain.ErrInvalidInput)
	}
	if err := validate.Struct(settings); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, formatValidationErrors(err))
	}
	return nil
}

func formatValidationErrors(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error()
	}

	msgs := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		field := fieldErr.Field()
		switch fieldErr.Tag() {
		case "required", "required_without":
			msgs = append(msgs, fmt.Sprintf("%s is required", field))
		case "gte":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s", field, fieldErr.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s validation", field, fieldErr.Tag()))
		}
	}
	return strings.Join(msgs, "; ")
}
