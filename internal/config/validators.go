package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/idelchi/gogen/pkg/validator"
)

// validate runs struct-tag validation with the custom tags registered and
// joins the translated messages of every failing field.
func validate(cfg any) error {
	v := validator.NewValidator()

	if err := registerExclusive(v); err != nil {
		return err
	}

	if errs := v.Validate(cfg); len(errs) > 0 {
		return fmt.Errorf("validating configuration: %w", errors.Join(errs...))
	}

	return nil
}

// registerExclusive adds a validator ensuring a field is not set together with any of the
// space-separated sibling fields named in its parameter, and reports fields by their flag label.
func registerExclusive(v *validator.Validator) error {
	if err := v.RegisterValidationAndTranslation(
		"exclusive",
		validateExclusive,
		"{0} is mutually exclusive with the other key sources",
	); err != nil {
		return fmt.Errorf("registering exclusive validation: %w", err)
	}

	v.Validator().RegisterTagNameFunc(func(fld reflect.StructField) string {
		const splitSize = 2

		name := strings.SplitN(fld.Tag.Get("label"), ",", splitSize)[0]
		if name == "-" || name == "" {
			return fld.Name
		}

		return name
	})

	return nil
}

// validateExclusive returns false if the field and any of the named siblings are both non-empty.
func validateExclusive(fl validator.FieldLevel) bool {
	field := fl.Field()

	if field.Kind() != reflect.String || field.String() == "" {
		return true
	}

	for _, name := range strings.Fields(fl.Param()) {
		other := fl.Parent().FieldByName(name)

		if other.IsValid() && other.Kind() == reflect.String && other.String() != "" {
			return false
		}
	}

	return true
}
