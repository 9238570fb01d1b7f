// Package validation checks decoded request input against the `validate`
// struct tags of the models package using a shared go-playground validator.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"moviehub/models"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// emailPattern is deliberately loose: something@something.something.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validator returns the shared validator instance.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		// Report JSON names so messages match what clients sent.
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		if err := validate.RegisterValidation("contactemail", func(fl validator.FieldLevel) bool {
			return emailPattern.MatchString(fl.Field().String())
		}); err != nil {
			panic(err)
		}
	})
	return validate
}

// Struct validates s and returns a *models.ValidationError on failure.
// Missing required fields are reported together and take precedence over
// format failures.
func Struct(s any) error {
	err := Validator().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate %T: %w", s, err)
	}

	var missing []string
	for _, fe := range fieldErrs {
		if fe.Tag() == "required" {
			missing = append(missing, fe.Field())
		}
	}
	if len(missing) > 0 {
		return models.MissingFields(missing...)
	}

	fe := fieldErrs[0]
	return &models.ValidationError{
		Message: message(fe),
		Fields:  []string{fe.Field()},
	}
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "contactemail":
		return "Invalid email address"
	case "oneof":
		return fmt.Sprintf("Invalid %s. Must be one of: %s", fe.Field(), strings.Join(strings.Fields(fe.Param()), ", "))
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("Invalid %s", fe.Field())
	}
}
