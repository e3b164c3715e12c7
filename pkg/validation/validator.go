package validation

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/leandrocorretor/realty/pkg/catalog"
	"github.com/leandrocorretor/realty/pkg/i18n"
)

var (
	validate *validator.Validate
	once     sync.Once
)

// Get returns the shared validator with the custom listing tags registered
func Get() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		// Report JSON field names, falling back to form names for multipart bindings.
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			for _, tag := range []string{"json", "form"} {
				name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
				if name == "-" {
					return ""
				}
				if name != "" {
					return name
				}
			}
			return fld.Name
		})

		_ = validate.RegisterValidation("property_category", func(fl validator.FieldLevel) bool {
			return catalog.IsCategory(fl.Field().String())
		})
		_ = validate.RegisterValidation("br_state", func(fl validator.FieldLevel) bool {
			return catalog.IsState(fl.Field().String())
		})
		_ = validate.RegisterValidation("lang", func(fl validator.FieldLevel) bool {
			return i18n.IsSupported(fl.Field().String())
		})
		_ = validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
	})
	return validate
}

// ValidateStruct validates s and returns a *ValidationError keyed by JSON field name
func ValidateStruct(s interface{}) error {
	err := Get().Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return NewValidationError(verrs)
	}
	return err
}
