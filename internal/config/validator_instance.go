package config

import (
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/formsmith/internal/domain/form"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	elementIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
	colorPattern     = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
	lengthPattern    = regexp.MustCompile(`^(?:0|\d+(?:\.\d+)?(?:px|em|rem|%))$`)
	fontWeights      = map[string]struct{}{
		"normal": {}, "bold": {}, "lighter": {}, "bolder": {},
		"100": {}, "200": {}, "300": {}, "400": {}, "500": {}, "600": {}, "700": {}, "800": {}, "900": {},
	}
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return field.Name
			}
			return name
		})

		_ = v.RegisterValidation("element_id", func(fl validator.FieldLevel) bool {
			return elementIDPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("question_type", func(fl validator.FieldLevel) bool {
			return form.QuestionType(fl.Field().String()).Valid()
		})

		_ = v.RegisterValidation("css_color", func(fl validator.FieldLevel) bool {
			return IsColor(fl.Field().String())
		})

		_ = v.RegisterValidation("css_length", func(fl validator.FieldLevel) bool {
			return IsLength(fl.Field().String())
		})

		// Padding accepts the one to four value shorthand.
		_ = v.RegisterValidation("css_box", func(fl validator.FieldLevel) bool {
			parts := strings.Fields(fl.Field().String())
			if len(parts) == 0 || len(parts) > 4 {
				return false
			}
			for _, part := range parts {
				if !IsLength(part) {
					return false
				}
			}
			return true
		})

		_ = v.RegisterValidation("font_weight", func(fl validator.FieldLevel) bool {
			_, ok := fontWeights[fl.Field().String()]
			return ok
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns a configured validator instance for use outside the config package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}

// IsColor reports whether value is a #rgb or #rrggbb colour.
func IsColor(value string) bool {
	return colorPattern.MatchString(value)
}

// IsLength reports whether value is a length such as 16px, 1.5em or 50%.
func IsLength(value string) bool {
	return lengthPattern.MatchString(value)
}
