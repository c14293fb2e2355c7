// Package validation checks form drafts and request bodies with
// go-playground/validator and renders English messages for the operator.
package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/yigit/courseadmin/internal/pkg/apperrors"
)

var (
	validate   *validator.Validate
	translator ut.Translator
)

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// Messages name fields by their label tag, falling back to the json name.
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		if label := f.Tag.Get("label"); label != "" {
			return label
		}
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})

	_ = validate.RegisterValidation("nonneg", nonNegative)
	_ = validate.RegisterValidation("notblank", notBlank)
	_ = validate.RegisterValidation("selected", notBlank)

	translator, _ = ut.New(en.New(), en.New()).GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(validate, translator)

	override("required", "{0} is required")
	override("nonneg", "{0} cannot be negative")
	override("notblank", "{0} is required")
	override("selected", "Please select {0}")
}

func nonNegative(fl validator.FieldLevel) bool {
	field := fl.Field()
	switch field.Kind() {
	case reflect.Float32, reflect.Float64:
		return field.Float() >= 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return field.Int() >= 0
	default:
		return true
	}
}

func notBlank(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return !field.IsZero()
	}
	return strings.TrimSpace(field.String()) != ""
}

func override(tag, text string) {
	_ = validate.RegisterTranslation(tag, translator,
		func(ut ut.Translator) error {
			return ut.Add(tag, text, true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			msg, err := ut.T(tag, fe.Field())
			if err != nil {
				return fe.Error()
			}
			return msg
		})
}

// Check validates val. A failure is an apperrors.ErrValidationFailed whose
// message is the first translated field error and whose details map every
// failing field to its message.
func Check(val any) error {
	err := validate.Struct(val)
	if err == nil {
		return nil
	}

	var verrors validator.ValidationErrors
	if !errors.As(err, &verrors) {
		return err
	}
	if len(verrors) < 1 {
		return nil
	}

	details := make(map[string]interface{}, len(verrors))
	for _, fe := range verrors {
		if _, seen := details[fe.Field()]; !seen {
			details[fe.Field()] = fe.Translate(translator)
		}
	}

	return apperrors.NewCustomError(apperrors.ErrValidationFailed, verrors[0].Translate(translator)).
		WithDetails(details).
		WithCode("VAL_001")
}

// FieldErrors returns the per-field messages of a Check failure.
func FieldErrors(err error) map[string]string {
	var custom *apperrors.CustomError
	if !errors.As(err, &custom) || !errors.Is(err, apperrors.ErrValidationFailed) {
		return nil
	}
	out := make(map[string]string, len(custom.Details))
	for field, msg := range custom.Details {
		if s, ok := msg.(string); ok {
			out[field] = s
		}
	}
	return out
}

// Engine exposes the shared validator, e.g. for gin's binding.
func Engine() *validator.Validate {
	return validate
}
