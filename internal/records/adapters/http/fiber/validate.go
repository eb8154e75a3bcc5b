package fiber

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

type requestValidator struct {
	v     *validator.Validate
	trans ut.Translator
}

var (
	validatorOnce sync.Once
	shared        *requestValidator
)

// getValidator builds the shared validator once; messages use json field names.
func getValidator() *requestValidator {
	validatorOnce.Do(func() {
		enLoc := en.New()
		trans, _ := ut.New(enLoc, enLoc).GetTranslator("en")

		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
			if name == "" || name == "-" {
				return fld.Name
			}
			return name
		})
		_ = en_translations.RegisterDefaultTranslations(v, trans)

		shared = &requestValidator{v: v, trans: trans}
	})
	return shared
}

// validateStruct returns nil or an error whose message joins every field failure.
func validateStruct(s any) error {
	rv := getValidator()

	err := rv.v.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fe.Translate(rv.trans))
	}
	return errors.New(strings.Join(msgs, "; "))
}
