package services

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	"github.com/nikola-miljkovic/github-browser/internal/core/domain"
)

var (
	validatorOnce sync.Once
	optsValidator *validator.Validate
	optsTrans     ut.Translator
)

// optionsValidator returns the shared validator with English messages that
// name fields by their json tag.
func optionsValidator() (*validator.Validate, ut.Translator) {
	validatorOnce.Do(func() {
		enLoc := en.New()
		uni := ut.New(enLoc, enLoc)
		trans, _ := uni.GetTranslator("en")

		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			tag := fld.Tag.Get("json")
			if tag == "-" || tag == "" {
				return fld.Name
			}
			if idx := strings.Index(tag, ","); idx >= 0 {
				tag = tag[:idx]
			}
			return tag
		})
		_ = en_translations.RegisterDefaultTranslations(v, trans)

		optsValidator = v
		optsTrans = trans
	})
	return optsValidator, optsTrans
}

// ValidateOptions rejects list options the search cannot run with.
// Failures wrap domain.ErrInvalidInput.
func ValidateOptions(opts domain.ListOptions) error {
	v, trans := optionsValidator()

	err := v.Struct(opts)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, verrs[0].Translate(trans))
	}
	return fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
}
