// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package validation

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"

	"github.com/danielhkuo/habit-tracker/tracker"
)

// Error lists every failed field with a readable message.
type Error struct {
	Fields map[string]string
}

func (e *Error) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	msgs := make([]string, 0, len(names))
	for _, name := range names {
		msgs = append(msgs, e.Fields[name])
	}
	return strings.Join(msgs, "; ")
}

// Validator checks struct tags and translates failures to English.
type Validator struct {
	validate *validator.Validate
	trans    ut.Translator
}

func New() (*Validator, error) {
	validate := validator.New()

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, fmt.Errorf("failed to register default translations: %w", err)
	}

	// Report fields by their wire names: json for requests, mapstructure for config.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "mapstructure"} {
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

	if err := validate.RegisterValidation("ddmmyyyy", isDate); err != nil {
		return nil, fmt.Errorf("failed to register ddmmyyyy validation: %w", err)
	}
	if err := validate.RegisterTranslation("ddmmyyyy", trans, func(ut ut.Translator) error {
		return ut.Add("ddmmyyyy", "{0} must be a date in DD-MM-YYYY format", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("ddmmyyyy", fe.Field())
		return t
	}); err != nil {
		return nil, fmt.Errorf("failed to register ddmmyyyy translation: %w", err)
	}

	return &Validator{validate: validate, trans: trans}, nil
}

// Struct validates s. Tag violations come back as *Error.
func (v *Validator) Struct(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	out := &Error{Fields: make(map[string]string, len(fieldErrs))}
	for _, fe := range fieldErrs {
		out.Fields[fe.Field()] = fe.Translate(v.trans)
	}
	return out
}

func isDate(fl validator.FieldLevel) bool {
	_, err := tracker.ParseDate(fl.Field().String())
	return err == nil
}
