// SPDX-License-Identifier: MIT

// Package validation wraps go-playground/validator with English error
// messages, shared by dataset loading, configuration and the HTTP API.
package validation

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

// ErrInvalid is wrapped by every error Struct returns for failed rules.
var ErrInvalid = errors.New("validation: invalid input")

// Validator validates structs by their `validate` tags and renders
// failures as English sentences.
type Validator struct {
	validate *validator.Validate
	trans    ut.Translator
}

// New builds a Validator with the default English translations registered.
func New() *Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	_ = enTranslations.RegisterDefaultTranslations(validate, trans)

	return &Validator{validate: validate, trans: trans}
}

var shared = sync.OnceValue(New)

// Default returns the process-wide Validator, built on first use. A
// Validator is safe for concurrent use.
func Default() *Validator { return shared() }

// Struct validates s. Rule failures come back as one error wrapping
// ErrInvalid whose message lists every translated failure.
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}
	msgs := v.Messages(err)
	if len(msgs) == 0 {
		return err
	}

	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
}

// Messages translates a validator error into one sentence per failed field.
// Errors that are not validator.ValidationErrors yield nil.
func (v *Validator) Messages(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, fe.Translate(v.trans))
	}

	return out
}
