// Package validator provides custom validation functions for Gin's binding
// engine and for seed data.
package validator

import (
	"regexp"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

var (
	usernameRegex = regexp.MustCompile(`^[\p{Ll}\p{N}]{1,32}$`)
	pinRegex      = regexp.MustCompile(`^[0-9]{1,8}$`)
)

var validations = map[string]validator.Func{
	"username": validateUsername,
	"pin":      validatePIN,
	"amount":   validateAmount,
	"iso4217":  validateISO4217,
}

var (
	once     sync.Once
	standard *validator.Validate
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		registerAll(v)
	}
}

// Struct validates s with the custom validators available.
func Struct(s any) error {
	once.Do(func() {
		standard = validator.New(validator.WithRequiredStructEnabled())
		registerAll(standard)
	})
	return standard.Struct(s)
}

func registerAll(v *validator.Validate) {
	for tag, fn := range validations {
		_ = v.RegisterValidation(tag, fn)
	}
}

func validateUsername(fl validator.FieldLevel) bool {
	return usernameRegex.MatchString(fl.Field().String())
}

func validatePIN(fl validator.FieldLevel) bool {
	return pinRegex.MatchString(fl.Field().String())
}

// validateAmount accepts decimal strings greater than zero.
func validateAmount(fl validator.FieldLevel) bool {
	d, err := decimal.NewFromString(fl.Field().String())
	return err == nil && d.IsPositive()
}

func validateISO4217(fl validator.FieldLevel) bool {
	_, err := currency.ParseISO(fl.Field().String())
	return err == nil
}
