// Package validator provides a thin wrapper around the go-playground/validator library,
// enabling declarative struct validation with standardized error formatting.
//
// Besides the stock tags, it registers:
//
//   - solana_address: a base58 public key of 32 to 44 characters.
package validator

import (
	"errors"
	"fmt"
	"regexp"

	gvalidator "github.com/go-playground/validator/v10"
)

// ErrValidationFailed is the first error in the chain returned when validation fails.
var ErrValidationFailed = errors.New("struct validation failed")

// solanaAddressPattern matches the base58 alphabet (no 0, O, I, l) at public-key length.
var solanaAddressPattern = regexp.MustCompile(`^[1-9A-HJ-NP-Za-km-z]{32,44}$`)

var validator *gvalidator.Validate

// Example: "'Address': value 'abc' does not meet the requirements for the 'solana_address' validation"
const errStringFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

func init() {
	validator = gvalidator.New(gvalidator.WithRequiredStructEnabled())

	if err := validator.RegisterValidation("solana_address", func(fl gvalidator.FieldLevel) bool {
		return IsSolanaAddress(fl.Field().String())
	}); err != nil {
		panic(err)
	}
}

// IsSolanaAddress reports whether s looks like a Solana public key.
func IsSolanaAddress(s string) bool {
	return solanaAddressPattern.MatchString(s)
}

func formatError(err error) error {
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := []error{ErrValidationFailed}
	for _, validationErr := range validationErrors {
		errs = append(errs, fmt.Errorf(errStringFormat,
			validationErr.Field(),
			validationErr.Value(),
			validationErr.Tag(),
		))
	}

	return errors.Join(errs...)
}

// Validate checks if the given struct satisfies its validation tags.
//
// It returns nil if all fields pass. Otherwise the returned error wraps
// ErrValidationFailed and one formatted message per failing field.
//
//	if err := validator.Validate(input); errors.Is(err, validator.ErrValidationFailed) {
//	    // reject the input
//	}
func Validate(v any) error {
	if err := validator.Struct(v); err != nil {
		return formatError(err)
	}

	return nil
}
