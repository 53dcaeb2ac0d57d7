package validator

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator is a validator that validates the given struct.
type Validator interface {
	// Validate validates the given struct
	Validate(s any) error
}

type DefaultValidator struct {
	v *validator.Validate
}

// NewDefaultValidator creates a new default validator.
// It returns a new DefaultValidator and an error if the validator registration fails.
func NewDefaultValidator() (*DefaultValidator, error) {
	v := validator.New()

	// Register custom validators
	if err := v.RegisterValidation("looseNumber", validateLooseNumber); err != nil {
		return nil, fmt.Errorf("register looseNumber validator: %w", err)
	}

	if err := v.RegisterValidation("looseLt", validateLooseLt); err != nil {
		return nil, fmt.Errorf("register looseLt validator: %w", err)
	}

	return &DefaultValidator{v: v}, nil
}

func (v DefaultValidator) Validate(s any) error {
	return v.v.Struct(s)
}

// IsValidationError checks if the given error is a validation error
func IsValidationError(err error) bool {
	_, ok := err.(validator.ValidationErrors)
	return ok
}

// ParseLooseNumber parses text the way an HTML number input is read back:
// surrounding whitespace is ignored and blank text is zero. NaN is rejected.
func ParseLooseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, true
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !isRangeErr(err) {
		return 0, false
	}
	if math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

func isRangeErr(err error) bool {
	numErr, ok := err.(*strconv.NumError)
	return ok && numErr.Err == strconv.ErrRange
}

func validateLooseNumber(fl validator.FieldLevel) bool {
	_, ok := ParseLooseNumber(fl.Field().String())
	return ok
}

// validateLooseLt passes when the field parses as a loose number strictly
// below the tag parameter.
func validateLooseLt(fl validator.FieldLevel) bool {
	limit, err := strconv.ParseFloat(fl.Param(), 64)
	if err != nil {
		return false
	}

	f, ok := ParseLooseNumber(fl.Field().String())
	if !ok {
		return false
	}
	return f < limit
}
