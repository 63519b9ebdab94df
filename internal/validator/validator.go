package validator

import (
	"fmt"
	"reflect"
	"regexp"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Validation message formats. Tests assert against these, so changes here
// ripple into expected responses.
const (
	ErrRequired  = "is required"
	ErrEmail     = "must be a valid email address"
	ErrAlphanum  = "must contain only letters and numbers"
	ErrUrl       = "must be a valid URL"
	ErrPhone     = "must be a valid phone number in international format"
	ErrMinLength = "must be at least %s characters long"
	ErrMaxLength = "must be at most %s characters long"
	ErrMinValue  = "must be at least %s"
	ErrMaxValue  = "must be at most %s"
	ErrOneOf     = "must be one of: %s"
	ErrPassword  = "must be 8 to 25 characters long and include at least one uppercase letter, " +
		"one lowercase letter, one number, and one special character (!@#$%^&*)"
	ErrInvalid = "is invalid"
)

var hasSpecialRgx = regexp.MustCompile(`[!@#$%^&*]`)

func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterValidation("password", validatePassword)

	return v
}

func validatePassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()

	if len(password) < 8 || len(password) > 25 {
		return false
	}

	containsUpper, containsLower, containsDigit, containsSpecial := false, false, false, false

	for _, ch := range password {
		switch {
		case unicode.IsUpper(ch):
			containsUpper = true
		case unicode.IsLower(ch):
			containsLower = true
		case unicode.IsDigit(ch):
			containsDigit = true
		case hasSpecialRgx.MatchString(string(ch)):
			containsSpecial = true
		}
	}

	return containsUpper && containsLower && containsDigit && containsSpecial
}

// ValidationMessage converts validator errors into readable messages.
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return ErrRequired
	case "email":
		return ErrEmail
	case "alphanum":
		return ErrAlphanum
	case "url":
		return ErrUrl
	case "e164":
		return ErrPhone
	case "min":
		if isStringKind(err) {
			return fmt.Sprintf(ErrMinLength, err.Param())
		}
		return fmt.Sprintf(ErrMinValue, err.Param())
	case "max":
		if isStringKind(err) {
			return fmt.Sprintf(ErrMaxLength, err.Param())
		}
		return fmt.Sprintf(ErrMaxValue, err.Param())
	case "oneof":
		return fmt.Sprintf(ErrOneOf, err.Param())
	case "password":
		return ErrPassword
	default:
		return ErrInvalid
	}
}

func isStringKind(err validator.FieldError) bool {
	return err.Kind() == reflect.String
}
