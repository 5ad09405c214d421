package user

import (
	"github.com/go-playground/validator/v10"

	"user-api/pkg/security"
)

// Validation messages returned to clients. Callers may match on them.
const (
	MsgBodyNotObject = "Body must be an object"
	MsgNameRequired  = "Name is required and must be a string"
	MsgNameTooShort  = "Name must be at least 2 characters"
	MsgNameTooLong   = "Name must be less than 50 characters"
	MsgEmailRequired = "Email is required and must be a string"
	MsgEmailInvalid  = "Email format is invalid"
)

const emailValidationTag = "simple_email"

// validate is safe for concurrent use once validations are registered.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation(emailValidationTag, func(fl validator.FieldLevel) bool {
		return security.IsValidEmail(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// ValidationResult is the outcome of validating a CreateUserRequest.
type ValidationResult struct {
	Valid  bool
	Errors []string
}

// ValidateCreateUser checks a create request. Errors are collected for both
// fields; within a field only the first failing check is reported.
// Lengths are measured in Unicode code points after trimming.
func ValidateCreateUser(in CreateUserRequest) ValidationResult {
	var errs []string

	if msg := validateName(in.Name); msg != "" {
		errs = append(errs, msg)
	}
	if msg := validateEmail(in.Email); msg != "" {
		errs = append(errs, msg)
	}

	return ValidationResult{Valid: len(errs) == 0, Errors: errs}
}

func validateName(f Field) string {
	if !f.Present() {
		return MsgNameRequired
	}

	name := security.TrimSpace(f.Value)
	if validate.Var(name, "min=2") != nil {
		return MsgNameTooShort
	}
	if validate.Var(name, "max=50") != nil {
		return MsgNameTooLong
	}
	return ""
}

// validateEmail checks the address as submitted; normalization happens later.
func validateEmail(f Field) string {
	if !f.Present() {
		return MsgEmailRequired
	}
	if validate.Var(f.Value, emailValidationTag) != nil {
		return MsgEmailInvalid
	}
	return ""
}
