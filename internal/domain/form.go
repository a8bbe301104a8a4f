package domain

import (
	"strings"

	"github.com/go-playground/validator"
)

// FormInput is what the user typed into the submission form. It is passed
// by value so the UI keeps sole ownership of its copy.
type FormInput struct {
	Name  string `validate:"required"`
	Email string `validate:"required"`
}

// ValidationResult is either Valid or Invalid.
type ValidationResult interface {
	IsValid() bool
	validationResult()
}

type Valid struct{}

type Invalid struct {
	Message string
	Err     error
}

func (Valid) IsValid() bool   { return true }
func (Invalid) IsValid() bool { return false }

func (Valid) validationResult()   {}
func (Invalid) validationResult() {}

var structValidator = validator.New()

// Validate checks that both name and email are present once surrounding
// whitespace is removed. It never touches the network.
func Validate(input FormInput) ValidationResult {
	trimmed := FormInput{
		Name:  strings.TrimSpace(input.Name),
		Email: strings.TrimSpace(input.Email),
	}

	if err := structValidator.Struct(trimmed); err != nil {
		return Invalid{Message: MissingFieldsMessage, Err: err}
	}
	return Valid{}
}

// ValidationError converts an Invalid result into a DomainError, nil otherwise.
func ValidationError(result ValidationResult) error {
	invalid, ok := result.(Invalid)
	if !ok {
		return nil
	}
	return NewValidationError(invalid.Message, invalid.Err)
}
