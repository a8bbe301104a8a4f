package domain

import "fmt"

// Coffee is one entry of the hot coffee list.
type Coffee struct {
	ID          int      `json:"id" validate:"required"`
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Ingredients []string `json:"ingredients,omitempty"`
	Image       string   `json:"image,omitempty"`
}

// SubmissionRequest is the body posted by the submission form.
type SubmissionRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CreatedResource is the answer to a successful submission.
type CreatedResource struct {
	ID int64 `json:"id" validate:"required"`
}

// NewSubmissionRequest builds the POST body from the form as typed.
func NewSubmissionRequest(input FormInput) (any, error) {
	return SubmissionRequest{
		Name:  input.Name,
		Email: input.Email,
	}, nil
}

// ValidateCoffees checks that every entry carries an id, a title and a
// description.
func ValidateCoffees(coffees []Coffee) error {
	for i := range coffees {
		if err := structValidator.Struct(coffees[i]); err != nil {
			return fmt.Errorf("coffee %d: %w", i, err)
		}
	}
	return nil
}

// ValidateCreatedResource checks that the server assigned an id.
func ValidateCreatedResource(created CreatedResource) error {
	return structValidator.Struct(created)
}
