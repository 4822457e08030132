package contact

import (
	"errors"

	"github.com/gavdev/portfolio/pkg/validator"
)

// Submission is one contact form submission as posted by the site.
// Unknown JSON fields are ignored.
type Submission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Validate reports every empty field. Only the empty string counts as
// missing; whitespace and the email format are not checked.
func (s Submission) Validate() error {
	if err := validator.Apply(
		validator.Present("name", s.Name),
		validator.Present("email", s.Email),
		validator.Present("message", s.Message),
	); err != nil {
		return errors.Join(ErrMissingFields, err)
	}
	return nil
}
