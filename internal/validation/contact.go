package validation

import (
	"github.com/go-playground/validator/v10"
)

const (
	nameMinLen    = 2
	nameMaxLen    = 100
	messageMaxLen = 1000
)

var validate = validator.New()

// ContactSubmission is a contact form that passed validation.
type ContactSubmission struct {
	Name    string
	Email   string
	Message string
}

// Contact validates the raw contact form fields. It returns either the
// validated submission or a map of field name to message. Every field is
// checked independently so the caller gets all violations at once.
func Contact(name, email, message string) (ContactSubmission, map[string]string) {
	errs := map[string]string{}

	switch n := len([]rune(name)); {
	case n < nameMinLen:
		errs["name"] = "Name must be at least 2 characters"
	case n > nameMaxLen:
		errs["name"] = "Name too long"
	}

	if err := validate.Var(email, "required,email"); err != nil {
		errs["email"] = "Invalid email address"
	}

	// Message is optional, only bounded.
	if len([]rune(message)) > messageMaxLen {
		errs["message"] = "Message too long"
	}

	if len(errs) > 0 {
		return ContactSubmission{}, errs
	}

	return ContactSubmission{Name: name, Email: email, Message: message}, nil
}
