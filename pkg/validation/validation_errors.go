package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to user-facing labels
var FieldLabels = map[string]string{
	"Username":    "Username",
	"Password":    "Password",
	"Name":        "Name",
	"Level":       "Level",
	"Category":    "Category",
	"Title":       "Title",
	"Institution": "Institution",
	"Period":      "Period",
	"Role":        "Role",
	"Company":     "Company",
	"Description": "Description",
	"Platform":    "Platform",
	"Date":        "Date",
	"URL":         "URL",
}

// FormatError turns a validator error into a readable, client-safe message.
// Non-validation errors pass through unchanged.
func FormatError(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		label := FieldLabels[fe.Field()]
		if label == "" {
			label = fe.Field()
		}
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", label))
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s characters", label, fe.Param()))
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s must be at most %s characters", label, fe.Param()))
		case "url":
			msgs = append(msgs, fmt.Sprintf("%s must be a valid URL", label))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid", label))
		}
	}
	return strings.Join(msgs, "; ")
}
