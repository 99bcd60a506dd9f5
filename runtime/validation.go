package runtime

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type AddUserRequest struct {
	Name string `validate:"required"`
}

type PostMessageRequest struct {
	Text string `validate:"required"`
}

// ValidateAddUser rejects names that are blank once trimmed.
func ValidateAddUser(name string) error {
	return validate.Struct(AddUserRequest{Name: strings.TrimSpace(name)})
}

// ValidatePostMessage rejects text that is blank once trimmed.
func ValidatePostMessage(text string) error {
	return validate.Struct(PostMessageRequest{Text: strings.TrimSpace(text)})
}
