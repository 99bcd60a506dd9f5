package errors

import "fmt"

var (
	ErrDuplicateOrInvalidName = fmt.Errorf("invalid user name or user already exists")
	ErrUserNotFound           = fmt.Errorf("user not found")
	ErrAlreadySubscribed      = fmt.Errorf("user already subscribed")
	ErrNotSubscribed          = fmt.Errorf("user is not subscribed")
	ErrEmptyMessage           = fmt.Errorf("message cannot be empty")
	ErrInvalidReplacement     = fmt.Errorf("replacement must be a single character")
)
