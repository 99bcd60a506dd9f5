// Package notification contains core concepts of the notification system.
// This file defines User entities and their inbox.
// No runtime, storage, or UI logic should be added here.
package notification

// User is a registered member of the channel.
// Inbox keeps delivery order and is never reordered or deduplicated.
type User struct {
	Name       string
	Subscribed bool
	Inbox      []string
}

func NewUser(name string) *User {
	return &User{Name: name}
}

// Deliver appends one message to the inbox.
func (u *User) Deliver(content string) {
	u.Inbox = append(u.Inbox, content)
}

// UserView is the read-only projection handed to presentation layers.
type UserView struct {
	Name       string
	Subscribed bool
}

func (u *User) View() UserView {
	return UserView{Name: u.Name, Subscribed: u.Subscribed}
}
