// Copyright (c) 2025 Mockauth
// Licensed under the MIT License. See LICENSE file in the project root for details.

package authstore

// User describes the identity shown by the UI while someone is logged in.
// Fields are not validated: empty names, malformed e-mails and avatar URLs
// are stored as given.
type User struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar"`
}

// Placeholder identity installed by Login when no user is supplied.
const (
	DefaultUserName   = "John Doe"
	DefaultUserEmail  = "john.doe@example.com"
	DefaultUserAvatar = "https://api.dicebear.com/7.x/avataaars/svg?seed=JohnDoe"
)

// DefaultUser returns a fresh copy of the placeholder user.
func DefaultUser() User {
	return User{
		Name:   DefaultUserName,
		Email:  DefaultUserEmail,
		Avatar: DefaultUserAvatar,
	}
}
