// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User is a registered blog account. It is the identity every mutating
// request is resolved to.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Username is unique across all users.
	Username string `json:"username"`

	// PasswordHash is the bcrypt hash of the user's password.
	// It never leaves the server.
	PasswordHash string `json:"-"`

	// Token is the current opaque bearer token. Empty until first issuance.
	Token string `json:"-"`

	// CreatedAt is the registration timestamp.
	CreatedAt time.Time `json:"created_at"`
}

// HasToken reports whether a bearer token has ever been issued for the user.
func (u User) HasToken() bool {
	return u.Token != ""
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Credentials is the register/login payload.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
