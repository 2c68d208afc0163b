// Package models defines server-side data models persisted in the database.
package models

// User is a registered account. Email is unique across users.
type User struct {
	ID       int
	Email    string
	Name     string
	Password string
}
