// Package user holds the account profile entity.
package user

import "time"

// Profile is an account record. The email is the identity: exactly one
// profile may exist per email, enforced by a conditional create in the store.
// Profiles are never updated or deleted once created.
type Profile struct {
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
