package model

import "time"

// User is an account. Users created from an anonymous submission's contact details
// have no password hash until they register.
type User struct {
	ID           string    `json:"id" bson:"_id"`
	Email        string    `json:"email" bson:"email"`
	FirstName    string    `json:"firstName" bson:"firstName"`
	LastName     string    `json:"lastName" bson:"lastName"`
	PasswordHash string    `json:"-" bson:"password,omitempty"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
}
