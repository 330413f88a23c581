package domain

import "time"

// RawCredentials is the request body as it arrives at the boundary. Fields
// are untyped on purpose: the normalizer is responsible for rejecting wrong
// types, and a decoded JSON body may legitimately contain anything.
type RawCredentials struct {
	Email    any `json:"email"`
	Username any `json:"username"`
	Password any `json:"password"`
}

// Credentials is the validated, typed form of RawCredentials. Only the
// normalizer produces it; every field satisfied its rule set.
// Username is empty for login, where it is not part of the contract.
type Credentials struct {
	Email    string
	Username string
	Password string
}

type UserId = int64

type User struct {
	Id        UserId    `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	PassHash  string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// Public returns the user projection safe to hand across the service
// boundary. The password hash is stripped on every external-facing response.
func (u User) Public() User {
	u.PassHash = ""
	return u
}
