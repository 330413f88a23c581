package validation

import (
	"regexp"

	"github.com/authgate-dev/authgate/internal/domain"
)

var emailRegExp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

var (
	emailRules    = Rules{Name: "email", NotEmpty: true, MaxLength: 64, RegExp: emailRegExp}
	usernameRules = Rules{Name: "username", NotEmpty: true, MaxLength: 64}
	passwordRules = Rules{Name: "password", NotEmpty: true, MaxLength: 64}
)

// NormalizeLogin validates the raw login body and assembles the typed
// credentials. Every field is checked independently and all failures are
// returned, in field-declaration order: email, password. A non-empty error
// list means the credentials are unusable; no partially-valid data escapes.
func NormalizeLogin(raw domain.RawCredentials) (domain.Credentials, []FieldError) {
	var creds domain.Credentials
	var errs []FieldError

	if err := Validate(raw.Email, emailRules); err != nil {
		errs = append(errs, *err)
	} else {
		creds.Email = raw.Email.(string)
	}
	if err := Validate(raw.Password, passwordRules); err != nil {
		errs = append(errs, *err)
	} else {
		creds.Password = raw.Password.(string)
	}

	if len(errs) > 0 {
		return domain.Credentials{}, errs
	}
	return creds, nil
}

// NormalizeRegister is the register counterpart of NormalizeLogin. Field
// order is fixed: email, username, password.
func NormalizeRegister(raw domain.RawCredentials) (domain.Credentials, []FieldError) {
	var creds domain.Credentials
	var errs []FieldError

	if err := Validate(raw.Email, emailRules); err != nil {
		errs = append(errs, *err)
	} else {
		creds.Email = raw.Email.(string)
	}
	if err := Validate(raw.Username, usernameRules); err != nil {
		errs = append(errs, *err)
	} else {
		creds.Username = raw.Username.(string)
	}
	if err := Validate(raw.Password, passwordRules); err != nil {
		errs = append(errs, *err)
	} else {
		creds.Password = raw.Password.(string)
	}

	if len(errs) > 0 {
		return domain.Credentials{}, errs
	}
	return creds, nil
}

// Messages flattens field errors into their wire form, preserving order.
func Messages(errs []FieldError) []string {
	msgs := make([]string, 0, len(errs))
	for i := range errs {
		msgs = append(msgs, errs[i].Error())
	}
	return msgs
}
