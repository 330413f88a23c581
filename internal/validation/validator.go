// Package validation implements the credential validation pipeline: a
// generic single-field rule engine and the per-operation normalizers built
// on top of it.
package validation

import (
	"fmt"
	"regexp"
	"unicode/utf8"
)

// ErrorCode is the closed vocabulary of field validation failures.
type ErrorCode int

const (
	NoValueProvided ErrorCode = iota
	WrongType
	Empty
	TooLong
	TooShort
	WrongFormat
)

// FieldError is a single validation failure tagged with the field it
// concerns. Limit carries the violated length bound for TooLong/TooShort.
type FieldError struct {
	Field string
	Code  ErrorCode
	Limit int
}

func (e *FieldError) Error() string {
	switch e.Code {
	case NoValueProvided:
		return fmt.Sprintf("No %s provided", e.Field)
	case WrongType:
		return fmt.Sprintf("Wrong %s type", e.Field)
	case Empty:
		return fmt.Sprintf("Empty %s", e.Field)
	case TooLong:
		return fmt.Sprintf("Maximum %s length is %d characters", e.Field, e.Limit)
	case TooShort:
		return fmt.Sprintf("Minimum %s length is %d characters", e.Field, e.Limit)
	case WrongFormat:
		return fmt.Sprintf("Wrong %s format", e.Field)
	}
	return fmt.Sprintf("Invalid %s", e.Field)
}

// Rules declares the constraints for one field. Zero values disable the
// corresponding check, matching the optional rule semantics of the contract.
type Rules struct {
	Name      string
	NotEmpty  bool
	MinLength int
	MaxLength int
	RegExp    *regexp.Regexp
}

// Validate checks value against rules and returns nil or exactly one
// FieldError. Checks run in fixed precedence order so only the most
// fundamental problem is reported: absent, wrong type, empty, too long,
// too short, wrong format. Pure function, safe for concurrent use.
//
// All credential fields are string-typed; a non-string value (JSON numbers
// decode as float64, objects as maps) is a type error regardless of any
// other rule it would also violate.
func Validate(value any, rules Rules) *FieldError {
	if value == nil {
		return &FieldError{Field: rules.Name, Code: NoValueProvided}
	}
	s, ok := value.(string)
	if !ok {
		return &FieldError{Field: rules.Name, Code: WrongType}
	}
	if rules.NotEmpty && s == "" {
		return &FieldError{Field: rules.Name, Code: Empty}
	}
	length := utf8.RuneCountInString(s)
	if rules.MaxLength > 0 && length > rules.MaxLength {
		return &FieldError{Field: rules.Name, Code: TooLong, Limit: rules.MaxLength}
	}
	if rules.MinLength > 0 && length < rules.MinLength {
		return &FieldError{Field: rules.Name, Code: TooShort, Limit: rules.MinLength}
	}
	if rules.RegExp != nil && !rules.RegExp.MatchString(s) {
		return &FieldError{Field: rules.Name, Code: WrongFormat}
	}
	return nil
}
