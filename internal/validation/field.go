// Package validation holds the registration field rule registry and the
// dispatcher that runs the rules requested by a route.
package validation

import (
	"errors"
	"fmt"
)

// ErrUnknownField is returned when a field name is not part of the registry.
var ErrUnknownField = errors.New("unknown validation field")

// Field identifies one validated piece of the registration form.
type Field int

const (
	FieldUsername Field = iota + 1
	FieldEmail
	FieldPassword
	FieldDOB
	FieldRole
	FieldFile
	FieldFileSize
)

var fieldNames = map[Field]string{
	FieldUsername: "username",
	FieldEmail:    "email",
	FieldPassword: "password",
	FieldDOB:      "dob",
	FieldRole:     "role",
	FieldFile:     "file",
	FieldFileSize: "fileSize",
}

// AllFields lists every known field in declaration order.
func AllFields() []Field {
	return []Field{FieldUsername, FieldEmail, FieldPassword, FieldDOB, FieldRole, FieldFile, FieldFileSize}
}

// String returns the form key of the field.
func (f Field) String() string {
	if name, ok := fieldNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Field(%d)", int(f))
}

// ParseField maps a form key to its Field.
func ParseField(name string) (Field, error) {
	for f, n := range fieldNames {
		if n == name {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownField, name)
}
