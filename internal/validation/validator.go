package validation

import (
	"regexp"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Custom validator tags registered on the shared instance.
const (
	TagPassword     = "password"
	TagCalendarDate = "calendardate"
)

// PasswordSpecials are the special characters a password must draw from.
const PasswordSpecials = "@$!%*?&"

// DateLayouts are the accepted date of birth layouts. Month and day may have
// one or two digits.
var DateLayouts = []string{"2006-1-2", "2006/1/2"}

var passwordCharset = regexp.MustCompile(`^[A-Za-z\d@$!%*?&]{8,}$`)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// getValidator returns the shared validator with the custom tags registered.
func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// Registration only fails for malformed tag names.
		_ = validate.RegisterValidation(TagPassword, func(fl validator.FieldLevel) bool {
			return IsStrongPassword(fl.Field().String())
		})
		_ = validate.RegisterValidation(TagCalendarDate, func(fl validator.FieldLevel) bool {
			_, err := ParseDate(fl.Field().String())
			return err == nil
		})
	})
	return validate
}

// IsStrongPassword reports whether s has at least one letter, one digit and one
// of PasswordSpecials, uses no other characters, and is at least 8 long.
func IsStrongPassword(s string) bool {
	if !passwordCharset.MatchString(s) {
		return false
	}
	var letter, digit bool
	for _, r := range s {
		switch {
		case r <= unicode.MaxASCII && unicode.IsLetter(r):
			letter = true
		case r >= '0' && r <= '9':
			digit = true
		}
	}
	return letter && digit && strings.ContainsAny(s, PasswordSpecials)
}

// ParseDate parses a calendar date in one of DateLayouts.
func ParseDate(s string) (time.Time, error) {
	var firstErr error
	for _, layout := range DateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, firstErr
}

// ElapsedYears returns the number of full years between birth and today.
func ElapsedYears(birth, today time.Time) int {
	age := today.Year() - birth.Year()
	if today.Month() < birth.Month() || (today.Month() == birth.Month() && today.Day() < birth.Day()) {
		age--
	}
	return age
}
