package validation

import (
	"fmt"
	"strings"
)

// FieldError is a single failed rule.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Errors lists failed rules in rule execution order.
type Errors []FieldError

func (e Errors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fe.Error()
	}
	return strings.Join(msgs, "; ")
}

// Has reports whether at least one error targets field.
func (e Errors) Has(field string) bool {
	for _, fe := range e {
		if fe.Field == field {
			return true
		}
	}
	return false
}

// Messages returns the messages reported for field, in order.
func (e Errors) Messages(field string) []string {
	var out []string
	for _, fe := range e {
		if fe.Field == field {
			out = append(out, fe.Message)
		}
	}
	return out
}

// Fields returns the distinct failing field names in first-seen order.
func (e Errors) Fields() []string {
	seen := make(map[string]struct{}, len(e))
	out := make([]string, 0, len(e))
	for _, fe := range e {
		if _, ok := seen[fe.Field]; ok {
			continue
		}
		seen[fe.Field] = struct{}{}
		out = append(out, fe.Field)
	}
	return out
}
