package validation

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"
)

const (
	// MinUsernameLength is the shortest accepted username, in characters.
	MinUsernameLength = 5
	// MinAge is the youngest accepted age, in full years.
	MinAge = 18
	// MaxFileSizeMB is the largest accepted declared file size. The value is
	// compared as submitted, without unit conversion.
	MaxFileSizeMB = 10
)

// AllowedFileTypes are the accepted upload extensions, lowercased.
var AllowedFileTypes = []string{"png", "jpg", "jpeg", "pdf"}

// AllowedRoles are the accepted role values.
var AllowedRoles = []string{"admin", "user"}

// Check inspects the input and returns an error when the rule fails.
type Check func(in *Input) error

// Rule is one named check for one field. When Message is empty the check's own
// error text is reported.
type Rule struct {
	Field   Field
	Name    string
	Message string
	Check   Check
}

// failure converts a check error into the reported FieldError.
func (r Rule) failure(err error) FieldError {
	msg := r.Message
	if msg == "" {
		msg = err.Error()
	}
	return FieldError{Field: r.Field.String(), Message: msg}
}

// Registry maps each field to its ordered rules. It is read-only once built.
type Registry struct {
	rules map[Field][]Rule
	now   func() time.Time
}

// RegistryOption customizes a Registry.
type RegistryOption func(*Registry)

// WithClock sets the source of "today" for the age rule.
func WithClock(now func() time.Time) RegistryOption {
	return func(r *Registry) {
		r.now = now
	}
}

// NewRegistry builds the registration rule table.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{now: time.Now}
	for _, opt := range opts {
		opt(r)
	}

	r.rules = map[Field][]Rule{
		FieldUsername: {
			tagRule(FieldUsername, "required", "Username is required"),
			tagRule(FieldUsername, fmt.Sprintf("min=%d", MinUsernameLength),
				fmt.Sprintf("Username must be at least %d characters long", MinUsernameLength)),
		},
		FieldEmail: {
			tagRule(FieldEmail, "required", "Email is required"),
			tagRule(FieldEmail, "email", "Invalid email address"),
		},
		FieldPassword: {
			tagRule(FieldPassword, "required", "Password is required"),
			tagRule(FieldPassword, TagPassword,
				"Password must contain at least one letter, one number, and one special character"),
		},
		FieldDOB: {
			tagRule(FieldDOB, "required", "Date of Birth is required"),
			tagRule(FieldDOB, TagCalendarDate, "Invalid Date of Birth format"),
			{Field: FieldDOB, Name: "minage", Check: r.checkAge},
		},
		FieldRole: {
			tagRule(FieldRole, "required", "Role is required"),
			tagRule(FieldRole, "oneof="+strings.Join(AllowedRoles, " "), "Invalid role"),
		},
		FieldFile: {
			{Field: FieldFile, Name: "filetype", Check: checkFile},
		},
		FieldFileSize: {
			tagRule(FieldFileSize, "required", "File size is required"),
			tagRule(FieldFileSize, "numeric", "File size must be a number"),
			{Field: FieldFileSize, Name: "maxsize", Check: checkFileSize},
		},
	}
	return r
}

// Rules returns a copy of the ordered rules for f.
func (r *Registry) Rules(f Field) []Rule {
	return slices.Clone(r.rules[f])
}

// RulesFor returns the ordered rules for a form key. Unknown keys yield no
// rules rather than an error.
func (r *Registry) RulesFor(name string) []Rule {
	f, err := ParseField(name)
	if err != nil {
		return []Rule{}
	}
	return r.Rules(f)
}

// Resolve maps form keys to fields, failing on the first unknown key.
func (r *Registry) Resolve(names []string) ([]Field, error) {
	fields := make([]Field, 0, len(names))
	for _, name := range names {
		f, err := ParseField(name)
		if err != nil {
			return nil, err
		}
		if _, ok := r.rules[f]; !ok {
			return nil, fmt.Errorf("%w: %q has no rules", ErrUnknownField, name)
		}
		fields = append(fields, f)
	}
	return fields, nil
}

// tagRule builds a rule backed by a validator tag applied to the field value.
func tagRule(field Field, tag, message string) Rule {
	return Rule{
		Field:   field,
		Name:    tag,
		Message: message,
		Check: func(in *Input) error {
			return getValidator().Var(in.Value(field.String()), tag)
		},
	}
}

// checkAge fails when the date of birth is less than MinAge years before today.
// Unparseable dates are left to the format rule.
func (r *Registry) checkAge(in *Input) error {
	birth, err := ParseDate(in.Value(FieldDOB.String()))
	if err != nil {
		return nil
	}
	if ElapsedYears(birth, r.now()) < MinAge {
		return fmt.Errorf("Must be at least %d years old", MinAge)
	}
	return nil
}

func checkFile(in *Input) error {
	if in.File == nil {
		return errors.New("File is required")
	}
	if !slices.Contains(AllowedFileTypes, in.File.Extension()) {
		return errors.New("Invalid file type")
	}
	return nil
}

// checkFileSize fails when the declared size exceeds MaxFileSizeMB. Non-numeric
// values are left to the numeric rule.
func checkFileSize(in *Input) error {
	size, err := strconv.ParseFloat(in.Value(FieldFileSize.String()), 64)
	if err != nil {
		return nil
	}
	if size > MaxFileSizeMB {
		return fmt.Errorf("File size should be less than %d MB", MaxFileSizeMB)
	}
	return nil
}
