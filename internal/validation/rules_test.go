package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedToday = time.Date(2026, time.October, 17, 12, 0, 0, 0, time.UTC)

func newTestRegistry() *Registry {
	return NewRegistry(WithClock(func() time.Time { return fixedToday }))
}

func validateField(t *testing.T, field string, in *Input) Errors {
	t.Helper()
	d, err := NewDispatcher(newTestRegistry(), []string{field})
	require.NoError(t, err)
	return d.Validate(in)
}

func values(kv ...string) *Input {
	in := &Input{Values: map[string]string{}}
	for i := 0; i+1 < len(kv); i += 2 {
		in.Values[kv[i]] = kv[i+1]
	}
	return in
}

func TestUsernameRules(t *testing.T) {
	errs := validateField(t, "username", values("username", "abcd"))
	assert.Equal(t, []string{"Username must be at least 5 characters long"}, errs.Messages("username"))

	assert.Empty(t, validateField(t, "username", values("username", "abcde")))

	errs = validateField(t, "username", values())
	assert.Equal(t, []string{
		"Username is required",
		"Username must be at least 5 characters long",
	}, errs.Messages("username"))
}

func TestEmailRules(t *testing.T) {
	assert.Empty(t, validateField(t, "email", values("email", "user@example.com")))

	errs := validateField(t, "email", values("email", "not-an-email"))
	assert.Equal(t, []string{"Invalid email address"}, errs.Messages("email"))

	errs = validateField(t, "email", values())
	assert.Equal(t, []string{"Email is required", "Invalid email address"}, errs.Messages("email"))
}

func TestPasswordRules(t *testing.T) {
	const weak = "Password must contain at least one letter, one number, and one special character"

	tests := []struct {
		name     string
		password string
		valid    bool
	}{
		{"all classes", "abc123@x", true},
		{"long mixed", "Sup3r$ecretPassw0rd", true},
		{"missing letter", "1234567@", false},
		{"missing digit", "abcdefg@", false},
		{"missing special", "abcdefg1", false},
		{"too short", "ab1@", false},
		{"disallowed character", "abc 123@x", false},
		{"non ascii letter", "ébc123@xy", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := validateField(t, "password", values("password", tt.password))
			if tt.valid {
				assert.Empty(t, errs)
			} else {
				assert.Equal(t, []string{weak}, errs.Messages("password"))
			}
		})
	}

	errs := validateField(t, "password", values())
	assert.Equal(t, []string{"Password is required", weak}, errs.Messages("password"))
}

func TestDOBRules(t *testing.T) {
	const tooYoung = "Must be at least 18 years old"

	tests := []struct {
		name     string
		dob      string
		messages []string
	}{
		{"exactly eighteen", "2008-10-17", nil},
		{"one day short", "2008-10-18", []string{tooYoung}},
		{"later month", "2008-11-01", []string{tooYoung}},
		{"well over", "1990-01-01", nil},
		{"slash layout", "1990/01/01", nil},
		{"single digit parts", "1990-1-1", nil},
		{"not a date", "yesterday", []string{"Invalid Date of Birth format"}},
		{"impossible day", "1990-02-30", []string{"Invalid Date of Birth format"}},
		{"missing", "", []string{"Date of Birth is required", "Invalid Date of Birth format"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := validateField(t, "dob", values("dob", tt.dob))
			assert.Equal(t, tt.messages, errs.Messages("dob"))
		})
	}
}

func TestRoleRules(t *testing.T) {
	assert.Empty(t, validateField(t, "role", values("role", "admin")))
	assert.Empty(t, validateField(t, "role", values("role", "user")))

	errs := validateField(t, "role", values("role", "root"))
	assert.Equal(t, []string{"Invalid role"}, errs.Messages("role"))

	errs = validateField(t, "role", values())
	assert.Equal(t, []string{"Role is required", "Invalid role"}, errs.Messages("role"))
}

func TestFileRules(t *testing.T) {
	withFile := func(name string) *Input {
		return &Input{File: &UploadedFile{Filename: name, Size: 3, Content: []byte("abc")}}
	}

	assert.Empty(t, validateField(t, "file", withFile("photo.PNG")))
	assert.Empty(t, validateField(t, "file", withFile("scan.final.pdf")))
	assert.Empty(t, validateField(t, "file", withFile("img.jpeg")))

	errs := validateField(t, "file", withFile("document.exe"))
	assert.Equal(t, []string{"Invalid file type"}, errs.Messages("file"))

	// A name without a dot is its own extension.
	assert.Empty(t, validateField(t, "file", withFile("png")))
	errs = validateField(t, "file", withFile("README"))
	assert.Equal(t, []string{"Invalid file type"}, errs.Messages("file"))

	errs = validateField(t, "file", values())
	assert.Equal(t, []string{"File is required"}, errs.Messages("file"))
}

func TestFileSizeRules(t *testing.T) {
	assert.Empty(t, validateField(t, "fileSize", values("fileSize", "5")))
	assert.Empty(t, validateField(t, "fileSize", values("fileSize", "10")))

	errs := validateField(t, "fileSize", values("fileSize", "11"))
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, "10 MB")

	errs = validateField(t, "fileSize", values("fileSize", "big"))
	assert.Equal(t, []string{"File size must be a number"}, errs.Messages("fileSize"))

	errs = validateField(t, "fileSize", values())
	assert.Equal(t, []string{"File size is required", "File size must be a number"}, errs.Messages("fileSize"))
}

func TestRulesFor(t *testing.T) {
	reg := newTestRegistry()

	rules := reg.RulesFor("dob")
	require.Len(t, rules, 3)
	assert.Equal(t, "required", rules[0].Name)
	assert.Equal(t, TagCalendarDate, rules[1].Name)
	assert.Equal(t, "minage", rules[2].Name)

	assert.Empty(t, reg.RulesFor("nickname"))
	assert.NotNil(t, reg.RulesFor("nickname"))
}

func TestRulesFor_ReturnsCopy(t *testing.T) {
	reg := newTestRegistry()
	rules := reg.RulesFor("username")
	rules[0].Message = "changed"

	assert.Equal(t, "Username is required", reg.RulesFor("username")[0].Message)
}

func TestResolve(t *testing.T) {
	reg := newTestRegistry()

	fields, err := reg.Resolve([]string{"email", "username"})
	require.NoError(t, err)
	assert.Equal(t, []Field{FieldEmail, FieldUsername}, fields)

	_, err = reg.Resolve([]string{"username", "nickname"})
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestElapsedYears(t *testing.T) {
	birth := time.Date(2000, time.February, 29, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 25, ElapsedYears(birth, time.Date(2026, time.February, 28, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 26, ElapsedYears(birth, time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 0, ElapsedYears(birth, birth))
}

func TestUploadedFileExtension(t *testing.T) {
	assert.Equal(t, "png", (&UploadedFile{Filename: "photo.PNG"}).Extension())
	assert.Equal(t, "gz", (&UploadedFile{Filename: "a.tar.gz"}).Extension())
	assert.Equal(t, "readme", (&UploadedFile{Filename: "README"}).Extension())
	assert.Equal(t, "", (&UploadedFile{Filename: "trailing."}).Extension())
}
