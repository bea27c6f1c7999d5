// Package client submits registrations to the registration service.
package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/afsarahmad786/basicValidation/internal/utils"
	"github.com/afsarahmad786/basicValidation/internal/validation"
	"go.uber.org/zap"
)

const (
	RegisterPath  = "/register"
	FileFieldName = "file"
)

// Registrar submits registration forms.
type Registrar interface {
	Register(ctx context.Context, form RegistrationForm) (*RegisterResponse, error)
}

// RegistrationForm is the multipart form sent to POST /register. Empty values
// are omitted so the server sees them as missing.
type RegistrationForm struct {
	Username string
	Email    string
	Password string
	DOB      string
	Role     string
	FileSize string
	FileType string
	// Extra carries additional form fields verbatim.
	Extra map[string]string

	FileName        string
	FileContentType string
	File            io.Reader
}

func (f RegistrationForm) values() map[string]string {
	values := make(map[string]string, 7+len(f.Extra))
	for k, v := range f.Extra {
		values[k] = v
	}
	for k, v := range map[string]string{
		"username": f.Username,
		"email":    f.Email,
		"password": f.Password,
		"dob":      f.DOB,
		"role":     f.Role,
		"fileSize": f.FileSize,
		"fileType": f.FileType,
	} {
		if v != "" {
			values[k] = v
		}
	}
	return values
}

// RegisterResponse is the body of an accepted registration.
type RegisterResponse struct {
	Success bool
	Data    map[string]any
	Message string
	Errors  []validation.FieldError
}

// ValidationFailedError is returned when the server rejects the form with field errors.
type ValidationFailedError struct {
	Errors validation.Errors
}

func (e *ValidationFailedError) Error() string {
	return "registration rejected: " + e.Errors.Error()
}

type validationFailedBody struct {
	Errors validation.Errors
}

// RegistrationClient talks to the registration service over HTTP.
type RegistrationClient struct {
	http *HTTPClient
}

// NewRegistrationClient creates a client for the service at baseURL.
func NewRegistrationClient(baseURL string, timeout time.Duration) *RegistrationClient {
	return &RegistrationClient{http: NewHTTPClient(baseURL, timeout)}
}

// Close releases the underlying HTTP client.
func (rc *RegistrationClient) Close() error {
	return rc.http.Close()
}

// Register posts form. A 400 with field errors yields *ValidationFailedError;
// any other non-200 status yields *HTTPError.
func (rc *RegistrationClient) Register(ctx context.Context, form RegistrationForm) (*RegisterResponse, error) {
	var result RegisterResponse
	var failure validationFailedBody

	request := rc.http.client.R().
		SetContext(ctx).
		SetMultipartFormData(form.values()).
		SetResult(&result).
		SetError(&failure)
	if form.File != nil {
		request.SetMultipartField(FileFieldName, form.FileName, form.FileContentType, form.File)
	}

	utils.WithComponent("client").Debug("Submitting registration",
		zap.String(utils.FieldUsername, form.Username),
		zap.String(utils.FieldFileName, form.FileName))

	response, err := request.Post(RegisterPath)
	if err != nil {
		return nil, fmt.Errorf("register request: %w", err)
	}
	logResponse(response, http.MethodPost, RegisterPath)

	switch {
	case response.StatusCode() == http.StatusOK:
		return &result, nil
	case response.StatusCode() == http.StatusBadRequest && len(failure.Errors) > 0:
		return nil, &ValidationFailedError{Errors: failure.Errors}
	default:
		return nil, &HTTPError{StatusCode: response.StatusCode(), Body: response.String()}
	}
}
