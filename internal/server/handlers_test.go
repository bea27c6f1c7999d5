package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type errorsBody struct {
	Errors []struct {
		Field   string
		Message string
	}
}

func (b errorsBody) has(field string) bool {
	for _, e := range b.Errors {
		if e.Field == field {
			return true
		}
	}
	return false
}

func TestHealth(t *testing.T) {
	r := setupRouter(t)

	req, _ := http.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "healthy", resp["status"])
}

func TestRegister_Success(t *testing.T) {
	r := setupRouter(t)

	req := newMultipartRequest(t, "/register", validFields(), &upload{name: "photo.jpg", content: []byte("jpeg-bytes")})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"data":{},"message":"User registered successfully","errors":[]}`, w.Body.String())
}

func TestRegister_MissingPassword(t *testing.T) {
	r := setupRouter(t)

	fields := validFields()
	delete(fields, "password")
	req := newMultipartRequest(t, "/register", fields, &upload{name: "photo.jpg", content: []byte("jpeg")})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	assert.Len(t, raw, 1, "failure body only carries errors")

	var body errorsBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.has("password"))
	assert.False(t, body.has("username"))
}

func TestRegister_ReportsEveryFailure(t *testing.T) {
	r := setupRouter(t)

	fields := map[string]string{
		"username": "abc",
		"email":    "not-an-email",
		"password": "password",
		"dob":      "2020-01-01",
	}
	req := newMultipartRequest(t, "/register", fields, &upload{name: "document.exe", content: []byte("MZ")})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body errorsBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	got := make([]string, len(body.Errors))
	for i, e := range body.Errors {
		got[i] = e.Field + ": " + e.Message
	}
	assert.Equal(t, []string{
		"username: Username must be at least 5 characters long",
		"email: Invalid email address",
		"password: Password must contain at least one letter, one number, and one special character",
		"dob: Must be at least 18 years old",
		"file: Invalid file type",
	}, got)
}

func TestRegister_MissingFile(t *testing.T) {
	r := setupRouter(t)

	req := newMultipartRequest(t, "/register", validFields(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"errors":[{"field":"file","message":"File is required"}]}`, w.Body.String())
}

func TestRegister_RoleOnlyWhenRequested(t *testing.T) {
	fields := validFields()
	fields["role"] = "root"
	file := &upload{name: "photo.png", content: []byte("png")}

	t.Run("Default fields ignore role", func(t *testing.T) {
		r := setupRouter(t)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, newMultipartRequest(t, "/register", fields, file))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Role requested", func(t *testing.T) {
		r := setupRouter(t, "username", "email", "password", "dob", "role", "file")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, newMultipartRequest(t, "/register", fields, file))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"errors":[{"field":"role","message":"Invalid role"}]}`, w.Body.String())
	})
}

func TestRegister_MalformedBody(t *testing.T) {
	r := setupRouter(t)

	t.Run("JSON body", func(t *testing.T) {
		req, _ := http.NewRequest("POST", "/register", strings.NewReader(`{"username":"jdoe42"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, false, resp["success"])
		assert.Equal(t, ErrorCodeInvalidRequestBody, resp["error"])
	})

	t.Run("Truncated multipart", func(t *testing.T) {
		req, _ := http.NewRequest("POST", "/register", strings.NewReader("--xyz\r\nContent-Disposition: form-data; name=\"username\"\r\n\r\njdoe"))
		req.Header.Set("Content-Type", "multipart/form-data; boundary=xyz")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestRegister_MetricsExposed(t *testing.T) {
	r := setupRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, newMultipartRequest(t, "/register", validFields(), nil))
	require.Equal(t, http.StatusBadRequest, w.Code)

	req, _ := http.NewRequest("GET", "/metrics", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `registration_validation_field_errors_total{field="file"}`)
	assert.Contains(t, w.Body.String(), `api_requests_total{method="POST",path="/register",status="400"}`)
}
