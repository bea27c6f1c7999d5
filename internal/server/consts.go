package server

const (
	HealthEndpoint = "/health"
	RegisterPath   = "/register"
	MetricsPath    = "/metrics"
)

const (
	StatusHealthy = "healthy"
)

const (
	FormFileField     = "file"
	FormFileTypeField = "fileType"
	FormUsernameField = "username"
)

const (
	HeaderRequestID     = "X-Request-Id"
	ContextKeyRequestID = "request_id"
)

const (
	StageValidate = "validate"
	StageRegister = "register"
)

const (
	MessageUserRegistered     = "User registered successfully"
	MessageInvalidRequestBody = "Invalid request body"
	MessageInternalError      = "Internal server error"
)

const (
	ErrorCodeInvalidRequestBody = "invalid_request_body"
	ErrorCodeInternal           = "internal_error"
)
