package utils

// Structured log field names shared across packages.
const (
	FieldComponent = "component"
	FieldLogLevel  = "log_level"
	FieldSignal    = "signal"
	FieldHost      = "host"
	FieldPort      = "port"
	FieldPath      = "path"
	FieldMethod    = "method"
	FieldStatus    = "status"
	FieldLatency   = "latency"
	FieldRequestID = "request_id"
	FieldField     = "field"
	FieldRule      = "rule"
	FieldUsername  = "username"
	FieldFileName  = "file_name"
	FieldFileType  = "file_type"
	FieldErrCount  = "error_count"
)
