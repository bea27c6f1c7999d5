// Path: internal/config/constants.go
package config

import "time"

const (
	// Server configuration defaults
	DefaultAPIHost              = "0.0.0.0"
	DefaultPort                 = 3000
	DefaultMaxMultipartMemoryMB = 32
	DefaultReadTimeout          = 15 * time.Second
	DefaultWriteTimeout         = 15 * time.Second
	DefaultIdleTimeout          = 60 * time.Second
	DefaultShutdownTimeout      = 5 * time.Second
)

// DefaultRegisterFields are the fields validated on POST /register. Role is
// opt-in through REGISTER_FIELDS.
var DefaultRegisterFields = []string{"username", "email", "password", "dob", "file"}
