// Package constants provides shared constant values used throughout the application.
//
// The defaults.go file defines default values and limits used throughout the
// application. These constants provide sensible defaults for configuration
// settings, establish boundaries for resource usage, and define security
// parameters.
package constants

// Default Configuration Values define fallback settings when not specified in configuration.
const (
	// DefaultServerPort is the default HTTP server port.
	DefaultServerPort = 5001

	// DefaultDBMaxConnections is the default maximum number of database connections.
	DefaultDBMaxConnections = 20

	// DefaultDBMinConnections is the default minimum number of idle database connections.
	DefaultDBMinConnections = 5

	// DefaultLogLevel is the default logging verbosity level.
	DefaultLogLevel = "info"

	// DefaultLogFormat is the default logging output format.
	DefaultLogFormat = "json"

	// DefaultFrontendBaseURL is the default base URL used to build password reset links.
	DefaultFrontendBaseURL = "http://localhost:3000"
)

// Environment Types define the recognized application running environments.
const (
	// EnvDevelopment identifies a development environment with debugging features enabled.
	EnvDevelopment = "development"

	// EnvTesting identifies a testing environment for automated tests.
	EnvTesting = "testing"

	// EnvProduction identifies a production environment with optimized settings.
	EnvProduction = "production"
)

// Request Limits define the maximum allowed sizes for incoming payloads.
const (
	// MaxRequestBodySize is the maximum size in bytes for HTTP request bodies.
	MaxRequestBodySize = 1048576 // 1MB

	// MaxQueryLimit is the maximum number of expenses a single query may return.
	MaxQueryLimit = 500
)

// Default Password Hash Settings define the parameters for Argon2id password hashing.
const (
	// DefaultPasswordHashMemory is the memory cost parameter for Argon2id hashing.
	DefaultPasswordHashMemory = 64 * 1024

	// DefaultPasswordHashIterations is the number of iterations for Argon2id hashing.
	DefaultPasswordHashIterations = 3

	// DefaultPasswordHashParallelism is the parallelism parameter for Argon2id hashing.
	DefaultPasswordHashParallelism = 2

	// DefaultPasswordHashSaltLength is the length in bytes of the random salt.
	DefaultPasswordHashSaltLength = 16

	// DefaultPasswordHashKeyLength is the length in bytes of the derived key.
	DefaultPasswordHashKeyLength = 32
)

// Password Policy defines the rules applied to user-chosen passwords.
const (
	// MinPasswordLength is the minimum number of characters in a password.
	MinPasswordLength = 6

	// MinUsernameLength is the minimum number of characters in a username.
	MinUsernameLength = 3

	// MaxUsernameLength is the maximum number of characters in a username.
	MaxUsernameLength = 50
)

// Reset Token Settings define the parameters of the password reset token lifecycle.
const (
	// ResetTokenBytes is the number of random bytes in a reset token.
	ResetTokenBytes = 32
)
